// Package api binds openapi.yml to echo: the request and response types, the
// ServerInterface implemented by the HTTP adapter and the route table. The
// layout follows oapi-codegen's echo server output, with validate tags for
// go-playground/validator added to the request types. Keep it in step with
// openapi.yml by hand.
package api

import (
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

// Defines values for ParcelStatus.
const (
	ParcelStatusArrived     ParcelStatus = "Arrived"
	ParcelStatusDelivered   ParcelStatus = "Delivered"
	ParcelStatusEnRoute     ParcelStatus = "EnRoute"
	ParcelStatusInWarehouse ParcelStatus = "InWarehouse"
	ParcelStatusRegistered  ParcelStatus = "Registered"
)

// Defines values for ShipmentStatus.
const (
	ShipmentStatusArrived   ShipmentStatus = "Arrived"
	ShipmentStatusCompleted ShipmentStatus = "Completed"
	ShipmentStatusEnRoute   ShipmentStatus = "EnRoute"
	ShipmentStatusPlanning  ShipmentStatus = "Planning"
)

// Defines values for StatusUpdateStatus.
const (
	StatusUpdateStatusArrived   StatusUpdateStatus = "Arrived"
	StatusUpdateStatusCompleted StatusUpdateStatus = "Completed"
	StatusUpdateStatusEnRoute   StatusUpdateStatus = "EnRoute"
	StatusUpdateStatusPlanning  StatusUpdateStatus = "Planning"
)

// Defines values for UserRole.
const (
	UserRoleAdmin   UserRole = "Admin"
	UserRoleManager UserRole = "Manager"
)

// AssignParcel defines model for AssignParcel.
type AssignParcel struct {
	TrackingCode string `json:"trackingCode" validate:"required,max=50"`
}

// Client defines model for Client.
type Client struct {
	ChatHandle *string            `json:"chatHandle,omitempty"`
	CreatedAt  time.Time          `json:"createdAt"`
	HumanCode  string             `json:"humanCode"`
	Id         openapi_types.UUID `json:"id"`
	Name       string             `json:"name"`
	Phone      string             `json:"phone"`
}

// ClientInput defines model for ClientInput.
type ClientInput struct {
	ChatHandle *string `json:"chatHandle,omitempty" validate:"omitempty,max=100"`
	Name       string  `json:"name" validate:"required,max=100"`
	Phone      string  `json:"phone" validate:"required,max=20"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LoginRequest defines model for LoginRequest.
type LoginRequest struct {
	Password string `json:"password" validate:"required"`
	Username string `json:"username" validate:"required"`
}

// NewParcel defines model for NewParcel.
type NewParcel struct {
	// Client Client ID or human code such as A00001.
	Client       string          `json:"client" validate:"required"`
	Price        decimal.Decimal `json:"price"`
	TrackingCode string          `json:"trackingCode" validate:"required,max=50"`
	Volume       float64         `json:"volume" validate:"gte=0"`
	Weight       float64         `json:"weight" validate:"gte=0"`
}

// NewUser defines model for NewUser.
type NewUser struct {
	Password string `json:"password" validate:"required,min=6"`
	Username string `json:"username" validate:"required,max=50"`
}

// Parcel defines model for Parcel.
type Parcel struct {
	ClientHumanCode *string             `json:"clientHumanCode,omitempty"`
	ClientId        openapi_types.UUID  `json:"clientId"`
	ClientName      *string             `json:"clientName,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
	DeliveredAt     *time.Time          `json:"deliveredAt,omitempty"`
	Id              openapi_types.UUID  `json:"id"`
	Price           decimal.Decimal     `json:"price"`
	ShipmentId      *openapi_types.UUID `json:"shipmentId,omitempty"`
	Status          ParcelStatus        `json:"status"`
	TrackingCode    string              `json:"trackingCode"`
	Volume          float64             `json:"volume"`
	Weight          float64             `json:"weight"`
}

// ParcelStatus defines model for Parcel.Status.
type ParcelStatus string

// Shipment defines model for Shipment.
type Shipment struct {
	ArrivalDate   *time.Time         `json:"arrivalDate,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
	DepartureDate *time.Time         `json:"departureDate,omitempty"`
	Id            openapi_types.UUID `json:"id"`
	Name          string             `json:"name"`
	Parcels       *[]Parcel          `json:"parcels,omitempty"`
	Status        ShipmentStatus     `json:"status"`
	TotalVolume   float64            `json:"totalVolume"`
	TotalWeight   float64            `json:"totalWeight"`
}

// ShipmentStatus defines model for Shipment.Status.
type ShipmentStatus string

// ShipmentInput defines model for ShipmentInput.
type ShipmentInput struct {
	Name      string                `json:"name" validate:"required,max=100"`
	ParcelIds *[]openapi_types.UUID `json:"parcelIds,omitempty"`
}

// StatusUpdate defines model for StatusUpdate.
type StatusUpdate struct {
	Status StatusUpdateStatus `json:"status" validate:"required"`
}

// StatusUpdateStatus defines model for StatusUpdate.Status.
type StatusUpdateStatus string

// TokenResponse defines model for TokenResponse.
type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
}

// UpdateParcel defines model for UpdateParcel.
type UpdateParcel struct {
	Price        decimal.Decimal `json:"price"`
	TrackingCode string          `json:"trackingCode" validate:"required,max=50"`
	Volume       float64         `json:"volume" validate:"gte=0"`
	Weight       float64         `json:"weight" validate:"gte=0"`
}

// User defines model for User.
type User struct {
	Id       openapi_types.UUID `json:"id"`
	Role     UserRole           `json:"role"`
	Username string             `json:"username"`
}

// UserRole defines model for User.Role.
type UserRole string

// ID defines model for ID.
type ID = openapi_types.UUID

// LoginJSONRequestBody defines body for Login for application/json ContentType.
type LoginJSONRequestBody = LoginRequest

// CreateClientJSONRequestBody defines body for CreateClient for application/json ContentType.
type CreateClientJSONRequestBody = ClientInput

// UpdateClientJSONRequestBody defines body for UpdateClient for application/json ContentType.
type UpdateClientJSONRequestBody = ClientInput

// CreateParcelJSONRequestBody defines body for CreateParcel for application/json ContentType.
type CreateParcelJSONRequestBody = NewParcel

// UpdateParcelJSONRequestBody defines body for UpdateParcel for application/json ContentType.
type UpdateParcelJSONRequestBody = UpdateParcel

// CreateShipmentJSONRequestBody defines body for CreateShipment for application/json ContentType.
type CreateShipmentJSONRequestBody = ShipmentInput

// UpdateShipmentJSONRequestBody defines body for UpdateShipment for application/json ContentType.
type UpdateShipmentJSONRequestBody = ShipmentInput

// AssignParcelJSONRequestBody defines body for AssignParcel for application/json ContentType.
type AssignParcelJSONRequestBody = AssignParcel

// AdvanceShipmentStatusJSONRequestBody defines body for AdvanceShipmentStatus for application/json ContentType.
type AdvanceShipmentStatusJSONRequestBody = StatusUpdate

// CreateUserJSONRequestBody defines body for CreateUser for application/json ContentType.
type CreateUserJSONRequestBody = NewUser

// ServerInterface represents all server handlers.
type ServerInterface interface {

	// (POST /api/v1/auth/login)
	Login(ctx echo.Context) error

	// (GET /api/v1/clients)
	ListClients(ctx echo.Context) error

	// (POST /api/v1/clients)
	CreateClient(ctx echo.Context) error

	// (GET /api/v1/clients/by-human-code/{code})
	GetClientByHumanCode(ctx echo.Context, code string) error

	// (DELETE /api/v1/clients/{id})
	DeleteClient(ctx echo.Context, id ID) error

	// (GET /api/v1/clients/{id})
	GetClient(ctx echo.Context, id ID) error

	// (PUT /api/v1/clients/{id})
	UpdateClient(ctx echo.Context, id ID) error

	// (GET /api/v1/clients/{id}/parcels)
	ListClientParcels(ctx echo.Context, id ID) error

	// (GET /api/v1/parcels)
	ListParcels(ctx echo.Context) error

	// (POST /api/v1/parcels)
	CreateParcel(ctx echo.Context) error

	// (GET /api/v1/parcels/by-tracking-code/{trackingCode})
	GetParcelByTrackingCode(ctx echo.Context, trackingCode string) error

	// (DELETE /api/v1/parcels/{id})
	DeleteParcel(ctx echo.Context, id ID) error

	// (PUT /api/v1/parcels/{id})
	UpdateParcel(ctx echo.Context, id ID) error

	// (GET /api/v1/shipments)
	ListShipments(ctx echo.Context) error

	// (POST /api/v1/shipments)
	CreateShipment(ctx echo.Context) error

	// (DELETE /api/v1/shipments/{id})
	DeleteShipment(ctx echo.Context, id ID) error

	// (GET /api/v1/shipments/{id})
	GetShipment(ctx echo.Context, id ID) error

	// (PUT /api/v1/shipments/{id})
	UpdateShipment(ctx echo.Context, id ID) error

	// (GET /api/v1/shipments/{id}/parcels)
	ListShipmentParcels(ctx echo.Context, id ID) error

	// (POST /api/v1/shipments/{id}/parcels)
	AssignParcel(ctx echo.Context, id ID) error

	// (POST /api/v1/shipments/{id}/recompute)
	RecomputeShipmentTotals(ctx echo.Context, id ID) error

	// (PUT /api/v1/shipments/{id}/status)
	AdvanceShipmentStatus(ctx echo.Context, id ID) error

	// (GET /api/v1/users)
	ListUsers(ctx echo.Context) error

	// (POST /api/v1/users)
	CreateUser(ctx echo.Context) error

	// (DELETE /api/v1/users/{id})
	DeleteUser(ctx echo.Context, id ID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindID(ctx echo.Context) (ID, error) {
	var id ID
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

// Login converts echo context to params.
func (w *ServerInterfaceWrapper) Login(ctx echo.Context) error {
	return w.Handler.Login(ctx)
}

// ListClients converts echo context to params.
func (w *ServerInterfaceWrapper) ListClients(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.ListClients(ctx)
}

// CreateClient converts echo context to params.
func (w *ServerInterfaceWrapper) CreateClient(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.CreateClient(ctx)
}

// GetClientByHumanCode converts echo context to params.
func (w *ServerInterfaceWrapper) GetClientByHumanCode(ctx echo.Context) error {
	var code string
	err := runtime.BindStyledParameterWithOptions("simple", "code", ctx.Param("code"), &code,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter code: %s", err))
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.GetClientByHumanCode(ctx, code)
}

// DeleteClient converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteClient(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.DeleteClient(ctx, id)
}

// GetClient converts echo context to params.
func (w *ServerInterfaceWrapper) GetClient(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.GetClient(ctx, id)
}

// UpdateClient converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateClient(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.UpdateClient(ctx, id)
}

// ListClientParcels converts echo context to params.
func (w *ServerInterfaceWrapper) ListClientParcels(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.ListClientParcels(ctx, id)
}

// ListParcels converts echo context to params.
func (w *ServerInterfaceWrapper) ListParcels(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.ListParcels(ctx)
}

// CreateParcel converts echo context to params.
func (w *ServerInterfaceWrapper) CreateParcel(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.CreateParcel(ctx)
}

// GetParcelByTrackingCode converts echo context to params.
func (w *ServerInterfaceWrapper) GetParcelByTrackingCode(ctx echo.Context) error {
	var trackingCode string
	err := runtime.BindStyledParameterWithOptions("simple", "trackingCode", ctx.Param("trackingCode"), &trackingCode,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter trackingCode: %s", err))
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.GetParcelByTrackingCode(ctx, trackingCode)
}

// DeleteParcel converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteParcel(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.DeleteParcel(ctx, id)
}

// UpdateParcel converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateParcel(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.UpdateParcel(ctx, id)
}

// ListShipments converts echo context to params.
func (w *ServerInterfaceWrapper) ListShipments(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.ListShipments(ctx)
}

// CreateShipment converts echo context to params.
func (w *ServerInterfaceWrapper) CreateShipment(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.CreateShipment(ctx)
}

// DeleteShipment converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteShipment(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.DeleteShipment(ctx, id)
}

// GetShipment converts echo context to params.
func (w *ServerInterfaceWrapper) GetShipment(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.GetShipment(ctx, id)
}

// UpdateShipment converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateShipment(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.UpdateShipment(ctx, id)
}

// ListShipmentParcels converts echo context to params.
func (w *ServerInterfaceWrapper) ListShipmentParcels(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.ListShipmentParcels(ctx, id)
}

// AssignParcel converts echo context to params.
func (w *ServerInterfaceWrapper) AssignParcel(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.AssignParcel(ctx, id)
}

// RecomputeShipmentTotals converts echo context to params.
func (w *ServerInterfaceWrapper) RecomputeShipmentTotals(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.RecomputeShipmentTotals(ctx, id)
}

// AdvanceShipmentStatus converts echo context to params.
func (w *ServerInterfaceWrapper) AdvanceShipmentStatus(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.AdvanceShipmentStatus(ctx, id)
}

// ListUsers converts echo context to params.
func (w *ServerInterfaceWrapper) ListUsers(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.ListUsers(ctx)
}

// CreateUser converts echo context to params.
func (w *ServerInterfaceWrapper) CreateUser(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.CreateUser(ctx)
}

// DeleteUser converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteUser(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.DeleteUser(ctx, id)
}

// EchoRouter is an interface that wraps the methods of echo.Echo and echo.Group.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/v1/auth/login", wrapper.Login)
	router.GET(baseURL+"/api/v1/clients", wrapper.ListClients)
	router.POST(baseURL+"/api/v1/clients", wrapper.CreateClient)
	router.GET(baseURL+"/api/v1/clients/by-human-code/:code", wrapper.GetClientByHumanCode)
	router.DELETE(baseURL+"/api/v1/clients/:id", wrapper.DeleteClient)
	router.GET(baseURL+"/api/v1/clients/:id", wrapper.GetClient)
	router.PUT(baseURL+"/api/v1/clients/:id", wrapper.UpdateClient)
	router.GET(baseURL+"/api/v1/clients/:id/parcels", wrapper.ListClientParcels)
	router.GET(baseURL+"/api/v1/parcels", wrapper.ListParcels)
	router.POST(baseURL+"/api/v1/parcels", wrapper.CreateParcel)
	router.GET(baseURL+"/api/v1/parcels/by-tracking-code/:trackingCode", wrapper.GetParcelByTrackingCode)
	router.DELETE(baseURL+"/api/v1/parcels/:id", wrapper.DeleteParcel)
	router.PUT(baseURL+"/api/v1/parcels/:id", wrapper.UpdateParcel)
	router.GET(baseURL+"/api/v1/shipments", wrapper.ListShipments)
	router.POST(baseURL+"/api/v1/shipments", wrapper.CreateShipment)
	router.DELETE(baseURL+"/api/v1/shipments/:id", wrapper.DeleteShipment)
	router.GET(baseURL+"/api/v1/shipments/:id", wrapper.GetShipment)
	router.PUT(baseURL+"/api/v1/shipments/:id", wrapper.UpdateShipment)
	router.GET(baseURL+"/api/v1/shipments/:id/parcels", wrapper.ListShipmentParcels)
	router.POST(baseURL+"/api/v1/shipments/:id/parcels", wrapper.AssignParcel)
	router.POST(baseURL+"/api/v1/shipments/:id/recompute", wrapper.RecomputeShipmentTotals)
	router.PUT(baseURL+"/api/v1/shipments/:id/status", wrapper.AdvanceShipmentStatus)
	router.GET(baseURL+"/api/v1/users", wrapper.ListUsers)
	router.POST(baseURL+"/api/v1/users", wrapper.CreateUser)
	router.DELETE(baseURL+"/api/v1/users/:id", wrapper.DeleteUser)
}

//go:embed openapi.yml
var swaggerSpec []byte

// GetSwagger returns the embedded OpenAPI document.
// Every call decodes a fresh copy that the caller may modify.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(swaggerSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading Swagger: %w", err)
	}
	return swagger, nil
}
