// Package http exposes the cargo use cases as a REST API. The routes and
// request types come from the OpenAPI binding in internal/api.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"cargo/internal/api"
	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/application/usecases/queries"
	"cargo/internal/core/domain/model/client"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/parcel"
	"cargo/internal/core/domain/model/shipment"
	"cargo/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

var _ api.ServerInterface = (*Server)(nil)

// Handler runs one use case and returns its result.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// Executor runs one use case that has no result.
type Executor[In any] interface {
	Handle(ctx context.Context, in In) error
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	Login                   Handler[commands.LoginCommand, string]
	RegisterClient          Handler[commands.RegisterClientCommand, *client.Client]
	UpdateClient            Handler[commands.UpdateClientCommand, *client.Client]
	DeleteClient            Executor[commands.DeleteClientCommand]
	CreateParcel            Handler[commands.CreateParcelCommand, *parcel.Parcel]
	UpdateParcel            Handler[commands.UpdateParcelCommand, *parcel.Parcel]
	DeleteParcel            Executor[commands.DeleteParcelCommand]
	CreateShipment          Handler[commands.CreateShipmentCommand, *shipment.Shipment]
	ReplaceShipmentMembers  Handler[commands.ReplaceShipmentMembersCommand, *shipment.Shipment]
	AssignParcel            Handler[commands.AssignParcelCommand, *shipment.Shipment]
	AdvanceShipmentStatus   Handler[commands.AdvanceShipmentStatusCommand, *shipment.Shipment]
	RecomputeShipmentTotals Handler[commands.RecomputeShipmentTotalsCommand, *shipment.Shipment]
	DeleteShipment          Executor[commands.DeleteShipmentCommand]
	CreateUser              Handler[commands.CreateUserCommand, *user.User]
	DeleteUser              Executor[commands.DeleteUserCommand]

	// Query handlers
	ListClients   Handler[queries.ListClientsQuery, []queries.ClientView]
	GetClient     Handler[queries.GetClientQuery, queries.ClientView]
	ListParcels   Handler[queries.ListParcelsQuery, []queries.ParcelView]
	GetParcel     Handler[queries.GetParcelQuery, queries.ParcelView]
	ListShipments Handler[queries.ListShipmentsQuery, []queries.ShipmentView]
	GetShipment   Handler[queries.GetShipmentQuery, queries.ShipmentView]
	ListUsers     Handler[queries.ListUsersQuery, []queries.UserView]
}

// Server implements api.ServerInterface on top of the command and query
// handlers. Every handler error goes through writeError.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      handlers,
		logger: logger.With("component", "http_server"),
	}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	return writeError(ctx, s.logger, err)
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var body api.LoginJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewLoginCommand(body.Username, body.Password)
	if err != nil {
		return s.fail(ctx, err)
	}

	token, err := s.h.Login.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, api.TokenResponse{Token: token, TokenType: "Bearer"})
}

// ListClients handles GET /api/v1/clients.
func (s *Server) ListClients(ctx echo.Context) error {
	views, err := s.h.ListClients.Handle(ctx.Request().Context(), queries.NewListClientsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]api.Client, len(views))
	for i, v := range views {
		response[i] = clientFromView(v)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateClient handles POST /api/v1/clients.
func (s *Server) CreateClient(ctx echo.Context) error {
	var body api.CreateClientJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRegisterClientCommand(kernel.NewUUID(), body.Name, body.Phone, deref(body.ChatHandle))
	if err != nil {
		return s.fail(ctx, err)
	}

	c, err := s.h.RegisterClient.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, clientFromDomain(c))
}

// GetClientByHumanCode handles GET /api/v1/clients/by-human-code/{code}.
func (s *Server) GetClientByHumanCode(ctx echo.Context, code string) error {
	query, err := queries.NewGetClientByHumanCodeQuery(code)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.getClient(ctx, query)
}

// GetClient handles GET /api/v1/clients/{id}.
func (s *Server) GetClient(ctx echo.Context, id api.ID) error {
	clientID, err := toKernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetClientQuery(clientID)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.getClient(ctx, query)
}

func (s *Server) getClient(ctx echo.Context, query queries.GetClientQuery) error {
	view, err := s.h.GetClient.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, clientFromView(view))
}

// UpdateClient handles PUT /api/v1/clients/{id}.
func (s *Server) UpdateClient(ctx echo.Context, id api.ID) error {
	var body api.UpdateClientJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	clientID, err := toKernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateClientCommand(clientID, body.Name, body.Phone, deref(body.ChatHandle))
	if err != nil {
		return s.fail(ctx, err)
	}

	c, err := s.h.UpdateClient.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, clientFromDomain(c))
}

// DeleteClient handles DELETE /api/v1/clients/{id}. Admin only.
func (s *Server) DeleteClient(ctx echo.Context, id api.ID) error {
	if err := requireRole(ctx, user.Admin); err != nil {
		return s.fail(ctx, err)
	}

	clientID, err := toKernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteClientCommand(clientID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.DeleteClient.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListClientParcels handles GET /api/v1/clients/{id}/parcels.
func (s *Server) ListClientParcels(ctx echo.Context, id api.ID) error {
	clientID, err := toKernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListClientParcelsQuery(clientID)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.listParcels(ctx, query)
}

// ListParcels handles GET /api/v1/parcels.
func (s *Server) ListParcels(ctx echo.Context) error {
	return s.listParcels(ctx, queries.NewListParcelsQuery())
}

func (s *Server) listParcels(ctx echo.Context, query queries.ListParcelsQuery) error {
	views, err := s.h.ListParcels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, parcelsFromViews(views))
}

// CreateParcel handles POST /api/v1/parcels.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var body api.CreateParcelJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(),
		body.TrackingCode,
		body.Client,
		body.Weight,
		body.Volume,
		body.Price,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	p, err := s.h.CreateParcel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, parcelFromDomain(p))
}

// GetParcelByTrackingCode handles GET /api/v1/parcels/by-tracking-code/{trackingCode}.
func (s *Server) GetParcelByTrackingCode(ctx echo.Context, trackingCode string) error {
	query, err := queries.NewGetParcelQuery(trackingCode)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.h.GetParcel.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, parcelFromView(view))
}

// UpdateParcel handles PUT /api/v1/parcels/{id}.
func (s *Server) UpdateParcel(ctx echo.Context, id api.ID) error {
	var body api.UpdateParcelJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	parcelID, err := toKernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateParcelCommand(parcelID, body.TrackingCode, body.Weight, body.Volume, body.Price)
	if err != nil {
		return s.fail(ctx, err)
	}

	p, err := s.h.UpdateParcel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, parcelFromDomain(p))
}

// DeleteParcel handles DELETE /api/v1/parcels/{id}. Admin only.
func (s *Server) DeleteParcel(ctx echo.Context, id api.ID) error {
	if err := requireRole(ctx, user.Admin); err != nil {
		return s.fail(ctx, err)
	}

	parcelID, err := toKernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteParcelCommand(parcelID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.DeleteParcel.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListShipments handles GET /api/v1/shipments.
func (s *Server) ListShipments(ctx echo.Context) error {
	views, err := s.h.ListShipments.Handle(ctx.Request().Context(), queries.NewListShipmentsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]api.Shipment, len(views))
	for i, v := range views {
		response[i] = shipmentFromView(v)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var body api.CreateShipmentJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	parcelIDs, err := toKernelIDs(body.ParcelIds)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateShipmentCommand(kernel.NewUUID(), body.Name, parcelIDs)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.h.CreateShipment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respondShipment(ctx, http.StatusCreated, created.ID())
}

// GetShipment handles GET /api/v1/shipments/{id}.
func (s *Server) GetShipment(ctx echo.Context, id api.ID) error {
	shipmentID, err := toKernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondShipment(ctx, http.StatusOK, shipmentID)
}

// ListShipmentParcels handles GET /api/v1/shipments/{id}/parcels.
func (s *Server) ListShipmentParcels(ctx echo.Context, id api.ID) error {
	shipmentID, err := toKernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.shipmentView(ctx, shipmentID)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, parcelsFromViews(view.Parcels))
}

// UpdateShipment handles PUT /api/v1/shipments/{id}: rename and replace the
// member set.
func (s *Server) UpdateShipment(ctx echo.Context, id api.ID) error {
	var body api.UpdateShipmentJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	shipmentID, err := toKernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	parcelIDs, err := toKernelIDs(body.ParcelIds)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewReplaceShipmentMembersCommand(shipmentID, body.Name, parcelIDs)
	if err != nil {
		return s.fail(ctx, err)
	}

	if _, err = s.h.ReplaceShipmentMembers.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondShipment(ctx, http.StatusOK, shipmentID)
}

// DeleteShipment handles DELETE /api/v1/shipments/{id}. Admin only.
func (s *Server) DeleteShipment(ctx echo.Context, id api.ID) error {
	if err := requireRole(ctx, user.Admin); err != nil {
		return s.fail(ctx, err)
	}

	shipmentID, err := toKernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteShipmentCommand(shipmentID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.DeleteShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignParcel handles POST /api/v1/shipments/{id}/parcels.
func (s *Server) AssignParcel(ctx echo.Context, id api.ID) error {
	var body api.AssignParcelJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	shipmentID, err := toKernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAssignParcelCommand(shipmentID, body.TrackingCode)
	if err != nil {
		return s.fail(ctx, err)
	}

	if _, err = s.h.AssignParcel.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondShipment(ctx, http.StatusOK, shipmentID)
}

// AdvanceShipmentStatus handles PUT /api/v1/shipments/{id}/status.
func (s *Server) AdvanceShipmentStatus(ctx echo.Context, id api.ID) error {
	var body api.AdvanceShipmentStatusJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	shipmentID, err := toKernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	status, err := shipment.ParseStatus(string(body.Status))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAdvanceShipmentStatusCommand(shipmentID, status)
	if err != nil {
		return s.fail(ctx, err)
	}

	if _, err = s.h.AdvanceShipmentStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondShipment(ctx, http.StatusOK, shipmentID)
}

// RecomputeShipmentTotals handles POST /api/v1/shipments/{id}/recompute.
func (s *Server) RecomputeShipmentTotals(ctx echo.Context, id api.ID) error {
	shipmentID, err := toKernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRecomputeShipmentTotalsCommand(shipmentID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if _, err = s.h.RecomputeShipmentTotals.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondShipment(ctx, http.StatusOK, shipmentID)
}

// respondShipment reads the shipment back with its members after a command
// so that every shipment response has the same shape.
func (s *Server) respondShipment(ctx echo.Context, status int, shipmentID kernel.UUID) error {
	view, err := s.shipmentView(ctx, shipmentID)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(status, shipmentFromView(view))
}

func (s *Server) shipmentView(ctx echo.Context, shipmentID kernel.UUID) (queries.ShipmentView, error) {
	query, err := queries.NewGetShipmentQuery(shipmentID)
	if err != nil {
		return queries.ShipmentView{}, err
	}
	return s.h.GetShipment.Handle(ctx.Request().Context(), query)
}

// ListUsers handles GET /api/v1/users. Admin only.
func (s *Server) ListUsers(ctx echo.Context) error {
	if err := requireRole(ctx, user.Admin); err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.h.ListUsers.Handle(ctx.Request().Context(), queries.NewListUsersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]api.User, len(views))
	for i, v := range views {
		response[i] = userFromView(v)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateUser handles POST /api/v1/users. Admin only; the new account is a
// Manager.
func (s *Server) CreateUser(ctx echo.Context) error {
	if err := requireRole(ctx, user.Admin); err != nil {
		return s.fail(ctx, err)
	}

	var body api.CreateUserJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateUserCommand(kernel.NewUUID(), body.Username, body.Password)
	if err != nil {
		return s.fail(ctx, err)
	}

	u, err := s.h.CreateUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, userFromDomain(u))
}

// DeleteUser handles DELETE /api/v1/users/{id}. Admin only.
func (s *Server) DeleteUser(ctx echo.Context, id api.ID) error {
	if err := requireRole(ctx, user.Admin); err != nil {
		return s.fail(ctx, err)
	}

	userID, err := toKernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteUserCommand(userID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.DeleteUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
