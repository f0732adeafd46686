package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	cargohttp "cargo/internal/adapters/in/http"
	"cargo/internal/api"
	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/application/usecases/queries"
	"cargo/internal/core/domain/model/client"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/parcel"
	"cargo/internal/core/domain/model/shipment"
	"cargo/internal/core/domain/model/user"
	"cargo/internal/core/ports"
	"cargo/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	adminToken   = "admin-token"
	managerToken = "manager-token"
)

type handlerFunc[In, Out any] func(context.Context, In) (Out, error)

func (f handlerFunc[In, Out]) Handle(ctx context.Context, in In) (Out, error) { return f(ctx, in) }

type executorFunc[In any] func(context.Context, In) error

func (f executorFunc[In]) Handle(ctx context.Context, in In) error { return f(ctx, in) }

type staticVerifier map[string]ports.Principal

func (v staticVerifier) Verify(_ context.Context, token string) (ports.Principal, error) {
	p, ok := v[token]
	if !ok {
		return ports.Principal{}, fmt.Errorf("%w: unknown token", errs.ErrAuthFailure)
	}
	return p, nil
}

type ServerTestSuite struct {
	suite.Suite
	handlers cargohttp.Handlers
	e        *echo.Echo
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

// SetupTest installs handlers that fail loudly; each test overrides the
// ones it exercises before calling serve.
func (s *ServerTestSuite) SetupTest() {
	unexpected := errors.New("unexpected call")
	s.handlers = cargohttp.Handlers{
		ListClients: handlerFunc[queries.ListClientsQuery, []queries.ClientView](
			func(context.Context, queries.ListClientsQuery) ([]queries.ClientView, error) { return nil, unexpected }),
		GetShipment: handlerFunc[queries.GetShipmentQuery, queries.ShipmentView](
			func(context.Context, queries.GetShipmentQuery) (queries.ShipmentView, error) {
				return queries.ShipmentView{}, unexpected
			}),
	}
	s.e = nil
}

func (s *ServerTestSuite) router() *echo.Echo {
	if s.e != nil {
		return s.e
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	verifier := staticVerifier{
		adminToken:   {UserID: kernel.NewUUID(), Username: "admin", Role: user.Admin},
		managerToken: {UserID: kernel.NewUUID(), Username: "manager", Role: user.Manager},
	}

	e, err := cargohttp.NewRouter(cargohttp.NewServer(s.handlers, logger), cargohttp.RouterConfig{
		Verifier:   verifier,
		Registerer: reg,
		Gatherer:   reg,
		Logger:     logger,
	})
	s.Require().NoError(err)
	s.e = e
	return e
}

func (s *ServerTestSuite) serve(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = strings.NewReader(string(raw))
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func (s *ServerTestSuite) TestHealth() {
	rec := s.serve(http.MethodGet, "/health", "", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Healthy", rec.Body.String())
}

func (s *ServerTestSuite) TestMissingToken() {
	rec := s.serve(http.MethodGet, "/api/v1/clients", "", nil)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(http.StatusUnauthorized, decode[api.Error](s.T(), rec).Code)
}

func (s *ServerTestSuite) TestUnknownToken() {
	rec := s.serve(http.MethodGet, "/api/v1/clients", "forged", nil)

	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *ServerTestSuite) TestMissingToken_RejectedBeforeBodyValidation() {
	rec := s.serve(http.MethodPost, "/api/v1/clients", "", map[string]any{"name": 42})

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(http.StatusUnauthorized, decode[api.Error](s.T(), rec).Code)
}

func (s *ServerTestSuite) TestLogin() {
	s.handlers.Login = handlerFunc[commands.LoginCommand, string](
		func(_ context.Context, cmd commands.LoginCommand) (string, error) {
			if cmd.Username() == "admin" && cmd.Password() == "admin123" {
				return "signed.jwt.token", nil
			}
			return "", fmt.Errorf("%w: invalid username or password", errs.ErrAuthFailure)
		})

	rec := s.serve(http.MethodPost, "/api/v1/auth/login", "", api.LoginRequest{Username: "admin", Password: "admin123"})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Equal(api.TokenResponse{Token: "signed.jwt.token", TokenType: "Bearer"}, decode[api.TokenResponse](s.T(), rec))

	rec = s.serve(http.MethodPost, "/api/v1/auth/login", "", api.LoginRequest{Username: "admin", Password: "nope"})
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *ServerTestSuite) TestLogin_RejectsBodyMissingFields() {
	rec := s.serve(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": "admin"})

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestCreateClient() {
	var got commands.RegisterClientCommand
	s.handlers.RegisterClient = handlerFunc[commands.RegisterClientCommand, *client.Client](
		func(_ context.Context, cmd commands.RegisterClientCommand) (*client.Client, error) {
			got = cmd
			return client.NewClient(cmd.ClientID(), client.FirstHumanCode, cmd.Name(), cmd.Phone(), cmd.ChatHandle())
		})

	chat := "424242"
	rec := s.serve(http.MethodPost, "/api/v1/clients", managerToken,
		api.ClientInput{Name: "ACME Ltd", Phone: "+996555000111", ChatHandle: &chat})

	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	body := decode[api.Client](s.T(), rec)
	s.Equal("A00001", body.HumanCode)
	s.Equal("ACME Ltd", body.Name)
	s.Require().NotNil(body.ChatHandle)
	s.Equal("424242", *body.ChatHandle)
	s.Equal(got.ClientID().String(), body.Id.String())
}

func (s *ServerTestSuite) TestCreateClient_MissingPhone() {
	rec := s.serve(http.MethodPost, "/api/v1/clients", managerToken, map[string]string{"name": "ACME"})

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestGetClient_NotFound() {
	s.handlers.GetClient = handlerFunc[queries.GetClientQuery, queries.ClientView](
		func(context.Context, queries.GetClientQuery) (queries.ClientView, error) {
			return queries.ClientView{}, errs.NewObjectNotFoundError("clientId", "x")
		})

	rec := s.serve(http.MethodGet, "/api/v1/clients/"+kernel.NewUUID().String(), managerToken, nil)

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerTestSuite) TestGetClient_MalformedID() {
	rec := s.serve(http.MethodGet, "/api/v1/clients/not-a-uuid", managerToken, nil)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestGetClientByHumanCode() {
	id := kernel.NewUUID()
	s.handlers.GetClient = handlerFunc[queries.GetClientQuery, queries.ClientView](
		func(context.Context, queries.GetClientQuery) (queries.ClientView, error) {
			return queries.ClientView{ID: id, HumanCode: "A00042", Name: "Bakyt", Phone: "0555"}, nil
		})

	rec := s.serve(http.MethodGet, "/api/v1/clients/by-human-code/A00042", managerToken, nil)

	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	body := decode[api.Client](s.T(), rec)
	s.Equal("A00042", body.HumanCode)
	s.Nil(body.ChatHandle)
}

func (s *ServerTestSuite) TestDeleteClient_RoleAndConflict() {
	s.handlers.DeleteClient = executorFunc[commands.DeleteClientCommand](
		func(context.Context, commands.DeleteClientCommand) error {
			return errs.NewConflictError("clientId", "owns parcels")
		})
	path := "/api/v1/clients/" + kernel.NewUUID().String()

	rec := s.serve(http.MethodDelete, path, managerToken, nil)
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.serve(http.MethodDelete, path, adminToken, nil)
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *ServerTestSuite) TestCreateParcel() {
	var got commands.CreateParcelCommand
	clientID := kernel.NewUUID()
	s.handlers.CreateParcel = handlerFunc[commands.CreateParcelCommand, *parcel.Parcel](
		func(_ context.Context, cmd commands.CreateParcelCommand) (*parcel.Parcel, error) {
			got = cmd
			return parcel.NewParcel(cmd.ParcelID(), cmd.TrackingCode(), clientID, cmd.Dimensions(), cmd.Price())
		})

	rec := s.serve(http.MethodPost, "/api/v1/parcels", managerToken, map[string]any{
		"trackingCode": "TRK-1",
		"client":       "A00001",
		"weight":       2.5,
		"volume":       0.25,
		"price":        "12.50",
	})

	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	s.Equal("A00001", got.ClientRef())
	s.True(decimal.RequireFromString("12.5").Equal(got.Price()))

	body := decode[api.Parcel](s.T(), rec)
	s.Equal(api.ParcelStatusInWarehouse, body.Status)
	s.Equal(2.5, body.Weight)
	s.Nil(body.ShipmentId)
	s.True(decimal.RequireFromString("12.50").Equal(body.Price))
}

func (s *ServerTestSuite) TestCreateParcel_DuplicateTrackingCode() {
	s.handlers.CreateParcel = handlerFunc[commands.CreateParcelCommand, *parcel.Parcel](
		func(_ context.Context, cmd commands.CreateParcelCommand) (*parcel.Parcel, error) {
			return nil, errs.NewConflictError("trackingCode", cmd.TrackingCode())
		})

	rec := s.serve(http.MethodPost, "/api/v1/parcels", managerToken, map[string]any{
		"trackingCode": "TRK-1", "client": "A00001", "weight": 1, "volume": 1, "price": "1",
	})

	s.Equal(http.StatusConflict, rec.Code)
}

func (s *ServerTestSuite) TestCreateParcel_NegativeWeight() {
	rec := s.serve(http.MethodPost, "/api/v1/parcels", managerToken, map[string]any{
		"trackingCode": "TRK-1", "client": "A00001", "weight": -1, "volume": 1, "price": "1",
	})

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestGetParcelByTrackingCode() {
	shipmentID := kernel.NewUUID()
	s.handlers.GetParcel = handlerFunc[queries.GetParcelQuery, queries.ParcelView](
		func(context.Context, queries.GetParcelQuery) (queries.ParcelView, error) {
			return queries.ParcelView{
				ID:              kernel.NewUUID(),
				TrackingCode:    "TRK-9",
				Status:          parcel.EnRoute,
				ClientID:        kernel.NewUUID(),
				ClientHumanCode: "A00003",
				ShipmentID:      &shipmentID,
				Price:           decimal.NewFromInt(5),
			}, nil
		})

	rec := s.serve(http.MethodGet, "/api/v1/parcels/by-tracking-code/TRK-9", managerToken, nil)

	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	body := decode[api.Parcel](s.T(), rec)
	s.Equal(api.ParcelStatusEnRoute, body.Status)
	s.Require().NotNil(body.ShipmentId)
	s.Equal(shipmentID.String(), body.ShipmentId.String())
	s.Require().NotNil(body.ClientHumanCode)
	s.Equal("A00003", *body.ClientHumanCode)
}

func (s *ServerTestSuite) shipmentView(id kernel.UUID, status shipment.Status, members ...queries.ParcelView) {
	s.handlers.GetShipment = handlerFunc[queries.GetShipmentQuery, queries.ShipmentView](
		func(context.Context, queries.GetShipmentQuery) (queries.ShipmentView, error) {
			return queries.ShipmentView{
				ID:          id,
				Name:        "Container 7",
				Status:      status,
				TotalWeight: 3,
				CreatedAt:   time.Now().UTC(),
				Parcels:     members,
			}, nil
		})
}

func (s *ServerTestSuite) TestAdvanceShipmentStatus() {
	id := kernel.NewUUID()
	var got commands.AdvanceShipmentStatusCommand
	s.handlers.AdvanceShipmentStatus = handlerFunc[commands.AdvanceShipmentStatusCommand, *shipment.Shipment](
		func(_ context.Context, cmd commands.AdvanceShipmentStatusCommand) (*shipment.Shipment, error) {
			got = cmd
			return shipment.NewShipment(cmd.ShipmentID(), "Container 7")
		})
	s.shipmentView(id, shipment.EnRoute, queries.ParcelView{ID: kernel.NewUUID(), TrackingCode: "TRK-1", Status: parcel.EnRoute})

	rec := s.serve(http.MethodPut, "/api/v1/shipments/"+id.String()+"/status", managerToken,
		api.StatusUpdate{Status: api.StatusUpdateStatusEnRoute})

	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Equal(shipment.EnRoute, got.Status())
	s.True(got.ShipmentID().IsEqual(id))

	body := decode[api.Shipment](s.T(), rec)
	s.Equal(api.ShipmentStatusEnRoute, body.Status)
	s.Require().NotNil(body.Parcels)
	s.Len(*body.Parcels, 1)
}

func (s *ServerTestSuite) TestAdvanceShipmentStatus_UnknownStatus() {
	rec := s.serve(http.MethodPut, "/api/v1/shipments/"+kernel.NewUUID().String()+"/status", managerToken,
		map[string]string{"status": "Lost"})

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestAssignParcel_Conflict() {
	s.handlers.AssignParcel = handlerFunc[commands.AssignParcelCommand, *shipment.Shipment](
		func(_ context.Context, cmd commands.AssignParcelCommand) (*shipment.Shipment, error) {
			return nil, errs.NewConflictError("trackingCode", cmd.TrackingCode())
		})

	rec := s.serve(http.MethodPost, "/api/v1/shipments/"+kernel.NewUUID().String()+"/parcels", managerToken,
		api.AssignParcel{TrackingCode: "TRK-1"})

	s.Equal(http.StatusConflict, rec.Code)
}

func (s *ServerTestSuite) TestCreateShipment() {
	var got commands.CreateShipmentCommand
	s.handlers.CreateShipment = handlerFunc[commands.CreateShipmentCommand, *shipment.Shipment](
		func(_ context.Context, cmd commands.CreateShipmentCommand) (*shipment.Shipment, error) {
			got = cmd
			return shipment.NewShipment(cmd.ShipmentID(), cmd.Name())
		})
	s.handlers.GetShipment = handlerFunc[queries.GetShipmentQuery, queries.ShipmentView](
		func(_ context.Context, q queries.GetShipmentQuery) (queries.ShipmentView, error) {
			return queries.ShipmentView{ID: q.ShipmentID(), Name: "Container 7", Status: shipment.Planning}, nil
		})
	p1 := kernel.NewUUID()

	rec := s.serve(http.MethodPost, "/api/v1/shipments", managerToken, map[string]any{
		"name":      "Container 7",
		"parcelIds": []string{p1.String()},
	})

	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	s.Require().Len(got.ParcelIDs(), 1)
	s.True(got.ParcelIDs()[0].IsEqual(p1))
	body := decode[api.Shipment](s.T(), rec)
	s.Equal(got.ShipmentID().String(), body.Id.String())
	s.Equal(api.ShipmentStatusPlanning, body.Status)
}

func (s *ServerTestSuite) TestListShipmentParcels_NotFound() {
	s.handlers.GetShipment = handlerFunc[queries.GetShipmentQuery, queries.ShipmentView](
		func(context.Context, queries.GetShipmentQuery) (queries.ShipmentView, error) {
			return queries.ShipmentView{}, errs.NewObjectNotFoundError("shipmentId", "x")
		})

	rec := s.serve(http.MethodGet, "/api/v1/shipments/"+kernel.NewUUID().String()+"/parcels", managerToken, nil)

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerTestSuite) TestUsers_AdminOnly() {
	s.handlers.ListUsers = handlerFunc[queries.ListUsersQuery, []queries.UserView](
		func(context.Context, queries.ListUsersQuery) ([]queries.UserView, error) {
			return []queries.UserView{{ID: kernel.NewUUID(), Username: "admin", Role: user.Admin}}, nil
		})

	rec := s.serve(http.MethodGet, "/api/v1/users", managerToken, nil)
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.serve(http.MethodGet, "/api/v1/users", adminToken, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	body := decode[[]api.User](s.T(), rec)
	s.Require().Len(body, 1)
	s.Equal(api.UserRoleAdmin, body[0].Role)
}

func (s *ServerTestSuite) TestCreateUser_Duplicate() {
	s.handlers.CreateUser = handlerFunc[commands.CreateUserCommand, *user.User](
		func(_ context.Context, cmd commands.CreateUserCommand) (*user.User, error) {
			return nil, errs.NewConflictError("username", cmd.Username())
		})

	rec := s.serve(http.MethodPost, "/api/v1/users", adminToken, api.NewUser{Username: "manager", Password: "secret1"})

	s.Equal(http.StatusConflict, rec.Code)
}

func (s *ServerTestSuite) TestInternalErrorIsNotExposed() {
	s.handlers.ListClients = handlerFunc[queries.ListClientsQuery, []queries.ClientView](
		func(context.Context, queries.ListClientsQuery) ([]queries.ClientView, error) {
			return nil, errors.New("pq: connection refused to 10.0.0.5")
		})

	rec := s.serve(http.MethodGet, "/api/v1/clients", managerToken, nil)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "10.0.0.5")
}

func (s *ServerTestSuite) TestMetricsAndSwagger() {
	s.serve(http.MethodGet, "/health", "", nil)

	rec := s.serve(http.MethodGet, "/metrics", "", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `cargo_http_requests_total{method="GET",route="/health",status="200"} 1`)

	rec = s.serve(http.MethodGet, "/swagger/doc.json", "", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"/api/v1/shipments/{id}/status"`)
}

func TestRequestValidator(t *testing.T) {
	v := cargohttp.NewRequestValidator()

	require.NoError(t, v.Validate(&api.NewUser{Username: "manager2", Password: "secret1"}))

	err := v.Validate(&api.NewUser{Username: "manager2", Password: "short"})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "Password")
}
