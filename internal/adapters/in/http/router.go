package http

import (
	"log/slog"
	"net/http"
	"sync"

	"cargo/internal/api"
	"cargo/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// RouterConfig carries the collaborators NewRouter needs besides the server.
type RouterConfig struct {
	Verifier   ports.TokenVerifier
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
	Logger     *slog.Logger
}

// NewRouter builds the echo instance: API routes behind bearer authentication
// and then OpenAPI validation, plus /health, /metrics and /swagger/*.
func NewRouter(server api.ServerInterface, cfg RouterConfig) (*echo.Echo, error) {
	swagger, err := api.GetSwagger()
	if err != nil {
		return nil, err
	}
	if err = registerSwaggerDoc(swagger.MarshalJSON); err != nil {
		return nil, err
	}

	validate, err := ValidateRequests(swagger)
	if err != nil {
		return nil, err
	}

	metrics, err := NewRequestMetrics(cfg.Registerer)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = errorHandler(cfg.Logger)

	e.Use(metrics.Middleware())
	e.Use(middleware.Recover())
	e.Use(Authenticate(cfg.Verifier))
	e.Use(validate)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api.RegisterHandlers(e, server)

	return e, nil
}

type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

var swaggerOnce sync.Once

// registerSwaggerDoc hands the OpenAPI document to swag, where the Swagger UI
// handler reads it as doc.json. swag allows one registration per process.
func registerSwaggerDoc(marshal func() ([]byte, error)) error {
	var err error
	swaggerOnce.Do(func() {
		var doc []byte
		if doc, err = marshal(); err != nil {
			return
		}
		swag.Register(swag.Name, swaggerDoc{json: string(doc)})
	})
	return err
}
