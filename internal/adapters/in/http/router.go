package http

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"orders/internal/pkg/metrics"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

type RouterConfig struct {
	Logger *slog.Logger

	// Contract is the raw OpenAPI document served at /openapi.yaml and
	// used for request validation.
	Contract []byte

	// Metrics and Gatherer are optional; without them /metrics is not
	// mounted.
	Metrics  *metrics.ServerMetrics
	Gatherer prometheus.Gatherer
}

var registerSwaggerOnce sync.Once

// NewEcho builds the echo instance with middleware and every route mounted.
func NewEcho(ctx context.Context, server *Server, cfg RouterConfig) (*echo.Echo, error) {
	doc, err := LoadContract(ctx, cfg.Contract)
	if err != nil {
		return nil, err
	}
	validator, err := contractValidator(doc)
	if err != nil {
		return nil, err
	}
	if err = registerSwagger(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(requestLogger(cfg.Logger))
	if cfg.Metrics != nil {
		e.Use(requestMetrics(cfg.Metrics))
	}

	e.GET("/health", server.Health)
	e.GET("/openapi.yaml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", cfg.Contract)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	if cfg.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(metrics.Handler(cfg.Gatherer)))
	}

	orders := e.Group("/orders", validator)
	orders.GET("", server.GetOrders)
	orders.POST("", server.CreateOrder)
	orders.GET("/status", server.GetOrdersByStatus)
	orders.GET("/profit", server.GetMonthlyProfit)
	orders.GET("/:orderId", server.GetOrderDetail)
	orders.PATCH("/:orderId/status", server.UpdateOrderStatus)

	return e, nil
}

// registerSwagger publishes doc to swag so /swagger/doc.json serves it. The
// swag registry is process wide and accepts a single registration.
func registerSwagger(doc *openapi3.T) error {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return err
	}

	registerSwaggerOnce.Do(func() {
		swag.Register(swag.Name, &swag.Spec{
			Version:          doc.Info.Version,
			Title:            doc.Info.Title,
			Description:      doc.Info.Description,
			InfoInstanceName: swag.Name,
			SwaggerTemplate:  string(raw),
		})
	})
	return nil
}
