package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/status"
	"orders/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

type createOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (kernel.UUID, error)
}

type updateOrderStatusHandler interface {
	Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (order.StatusUpdateResult, error)
}

type getOrdersHandler interface {
	Handle(ctx context.Context, query queries.GetOrdersQuery) ([]ports.OrderSummary, error)
}

type getOrdersByStatusHandler interface {
	Handle(ctx context.Context, query queries.GetOrdersByStatusQuery) ([]ports.OrderSummary, error)
}

type getOrderDetailHandler interface {
	Handle(ctx context.Context, query queries.GetOrderDetailQuery) (ports.OrderDetail, error)
}

type getMonthlyProfitHandler interface {
	Handle(ctx context.Context, query queries.GetMonthlyProfitQuery) (decimal.Decimal, error)
}

// Server handles the /orders endpoints.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       createOrderHandler
	updateOrderStatusHandler updateOrderStatusHandler

	// Query handlers
	getOrdersHandler         getOrdersHandler
	getOrdersByStatusHandler getOrdersByStatusHandler
	getOrderDetailHandler    getOrderDetailHandler
	getMonthlyProfitHandler  getMonthlyProfitHandler

	logger *slog.Logger
}

func NewServer(
	createOrderHandler createOrderHandler,
	updateOrderStatusHandler updateOrderStatusHandler,
	getOrdersHandler getOrdersHandler,
	getOrdersByStatusHandler getOrdersByStatusHandler,
	getOrderDetailHandler getOrderDetailHandler,
	getMonthlyProfitHandler getMonthlyProfitHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		getOrdersHandler:         getOrdersHandler,
		getOrdersByStatusHandler: getOrdersByStatusHandler,
		getOrderDetailHandler:    getOrderDetailHandler,
		getMonthlyProfitHandler:  getMonthlyProfitHandler,
		logger:                   logger.With("component", "http_server"),
	}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetOrders handles GET /orders - every order, newest first.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetOrdersQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toSummaryResponses(orders))
}

// GetOrdersByStatus handles GET /orders/status. A parsable statusId wins over
// statusName; with neither the result is an empty list.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	var statusName, statusID *string

	if err := runtime.BindQueryParameter("form", true, false, "statusName", ctx.QueryParams(), &statusName); err != nil {
		return badRequest(ctx, "Invalid format for parameter statusName: "+err.Error())
	}
	if err := runtime.BindQueryParameter("form", true, false, "statusId", ctx.QueryParams(), &statusID); err != nil {
		return badRequest(ctx, "Invalid format for parameter statusId: "+err.Error())
	}

	query := queries.NewGetOrdersByStatusQuery(status.Ref{})
	if id, ok := parseOptionalUUID(statusID); ok {
		query = queries.NewGetOrdersByStatusIDQuery(id)
	} else if statusName != nil && strings.TrimSpace(*statusName) != "" {
		query = queries.NewGetOrdersByStatusNameQuery(*statusName)
	}

	orders, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toSummaryResponses(orders))
}

// GetOrderDetail handles GET /orders/{orderId}. An id that is not a UUID
// does not match the route and yields 404.
func (s *Server) GetOrderDetail(ctx echo.Context) error {
	orderID, ok := bindOrderID(ctx)
	if !ok {
		return writeProblem(ctx, Problem{Status: http.StatusNotFound})
	}

	query, err := queries.NewGetOrderDetailQuery(orderID)
	if err != nil {
		return writeProblem(ctx, Problem{Status: http.StatusNotFound})
	}

	detail, err := s.getOrderDetailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toDetailResponse(detail))
}

// GetMonthlyProfit handles GET /orders/profit and answers with a bare number.
func (s *Server) GetMonthlyProfit(ctx echo.Context) error {
	profit, err := s.getMonthlyProfitHandler.Handle(ctx.Request().Context(), queries.NewGetMonthlyProfitQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, money(profit))
}

// CreateOrder handles POST /orders. The new id is returned as the body and
// in the Location header.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(request.ResellerID, request.CustomerID, request.commandItems())
	if err != nil {
		return s.writeError(ctx, err)
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderLocation, "/orders/"+orderID.String())
	return ctx.JSON(http.StatusCreated, orderID)
}

// UpdateOrderStatus handles PATCH /orders/{orderId}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, ok := bindOrderID(ctx)
	if !ok {
		return writeProblem(ctx, Problem{Status: http.StatusNotFound})
	}

	var request UpdateOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status.NewRef(request.NewStatusName, request.NewStatusID))
	if err != nil {
		return writeProblem(ctx, Problem{Status: http.StatusNotFound})
	}

	result, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	switch result {
	case order.Updated, order.NoChange:
		return ctx.NoContent(http.StatusNoContent)
	case order.NotFound:
		return writeProblem(ctx, Problem{Status: http.StatusNotFound})
	case order.InvalidStatus:
		return ctx.String(http.StatusBadRequest, "Status not found")
	}
	return ctx.NoContent(http.StatusBadRequest)
}

func bindOrderID(ctx echo.Context) (kernel.UUID, bool) {
	var orderID openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, false
	}

	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return kernel.UUID{}, false
	}
	return id, true
}

func parseOptionalUUID(raw *string) (kernel.UUID, bool) {
	if raw == nil {
		return kernel.UUID{}, false
	}
	id, err := kernel.UUIDFromString(strings.TrimSpace(*raw))
	if err != nil {
		return kernel.UUID{}, false
	}
	return id, true
}
