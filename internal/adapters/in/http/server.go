// Package http exposes the order lifecycle over a JSON REST API.
package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"campusfood/internal/core/application/usecases/commands"
	"campusfood/internal/core/application/usecases/queries"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/core/domain/model/payment"
	"campusfood/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Server adapts HTTP requests to the command and query handlers.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	initiatePaymentHandler commands.InitiatePaymentCommandHandler
	registerOrderHandler   commands.RegisterOrderCommandHandler

	// Query handlers
	getPendingOrdersHandler    queries.GetPendingOrdersQueryHandler
	getRegisteredOrdersHandler queries.GetRegisteredOrdersQueryHandler

	logger *slog.Logger
}

func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	initiatePaymentHandler commands.InitiatePaymentCommandHandler,
	registerOrderHandler commands.RegisterOrderCommandHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	getRegisteredOrdersHandler queries.GetRegisteredOrdersQueryHandler,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		createOrderHandler:         createOrderHandler,
		initiatePaymentHandler:     initiatePaymentHandler,
		registerOrderHandler:       registerOrderHandler,
		getPendingOrdersHandler:    getPendingOrdersHandler,
		getRegisteredOrdersHandler: getRegisteredOrdersHandler,
		logger:                     logger.With("component", "http"),
	}
}

// RegisterRoutes mounts the API, the API document and, when metrics is not nil, the
// prometheus endpoint.
func (s *Server) RegisterRoutes(e *echo.Echo, doc *openapi3.T, metrics http.Handler) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/pending", s.GetPendingOrders)
	api.GET("/orders/registered", s.GetRegisteredOrders)
	api.POST("/orders/:orderId/payment", s.InitiatePayment)
	api.POST("/orders/:orderId/registration", s.RegisterOrder)

	if doc != nil {
		registerSwagger(doc)
		e.GET("/openapi.json", func(c echo.Context) error {
			return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, openAPIDocument)
		})
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	if metrics != nil {
		e.GET("/metrics", echo.WrapHandler(metrics))
	}
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, http.StatusBadRequest, "Invalid request body", err)
	}

	cmd, err := newCreateOrderCommand(body)
	if err != nil {
		return s.fail(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error(), err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.failFor(ctx, "Failed to create order", err)
	}

	return ctx.JSON(http.StatusCreated, CreatedOrder{
		ID:        created.ID.String(),
		Total:     created.Total.String(),
		Status:    created.Status.String(),
		CreatedAt: created.CreatedAt,
	})
}

// GetPendingOrders handles GET /api/v1/orders/pending.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	views, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetPendingOrdersQuery())
	if err != nil {
		return s.failFor(ctx, "Failed to retrieve pending orders", err)
	}
	return ctx.JSON(http.StatusOK, toOrders(views))
}

// GetRegisteredOrders handles GET /api/v1/orders/registered.
func (s *Server) GetRegisteredOrders(ctx echo.Context) error {
	views, err := s.getRegisteredOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetRegisteredOrdersQuery())
	if err != nil {
		return s.failFor(ctx, "Failed to retrieve registered orders", err)
	}
	return ctx.JSON(http.StatusOK, toOrders(views))
}

// InitiatePayment handles POST /api/v1/orders/{orderId}/payment.
func (s *Server) InitiatePayment(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return s.fail(ctx, http.StatusBadRequest, "Invalid format for parameter orderId", err)
	}

	var body PaymentRequest
	if err = ctx.Bind(&body); err != nil {
		return s.fail(ctx, http.StatusBadRequest, "Invalid request body", err)
	}
	method, err := payment.ParseMethod(body.Method)
	if err != nil {
		return s.fail(ctx, http.StatusBadRequest, err.Error(), err)
	}

	cmd, err := commands.NewInitiatePaymentCommand(orderID, method)
	if err != nil {
		return s.fail(ctx, http.StatusBadRequest, err.Error(), err)
	}

	status, err := s.initiatePaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.failFor(ctx, "Failed to settle order", err)
	}

	return ctx.JSON(http.StatusOK, PaymentResult{ID: orderID.String(), Status: status.String()})
}

// RegisterOrder handles POST /api/v1/orders/{orderId}/registration.
func (s *Server) RegisterOrder(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return s.fail(ctx, http.StatusBadRequest, "Invalid format for parameter orderId", err)
	}

	cmd, err := commands.NewRegisterOrderCommand(orderID)
	if err != nil {
		return s.fail(ctx, http.StatusBadRequest, err.Error(), err)
	}

	if err = s.registerOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.failFor(ctx, "Failed to register order", err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func bindOrderID(ctx echo.Context) (kernel.UUID, error) {
	var raw string
	err := runtime.BindStyledParameterWithLocation(
		"simple", false, "orderId", runtime.ParamLocationPath, ctx.Param("orderId"), &raw,
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, err
	}
	return id, id.Validate()
}

func newCreateOrderCommand(body NewOrder) (commands.CreateOrderCommand, error) {
	payer, errPayer := parseID("payerId", body.PayerID)
	restaurant, errRestaurant := parseID("restaurantId", body.RestaurantID)
	target, errTarget := parseID("deliveryTargetId", body.DeliveryTargetID)
	if err := errors.Join(errPayer, errRestaurant, errTarget); err != nil {
		return commands.CreateOrderCommand{}, err
	}

	items := make([]order.Item, 0, len(body.Items))
	for i, it := range body.Items {
		price, err := kernel.NewMoney(it.Price)
		if err != nil {
			return commands.CreateOrderCommand{}, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d].price", i), err)
		}
		item, err := order.NewItem(it.Name, price)
		if err != nil {
			return commands.CreateOrderCommand{}, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i), err)
		}
		items = append(items, item)
	}

	return commands.NewCreateOrderCommand(payer, restaurant, target, items)
}

func parseID(name, raw string) (kernel.UUID, error) {
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(name)
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func toOrders(views []queries.OrderView) []Order {
	response := make([]Order, len(views))
	for i, v := range views {
		response[i] = Order{
			ID:               v.ID.String(),
			PayerID:          v.Payer.String(),
			RestaurantID:     v.Restaurant.String(),
			DeliveryTargetID: v.DeliveryTarget.String(),
			Total:            v.Total.String(),
			Status:           v.Status.String(),
			CreatedAt:        v.CreatedAt,
		}
	}
	return response
}

// statusFor maps domain errors onto response codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrOrderIsNotValidated):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) failFor(ctx echo.Context, fallback string, err error) error {
	code := statusFor(err)
	message := fallback
	if code != http.StatusInternalServerError {
		message = err.Error()
	}
	return s.fail(ctx, code, message, err)
}

func (s *Server) fail(ctx echo.Context, code int, message string, err error) error {
	if code >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
	}
	return ctx.JSON(code, Error{Code: code, Message: message})
}
