// Package http exposes the fulfillment ledger over a REST API.
// Handlers translate requests into commands and queries, and map domain
// errors onto HTTP status codes. The caller's account is taken from the
// X-Account-Id header; the execution host authenticates it upstream.
package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// accountHeader carries the authenticated caller's account identifier.
const accountHeader = "X-Account-Id"

// Error is the JSON error envelope returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the payload for placing an order.
// Price and Deposit are decimal strings because the monetary range exceeds
// what JSON numbers can carry safely.
type CreateOrderRequest struct {
	OrderID       string `json:"order_id"`
	CustomerID    string `json:"customer_id"`
	Description   string `json:"description"`
	WeightInGrams uint32 `json:"weight_in_grams"`
	Price         string `json:"price"`
	Deposit       string `json:"deposit"`
}

// UpdateOrderStatusRequest is the payload for a status transition.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// SubmitFeedbackRequest is the payload for rating a delivered order.
type SubmitFeedbackRequest struct {
	Feedback string `json:"feedback"`
	Comment  string `json:"comment"`
	Deposit  string `json:"deposit"`
}

// CustomerProfileRequest is the payload for registering or updating a profile.
type CustomerProfileRequest struct {
	Name            string `json:"name"`
	FullAddress     string `json:"full_address"`
	Landmark        string `json:"landmark"`
	PlusCodeAddress string `json:"plus_code_address"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Deposit         string `json:"deposit"`
}

// AdminRequest is the payload for granting the admin role.
type AdminRequest struct {
	AccountID string `json:"account_id"`
}

// OrderResponse is the JSON form of an order read model.
type OrderResponse struct {
	ID              string `json:"id"`
	CustomerID      string `json:"customer_id"`
	Description     string `json:"description"`
	WeightInGrams   uint32 `json:"weight_in_grams"`
	Price           string `json:"price"`
	PaymentType     string `json:"payment_type"`
	Status          string `json:"status"`
	Feedback        string `json:"feedback"`
	FeedbackComment string `json:"feedback_comment"`
	PickupTime      string `json:"pickup_time"`
	DeliveryTime    string `json:"delivery_time"`
}

// CustomerResponse is the JSON form of a customer read model.
type CustomerResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	FullAddress     string `json:"full_address"`
	Landmark        string `json:"landmark"`
	PlusCodeAddress string `json:"plus_code_address"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Role            string `json:"role"`
}

// AdminResponse is the JSON form of an admin read model.
type AdminResponse struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	submitFeedbackHandler    commands.SubmitFeedbackCommandHandler
	registerCustomerHandler  commands.RegisterCustomerCommandHandler
	updateCustomerHandler    commands.UpdateCustomerCommandHandler
	createAdminHandler       commands.CreateAdminCommandHandler
	removeAdminHandler       commands.RemoveAdminCommandHandler

	// Query handlers
	getOrderByIDHandler          queries.GetOrderByIDQueryHandler
	getOrderListHandler          queries.GetOrderListQueryHandler
	getOrdersByCustomerIDHandler queries.GetOrdersByCustomerIDQueryHandler
	getCustomerHandler           queries.GetCustomerByAccountIDQueryHandler
	getAdminHandler              queries.GetAdminByAccountIDQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	submitFeedbackHandler commands.SubmitFeedbackCommandHandler,
	registerCustomerHandler commands.RegisterCustomerCommandHandler,
	updateCustomerHandler commands.UpdateCustomerCommandHandler,
	createAdminHandler commands.CreateAdminCommandHandler,
	removeAdminHandler commands.RemoveAdminCommandHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getOrderListHandler queries.GetOrderListQueryHandler,
	getOrdersByCustomerIDHandler queries.GetOrdersByCustomerIDQueryHandler,
	getCustomerHandler queries.GetCustomerByAccountIDQueryHandler,
	getAdminHandler queries.GetAdminByAccountIDQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:           createOrderHandler,
		updateOrderStatusHandler:     updateOrderStatusHandler,
		submitFeedbackHandler:        submitFeedbackHandler,
		registerCustomerHandler:      registerCustomerHandler,
		updateCustomerHandler:        updateCustomerHandler,
		createAdminHandler:           createAdminHandler,
		removeAdminHandler:           removeAdminHandler,
		getOrderByIDHandler:          getOrderByIDHandler,
		getOrderListHandler:          getOrderListHandler,
		getOrdersByCustomerIDHandler: getOrdersByCustomerIDHandler,
		getCustomerHandler:           getCustomerHandler,
		getAdminHandler:              getAdminHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrderList)
	api.GET("/orders/:id", s.GetOrderByID)
	api.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	api.POST("/orders/:id/feedback", s.SubmitFeedback)

	api.POST("/customers", s.RegisterCustomer)
	api.PUT("/customers", s.UpdateCustomer)
	api.GET("/customers/:id", s.GetCustomer)
	api.GET("/customers/:id/orders", s.GetOrdersByCustomer)

	api.POST("/admins", s.CreateAdmin)
	api.DELETE("/admins/:id", s.RemoveAdmin)
	api.GET("/admins/:id", s.GetAdmin)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req CreateOrderRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.NewOrderID(req.OrderID)
	if err != nil {
		return writeError(ctx, err)
	}
	customerID, err := kernel.NewAccountID(req.CustomerID)
	if err != nil {
		return writeError(ctx, err)
	}
	price, err := kernel.NewMoneyFromString(req.Price)
	if err != nil {
		return writeError(ctx, err)
	}
	deposit, err := kernel.NewMoneyFromString(req.Deposit)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		caller, orderID, customerID, req.Description, req.WeightInGrams, price, deposit)
	if err != nil {
		return writeError(ctx, err)
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateOrderStatusRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.NewOrderID(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	status, err := parseStatus(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(caller, orderID, status)
	if err != nil {
		return writeError(ctx, err)
	}

	if handleErr := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// SubmitFeedback handles POST /api/v1/orders/:id/feedback.
func (s *Server) SubmitFeedback(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req SubmitFeedbackRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.NewOrderID(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	feedback, err := parseFeedback(req.Feedback)
	if err != nil {
		return writeError(ctx, err)
	}

	deposit, err := kernel.NewMoneyFromString(req.Deposit)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSubmitFeedbackCommand(caller, orderID, feedback, req.Comment, deposit)
	if err != nil {
		return writeError(ctx, err)
	}

	if handleErr := s.submitFeedbackHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// RegisterCustomer handles POST /api/v1/customers.
func (s *Server) RegisterCustomer(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req CustomerProfileRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return badRequest(ctx, "Invalid request body")
	}

	deposit, err := kernel.NewMoneyFromString(req.Deposit)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRegisterCustomerCommand(caller, profileFromRequest(req), deposit)
	if err != nil {
		return writeError(ctx, err)
	}

	if handleErr := s.registerCustomerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateCustomer handles PUT /api/v1/customers.
func (s *Server) UpdateCustomer(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req CustomerProfileRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return badRequest(ctx, "Invalid request body")
	}

	deposit, err := kernel.NewMoneyFromString(req.Deposit)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateCustomerCommand(caller, profileFromRequest(req), deposit)
	if err != nil {
		return writeError(ctx, err)
	}

	if handleErr := s.updateCustomerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// CreateAdmin handles POST /api/v1/admins.
func (s *Server) CreateAdmin(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req AdminRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return badRequest(ctx, "Invalid request body")
	}

	adminID, err := kernel.NewAccountID(req.AccountID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateAdminCommand(caller, adminID)
	if err != nil {
		return writeError(ctx, err)
	}

	if handleErr := s.createAdminHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RemoveAdmin handles DELETE /api/v1/admins/:id.
func (s *Server) RemoveAdmin(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	adminID, err := kernel.NewAccountID(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRemoveAdminCommand(caller, adminID)
	if err != nil {
		return writeError(ctx, err)
	}

	if handleErr := s.removeAdminHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderByID handles GET /api/v1/orders/:id.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.NewOrderID(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderByIDQuery(caller, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(view))
}

// GetOrderList handles GET /api/v1/orders.
func (s *Server) GetOrderList(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderListQuery(caller)
	if err != nil {
		return writeError(ctx, err)
	}

	views, err := s.getOrderListHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderResponse, len(views))
	for i, view := range views {
		response[i] = orderResponse(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrdersByCustomer handles GET /api/v1/customers/:id/orders.
func (s *Server) GetOrdersByCustomer(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	customerID, err := kernel.NewAccountID(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrdersByCustomerIDQuery(caller, customerID)
	if err != nil {
		return writeError(ctx, err)
	}

	views, err := s.getOrdersByCustomerIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderResponse, len(views))
	for i, view := range views {
		response[i] = orderResponse(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCustomer handles GET /api/v1/customers/:id.
func (s *Server) GetCustomer(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	accountID, err := kernel.NewAccountID(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetCustomerByAccountIDQuery(caller, accountID)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.getCustomerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CustomerResponse{
		ID:              view.ID.String(),
		Name:            view.Profile.Name,
		FullAddress:     view.Profile.FullAddress,
		Landmark:        view.Profile.Landmark,
		PlusCodeAddress: view.Profile.PlusCodeAddress,
		Phone:           view.Profile.Phone,
		Email:           view.Profile.Email,
		Role:            view.Role.String(),
	})
}

// GetAdmin handles GET /api/v1/admins/:id.
func (s *Server) GetAdmin(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	accountID, err := kernel.NewAccountID(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetAdminByAccountIDQuery(caller, accountID)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.getAdminHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AdminResponse{
		ID:   view.ID.String(),
		Role: view.Role.String(),
	})
}

// callerID extracts the authenticated account from the request headers.
func callerID(ctx echo.Context) (kernel.AccountID, error) {
	raw := ctx.Request().Header.Get(accountHeader)
	if raw == "" {
		return kernel.AccountID{}, errs.NewValueIsRequiredError("account header")
	}
	return kernel.NewAccountID(raw)
}

// profileFromRequest maps the request payload onto a domain profile.
func profileFromRequest(req CustomerProfileRequest) account.Profile {
	return account.Profile{
		Name:            req.Name,
		FullAddress:     req.FullAddress,
		Landmark:        req.Landmark,
		PlusCodeAddress: req.PlusCodeAddress,
		Phone:           req.Phone,
		Email:           req.Email,
	}
}

// orderResponse maps an order view onto its JSON form.
func orderResponse(view queries.OrderView) OrderResponse {
	return OrderResponse{
		ID:              view.ID.String(),
		CustomerID:      view.CustomerID.String(),
		Description:     view.Description,
		WeightInGrams:   view.WeightInGrams,
		Price:           view.Price.String(),
		PaymentType:     view.PaymentType.String(),
		Status:          view.Status.String(),
		Feedback:        view.Feedback.String(),
		FeedbackComment: view.FeedbackComment,
		PickupTime:      view.PickupTime.UTC().Format(timeFormat),
		DeliveryTime:    view.DeliveryTime.UTC().Format(timeFormat),
	}
}

const timeFormat = "2006-01-02T15:04:05Z07:00"

// parseStatus maps a request string onto an order status.
func parseStatus(raw string) (order.Status, error) {
	switch raw {
	case "InProgress":
		return order.InProgress, nil
	case "Delivered":
		return order.Delivered, nil
	case "Cancelled":
		return order.Cancelled, nil
	default:
		return order.Unknown, errs.NewValueIsInvalidError("status")
	}
}

// parseFeedback maps a request string onto a feedback category.
func parseFeedback(raw string) (order.Feedback, error) {
	switch raw {
	case "Excellent":
		return order.FeedbackExcellent, nil
	case "Good":
		return order.FeedbackGood, nil
	case "Average":
		return order.FeedbackAverage, nil
	case "Bad":
		return order.FeedbackBad, nil
	case "Worst":
		return order.FeedbackWorst, nil
	default:
		return order.FeedbackUnknown, errs.NewValueIsInvalidError("feedback")
	}
}

// badRequest writes a generic 400 envelope.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps domain errors onto HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	var notAuthorized *errs.NotAuthorizedError
	var notFound *errs.ObjectNotFoundError
	var insufficientFunds *errs.InsufficientFundsError
	var invalid *errs.ValueIsInvalidError
	var required *errs.ValueIsRequiredError
	var outOfRange *errs.ValueIsOutOfRangeError

	switch {
	case errors.As(err, &notAuthorized):
		code = http.StatusForbidden
	case errors.As(err, &notFound):
		code = http.StatusNotFound
	case errors.As(err, &insufficientFunds):
		code = http.StatusPaymentRequired
	case errors.As(err, &invalid), errors.As(err, &required), errors.As(err, &outOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, order.ErrOrderMustHaveConfirmedStatus),
		errors.Is(err, order.ErrOrderMustHaveInProgressStatus),
		errors.Is(err, order.ErrOrderHasDeliveredStatus),
		errors.Is(err, order.ErrOrderHasCancelledStatus):
		code = http.StatusConflict
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
