// Package http exposes the ordering service over an Echo HTTP API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP handlers for the ordering API.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	createProductHandler     commands.CreateProductCommandHandler
	setAvailabilityHandler   commands.SetProductAvailabilityCommandHandler
	saveInvoiceHandler       commands.SaveInvoiceCommandHandler
	deleteInvoiceHandler     commands.DeleteInvoiceCommandHandler

	// Query handlers
	getOrderHandler             queries.GetOrderQueryHandler
	getAllOrdersHandler         queries.GetAllOrdersQueryHandler
	getAvailableProductsHandler queries.GetAvailableProductsQueryHandler
	getInvoiceHandler           queries.GetInvoiceQueryHandler
	getAllInvoicesHandler       queries.GetAllInvoicesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	setAvailabilityHandler commands.SetProductAvailabilityCommandHandler,
	saveInvoiceHandler commands.SaveInvoiceCommandHandler,
	deleteInvoiceHandler commands.DeleteInvoiceCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getAvailableProductsHandler queries.GetAvailableProductsQueryHandler,
	getInvoiceHandler queries.GetInvoiceQueryHandler,
	getAllInvoicesHandler queries.GetAllInvoicesQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		changeOrderStatusHandler:    changeOrderStatusHandler,
		createProductHandler:        createProductHandler,
		setAvailabilityHandler:      setAvailabilityHandler,
		saveInvoiceHandler:          saveInvoiceHandler,
		deleteInvoiceHandler:        deleteInvoiceHandler,
		getOrderHandler:             getOrderHandler,
		getAllOrdersHandler:         getAllOrdersHandler,
		getAvailableProductsHandler: getAvailableProductsHandler,
		getInvoiceHandler:           getInvoiceHandler,
		getAllInvoicesHandler:       getAllInvoicesHandler,
	}
}

// RegisterRoutes attaches all API endpoints to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.GetOrders)
	v1.GET("/orders/:id", s.GetOrder)
	v1.PATCH("/orders/:id/status", s.ChangeOrderStatus)

	v1.POST("/products", s.CreateProduct)
	v1.GET("/products", s.GetProducts)
	v1.PATCH("/products/:id/availability", s.SetProductAvailability)

	v1.POST("/invoices", s.SaveInvoice)
	v1.GET("/invoices", s.GetInvoices)
	v1.GET("/invoices/:number", s.GetInvoice)
	v1.DELETE("/invoices/:number", s.DeleteInvoice)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	if len(req.Items) == 0 {
		return badRequest(ctx, "Order must contain at least one item")
	}

	var customerID *kernel.UUID
	if req.CustomerID != nil {
		parsed, err := kernel.UUIDFromString(*req.CustomerID)
		if err != nil {
			return badRequest(ctx, "Invalid customer id")
		}
		customerID = &parsed
	}

	lines := make([]commands.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := kernel.UUIDFromString(item.ProductID)
		if err != nil {
			return badRequest(ctx, "Invalid product id: "+item.ProductID)
		}
		if item.Quantity < 1 {
			return badRequest(ctx, "Quantity must be at least 1")
		}
		lines = append(lines, commands.OrderLine{ProductID: productID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		customerID,
		req.CustomerPhone,
		req.Address,
		req.DeliveryType,
		req.PaymentMethod,
		lines,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	placed, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(placed))
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:id/status?status=X.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	status, err := order.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return badRequest(ctx, "Invalid status: "+ctx.QueryParam("status"))
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return badRequest(ctx, "Invalid status change: "+err.Error())
	}

	updated, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderReadModelToResponse(resp))
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	resp, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	orders := make([]OrderResponse, 0, len(resp))
	for _, readModel := range resp {
		orders = append(orders, orderReadModelToResponse(readModel))
	}

	return ctx.JSON(http.StatusOK, orders)
}

// CreateProduct handles POST /api/v1/products - registers a catalog product.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req CreateProductRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.MoneyFromString(req.Price)
	if err != nil {
		return badRequest(ctx, "Invalid price: "+req.Price)
	}

	cmd, err := commands.NewCreateProductCommand(kernel.NewUUID(), req.Name, req.Description, price, req.Available)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	created, err := s.createProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, productToResponse(created))
}

// SetProductAvailability handles PATCH /api/v1/products/:id/availability.
func (s *Server) SetProductAvailability(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	var req SetAvailabilityRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetProductAvailabilityCommand(productID, req.Available)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.setAvailabilityHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productToResponse(updated))
}

// GetProducts handles GET /api/v1/products - lists the orderable menu.
func (s *Server) GetProducts(ctx echo.Context) error {
	resp, err := s.getAvailableProductsHandler.Handle(
		ctx.Request().Context(), queries.NewGetAvailableProductsQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	products := make([]ProductResponse, 0, len(resp))
	for _, readModel := range resp {
		products = append(products, productReadModelToResponse(readModel))
	}

	return ctx.JSON(http.StatusOK, products)
}

// SaveInvoice handles POST /api/v1/invoices - stores an invoice.
func (s *Server) SaveInvoice(ctx echo.Context) error {
	var req InvoiceRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	amount, err := kernel.MoneyFromString(req.Amount)
	if err != nil {
		return badRequest(ctx, "Invalid amount: "+req.Amount)
	}

	cmd, err := commands.NewSaveInvoiceCommand(req.Number, req.Concept, amount)
	if err != nil {
		return domainError(ctx, err)
	}

	saved, err := s.saveInvoiceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, invoiceToResponse(saved))
}

// GetInvoices handles GET /api/v1/invoices.
func (s *Server) GetInvoices(ctx echo.Context) error {
	resp, err := s.getAllInvoicesHandler.Handle(ctx.Request().Context(), queries.NewGetAllInvoicesQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	invoices := make([]InvoiceResponse, 0, len(resp))
	for _, readModel := range resp {
		invoices = append(invoices, invoiceReadModelToResponse(readModel))
	}

	return ctx.JSON(http.StatusOK, invoices)
}

// GetInvoice handles GET /api/v1/invoices/:number.
func (s *Server) GetInvoice(ctx echo.Context) error {
	number, err := strconv.Atoi(ctx.Param("number"))
	if err != nil {
		return badRequest(ctx, "Invalid invoice number")
	}

	query, err := queries.NewGetInvoiceQuery(number)
	if err != nil {
		return domainError(ctx, err)
	}

	resp, err := s.getInvoiceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, invoiceReadModelToResponse(resp))
}

// DeleteInvoice handles DELETE /api/v1/invoices/:number.
func (s *Server) DeleteInvoice(ctx echo.Context) error {
	number, err := strconv.Atoi(ctx.Param("number"))
	if err != nil {
		return badRequest(ctx, "Invalid invoice number")
	}

	cmd, err := commands.NewDeleteInvoiceCommand(number)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.deleteInvoiceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps domain failures to HTTP statuses: unknown objects become
// 404, violated business rules 400, everything else 500.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
