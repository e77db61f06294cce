// Package http exposes the stand's use cases over an echo HTTP API. The
// handlers translate JSON payloads into commands and queries and map core
// errors onto HTTP statuses; no business rules live here.
package http

import (
	"net/http"
	"time"

	"pastelstand/internal/core/application/usecases/commands"
	"pastelstand/internal/core/application/usecases/queries"
	"pastelstand/internal/core/domain/model/kernel"
	"pastelstand/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerCustomerHandler      commands.RegisterCustomerCommandHandler
	confirmCustomerHandler       commands.ConfirmCustomerCommandHandler
	upsertFlavorsHandler         commands.UpsertFlavorsCommandHandler
	updateFlavorHandler          commands.UpdateFlavorCommandHandler
	updateFlavorInventoryHandler commands.UpdateFlavorInventoryCommandHandler
	createOrderHandler           commands.CreateOrderCommandHandler
	advanceOrderItemHandler      commands.AdvanceOrderItemCommandHandler
	cancelOrderHandler           commands.CancelOrderCommandHandler

	// Query handlers
	getCustomerHandler       queries.GetCustomerQueryHandler
	getAllFlavorsHandler     queries.GetAllFlavorsQueryHandler
	getActiveOrdersHandler   queries.GetActiveOrdersQueryHandler
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
	getOrderHistoryHandler   queries.GetOrderHistoryQueryHandler
	getDailyReportHandler    queries.GetDailyReportQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerCustomerHandler commands.RegisterCustomerCommandHandler,
	confirmCustomerHandler commands.ConfirmCustomerCommandHandler,
	upsertFlavorsHandler commands.UpsertFlavorsCommandHandler,
	updateFlavorHandler commands.UpdateFlavorCommandHandler,
	updateFlavorInventoryHandler commands.UpdateFlavorInventoryCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	advanceOrderItemHandler commands.AdvanceOrderItemCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getCustomerHandler queries.GetCustomerQueryHandler,
	getAllFlavorsHandler queries.GetAllFlavorsQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	getDailyReportHandler queries.GetDailyReportQueryHandler,
) *Server {
	return &Server{
		registerCustomerHandler:      registerCustomerHandler,
		confirmCustomerHandler:       confirmCustomerHandler,
		upsertFlavorsHandler:         upsertFlavorsHandler,
		updateFlavorHandler:          updateFlavorHandler,
		updateFlavorInventoryHandler: updateFlavorInventoryHandler,
		createOrderHandler:           createOrderHandler,
		advanceOrderItemHandler:      advanceOrderItemHandler,
		cancelOrderHandler:           cancelOrderHandler,
		getCustomerHandler:           getCustomerHandler,
		getAllFlavorsHandler:         getAllFlavorsHandler,
		getActiveOrdersHandler:       getActiveOrdersHandler,
		getCustomerOrdersHandler:     getCustomerOrdersHandler,
		getOrderHistoryHandler:       getOrderHistoryHandler,
		getDailyReportHandler:        getDailyReportHandler,
	}
}

// RegisterRoutes wires every endpoint onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.POST("/customers/register", s.RegisterCustomer)
	api.POST("/customers/confirm", s.ConfirmCustomer)
	api.GET("/customers/:customerId", s.GetCustomer)

	api.GET("/flavors", s.GetFlavors)
	api.POST("/flavors", s.UpsertFlavor)
	api.POST("/flavors/batch", s.UpsertFlavorBatch)
	api.PUT("/flavors/:id", s.UpdateFlavor)
	api.PATCH("/flavors/:id/inventory", s.UpdateFlavorInventory)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/history", s.GetOrderHistory)
	api.GET("/orders/customer/:customerId", s.GetCustomerOrders)
	api.POST("/orders/:orderId/items/:itemId/advance", s.AdvanceOrderItem)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)

	api.GET("/reports/daily", s.GetDailyReport)
}

// RegisterCustomer handles POST /api/customers/register.
func (s *Server) RegisterCustomer(ctx echo.Context) error {
	var req registerCustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return respondInvalid(ctx)
	}

	cmd, err := commands.NewRegisterCustomerCommand(req.Name)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.registerCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated,
		toCustomerResponse(result.ID.String(), result.Name, result.CreatedAt))
}

// ConfirmCustomer handles POST /api/customers/confirm. The provided name
// must match the stored one case-insensitively; the stored casing wins.
func (s *Server) ConfirmCustomer(ctx echo.Context) error {
	var req confirmCustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return respondInvalid(ctx)
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return respondInvalid(ctx)
	}

	cmd, err := commands.NewConfirmCustomerCommand(customerID, req.Name)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.confirmCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK,
		toCustomerResponse(result.ID.String(), result.Name, result.CreatedAt))
}

// GetCustomer handles GET /api/customers/:customerId.
func (s *Server) GetCustomer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerId"))
	if err != nil {
		return respondInvalid(ctx)
	}

	query, err := queries.NewGetCustomerQuery(customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.getCustomerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK,
		toCustomerResponse(view.ID.String(), view.Name, view.CreatedAt))
}

// GetFlavors handles GET /api/flavors.
func (s *Server) GetFlavors(ctx echo.Context) error {
	flavors, err := s.getAllFlavorsHandler.Handle(ctx.Request().Context(), queries.NewGetAllFlavorsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]flavorResponse, 0, len(flavors))
	for _, view := range flavors {
		response = append(response, flavorResponse{
			ID:                view.ID.String(),
			Name:              view.Name,
			Description:       view.Description,
			ImageURL:          view.ImageURL,
			AvailableQuantity: view.AvailableQuantity,
			Price:             view.Price,
			CreatedAt:         view.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpsertFlavor handles POST /api/flavors with a single flavor payload.
func (s *Server) UpsertFlavor(ctx echo.Context) error {
	var req upsertFlavorRequest
	if err := ctx.Bind(&req); err != nil {
		return respondInvalid(ctx)
	}

	results, err := s.upsertFlavors(ctx, []upsertFlavorRequest{req})
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, results[0])
}

// UpsertFlavorBatch handles POST /api/flavors/batch with a flavor list.
func (s *Server) UpsertFlavorBatch(ctx echo.Context) error {
	var req []upsertFlavorRequest
	if err := ctx.Bind(&req); err != nil {
		return respondInvalid(ctx)
	}

	results, err := s.upsertFlavors(ctx, req)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, results)
}

func (s *Server) upsertFlavors(
	ctx echo.Context, reqs []upsertFlavorRequest,
) ([]upsertedFlavorResponse, error) {
	specs := make([]commands.FlavorSpec, 0, len(reqs))
	for _, req := range reqs {
		specs = append(specs, commands.FlavorSpec{
			Name:              req.Name,
			Description:       req.Description,
			ImageURL:          req.ImageURL,
			AvailableQuantity: req.AvailableQuantity,
			Price:             req.Price,
		})
	}

	cmd, err := commands.NewUpsertFlavorsCommand(specs)
	if err != nil {
		return nil, err
	}

	results, err := s.upsertFlavorsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return nil, err
	}

	response := make([]upsertedFlavorResponse, 0, len(results))
	for _, result := range results {
		response = append(response, upsertedFlavorResponse{
			ID:                result.ID.String(),
			Name:              result.Name,
			AvailableQuantity: result.AvailableQuantity,
			Price:             result.Price,
			Created:           result.Created,
		})
	}

	return response, nil
}

// UpdateFlavor handles PUT /api/flavors/:id.
func (s *Server) UpdateFlavor(ctx echo.Context) error {
	flavorID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondInvalid(ctx)
	}

	var req updateFlavorRequest
	if err = ctx.Bind(&req); err != nil {
		return respondInvalid(ctx)
	}

	cmd, err := commands.NewUpdateFlavorCommand(flavorID, req.Name, req.Description, req.ImageURL, req.Price)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateFlavorHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateFlavorInventory handles PATCH /api/flavors/:id/inventory.
func (s *Server) UpdateFlavorInventory(ctx echo.Context) error {
	flavorID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondInvalid(ctx)
	}

	var req updateInventoryRequest
	if err = ctx.Bind(&req); err != nil {
		return respondInvalid(ctx)
	}

	cmd, err := commands.NewUpdateFlavorInventoryCommand(flavorID, req.AvailableQuantity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateFlavorInventoryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateOrder handles POST /api/orders. The customer id is optional; a
// request without one registers the customer under the provided name.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondInvalid(ctx)
	}

	var customerID *kernel.UUID
	if req.CustomerID != "" {
		parsed, err := kernel.UUIDFromString(req.CustomerID)
		if err != nil {
			return respondInvalid(ctx)
		}
		customerID = &parsed
	}

	lines := make([]commands.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		flavorID, err := kernel.UUIDFromString(item.FlavorID)
		if err != nil {
			return respondInvalid(ctx)
		}
		lines = append(lines, commands.OrderLine{
			FlavorID: flavorID,
			Quantity: item.Quantity,
			Notes:    item.Notes,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), customerID, req.CustomerName, lines)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toCreateOrderResponse(result))
}

// GetActiveOrders handles GET /api/orders/active with an optional search.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery(ctx.QueryParam("search"))

	groups, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]customerOrdersGroupResponse, 0, len(groups))
	for _, group := range groups {
		orders := make([]orderResponse, 0, len(group.Orders))
		for _, view := range group.Orders {
			orders = append(orders, toOrderResponse(view))
		}
		response = append(response, customerOrdersGroupResponse{
			CustomerID:   group.CustomerID.String(),
			CustomerName: group.CustomerName,
			Orders:       orders,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderHistory handles GET /api/orders/history with an optional search.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	query := queries.NewGetOrderHistoryQuery(ctx.QueryParam("search"))

	groups, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]customerOrdersGroupResponse, 0, len(groups))
	for _, group := range groups {
		orders := make([]orderResponse, 0, len(group.Orders))
		for _, view := range group.Orders {
			orders = append(orders, toOrderResponse(view))
		}
		response = append(response, customerOrdersGroupResponse{
			CustomerID:   group.CustomerID.String(),
			CustomerName: group.CustomerName,
			Orders:       orders,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCustomerOrders handles GET /api/orders/customer/:customerId.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerId"))
	if err != nil {
		return respondInvalid(ctx)
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]customerOrderResponse, 0, len(orders))
	for _, view := range orders {
		response = append(response, customerOrderResponse{
			orderResponse: toOrderResponse(view.OrderView),
			IsCancelable:  view.IsCancelable,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// AdvanceOrderItem handles POST /api/orders/:orderId/items/:itemId/advance.
// An empty body or empty targetStatus advances to the next stage.
func (s *Server) AdvanceOrderItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondInvalid(ctx)
	}
	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return respondInvalid(ctx)
	}

	var req advanceOrderItemRequest
	if err = ctx.Bind(&req); err != nil {
		return respondInvalid(ctx)
	}

	var target *order.Status
	if req.TargetStatus != "" {
		parsed, parseErr := order.ParseStatus(req.TargetStatus)
		if parseErr != nil {
			return respondInvalid(ctx)
		}
		target = &parsed
	}

	cmd, err := commands.NewAdvanceOrderItemCommand(orderID, itemID, target)
	if err != nil {
		return respondError(ctx, err)
	}

	item, err := s.advanceOrderItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, advancedItemResponse{
		ID:            item.ID.String(),
		FlavorID:      item.FlavorID.String(),
		FlavorName:    item.FlavorName,
		Quantity:      item.Quantity,
		UnitPrice:     item.UnitPrice,
		Status:        item.Status.String(),
		CreatedAt:     item.CreatedAt,
		LastUpdatedAt: item.LastUpdatedAt,
	})
}

// CancelOrder handles POST /api/orders/:orderId/cancel. The calling
// customer must own the order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondInvalid(ctx)
	}

	var req cancelOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return respondInvalid(ctx)
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return respondInvalid(ctx)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDailyReport handles GET /api/reports/daily?date=YYYY-MM-DD. A missing
// date reports on the current UTC day.
func (s *Server) GetDailyReport(ctx echo.Context) error {
	date := time.Now().UTC()
	if raw := ctx.QueryParam("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return respondInvalid(ctx)
		}
		date = parsed
	}

	report, err := s.getDailyReportHandler.Handle(ctx.Request().Context(), queries.NewGetDailyReportQuery(date))
	if err != nil {
		return respondError(ctx, err)
	}

	popular := make([]flavorPopularityResponse, 0, len(report.PopularFlavors))
	for _, entry := range report.PopularFlavors {
		popular = append(popular, flavorPopularityResponse{
			FlavorName: entry.FlavorName,
			Quantity:   entry.Quantity,
			Revenue:    entry.Revenue,
		})
	}

	durations := make([]statusDurationResponse, 0, len(report.StatusDurations))
	for _, entry := range report.StatusDurations {
		durations = append(durations, statusDurationResponse{
			Status:         entry.Status.String(),
			AverageSeconds: entry.AverageSeconds,
			MinSeconds:     entry.MinSeconds,
			MaxSeconds:     entry.MaxSeconds,
			Samples:        entry.Samples,
		})
	}

	return ctx.JSON(http.StatusOK, dailyReportResponse{
		Date:                     report.Date.Format("2006-01-02"),
		TotalOrders:              report.TotalOrders,
		TotalRevenue:             report.TotalRevenue,
		TotalItems:               report.TotalItems,
		AverageTicket:            report.AverageTicket,
		AverageCompletionSeconds: report.AverageCompletionSeconds,
		PopularFlavors:           popular,
		OrdersByHour:             report.OrdersByHour,
		StatusDurations:          durations,
	})
}
