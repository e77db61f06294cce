package http

import (
	"time"

	"pastelstand/internal/core/application/usecases/commands"
	"pastelstand/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
)

// Request bodies.

type registerCustomerRequest struct {
	Name string `json:"name"`
}

type confirmCustomerRequest struct {
	CustomerID string `json:"customerId"`
	Name       string `json:"name"`
}

type orderLineRequest struct {
	FlavorID string `json:"flavorId"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes"`
}

type createOrderRequest struct {
	CustomerID   string             `json:"customerId"`
	CustomerName string             `json:"customerName"`
	Items        []orderLineRequest `json:"items"`
}

type advanceOrderItemRequest struct {
	TargetStatus string `json:"targetStatus"`
}

type cancelOrderRequest struct {
	CustomerID string `json:"customerId"`
}

type upsertFlavorRequest struct {
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	ImageURL          string          `json:"imageUrl"`
	AvailableQuantity int             `json:"availableQuantity"`
	Price             decimal.Decimal `json:"price"`
}

type updateFlavorRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	ImageURL    string          `json:"imageUrl"`
	Price       decimal.Decimal `json:"price"`
}

type updateInventoryRequest struct {
	AvailableQuantity int `json:"availableQuantity"`
}

// Response bodies. Identifiers render as canonical UUID strings, money as
// decimal strings, statuses by name.

type errorItem struct {
	Code     string `json:"code"`
	Property string `json:"property,omitempty"`
	Params   []any  `json:"params,omitempty"`
}

type errorResponse struct {
	Errors []errorItem `json:"errors"`
}

type customerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type flavorResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	ImageURL          string          `json:"imageUrl"`
	AvailableQuantity int             `json:"availableQuantity"`
	Price             decimal.Decimal `json:"price"`
	CreatedAt         time.Time       `json:"createdAt"`
}

type upsertedFlavorResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	AvailableQuantity int             `json:"availableQuantity"`
	Price             decimal.Decimal `json:"price"`
	Created           bool            `json:"created"`
}

type createdItemResponse struct {
	ID        string          `json:"id"`
	FlavorID  string          `json:"flavorId"`
	Quantity  int             `json:"quantity"`
	Status    string          `json:"status"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

type createOrderResponse struct {
	OrderID     string                `json:"orderId"`
	CustomerID  string                `json:"customerId"`
	TotalAmount decimal.Decimal       `json:"totalAmount"`
	Items       []createdItemResponse `json:"items"`
}

type advancedItemResponse struct {
	ID            string          `json:"id"`
	FlavorID      string          `json:"flavorId"`
	FlavorName    string          `json:"flavorName"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt *time.Time      `json:"lastUpdatedAt,omitempty"`
}

type statusHistoryResponse struct {
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changedAt"`
}

type orderItemResponse struct {
	ID            string                  `json:"id"`
	FlavorID      string                  `json:"flavorId"`
	FlavorName    string                  `json:"flavorName"`
	Quantity      int                     `json:"quantity"`
	UnitPrice     decimal.Decimal         `json:"unitPrice"`
	Status        string                  `json:"status"`
	Notes         string                  `json:"notes,omitempty"`
	CreatedAt     time.Time               `json:"createdAt"`
	LastUpdatedAt *time.Time              `json:"lastUpdatedAt,omitempty"`
	History       []statusHistoryResponse `json:"history,omitempty"`
}

type orderResponse struct {
	ID           string              `json:"id"`
	CustomerID   string              `json:"customerId"`
	CustomerName string              `json:"customerName"`
	TotalAmount  decimal.Decimal     `json:"totalAmount"`
	CreatedAt    time.Time           `json:"createdAt"`
	Items        []orderItemResponse `json:"items"`
}

type customerOrdersGroupResponse struct {
	CustomerID   string          `json:"customerId"`
	CustomerName string          `json:"customerName"`
	Orders       []orderResponse `json:"orders"`
}

type customerOrderResponse struct {
	orderResponse
	IsCancelable bool `json:"isCancelable"`
}

type flavorPopularityResponse struct {
	FlavorName string          `json:"flavorName"`
	Quantity   int             `json:"quantity"`
	Revenue    decimal.Decimal `json:"revenue"`
}

type statusDurationResponse struct {
	Status         string  `json:"status"`
	AverageSeconds float64 `json:"averageSeconds"`
	MinSeconds     float64 `json:"minSeconds"`
	MaxSeconds     float64 `json:"maxSeconds"`
	Samples        int     `json:"samples"`
}

type dailyReportResponse struct {
	Date                     string                     `json:"date"`
	TotalOrders              int                        `json:"totalOrders"`
	TotalRevenue             decimal.Decimal            `json:"totalRevenue"`
	TotalItems               int                        `json:"totalItems"`
	AverageTicket            decimal.Decimal            `json:"averageTicket"`
	AverageCompletionSeconds *float64                   `json:"averageCompletionSeconds"`
	PopularFlavors           []flavorPopularityResponse `json:"popularFlavors"`
	OrdersByHour             [24]int                    `json:"ordersByHour"`
	StatusDurations          []statusDurationResponse   `json:"statusDurations"`
}

func toCustomerResponse(id, name string, createdAt time.Time) customerResponse {
	return customerResponse{ID: id, Name: name, CreatedAt: createdAt}
}

func toOrderItemResponse(item queries.OrderItemView) orderItemResponse {
	history := make([]statusHistoryResponse, 0, len(item.History))
	for _, entry := range item.History {
		history = append(history, statusHistoryResponse{
			Status:    entry.Status.String(),
			ChangedAt: entry.ChangedAt,
		})
	}

	return orderItemResponse{
		ID:            item.ID.String(),
		FlavorID:      item.FlavorID.String(),
		FlavorName:    item.FlavorName,
		Quantity:      item.Quantity,
		UnitPrice:     item.UnitPrice,
		Status:        item.Status.String(),
		Notes:         item.Notes,
		CreatedAt:     item.CreatedAt,
		LastUpdatedAt: item.LastUpdatedAt,
		History:       history,
	}
}

func toOrderResponse(view queries.OrderView) orderResponse {
	items := make([]orderItemResponse, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, toOrderItemResponse(item))
	}

	return orderResponse{
		ID:           view.ID.String(),
		CustomerID:   view.CustomerID.String(),
		CustomerName: view.CustomerName,
		TotalAmount:  view.TotalAmount,
		CreatedAt:    view.CreatedAt,
		Items:        items,
	}
}

func toCreateOrderResponse(result commands.CreateOrderResponse) createOrderResponse {
	items := make([]createdItemResponse, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, createdItemResponse{
			ID:        item.ID.String(),
			FlavorID:  item.FlavorID.String(),
			Quantity:  item.Quantity,
			Status:    item.Status.String(),
			UnitPrice: item.UnitPrice,
		})
	}

	return createOrderResponse{
		OrderID:     result.OrderID.String(),
		CustomerID:  result.CustomerID.String(),
		TotalAmount: result.TotalAmount,
		Items:       items,
	}
}
