package http

import (
	"time"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/invoice"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the JSON body of POST /api/v1/orders.
// Either customerId references an existing customer, or customerPhone plus
// address describe a guest customer registered on the fly.
type CreateOrderRequest struct {
	CustomerID    *string            `json:"customerId,omitempty"`
	CustomerPhone string             `json:"customerPhone,omitempty"`
	Address       string             `json:"address"`
	DeliveryType  string             `json:"deliveryType"`
	PaymentMethod string             `json:"paymentMethod"`
	Items         []OrderItemRequest `json:"items"`
}

// OrderItemRequest is one requested order line.
type OrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// OrderItemResponse is one line of an order in API responses.
type OrderItemResponse struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	UnitPrice   string `json:"unitPrice"`
	Quantity    int    `json:"quantity"`
	Subtotal    string `json:"subtotal"`
}

// OrderResponse is the order representation in API responses. Money values
// are fixed two-decimal strings.
type OrderResponse struct {
	ID            string              `json:"id"`
	CustomerID    string              `json:"customerId"`
	Address       string              `json:"address"`
	DeliveryType  string              `json:"deliveryType"`
	PaymentMethod string              `json:"paymentMethod"`
	Status        string              `json:"status"`
	Total         string              `json:"total"`
	CreatedAt     time.Time           `json:"createdAt"`
	Items         []OrderItemResponse `json:"items"`
}

// CreateProductRequest is the JSON body of POST /api/v1/products.
type CreateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
	Available   bool   `json:"available"`
}

// SetAvailabilityRequest is the JSON body of PATCH /api/v1/products/:id/availability.
type SetAvailabilityRequest struct {
	Available bool `json:"available"`
}

// ProductResponse is the catalog product representation in API responses.
type ProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
	Available   bool   `json:"available"`
}

// InvoiceRequest is the JSON body of POST /api/v1/invoices.
type InvoiceRequest struct {
	Number  int    `json:"number"`
	Concept string `json:"concept"`
	Amount  string `json:"amount"`
}

// InvoiceResponse is the invoice representation in API responses.
type InvoiceResponse struct {
	Number  int    `json:"number"`
	Concept string `json:"concept"`
	Amount  string `json:"amount"`
}

func orderToResponse(aggregate *order.Order) OrderResponse {
	items := aggregate.Items()
	itemResponses := make([]OrderItemResponse, 0, len(items))
	for _, item := range items {
		itemResponses = append(itemResponses, OrderItemResponse{
			ProductID:   item.ProductID().String(),
			ProductName: item.ProductName(),
			UnitPrice:   item.UnitPrice().String(),
			Quantity:    item.Quantity(),
			Subtotal:    item.Subtotal().String(),
		})
	}

	return OrderResponse{
		ID:            aggregate.ID().String(),
		CustomerID:    aggregate.CustomerID().String(),
		Address:       aggregate.DeliveryAddress(),
		DeliveryType:  aggregate.DeliveryType(),
		PaymentMethod: aggregate.PaymentMethod(),
		Status:        aggregate.Status().String(),
		Total:         aggregate.Total().String(),
		CreatedAt:     aggregate.CreatedAt(),
		Items:         itemResponses,
	}
}

func orderReadModelToResponse(resp queries.OrderResponse) OrderResponse {
	itemResponses := make([]OrderItemResponse, 0, len(resp.Items))
	for _, item := range resp.Items {
		itemResponses = append(itemResponses, OrderItemResponse{
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice.String(),
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal.String(),
		})
	}

	return OrderResponse{
		ID:            resp.ID.String(),
		CustomerID:    resp.CustomerID.String(),
		Address:       resp.DeliveryAddress,
		DeliveryType:  resp.DeliveryType,
		PaymentMethod: resp.PaymentMethod,
		Status:        resp.Status,
		Total:         resp.Total.String(),
		CreatedAt:     resp.CreatedAt,
		Items:         itemResponses,
	}
}

func productToResponse(aggregate *product.Product) ProductResponse {
	return ProductResponse{
		ID:          aggregate.ID().String(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price().String(),
		Available:   aggregate.IsAvailable(),
	}
}

func productReadModelToResponse(resp queries.ProductResponse) ProductResponse {
	return ProductResponse{
		ID:          resp.ID.String(),
		Name:        resp.Name,
		Description: resp.Description,
		Price:       resp.Price.String(),
		Available:   true,
	}
}

func invoiceToResponse(aggregate *invoice.Invoice) InvoiceResponse {
	return InvoiceResponse{
		Number:  aggregate.Number(),
		Concept: aggregate.Concept(),
		Amount:  aggregate.Amount().String(),
	}
}

func invoiceReadModelToResponse(resp queries.InvoiceResponse) InvoiceResponse {
	return InvoiceResponse{
		Number:  resp.Number,
		Concept: resp.Concept,
		Amount:  resp.Amount.String(),
	}
}
