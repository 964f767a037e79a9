// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The stored total duplicates the sum of the item subtotals for the read side;
// the domain recomputes it from the items on restore.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID `gorm:"type:uuid;index"`
	DeliveryAddress string
	DeliveryType    string
	PaymentMethod   string
	Status          int             `gorm:"index"`
	Total           decimal.Decimal `gorm:"type:numeric(10,2)"`
	CreatedAt       time.Time       `gorm:"index"`
	Items           []OrderItemDTO  `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one line of an order. The line number keeps the
// items in the sequence the customer requested them.
type OrderItemDTO struct {
	OrderID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	LineNo      int       `gorm:"primaryKey;autoIncrement:false"`
	ProductID   uuid.UUID `gorm:"type:uuid"`
	ProductName string
	UnitPrice   decimal.Decimal `gorm:"type:numeric(10,2)"`
	Quantity    int
	Subtotal    decimal.Decimal `gorm:"type:numeric(10,2)"`
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation,
// items included.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for i, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			OrderID:     aggregate.ID().Bytes(),
			LineNo:      i + 1,
			ProductID:   item.ProductID().Bytes(),
			ProductName: item.ProductName(),
			UnitPrice:   item.UnitPrice().Decimal(),
			Quantity:    item.Quantity(),
			Subtotal:    item.Subtotal().Decimal(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		DeliveryType:    aggregate.DeliveryType(),
		PaymentMethod:   aggregate.PaymentMethod(),
		Status:          int(aggregate.Status()),
		Total:           aggregate.Total().Decimal(),
		CreatedAt:       aggregate.CreatedAt(),
		Items:           itemDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Line items are rebuilt through their constructor, which recomputes every
// subtotal, and RestoreOrder recomputes the total from them.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		unitPrice, itemErr := kernel.NewMoney(itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewLineItem(productID, itemDTO.ProductName, unitPrice, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		customerID,
		dto.DeliveryAddress,
		dto.DeliveryType,
		dto.PaymentMethod,
		items,
		dto.CreatedAt,
		order.Status(dto.Status),
	)
}
