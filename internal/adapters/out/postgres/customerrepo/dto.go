// Package customerrepo implements customer persistence with GORM.
package customerrepo

import (
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customers.
type CustomerDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string
	Email           string
	Phone           string
	DeliveryAddress string
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer domain aggregate to its database representation.
func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:              aggregate.ID().Bytes(),
		Name:            aggregate.Name(),
		Email:           aggregate.Email(),
		Phone:           aggregate.Phone(),
		DeliveryAddress: aggregate.DeliveryAddress(),
	}
}

// toDomain converts a database DTO to a customer domain aggregate.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.NewCustomer(id, dto.Name, dto.Email, dto.Phone, dto.DeliveryAddress)
}
