// Package invoicerepo implements invoice persistence with GORM.
package invoicerepo

import (
	"ordering/internal/core/domain/model/invoice"
	"ordering/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// InvoiceDTO represents the database structure for persisting invoices.
// The number is caller-assigned, so it doubles as the primary key.
type InvoiceDTO struct {
	Number  int `gorm:"primaryKey;autoIncrement:false"`
	Concept string
	Amount  decimal.Decimal `gorm:"type:numeric(10,2)"`
}

// TableName specifies the database table name for invoice entities.
func (InvoiceDTO) TableName() string {
	return "invoices"
}

// fromDomain converts an invoice domain record to its database representation.
func fromDomain(aggregate *invoice.Invoice) InvoiceDTO {
	return InvoiceDTO{
		Number:  aggregate.Number(),
		Concept: aggregate.Concept(),
		Amount:  aggregate.Amount().Decimal(),
	}
}

// toDomain converts a database DTO to an invoice domain record.
func toDomain(dto InvoiceDTO) (*invoice.Invoice, error) {
	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	return invoice.NewInvoice(dto.Number, dto.Concept, amount)
}
