package invoicerepo

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/invoice"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInvoiceRepository implements InvoiceRepository using GORM.
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GORM invoice repository.
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// Save inserts or replaces the invoice with the given number.
func (r *GormInvoiceRepository) Save(ctx context.Context, aggregate *invoice.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "number"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}

// Get retrieves an invoice by number.
func (r *GormInvoiceRepository) Get(ctx context.Context, number int) (*invoice.Invoice, error) {
	var dto InvoiceDTO
	if err := r.db.WithContext(ctx).First(&dto, "number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("invoice", number)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every stored invoice ordered by number.
func (r *GormInvoiceRepository) GetAll(ctx context.Context) ([]*invoice.Invoice, error) {
	var dtos []InvoiceDTO
	if err := r.db.WithContext(ctx).Order("number").Find(&dtos).Error; err != nil {
		return nil, err
	}

	invoices := make([]*invoice.Invoice, 0, len(dtos))
	for _, dto := range dtos {
		inv, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}

	return invoices, nil
}

// Delete removes the invoice with the given number.
func (r *GormInvoiceRepository) Delete(ctx context.Context, number int) error {
	result := r.db.WithContext(ctx).Delete(&InvoiceDTO{}, "number = ?", number)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("invoice", number)
	}

	return nil
}
