package queries

import (
	"context"
	"database/sql"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetInvoiceQueryHandler retrieves a single invoice read model.
type GetInvoiceQueryHandler struct {
	db *gorm.DB
}

// NewGetInvoiceQueryHandler creates a handler for single invoice queries.
func NewGetInvoiceQueryHandler(db *gorm.DB) GetInvoiceQueryHandler {
	return GetInvoiceQueryHandler{db: db}
}

// Handle executes the query. Returns a not-found error when the number is
// unknown.
func (h GetInvoiceQueryHandler) Handle(ctx context.Context, query GetInvoiceQuery) (InvoiceResponse, error) {
	if err := query.Validate(); err != nil {
		return InvoiceResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			number,
			concept,
			amount
		FROM invoices
		WHERE number = ?
	`, query.Number()).Rows()
	if err != nil {
		return InvoiceResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return InvoiceResponse{}, err
		}
		return InvoiceResponse{}, errs.NewObjectNotFoundError("invoice", query.Number())
	}

	return scanInvoiceRow(rows)
}

// GetAllInvoicesQueryHandler retrieves all invoice read models sorted by
// number.
type GetAllInvoicesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllInvoicesQueryHandler creates a handler for invoice listing queries.
func NewGetAllInvoicesQueryHandler(db *gorm.DB) GetAllInvoicesQueryHandler {
	return GetAllInvoicesQueryHandler{db: db}
}

// Handle executes the query to retrieve all invoices.
func (h GetAllInvoicesQueryHandler) Handle(
	ctx context.Context,
	query GetAllInvoicesQuery,
) ([]InvoiceResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			number,
			concept,
			amount
		FROM invoices
		ORDER BY number
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := make([]InvoiceResponse, 0)
	for rows.Next() {
		resp, scanErr := scanInvoiceRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		invoices = append(invoices, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return invoices, nil
}

func scanInvoiceRow(rows *sql.Rows) (InvoiceResponse, error) {
	var resp InvoiceResponse
	var amount decimal.Decimal

	if err := rows.Scan(&resp.Number, &resp.Concept, &amount); err != nil {
		return InvoiceResponse{}, err
	}

	money, err := kernel.NewMoney(amount)
	if err != nil {
		return InvoiceResponse{}, err
	}
	resp.Amount = money

	return resp, nil
}
