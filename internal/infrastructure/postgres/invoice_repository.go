package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/billing-api/internal/domain"
	"github.com/jhoicas/billing-api/internal/domain/entity"
	"github.com/jhoicas/billing-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste una factura (lo usan seeds y tests; el core no muta facturas).
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoices (id, customer_id, amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.CustomerID, invoice.Amount, invoice.Status, invoice.CreatedAt,
	)
	if err != nil {
		return domain.StorageUnavailable(fmt.Errorf("insert invoice: %w", err))
	}
	return nil
}

// GetByID obtiene una factura por ID. Devuelve (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `
		SELECT id, customer_id, amount, status, created_at
		FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.CustomerID, &inv.Amount, &inv.Status, &inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.StorageUnavailable(fmt.Errorf("get invoice: %w", err))
	}
	return &inv, nil
}

// ListByCustomer lista las facturas del cliente, más recientes primero.
// status vacío devuelve todas.
func (r *InvoiceRepo) ListByCustomer(customerID, status string) ([]*entity.Invoice, error) {
	query := `
		SELECT id, customer_id, amount, status, created_at
		FROM invoices
		WHERE customer_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, customerID, status)
	if err != nil {
		return nil, domain.StorageUnavailable(fmt.Errorf("list invoices: %w", err))
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.CustomerID, &inv.Amount, &inv.Status, &inv.CreatedAt); err != nil {
			return nil, domain.StorageUnavailable(fmt.Errorf("scan invoice: %w", err))
		}
		list = append(list, &inv)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StorageUnavailable(fmt.Errorf("iterate invoices: %w", err))
	}
	return list, nil
}
