package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/billing-api/internal/domain"
	"github.com/jhoicas/billing-api/internal/domain/entity"
	"github.com/jhoicas/billing-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
// Las fallas del backend se devuelven como domain.StorageUnavailable: el
// detalle de pgx no llega a los callers del core.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, email, phone, age, credit_limit, status, created_at, updated_at, closed_at, close_reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Email, customer.Phone, customer.Age,
		customer.CreditLimit, customer.Status, customer.CreatedAt, customer.UpdatedAt,
		customer.ClosedAt, nullIfEmpty(customer.CloseReason),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCustomerExists
		}
		return domain.StorageUnavailable(fmt.Errorf("insert customer: %w", err))
	}
	return nil
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `
		SELECT id, name, email, phone, age, credit_limit, status, created_at, updated_at, closed_at, COALESCE(close_reason, '')
		FROM customers WHERE id = $1`
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Age, &c.CreditLimit, &c.Status,
		&c.CreatedAt, &c.UpdatedAt, &c.ClosedAt, &c.CloseReason,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.StorageUnavailable(fmt.Errorf("get customer: %w", err))
	}
	return &c, nil
}

// GetForUpdate obtiene el cliente bloqueando la fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción; el caso de uso de crédito
// ya serializa por cliente, esto cubre despliegues con varias instancias.
func (r *CustomerRepo) GetForUpdate(id string) (*entity.Customer, error) {
	query := `
		SELECT id, name, email, phone, age, credit_limit, status, created_at, updated_at, closed_at, COALESCE(close_reason, '')
		FROM customers WHERE id = $1 FOR UPDATE`
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Age, &c.CreditLimit, &c.Status,
		&c.CreatedAt, &c.UpdatedAt, &c.ClosedAt, &c.CloseReason,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.StorageUnavailable(fmt.Errorf("get customer for update: %w", err))
	}
	return &c, nil
}

// Update actualiza los campos mutables del cliente.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers
		SET email = $2, phone = $3, credit_limit = $4, status = $5,
		    closed_at = $6, close_reason = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Email, customer.Phone, customer.CreditLimit, customer.Status,
		customer.ClosedAt, nullIfEmpty(customer.CloseReason), customer.UpdatedAt,
	)
	if err != nil {
		return domain.StorageUnavailable(fmt.Errorf("update customer: %w", err))
	}
	return nil
}

// UpdateCreditLimit persiste solo el nuevo límite.
func (r *CustomerRepo) UpdateCreditLimit(id string, newLimit decimal.Decimal) error {
	query := `UPDATE customers SET credit_limit = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, newLimit)
	if err != nil {
		return domain.StorageUnavailable(fmt.Errorf("update credit limit: %w", err))
	}
	return nil
}
