package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/billing-api/internal/domain"
	"github.com/jhoicas/billing-api/internal/domain/entity"
	"github.com/jhoicas/billing-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository (usable con pool o tx).
// Solo guarda identificadores redactados; el esquema no tiene columna para
// el número completo de tarjeta o cuenta.
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste el registro del pago.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, customer_id, amount, method, status, card_last4, account_last4, routing, wallet_address, auth_code, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.CustomerID, payment.Amount, payment.Method, payment.Status,
		nullIfEmpty(payment.CardLast4), nullIfEmpty(payment.AccountLast4),
		nullIfEmpty(payment.Routing), nullIfEmpty(payment.WalletAddress),
		nullIfEmpty(payment.AuthCode), payment.CreatedAt,
	)
	if err != nil {
		return domain.StorageUnavailable(fmt.Errorf("insert payment: %w", err))
	}
	return nil
}

// GetByID obtiene un pago por ID. Devuelve (nil, nil) si no existe.
func (r *PaymentRepo) GetByID(id string) (*entity.Payment, error) {
	query := `
		SELECT id, customer_id, amount, method, status,
		       COALESCE(card_last4, ''), COALESCE(account_last4, ''),
		       COALESCE(routing, ''), COALESCE(wallet_address, ''),
		       COALESCE(auth_code, ''), created_at
		FROM payments WHERE id = $1`
	var p entity.Payment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.CustomerID, &p.Amount, &p.Method, &p.Status,
		&p.CardLast4, &p.AccountLast4, &p.Routing, &p.WalletAddress,
		&p.AuthCode, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.StorageUnavailable(fmt.Errorf("get payment: %w", err))
	}
	return &p, nil
}

// ListByCustomer lista los pagos del cliente, más recientes primero.
func (r *PaymentRepo) ListByCustomer(customerID string) ([]*entity.Payment, error) {
	query := `
		SELECT id, customer_id, amount, method, status,
		       COALESCE(card_last4, ''), COALESCE(account_last4, ''),
		       COALESCE(routing, ''), COALESCE(wallet_address, ''),
		       COALESCE(auth_code, ''), created_at
		FROM payments WHERE customer_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, customerID)
	if err != nil {
		return nil, domain.StorageUnavailable(fmt.Errorf("list payments: %w", err))
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(
			&p.ID, &p.CustomerID, &p.Amount, &p.Method, &p.Status,
			&p.CardLast4, &p.AccountLast4, &p.Routing, &p.WalletAddress,
			&p.AuthCode, &p.CreatedAt,
		); err != nil {
			return nil, domain.StorageUnavailable(fmt.Errorf("scan payment: %w", err))
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StorageUnavailable(fmt.Errorf("iterate payments: %w", err))
	}
	return list, nil
}
