package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del cliente. La transición es de un solo sentido: active → closed.
const (
	CustomerStatusActive = "active"
	CustomerStatusClosed = "closed"
)

// Customer representa un cliente titular de una cuenta de crédito.
// CreditLimit nunca es negativo; se muta solo vía operaciones explícitas
// (actualizar email/teléfono/límite, aprobar aumento, cerrar cuenta).
type Customer struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	Age         int
	CreditLimit decimal.Decimal
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ClosedAt    *time.Time
	CloseReason string
}

// IsClosed indica si la cuenta ya fue cerrada.
func (c *Customer) IsClosed() bool {
	return c.Status == CustomerStatusClosed
}
