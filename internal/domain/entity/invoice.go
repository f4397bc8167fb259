package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura.
const (
	InvoiceStatusPending   = "pending"
	InvoiceStatusLate      = "late"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusCancelled = "cancelled"
)

// Invoice representa una factura emitida contra la línea de crédito del cliente.
// El motor de pagos/crédito solo la lee: sirve como historial para decisiones
// de crédito (pagos tardíos, saldo pendiente).
type Invoice struct {
	ID         string
	CustomerID string
	Amount     decimal.Decimal
	Status     string
	CreatedAt  time.Time
}

// IsOutstanding indica si la factura cuenta contra el crédito disponible.
// Todo estado distinto de paid/cancelled (incluidos estados futuros) es
// saldo pendiente.
func (i *Invoice) IsOutstanding() bool {
	return i.Status != InvoiceStatusPaid && i.Status != InvoiceStatusCancelled
}
