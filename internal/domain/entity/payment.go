package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago soportados.
const (
	PaymentMethodCard         = "card"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodWallet       = "wallet"
)

// Estados de un pago.
const (
	PaymentStatusCompleted     = "completed"
	PaymentStatusProcessing    = "processing"
	PaymentStatusPendingReview = "pending_review"
)

// Payment representa un pago registrado por el motor de despacho.
// Solo se persisten identificadores redactados (últimos 4 dígitos, referencia
// de ruteo, dirección de wallet); el número completo de tarjeta o cuenta
// nunca se guarda ni se loguea.
type Payment struct {
	ID            string
	CustomerID    string
	Amount        decimal.Decimal
	Method        string
	Status        string
	CardLast4     string
	AccountLast4  string
	Routing       string
	WalletAddress string
	AuthCode      string
	CreatedAt     time.Time
}
