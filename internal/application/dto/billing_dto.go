package dto

import "github.com/shopspring/decimal"

// ProcessPaymentRequest body para POST /api/payments.
// Attributes lleva los campos específicos del método: card_number y
// authorization_code (card), account_number y routing_number (bank_transfer),
// wallet_address (wallet). Los identificadores completos nunca se persisten.
type ProcessPaymentRequest struct {
	CustomerID string            `json:"customer_id"`
	Amount     decimal.Decimal   `json:"amount"`
	Method     string            `json:"method"`
	Attributes map[string]string `json:"attributes"`
}

// PaymentResult resultado de un despacho aceptado.
// Status: completed | processing | pending_review.
type PaymentResult struct {
	PaymentID string          `json:"payment_id"`
	Status    string          `json:"status"`
	Amount    decimal.Decimal `json:"amount"`
}

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	Age         int             `json:"age"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	Age         int             `json:"age"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
	Status      string          `json:"status"`
	CloseReason string          `json:"close_reason,omitempty"`
}

// UpdateEmailRequest body para PUT /api/customers/:id/email.
type UpdateEmailRequest struct {
	Email string `json:"email"`
}

// UpdatePhoneRequest body para PUT /api/customers/:id/phone.
type UpdatePhoneRequest struct {
	Phone string `json:"phone"`
}

// UpdateCreditLimitRequest body para PUT /api/customers/:id/credit-limit.
type UpdateCreditLimitRequest struct {
	CreditLimit decimal.Decimal `json:"credit_limit"`
}

// CloseAccountRequest body para POST /api/customers/:id/close.
type CloseAccountRequest struct {
	Reason string `json:"reason"`
}

// CreditIncreaseRequest body para POST /api/customers/:id/credit-increase.
type CreditIncreaseRequest struct {
	Increase decimal.Decimal `json:"increase"`
}

// CreditIncreaseResult resultado de un aumento aprobado.
type CreditIncreaseResult struct {
	CustomerID string          `json:"customer_id"`
	NewLimit   decimal.Decimal `json:"new_limit"`
}

// AvailableCreditResponse respuesta de GET /api/customers/:id/available-credit.
type AvailableCreditResponse struct {
	CustomerID      string          `json:"customer_id"`
	AvailableCredit decimal.Decimal `json:"available_credit"`
}

// InvoiceResponse factura en respuestas (solo lectura para este motor).
type InvoiceResponse struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
	CreatedAt  string          `json:"created_at"`
}
