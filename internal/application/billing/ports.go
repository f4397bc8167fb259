package billing

import "github.com/shopspring/decimal"

// Notifier puerto de notificaciones salientes (confirmación y alerta antifraude).
// Ambas son fire-and-forget: un error del notificador se loguea y nunca
// convierte un pago exitoso en fallido.
type Notifier interface {
	SendConfirmation(customerID string, amount decimal.Decimal) error
	NotifyFraudTeam(customerID string, amount decimal.Decimal) error
}
