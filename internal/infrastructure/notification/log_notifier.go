package notification

import (
	"github.com/jhoicas/billing-api/internal/application/billing"
	"github.com/jhoicas/billing-api/pkg/logger"
	"github.com/shopspring/decimal"
)

var _ billing.Notifier = (*LogNotifier)(nil)

// LogNotifier implementación del puerto Notifier que registra las
// notificaciones en el log estructurado. Es el adaptador por defecto: la
// entrega real (email, paging del equipo antifraude) vive fuera de este
// servicio y se integra reemplazando este adaptador.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier construye el adaptador.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// SendConfirmation registra la confirmación de pago al cliente.
func (n *LogNotifier) SendConfirmation(customerID string, amount decimal.Decimal) error {
	n.log.Info().
		Str("customer_id", customerID).
		Str("amount", amount.String()).
		Msg("confirmación de pago enviada")
	return nil
}

// NotifyFraudTeam registra la alerta al equipo antifraude.
func (n *LogNotifier) NotifyFraudTeam(customerID string, amount decimal.Decimal) error {
	n.log.Warn().
		Str("customer_id", customerID).
		Str("amount", amount.String()).
		Msg("pago grande en revisión: alerta al equipo antifraude")
	return nil
}
