package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/billing-api/internal/application/dto"
	"github.com/jhoicas/billing-api/internal/domain"
	"github.com/jhoicas/billing-api/internal/domain/entity"
	"github.com/jhoicas/billing-api/internal/domain/repository"
	"github.com/jhoicas/billing-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// Límites de monto que definen el tier de un pago con tarjeta.
// Intervalos semiabiertos: [0,100) small, [100,1000) medium, [1000,∞) large.
var (
	TierMediumMin = decimal.NewFromInt(100)
	TierLargeMin  = decimal.NewFromInt(1000)
)

// DefaultConfirmationTimeout espera acotada de la confirmación del tier medio.
const DefaultConfirmationTimeout = 5 * time.Second

// PaymentUseCase es el motor de despacho de pagos: valida la solicitud,
// la rutea por método y tier, persiste el registro y dispara a lo sumo una
// notificación (confirmación XOR antifraude).
type PaymentUseCase struct {
	payments       repository.PaymentRepository
	notifier       Notifier
	log            *logger.Logger
	confirmTimeout time.Duration
}

// NewPaymentUseCase construye el motor. confirmTimeout <= 0 usa el default.
func NewPaymentUseCase(payments repository.PaymentRepository, notifier Notifier, log *logger.Logger, confirmTimeout time.Duration) *PaymentUseCase {
	if confirmTimeout <= 0 {
		confirmTimeout = DefaultConfirmationTimeout
	}
	return &PaymentUseCase{
		payments:       payments,
		notifier:       notifier,
		log:            log,
		confirmTimeout: confirmTimeout,
	}
}

// ProcessPayment valida y despacha un pago.
// Toda la validación ocurre antes de cualquier escritura: un rechazo nunca
// deja registros parciales. Un fallo de storage se propaga como error de
// clase storage, distinto de un rechazo de validación.
func (uc *PaymentUseCase) ProcessPayment(ctx context.Context, customerID string, amount decimal.Decimal, method string, attributes map[string]string) (*dto.PaymentResult, error) {
	if customerID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}

	req, err := parsePaymentRequest(method, attributes)
	if err != nil {
		return nil, err
	}

	switch r := req.(type) {
	case cardRequest:
		return uc.dispatchCard(ctx, customerID, amount, r)
	case bankTransferRequest:
		return uc.dispatchBankTransfer(customerID, amount, r)
	case walletRequest:
		return uc.dispatchWallet(customerID, amount, r)
	default:
		return nil, domain.ErrUnsupportedMethod
	}
}

// dispatchCard aplica la lógica de tiers (solo tarjeta tiene tiers).
func (uc *PaymentUseCase) dispatchCard(ctx context.Context, customerID string, amount decimal.Decimal, req cardRequest) (*dto.PaymentResult, error) {
	switch {
	case amount.LessThan(TierMediumMin):
		return uc.processSmallCard(customerID, amount, req)
	case amount.LessThan(TierLargeMin):
		return uc.processMediumCard(ctx, customerID, amount, req)
	default:
		return uc.processLargeCard(customerID, amount, req)
	}
}

// processSmallCard tier small: persistir como completed, sin notificación.
func (uc *PaymentUseCase) processSmallCard(customerID string, amount decimal.Decimal, req cardRequest) (*dto.PaymentResult, error) {
	payment := uc.newPayment(customerID, amount, entity.PaymentMethodCard, entity.PaymentStatusCompleted)
	payment.CardLast4 = last4(req.number)
	return uc.persist(payment)
}

// processMediumCard tier medio: persistir como completed y luego disparar la
// confirmación en background con espera acotada. El resultado del pago queda
// determinado antes de lanzar la tarea: un timeout solo difiere la
// notificación, nunca deshace el completed.
func (uc *PaymentUseCase) processMediumCard(ctx context.Context, customerID string, amount decimal.Decimal, req cardRequest) (*dto.PaymentResult, error) {
	payment := uc.newPayment(customerID, amount, entity.PaymentMethodCard, entity.PaymentStatusCompleted)
	payment.CardLast4 = last4(req.number)
	result, err := uc.persist(payment)
	if err != nil {
		return nil, err
	}

	uc.awaitConfirmation(ctx, customerID, amount)
	return result, nil
}

// awaitConfirmation lanza la confirmación y espera a lo sumo confirmTimeout.
// Pasado el límite la goroutine sigue viva (no se cancela, solo deja de
// esperarse) y puede terminar después de que el caller reciba su respuesta.
func (uc *PaymentUseCase) awaitConfirmation(ctx context.Context, customerID string, amount decimal.Decimal) {
	done := make(chan error, 1)
	go func() {
		done <- uc.notifier.SendConfirmation(customerID, amount)
	}()

	select {
	case err := <-done:
		if err != nil {
			uc.log.Warn().Err(err).Str("customer_id", customerID).Msg("confirmación de pago falló; se ignora")
		}
	case <-time.After(uc.confirmTimeout):
		uc.log.Warn().Str("customer_id", customerID).Msg("confirmación de pago no completó dentro del límite; se difiere")
	case <-ctx.Done():
		uc.log.Warn().Str("customer_id", customerID).Msg("caller canceló la espera de confirmación; se difiere")
	}
}

// processLargeCard tier large: requiere código de autorización de 6 caracteres,
// queda en pending_review y alerta al equipo antifraude (best effort).
func (uc *PaymentUseCase) processLargeCard(customerID string, amount decimal.Decimal, req cardRequest) (*dto.PaymentResult, error) {
	if req.authCode == "" {
		return nil, domain.ErrMissingAuthCode
	}
	if len(req.authCode) != authCodeLength {
		return nil, domain.ErrInvalidAuthCode
	}

	payment := uc.newPayment(customerID, amount, entity.PaymentMethodCard, entity.PaymentStatusPendingReview)
	payment.CardLast4 = last4(req.number)
	payment.AuthCode = req.authCode
	result, err := uc.persist(payment)
	if err != nil {
		return nil, err
	}

	if err := uc.notifier.NotifyFraudTeam(customerID, amount); err != nil {
		uc.log.Warn().Err(err).Str("customer_id", customerID).Msg("alerta antifraude falló; el pago queda en revisión igualmente")
	}
	return result, nil
}

// dispatchBankTransfer camino único: persistir como processing, sin tiers
// ni paso asíncrono.
func (uc *PaymentUseCase) dispatchBankTransfer(customerID string, amount decimal.Decimal, req bankTransferRequest) (*dto.PaymentResult, error) {
	payment := uc.newPayment(customerID, amount, entity.PaymentMethodBankTransfer, entity.PaymentStatusProcessing)
	payment.AccountLast4 = last4(req.account)
	payment.Routing = req.routing
	return uc.persist(payment)
}

// dispatchWallet camino único: persistir como completed.
func (uc *PaymentUseCase) dispatchWallet(customerID string, amount decimal.Decimal, req walletRequest) (*dto.PaymentResult, error) {
	payment := uc.newPayment(customerID, amount, entity.PaymentMethodWallet, entity.PaymentStatusCompleted)
	payment.WalletAddress = req.address
	return uc.persist(payment)
}

func (uc *PaymentUseCase) newPayment(customerID string, amount decimal.Decimal, method, status string) *entity.Payment {
	return &entity.Payment{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		Amount:     amount,
		Method:     method,
		Status:     status,
		CreatedAt:  time.Now(),
	}
}

// Get devuelve un pago registrado o ErrPaymentNotFound.
func (uc *PaymentUseCase) Get(id string) (*dto.PaymentResult, error) {
	payment, err := uc.payments.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrPaymentNotFound
	}
	return &dto.PaymentResult{PaymentID: payment.ID, Status: payment.Status, Amount: payment.Amount}, nil
}

// ListByCustomer lista los pagos registrados del cliente.
func (uc *PaymentUseCase) ListByCustomer(customerID string) ([]*dto.PaymentResult, error) {
	if customerID == "" {
		return nil, domain.ErrInvalidInput
	}
	payments, err := uc.payments.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PaymentResult, 0, len(payments))
	for _, p := range payments {
		out = append(out, &dto.PaymentResult{PaymentID: p.ID, Status: p.Status, Amount: p.Amount})
	}
	return out, nil
}

// persist crea exactamente un registro de pago. El registro existe en el
// store antes de que ProcessPayment retorne su resultado.
func (uc *PaymentUseCase) persist(payment *entity.Payment) (*dto.PaymentResult, error) {
	if err := uc.payments.Create(payment); err != nil {
		uc.log.Error().Err(err).Str("customer_id", payment.CustomerID).Str("method", payment.Method).Msg("persistir pago")
		return nil, err
	}
	uc.log.Info().
		Str("payment_id", payment.ID).
		Str("customer_id", payment.CustomerID).
		Str("method", payment.Method).
		Str("status", payment.Status).
		Msg("pago registrado")
	return &dto.PaymentResult{PaymentID: payment.ID, Status: payment.Status, Amount: payment.Amount}, nil
}
