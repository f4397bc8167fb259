package billing

import (
	"context"

	"github.com/jhoicas/billing-api/internal/application/dto"
	"github.com/jhoicas/billing-api/internal/domain"
	"github.com/jhoicas/billing-api/internal/domain/entity"
	"github.com/jhoicas/billing-api/internal/domain/repository"
	"github.com/jhoicas/billing-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// Techos de crédito.
var (
	// MaxSingleIncrease máximo por solicitud; por encima requiere aprobación manual.
	MaxSingleIncrease = decimal.NewFromInt(5000)
	// MaxTotalLimit techo absoluto del límite de crédito de un cliente.
	MaxTotalLimit = decimal.NewFromInt(10000)
)

// maxLatePayments pagos tardíos tolerados en el historial de facturas.
const maxLatePayments = 2

// CreditUseCase evalúa y aplica aumentos del límite de crédito.
type CreditUseCase struct {
	customers repository.CustomerRepository
	invoices  repository.InvoiceRepository
	locks     *KeyedMutex
	log       *logger.Logger
}

// NewCreditUseCase construye el servicio de autorización de crédito.
// locks se comparte con los demás casos de uso que mutan clientes.
func NewCreditUseCase(customers repository.CustomerRepository, invoices repository.InvoiceRepository, locks *KeyedMutex, log *logger.Logger) *CreditUseCase {
	return &CreditUseCase{customers: customers, invoices: invoices, locks: locks, log: log}
}

// ApproveCreditIncrease evalúa las reglas en orden, cortando en la primera que
// falla, y aplica el aumento. Chequeo y mutación corren bajo el lock del
// cliente: dos aprobaciones concurrentes que en conjunto rompan el techo de
// 10000 no pueden pasar ambas (una ve el límite ya aumentado).
func (uc *CreditUseCase) ApproveCreditIncrease(ctx context.Context, customerID string, requestedIncrease decimal.Decimal) (*dto.CreditIncreaseResult, error) {
	if customerID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !requestedIncrease.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}

	unlock := uc.locks.Lock(customerID)
	defer unlock()

	customer, err := uc.customers.GetByID(customerID)
	if err != nil {
		uc.log.Error().Err(err).Str("customer_id", customerID).Msg("leer cliente para aumento de crédito")
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}

	if customer.Age < 18 {
		return nil, domain.ErrMinorIneligible
	}
	if requestedIncrease.GreaterThan(MaxSingleIncrease) {
		return nil, domain.ErrExceedsSingleIncreaseLimit
	}
	newLimit := customer.CreditLimit.Add(requestedIncrease)
	if newLimit.GreaterThan(MaxTotalLimit) {
		return nil, domain.ErrExceedsTotalLimit
	}

	late, err := uc.invoices.ListByCustomer(customerID, entity.InvoiceStatusLate)
	if err != nil {
		uc.log.Error().Err(err).Str("customer_id", customerID).Msg("leer historial de facturas")
		return nil, err
	}
	if len(late) > maxLatePayments {
		return nil, domain.ErrTooManyLatePayments
	}

	if err := uc.customers.UpdateCreditLimit(customerID, newLimit); err != nil {
		uc.log.Error().Err(err).Str("customer_id", customerID).Msg("persistir nuevo límite")
		return nil, err
	}

	uc.log.Info().
		Str("customer_id", customerID).
		Str("increase", requestedIncrease.String()).
		Str("new_limit", newLimit.String()).
		Msg("aumento de crédito aprobado")
	return &dto.CreditIncreaseResult{CustomerID: customerID, NewLimit: newLimit}, nil
}
