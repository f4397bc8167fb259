package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/billing-api/internal/application/dto"
	"github.com/jhoicas/billing-api/internal/domain"
	"github.com/jhoicas/billing-api/internal/domain/entity"
	"github.com/jhoicas/billing-api/internal/domain/repository"
	"github.com/jhoicas/billing-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// maxCustomerAge cota superior de edad aceptada al crear un cliente.
const maxCustomerAge = 150

// CustomerUseCase operaciones de ciclo de vida del cliente: alta,
// actualización de contacto, límite directo y cierre de cuenta.
type CustomerUseCase struct {
	customers repository.CustomerRepository
	invoices  repository.InvoiceRepository
	locks     *KeyedMutex
	log       *logger.Logger
}

// NewCustomerUseCase construye el caso de uso. locks es el mismo KeyedMutex
// del servicio de crédito: la exclusión es por cliente, no por operación.
func NewCustomerUseCase(customers repository.CustomerRepository, invoices repository.InvoiceRepository, locks *KeyedMutex, log *logger.Logger) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, invoices: invoices, locks: locks, log: log}
}

// Create da de alta un cliente activo.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.Email == "" || in.Phone == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Age < 0 || in.Age > maxCustomerAge {
		return nil, domain.ErrInvalidInput
	}
	if in.CreditLimit.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	customer := &entity.Customer{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Age:         in.Age,
		CreditLimit: in.CreditLimit,
		Status:      entity.CustomerStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.customers.Create(customer); err != nil {
		uc.log.Error().Err(err).Msg("crear cliente")
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Get devuelve el cliente o ErrCustomerNotFound.
func (uc *CustomerUseCase) Get(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	return toCustomerResponse(customer), nil
}

// UpdateEmail actualiza el email de contacto.
func (uc *CustomerUseCase) UpdateEmail(id, email string) (*dto.CustomerResponse, error) {
	if email == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.updateCustomer(id, func(c *entity.Customer) error {
		c.Email = email
		return nil
	})
}

// UpdatePhone actualiza el teléfono de contacto.
func (uc *CustomerUseCase) UpdatePhone(id, phone string) (*dto.CustomerResponse, error) {
	if phone == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.updateCustomer(id, func(c *entity.Customer) error {
		c.Phone = phone
		return nil
	})
}

// UpdateCreditLimit fija el límite directamente (camino administrativo, sin
// reglas de aprobación). El nuevo límite debe ser positivo.
func (uc *CustomerUseCase) UpdateCreditLimit(id string, newLimit decimal.Decimal) (*dto.CustomerResponse, error) {
	if !newLimit.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	return uc.updateCustomer(id, func(c *entity.Customer) error {
		c.CreditLimit = newLimit
		return nil
	})
}

// CloseAccount cierra la cuenta si no hay saldo pendiente.
// La transición es de un solo sentido: una cuenta cerrada no se reabre.
func (uc *CustomerUseCase) CloseAccount(id, reason string) (*dto.CustomerResponse, error) {
	unlock := uc.locks.Lock(id)
	defer unlock()

	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	if customer.IsClosed() {
		return nil, domain.ErrAccountClosed
	}

	invoices, err := uc.invoices.ListByCustomer(id, "")
	if err != nil {
		return nil, err
	}
	for _, inv := range invoices {
		if inv.Status == entity.InvoiceStatusPending || inv.Status == entity.InvoiceStatusLate {
			return nil, domain.ErrOutstandingBalance
		}
	}

	now := time.Now()
	customer.Status = entity.CustomerStatusClosed
	customer.ClosedAt = &now
	customer.CloseReason = reason
	customer.UpdatedAt = now
	if err := uc.customers.Update(customer); err != nil {
		uc.log.Error().Err(err).Str("customer_id", id).Msg("cerrar cuenta")
		return nil, err
	}
	uc.log.Info().Str("customer_id", id).Str("reason", reason).Msg("cuenta cerrada")
	return toCustomerResponse(customer), nil
}

// updateCustomer lee, muta y persiste bajo el lock del cliente.
func (uc *CustomerUseCase) updateCustomer(id string, mutate func(*entity.Customer) error) (*dto.CustomerResponse, error) {
	unlock := uc.locks.Lock(id)
	defer unlock()

	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	if err := mutate(customer); err != nil {
		return nil, err
	}
	customer.UpdatedAt = time.Now()
	if err := uc.customers.Update(customer); err != nil {
		uc.log.Error().Err(err).Str("customer_id", id).Msg("actualizar cliente")
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Age:         c.Age,
		CreditLimit: c.CreditLimit,
		Status:      c.Status,
		CloseReason: c.CloseReason,
	}
}
