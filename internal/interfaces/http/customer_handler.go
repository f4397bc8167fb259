package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/billing-api/internal/application/billing"
	"github.com/jhoicas/billing-api/internal/application/dto"
	domainbilling "github.com/jhoicas/billing-api/internal/domain/billing"
)

// CustomerHandler maneja las peticiones HTTP de clientes, crédito y
// crédito disponible.
type CustomerHandler struct {
	customerUC *billing.CustomerUseCase
	creditUC   *billing.CreditUseCase
	calculator *domainbilling.CreditCalculator
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(customerUC *billing.CustomerUseCase, creditUC *billing.CreditUseCase, calculator *domainbilling.CreditCalculator) *CustomerHandler {
	return &CustomerHandler{customerUC: customerUC, creditUC: creditUC, calculator: calculator}
}

// Create POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	customer, err := h.customerUC.Create(in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// GetByID GET /api/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	customer, err := h.customerUC.Get(c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(customer)
}

// UpdateEmail PUT /api/customers/:id/email
func (h *CustomerHandler) UpdateEmail(c *fiber.Ctx) error {
	var in dto.UpdateEmailRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	customer, err := h.customerUC.UpdateEmail(c.Params("id"), in.Email)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(customer)
}

// UpdatePhone PUT /api/customers/:id/phone
func (h *CustomerHandler) UpdatePhone(c *fiber.Ctx) error {
	var in dto.UpdatePhoneRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	customer, err := h.customerUC.UpdatePhone(c.Params("id"), in.Phone)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(customer)
}

// UpdateCreditLimit PUT /api/customers/:id/credit-limit
func (h *CustomerHandler) UpdateCreditLimit(c *fiber.Ctx) error {
	var in dto.UpdateCreditLimitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	customer, err := h.customerUC.UpdateCreditLimit(c.Params("id"), in.CreditLimit)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(customer)
}

// Close POST /api/customers/:id/close
func (h *CustomerHandler) Close(c *fiber.Ctx) error {
	var in dto.CloseAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	customer, err := h.customerUC.CloseAccount(c.Params("id"), in.Reason)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(customer)
}

// CreditIncrease POST /api/customers/:id/credit-increase
func (h *CustomerHandler) CreditIncrease(c *fiber.Ctx) error {
	var in dto.CreditIncreaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.creditUC.ApproveCreditIncrease(c.Context(), c.Params("id"), in.Increase)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(result)
}

// AvailableCredit GET /api/customers/:id/available-credit
// Cliente desconocido responde cero (política lenient del cálculo derivado).
func (h *CustomerHandler) AvailableCredit(c *fiber.Ctx) error {
	id := c.Params("id")
	available, err := h.calculator.AvailableCredit(id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.AvailableCreditResponse{CustomerID: id, AvailableCredit: available})
}
