package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/billing-api/internal/application/billing"
	"github.com/jhoicas/billing-api/internal/application/dto"
	"github.com/jhoicas/billing-api/internal/domain/entity"
)

// PaymentHandler maneja las peticiones HTTP de pagos.
type PaymentHandler struct {
	uc *billing.PaymentUseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *billing.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Process POST /api/payments
// 201 para pagos aceptados (completed/processing), 202 para pending_review.
func (h *PaymentHandler) Process(c *fiber.Ctx) error {
	var in dto.ProcessPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.uc.ProcessPayment(c.Context(), in.CustomerID, in.Amount, in.Method, in.Attributes)
	if err != nil {
		return writeDomainError(c, err)
	}
	status := fiber.StatusCreated
	if result.Status == entity.PaymentStatusPendingReview {
		status = fiber.StatusAccepted
	}
	return c.Status(status).JSON(result)
}

// GetByID GET /api/payments/:id
func (h *PaymentHandler) GetByID(c *fiber.Ctx) error {
	result, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(result)
}

// ListByCustomer GET /api/customers/:id/payments
func (h *PaymentHandler) ListByCustomer(c *fiber.Ctx) error {
	list, err := h.uc.ListByCustomer(c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(list)
}
