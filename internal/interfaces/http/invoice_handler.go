package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/billing-api/internal/application/billing"
)

// InvoiceHandler maneja las consultas HTTP de facturas (solo lectura).
type InvoiceHandler struct {
	uc *billing.InvoiceUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// GetByID GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	inv, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(inv)
}

// ListByCustomer GET /api/customers/:id/invoices?status=late
func (h *InvoiceHandler) ListByCustomer(c *fiber.Ctx) error {
	list, err := h.uc.ListByCustomer(c.Params("id"), c.Query("status"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(list)
}
