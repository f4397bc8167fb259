package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/billing-api/internal/application/billing"
	domainbilling "github.com/jhoicas/billing-api/internal/domain/billing"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PaymentUC  *billing.PaymentUseCase
	CustomerUC *billing.CustomerUseCase
	CreditUC   *billing.CreditUseCase
	InvoiceUC  *billing.InvoiceUseCase
	Calculator *domainbilling.CreditCalculator
	JWTSecret  string
}

// Router registra las rutas de la API. Todo /api requiere Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.CreditUC, deps.Calculator)
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)

	// Payments
	payments := api.Group("/payments")
	payments.Post("/", paymentHandler.Process)
	payments.Get("/:id", paymentHandler.GetByID)

	// Customers (ciclo de vida + crédito)
	customers := api.Group("/customers")
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id/email", customerHandler.UpdateEmail)
	customers.Put("/:id/phone", customerHandler.UpdatePhone)
	customers.Put("/:id/credit-limit", customerHandler.UpdateCreditLimit)
	customers.Post("/:id/close", customerHandler.Close)
	customers.Post("/:id/credit-increase", customerHandler.CreditIncrease)
	customers.Get("/:id/available-credit", customerHandler.AvailableCredit)
	customers.Get("/:id/payments", paymentHandler.ListByCustomer)
	customers.Get("/:id/invoices", invoiceHandler.ListByCustomer)

	// Invoices (solo lectura para este motor)
	invoices := api.Group("/invoices")
	invoices.Get("/:id", invoiceHandler.GetByID)
}
