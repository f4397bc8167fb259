package billing

import (
	"github.com/jhoicas/billing-api/internal/domain/entity"
	"github.com/jhoicas/billing-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// CreditCalculator deriva el crédito disponible de un cliente (servicio de dominio).
// disponible = límite − Σ(facturas con estado distinto de paid/cancelled).
// El valor es siempre derivado, nunca se persiste.
type CreditCalculator struct {
	customers repository.CustomerRepository
	invoices  repository.InvoiceRepository
}

// NewCreditCalculator construye el servicio.
func NewCreditCalculator(customers repository.CustomerRepository, invoices repository.InvoiceRepository) *CreditCalculator {
	return &CreditCalculator{customers: customers, invoices: invoices}
}

// AvailableCredit calcula el crédito disponible del cliente.
// Cliente desconocido devuelve cero sin error: política lenient heredada del
// sistema original. Quien necesite distinguir "no existe" debe consultar al
// cliente por separado. Las fallas de storage sí se propagan.
func (c *CreditCalculator) AvailableCredit(customerID string) (decimal.Decimal, error) {
	customer, err := c.customers.GetByID(customerID)
	if err != nil {
		return decimal.Zero, err
	}
	if customer == nil {
		return decimal.Zero, nil
	}

	invoices, err := c.invoices.ListByCustomer(customerID, "")
	if err != nil {
		return decimal.Zero, err
	}

	used := OutstandingTotal(invoices)
	return customer.CreditLimit.Sub(used), nil
}

// OutstandingTotal suma el monto de las facturas que cuentan contra el crédito.
func OutstandingTotal(invoices []*entity.Invoice) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range invoices {
		if inv.IsOutstanding() {
			total = total.Add(inv.Amount)
		}
	}
	return total
}
