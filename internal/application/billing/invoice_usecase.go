package billing

import (
	"time"

	"github.com/jhoicas/billing-api/internal/application/dto"
	"github.com/jhoicas/billing-api/internal/domain"
	"github.com/jhoicas/billing-api/internal/domain/entity"
	"github.com/jhoicas/billing-api/internal/domain/repository"
)

// InvoiceUseCase consultas de solo lectura sobre el historial de facturas.
// Este motor no crea ni muta facturas; son insumo histórico de las
// decisiones de crédito.
type InvoiceUseCase struct {
	invoices repository.InvoiceRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(invoices repository.InvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoices: invoices}
}

// Get devuelve la factura o ErrInvoiceNotFound.
func (uc *InvoiceUseCase) Get(id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoices.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrInvoiceNotFound
	}
	return toInvoiceResponse(inv), nil
}

// ListByCustomer lista las facturas del cliente, opcionalmente filtradas por
// estado (status vacío = todas).
func (uc *InvoiceUseCase) ListByCustomer(customerID, status string) ([]*dto.InvoiceResponse, error) {
	if customerID == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.invoices.ListByCustomer(customerID, status)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, toInvoiceResponse(inv))
	}
	return out, nil
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     inv.Amount,
		Status:     inv.Status,
		CreatedAt:  inv.CreatedAt.Format(time.RFC3339),
	}
}
