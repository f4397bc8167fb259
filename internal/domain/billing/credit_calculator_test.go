package billing_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/billing-api/internal/domain"
	"github.com/jhoicas/billing-api/internal/domain/billing"
	"github.com/jhoicas/billing-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del cálculo de crédito disponible:
// disponible = límite − Σ(facturas con estado distinto de paid/cancelled).
// Cliente desconocido devuelve cero sin error (política lenient).
// ──────────────────────────────────────────────────────────────────────────────

type stubCustomerReader struct {
	customer *entity.Customer
	err      error
}

func (s *stubCustomerReader) Create(*entity.Customer) error { return nil }
func (s *stubCustomerReader) GetByID(string) (*entity.Customer, error) {
	return s.customer, s.err
}
func (s *stubCustomerReader) Update(*entity.Customer) error { return nil }
func (s *stubCustomerReader) UpdateCreditLimit(string, decimal.Decimal) error {
	return nil
}

type stubInvoiceReader struct {
	invoices []*entity.Invoice
	err      error
}

func (s *stubInvoiceReader) Create(*entity.Invoice) error { return nil }
func (s *stubInvoiceReader) GetByID(string) (*entity.Invoice, error) {
	return nil, nil
}
func (s *stubInvoiceReader) ListByCustomer(string, string) ([]*entity.Invoice, error) {
	return s.invoices, s.err
}

func invoiceWith(status string, amount int64) *entity.Invoice {
	return &entity.Invoice{
		ID:         "inv",
		CustomerID: "c1",
		Amount:     decimal.NewFromInt(amount),
		Status:     status,
	}
}

func TestAvailableCredit_DescuentaSoloFacturasVivas(t *testing.T) {
	customers := &stubCustomerReader{customer: &entity.Customer{
		ID: "c1", CreditLimit: decimal.NewFromInt(1000),
	}}
	invoices := &stubInvoiceReader{invoices: []*entity.Invoice{
		invoiceWith(entity.InvoiceStatusPending, 400),
		invoiceWith(entity.InvoiceStatusPaid, 200),
		invoiceWith(entity.InvoiceStatusLate, 100),
	}}
	calc := billing.NewCreditCalculator(customers, invoices)

	got, err := calc.AvailableCredit("c1")

	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(500)),
		"1000 − (400 pending + 100 late) = 500; la paid no cuenta, se esperaba 500 y se obtuvo %s", got)
}

func TestAvailableCredit_CanceladaNoDescuenta(t *testing.T) {
	customers := &stubCustomerReader{customer: &entity.Customer{
		ID: "c1", CreditLimit: decimal.NewFromInt(1000),
	}}
	invoices := &stubInvoiceReader{invoices: []*entity.Invoice{
		invoiceWith(entity.InvoiceStatusCancelled, 999),
	}}
	calc := billing.NewCreditCalculator(customers, invoices)

	got, err := calc.AvailableCredit("c1")

	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(1000)))
}

func TestAvailableCredit_ClienteDesconocido_CeroSinError(t *testing.T) {
	calc := billing.NewCreditCalculator(&stubCustomerReader{}, &stubInvoiceReader{})

	got, err := calc.AvailableCredit("fantasma")

	require.NoError(t, err, "cliente desconocido no es error para este cálculo")
	assert.True(t, got.IsZero())
}

// TestAvailableCredit_PuedeSerNegativo la deuda viva puede superar el límite.
func TestAvailableCredit_PuedeSerNegativo(t *testing.T) {
	customers := &stubCustomerReader{customer: &entity.Customer{
		ID: "c1", CreditLimit: decimal.NewFromInt(100),
	}}
	invoices := &stubInvoiceReader{invoices: []*entity.Invoice{
		invoiceWith(entity.InvoiceStatusLate, 250),
	}}
	calc := billing.NewCreditCalculator(customers, invoices)

	got, err := calc.AvailableCredit("c1")

	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(-150)))
}

func TestAvailableCredit_StorageCaidoSiPropaga(t *testing.T) {
	falla := domain.StorageUnavailable(errors.New("conexión rechazada"))

	calc := billing.NewCreditCalculator(&stubCustomerReader{err: falla}, &stubInvoiceReader{})
	_, err := calc.AvailableCredit("c1")
	require.Error(t, err)
	assert.Equal(t, domain.KindStorage, domain.KindOf(err))

	customers := &stubCustomerReader{customer: &entity.Customer{ID: "c1", CreditLimit: decimal.NewFromInt(100)}}
	calc = billing.NewCreditCalculator(customers, &stubInvoiceReader{err: falla})
	_, err = calc.AvailableCredit("c1")
	require.Error(t, err)
	assert.Equal(t, domain.KindStorage, domain.KindOf(err))
}

func TestOutstandingTotal_SinFacturasEsCero(t *testing.T) {
	assert.True(t, billing.OutstandingTotal(nil).IsZero())
}
