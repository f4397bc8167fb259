package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/billing-api/internal/application/billing"
	"github.com/jhoicas/billing-api/internal/application/dto"
	"github.com/jhoicas/billing-api/internal/domain"
	"github.com/jhoicas/billing-api/internal/domain/entity"
	"github.com/jhoicas/billing-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del ciclo de vida del cliente: alta con validación, actualización de
// contacto, límite administrativo y cierre de cuenta (un solo sentido, bloqueado
// por saldo pendiente).
// ──────────────────────────────────────────────────────────────────────────────

func newCustomerService(customers *fakeCustomerStore, invoices *fakeInvoiceStore) *billing.CustomerUseCase {
	return billing.NewCustomerUseCase(customers, invoices, billing.NewKeyedMutex(), logger.Nop())
}

func validCreateRequest() dto.CreateCustomerRequest {
	return dto.CreateCustomerRequest{
		Name:        "María Gómez",
		Email:       "maria@ejemplo.com",
		Phone:       "3009876543",
		Age:         34,
		CreditLimit: decimal.NewFromInt(1000),
	}
}

// ── Alta ──────────────────────────────────────────────────────────────────────

func TestCustomerCreate_Exitoso(t *testing.T) {
	customers := newFakeCustomerStore()
	uc := newCustomerService(customers, &fakeInvoiceStore{})

	resp, err := uc.Create(validCreateRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID, "el alta debe asignar un ID")
	assert.Equal(t, entity.CustomerStatusActive, resp.Status, "todo cliente nuevo nace activo")
}

func TestCustomerCreate_Validaciones(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.CreateCustomerRequest)
	}{
		{"nombre vacío", func(r *dto.CreateCustomerRequest) { r.Name = "" }},
		{"email vacío", func(r *dto.CreateCustomerRequest) { r.Email = "" }},
		{"teléfono vacío", func(r *dto.CreateCustomerRequest) { r.Phone = "" }},
		{"edad negativa", func(r *dto.CreateCustomerRequest) { r.Age = -1 }},
		{"edad fuera de rango", func(r *dto.CreateCustomerRequest) { r.Age = 151 }},
		{"límite negativo", func(r *dto.CreateCustomerRequest) { r.CreditLimit = decimal.NewFromInt(-100) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := newCustomerService(newFakeCustomerStore(), &fakeInvoiceStore{})
			req := validCreateRequest()
			tc.mutate(&req)

			_, err := uc.Create(req)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// TestCustomerCreate_Edad150Permitida la cota superior es inclusiva.
func TestCustomerCreate_Edad150Permitida(t *testing.T) {
	uc := newCustomerService(newFakeCustomerStore(), &fakeInvoiceStore{})
	req := validCreateRequest()
	req.Age = 150

	_, err := uc.Create(req)

	assert.NoError(t, err)
}

// ── Lectura y actualizaciones ─────────────────────────────────────────────────

func TestCustomerGet_NoExiste(t *testing.T) {
	uc := newCustomerService(newFakeCustomerStore(), &fakeInvoiceStore{})

	_, err := uc.Get("fantasma")

	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestCustomerUpdateEmail(t *testing.T) {
	customers := newFakeCustomerStore(activeCustomer("c1", 30, 1000))
	uc := newCustomerService(customers, &fakeInvoiceStore{})

	resp, err := uc.UpdateEmail("c1", "nuevo@ejemplo.com")

	require.NoError(t, err)
	assert.Equal(t, "nuevo@ejemplo.com", resp.Email)

	_, err = uc.UpdateEmail("c1", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "email vacío se rechaza")
}

func TestCustomerUpdatePhone(t *testing.T) {
	customers := newFakeCustomerStore(activeCustomer("c1", 30, 1000))
	uc := newCustomerService(customers, &fakeInvoiceStore{})

	resp, err := uc.UpdatePhone("c1", "3110000000")

	require.NoError(t, err)
	assert.Equal(t, "3110000000", resp.Phone)
}

func TestCustomerUpdateCreditLimit_Administrativo(t *testing.T) {
	customers := newFakeCustomerStore(activeCustomer("c1", 30, 1000))
	uc := newCustomerService(customers, &fakeInvoiceStore{})

	resp, err := uc.UpdateCreditLimit("c1", decimal.NewFromInt(7500))

	require.NoError(t, err)
	assert.True(t, resp.CreditLimit.Equal(decimal.NewFromInt(7500)), "el camino administrativo fija el límite sin escalera de reglas")

	_, err = uc.UpdateCreditLimit("c1", decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el límite directo debe ser positivo")
}

// ── Cierre de cuenta ──────────────────────────────────────────────────────────

func TestCloseAccount_Exitoso(t *testing.T) {
	customers := newFakeCustomerStore(activeCustomer("c1", 30, 1000))
	invoices := &fakeInvoiceStore{}
	require.NoError(t, invoices.Create(&entity.Invoice{
		ID: "inv-1", CustomerID: "c1",
		Amount: decimal.NewFromInt(300), Status: entity.InvoiceStatusPaid,
	}))
	uc := newCustomerService(customers, invoices)

	resp, err := uc.CloseAccount("c1", "solicitud del cliente")

	require.NoError(t, err)
	assert.Equal(t, entity.CustomerStatusClosed, resp.Status)
	assert.Equal(t, "solicitud del cliente", resp.CloseReason)
}

func TestCloseAccount_SaldoPendiente(t *testing.T) {
	customers := newFakeCustomerStore(activeCustomer("c1", 30, 1000))
	invoices := &fakeInvoiceStore{}
	require.NoError(t, invoices.Create(&entity.Invoice{
		ID: "inv-1", CustomerID: "c1",
		Amount: decimal.NewFromInt(300), Status: entity.InvoiceStatusPending,
	}))
	uc := newCustomerService(customers, invoices)

	_, err := uc.CloseAccount("c1", "solicitud del cliente")

	assert.ErrorIs(t, err, domain.ErrOutstandingBalance, "una factura pendiente bloquea el cierre")
}

func TestCloseAccount_TardiaTambienBloquea(t *testing.T) {
	customers := newFakeCustomerStore(activeCustomer("c1", 30, 1000))
	invoices := &fakeInvoiceStore{}
	require.NoError(t, invoices.Create(lateInvoice("c1", 200)))
	uc := newCustomerService(customers, invoices)

	_, err := uc.CloseAccount("c1", "morosidad")

	assert.ErrorIs(t, err, domain.ErrOutstandingBalance)
}

// TestCloseAccount_YaCerrada la transición es de un solo sentido: el segundo
// cierre se rechaza.
func TestCloseAccount_YaCerrada(t *testing.T) {
	customers := newFakeCustomerStore(activeCustomer("c1", 30, 1000))
	uc := newCustomerService(customers, &fakeInvoiceStore{})

	_, err := uc.CloseAccount("c1", "solicitud del cliente")
	require.NoError(t, err)

	_, err = uc.CloseAccount("c1", "repetido")
	assert.ErrorIs(t, err, domain.ErrAccountClosed)
}

func TestCloseAccount_NoExiste(t *testing.T) {
	uc := newCustomerService(newFakeCustomerStore(), &fakeInvoiceStore{})

	_, err := uc.CloseAccount("fantasma", "x")

	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}
