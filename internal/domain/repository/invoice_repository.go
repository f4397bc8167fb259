package repository

import "github.com/jhoicas/billing-api/internal/domain/entity"

// InvoiceRepository define el puerto de lectura del historial de facturas.
// El motor de crédito solo lee; Create existe porque el record store es dueño
// del CRUD (lo usan seeds y tests, nunca una operación del core).
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	// ListByCustomer devuelve las facturas del cliente, más recientes primero.
	// status vacío = todas; si no, filtra por ese estado.
	ListByCustomer(customerID, status string) ([]*entity.Invoice, error)
}
