package repository

import "github.com/jhoicas/billing-api/internal/domain/entity"

// PaymentRepository define el puerto de persistencia para Payment.
// El motor de despacho solo crea registros; nunca los actualiza ni borra.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	ListByCustomer(customerID string) ([]*entity.Payment, error)
}
