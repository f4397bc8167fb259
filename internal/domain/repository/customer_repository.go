package repository

import (
	"github.com/jhoicas/billing-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CustomerRepository define el puerto de persistencia para Customer.
// GetByID devuelve (nil, nil) si el cliente no existe; las fallas del backend
// se devuelven como domain.StorageUnavailable.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	// UpdateCreditLimit persiste solo el nuevo límite del cliente.
	// La serialización por cliente la garantiza el caso de uso (lock por clave);
	// el adaptador PostgreSQL además ofrece GetForUpdate para bloqueo de fila.
	UpdateCreditLimit(id string, newLimit decimal.Decimal) error
}
