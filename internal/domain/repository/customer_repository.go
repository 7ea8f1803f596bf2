package repository

import (
	"time"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// CustomerFilter filtros de listado de clientes.
type CustomerFilter struct {
	Status   string
	Area     string
	SalesRep string
	FromDate *time.Time // created_at >=
	ToDate   *time.Time // created_at <=
	Search   string     // name, phone, email, notes
	OrderBy  string     // created_at, installation_date, expiry_date
	Limit    int
	Offset   int
}

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	List(f CustomerFilter) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
}
