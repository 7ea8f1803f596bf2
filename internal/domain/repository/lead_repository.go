package repository

import (
	"time"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// LeadFilter filtros de listado de leads.
type LeadFilter struct {
	Status   string
	Area     string
	Priority string
	Source   string
	SalesRep string
	FromDate *time.Time // created_at >=
	ToDate   *time.Time // created_at <=
	Search   string     // name, phone, email, notes
	OrderBy  string     // created_at, follow_up_date
	Limit    int
	Offset   int
}

// LeadRepository define el puerto de persistencia para Lead.
type LeadRepository interface {
	Create(lead *entity.Lead) error
	GetByID(id string) (*entity.Lead, error)
	List(f LeadFilter) ([]*entity.Lead, error)
	Update(lead *entity.Lead) error
	Delete(id string) error
}
