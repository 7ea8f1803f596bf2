package repository

import "github.com/tu-usuario/crm-pro/internal/domain/entity"

// UserFilter filtros de listado de usuarios.
type UserFilter struct {
	Role    string
	Status  string
	Search  string // name, email
	OrderBy string // created_at, name
	Limit   int
	Offset  int
}

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	List(f UserFilter) ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
}
