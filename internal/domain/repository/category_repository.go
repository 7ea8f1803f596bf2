package repository

import "github.com/tu-usuario/crm-pro/internal/domain/entity"

// CategoryFilter filtros de listado de categorías.
type CategoryFilter struct {
	Status  string
	Search  string // name, description
	OrderBy string // name, created_at
	Limit   int
	Offset  int
}

// CategoryRepository define el puerto de persistencia para Category.
// Delete elimina en cascada subcategorías y sus productos (DDL).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	List(f CategoryFilter) ([]*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id string) error
}

// SubCategoryFilter filtros de listado de subcategorías.
type SubCategoryFilter struct {
	CategoryID string
	Status     string
	Search     string // name, description
	OrderBy    string // name
	Limit      int
	Offset     int
}

// SubCategoryRepository define el puerto de persistencia para SubCategory.
// Delete pone en NULL la referencia de los productos (no los borra).
type SubCategoryRepository interface {
	Create(sub *entity.SubCategory) error
	GetByID(id string) (*entity.SubCategory, error)
	GetByCategoryAndName(categoryID, name string) (*entity.SubCategory, error)
	List(f SubCategoryFilter) ([]*entity.SubCategory, error)
	Update(sub *entity.SubCategory) error
	Delete(id string) error
}
