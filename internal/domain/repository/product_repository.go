package repository

import "github.com/tu-usuario/crm-pro/internal/domain/entity"

// ProductFilter filtros de listado de productos.
type ProductFilter struct {
	Status        string
	CategoryID    string
	SubCategoryID string
	Search        string // name, specifications
	OrderBy       string // name, price, created_at
	Limit         int
	Offset        int
}

// ProductRepository define el puerto de persistencia para Product.
// Las lecturas devuelven los nombres de categoría/subcategoría resueltos con JOIN
// explícito (sin grafos perezosos).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetByName resuelve por nombre exacto (sensible a mayúsculas y espacios);
	// lo usa la importación masiva.
	GetByName(name string) (*entity.Product, error)
	List(f ProductFilter) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
}
