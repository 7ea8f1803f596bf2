package entity

import "time"

// Category agrupa subcategorías del catálogo. Nombre único global.
type Category struct {
	ID          string
	Name        string
	Description string
	Status      string // active, inactive
	CreatedAt   time.Time

	// SubCategoriesCount se calcula en la consulta (no es columna).
	SubCategoriesCount int
}

// SubCategory pertenece a exactamente una Category. Nombre único dentro de la categoría.
// Borrar la categoría la elimina en cascada junto con sus productos.
type SubCategory struct {
	ID          string
	CategoryID  string
	Name        string
	Description string
	Status      string // active, inactive
	CreatedAt   time.Time

	// Calculados en la consulta.
	CategoryName string
	ProductCount int
}
