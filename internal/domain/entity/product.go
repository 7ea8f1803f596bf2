package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product es un artículo del catálogo. La referencia a SubCategory es opcional:
// si la subcategoría se borra, la referencia queda en NULL (el producto sobrevive).
type Product struct {
	ID             string
	SubCategoryID  *string
	Name           string
	Capacity       string
	Price          decimal.Decimal // 2 decimales
	Specifications string
	Status         string // active, inactive
	CreatedAt      time.Time

	// Lecturas con JOIN explícito (nil si no hay subcategoría).
	SubCategoryName   *string
	SubCategoryStatus *string
	CategoryName      *string
}
