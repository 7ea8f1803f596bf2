package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto. La subcategoría es obligatoria al crear
// y debe estar activa.
type CreateProductRequest struct {
	Name           string          `json:"name"`
	SubCategoryID  string          `json:"subCategoryId"`
	Capacity       string          `json:"capacity"`
	Price          decimal.Decimal `json:"price"`
	Specifications string          `json:"specifications"`
	Status         string          `json:"status"`
}

// UpdateProductRequest actualización parcial de producto.
type UpdateProductRequest struct {
	Name           *string          `json:"name"`
	SubCategoryID  *string          `json:"subCategoryId"`
	Capacity       *string          `json:"capacity"`
	Price          *decimal.Decimal `json:"price"`
	Specifications *string          `json:"specifications"`
	Status         *string          `json:"status"`
}

// ProductResponse salida de un producto con nombres de catálogo resueltos.
type ProductResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	SubCategoryID  *string         `json:"subCategoryId"`
	SubCategory    *string         `json:"subCategory"`
	Category       *string         `json:"category"`
	Capacity       string          `json:"capacity"`
	Price          decimal.Decimal `json:"price"`
	Specifications string          `json:"specifications"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
