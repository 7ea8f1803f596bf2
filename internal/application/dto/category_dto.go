package dto

import "time"

// CreateCategoryRequest alta de categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// UpdateCategoryRequest actualización parcial de categoría.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	SubCategoriesCount int       `json:"subCategoriesCount"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
}

// CategoryListResponse lista paginada de categorías.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// CreateSubCategoryRequest alta de subcategoría.
type CreateSubCategoryRequest struct {
	Name        string `json:"name"`
	CategoryID  string `json:"categoryId"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// UpdateSubCategoryRequest actualización parcial de subcategoría.
type UpdateSubCategoryRequest struct {
	Name        *string `json:"name"`
	CategoryID  *string `json:"categoryId"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// SubCategoryResponse salida de una subcategoría.
type SubCategoryResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	CategoryID   string    `json:"categoryId"`
	CategoryName string    `json:"category"`
	Description  string    `json:"description"`
	ProductCount int       `json:"productCount"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SubCategoryListResponse lista paginada de subcategorías.
type SubCategoryListResponse struct {
	Items []SubCategoryResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
