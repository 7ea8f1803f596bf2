package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest alta de cliente. ExpiryDate es opcional: si no viene,
// se deriva de installationDate + warrantyYears.
type CreateCustomerRequest struct {
	Name             string           `json:"name"`
	Phone            string           `json:"phone"`
	Email            string           `json:"email"`
	Area             string           `json:"area"`
	Address          string           `json:"address"`
	InstallationDate string           `json:"installationDate"` // YYYY-MM-DD
	ExpiryDate       *string          `json:"expiryDate"`
	WarrantyYears    *int             `json:"warrantyYears"`
	Amount           *decimal.Decimal `json:"amount"`
	Status           string           `json:"status"`
	SalesRep         string           `json:"salesRep"`
	Notes            string           `json:"notes"`
	ProductIDs       []string         `json:"productIds"`
}

// UpdateCustomerRequest actualización parcial. Si cambian installationDate o
// warrantyYears se recalcula expiryDate.
type UpdateCustomerRequest struct {
	Name             *string          `json:"name"`
	Phone            *string          `json:"phone"`
	Email            *string          `json:"email"`
	Area             *string          `json:"area"`
	Address          *string          `json:"address"`
	InstallationDate *string          `json:"installationDate"`
	WarrantyYears    *int             `json:"warrantyYears"`
	Amount           *decimal.Decimal `json:"amount"`
	Status           *string          `json:"status"`
	SalesRep         *string          `json:"salesRep"`
	Notes            *string          `json:"notes"`
	ProductIDs       *[]string        `json:"productIds"`
}

// CustomerResponse salida de un cliente con sus productos asociados en orden.
type CustomerResponse struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Phone            string            `json:"phone"`
	Email            string            `json:"email"`
	Area             string            `json:"area"`
	Address          string            `json:"address"`
	InstallationDate string            `json:"installationDate"`
	ExpiryDate       string            `json:"expiryDate"`
	Amount           decimal.Decimal   `json:"amount"`
	Status           string            `json:"status"`
	SalesRep         string            `json:"salesRep"`
	Notes            string            `json:"notes"`
	Products         []ProductResponse `json:"products"`
	CreatedAt        time.Time         `json:"createdAt"`
}

// CustomerListResponse lista paginada de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
