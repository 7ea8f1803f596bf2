package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultWarrantyYears años de garantía cuando el caller no los indica.
const DefaultWarrantyYears = 2

// Customer es un cliente con instalación realizada. Nace por alta manual,
// por importación masiva o por conversión de un Lead.
type Customer struct {
	ID               string
	Name             string
	Phone            string
	Email            string
	Area             string
	Address          string
	InstallationDate time.Time
	ExpiryDate       time.Time
	Amount           decimal.Decimal // 2 decimales
	Status           string          // active, inactive
	SalesRep         string
	Notes            string
	CreatedAt        time.Time
}

// ExpiryDate calcula la fecha de vencimiento de garantía: fecha de instalación
// más warrantyYears años calendario. AddDate normaliza fechas fuera de rango,
// por lo que 29-feb + 1 año cae en 1-mar.
func ExpiryDate(installation time.Time, warrantyYears int) time.Time {
	return installation.AddDate(warrantyYears, 0, 0)
}
