package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleSales   = "sales"
	RoleOffice  = "office"
	RoleService = "service"
)

// Estados válidos para User, Category, SubCategory, Product y Customer.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User representa un usuario interno del sistema.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, sales, office, service
	Status       string // active, inactive
	CreatedAt    time.Time
}

// ValidRole indica si el rol es uno de los cuatro conocidos.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleSales, RoleOffice, RoleService:
		return true
	}
	return false
}

// ValidStatus indica si el estado es active o inactive.
func ValidStatus(status string) bool {
	return status == StatusActive || status == StatusInactive
}
