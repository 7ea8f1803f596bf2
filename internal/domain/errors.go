package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists  = errors.New("el email ya está registrado")
	ErrNameAlreadyExists   = errors.New("el nombre ya está registrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrCategoryNotFound    = errors.New("categoría no encontrada")
	ErrSubCategoryNotFound = errors.New("subcategoría no encontrada")
	ErrSubCategoryInactive = errors.New("la subcategoría no está activa")
	ErrProductNotFound     = errors.New("producto no encontrado")
	ErrLeadNotFound        = errors.New("lead no encontrado")
	ErrCustomerNotFound    = errors.New("cliente no encontrado")
	ErrImportFormat        = errors.New("no se pudo procesar el archivo")
)
