package repository

import "github.com/tu-usuario/crm-pro/internal/domain/entity"

// InterestRepository define el puerto para las filas de unión lead_products /
// customer_products. El reemplazo completo (borrar + insertar en orden) debe
// ejecutarse dentro de una transacción: ver TxRunner en application/crm.
type InterestRepository interface {
	// DeleteByOwner borra todas las filas del dueño.
	DeleteByOwner(kind entity.OwnerKind, ownerID string) error
	// Insert agrega una fila al final del orden del dueño.
	Insert(interest *entity.Interest) error
	// ListProductsByOwner devuelve los productos enlazados en orden de creación,
	// con nombres de categoría/subcategoría resueltos.
	ListProductsByOwner(kind entity.OwnerKind, ownerID string) ([]*entity.Product, error)
}
