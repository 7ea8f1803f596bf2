package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var _ repository.InterestRepository = (*InterestRepo)(nil)

// InterestRepo implementación de InterestRepository sobre las tablas de unión
// lead_products y customer_products (usable con pool o tx).
type InterestRepo struct {
	q Querier
}

// NewInterestRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInterestRepository(q Querier) *InterestRepo {
	return &InterestRepo{q: q}
}

// interestTable resuelve la tabla de unión y su columna de dueño según el kind.
func interestTable(kind entity.OwnerKind) (table, ownerCol string, err error) {
	switch kind {
	case entity.OwnerLead:
		return "lead_products", "lead_id", nil
	case entity.OwnerCustomer:
		return "customer_products", "customer_id", nil
	}
	return "", "", fmt.Errorf("owner kind desconocido: %q", kind)
}

// DeleteByOwner borra todas las filas de interés del dueño.
func (r *InterestRepo) DeleteByOwner(kind entity.OwnerKind, ownerID string) error {
	table, ownerCol, err := interestTable(kind)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table, ownerCol)
	if _, err := r.q.Exec(context.Background(), query, ownerID); err != nil {
		return fmt.Errorf("delete interests: %w", err)
	}
	return nil
}

// Insert agrega una fila de interés al final del orden del dueño.
func (r *InterestRepo) Insert(interest *entity.Interest) error {
	table, ownerCol, err := interestTable(interest.OwnerKind)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (id, %s, product_id, position)
		VALUES ($1, $2, $3, $4)`, table, ownerCol)
	_, err = r.q.Exec(context.Background(), query,
		interest.ID, interest.OwnerID, interest.ProductID, interest.Position,
	)
	if err != nil {
		return fmt.Errorf("insert interest: %w", err)
	}
	return nil
}

// ListProductsByOwner devuelve los productos enlazados en orden de creación,
// con los nombres de su jerarquía resueltos.
func (r *InterestRepo) ListProductsByOwner(kind entity.OwnerKind, ownerID string) ([]*entity.Product, error) {
	table, ownerCol, err := interestTable(kind)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		SELECT
			p.id, p.sub_category_id, p.name, p.capacity, p.price, p.specifications, p.status, p.created_at,
			s.name AS sub_category_name, s.status AS sub_category_status, c.name AS category_name
		FROM %s i
		JOIN products p ON p.id = i.product_id
		LEFT JOIN sub_categories s ON s.id = p.sub_category_id
		LEFT JOIN categories c ON c.id = s.category_id
		WHERE i.%s = $1
		ORDER BY i.position`, table, ownerCol)

	rows, err := r.q.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list interests: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.SubCategoryID, &p.Name, &p.Capacity, &p.Price, &p.Specifications,
			&p.Status, &p.CreatedAt, &p.SubCategoryName, &p.SubCategoryStatus, &p.CategoryName); err != nil {
			return nil, fmt.Errorf("scan interest product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
