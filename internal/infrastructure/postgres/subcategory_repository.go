package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var _ repository.SubCategoryRepository = (*SubCategoryRepo)(nil)

// SubCategoryRepo implementación de SubCategoryRepository (usable con pool o tx).
// Las lecturas traen el nombre de la categoría y el conteo de productos con JOIN
// explícito y subconsulta.
type SubCategoryRepo struct {
	q Querier
}

// NewSubCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSubCategoryRepository(q Querier) *SubCategoryRepo {
	return &SubCategoryRepo{q: q}
}

const subCategoryColumns = `
	s.id, s.category_id, s.name, s.description, s.status, s.created_at,
	c.name AS category_name,
	(SELECT COUNT(*) FROM products p WHERE p.sub_category_id = s.id) AS product_count`

const subCategoryFrom = ` FROM sub_categories s JOIN categories c ON c.id = s.category_id`

// Create persiste una subcategoría. Nombre duplicado dentro de la categoría
// -> ErrNameAlreadyExists.
func (r *SubCategoryRepo) Create(sub *entity.SubCategory) error {
	query := `
		INSERT INTO sub_categories (id, category_id, name, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		sub.ID, sub.CategoryID, sub.Name, sub.Description, sub.Status, sub.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrNameAlreadyExists
		}
		return fmt.Errorf("insert sub_category: %w", err)
	}
	return nil
}

// GetByID obtiene una subcategoría por ID.
func (r *SubCategoryRepo) GetByID(id string) (*entity.SubCategory, error) {
	query := `SELECT` + subCategoryColumns + subCategoryFrom + ` WHERE s.id = $1`
	var s entity.SubCategory
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.CategoryID, &s.Name, &s.Description, &s.Status, &s.CreatedAt,
		&s.CategoryName, &s.ProductCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sub_category: %w", err)
	}
	return &s, nil
}

// GetByCategoryAndName obtiene una subcategoría por categoría y nombre exacto.
func (r *SubCategoryRepo) GetByCategoryAndName(categoryID, name string) (*entity.SubCategory, error) {
	query := `SELECT` + subCategoryColumns + subCategoryFrom + ` WHERE s.category_id = $1 AND s.name = $2`
	var s entity.SubCategory
	err := r.q.QueryRow(context.Background(), query, categoryID, name).Scan(
		&s.ID, &s.CategoryID, &s.Name, &s.Description, &s.Status, &s.CreatedAt,
		&s.CategoryName, &s.ProductCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sub_category by name: %w", err)
	}
	return &s, nil
}

// List lista subcategorías con filtros y paginación.
func (r *SubCategoryRepo) List(f repository.SubCategoryFilter) ([]*entity.SubCategory, error) {
	var b whereBuilder
	if f.CategoryID != "" {
		b.add("s.category_id = $%d", f.CategoryID)
	}
	if f.Status != "" {
		b.add("s.status = $%d", f.Status)
	}
	if f.Search != "" {
		b.addSearch(f.Search, "s.name", "s.description")
	}
	query := `SELECT` + subCategoryColumns + subCategoryFrom + b.clause() +
		orderClause(f.OrderBy, "s.name", map[string]bool{"name": true}) +
		limitOffset(&b, f.Limit, f.Offset)

	rows, err := r.q.Query(context.Background(), query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("list sub_categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.SubCategory
	for rows.Next() {
		var s entity.SubCategory
		if err := rows.Scan(&s.ID, &s.CategoryID, &s.Name, &s.Description, &s.Status, &s.CreatedAt,
			&s.CategoryName, &s.ProductCount); err != nil {
			return nil, fmt.Errorf("scan sub_category: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza una subcategoría existente (incluye mover de categoría).
func (r *SubCategoryRepo) Update(sub *entity.SubCategory) error {
	query := `
		UPDATE sub_categories SET category_id = $2, name = $3, description = $4, status = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		sub.ID, sub.CategoryID, sub.Name, sub.Description, sub.Status,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrNameAlreadyExists
		}
		return fmt.Errorf("update sub_category: %w", err)
	}
	return nil
}

// Delete elimina una subcategoría; los productos quedan con referencia NULL (DDL).
func (r *SubCategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sub_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sub_category: %w", err)
	}
	return nil
}
