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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación de CategoryRepository (usable con pool o tx).
// Las lecturas traen el conteo de subcategorías con subconsulta.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

const categoryColumns = `
	c.id, c.name, c.description, c.status, c.created_at,
	(SELECT COUNT(*) FROM sub_categories s WHERE s.category_id = c.id) AS sub_categories_count`

// Create persiste una categoría. Nombre duplicado -> ErrNameAlreadyExists.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categories (id, name, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Description, category.Status, category.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrNameAlreadyExists
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID con su conteo de subcategorías.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	query := `SELECT` + categoryColumns + ` FROM categories c WHERE c.id = $1`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.Status, &c.CreatedAt, &c.SubCategoriesCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// GetByName obtiene una categoría por nombre exacto.
func (r *CategoryRepo) GetByName(name string) (*entity.Category, error) {
	query := `SELECT` + categoryColumns + ` FROM categories c WHERE c.name = $1`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, name).Scan(
		&c.ID, &c.Name, &c.Description, &c.Status, &c.CreatedAt, &c.SubCategoriesCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category by name: %w", err)
	}
	return &c, nil
}

// List lista categorías con filtros y paginación.
func (r *CategoryRepo) List(f repository.CategoryFilter) ([]*entity.Category, error) {
	var b whereBuilder
	if f.Status != "" {
		b.add("c.status = $%d", f.Status)
	}
	if f.Search != "" {
		b.addSearch(f.Search, "c.name", "c.description")
	}
	query := `SELECT` + categoryColumns + ` FROM categories c` + b.clause() +
		orderClause(f.OrderBy, "c.name", map[string]bool{"name": true, "created_at": true}) +
		limitOffset(&b, f.Limit, f.Offset)

	rows, err := r.q.Query(context.Background(), query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Status, &c.CreatedAt, &c.SubCategoriesCount); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza una categoría existente.
func (r *CategoryRepo) Update(category *entity.Category) error {
	query := `
		UPDATE categories SET name = $2, description = $3, status = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Description, category.Status,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrNameAlreadyExists
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete elimina una categoría con sus subcategorías y productos. Los productos
// se borran explícitamente en la misma sentencia porque su FK es SET NULL (solo
// el borrado de la subcategoría suelta los deja huérfanos, no este).
func (r *CategoryRepo) Delete(id string) error {
	query := `
		WITH doomed AS (
			DELETE FROM products p
			USING sub_categories s
			WHERE p.sub_category_id = s.id AND s.category_id = $1
			RETURNING p.id
		)
		DELETE FROM categories WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
