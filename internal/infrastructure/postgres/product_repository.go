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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository (usable con pool o tx).
// Las lecturas resuelven subcategoría y categoría con LEFT JOIN explícito.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `
	p.id, p.sub_category_id, p.name, p.capacity, p.price, p.specifications, p.status, p.created_at,
	s.name AS sub_category_name, s.status AS sub_category_status, c.name AS category_name`

const productFrom = `
	FROM products p
	LEFT JOIN sub_categories s ON s.id = p.sub_category_id
	LEFT JOIN categories c ON c.id = s.category_id`

// Create persiste un producto. Nombre duplicado -> ErrNameAlreadyExists.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, sub_category_id, name, capacity, price, specifications, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SubCategoryID, product.Name, product.Capacity,
		product.Price, product.Specifications, product.Status, product.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrNameAlreadyExists
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID con los nombres de su jerarquía.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT` + productColumns + productFrom + ` WHERE p.id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByName obtiene un producto por nombre exacto (sensible a mayúsculas y
// espacios); lo usa la importación masiva.
func (r *ProductRepo) GetByName(name string) (*entity.Product, error) {
	query := `SELECT` + productColumns + productFrom + ` WHERE p.name = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, name))
	if err != nil {
		return nil, fmt.Errorf("get product by name: %w", err)
	}
	return p, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.SubCategoryID, &p.Name, &p.Capacity, &p.Price, &p.Specifications, &p.Status, &p.CreatedAt,
		&p.SubCategoryName, &p.SubCategoryStatus, &p.CategoryName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// List lista productos con filtros y paginación.
func (r *ProductRepo) List(f repository.ProductFilter) ([]*entity.Product, error) {
	var b whereBuilder
	if f.Status != "" {
		b.add("p.status = $%d", f.Status)
	}
	if f.SubCategoryID != "" {
		b.add("p.sub_category_id = $%d", f.SubCategoryID)
	}
	if f.CategoryID != "" {
		b.add("s.category_id = $%d", f.CategoryID)
	}
	if f.Search != "" {
		b.addSearch(f.Search, "p.name", "p.specifications")
	}
	query := `SELECT` + productColumns + productFrom + b.clause() +
		orderClause("p."+f.OrderBy, "p.name", map[string]bool{"p.name": true, "p.price": true, "p.created_at": true}) +
		limitOffset(&b, f.Limit, f.Offset)

	rows, err := r.q.Query(context.Background(), query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.SubCategoryID, &p.Name, &p.Capacity, &p.Price, &p.Specifications,
			&p.Status, &p.CreatedAt, &p.SubCategoryName, &p.SubCategoryStatus, &p.CategoryName); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un producto existente (incluye mover de subcategoría).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET sub_category_id = $2, name = $3, capacity = $4, price = $5, specifications = $6, status = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SubCategoryID, product.Name, product.Capacity,
		product.Price, product.Specifications, product.Status,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrNameAlreadyExists
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto; sus filas de interés caen en cascada (DDL).
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
