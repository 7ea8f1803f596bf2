package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `
	id, name, phone, email, area, address, installation_date, expiry_date, amount, status, sales_rep, notes, created_at`

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, phone, email, area, address, installation_date, expiry_date, amount, status, sales_rep, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Phone, customer.Email, customer.Area, customer.Address,
		customer.InstallationDate, customer.ExpiryDate, customer.Amount, customer.Status,
		customer.SalesRep, customer.Notes, customer.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `SELECT` + customerColumns + ` FROM customers WHERE id = $1`
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Phone, &c.Email, &c.Area, &c.Address,
		&c.InstallationDate, &c.ExpiryDate, &c.Amount, &c.Status,
		&c.SalesRep, &c.Notes, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// List lista clientes con filtros y paginación.
func (r *CustomerRepo) List(f repository.CustomerFilter) ([]*entity.Customer, error) {
	var b whereBuilder
	if f.Status != "" {
		b.add("status = $%d", f.Status)
	}
	if f.Area != "" {
		b.add("area = $%d", f.Area)
	}
	if f.SalesRep != "" {
		b.add("sales_rep = $%d", f.SalesRep)
	}
	if f.FromDate != nil {
		b.add("created_at >= $%d", *f.FromDate)
	}
	if f.ToDate != nil {
		b.add("created_at <= $%d", *f.ToDate)
	}
	if f.Search != "" {
		b.addSearch(f.Search, "name", "phone", "email", "notes")
	}
	query := `SELECT` + customerColumns + ` FROM customers` + b.clause() +
		orderClause(f.OrderBy, "created_at DESC", map[string]bool{
			"created_at": true, "installation_date": true, "expiry_date": true,
		}) +
		limitOffset(&b, f.Limit, f.Offset)

	rows, err := r.q.Query(context.Background(), query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Area, &c.Address,
			&c.InstallationDate, &c.ExpiryDate, &c.Amount, &c.Status,
			&c.SalesRep, &c.Notes, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza un cliente existente.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers SET name = $2, phone = $3, email = $4, area = $5, address = $6,
			installation_date = $7, expiry_date = $8, amount = $9, status = $10, sales_rep = $11, notes = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Phone, customer.Email, customer.Area, customer.Address,
		customer.InstallationDate, customer.ExpiryDate, customer.Amount, customer.Status,
		customer.SalesRep, customer.Notes,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete elimina un cliente; sus filas de asociación caen en cascada (DDL).
func (r *CustomerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}
