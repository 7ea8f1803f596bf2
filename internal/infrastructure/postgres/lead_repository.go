package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var _ repository.LeadRepository = (*LeadRepo)(nil)

// LeadRepo implementación de LeadRepository (usable con pool o tx).
type LeadRepo struct {
	q Querier
}

// NewLeadRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLeadRepository(q Querier) *LeadRepo {
	return &LeadRepo{q: q}
}

const leadColumns = `
	id, name, phone, email, area, address, status, source, priority, notes, follow_up_date, sales_rep, created_at`

// Create persiste un nuevo lead.
func (r *LeadRepo) Create(lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, name, phone, email, area, address, status, source, priority, notes, follow_up_date, sales_rep, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		lead.ID, lead.Name, lead.Phone, lead.Email, lead.Area, lead.Address,
		lead.Status, lead.Source, lead.Priority, lead.Notes, lead.FollowUpDate,
		lead.SalesRep, lead.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// GetByID obtiene un lead por ID.
func (r *LeadRepo) GetByID(id string) (*entity.Lead, error) {
	query := `SELECT` + leadColumns + ` FROM leads WHERE id = $1`
	var l entity.Lead
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.Name, &l.Phone, &l.Email, &l.Area, &l.Address, &l.Status,
		&l.Source, &l.Priority, &l.Notes, &l.FollowUpDate, &l.SalesRep, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return &l, nil
}

// List lista leads con filtros y paginación.
func (r *LeadRepo) List(f repository.LeadFilter) ([]*entity.Lead, error) {
	var b whereBuilder
	if f.Status != "" {
		b.add("status = $%d", f.Status)
	}
	if f.Area != "" {
		b.add("area = $%d", f.Area)
	}
	if f.Priority != "" {
		b.add("priority = $%d", f.Priority)
	}
	if f.Source != "" {
		b.add("source = $%d", f.Source)
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
	query := `SELECT` + leadColumns + ` FROM leads` + b.clause() +
		orderClause(f.OrderBy, "created_at DESC", map[string]bool{"created_at": true, "follow_up_date": true}) +
		limitOffset(&b, f.Limit, f.Offset)

	rows, err := r.q.Query(context.Background(), query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lead
	for rows.Next() {
		var l entity.Lead
		if err := rows.Scan(&l.ID, &l.Name, &l.Phone, &l.Email, &l.Area, &l.Address, &l.Status,
			&l.Source, &l.Priority, &l.Notes, &l.FollowUpDate, &l.SalesRep, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Update actualiza un lead existente.
func (r *LeadRepo) Update(lead *entity.Lead) error {
	query := `
		UPDATE leads SET name = $2, phone = $3, email = $4, area = $5, address = $6, status = $7,
			source = $8, priority = $9, notes = $10, follow_up_date = $11, sales_rep = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		lead.ID, lead.Name, lead.Phone, lead.Email, lead.Area, lead.Address,
		lead.Status, lead.Source, lead.Priority, lead.Notes, lead.FollowUpDate, lead.SalesRep,
	)
	if err != nil {
		return fmt.Errorf("update lead: %w", err)
	}
	return nil
}

// Delete elimina un lead; sus filas de interés caen en cascada (DDL).
func (r *LeadRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	return nil
}
