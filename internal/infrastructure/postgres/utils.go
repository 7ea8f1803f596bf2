package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// whereBuilder acumula condiciones y argumentos posicionales para un WHERE
// dinámico. Evita concatenar valores: solo placeholders $n.
type whereBuilder struct {
	conds []string
	args  []any
}

func (b *whereBuilder) add(cond string, arg any) {
	b.args = append(b.args, arg)
	b.conds = append(b.conds, fmt.Sprintf(cond, len(b.args)))
}

// addSearch agrega un ILIKE sobre varias columnas con un mismo término.
func (b *whereBuilder) addSearch(term string, columns ...string) {
	b.args = append(b.args, "%"+term+"%")
	n := len(b.args)
	parts := make([]string, 0, len(columns))
	for _, col := range columns {
		parts = append(parts, fmt.Sprintf("%s ILIKE $%d", col, n))
	}
	b.conds = append(b.conds, "("+strings.Join(parts, " OR ")+")")
}

func (b *whereBuilder) clause() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

// orderClause valida la columna contra una lista blanca; si no está, usa def.
func orderClause(orderBy, def string, allowed map[string]bool) string {
	col := def
	if orderBy != "" && allowed[orderBy] {
		col = orderBy
	}
	return " ORDER BY " + col
}

// limitOffset agrega la paginación como placeholders al final de los args.
func limitOffset(b *whereBuilder, limit, offset int) string {
	b.args = append(b.args, limit)
	lim := len(b.args)
	b.args = append(b.args, offset)
	off := len(b.args)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", lim, off)
}
