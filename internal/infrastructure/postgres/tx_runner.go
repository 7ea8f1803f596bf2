package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/crm-pro/internal/application/crm"
	"github.com/tu-usuario/crm-pro/internal/application/importer"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// Ensure TxRunner implements crm.TxRunner and importer.TxRunner.
var _ crm.TxRunner = (*TxRunner)(nil)
var _ importer.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	leads repository.LeadRepository,
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	interests repository.InterestRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	leadRepo := NewLeadRepository(tx)
	customerRepo := NewCustomerRepository(tx)
	productRepo := NewProductRepository(tx)
	interestRepo := NewInterestRepository(tx)

	if err := fn(leadRepo, customerRepo, productRepo, interestRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
