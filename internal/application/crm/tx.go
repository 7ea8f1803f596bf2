package crm

import (
	"context"

	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios atados a una misma transacción.
// Toda escritura multi-paso (alta/reemplazo de enlaces, conversión) pasa por
// aquí: o se persiste todo o no se persiste nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		leads repository.LeadRepository,
		customers repository.CustomerRepository,
		products repository.ProductRepository,
		interests repository.InterestRepository,
	) error) error
}
