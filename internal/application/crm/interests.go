package crm

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// resolveProducts resuelve cada id a un producto existente, en orden. Si algún
// id no resuelve, o el producto cuelga de una subcategoría inactiva, devuelve
// error sin resolver nada más: el caller no debe haber insertado aún.
func resolveProducts(products repository.ProductRepository, ids []string) ([]*entity.Product, error) {
	resolved := make([]*entity.Product, 0, len(ids))
	for _, id := range ids {
		p, err := products.GetByID(id)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
		}
		if p.SubCategoryStatus != nil && *p.SubCategoryStatus != entity.StatusActive {
			return nil, fmt.Errorf("%w: %s", domain.ErrSubCategoryInactive, p.Name)
		}
		resolved = append(resolved, p)
	}
	return resolved, nil
}

// linkProducts inserta una fila de interés por producto, en el orden dado.
func linkProducts(interests repository.InterestRepository, kind entity.OwnerKind, ownerID string, products []*entity.Product) error {
	for i, p := range products {
		row := &entity.Interest{
			ID:        uuid.New().String(),
			OwnerKind: kind,
			OwnerID:   ownerID,
			ProductID: p.ID,
			Position:  i,
		}
		if err := interests.Insert(row); err != nil {
			return err
		}
	}
	return nil
}

// replaceLinks reemplazo completo: borra todas las filas del dueño y reinserta
// en el orden dado. Debe ejecutarse dentro de la transacción del TxRunner.
func replaceLinks(interests repository.InterestRepository, kind entity.OwnerKind, ownerID string, products []*entity.Product) error {
	if err := interests.DeleteByOwner(kind, ownerID); err != nil {
		return err
	}
	return linkProducts(interests, kind, ownerID, products)
}

func toProductResponses(products []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, dto.ProductResponse{
			ID:             p.ID,
			Name:           p.Name,
			SubCategoryID:  p.SubCategoryID,
			SubCategory:    p.SubCategoryName,
			Category:       p.CategoryName,
			Capacity:       p.Capacity,
			Price:          p.Price,
			Specifications: p.Specifications,
			Status:         p.Status,
			CreatedAt:      p.CreatedAt,
		})
	}
	return items
}

// parseDateOnly interpreta fechas YYYY-MM-DD del cuerpo JSON.
func parseDateOnly(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha inválida %q (se espera YYYY-MM-DD)", domain.ErrInvalidInput, s)
	}
	return t, nil
}

func formatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}
