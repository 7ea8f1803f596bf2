package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// SubCategoryUseCase casos de uso CRUD para subcategorías.
type SubCategoryUseCase struct {
	repo       repository.SubCategoryRepository
	categories repository.CategoryRepository
}

// NewSubCategoryUseCase construye el caso de uso.
func NewSubCategoryUseCase(repo repository.SubCategoryRepository, categories repository.CategoryRepository) *SubCategoryUseCase {
	return &SubCategoryUseCase{repo: repo, categories: categories}
}

// Create crea una subcategoría. La categoría debe existir; el nombre es único
// dentro de la categoría.
func (uc *SubCategoryUseCase) Create(in dto.CreateSubCategoryRequest) (*dto.SubCategoryResponse, error) {
	if in.Name == "" || in.CategoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categories.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}
	existing, _ := uc.repo.GetByCategoryAndName(in.CategoryID, in.Name)
	if existing != nil {
		return nil, domain.ErrNameAlreadyExists
	}
	status := in.Status
	if status == "" {
		status = entity.StatusActive
	}
	if !entity.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	sub := &entity.SubCategory{
		ID:           uuid.New().String(),
		CategoryID:   in.CategoryID,
		Name:         in.Name,
		Description:  in.Description,
		Status:       status,
		CreatedAt:    time.Now(),
		CategoryName: category.Name,
	}
	if err := uc.repo.Create(sub); err != nil {
		return nil, err
	}
	return toSubCategoryResponse(sub), nil
}

// GetByID obtiene una subcategoría por ID.
func (uc *SubCategoryUseCase) GetByID(id string) (*dto.SubCategoryResponse, error) {
	sub, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, nil
	}
	return toSubCategoryResponse(sub), nil
}

// List lista subcategorías con filtros categoryId/status/search.
func (uc *SubCategoryUseCase) List(f repository.SubCategoryFilter) (*dto.SubCategoryListResponse, error) {
	list, err := uc.repo.List(f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SubCategoryResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSubCategoryResponse(s))
	}
	return &dto.SubCategoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset},
	}, nil
}

// Update actualiza una subcategoría; permite moverla de categoría validando
// existencia y unicidad del nombre en destino.
func (uc *SubCategoryUseCase) Update(id string, in dto.UpdateSubCategoryRequest) (*dto.SubCategoryResponse, error) {
	sub, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, nil
	}
	if in.CategoryID != nil && *in.CategoryID != sub.CategoryID {
		category, err := uc.categories.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrCategoryNotFound
		}
		sub.CategoryID = *in.CategoryID
		sub.CategoryName = category.Name
	}
	if in.Name != nil && *in.Name != sub.Name {
		existing, _ := uc.repo.GetByCategoryAndName(sub.CategoryID, *in.Name)
		if existing != nil {
			return nil, domain.ErrNameAlreadyExists
		}
		sub.Name = *in.Name
	}
	if in.Description != nil {
		sub.Description = *in.Description
	}
	if in.Status != nil {
		if !entity.ValidStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		sub.Status = *in.Status
	}
	if err := uc.repo.Update(sub); err != nil {
		return nil, err
	}
	return toSubCategoryResponse(sub), nil
}

// Delete elimina una subcategoría. Los productos quedan con referencia NULL
// (no se borran); lo aplica la base de datos.
func (uc *SubCategoryUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toSubCategoryResponse(s *entity.SubCategory) *dto.SubCategoryResponse {
	if s == nil {
		return nil
	}
	return &dto.SubCategoryResponse{
		ID:           s.ID,
		Name:         s.Name,
		CategoryID:   s.CategoryID,
		CategoryName: s.CategoryName,
		Description:  s.Description,
		ProductCount: s.ProductCount,
		Status:       s.Status,
		CreatedAt:    s.CreatedAt,
	}
}
