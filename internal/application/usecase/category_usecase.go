package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías del catálogo.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría. El nombre es único global.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByName(in.Name)
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
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Status:      status,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return toCategoryResponse(category), nil
}

// List lista categorías con filtros status/search.
func (uc *CategoryUseCase) List(f repository.CategoryFilter) (*dto.CategoryListResponse, error) {
	list, err := uc.repo.List(f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset},
	}, nil
}

// Update actualiza una categoría.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	if in.Name != nil && *in.Name != category.Name {
		existing, _ := uc.repo.GetByName(*in.Name)
		if existing != nil {
			return nil, domain.ErrNameAlreadyExists
		}
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if in.Status != nil {
		if !entity.ValidStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		category.Status = *in.Status
	}
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete elimina una categoría. La cascada (subcategorías y sus productos) la
// aplica la base de datos.
func (uc *CategoryUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:                 c.ID,
		Name:               c.Name,
		Description:        c.Description,
		SubCategoriesCount: c.SubCategoriesCount,
		Status:             c.Status,
		CreatedAt:          c.CreatedAt,
	}
}
