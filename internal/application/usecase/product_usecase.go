package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos del catálogo.
type ProductUseCase struct {
	repo repository.ProductRepository
	subs repository.SubCategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, subs repository.SubCategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, subs: subs}
}

// Create crea un producto. La subcategoría debe existir y estar activa.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.SubCategoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	sub, err := uc.checkSubCategory(in.SubCategoryID)
	if err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entity.StatusActive
	}
	if !entity.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	subID := in.SubCategoryID
	product := &entity.Product{
		ID:                uuid.New().String(),
		SubCategoryID:     &subID,
		Name:              in.Name,
		Capacity:          in.Capacity,
		Price:             in.Price.Round(2),
		Specifications:    in.Specifications,
		Status:            status,
		CreatedAt:         time.Now(),
		SubCategoryName:   &sub.Name,
		SubCategoryStatus: &sub.Status,
		CategoryName:      &sub.CategoryName,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID, con nombres de catálogo resueltos.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista productos con filtros status/categoryId/subCategoryId/search.
func (uc *ProductUseCase) List(f repository.ProductFilter) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset},
	}, nil
}

// Update actualiza un producto. Cambiar de subcategoría exige que la nueva
// exista y esté activa.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.SubCategoryID != nil {
		sub, err := uc.checkSubCategory(*in.SubCategoryID)
		if err != nil {
			return nil, err
		}
		product.SubCategoryID = in.SubCategoryID
		product.SubCategoryName = &sub.Name
		product.SubCategoryStatus = &sub.Status
		product.CategoryName = &sub.CategoryName
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Capacity != nil {
		product.Capacity = *in.Capacity
	}
	if in.Price != nil {
		product.Price = in.Price.Round(2)
	}
	if in.Specifications != nil {
		product.Specifications = *in.Specifications
	}
	if in.Status != nil {
		if !entity.ValidStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		product.Status = *in.Status
	}
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID. Las filas de interés se borran en cascada.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func (uc *ProductUseCase) checkSubCategory(id string) (*entity.SubCategory, error) {
	sub, err := uc.subs.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrSubCategoryNotFound
	}
	if sub.Status != entity.StatusActive {
		return nil, domain.ErrSubCategoryInactive
	}
	return sub, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
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
	}
}
