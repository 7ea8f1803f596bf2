package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

type stubProducts struct {
	byID   map[string]*entity.Product
	byName map[string]*entity.Product
	saved  []*entity.Product
}

func (r *stubProducts) Create(p *entity.Product) error {
	r.saved = append(r.saved, p)
	return nil
}
func (r *stubProducts) GetByID(id string) (*entity.Product, error)     { return r.byID[id], nil }
func (r *stubProducts) GetByName(name string) (*entity.Product, error) { return r.byName[name], nil }
func (r *stubProducts) List(repository.ProductFilter) ([]*entity.Product, error) {
	return nil, nil
}
func (r *stubProducts) Update(p *entity.Product) error { return nil }
func (r *stubProducts) Delete(string) error            { return nil }

type stubSubCategories struct {
	byID map[string]*entity.SubCategory
}

func (r *stubSubCategories) Create(*entity.SubCategory) error { return nil }
func (r *stubSubCategories) GetByID(id string) (*entity.SubCategory, error) {
	return r.byID[id], nil
}
func (r *stubSubCategories) GetByCategoryAndName(string, string) (*entity.SubCategory, error) {
	return nil, nil
}
func (r *stubSubCategories) List(repository.SubCategoryFilter) ([]*entity.SubCategory, error) {
	return nil, nil
}
func (r *stubSubCategories) Update(*entity.SubCategory) error { return nil }
func (r *stubSubCategories) Delete(string) error              { return nil }

func newProductUC(subs map[string]*entity.SubCategory) (*stubProducts, *ProductUseCase) {
	products := &stubProducts{byID: map[string]*entity.Product{}, byName: map[string]*entity.Product{}}
	return products, NewProductUseCase(products, &stubSubCategories{byID: subs})
}

func TestProductCreate_ResuelveJerarquia(t *testing.T) {
	products, uc := newProductUC(map[string]*entity.SubCategory{
		"s1": {ID: "s1", Name: "Ósmosis", CategoryName: "Purificadores", Status: entity.StatusActive},
	})

	out, err := uc.Create(dto.CreateProductRequest{
		Name:          "Filtro A",
		SubCategoryID: "s1",
		Price:         decimal.RequireFromString("1250000.999"),
	})
	require.NoError(t, err)
	require.NotNil(t, out.SubCategory)
	assert.Equal(t, "Ósmosis", *out.SubCategory)
	require.NotNil(t, out.Category)
	assert.Equal(t, "Purificadores", *out.Category)
	assert.Equal(t, "1250001", out.Price.String(), "el precio se redondea a 2 decimales")
	require.Len(t, products.saved, 1)
}

func TestProductCreate_SubCategoriaInexistente(t *testing.T) {
	_, uc := newProductUC(map[string]*entity.SubCategory{})
	_, err := uc.Create(dto.CreateProductRequest{Name: "Filtro A", SubCategoryID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrSubCategoryNotFound)
}

func TestProductCreate_SubCategoriaInactiva(t *testing.T) {
	_, uc := newProductUC(map[string]*entity.SubCategory{
		"s1": {ID: "s1", Name: "Ósmosis", Status: entity.StatusInactive},
	})
	_, err := uc.Create(dto.CreateProductRequest{Name: "Filtro A", SubCategoryID: "s1"})
	assert.ErrorIs(t, err, domain.ErrSubCategoryInactive)
}

func TestProductUpdate_MoverASubCategoriaInactivaFalla(t *testing.T) {
	products, uc := newProductUC(map[string]*entity.SubCategory{
		"s2": {ID: "s2", Name: "Ablandadores", Status: entity.StatusInactive},
	})
	subID := "s1"
	products.byID["p1"] = &entity.Product{ID: "p1", Name: "Filtro A", SubCategoryID: &subID, Status: entity.StatusActive}

	newSub := "s2"
	_, err := uc.Update("p1", dto.UpdateProductRequest{SubCategoryID: &newSub})
	assert.ErrorIs(t, err, domain.ErrSubCategoryInactive)
}

func TestProductUpdate_Inexistente_RetornaNil(t *testing.T) {
	_, uc := newProductUC(nil)
	name := "x"
	out, err := uc.Update("no-existe", dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, out)
}
