package importer

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// fakeSheet devuelve filas fijas o un error de formato.
type fakeSheet struct {
	rows [][]string
	err  error
}

func (f *fakeSheet) Read(io.Reader) ([][]string, error) {
	return f.rows, f.err
}

// memStore estado en memoria mínimo para la importación.
type memStore struct {
	leads     []*entity.Lead
	customers []*entity.Customer
	products  map[string]*entity.Product // por nombre
	interests []*entity.Interest
}

type memTx struct{ s *memStore }

func (t *memTx) Run(_ context.Context, fn func(
	leads repository.LeadRepository,
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	interests repository.InterestRepository,
) error) error {
	nLeads, nCustomers, nInterests := len(t.s.leads), len(t.s.customers), len(t.s.interests)
	err := fn(&memLeads{t.s}, &memCustomers{t.s}, &memProducts{t.s}, &memInterests{t.s})
	if err != nil {
		// rollback: las filas agregadas por esta transacción se descartan
		t.s.leads = t.s.leads[:nLeads]
		t.s.customers = t.s.customers[:nCustomers]
		t.s.interests = t.s.interests[:nInterests]
	}
	return err
}

type memLeads struct{ s *memStore }

func (r *memLeads) Create(lead *entity.Lead) error { r.s.leads = append(r.s.leads, lead); return nil }
func (r *memLeads) GetByID(string) (*entity.Lead, error)              { return nil, nil }
func (r *memLeads) List(repository.LeadFilter) ([]*entity.Lead, error) { return r.s.leads, nil }
func (r *memLeads) Update(*entity.Lead) error                          { return nil }
func (r *memLeads) Delete(string) error                                { return nil }

type memCustomers struct{ s *memStore }

func (r *memCustomers) Create(c *entity.Customer) error {
	r.s.customers = append(r.s.customers, c)
	return nil
}
func (r *memCustomers) GetByID(string) (*entity.Customer, error) { return nil, nil }
func (r *memCustomers) List(repository.CustomerFilter) ([]*entity.Customer, error) {
	return r.s.customers, nil
}
func (r *memCustomers) Update(*entity.Customer) error { return nil }
func (r *memCustomers) Delete(string) error           { return nil }

type memProducts struct{ s *memStore }

func (r *memProducts) Create(*entity.Product) error { return nil }
func (r *memProducts) GetByID(string) (*entity.Product, error) { return nil, nil }
func (r *memProducts) GetByName(name string) (*entity.Product, error) {
	return r.s.products[name], nil
}
func (r *memProducts) List(repository.ProductFilter) ([]*entity.Product, error) { return nil, nil }
func (r *memProducts) Update(*entity.Product) error                             { return nil }
func (r *memProducts) Delete(string) error                                      { return nil }

type memInterests struct{ s *memStore }

func (r *memInterests) DeleteByOwner(entity.OwnerKind, string) error { return nil }
func (r *memInterests) Insert(i *entity.Interest) error {
	r.s.interests = append(r.s.interests, i)
	return nil
}
func (r *memInterests) ListProductsByOwner(entity.OwnerKind, string) ([]*entity.Product, error) {
	return nil, nil
}

func newImportUC(rows [][]string, products ...string) (*memStore, *ImportUseCase) {
	s := &memStore{products: map[string]*entity.Product{}}
	for i, name := range products {
		s.products[name] = &entity.Product{ID: fmt.Sprintf("p%d", i+1), Name: name, Status: entity.StatusActive}
	}
	uc := NewImportUseCase(&memTx{s}, &fakeSheet{rows: rows}, 2)
	return s, uc
}

// ──────────────────────────────────────────────────────────────────────────────
// Leads
// ──────────────────────────────────────────────────────────────────────────────

func TestImportLeads_FilaMalaNoAbortaElLote(t *testing.T) {
	rows := [][]string{
		{"name", "phone", "area", "products"},
		{"Ana", "300111", "Norte", "Filtro A"},
		{"", "300222", "Sur", ""}, // fila 3: sin name
		{"Luz", "300333", "Centro", ""},
		{"Paco", "300444", "Sur", "Filtro A,Filtro B"},
	}
	s, uc := newImportUC(rows, "Filtro A", "Filtro B")

	out, err := uc.Import(context.Background(), entity.OwnerLead, strings.NewReader(""))
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Equal(t, 3, out.Imported)
	assert.Equal(t, 1, out.Failed)
	require.Len(t, out.Errors, 1)
	assert.Equal(t, 3, out.Errors[0].Row, "la cabecera cuenta como fila 1")
	assert.Contains(t, out.Errors[0].Error, "name")

	assert.Len(t, s.leads, 3, "las filas buenas quedan persistidas")
	assert.Len(t, s.interests, 3, "un enlace para Ana y dos para Paco")
}

func TestImportLeads_ProductoDesconocidoFallaLaFila(t *testing.T) {
	rows := [][]string{
		{"name", "phone", "area", "products"},
		{"Ana", "300111", "Norte", "No Existe"},
		{"Luz", "300222", "Sur", "Filtro A"},
	}
	s, uc := newImportUC(rows, "Filtro A")

	out, err := uc.Import(context.Background(), entity.OwnerLead, strings.NewReader(""))
	require.NoError(t, err)

	assert.Equal(t, 1, out.Imported)
	assert.Equal(t, 1, out.Failed)
	require.Len(t, out.Errors, 1)
	assert.Equal(t, 2, out.Errors[0].Row)
	assert.Contains(t, out.Errors[0].Error, "No Existe")
	assert.Len(t, s.leads, 1, "la fila con producto desconocido no persiste su lead")
}

func TestImportLeads_DefaultsDeEstadoYPrioridad(t *testing.T) {
	rows := [][]string{
		{"name", "phone", "area", "status", "priority"},
		{"Ana", "300111", "Norte", "", ""},
	}
	s, uc := newImportUC(rows)

	out, err := uc.Import(context.Background(), entity.OwnerLead, strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, 1, out.Imported)
	assert.Equal(t, entity.LeadStatusNew, s.leads[0].Status)
	assert.Equal(t, entity.PriorityMedium, s.leads[0].Priority)
}

// ──────────────────────────────────────────────────────────────────────────────
// Customers
// ──────────────────────────────────────────────────────────────────────────────

func TestImportCustomers_DerivaExpiryYParseaFechas(t *testing.T) {
	rows := [][]string{
		{"name", "phone", "area", "address", "installationDate", "warrantyYears", "amount"},
		{"Ana", "300111", "Norte", "Calle 1", "2024-03-10", "", "1500000.50"},
		{"Luz", "300222", "Sur", "Calle 2", "01-15-24", "5", ""}, // formato de celda xlsx
	}
	s, uc := newImportUC(rows)

	out, err := uc.Import(context.Background(), entity.OwnerCustomer, strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, 2, out.Imported, "errores: %v", out.Errors)

	assert.Equal(t, "2026-03-10", s.customers[0].ExpiryDate.Format("2006-01-02"))
	assert.Equal(t, "1500000.5", s.customers[0].Amount.String())
	assert.Equal(t, "2029-01-15", s.customers[1].ExpiryDate.Format("2006-01-02"))
}

func TestImportCustomers_FechaInvalidaFallaLaFila(t *testing.T) {
	rows := [][]string{
		{"name", "phone", "area", "address", "installationDate"},
		{"Ana", "300111", "Norte", "Calle 1", "hace un mes"},
	}
	s, uc := newImportUC(rows)

	out, err := uc.Import(context.Background(), entity.OwnerCustomer, strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 1, out.Failed)
	assert.Empty(t, s.customers)
}

// ──────────────────────────────────────────────────────────────────────────────
// Formato del archivo
// ──────────────────────────────────────────────────────────────────────────────

func TestImport_ArchivoIlegible_NoProcesaNada(t *testing.T) {
	s := &memStore{products: map[string]*entity.Product{}}
	uc := NewImportUseCase(&memTx{s}, &fakeSheet{err: fmt.Errorf("%w: archivo corrupto", domain.ErrImportFormat)}, 2)

	_, err := uc.Import(context.Background(), entity.OwnerLead, strings.NewReader(""))
	require.ErrorIs(t, err, domain.ErrImportFormat)
	assert.Empty(t, s.leads)
}

func TestImport_SinCabecera_EsErrorDeFormato(t *testing.T) {
	_, uc := newImportUC(nil)
	_, err := uc.Import(context.Background(), entity.OwnerLead, strings.NewReader(""))
	assert.ErrorIs(t, err, domain.ErrImportFormat)
}

func TestImport_FilaCorta_CompletaConVacios(t *testing.T) {
	rows := [][]string{
		{"name", "phone", "area", "notes"},
		{"Ana", "300111", "Norte"}, // sin columna notes
	}
	s, uc := newImportUC(rows)

	out, err := uc.Import(context.Background(), entity.OwnerLead, strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 1, out.Imported)
	assert.Equal(t, "", s.leads[0].Notes)
}
