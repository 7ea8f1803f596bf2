package crm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

func seedLeadStore() (*fakeStore, *LeadUseCase) {
	s := newFakeStore()
	uc := NewLeadUseCase(&fakeLeads{s}, &fakeInterests{s}, &fakeTx{s}, 2)
	return s, uc
}

func activeProduct(id, name string) entity.Product {
	status := entity.StatusActive
	return entity.Product{ID: id, Name: name, Status: entity.StatusActive, SubCategoryStatus: &status}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestLeadCreate_EnlazaProductosEnOrden(t *testing.T) {
	s, uc := seedLeadStore()
	s.products["p1"] = activeProduct("p1", "Filtro A")
	s.products["p2"] = activeProduct("p2", "Filtro B")

	out, err := uc.Create(context.Background(), dto.CreateLeadRequest{
		Name:       "Ana",
		Phone:      "3001234567",
		Area:       "Norte",
		ProductIDs: []string{"p2", "p1"},
	})
	require.NoError(t, err)
	require.Len(t, out.Products, 2)
	assert.Equal(t, "Filtro B", out.Products[0].Name, "debe conservarse el orden enviado")
	assert.Equal(t, "Filtro A", out.Products[1].Name)
	assert.Equal(t, entity.LeadStatusNew, out.Status)
	assert.Equal(t, entity.PriorityMedium, out.Priority)
}

func TestLeadCreate_ProductoInexistente_NoPersisteNada(t *testing.T) {
	s, uc := seedLeadStore()
	s.products["p1"] = activeProduct("p1", "Filtro A")

	_, err := uc.Create(context.Background(), dto.CreateLeadRequest{
		Name:       "Ana",
		Phone:      "3001234567",
		Area:       "Norte",
		ProductIDs: []string{"p1", "no-existe"},
	})
	require.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Empty(t, s.leads, "el lead no debe quedar persistido")
	assert.Empty(t, s.interests, "no debe quedar ningún enlace")
}

func TestLeadCreate_CamposRequeridos(t *testing.T) {
	_, uc := seedLeadStore()
	_, err := uc.Create(context.Background(), dto.CreateLeadRequest{Name: "Ana"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update — reemplazo de enlaces todo o nada
// ──────────────────────────────────────────────────────────────────────────────

func TestLeadUpdate_ReemplazoDeEnlaces_RevierteSiUnIdFalla(t *testing.T) {
	s, uc := seedLeadStore()
	s.products["p1"] = activeProduct("p1", "Filtro A")
	s.products["p2"] = activeProduct("p2", "Filtro B")
	s.leads["l1"] = entity.Lead{ID: "l1", Name: "Ana", Phone: "300", Area: "Norte", Status: entity.LeadStatusNew, Priority: entity.PriorityMedium}
	s.interests = []entity.Interest{{ID: "i1", OwnerKind: entity.OwnerLead, OwnerID: "l1", ProductID: "p1", Position: 0}}

	ids := []string{"p2", "no-existe"}
	_, err := uc.Update(context.Background(), "l1", dto.UpdateLeadRequest{ProductIDs: &ids})
	require.ErrorIs(t, err, domain.ErrProductNotFound)

	require.Len(t, s.interests, 1, "los enlaces originales deben sobrevivir al rollback")
	assert.Equal(t, "p1", s.interests[0].ProductID)
}

func TestLeadUpdate_SinProductIDs_NoTocaEnlaces(t *testing.T) {
	s, uc := seedLeadStore()
	s.products["p1"] = activeProduct("p1", "Filtro A")
	s.leads["l1"] = entity.Lead{ID: "l1", Name: "Ana", Phone: "300", Area: "Norte", Status: entity.LeadStatusNew, Priority: entity.PriorityMedium}
	s.interests = []entity.Interest{{ID: "i1", OwnerKind: entity.OwnerLead, OwnerID: "l1", ProductID: "p1", Position: 0}}

	notes := "seguimiento"
	out, err := uc.Update(context.Background(), "l1", dto.UpdateLeadRequest{Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, "seguimiento", out.Notes)
	require.Len(t, s.interests, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Convert
// ──────────────────────────────────────────────────────────────────────────────

func TestConvert_CreaClienteYMarcaLeadWon(t *testing.T) {
	s, uc := seedLeadStore()
	s.products["p1"] = activeProduct("p1", "Filtro A")
	s.products["p2"] = activeProduct("p2", "Filtro B")
	s.leads["l1"] = entity.Lead{
		ID: "l1", Name: "Ana", Phone: "3001234567", Email: "ana@x.co",
		Area: "Norte", Address: "Calle 1", SalesRep: "Luis", Notes: "urgente",
		Status: entity.LeadStatusQualified, Priority: entity.PriorityHigh,
	}
	s.interests = []entity.Interest{
		{ID: "i1", OwnerKind: entity.OwnerLead, OwnerID: "l1", ProductID: "p2", Position: 0},
		{ID: "i2", OwnerKind: entity.OwnerLead, OwnerID: "l1", ProductID: "p1", Position: 1},
	}

	out, err := uc.Convert(context.Background(), "l1", dto.ConvertLeadRequest{InstallationDate: "2024-03-10"})
	require.NoError(t, err)

	assert.Equal(t, "Ana", out.Name)
	assert.Equal(t, "3001234567", out.Phone)
	assert.Equal(t, "Calle 1", out.Address)
	assert.Equal(t, "Luis", out.SalesRep)
	assert.Equal(t, entity.StatusActive, out.Status)
	assert.True(t, out.Amount.IsZero(), "el monto inicia en cero")
	assert.Equal(t, "2024-03-10", out.InstallationDate)
	assert.Equal(t, "2026-03-10", out.ExpiryDate, "garantía por defecto de 2 años")

	require.Len(t, out.Products, 2, "los enlaces del lead se copian al cliente")
	assert.Equal(t, "Filtro B", out.Products[0].Name, "se conserva el orden del lead")
	assert.Equal(t, "Filtro A", out.Products[1].Name)

	lead := s.leads["l1"]
	assert.Equal(t, entity.LeadStatusWon, lead.Status, "el lead queda marcado como won")
	require.Len(t, s.customers, 1)
}

func TestConvert_DosVeces_CreaDosClientes(t *testing.T) {
	s, uc := seedLeadStore()
	s.leads["l1"] = entity.Lead{ID: "l1", Name: "Ana", Phone: "300", Area: "Norte", Status: entity.LeadStatusNew, Priority: entity.PriorityMedium}

	_, err := uc.Convert(context.Background(), "l1", dto.ConvertLeadRequest{InstallationDate: "2024-03-10"})
	require.NoError(t, err)
	_, err = uc.Convert(context.Background(), "l1", dto.ConvertLeadRequest{InstallationDate: "2024-04-01"})
	require.NoError(t, err)

	assert.Len(t, s.customers, 2, "la conversión no es idempotente: cada llamada crea un cliente")
}

func TestConvert_LeadInexistente_Retorna404(t *testing.T) {
	_, uc := seedLeadStore()
	_, err := uc.Convert(context.Background(), "no-existe", dto.ConvertLeadRequest{InstallationDate: "2024-03-10"})
	assert.ErrorIs(t, err, domain.ErrLeadNotFound)
}

func TestConvert_FechaInvalida(t *testing.T) {
	s, uc := seedLeadStore()
	s.leads["l1"] = entity.Lead{ID: "l1", Name: "Ana", Phone: "300", Area: "Norte", Status: entity.LeadStatusNew, Priority: entity.PriorityMedium}

	_, err := uc.Convert(context.Background(), "l1", dto.ConvertLeadRequest{InstallationDate: "10/03/2024"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, s.customers)
}

func TestConvert_WarrantyYearsExplicito(t *testing.T) {
	s, uc := seedLeadStore()
	s.leads["l1"] = entity.Lead{ID: "l1", Name: "Ana", Phone: "300", Area: "Norte", Status: entity.LeadStatusNew, Priority: entity.PriorityMedium}

	years := 5
	out, err := uc.Convert(context.Background(), "l1", dto.ConvertLeadRequest{InstallationDate: "2024-03-10", WarrantyYears: &years})
	require.NoError(t, err)
	assert.Equal(t, "2029-03-10", out.ExpiryDate)
}
