package crm

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

func seedCustomerStore() (*fakeStore, *CustomerUseCase) {
	s := newFakeStore()
	uc := NewCustomerUseCase(&fakeCustomers{s}, &fakeInterests{s}, &fakeTx{s}, 2)
	return s, uc
}

func TestCustomerCreate_DerivaExpiryDate(t *testing.T) {
	_, uc := seedCustomerStore()

	out, err := uc.Create(context.Background(), dto.CreateCustomerRequest{
		Name:             "Ana",
		Phone:            "3001234567",
		Area:             "Norte",
		Address:          "Calle 1",
		InstallationDate: "2024-03-10",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", out.ExpiryDate)
	assert.Equal(t, entity.StatusActive, out.Status)
	assert.True(t, out.Amount.IsZero())
}

// 29-feb + 2 años no bisiestos normaliza a 1-mar.
func TestCustomerCreate_ExpiryDesde29Febrero(t *testing.T) {
	_, uc := seedCustomerStore()

	out, err := uc.Create(context.Background(), dto.CreateCustomerRequest{
		Name:             "Ana",
		Phone:            "300",
		Area:             "Norte",
		Address:          "Calle 1",
		InstallationDate: "2024-02-29",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", out.ExpiryDate)
}

func TestCustomerCreate_ExpiryExplicitoGanaAlDerivado(t *testing.T) {
	_, uc := seedCustomerStore()

	expiry := "2030-01-01"
	out, err := uc.Create(context.Background(), dto.CreateCustomerRequest{
		Name:             "Ana",
		Phone:            "300",
		Area:             "Norte",
		Address:          "Calle 1",
		InstallationDate: "2024-03-10",
		ExpiryDate:       &expiry,
	})
	require.NoError(t, err)
	assert.Equal(t, "2030-01-01", out.ExpiryDate)
}

func TestCustomerCreate_CamposRequeridos(t *testing.T) {
	_, uc := seedCustomerStore()
	_, err := uc.Create(context.Background(), dto.CreateCustomerRequest{
		Name: "Ana", Phone: "300", Area: "Norte", Address: "Calle 1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "installationDate es requerida")
}

func TestCustomerCreate_RedondeaAmount(t *testing.T) {
	_, uc := seedCustomerStore()
	amount := decimal.RequireFromString("1500000.555")
	out, err := uc.Create(context.Background(), dto.CreateCustomerRequest{
		Name:             "Ana",
		Phone:            "300",
		Area:             "Norte",
		Address:          "Calle 1",
		InstallationDate: "2024-03-10",
		Amount:           &amount,
	})
	require.NoError(t, err)
	assert.True(t, out.Amount.Equal(decimal.RequireFromString("1500000.56")))
}

func TestCustomerUpdate_CambiarInstallationRecalculaExpiry(t *testing.T) {
	s, uc := seedCustomerStore()
	s.customers["c1"] = entity.Customer{
		ID: "c1", Name: "Ana", Phone: "300", Area: "Norte", Address: "Calle 1",
		InstallationDate: mustDate(t, "2024-03-10"),
		ExpiryDate:       mustDate(t, "2026-03-10"),
		Status:           entity.StatusActive,
	}

	installation := "2025-01-15"
	out, err := uc.Update(context.Background(), "c1", dto.UpdateCustomerRequest{InstallationDate: &installation})
	require.NoError(t, err)
	assert.Equal(t, "2025-01-15", out.InstallationDate)
	assert.Equal(t, "2027-01-15", out.ExpiryDate, "expiry se recalcula con la garantía por defecto")
}

func TestCustomerUpdate_SoloNotas_NoTocaFechas(t *testing.T) {
	s, uc := seedCustomerStore()
	s.customers["c1"] = entity.Customer{
		ID: "c1", Name: "Ana", Phone: "300", Area: "Norte", Address: "Calle 1",
		InstallationDate: mustDate(t, "2024-03-10"),
		ExpiryDate:       mustDate(t, "2026-03-10"),
		Status:           entity.StatusActive,
	}

	notes := "mantenimiento anual"
	out, err := uc.Update(context.Background(), "c1", dto.UpdateCustomerRequest{Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", out.ExpiryDate)
	assert.Equal(t, "mantenimiento anual", out.Notes)
}

func TestCustomerUpdate_Inexistente_RetornaNil(t *testing.T) {
	_, uc := seedCustomerStore()
	notes := "x"
	out, err := uc.Update(context.Background(), "no-existe", dto.UpdateCustomerRequest{Notes: &notes})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestCustomerList_IncluyeProductosEnlazados(t *testing.T) {
	s, uc := seedCustomerStore()
	s.products["p1"] = activeProduct("p1", "Filtro A")
	s.customers["c1"] = entity.Customer{
		ID: "c1", Name: "Ana", Phone: "300", Area: "Norte", Address: "Calle 1",
		InstallationDate: mustDate(t, "2024-03-10"),
		ExpiryDate:       mustDate(t, "2026-03-10"),
		Status:           entity.StatusActive,
	}
	s.interests = []entity.Interest{{ID: "i1", OwnerKind: entity.OwnerCustomer, OwnerID: "c1", ProductID: "p1", Position: 0}}

	out, err := uc.List(repository.CustomerFilter{Limit: 20})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	require.Len(t, out.Items[0].Products, 1)
	assert.Equal(t, "Filtro A", out.Items[0].Products[0].Name)
}
