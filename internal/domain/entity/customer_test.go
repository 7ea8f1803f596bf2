package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExpiryDate_SumaAniosCalendario(t *testing.T) {
	installation := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), ExpiryDate(installation, 2))
	assert.Equal(t, time.Date(2029, 3, 10, 0, 0, 0, 0, time.UTC), ExpiryDate(installation, 5))
}

func TestExpiryDate_CeroAnios_EsLaMismaFecha(t *testing.T) {
	installation := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, installation, ExpiryDate(installation, 0))
}

// 29 de febrero + años que caen en año no bisiesto: AddDate normaliza a 1 de marzo.
func TestExpiryDate_29Febrero_NormalizaA1Marzo(t *testing.T) {
	installation := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), ExpiryDate(installation, 1))
	// 2028 sí es bisiesto: la fecha se conserva.
	assert.Equal(t, time.Date(2028, 2, 29, 0, 0, 0, 0, time.UTC), ExpiryDate(installation, 4))
}
