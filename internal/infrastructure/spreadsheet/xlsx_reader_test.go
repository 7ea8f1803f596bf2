package spreadsheet_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/infrastructure/spreadsheet"
	"github.com/xuri/excelize/v2"
)

func buildXLSX(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestXLSXReader_DevuelveCabeceraYFilas(t *testing.T) {
	buf := buildXLSX(t, [][]any{
		{"name", "phone", "area"},
		{"Ana", "3001234567", "Norte"},
		{"Luz", "3007654321", "Sur"},
	})

	rows, err := spreadsheet.NewXLSXReader().Read(buf)
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"name", "phone", "area"}, rows[0])
	assert.Equal(t, "Ana", rows[1][0])
	assert.Equal(t, "Sur", rows[2][2])
}

func TestXLSXReader_ArchivoCorrupto_ErrorDeFormato(t *testing.T) {
	_, err := spreadsheet.NewXLSXReader().Read(strings.NewReader("esto no es un xlsx"))
	assert.ErrorIs(t, err, domain.ErrImportFormat)
}

func TestXLSXReader_ArchivoVacio_SinFilas(t *testing.T) {
	buf := buildXLSX(t, nil)
	rows, err := spreadsheet.NewXLSXReader().Read(buf)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
