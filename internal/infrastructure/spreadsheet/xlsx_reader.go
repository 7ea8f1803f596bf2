package spreadsheet

import (
	"fmt"
	"io"

	"github.com/tu-usuario/crm-pro/internal/application/importer"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/xuri/excelize/v2"
)

var _ importer.SheetReader = (*XLSXReader)(nil)

// XLSXReader lee archivos xlsx con excelize: devuelve las filas de la primera
// hoja como texto (valores formateados, fechas incluidas).
type XLSXReader struct{}

// NewXLSXReader construye el lector.
func NewXLSXReader() *XLSXReader {
	return &XLSXReader{}
}

// Read abre el archivo y devuelve todas las filas de la primera hoja. Un
// archivo que no es xlsx válido devuelve domain.ErrImportFormat.
func (x *XLSXReader) Read(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImportFormat, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("%w: el archivo no tiene hojas", domain.ErrImportFormat)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImportFormat, err)
	}
	return rows, nil
}
