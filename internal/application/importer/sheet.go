package importer

import "io"

// SheetReader puerto de lectura de archivos tabulares. Devuelve todas las
// filas como texto; la primera es la cabecera. Un archivo corrupto debe
// devolver un error envuelto en domain.ErrImportFormat.
type SheetReader interface {
	Read(r io.Reader) ([][]string, error)
}
