package dto

// ImportRowError error de una fila del archivo importado. Row es 1-based
// contando la cabecera como fila 1 (las filas de datos empiezan en 2).
type ImportRowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// ImportResponse resultado de una importación masiva. Las filas fallidas no
// abortan el lote: Errors conserva el orden en que se encontraron.
type ImportResponse struct {
	Success  bool             `json:"success"`
	Imported int              `json:"imported"`
	Failed   int              `json:"failed"`
	Errors   []ImportRowError `json:"errors"`
}
