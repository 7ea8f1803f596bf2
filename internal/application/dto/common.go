package dto

// ErrorResponse cuerpo de error HTTP. Toda falla se normaliza a una sola clave
// {"error": "..."}; los errores de validación por campo colapsan a su primer mensaje.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse respuesta simple de éxito.
type MessageResponse struct {
	Message string `json:"message"`
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
