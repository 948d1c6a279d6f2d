package dto

// DateLayout formato de fechas en la API (columna DATE).
const DateLayout = "2006-01-02"

// ErrorResponse cuerpo de error HTTP. Fields solo en errores de validación.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// MessageResponse confirmación simple para PUT/DELETE/reset.
type MessageResponse struct {
	Message string `json:"message"`
}
