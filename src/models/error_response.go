package models

// ErrorResponse estructura estándar para devolver errores
type ErrorResponse struct {
	Status  int    `json:"status"`  // HTTP Status Code
	Message string `json:"message"` // Detalle del error
}

// ValidationError es un error detectado antes de cualquier escritura.
// Los controllers lo traducen en un 400 con el mensaje tal cual.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
