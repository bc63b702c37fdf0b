package dto

// ErrorResponse respuesta uniforme para errores HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
