package dto

// ErrorResponse is the HTTP error body. One flat message per failure;
// there is no structured error taxonomy beyond the code.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
