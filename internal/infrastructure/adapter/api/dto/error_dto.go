package dto

// ErrorResponse is the standard error payload returned by all endpoints.
type ErrorResponse struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}
