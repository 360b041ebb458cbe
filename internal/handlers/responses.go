package handlers

// ErrorResponse is the standard format for API error responses.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes returned by the render API.
const (
	CodeInvalidDocument = "invalid_document"
	CodeInvalidSlot     = "invalid_slot"
)

// HealthResponse is returned by the health check.
type HealthResponse struct {
	Status  string `json:"status"`
	Stories int    `json:"stories"`
}
