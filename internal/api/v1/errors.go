package v1

// Error type discriminators carried in every error body.
const (
	TypeValidationError = "validation_error"
	TypeNotFound        = "not_found"
	TypeEmptyUpdate     = "empty_update"
	TypeInvalidJSON     = "invalid_json"
	TypeRepositoryError = "repository_error"
	TypeInternal        = "internal_error"
)

// ErrorResponse is the error body for single-message failures.
type ErrorResponse struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// FieldError is one entry of a validation failure list.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse is the error body for per-field validation
// failures. Type is always TypeValidationError.
type ValidationErrorResponse struct {
	Type   string       `json:"type"`
	Errors []FieldError `json:"errors"`
}
