package types

// SuccessEnvelope wraps every non-list success response.
type SuccessEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// ListEnvelope wraps paginated collection responses.
type ListEnvelope struct {
	Success     bool  `json:"success"`
	Count       int64 `json:"count"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	Data        any   `json:"data"`
}

// FieldError is one field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorEnvelope wraps every failure response. Errors is populated only for
// validation failures.
type ErrorEnvelope struct {
	Success bool         `json:"success"`
	Code    string       `json:"code,omitempty"`
	Error   string       `json:"error"`
	Errors  []FieldError `json:"errors,omitempty"`
}
