package auth

import "errors"

var (
	// ErrInvalidCredentials is the single failure value for every login
	// failure path. Unknown email, missing password hash and wrong
	// password are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers signature, audience and expiry failures of
	// a federated ID token.
	ErrInvalidToken = errors.New("invalid token")
)

// FieldError is a single per-field validation violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError rejects a request before business logic runs. It
// carries either an ordered list of field violations (rules engine) or
// a single message (service-layer checks).
type ValidationError struct {
	Message string
	Fields  []FieldError
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "validation failed"
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
