package dps

import "errors"

// Failure kinds. Every *ValidationError returned by this package wraps one of
// them, so callers can branch with errors.Is.
var (
	ErrInvalidServiceCode          = errors.New("invalid service code")
	ErrUnresolvedLocality          = errors.New("unresolved locality")
	ErrInvalidProviderRegistration = errors.New("invalid provider registration")
	ErrInvalidMonetaryValue        = errors.New("invalid monetary value")
	ErrMissingOperationNature      = errors.New("missing operation nature")
	ErrMissingCounterpartDocument  = errors.New("missing counterpart document")
	ErrInvalidCounterpartDocument  = errors.New("invalid counterpart document")
	ErrInvalidCompetenceDate       = errors.New("invalid competence date")
)

var errorCodes = map[error]string{
	ErrInvalidServiceCode:          "INVALID_SERVICE_CODE",
	ErrUnresolvedLocality:          "UNRESOLVED_LOCALITY",
	ErrInvalidProviderRegistration: "INVALID_PROVIDER_REGISTRATION",
	ErrInvalidMonetaryValue:        "INVALID_MONETARY_VALUE",
	ErrMissingOperationNature:      "MISSING_OPERATION_NATURE",
	ErrMissingCounterpartDocument:  "MISSING_COUNTERPART_DOCUMENT",
	ErrInvalidCounterpartDocument:  "INVALID_COUNTERPART_DOCUMENT",
	ErrInvalidCompetenceDate:       "INVALID_COMPETENCE_DATE",
}

// ValidationError is a user-facing rejection of the submitted invoice data.
type ValidationError struct {
	Kind    error
	Field   string
	Message string
}

func newValidationError(kind error, field, message string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// Code returns a stable identifier for the failure kind
func (e *ValidationError) Code() string {
	if code, ok := errorCodes[e.Kind]; ok {
		return code
	}
	return "VALIDATION_ERROR"
}
