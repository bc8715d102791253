package models

// ValidationError describes input that cannot be accepted as a return request
// or as an update to one.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrInvalidStatus      = &ValidationError{Field: "status", Message: "Invalid status"}
	ErrEmptyUpdate        = &ValidationError{Message: "Nothing to update"}
	ErrInvalidPalletCount = &ValidationError{Field: "palletCount", Message: "palletCount must be at least 1"}
	ErrInvalidReturnDate  = &ValidationError{Field: "returnDate", Message: "returnDate must be a date (YYYY-MM-DD) or an RFC 3339 timestamp"}
	ErrMissingCustomer    = &ValidationError{Field: "customerName", Message: "customerName is required"}
)
