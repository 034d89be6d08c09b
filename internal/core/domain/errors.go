package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrCatalogUnavailable = errors.New("courier catalog unavailable")
var ErrInvalidQuoteRequest = errors.New("invalid quote request")
var ErrValidationFailed = errors.New("validation failed")

// FieldViolation is a single rule broken by a shipment submission.
// Field is a JSON path such as "items[0].productUrl".
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violation found in a submission.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Field+": "+v.Message)
	}
	return fmt.Sprintf("%s: %s", ErrValidationFailed, strings.Join(msgs, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrValidationFailed }
