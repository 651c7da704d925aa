package validation

import (
	"strings"

	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/api/request"
)

// ValidateCreateTransaction validates a transaction creation request.
// Checks all required fields and validates their formats and constraints.
//
// Required fields:
//   - date: Must parse as a naive timestamp (date with optional time)
//   - identifier: Ticker symbol or ISIN, must be non-empty
//   - amount: Must be positive
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateTransaction(req request.CreateTransactionRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Date) == "" {
		errors["date"] = "date is required"
	} else if _, err := ParseTimestamp(req.Date); err != nil {
		errors["date"] = err.Error()
	}

	if strings.TrimSpace(req.Identifier) == "" {
		errors["identifier"] = "identifier is required"
	}

	if req.Amount <= 0.0 {
		errors["amount"] = "amount must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
