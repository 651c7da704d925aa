package service

import (
	"errors"
	"math"

	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/apperrors"
)

// RoundingPrecision is the multiplier used when rounding monetary values
// for API responses (100 = two decimal places).
const RoundingPrecision = 100

// roundTwo rounds a float64 value to two decimal places. Used throughout the
// service layer so monetary values and percentages render consistently in
// API responses. The stored ledger values are never rounded.
func roundTwo(value float64) float64 {
	return math.Round(value*RoundingPrecision) / RoundingPrecision
}

// isNotFound reports whether an error is the missing-portfolio sentinel.
func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrPortfolioNotFound)
}
