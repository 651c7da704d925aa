package validation

import (
	"regexp"
	"strings"
)

// portfolioNamePattern restricts portfolio names to characters that map
// safely onto a store file name.
var portfolioNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ._-]*$`)

// ValidatePortfolioName checks that a portfolio name is present, within
// length limits, and filesystem safe.
func ValidatePortfolioName(name string) error {
	errors := make(map[string]string)

	trimmed := strings.TrimSpace(name)
	switch {
	case trimmed == "":
		errors["name"] = "name is required"
	case len(trimmed) > 100:
		errors["name"] = "name must be 100 characters or less"
	case trimmed != name:
		errors["name"] = "name must not have leading or trailing whitespace"
	case !portfolioNamePattern.MatchString(name):
		errors["name"] = "name may only contain letters, digits, spaces, dots, underscores and hyphens"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
