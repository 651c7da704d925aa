package service

import (
	"fmt"
	"strings"

	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/yahoo"
)

// SymbolService maps user-supplied identifiers (ticker symbols or alternate
// identifiers such as ISINs) to the canonical tradable symbol recognized by
// the market data provider.
type SymbolService struct {
	yahooClient yahoo.Client
}

// NewSymbolService creates a new SymbolService with the provided market data client.
func NewSymbolService(yahooClient yahoo.Client) *SymbolService {
	return &SymbolService{yahooClient: yahooClient}
}

// Resolve resolves a free-form identifier to a canonical symbol.
//
// Resolution order:
//  1. Treat the input as a ticker and query the chart endpoint directly;
//     if the response carries a symbol in its metadata, use it.
//  2. Fall back to the symbol search endpoint and take the first match.
//
// Returns apperrors.ErrSymbolNotFound when neither path yields a symbol.
// Read-only against the provider; no state is touched.
func (s *SymbolService) Resolve(identifier string) (string, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return "", fmt.Errorf("%w: empty identifier", apperrors.ErrSymbolNotFound)
	}

	if symbol, ok := s.resolveDirect(identifier); ok {
		return symbol, nil
	}

	symbol, err := s.resolveBySearch(identifier)
	if err != nil {
		return "", err
	}

	return symbol, nil
}

// resolveDirect treats the identifier as a ticker and reads the canonical
// symbol from the chart metadata. A provider error here is not fatal; it
// just means the identifier is not a known ticker.
func (s *SymbolService) resolveDirect(identifier string) (string, bool) {
	raw, err := s.yahooClient.QueryFiveDaySymbol(identifier)
	if err != nil {
		return "", false
	}
	if len(raw.Chart.Result) == 0 {
		return "", false
	}

	symbol := raw.Chart.Result[0].Meta.Symbol
	if symbol == "" {
		return "", false
	}
	return symbol, true
}

// resolveBySearch runs a free-text search and takes the first returned match.
func (s *SymbolService) resolveBySearch(identifier string) (string, error) {
	result, err := s.yahooClient.QuerySymbolSearch(identifier)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", apperrors.ErrSymbolNotFound, identifier, err)
	}

	for _, quote := range result.Quotes {
		if quote.Symbol != "" {
			return quote.Symbol, nil
		}
	}

	return "", fmt.Errorf("%w: %s", apperrors.ErrSymbolNotFound, identifier)
}
