// Package apperrors defines the sentinel errors shared across the service.
// Handlers match these with errors.Is to pick response codes; services wrap
// them with fmt.Errorf("%w") to add context.
package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrPortfolioNotFound indicates that a portfolio with the given name does not exist.
	ErrPortfolioNotFound = errors.New("portfolio not found")

	// ErrTransactionNotFound indicates that a transaction with the given ID does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrSymbolNotFound indicates that an identifier could not be resolved to a
	// tradable symbol, neither as a direct ticker nor through symbol search.
	ErrSymbolNotFound = errors.New("symbol not found")

	// ErrPriceUnavailable indicates that the market data provider returned no
	// price data for the requested symbol and time window.
	ErrPriceUnavailable = errors.New("price data not available")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidAmount indicates that the invested amount is zero or negative.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidPortfolioName indicates that a portfolio name is empty or contains
	// characters that cannot be mapped to a store file.
	ErrInvalidPortfolioName = errors.New("invalid portfolio name")

	// ErrPortfolioExists indicates that a portfolio with the same name already exists.
	ErrPortfolioExists = errors.New("portfolio already exists")

	// ErrDuplicateTransactionID indicates a transaction_id collision on insert.
	// Practically unreachable with random suffixes, but never silently overwritten.
	ErrDuplicateTransactionID = errors.New("duplicate transaction id")
)

// Store errors represent failures of the underlying persistence layer.
var (
	// ErrStoreUnavailable indicates that the portfolio store has been torn down
	// or is otherwise inaccessible. Operations on a torn-down handle always
	// fail with this error rather than silently no-opping.
	ErrStoreUnavailable = errors.New("portfolio store unavailable")
)

// Generic operation failure constants used by handlers for 500 responses.
var (
	ErrFailedToRetrieveTransactions = errors.New("failed to retrieve transactions")
	ErrFailedToRetrieveTransaction  = errors.New("failed to retrieve transaction")
	ErrFailedToRetrievePortfolios   = errors.New("failed to retrieve portfolios")
	ErrFailedToComputePerformance   = errors.New("failed to compute performance")
	ErrFailedToRetrieveHistory      = errors.New("failed to retrieve performance history")
)
