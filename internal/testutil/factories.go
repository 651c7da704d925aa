package testutil

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/model"
	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/repository"
)

// MakeTransactionID builds a transaction id in the production format
// {SYMBOL}-{YYYYMMDD}-{6 hex chars} with a random suffix.
func MakeTransactionID(ticker string, date time.Time) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:6]
	return fmt.Sprintf("%s-%s-%s", ticker, date.UTC().Format("20060102"), suffix)
}

// TransactionBuilder provides a fluent interface for creating test transactions.
//
// Example usage:
//
//	// Simple creation with defaults
//	tx := testutil.NewTransaction().Build(t, store)
//
//	// Customized transaction
//	tx := testutil.NewTransaction().
//	    WithTicker("MSFT").
//	    WithAmount(500).
//	    WithPrice(250).
//	    Build(t, store)
type TransactionBuilder struct {
	TransactionID string
	Date          time.Time
	Ticker        string
	Amount        float64
	Price         float64
}

// NewTransaction creates a TransactionBuilder with sensible defaults.
func NewTransaction() *TransactionBuilder {
	date := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	return &TransactionBuilder{
		TransactionID: MakeTransactionID("AAPL", date),
		Date:          date,
		Ticker:        "AAPL",
		Amount:        1000,
		Price:         100,
	}
}

// WithTransactionID sets a custom transaction id.
func (b *TransactionBuilder) WithTransactionID(id string) *TransactionBuilder {
	b.TransactionID = id
	return b
}

// WithDate sets a custom purchase timestamp.
func (b *TransactionBuilder) WithDate(date time.Time) *TransactionBuilder {
	b.Date = date
	return b
}

// WithTicker sets a custom ticker and regenerates the transaction id to match.
func (b *TransactionBuilder) WithTicker(ticker string) *TransactionBuilder {
	b.Ticker = ticker
	b.TransactionID = MakeTransactionID(ticker, b.Date)
	return b
}

// WithAmount sets a custom invested amount.
func (b *TransactionBuilder) WithAmount(amount float64) *TransactionBuilder {
	b.Amount = amount
	return b
}

// WithPrice sets a custom pinned purchase price.
func (b *TransactionBuilder) WithPrice(price float64) *TransactionBuilder {
	b.Price = price
	return b
}

// Transaction returns the built record without persisting it.
func (b *TransactionBuilder) Transaction() *model.Transaction {
	return &model.Transaction{
		TransactionID: b.TransactionID,
		Date:          b.Date,
		Ticker:        b.Ticker,
		Amount:        b.Amount,
		Price:         b.Price,
	}
}

// Build inserts the transaction into the given store and returns the
// persisted record.
func (b *TransactionBuilder) Build(t *testing.T, store *repository.Store) model.Transaction {
	t.Helper()

	transaction := model.Transaction{
		TransactionID: b.TransactionID,
		Date:          b.Date,
		Ticker:        b.Ticker,
		Amount:        b.Amount,
		Price:         b.Price,
	}

	repo := repository.NewTransactionRepository(store)
	if err := repo.InsertTransaction(context.Background(), &transaction); err != nil {
		t.Fatalf("Failed to insert test transaction: %v", err)
	}

	return transaction
}
