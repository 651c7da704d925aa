package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/model"
	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/repository"
)

// TransactionService composes symbol resolution, price lookup and the ledger
// store into transaction-level operations. A transaction is only ever
// persisted complete: identifier resolved, price pinned, id generated.
type TransactionService struct {
	stores        *repository.StoreManager
	symbolService *SymbolService
	priceService  *PriceService
}

// NewTransactionService creates a new TransactionService with the provided dependencies.
func NewTransactionService(
	stores *repository.StoreManager,
	symbolService *SymbolService,
	priceService *PriceService,
) *TransactionService {
	return &TransactionService{
		stores:        stores,
		symbolService: symbolService,
		priceService:  priceService,
	}
}

// AddTransaction records a purchase in the named portfolio, creating the
// portfolio's store on first use.
//
// The raw identifier is resolved to a canonical symbol, the purchase price is
// pinned to the bar closest to the transaction timestamp, and the record is
// persisted with a generated transaction id. Nothing is persisted when any
// step fails.
//
// Errors:
//   - apperrors.ErrInvalidAmount for amount <= 0
//   - apperrors.ErrSymbolNotFound when resolution fails
//   - apperrors.ErrPriceUnavailable when no price data covers the timestamp
//   - apperrors.ErrDuplicateTransactionID on an id collision
func (s *TransactionService) AddTransaction(ctx context.Context, portfolio string, date time.Time, identifier string, amount float64) (*model.Transaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: %f", apperrors.ErrInvalidAmount, amount)
	}

	symbol, err := s.symbolService.Resolve(identifier)
	if err != nil {
		return nil, err
	}

	price, err := s.priceService.PriceAt(symbol, date)
	if err != nil {
		return nil, err
	}

	transaction := &model.Transaction{
		TransactionID: generateTransactionID(symbol, date),
		Date:          date.UTC(),
		Ticker:        symbol,
		Amount:        amount,
		Price:         price,
		CreatedAt:     time.Now().UTC(),
	}

	store, err := s.stores.GetOrCreate(portfolio)
	if err != nil {
		return nil, err
	}

	if err := repository.NewTransactionRepository(store).InsertTransaction(ctx, transaction); err != nil {
		return nil, err
	}

	return transaction, nil
}

// GetTransactions retrieves all transactions of a portfolio enriched with the
// instrument's current price and the gain/loss percentage relative to the
// pinned purchase price. One current-price lookup per transaction; a failing
// lookup aborts the whole listing rather than producing partial results.
//
// A missing portfolio yields an empty list, matching the aggregate
// performance behavior.
func (s *TransactionService) GetTransactions(portfolio string) ([]model.TransactionDetail, error) {
	transactions, err := s.rawTransactions(portfolio)
	if err != nil {
		return nil, err
	}

	details := []model.TransactionDetail{}
	for _, t := range transactions {
		currentPrice, err := s.priceService.CurrentPrice(t.Ticker)
		if err != nil {
			return nil, err
		}

		gainLoss := 0.0
		if t.Price > 0 {
			gainLoss = (currentPrice - t.Price) / t.Price * 100
		}

		details = append(details, model.TransactionDetail{
			Transaction:     t,
			CurrentPrice:    currentPrice,
			GainLossPercent: roundTwo(gainLoss),
		})
	}

	return details, nil
}

// GetTransaction retrieves a single transaction by its transaction id.
func (s *TransactionService) GetTransaction(portfolio, transactionID string) (model.Transaction, error) {
	store, err := s.stores.Get(portfolio)
	if err != nil {
		return model.Transaction{}, err
	}
	return repository.NewTransactionRepository(store).GetTransaction(transactionID)
}

// DeleteTransaction removes a transaction by its transaction id, reporting
// whether a record was found. Deleting an already-deleted id reports false,
// never an error.
func (s *TransactionService) DeleteTransaction(portfolio, transactionID string) (bool, error) {
	store, err := s.stores.Get(portfolio)
	if err != nil {
		return false, err
	}
	return repository.NewTransactionRepository(store).DeleteTransaction(transactionID)
}

// rawTransactions loads the plain ledger rows of a portfolio, treating a
// missing portfolio as empty.
func (s *TransactionService) rawTransactions(portfolio string) ([]model.Transaction, error) {
	store, err := s.stores.Get(portfolio)
	if err != nil {
		if isNotFound(err) {
			return []model.Transaction{}, nil
		}
		return nil, err
	}
	return repository.NewTransactionRepository(store).GetAllTransactions()
}

// generateTransactionID builds the externally visible transaction id in the
// form {SYMBOL}-{YYYYMMDD}-{6 hex chars}. Uniqueness is not formally
// guaranteed here; the store's unique constraint is the backstop.
func generateTransactionID(symbol string, date time.Time) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:6]
	return fmt.Sprintf("%s-%s-%s", symbol, date.UTC().Format("20060102"), suffix)
}
