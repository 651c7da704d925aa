package service

import (
	"fmt"

	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/model"
	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/repository"
)

// PortfolioService handles portfolio-level operations: lifecycle of the
// per-portfolio stores and the aggregate performance computation.
type PortfolioService struct {
	stores       *repository.StoreManager
	priceService *PriceService
}

// NewPortfolioService creates a new PortfolioService with the provided dependencies.
func NewPortfolioService(
	stores *repository.StoreManager,
	priceService *PriceService,
) *PortfolioService {
	return &PortfolioService{
		stores:       stores,
		priceService: priceService,
	}
}

// CreatePortfolio creates an empty portfolio store for the given name.
// Returns apperrors.ErrPortfolioExists when the name is already taken.
func (s *PortfolioService) CreatePortfolio(name string) (model.Portfolio, error) {
	if s.stores.Exists(name) {
		return model.Portfolio{}, fmt.Errorf("%w: %s", apperrors.ErrPortfolioExists, name)
	}

	if _, err := s.stores.GetOrCreate(name); err != nil {
		return model.Portfolio{}, err
	}

	return model.Portfolio{Name: name}, nil
}

// GetAllPortfolios returns all known portfolios, sorted by name.
func (s *PortfolioService) GetAllPortfolios() ([]model.Portfolio, error) {
	names, err := s.stores.List()
	if err != nil {
		return nil, err
	}

	portfolios := []model.Portfolio{}
	for _, name := range names {
		portfolios = append(portfolios, model.Portfolio{Name: name})
	}
	return portfolios, nil
}

// DeletePortfolio tears down the named portfolio's store and removes its
// persisted data. Best effort: reports whether a portfolio was found, and
// stays safe to call after partially failed operations.
func (s *PortfolioService) DeletePortfolio(name string) (bool, error) {
	return s.stores.Remove(name)
}

// ComputePerformance aggregates a portfolio's transactions into a single
// performance summary.
//
// Total invested is the sum of all amounts. For each transaction the number
// of units implicitly purchased (amount divided by the pinned purchase
// price) is valued at the instrument's current price. One current-price call
// per transaction, deliberately not deduplicated across repeated tickers; a
// failing lookup for any instrument aborts the whole computation.
//
// An empty (or missing) portfolio reports zeros, including the gain/loss
// percentage.
func (s *PortfolioService) ComputePerformance(name string) (model.PerformanceSummary, error) {
	transactions, err := s.transactions(name)
	if err != nil {
		return model.PerformanceSummary{}, err
	}

	var totalInvested, currentValue float64
	for _, t := range transactions {
		totalInvested += t.Amount

		currentPrice, err := s.priceService.CurrentPrice(t.Ticker)
		if err != nil {
			return model.PerformanceSummary{}, err
		}
		currentValue += (t.Amount / t.Price) * currentPrice
	}

	gainLoss := 0.0
	if totalInvested > 0 {
		gainLoss = (currentValue - totalInvested) / totalInvested * 100
	}

	return model.PerformanceSummary{
		TotalInvested:   roundTwo(totalInvested),
		CurrentValue:    roundTwo(currentValue),
		GainLossPercent: roundTwo(gainLoss),
	}, nil
}

// transactions loads a portfolio's ledger rows, treating a missing portfolio
// as empty.
func (s *PortfolioService) transactions(name string) ([]model.Transaction, error) {
	store, err := s.stores.Get(name)
	if err != nil {
		if isNotFound(err) {
			return []model.Transaction{}, nil
		}
		return nil, err
	}
	return repository.NewTransactionRepository(store).GetAllTransactions()
}
