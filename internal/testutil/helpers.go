package testutil

import (
	"testing"

	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/repository"
	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/service"
	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/yahoo"
)

func NewTestTransactionService(t *testing.T, stores *repository.StoreManager, client yahoo.Client) *service.TransactionService {
	t.Helper()

	return service.NewTransactionService(
		stores,
		service.NewSymbolService(client),
		service.NewPriceService(client),
	)
}

func NewTestPortfolioService(t *testing.T, stores *repository.StoreManager, client yahoo.Client) *service.PortfolioService {
	t.Helper()

	return service.NewPortfolioService(
		stores,
		service.NewPriceService(client),
	)
}

func NewTestHistoryService(t *testing.T, stores *repository.StoreManager, client yahoo.Client) *service.HistoryService {
	t.Helper()

	return service.NewHistoryService(
		stores,
		NewTestPortfolioService(t, stores, client),
	)
}
