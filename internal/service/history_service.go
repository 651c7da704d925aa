package service

import (
	"context"
	"time"

	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/model"
	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// snapshotConcurrency bounds how many portfolios the snapshot job values at
// once. Each portfolio still runs its own computation sequentially.
const snapshotConcurrency = 4

// HistoryService materializes daily performance snapshots into each
// portfolio's own store, so historical gain/loss can be read back without
// recomputing against live prices. Driven by the cron schedule configured in
// main.
type HistoryService struct {
	stores           *repository.StoreManager
	portfolioService *PortfolioService
}

// NewHistoryService creates a new HistoryService with the provided dependencies.
func NewHistoryService(
	stores *repository.StoreManager,
	portfolioService *PortfolioService,
) *HistoryService {
	return &HistoryService{
		stores:           stores,
		portfolioService: portfolioService,
	}
}

// SnapshotAll computes and records today's performance summary for every
// portfolio. Portfolios are processed concurrently with a bounded errgroup;
// the first failure cancels the remaining work and is returned.
func (s *HistoryService) SnapshotAll(ctx context.Context) error {
	names, err := s.stores.List()
	if err != nil {
		return err
	}

	date := time.Now().UTC().Format("2006-01-02")

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(snapshotConcurrency)

	for _, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := s.snapshot(name, date); err != nil {
				log.Error().Err(err).Str("portfolio", name).Msg("performance snapshot failed")
				return err
			}
			log.Debug().Str("portfolio", name).Str("date", date).Msg("performance snapshot recorded")
			return nil
		})
	}

	return g.Wait()
}

// snapshot records one portfolio's summary for the given date. The row is an
// upsert, so re-running the job on the same day overwrites rather than
// duplicates.
func (s *HistoryService) snapshot(name, date string) error {
	summary, err := s.portfolioService.ComputePerformance(name)
	if err != nil {
		return err
	}

	store, err := s.stores.Get(name)
	if err != nil {
		return err
	}

	return repository.NewHistoryRepository(store).UpsertSnapshot(date, summary)
}

// GetHistory returns a portfolio's recorded snapshots, newest first.
func (s *HistoryService) GetHistory(name string) ([]model.PerformanceSnapshot, error) {
	store, err := s.stores.Get(name)
	if err != nil {
		if isNotFound(err) {
			return []model.PerformanceSnapshot{}, nil
		}
		return nil, err
	}
	return repository.NewHistoryRepository(store).GetSnapshots()
}
