package repository

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/model"
)

// HistoryRepository provides data access methods for the performance_history
// table of one portfolio store. Snapshots are written by the scheduled
// snapshot job, one row per calendar date.
type HistoryRepository struct {
	store *Store
}

// NewHistoryRepository creates a new HistoryRepository bound to the provided
// store handle.
func NewHistoryRepository(store *Store) *HistoryRepository {
	return &HistoryRepository{store: store}
}

// UpsertSnapshot records a performance summary for the given date.
// Re-running the snapshot job on the same date overwrites that date's row
// rather than accumulating duplicates.
func (r *HistoryRepository) UpsertSnapshot(date string, summary model.PerformanceSummary) error {
	db, err := r.store.DB()
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT INTO performance_history (id, date, total_invested, current_value, gain_loss_percent)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			total_invested = excluded.total_invested,
			current_value = excluded.current_value,
			gain_loss_percent = excluded.gain_loss_percent,
			calculated_at = CURRENT_TIMESTAMP
	`, uuid.New().String(), date, summary.TotalInvested, summary.CurrentValue, summary.GainLossPercent)
	if err != nil {
		return fmt.Errorf("failed to upsert performance snapshot: %w", err)
	}

	return nil
}

// GetSnapshots retrieves all recorded snapshots, newest first.
func (r *HistoryRepository) GetSnapshots() ([]model.PerformanceSnapshot, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT id, date, total_invested, current_value, gain_loss_percent, calculated_at
		FROM performance_history
		ORDER BY date DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query performance_history table: %w", err)
	}
	defer rows.Close()

	snapshots := []model.PerformanceSnapshot{}

	for rows.Next() {
		var s model.PerformanceSnapshot
		var calculatedAtStr string

		err := rows.Scan(
			&s.ID,
			&s.Date,
			&s.TotalInvested,
			&s.CurrentValue,
			&s.GainLossPercent,
			&calculatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan performance_history results: %w", err)
		}

		s.CalculatedAt, err = ParseTime(calculatedAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}

		snapshots = append(snapshots, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating performance_history table: %w", err)
	}

	return snapshots, nil
}
