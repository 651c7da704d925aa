package model

import "time"

// Portfolio represents a named portfolio. Each portfolio is backed by its own
// store file, so the name doubles as the store identifier.
type Portfolio struct {
	Name string `json:"name"`
}

// PerformanceSummary represents the aggregate performance of a portfolio:
// total invested capital, current market value, and the gain/loss percentage.
// An empty portfolio reports zeros across the board.
type PerformanceSummary struct {
	TotalInvested   float64 `json:"totalInvested"`
	CurrentValue    float64 `json:"currentValue"`
	GainLossPercent float64 `json:"gainLossPercent"`
}

// PerformanceSnapshot is a recorded PerformanceSummary for a specific date,
// written by the scheduled snapshot job into the portfolio's own store.
type PerformanceSnapshot struct {
	ID              string    `json:"id"`
	Date            string    `json:"date"` // YYYY-MM-DD
	TotalInvested   float64   `json:"totalInvested"`
	CurrentValue    float64   `json:"currentValue"`
	GainLossPercent float64   `json:"gainLossPercent"`
	CalculatedAt    time.Time `json:"calculatedAt"`
}
