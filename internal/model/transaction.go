package model

import "time"

// Transaction represents one purchase event in a portfolio ledger.
// Price is pinned at insert time and never mutated afterwards; performance
// calculations only read it.
type Transaction struct {
	ID            int64     `json:"id"`
	TransactionID string    `json:"transactionId"`
	Date          time.Time `json:"date"`
	Ticker        string    `json:"ticker"`
	Amount        float64   `json:"amount"`
	Price         float64   `json:"price"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
}

// TransactionDetail represents a transaction enriched with live market data
// for API responses: the current price of the instrument and the gain/loss
// percentage relative to the pinned purchase price.
type TransactionDetail struct {
	Transaction
	CurrentPrice    float64 `json:"currentPrice"`
	GainLossPercent float64 `json:"gainLossPercent"`
}
