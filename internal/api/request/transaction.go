package request

// CreateTransactionRequest represents the request body for recording a
// purchase. Identifier is the raw user input (ticker symbol or ISIN); Date
// accepts "2006-01-02 15:04:05", "2006-01-02T15:04:05" or a bare
// "2006-01-02".
type CreateTransactionRequest struct {
	Date       string  `json:"date"`
	Identifier string  `json:"identifier"`
	Amount     float64 `json:"amount"`
}
