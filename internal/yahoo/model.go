package yahoo

import "time"

// Response represents the raw JSON response structure from the Yahoo Finance
// chart API. This type maps directly to the chart response format, containing
// nested structures for metadata, timestamps, and price indicators.
//
// The structure includes:
//   - Chart.Result: Array of result objects (typically contains one element)
//   - Chart.Result[].Meta: Symbol metadata (name, currency, exchange)
//   - Chart.Result[].Timestamp: Unix timestamps for each data point
//   - Chart.Result[].Indicators: Price data arrays (open, close, high, low, volume)
//   - Chart.Error: Optional error message from Yahoo API
type Response struct {
	Chart Chart `json:"chart"`
}

// Chart is the top-level payload of a chart API response.
type Chart struct {
	Result []Result `json:"result"`
	Error  *string  `json:"error"`
}

// Result is one chart result: symbol metadata plus aligned arrays of bar
// timestamps and price quotes.
type Result struct {
	Meta       Meta            `json:"meta"`
	Timestamp  []int64         `json:"timestamp"`
	Indicators ChartIndicators `json:"indicators"`
}

// Meta carries the symbol metadata of a chart result.
type Meta struct {
	Currency         string `json:"currency"`
	Symbol           string `json:"symbol"`
	ExchangeName     string `json:"exchangeName"`
	FullExchangeName string `json:"fullExchangeName"`
	LongName         string `json:"longName"`
	Shortname        string `json:"shortName"`
}

// ChartIndicators wraps the quote arrays of a chart result.
type ChartIndicators struct {
	Quote []Quote `json:"quote"`
}

// Quote holds the parallel OHLCV arrays of a chart result; each index
// corresponds to the timestamp at the same position.
type Quote struct {
	Open   []float64 `json:"open"`
	Close  []float64 `json:"close"`
	Volume []int64   `json:"volume"`
	High   []float64 `json:"high"`
	Low    []float64 `json:"low"`
}

// SearchResponse represents the raw JSON response from the Yahoo Finance
// symbol search endpoint (v1/finance/search). Only the quote list is mapped;
// news and other sections of the response are ignored.
type SearchResponse struct {
	Quotes []SearchQuote `json:"quotes"`
}

// SearchQuote is a single symbol match returned by the search endpoint.
type SearchQuote struct {
	Symbol    string `json:"symbol"`
	Shortname string `json:"shortname"`
	Longname  string `json:"longname"`
	QuoteType string `json:"quoteType"`
	Exchange  string `json:"exchange"`
}

// PriceChart represents a parsed and structured price chart.
// This is the application's internal representation after parsing the raw
// Response, providing type-safe access to price data with proper time.Time
// bar timestamps.
type PriceChart struct {
	Currency         string       `json:"currency"`
	Symbol           string       `json:"symbol"`
	ExchangeName     string       `json:"exchangeName"`
	FullExchangeName string       `json:"fullExchangeName"`
	LongName         string       `json:"longName"`
	Shortname        string       `json:"shortName"`
	Indicators       []Indicators `json:"indicators"`
}

// Indicators represents a single bar of price data for a financial instrument.
// Depending on the query interval a bar covers one trading day or one
// intraday period; Date is the bar's opening timestamp in UTC.
type Indicators struct {
	Date       time.Time
	PriceOpen  float64
	PriceClose float64
	Volume     int64
	PriceHigh  float64
	PriceLow   float64
}
