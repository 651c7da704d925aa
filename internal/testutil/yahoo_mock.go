package testutil

import (
	"fmt"
	"time"

	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/yahoo"
)

// MockYahooClient is a mock implementation of yahoo.Client for testing.
// It returns predefined responses per symbol instead of making API calls.
type MockYahooClient struct {
	// DailyCharts holds the response returned by QueryFiveDaySymbol per symbol.
	DailyCharts map[string]yahoo.Response
	// IntradayCharts holds the response returned by QueryIntradayByDateRange per symbol.
	IntradayCharts map[string]yahoo.Response
	// SearchResult is returned by QuerySymbolSearch.
	SearchResult yahoo.SearchResponse
	// MockError, when set, is returned by every query method.
	MockError error
	// ChartQueries and SearchQueries track how often each endpoint was hit.
	ChartQueries  int
	SearchQueries int
}

// NewMockYahooClient creates an empty mock. Symbols must be configured with
// the With* methods; querying an unconfigured symbol behaves like Yahoo
// returning no results.
func NewMockYahooClient() *MockYahooClient {
	return &MockYahooClient{
		DailyCharts:    make(map[string]yahoo.Response),
		IntradayCharts: make(map[string]yahoo.Response),
	}
}

// QueryFiveDaySymbol returns the configured daily chart for the symbol.
func (m *MockYahooClient) QueryFiveDaySymbol(symbol string) (yahoo.Response, error) {
	m.ChartQueries++
	if m.MockError != nil {
		return yahoo.Response{}, m.MockError
	}
	resp, ok := m.DailyCharts[symbol]
	if !ok {
		return yahoo.Response{}, fmt.Errorf("no results returned for symbol %s", symbol)
	}
	return resp, nil
}

// QueryIntradayByDateRange returns the configured intraday chart for the symbol.
func (m *MockYahooClient) QueryIntradayByDateRange(symbol string, _, _ time.Time) (yahoo.Response, error) {
	m.ChartQueries++
	if m.MockError != nil {
		return yahoo.Response{}, m.MockError
	}
	resp, ok := m.IntradayCharts[symbol]
	if !ok {
		return yahoo.Response{}, fmt.Errorf("no results returned for symbol %s", symbol)
	}
	return resp, nil
}

// QuerySymbolSearch returns the configured search result.
func (m *MockYahooClient) QuerySymbolSearch(_ string) (yahoo.SearchResponse, error) {
	m.SearchQueries++
	if m.MockError != nil {
		return yahoo.SearchResponse{}, m.MockError
	}
	return m.SearchResult, nil
}

// ParseChart delegates to the real ParseChart method since it's pure logic with no side effects.
func (m *MockYahooClient) ParseChart(yahooResult yahoo.Response) (yahoo.PriceChart, error) {
	client := yahoo.NewFinanceClient()
	return client.ParseChart(yahooResult)
}

// WithDailyChart configures the daily chart returned for a symbol.
func (m *MockYahooClient) WithDailyChart(symbol string, resp yahoo.Response) *MockYahooClient {
	m.DailyCharts[symbol] = resp
	return m
}

// WithIntradayChart configures the intraday chart returned for a symbol.
func (m *MockYahooClient) WithIntradayChart(symbol string, resp yahoo.Response) *MockYahooClient {
	m.IntradayCharts[symbol] = resp
	return m
}

// WithCurrentPrice configures the symbol so CurrentPrice observes the given
// closing value: a single daily bar dated yesterday.
func (m *MockYahooClient) WithCurrentPrice(symbol string, price float64) *MockYahooClient {
	yesterday := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -1)
	m.DailyCharts[symbol] = CreateChartResponse(symbol, []time.Time{yesterday}, []float64{price})
	return m
}

// WithSearchResults configures the symbols returned by the search endpoint,
// best match first.
func (m *MockYahooClient) WithSearchResults(symbols ...string) *MockYahooClient {
	quotes := make([]yahoo.SearchQuote, 0, len(symbols))
	for _, symbol := range symbols {
		quotes = append(quotes, yahoo.SearchQuote{Symbol: symbol, QuoteType: "EQUITY"})
	}
	m.SearchResult = yahoo.SearchResponse{Quotes: quotes}
	return m
}

// WithError configures the mock to return the specified error from every query.
func (m *MockYahooClient) WithError(err error) *MockYahooClient {
	m.MockError = err
	return m
}

// CreateChartResponse creates a chart API response with one bar per
// timestamp/close pair. Open, high and low are derived from the close;
// volume is constant. Timestamps and closes must have equal length.
func CreateChartResponse(symbol string, dates []time.Time, closes []float64) yahoo.Response {
	timestamps := make([]int64, len(dates))
	opens := make([]float64, len(closes))
	highs := make([]float64, len(closes))
	lows := make([]float64, len(closes))
	volumes := make([]int64, len(closes))

	for i, date := range dates {
		timestamps[i] = date.Unix()
		opens[i] = closes[i] * 0.99
		highs[i] = closes[i] * 1.01
		lows[i] = closes[i] * 0.98
		volumes[i] = 1_000_000
	}

	return yahoo.Response{
		Chart: yahoo.Chart{
			Result: []yahoo.Result{
				{
					Meta: yahoo.Meta{
						Currency:     "USD",
						Symbol:       symbol,
						ExchangeName: "NMS",
					},
					Timestamp: timestamps,
					Indicators: yahoo.ChartIndicators{
						Quote: []yahoo.Quote{
							{
								Open:   opens,
								Close:  closes,
								Volume: volumes,
								High:   highs,
								Low:    lows,
							},
						},
					},
				},
			},
		},
	}
}
