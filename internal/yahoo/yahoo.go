package yahoo

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client is the set of market data capabilities the services depend on.
// FinanceClient is the production implementation; tests substitute a mock.
type Client interface {
	QueryFiveDaySymbol(symbol string) (Response, error)
	QueryIntradayByDateRange(symbol string, startDate, endDate time.Time) (Response, error)
	QuerySymbolSearch(query string) (SearchResponse, error)
	ParseChart(yahooResult Response) (PriceChart, error)
}

// FinanceClient provides methods for fetching financial data from Yahoo Finance API.
// It wraps an HTTP client and provides convenient methods for querying stock prices
// and related financial data.
type FinanceClient struct {
	httpClient *http.Client
	chartURL   string
	searchURL  string
}

// NewFinanceClient creates a new Yahoo Finance client with default HTTP settings.
// The client uses a standard http.Client for making requests to Yahoo Finance endpoints.
//
// Returns:
//   - *FinanceClient: A new client instance ready for use
func NewFinanceClient() *FinanceClient {
	return &FinanceClient{
		httpClient: &http.Client{},
		chartURL:   "https://query1.finance.yahoo.com/v8/finance/chart",
		searchURL:  "https://query1.finance.yahoo.com/v1/finance/search",
	}
}

// NewFinanceClientWithBaseURLs creates a client pointing at custom chart and
// search endpoints. Used in tests to target an httptest server.
func NewFinanceClientWithBaseURLs(chartURL, searchURL string) *FinanceClient {
	return &FinanceClient{
		httpClient: &http.Client{},
		chartURL:   chartURL,
		searchURL:  searchURL,
	}
}

// ParseChart converts a raw Yahoo Finance API response into a structured price chart.
// This method extracts price data (open, close, high, low, volume) and metadata
// (symbol, currency, exchange) from the Yahoo response format.
//
// The method performs validation to ensure:
//   - Timestamp data is present
//   - Close price data is present
//   - Data arrays have matching lengths
//
// Parameters:
//   - yahooResult: Raw response from Yahoo Finance API
//
// Returns:
//   - PriceChart: Structured chart with indicators and metadata
//   - error: If data is missing, malformed, or arrays have mismatched lengths
func (c *FinanceClient) ParseChart(yahooResult Response) (PriceChart, error) {
	if len(yahooResult.Chart.Result) == 0 {
		return PriceChart{}, fmt.Errorf("no results returned")
	}

	result := yahooResult.Chart.Result[0]

	if len(result.Timestamp) == 0 {
		return PriceChart{}, fmt.Errorf("no price data returned")
	}
	if len(result.Indicators.Quote) == 0 || len(result.Indicators.Quote[0].Close) == 0 {
		return PriceChart{}, fmt.Errorf("no close prices returned")
	}

	if len(result.Indicators.Quote[0].Close) != len(result.Timestamp) {
		return PriceChart{}, fmt.Errorf("mismatched data lengths")
	}

	indicators := make([]Indicators, len(result.Timestamp))
	for i, v := range result.Timestamp {
		indicators[i].Date = time.Unix(v, 0).UTC()
		indicators[i].PriceOpen = result.Indicators.Quote[0].Open[i]
		indicators[i].PriceClose = result.Indicators.Quote[0].Close[i]
		indicators[i].Volume = result.Indicators.Quote[0].Volume[i]
		indicators[i].PriceHigh = result.Indicators.Quote[0].High[i]
		indicators[i].PriceLow = result.Indicators.Quote[0].Low[i]
	}

	return PriceChart{
		Symbol:           result.Meta.Symbol,
		Currency:         result.Meta.Currency,
		ExchangeName:     result.Meta.ExchangeName,
		FullExchangeName: result.Meta.FullExchangeName,
		LongName:         result.Meta.LongName,
		Shortname:        result.Meta.Shortname,
		Indicators:       indicators,
	}, nil
}

// QueryFiveDaySymbol fetches the last 5 days of daily price data for a symbol.
// This method is optimized for retrieving recent price history, typically used
// to get the latest available closing price.
//
// The method uses Yahoo Finance's range-based query format (range=5d) which
// automatically selects the most recent 5 trading days.
//
// Parameters:
//   - symbol: Stock ticker symbol (e.g., "AAPL", "MSFT")
//
// Returns:
//   - Response: Raw API response containing price data
//   - error: If the HTTP request fails, API returns an error, or no results found
func (c *FinanceClient) QueryFiveDaySymbol(symbol string) (Response, error) {
	queryURL := fmt.Sprintf("%s/%s?interval=1d&range=5d", c.chartURL, url.PathEscape(symbol))
	result, err := c.queryChart(queryURL)
	if err != nil {
		return Response{}, err
	}
	if len(result.Chart.Result) == 0 {
		return Response{}, fmt.Errorf("no results returned for symbol %s", symbol)
	}

	return result, nil
}

// QueryIntradayByDateRange fetches hourly price bars for a symbol within a
// specific time range. This is used to pin a purchase price to the bar closest
// to the transaction timestamp.
//
// The method uses Yahoo Finance's period-based query format with Unix
// timestamps and a one-hour interval.
//
// Parameters:
//   - symbol: Stock ticker symbol (e.g., "AAPL", "MSFT")
//   - startDate: Beginning of the range (inclusive)
//   - endDate: End of the range (exclusive)
//
// Returns:
//   - Response: Raw API response containing intraday bars
//   - error: If the HTTP request fails, API returns an error, or no results found
func (c *FinanceClient) QueryIntradayByDateRange(symbol string, startDate, endDate time.Time) (Response, error) {
	queryURL := fmt.Sprintf(
		"%s/%s?interval=1h&period1=%d&period2=%d",
		c.chartURL,
		url.PathEscape(symbol),
		startDate.Unix(),
		endDate.Unix(),
	)
	result, err := c.queryChart(queryURL)
	if err != nil {
		return Response{}, err
	}
	if len(result.Chart.Result) == 0 {
		return Response{}, fmt.Errorf("no results returned for symbol %s", symbol)
	}

	return result, nil
}

// QuerySymbolSearch performs a free-text search against the Yahoo Finance
// symbol search endpoint. The query can be a company name, a partial ticker,
// or an alternate identifier such as an ISIN.
//
// Parameters:
//   - query: Free-form search string
//
// Returns:
//   - SearchResponse: Matched quotes, best match first
//   - error: If the HTTP request fails or the response cannot be parsed
func (c *FinanceClient) QuerySymbolSearch(query string) (SearchResponse, error) {
	queryURL := fmt.Sprintf("%s?q=%s&quotesCount=5&newsCount=0", c.searchURL, url.QueryEscape(query))

	data, err := c.get(queryURL)
	if err != nil {
		return SearchResponse{}, err
	}

	var response SearchResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return SearchResponse{}, err
	}

	return response, nil
}

// queryChart is an internal helper that executes chart API requests.
// This method handles the common logic for reading responses, parsing JSON,
// and checking for API errors.
func (c *FinanceClient) queryChart(queryURL string) (Response, error) {
	data, err := c.get(queryURL)
	if err != nil {
		return Response{}, err
	}

	var response Response
	if err := json.Unmarshal(data, &response); err != nil {
		return Response{}, err
	}

	if response.Chart.Error != nil {
		return response, fmt.Errorf("yahoo error: %s", *response.Chart.Error)
	}

	return response, nil
}

// get performs an HTTP GET against a Yahoo endpoint and returns the raw body.
//
// The method sets required headers:
//   - User-Agent: Mimics a browser to avoid API blocking
//   - Accept: Requests JSON response format
func (c *FinanceClient) get(queryURL string) ([]byte, error) {
	req, err := http.NewRequest("GET", queryURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return io.ReadAll(resp.Body)
}
