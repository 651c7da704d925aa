package service

import (
	"fmt"
	"time"

	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/yahoo"
)

// PriceService obtains instrument prices from the market data provider:
// the price closest to a given timestamp, and the most recent available
// price. One provider request per call; no caching, no retries. Failures
// surface immediately to the caller.
type PriceService struct {
	yahooClient yahoo.Client
}

// NewPriceService creates a new PriceService with the provided market data client.
func NewPriceService(yahooClient yahoo.Client) *PriceService {
	return &PriceService{yahooClient: yahooClient}
}

// PriceAt returns the instrument price pinned to the given timestamp.
//
// The provider is queried for hourly bars covering the calendar day of the
// timestamp and the following day, to tolerate end-of-day and timezone
// boundary bars. Among the returned bars the one with the minimum absolute
// distance from the requested timestamp wins; its closing value is returned.
// Both sides of the comparison are naive UTC.
//
// Returns apperrors.ErrPriceUnavailable when the provider has no bars for
// the window.
func (s *PriceService) PriceAt(symbol string, timestamp time.Time) (float64, error) {
	timestamp = timestamp.UTC()
	dayStart := time.Date(timestamp.Year(), timestamp.Month(), timestamp.Day(), 0, 0, 0, 0, time.UTC)
	windowEnd := dayStart.AddDate(0, 0, 2)

	raw, err := s.yahooClient.QueryIntradayByDateRange(symbol, dayStart, windowEnd)
	if err != nil {
		return 0, fmt.Errorf("%w: %s at %s: %v", apperrors.ErrPriceUnavailable, symbol, timestamp.Format(time.DateTime), err)
	}

	chart, err := s.yahooClient.ParseChart(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s at %s: %v", apperrors.ErrPriceUnavailable, symbol, timestamp.Format(time.DateTime), err)
	}

	bar, ok := closestBar(chart.Indicators, timestamp)
	if !ok {
		return 0, fmt.Errorf("%w: %s at %s", apperrors.ErrPriceUnavailable, symbol, timestamp.Format(time.DateTime))
	}

	return bar.PriceClose, nil
}

// CurrentPrice returns the most recent available closing value for a symbol.
//
// Returns apperrors.ErrPriceUnavailable when no data is available, e.g. for
// a delisted or invalid symbol. Never substitutes a sentinel value.
func (s *PriceService) CurrentPrice(symbol string) (float64, error) {
	raw, err := s.yahooClient.QueryFiveDaySymbol(symbol)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", apperrors.ErrPriceUnavailable, symbol, err)
	}

	chart, err := s.yahooClient.ParseChart(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", apperrors.ErrPriceUnavailable, symbol, err)
	}

	// Walk backwards past trailing zero bars; Yahoo pads the current day
	// with an empty bar before the market opens.
	for i := len(chart.Indicators) - 1; i >= 0; i-- {
		if chart.Indicators[i].PriceClose > 0 {
			return chart.Indicators[i].PriceClose, nil
		}
	}

	return 0, fmt.Errorf("%w: %s", apperrors.ErrPriceUnavailable, symbol)
}

// closestBar selects the bar whose timestamp has the minimum absolute
// distance from the target.
func closestBar(bars []yahoo.Indicators, target time.Time) (yahoo.Indicators, bool) {
	if len(bars) == 0 {
		return yahoo.Indicators{}, false
	}

	best := bars[0]
	bestDiff := absDuration(bars[0].Date.Sub(target))
	for _, bar := range bars[1:] {
		diff := absDuration(bar.Date.Sub(target))
		if diff < bestDiff {
			best = bar
			bestDiff = diff
		}
	}
	return best, true
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
