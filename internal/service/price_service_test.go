package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/service"
	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/testutil"
)

func TestPriceService_PriceAt(t *testing.T) {
	day := func(hour, minute int) time.Time {
		return time.Date(2024, 3, 15, hour, minute, 0, 0, time.UTC)
	}

	tests := []struct {
		name      string
		bars      []time.Time
		closes    []float64
		timestamp time.Time
		expected  float64
		wantErr   error
	}{
		{
			name:      "picks the closest bar before the timestamp",
			bars:      []time.Time{day(9, 0), day(10, 0), day(11, 0)},
			closes:    []float64{100, 101, 102},
			timestamp: day(10, 20),
			expected:  101,
		},
		{
			name:      "picks the closest bar after the timestamp",
			bars:      []time.Time{day(9, 0), day(10, 0), day(11, 0)},
			closes:    []float64{100, 101, 102},
			timestamp: day(10, 45),
			expected:  102,
		},
		{
			name:      "exact match wins",
			bars:      []time.Time{day(9, 0), day(10, 0), day(11, 0)},
			closes:    []float64{100, 101, 102},
			timestamp: day(10, 0),
			expected:  101,
		},
		{
			name:      "single bar is always closest",
			bars:      []time.Time{day(16, 0)},
			closes:    []float64{99.5},
			timestamp: day(3, 0),
			expected:  99.5,
		},
		{
			name:      "no bars in the window",
			bars:      nil,
			closes:    nil,
			timestamp: day(10, 0),
			wantErr:   apperrors.ErrPriceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := testutil.NewMockYahooClient()
			if len(tt.bars) > 0 {
				mock.WithIntradayChart("AAPL", testutil.CreateChartResponse("AAPL", tt.bars, tt.closes))
			}
			svc := service.NewPriceService(mock)

			price, err := svc.PriceAt("AAPL", tt.timestamp)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, price)
		})
	}
}

func TestPriceService_CurrentPrice(t *testing.T) {
	day := func(offset int) time.Time {
		return time.Date(2024, 3, 11+offset, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		bars     []time.Time
		closes   []float64
		expected float64
		wantErr  error
	}{
		{
			name:     "returns the latest close",
			bars:     []time.Time{day(0), day(1), day(2)},
			closes:   []float64{100, 105, 110},
			expected: 110,
		},
		{
			name:     "skips trailing zero bars",
			bars:     []time.Time{day(0), day(1), day(2)},
			closes:   []float64{100, 105, 0},
			expected: 105,
		},
		{
			name:    "all bars empty",
			bars:    []time.Time{day(0), day(1)},
			closes:  []float64{0, 0},
			wantErr: apperrors.ErrPriceUnavailable,
		},
		{
			name:    "unknown symbol",
			bars:    nil,
			closes:  nil,
			wantErr: apperrors.ErrPriceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := testutil.NewMockYahooClient()
			if len(tt.bars) > 0 {
				mock.WithDailyChart("AAPL", testutil.CreateChartResponse("AAPL", tt.bars, tt.closes))
			}
			svc := service.NewPriceService(mock)

			price, err := svc.CurrentPrice("AAPL")

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, price)
		})
	}
}
