package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/api/middleware"
	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/testutil"
)

func TestValidatePortfolioNameMiddleware(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	wrapped := middleware.ValidatePortfolioNameMiddleware(okHandler)

	tests := []struct {
		name           string
		portfolioName  string
		expectedStatus int
	}{
		{name: "valid name passes through", portfolioName: "savings", expectedStatus: http.StatusOK},
		{name: "name with spaces passes through", portfolioName: "long term savings", expectedStatus: http.StatusOK},
		{name: "path traversal rejected", portfolioName: "../escape", expectedStatus: http.StatusBadRequest},
		{name: "leading whitespace rejected", portfolioName: " savings", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/portfolio/x/performance",
				map[string]string{"name": tt.portfolioName})
			w := httptest.NewRecorder()
			wrapped.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}

	t.Run("missing name rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/portfolio//performance", nil)
		w := httptest.NewRecorder()
		wrapped.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}
