package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/api/handlers"
	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/api/request"
	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/model"
	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/repository"
	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/testutil"
)

func newTransactionHandler(t *testing.T, stores *repository.StoreManager, mock *testutil.MockYahooClient) *handlers.TransactionHandler {
	t.Helper()
	return handlers.NewTransactionHandler(testutil.NewTestTransactionService(t, stores, mock))
}

func intradayBars() []time.Time {
	return []time.Time{
		time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 15, 11, 0, 0, 0, time.UTC),
	}
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("records a transaction", func(t *testing.T) {
		stores := testutil.SetupTestManager(t)
		mock := testutil.NewMockYahooClient().
			WithDailyChart("AAPL", testutil.CreateChartResponse("AAPL", intradayBars()[:1], []float64{100})).
			WithIntradayChart("AAPL", testutil.CreateChartResponse("AAPL", intradayBars(), []float64{100, 101, 102}))
		handler := newTransactionHandler(t, stores, mock)

		req := testutil.NewJSONRequestWithURLParams(t, http.MethodPost, "/api/portfolio/savings/transaction",
			request.CreateTransactionRequest{Date: "2024-03-15 10:20", Identifier: "AAPL", Amount: 1000},
			map[string]string{"name": "savings"})
		w := httptest.NewRecorder()
		handler.CreateTransaction(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
		}

		var tx model.Transaction
		if err := json.NewDecoder(w.Body).Decode(&tx); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if tx.Ticker != "AAPL" {
			t.Errorf("Expected ticker AAPL, got %s", tx.Ticker)
		}
		if tx.Price != 101 {
			t.Errorf("Expected price pinned to the closest bar (101), got %f", tx.Price)
		}
	})

	t.Run("returns 400 for a malformed body", func(t *testing.T) {
		stores := testutil.SetupTestManager(t)
		handler := newTransactionHandler(t, stores, testutil.NewMockYahooClient())

		req := httptest.NewRequest(http.MethodPost, "/api/portfolio/savings/transaction", strings.NewReader("{"))
		w := httptest.NewRecorder()
		handler.CreateTransaction(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("returns 400 when validation fails", func(t *testing.T) {
		stores := testutil.SetupTestManager(t)
		handler := newTransactionHandler(t, stores, testutil.NewMockYahooClient())

		req := testutil.NewJSONRequestWithURLParams(t, http.MethodPost, "/api/portfolio/savings/transaction",
			request.CreateTransactionRequest{Date: "2024-03-15", Identifier: "AAPL", Amount: -5},
			map[string]string{"name": "savings"})
		w := httptest.NewRecorder()
		handler.CreateTransaction(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("returns 404 when the identifier cannot be resolved", func(t *testing.T) {
		stores := testutil.SetupTestManager(t)
		handler := newTransactionHandler(t, stores, testutil.NewMockYahooClient())

		req := testutil.NewJSONRequestWithURLParams(t, http.MethodPost, "/api/portfolio/savings/transaction",
			request.CreateTransactionRequest{Date: "2024-03-15", Identifier: "DOESNOTEXIST", Amount: 1000},
			map[string]string{"name": "savings"})
		w := httptest.NewRecorder()
		handler.CreateTransaction(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})

	t.Run("returns 422 when no price data covers the timestamp", func(t *testing.T) {
		stores := testutil.SetupTestManager(t)
		mock := testutil.NewMockYahooClient().
			WithDailyChart("AAPL", testutil.CreateChartResponse("AAPL", intradayBars()[:1], []float64{100}))
		handler := newTransactionHandler(t, stores, mock)

		req := testutil.NewJSONRequestWithURLParams(t, http.MethodPost, "/api/portfolio/savings/transaction",
			request.CreateTransactionRequest{Date: "2024-03-15 10:20", Identifier: "AAPL", Amount: 1000},
			map[string]string{"name": "savings"})
		w := httptest.NewRecorder()
		handler.CreateTransaction(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("Expected status 422, got %d", w.Code)
		}
	})
}

func TestTransactionHandler_TransactionsPerPortfolio(t *testing.T) {
	t.Run("returns enriched transactions", func(t *testing.T) {
		stores := testutil.SetupTestManager(t)
		store, err := stores.GetOrCreate("savings")
		if err != nil {
			t.Fatalf("GetOrCreate() returned unexpected error: %v", err)
		}
		testutil.NewTransaction().WithAmount(1000).WithPrice(100).Build(t, store)

		mock := testutil.NewMockYahooClient().WithCurrentPrice("AAPL", 110)
		handler := newTransactionHandler(t, stores, mock)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/portfolio/savings/transaction",
			map[string]string{"name": "savings"})
		w := httptest.NewRecorder()
		handler.TransactionsPerPortfolio(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var details []model.TransactionDetail
		if err := json.NewDecoder(w.Body).Decode(&details); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(details) != 1 {
			t.Fatalf("Expected 1 transaction, got %d", len(details))
		}
		if details[0].CurrentPrice != 110 || details[0].GainLossPercent != 10 {
			t.Errorf("Unexpected enrichment: %+v", details[0])
		}
	})

	t.Run("returns empty array for a missing portfolio", func(t *testing.T) {
		stores := testutil.SetupTestManager(t)
		handler := newTransactionHandler(t, stores, testutil.NewMockYahooClient())

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/portfolio/missing/transaction",
			map[string]string{"name": "missing"})
		w := httptest.NewRecorder()
		handler.TransactionsPerPortfolio(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var details []model.TransactionDetail
		if err := json.NewDecoder(w.Body).Decode(&details); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(details) != 0 {
			t.Errorf("Expected no transactions, got %d", len(details))
		}
	})
}

func TestTransactionHandler_GetTransaction(t *testing.T) {
	t.Run("returns a stored transaction", func(t *testing.T) {
		stores := testutil.SetupTestManager(t)
		store, err := stores.GetOrCreate("savings")
		if err != nil {
			t.Fatalf("GetOrCreate() returned unexpected error: %v", err)
		}
		tx := testutil.NewTransaction().Build(t, store)
		handler := newTransactionHandler(t, stores, testutil.NewMockYahooClient())

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/portfolio/savings/transaction/"+tx.TransactionID,
			map[string]string{"name": "savings", "transactionId": tx.TransactionID})
		w := httptest.NewRecorder()
		handler.GetTransaction(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var got model.Transaction
		if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if got.TransactionID != tx.TransactionID {
			t.Errorf("Expected transaction %s, got %s", tx.TransactionID, got.TransactionID)
		}
	})

	t.Run("returns 404 for an unknown transaction", func(t *testing.T) {
		stores := testutil.SetupTestManager(t)
		if _, err := stores.GetOrCreate("savings"); err != nil {
			t.Fatalf("GetOrCreate() returned unexpected error: %v", err)
		}
		handler := newTransactionHandler(t, stores, testutil.NewMockYahooClient())

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/portfolio/savings/transaction/AAPL-20240315-ffffff",
			map[string]string{"name": "savings", "transactionId": "AAPL-20240315-ffffff"})
		w := httptest.NewRecorder()
		handler.GetTransaction(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})

	t.Run("returns 404 for an unknown portfolio", func(t *testing.T) {
		stores := testutil.SetupTestManager(t)
		handler := newTransactionHandler(t, stores, testutil.NewMockYahooClient())

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/portfolio/missing/transaction/AAPL-20240315-ffffff",
			map[string]string{"name": "missing", "transactionId": "AAPL-20240315-ffffff"})
		w := httptest.NewRecorder()
		handler.GetTransaction(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}

func TestTransactionHandler_DeleteTransaction(t *testing.T) {
	t.Run("deletes then reports 404 on repeat", func(t *testing.T) {
		stores := testutil.SetupTestManager(t)
		store, err := stores.GetOrCreate("savings")
		if err != nil {
			t.Fatalf("GetOrCreate() returned unexpected error: %v", err)
		}
		tx := testutil.NewTransaction().Build(t, store)
		handler := newTransactionHandler(t, stores, testutil.NewMockYahooClient())

		params := map[string]string{"name": "savings", "transactionId": tx.TransactionID}
		path := "/api/portfolio/savings/transaction/" + tx.TransactionID

		w := httptest.NewRecorder()
		handler.DeleteTransaction(w, testutil.NewRequestWithURLParams(http.MethodDelete, path, params))
		if w.Code != http.StatusNoContent {
			t.Fatalf("Expected status 204, got %d", w.Code)
		}

		w = httptest.NewRecorder()
		handler.DeleteTransaction(w, testutil.NewRequestWithURLParams(http.MethodDelete, path, params))
		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404 on repeated delete, got %d", w.Code)
		}
	})
}
