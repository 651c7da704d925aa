package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/api/handlers"
	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/service"
)

func TestSystemHandler_Health(t *testing.T) {
	t.Run("reports healthy when storage is writable", func(t *testing.T) {
		handler := handlers.NewSystemHandler(service.NewSystemService(t.TempDir()))

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		w := httptest.NewRecorder()
		handler.Health(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var health handlers.HealthResponse
		if err := json.NewDecoder(w.Body).Decode(&health); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if health.Status != "healthy" || health.Storage != "available" {
			t.Errorf("Unexpected health response: %+v", health)
		}
	})
}

func TestSystemHandler_Version(t *testing.T) {
	t.Run("reports the build version", func(t *testing.T) {
		handler := handlers.NewSystemHandler(service.NewSystemService(t.TempDir()))

		req := httptest.NewRequest(http.MethodGet, "/api/system/version", nil)
		w := httptest.NewRecorder()
		handler.Version(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var version handlers.VersionResponse
		if err := json.NewDecoder(w.Body).Decode(&version); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if version.AppVersion == "" {
			t.Error("Expected a non-empty version")
		}
	})
}
