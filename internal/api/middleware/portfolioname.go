package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/api/response"
	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/validation"
)

// ValidatePortfolioNameMiddleware validates that the name URL parameter is
// present and maps safely onto a store file name.
// Returns 400 Bad Request if the name is missing or invalid.
//
// Example usage in router:
//
//	r.Route("/{name}", func(r chi.Router) {
//	    r.Use(middleware.ValidatePortfolioNameMiddleware)
//	    r.Get("/performance", handler.Performance)
//	})
func ValidatePortfolioNameMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")

		if name == "" {
			response.RespondError(w, http.StatusBadRequest, "portfolio name is required", "")
			return
		}

		if err := validation.ValidatePortfolioName(name); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid portfolio name", err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
