package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/api/handlers"
	custommiddleware "github.com/ndewijer/Portfolio-Tracker-Backend/internal/api/middleware"
	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/config"
	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	portfolioService *service.PortfolioService,
	transactionService *service.TransactionService,
	historyService *service.HistoryService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/portfolio", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(portfolioService, historyService)
			transactionHandler := handlers.NewTransactionHandler(transactionService)

			r.Get("/", portfolioHandler.Portfolios)
			r.Post("/", portfolioHandler.CreatePortfolio)

			r.Route("/{name}", func(r chi.Router) {
				r.Use(custommiddleware.ValidatePortfolioNameMiddleware)

				r.Delete("/", portfolioHandler.DeletePortfolio)
				r.Get("/performance", portfolioHandler.Performance)
				r.Get("/performance/history", portfolioHandler.PerformanceHistory)

				r.Route("/transaction", func(r chi.Router) {
					r.Get("/", transactionHandler.TransactionsPerPortfolio)
					r.Post("/", transactionHandler.CreateTransaction)
					r.Get("/{transactionId}", transactionHandler.GetTransaction)
					r.Delete("/{transactionId}", transactionHandler.DeleteTransaction)
				})
			})
		})
	})

	return r
}
