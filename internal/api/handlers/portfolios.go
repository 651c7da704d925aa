package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/api/request"
	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/api/response"
	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/service"
	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/validation"
)

// PortfolioHandler handles HTTP requests for portfolio endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the portfolio and history services.
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
	historyService   *service.HistoryService
}

// NewPortfolioHandler creates a new PortfolioHandler with the provided service dependencies.
func NewPortfolioHandler(portfolioService *service.PortfolioService, historyService *service.HistoryService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
		historyService:   historyService,
	}
}

// Portfolios handles GET requests to list all portfolios.
//
// Endpoint: GET /api/portfolio
// Response: 200 OK with array of Portfolio
// Error: 500 Internal Server Error if retrieval fails
func (h *PortfolioHandler) Portfolios(w http.ResponseWriter, _ *http.Request) {
	portfolios, err := h.portfolioService.GetAllPortfolios()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePortfolios.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, portfolios)
}

// CreatePortfolio handles POST requests to create a new, empty portfolio.
//
// Endpoint: POST /api/portfolio
// Request Body: CreatePortfolioRequest (name)
// Response: 201 Created with Portfolio
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 409 Conflict if a portfolio with the same name exists
// Error: 500 Internal Server Error if creation fails
func (h *PortfolioHandler) CreatePortfolio(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreatePortfolioRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidatePortfolioName(req.Name); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	portfolio, err := h.portfolioService.CreatePortfolio(req.Name)
	if err != nil {
		if errors.Is(err, apperrors.ErrPortfolioExists) {
			response.RespondError(w, http.StatusConflict, apperrors.ErrPortfolioExists.Error(), req.Name)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create portfolio", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, portfolio)
}

// DeletePortfolio handles DELETE requests to tear down a portfolio and
// permanently remove its persisted transactions.
//
// Endpoint: DELETE /api/portfolio/{name}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if the name is invalid (validated by middleware)
// Error: 404 Not Found if no such portfolio exists
// Error: 500 Internal Server Error if deletion fails
func (h *PortfolioHandler) DeletePortfolio(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	found, err := h.portfolioService.DeletePortfolio(name)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to delete portfolio", err.Error())
		return
	}
	if !found {
		response.RespondError(w, http.StatusNotFound, apperrors.ErrPortfolioNotFound.Error(), name)
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// Performance handles GET requests for a portfolio's aggregate performance:
// total invested capital, current market value, and gain/loss percentage.
// An empty or unknown portfolio reports zeros.
//
// Endpoint: GET /api/portfolio/{name}/performance
// Response: 200 OK with PerformanceSummary
// Error: 422 Unprocessable Entity if a live price lookup fails
// Error: 500 Internal Server Error if the computation fails
func (h *PortfolioHandler) Performance(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	summary, err := h.portfolioService.ComputePerformance(name)
	if err != nil {
		if errors.Is(err, apperrors.ErrPriceUnavailable) {
			response.RespondError(w, http.StatusUnprocessableEntity, apperrors.ErrPriceUnavailable.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToComputePerformance.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}

// PerformanceHistory handles GET requests for a portfolio's recorded
// performance snapshots, newest first.
//
// Endpoint: GET /api/portfolio/{name}/performance/history
// Response: 200 OK with array of PerformanceSnapshot
// Error: 500 Internal Server Error if retrieval fails
func (h *PortfolioHandler) PerformanceHistory(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	snapshots, err := h.historyService.GetHistory(name)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveHistory.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, snapshots)
}
