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

// TransactionHandler handles HTTP requests for transaction endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the transactionService.
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler with the provided service dependency.
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// TransactionsPerPortfolio handles GET requests to retrieve all transactions
// of a portfolio, enriched with current prices and per-transaction gain/loss.
//
// Endpoint: GET /api/portfolio/{name}/transaction
// Response: 200 OK with array of TransactionDetail
// Error: 422 Unprocessable Entity if a live price lookup fails
// Error: 500 Internal Server Error if retrieval fails
func (h *TransactionHandler) TransactionsPerPortfolio(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	transactions, err := h.transactionService.GetTransactions(name)
	if err != nil {
		if errors.Is(err, apperrors.ErrPriceUnavailable) {
			response.RespondError(w, http.StatusUnprocessableEntity, apperrors.ErrPriceUnavailable.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTransactions.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, transactions)
}

// GetTransaction handles GET requests to retrieve a single transaction by its
// transaction id.
//
// Endpoint: GET /api/portfolio/{name}/transaction/{transactionId}
// Response: 200 OK with Transaction
// Error: 404 Not Found if the portfolio or transaction does not exist
// Error: 500 Internal Server Error if retrieval fails
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	transactionID := chi.URLParam(r, "transactionId")

	transaction, err := h.transactionService.GetTransaction(name, transactionID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTransactionNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTransactionNotFound.Error(), err.Error())
		case errors.Is(err, apperrors.ErrPortfolioNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPortfolioNotFound.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTransaction.Error(), err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, transaction)
}

// CreateTransaction handles POST requests to record a purchase.
// Validates the request body, resolves the identifier to a canonical symbol,
// pins the purchase price to the transaction timestamp, and persists the
// record. The portfolio store is created on first use.
//
// Endpoint: POST /api/portfolio/{name}/transaction
// Request Body: CreateTransactionRequest (date, identifier, amount)
// Response: 201 Created with Transaction
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the identifier cannot be resolved to a symbol
// Error: 409 Conflict on a transaction id collision
// Error: 422 Unprocessable Entity if no price data covers the timestamp
// Error: 500 Internal Server Error if persistence fails
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	req, err := parseJSON[request.CreateTransactionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateTransaction(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	// Validated above; cannot fail here.
	date, _ := validation.ParseTimestamp(req.Date)

	transaction, err := h.transactionService.AddTransaction(r.Context(), name, date, req.Identifier, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidAmount):
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidAmount.Error(), err.Error())
		case errors.Is(err, apperrors.ErrSymbolNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSymbolNotFound.Error(), err.Error())
		case errors.Is(err, apperrors.ErrPriceUnavailable):
			response.RespondError(w, http.StatusUnprocessableEntity, apperrors.ErrPriceUnavailable.Error(), err.Error())
		case errors.Is(err, apperrors.ErrDuplicateTransactionID):
			response.RespondError(w, http.StatusConflict, apperrors.ErrDuplicateTransactionID.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to create transaction", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusCreated, transaction)
}

// DeleteTransaction handles DELETE requests to remove a transaction.
// Deleting an id that does not exist reports 404; repeating the delete keeps
// reporting 404, never an error.
//
// Endpoint: DELETE /api/portfolio/{name}/transaction/{transactionId}
// Response: 204 No Content on successful deletion
// Error: 404 Not Found if the portfolio or transaction does not exist
// Error: 500 Internal Server Error if deletion fails
func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	transactionID := chi.URLParam(r, "transactionId")

	found, err := h.transactionService.DeleteTransaction(name, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPortfolioNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPortfolioNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete transaction", err.Error())
		return
	}
	if !found {
		response.RespondError(w, http.StatusNotFound, apperrors.ErrTransactionNotFound.Error(), transactionID)
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
