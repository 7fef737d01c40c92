package interfaces

import (
	"context"
	"encoding/json"
	"github.com/google/uuid"
	"github.com/sebuszqo/ExpenseTracker/internal/finance/application"
	"github.com/sebuszqo/ExpenseTracker/internal/finance/domain"
	"github.com/shopspring/decimal"
	"net/http"
)

type TransactionServiceInterface interface {
	CreateTransaction(ctx context.Context, input application.CreateTransactionInput) (*application.TransactionView, error)
	ListTransactions(ctx context.Context) ([]application.TransactionView, error)
	ListTransactionsByPerson(ctx context.Context, personID uuid.UUID) ([]application.TransactionView, error)
}

type TransactionHandler struct {
	service      TransactionServiceInterface
	respondJSON  JSONResponder
	respondError ErrorResponder
}

func NewTransactionHandler(service TransactionServiceInterface, respondJSON JSONResponder, respondError ErrorResponder) *TransactionHandler {
	mustHaveDependencies(service, respondJSON, respondError)
	return &TransactionHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *TransactionHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("POST /api/transactions", http.HandlerFunc(h.CreateTransaction))
	mux.Handle("GET /api/transactions", http.HandlerFunc(h.ListTransactions))
	mux.Handle("GET /api/transactions/person/{personId}",
		PathUUIDMiddleware(h.respondError, "personId", "Person")(http.HandlerFunc(h.ListTransactionsByPerson)))
}

// Amount accepts both a JSON number and a quoted decimal string.
type createTransactionRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        domain.Kind     `json:"kind"`
	CategoryID  uuid.UUID       `json:"categoryId"`
	PersonID    uuid.UUID       `json:"personId"`
}

func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	transaction, err := h.service.CreateTransaction(r.Context(), application.CreateTransactionInput{
		Description: req.Description,
		Amount:      req.Amount,
		Kind:        req.Kind,
		CategoryID:  req.CategoryID,
		PersonID:    req.PersonID,
	})
	if err != nil {
		writeServiceError(w, r, h.respondError, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, success("Transaction successfully created.", transaction))
}

func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.service.ListTransactions(r.Context())
	if err != nil {
		writeServiceError(w, r, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, success("Transactions retrieved successfully.", transactions))
}

func (h *TransactionHandler) ListTransactionsByPerson(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.service.ListTransactionsByPerson(r.Context(), pathUUID(r, "personId"))
	if err != nil {
		writeServiceError(w, r, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, success("Transactions retrieved successfully.", transactions))
}
