package interfaces

import (
	"context"
	"encoding/json"
	"github.com/google/uuid"
	"github.com/sebuszqo/ExpenseTracker/internal/finance/application"
	"github.com/sebuszqo/ExpenseTracker/internal/finance/domain"
	"net/http"
)

type CategoryServiceInterface interface {
	CreateCategory(ctx context.Context, description string, purpose domain.Purpose) (*application.CategoryView, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*application.CategoryView, error)
	ListCategories(ctx context.Context) ([]application.CategoryView, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) (bool, error)
}

type CategoryHandler struct {
	service      CategoryServiceInterface
	respondJSON  JSONResponder
	respondError ErrorResponder
}

func NewCategoryHandler(service CategoryServiceInterface, respondJSON JSONResponder, respondError ErrorResponder) *CategoryHandler {
	mustHaveDependencies(service, respondJSON, respondError)
	return &CategoryHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *CategoryHandler) RegisterRoutes(mux *http.ServeMux) {
	withID := PathUUIDMiddleware(h.respondError, "id", "Category")
	mux.Handle("POST /api/categories", http.HandlerFunc(h.CreateCategory))
	mux.Handle("GET /api/categories", http.HandlerFunc(h.ListCategories))
	mux.Handle("GET /api/categories/{id}", withID(http.HandlerFunc(h.GetCategory)))
	mux.Handle("DELETE /api/categories/{id}", withID(http.HandlerFunc(h.DeleteCategory)))
}

type createCategoryRequest struct {
	Description string         `json:"description"`
	Purpose     domain.Purpose `json:"purpose"`
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.CreateCategory(r.Context(), req.Description, req.Purpose)
	if err != nil {
		writeServiceError(w, r, h.respondError, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, success("Category created successfully.", category))
}

func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		writeServiceError(w, r, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, success("Categories retrieved successfully.", categories))
}

func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.service.GetCategory(r.Context(), pathUUID(r, "id"))
	if err != nil {
		writeServiceError(w, r, h.respondError, err)
		return
	}
	if category == nil {
		h.respondError(w, http.StatusNotFound, "Category not found")
		return
	}
	h.respondJSON(w, http.StatusOK, success("Category retrieved successfully.", category))
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.service.DeleteCategory(r.Context(), pathUUID(r, "id"))
	if err != nil {
		writeServiceError(w, r, h.respondError, err)
		return
	}
	if !deleted {
		h.respondError(w, http.StatusNotFound, "Category not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
