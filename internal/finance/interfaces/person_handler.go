package interfaces

import (
	"context"
	"encoding/json"
	"github.com/google/uuid"
	"github.com/sebuszqo/ExpenseTracker/internal/finance/application"
	"net/http"
)

type PersonServiceInterface interface {
	CreatePerson(ctx context.Context, name string, age int) (*application.PersonView, error)
	GetPerson(ctx context.Context, id uuid.UUID) (*application.PersonView, error)
	ListPersons(ctx context.Context) ([]application.PersonView, error)
	DeletePerson(ctx context.Context, id uuid.UUID) (bool, error)
}

type PersonHandler struct {
	service      PersonServiceInterface
	respondJSON  JSONResponder
	respondError ErrorResponder
}

func NewPersonHandler(service PersonServiceInterface, respondJSON JSONResponder, respondError ErrorResponder) *PersonHandler {
	mustHaveDependencies(service, respondJSON, respondError)
	return &PersonHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *PersonHandler) RegisterRoutes(mux *http.ServeMux) {
	withID := PathUUIDMiddleware(h.respondError, "id", "Person")
	mux.Handle("POST /api/persons", http.HandlerFunc(h.CreatePerson))
	mux.Handle("GET /api/persons", http.HandlerFunc(h.ListPersons))
	mux.Handle("GET /api/persons/{id}", withID(http.HandlerFunc(h.GetPerson)))
	mux.Handle("DELETE /api/persons/{id}", withID(http.HandlerFunc(h.DeletePerson)))
}

type createPersonRequest struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func (h *PersonHandler) CreatePerson(w http.ResponseWriter, r *http.Request) {
	var req createPersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	person, err := h.service.CreatePerson(r.Context(), req.Name, req.Age)
	if err != nil {
		writeServiceError(w, r, h.respondError, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, success("Person created successfully.", person))
}

func (h *PersonHandler) ListPersons(w http.ResponseWriter, r *http.Request) {
	persons, err := h.service.ListPersons(r.Context())
	if err != nil {
		writeServiceError(w, r, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, success("Persons retrieved successfully.", persons))
}

func (h *PersonHandler) GetPerson(w http.ResponseWriter, r *http.Request) {
	person, err := h.service.GetPerson(r.Context(), pathUUID(r, "id"))
	if err != nil {
		writeServiceError(w, r, h.respondError, err)
		return
	}
	if person == nil {
		h.respondError(w, http.StatusNotFound, "Person not found")
		return
	}
	h.respondJSON(w, http.StatusOK, success("Person retrieved successfully.", person))
}

func (h *PersonHandler) DeletePerson(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.service.DeletePerson(r.Context(), pathUUID(r, "id"))
	if err != nil {
		writeServiceError(w, r, h.respondError, err)
		return
	}
	if !deleted {
		h.respondError(w, http.StatusNotFound, "Person not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
