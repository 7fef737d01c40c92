package interfaces

import (
	"context"
	"github.com/sebuszqo/ExpenseTracker/internal/finance/application"
	"net/http"
)

type ReportServiceInterface interface {
	ReportByPerson(ctx context.Context) (*application.PersonReportView, error)
	ReportByCategory(ctx context.Context) (*application.CategoryReportView, error)
	Summary(ctx context.Context) (*application.SummaryView, error)
}

type ReportHandler struct {
	service      ReportServiceInterface
	respondJSON  JSONResponder
	respondError ErrorResponder
}

func NewReportHandler(service ReportServiceInterface, respondJSON JSONResponder, respondError ErrorResponder) *ReportHandler {
	mustHaveDependencies(service, respondJSON, respondError)
	return &ReportHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *ReportHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("GET /api/reports/by-person", http.HandlerFunc(h.ReportByPerson))
	mux.Handle("GET /api/reports/by-category", http.HandlerFunc(h.ReportByCategory))
	mux.Handle("GET /api/reports/summary", http.HandlerFunc(h.Summary))
}

func (h *ReportHandler) ReportByPerson(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.ReportByPerson(r.Context())
	if err != nil {
		writeServiceError(w, r, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, success("Report by person generated successfully.", report))
}

func (h *ReportHandler) ReportByCategory(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.ReportByCategory(r.Context())
	if err != nil {
		writeServiceError(w, r, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, success("Report by category generated successfully.", report))
}

func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		writeServiceError(w, r, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, success("Summary generated successfully.", summary))
}
