package interfaces

import (
	"errors"
	financeErrors "github.com/sebuszqo/ExpenseTracker/internal/finance/errors"
	"log/slog"
	"net/http"
)

// writeServiceError maps the finance error taxonomy onto HTTP statuses. Unrecognised errors are
// logged and hidden behind a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, respondError ErrorResponder, err error) {
	var fieldErrors *financeErrors.FieldErrors
	switch {
	case errors.As(err, &fieldErrors):
		respondError(w, http.StatusBadRequest, "Validation failed", fieldErrors.Fields)
	case financeErrors.IsNotFoundError(err):
		respondError(w, http.StatusNotFound, err.Error())
	case financeErrors.IsBusinessRuleError(err):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, financeErrors.ErrCategoryInUse):
		respondError(w, http.StatusConflict, "Category has transactions and cannot be deleted")
	default:
		slog.ErrorContext(r.Context(), "Request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
