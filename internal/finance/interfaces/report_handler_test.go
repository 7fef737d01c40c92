package interfaces

import (
	"context"
	"github.com/google/uuid"
	"github.com/sebuszqo/ExpenseTracker/internal/finance/application"
	"github.com/stretchr/testify/assert"
	"net/http"
	"testing"
)

func newMockReportService() *MockReportService {
	totals := application.TotalsView{TotalIncome: "110.00", TotalExpense: "40.00", Balance: "70.00"}
	return &MockReportService{
		ReportByPersonFunc: func(_ context.Context) (*application.PersonReportView, error) {
			return &application.PersonReportView{
				Rows:       []application.PersonReportRowView{{PersonID: uuid.New(), PersonName: "Ana", TotalsView: totals}},
				TotalsView: totals,
			}, nil
		},
		ReportByCategoryFunc: func(_ context.Context) (*application.CategoryReportView, error) {
			return &application.CategoryReportView{
				Rows:       []application.CategoryReportRowView{{CategoryID: uuid.New(), CategoryDescription: "Mesada", TotalsView: totals}},
				TotalsView: totals,
			}, nil
		},
		SummaryFunc: func(_ context.Context) (*application.SummaryView, error) {
			return &application.SummaryView{
				TotalPersons:      1,
				TotalCategories:   1,
				TotalTransactions: 3,
				TotalsView:        totals,
				Status:            "Positive",
			}, nil
		},
	}
}

func TestReportByPersonHandler(t *testing.T) {
	handler := NewReportHandler(newMockReportService(), RespondJSON, RespondError)

	w := serve(t, handler, http.MethodGet, "/api/reports/by-person", "")

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "70.00", data["balance"])
	rows := data["rows"].([]interface{})
	row := rows[0].(map[string]interface{})
	assert.Equal(t, "Ana", row["personName"])
	assert.Equal(t, "110.00", row["totalIncome"])
}

func TestReportByCategoryHandler(t *testing.T) {
	handler := NewReportHandler(newMockReportService(), RespondJSON, RespondError)

	w := serve(t, handler, http.MethodGet, "/api/reports/by-category", "")

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	row := data["rows"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "Mesada", row["categoryDescription"])
	assert.Contains(t, row, "categoryId")
}

func TestSummaryHandler(t *testing.T) {
	handler := NewReportHandler(newMockReportService(), RespondJSON, RespondError)

	w := serve(t, handler, http.MethodGet, "/api/reports/summary", "")

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["totalTransactions"])
	assert.Equal(t, "Positive", data["status"])
	assert.Equal(t, "40.00", data["totalExpense"])
}

func TestSummaryHandler_Failure(t *testing.T) {
	service := newMockReportService()
	service.SummaryFunc = func(_ context.Context) (*application.SummaryView, error) {
		return nil, assert.AnError
	}
	handler := NewReportHandler(service, RespondJSON, RespondError)

	w := serve(t, handler, http.MethodGet, "/api/reports/summary", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
