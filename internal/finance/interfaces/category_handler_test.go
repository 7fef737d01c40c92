package interfaces

import (
	"context"
	"github.com/google/uuid"
	"github.com/sebuszqo/ExpenseTracker/internal/finance/application"
	"github.com/sebuszqo/ExpenseTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/ExpenseTracker/internal/finance/errors"
	"github.com/stretchr/testify/assert"
	"net/http"
	"testing"
)

func TestCreateCategoryHandler(t *testing.T) {
	var gotPurpose domain.Purpose
	service := &MockCategoryService{
		CreateCategoryFunc: func(_ context.Context, description string, purpose domain.Purpose) (*application.CategoryView, error) {
			gotPurpose = purpose
			return &application.CategoryView{ID: uuid.New(), Description: description, Purpose: purpose, PurposeText: purpose.Text()}, nil
		},
	}
	handler := NewCategoryHandler(service, RespondJSON, RespondError)

	w := serve(t, handler, http.MethodPost, "/api/categories", `{"description":"Mesada","purpose":"both"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, domain.PurposeBoth, gotPurpose)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "Mesada", data["description"])
	assert.Equal(t, "both", data["purpose"])
	assert.Equal(t, "Both", data["purposeText"])
}

func TestGetCategoryHandler_Missing(t *testing.T) {
	service := &MockCategoryService{
		GetCategoryFunc: func(_ context.Context, _ uuid.UUID) (*application.CategoryView, error) {
			return nil, nil
		},
	}
	handler := NewCategoryHandler(service, RespondJSON, RespondError)

	w := serve(t, handler, http.MethodGet, "/api/categories/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(t, handler, http.MethodGet, "/api/categories/42", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Category not found", decodeBody(t, w)["message"])
}

func TestListCategoriesHandler(t *testing.T) {
	service := &MockCategoryService{
		ListCategoriesFunc: func(_ context.Context) ([]application.CategoryView, error) {
			return []application.CategoryView{}, nil
		},
	}
	handler := NewCategoryHandler(service, RespondJSON, RespondError)

	w := serve(t, handler, http.MethodGet, "/api/categories", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{}, decodeBody(t, w)["data"])
}

func TestDeleteCategoryHandler(t *testing.T) {
	inUse := uuid.New()
	unused := uuid.New()
	service := &MockCategoryService{
		DeleteCategoryFunc: func(_ context.Context, id uuid.UUID) (bool, error) {
			switch id {
			case inUse:
				return false, financeErrors.ErrCategoryInUse
			case unused:
				return true, nil
			}
			return false, nil
		},
	}
	handler := NewCategoryHandler(service, RespondJSON, RespondError)

	w := serve(t, handler, http.MethodDelete, "/api/categories/"+unused.String(), "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = serve(t, handler, http.MethodDelete, "/api/categories/"+inUse.String(), "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, float64(http.StatusConflict), decodeBody(t, w)["code"])

	w = serve(t, handler, http.MethodDelete, "/api/categories/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
