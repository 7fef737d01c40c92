package domain

import (
	"context"
	"github.com/google/uuid"
	"time"
)

const MaxCategoryDescriptionLength = 200

// Purpose restricts which transaction kinds a category accepts.
type Purpose string

const (
	PurposeExpense Purpose = "expense"
	PurposeIncome  Purpose = "income"
	PurposeBoth    Purpose = "both"
)

func (p Purpose) IsValid() bool {
	switch p {
	case PurposeExpense, PurposeIncome, PurposeBoth:
		return true
	}
	return false
}

func (p Purpose) Text() string {
	switch p {
	case PurposeExpense:
		return "Expense"
	case PurposeIncome:
		return "Income"
	case PurposeBoth:
		return "Both"
	}
	return ""
}

type Category struct {
	ID          uuid.UUID
	Description string
	Purpose     Purpose
	CreatedAt   time.Time
}

type CategoryWithTransactions struct {
	Category
	Transactions []Transaction
}

type CategoryRepository interface {
	Create(ctx context.Context, category Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindAll(ctx context.Context) ([]Category, error)
	FindAllWithTransactions(ctx context.Context) ([]CategoryWithTransactions, error)
	// Delete fails with ErrCategoryInUse while any transaction references the category.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Count(ctx context.Context) (int, error)
}
