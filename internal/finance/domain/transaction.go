package domain

import (
	"context"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"time"
)

const (
	MaxTransactionDescriptionLength = 500
	AmountPlaces                    = 2
)

// MaxAmount is the largest value the NUMERIC(18,2) amount column holds.
var MaxAmount = decimal.RequireFromString("9999999999999999.99")

type Kind string

const (
	KindExpense Kind = "expense"
	KindIncome  Kind = "income"
)

func (k Kind) IsValid() bool {
	return k == KindExpense || k == KindIncome
}

func (k Kind) Text() string {
	switch k {
	case KindExpense:
		return "Expense"
	case KindIncome:
		return "Income"
	}
	return ""
}

type Transaction struct {
	ID          uuid.UUID
	Description string
	Amount      decimal.Decimal
	Kind        Kind
	PersonID    uuid.UUID
	CategoryID  uuid.UUID
	CreatedAt   time.Time
}

// TransactionDetails is a transaction joined with the names of what it references.
type TransactionDetails struct {
	Transaction
	PersonName          string
	CategoryDescription string
}

type NewTransaction struct {
	Description string
	Amount      decimal.Decimal
	Kind        Kind
	PersonID    uuid.UUID
	CategoryID  uuid.UUID
}

// RoundAmount rounds the amount to cents, the precision the store keeps.
func (t *NewTransaction) RoundAmount() {
	t.Amount = t.Amount.Round(AmountPlaces)
}

type TransactionRepository interface {
	Create(ctx context.Context, transaction Transaction) error
	// FindAll and FindByPerson return newest transactions first.
	FindAll(ctx context.Context) ([]TransactionDetails, error)
	FindByPerson(ctx context.Context, personID uuid.UUID) ([]TransactionDetails, error)
	Count(ctx context.Context) (int, error)
}
