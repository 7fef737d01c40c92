package domain

import (
	financeErrors "github.com/sebuszqo/ExpenseTracker/internal/finance/errors"
	"github.com/shopspring/decimal"
)

// CategoryAccepts reports whether a category with the given purpose may tag a transaction of kind.
func CategoryAccepts(purpose Purpose, kind Kind) bool {
	switch purpose {
	case PurposeBoth:
		return true
	case PurposeExpense:
		return kind == KindExpense
	case PurposeIncome:
		return kind == KindIncome
	}
	return false
}

// ValidateTransactionCreate applies the business rules for a new transaction whose person and
// category are already known to exist. The first broken rule is returned.
func ValidateTransactionCreate(person Person, category Category, kind Kind, amount decimal.Decimal) error {
	if person.IsMinor() && kind == KindIncome {
		return financeErrors.ErrMinorIncome
	}
	if !CategoryAccepts(category.Purpose, kind) {
		return financeErrors.NewCategoryKindMismatchError(category.Description, string(kind))
	}
	if !amount.IsPositive() {
		return financeErrors.ErrInvalidAmount
	}
	return nil
}

type Totals struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
}

func NewTotals(income, expense decimal.Decimal) Totals {
	return Totals{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
	}
}

func Aggregate(transactions []Transaction) Totals {
	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range transactions {
		switch t.Kind {
		case KindIncome:
			income = income.Add(t.Amount)
		case KindExpense:
			expense = expense.Add(t.Amount)
		}
	}
	return NewTotals(income, expense)
}
