package domain

import (
	"fmt"
	"github.com/google/uuid"
	financeErrors "github.com/sebuszqo/ExpenseTracker/internal/finance/errors"
	"strings"
	"unicode/utf8"
)

func ValidatePersonInput(name string, age int) error {
	errs := financeErrors.NewFieldErrors()
	validateText(errs, "name", name, MaxPersonNameLength)
	if age < MinPersonAge || age > MaxPersonAge {
		errs.Add("age", fmt.Sprintf("Age must be between %d and %d", MinPersonAge, MaxPersonAge))
	}
	return errs.ErrOrNil()
}

func ValidateCategoryInput(description string, purpose Purpose) error {
	errs := financeErrors.NewFieldErrors()
	validateText(errs, "description", description, MaxCategoryDescriptionLength)
	if !purpose.IsValid() {
		errs.Add("purpose", "Purpose must be 'expense', 'income' or 'both'")
	}
	return errs.ErrOrNil()
}

// ValidateTransactionInput checks the shape of a new transaction. Only the upper amount bound is
// checked here; the sign is a business rule and is left to ValidateTransactionCreate.
func ValidateTransactionInput(t NewTransaction) error {
	errs := financeErrors.NewFieldErrors()
	validateText(errs, "description", t.Description, MaxTransactionDescriptionLength)
	if t.Amount.GreaterThan(MaxAmount) {
		errs.Add("amount", fmt.Sprintf("Amount must be at most %s", MaxAmount.StringFixed(AmountPlaces)))
	}
	if !t.Kind.IsValid() {
		errs.Add("kind", "Kind must be 'expense' or 'income'")
	}
	if t.PersonID == uuid.Nil {
		errs.Add("personId", "Person is required")
	}
	if t.CategoryID == uuid.Nil {
		errs.Add("categoryId", "Category is required")
	}
	return errs.ErrOrNil()
}

func validateText(errs *financeErrors.FieldErrors, field, value string, maxLength int) {
	if strings.TrimSpace(value) == "" {
		errs.Add(field, fmt.Sprintf("%s is required", capitalize(field)))
		return
	}
	if strings.ContainsRune(value, 0) || !utf8.ValidString(value) {
		errs.Add(field, fmt.Sprintf("%s contains invalid characters", capitalize(field)))
		return
	}
	if utf8.RuneCountInString(value) > maxLength {
		errs.Add(field, fmt.Sprintf("%s must be at most %d characters", capitalize(field), maxLength))
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
