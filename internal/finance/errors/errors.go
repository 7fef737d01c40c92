package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// FieldErrors collects request validation failures keyed by field name.
type FieldErrors struct {
	Fields map[string][]string
}

func NewFieldErrors() *FieldErrors {
	return &FieldErrors{Fields: make(map[string][]string)}
}

func (fe *FieldErrors) Add(field, msg string) {
	fe.Fields[field] = append(fe.Fields[field], msg)
}

func (fe *FieldErrors) HasErrors() bool {
	return len(fe.Fields) > 0
}

func (fe *FieldErrors) Error() string {
	keys := make([]string, 0, len(fe.Fields))
	for k := range fe.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(fe.Fields[k], ", ")))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

// ErrOrNil returns nil when nothing was collected, so callers never get a typed nil error.
func (fe *FieldErrors) ErrOrNil() error {
	if fe == nil || !fe.HasErrors() {
		return nil
	}
	return fe
}

func IsValidationError(err error) bool {
	var fieldErrors *FieldErrors
	return errors.As(err, &fieldErrors)
}

type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Entity, e.ID)
}

func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func IsNotFoundError(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

// BusinessRuleError is returned when well-formed input breaks a domain rule.
// Two errors match under errors.Is when they carry the same Rule.
type BusinessRuleError struct {
	Rule string
	Msg  string
}

func (e *BusinessRuleError) Error() string {
	return e.Msg
}

func (e *BusinessRuleError) Is(target error) bool {
	var other *BusinessRuleError
	if !errors.As(target, &other) {
		return false
	}
	return e.Rule == other.Rule
}

func IsBusinessRuleError(err error) bool {
	var ruleErr *BusinessRuleError
	return errors.As(err, &ruleErr)
}

var (
	ErrMinorIncome = &BusinessRuleError{
		Rule: "minor_income",
		Msg:  "Minors (under 18) may only have expense transactions",
	}
	ErrCategoryKindMismatch = &BusinessRuleError{
		Rule: "category_kind_mismatch",
		Msg:  "Category does not accept this transaction kind",
	}
	ErrInvalidAmount = &BusinessRuleError{
		Rule: "invalid_amount",
		Msg:  "Amount must be greater than zero",
	}
)

func NewCategoryKindMismatchError(categoryDescription, kind string) error {
	return &BusinessRuleError{
		Rule: ErrCategoryKindMismatch.Rule,
		Msg:  fmt.Sprintf("Category '%s' does not accept %s transactions", categoryDescription, kind),
	}
}

var ErrCategoryInUse = errors.New("category has transactions and cannot be deleted")
