package application

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"github.com/sebuszqo/ExpenseTracker/internal/events"
	"github.com/sebuszqo/ExpenseTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/ExpenseTracker/internal/finance/errors"
	"github.com/shopspring/decimal"
	"log/slog"
	"strings"
	"time"
)

type CreateTransactionInput struct {
	Description string
	Amount      decimal.Decimal
	Kind        domain.Kind
	CategoryID  uuid.UUID
	PersonID    uuid.UUID
}

type TransactionService struct {
	repo         domain.TransactionRepository
	personRepo   domain.PersonRepository
	categoryRepo domain.CategoryRepository
	publisher    EventPublisher
}

func NewTransactionService(
	repo domain.TransactionRepository,
	personRepo domain.PersonRepository,
	categoryRepo domain.CategoryRepository,
	publisher EventPublisher,
) *TransactionService {
	return &TransactionService{
		repo:         repo,
		personRepo:   personRepo,
		categoryRepo: categoryRepo,
		publisher:    publisher,
	}
}

// CreateTransaction checks the input shape, then that the person and category exist, then the
// business rules. Nothing is stored unless every check passes.
func (s *TransactionService) CreateTransaction(ctx context.Context, input CreateTransactionInput) (*TransactionView, error) {
	newTx := domain.NewTransaction{
		Description: strings.TrimSpace(input.Description),
		Amount:      input.Amount,
		Kind:        input.Kind,
		PersonID:    input.PersonID,
		CategoryID:  input.CategoryID,
	}
	newTx.RoundAmount()
	if err := domain.ValidateTransactionInput(newTx); err != nil {
		return nil, err
	}

	person, err := s.personRepo.FindByID(ctx, newTx.PersonID)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, financeErrors.NewNotFoundError("Person", newTx.PersonID.String())
	}

	category, err := s.categoryRepo.FindByID(ctx, newTx.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, financeErrors.NewNotFoundError("Category", newTx.CategoryID.String())
	}

	if err := domain.ValidateTransactionCreate(*person, *category, newTx.Kind, newTx.Amount); err != nil {
		slog.WarnContext(ctx, "Transaction rejected",
			"person_id", person.ID,
			"category_id", category.ID,
			"kind", newTx.Kind,
			"reason", err.Error())
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate transaction id: %w", err)
	}
	transaction := domain.Transaction{
		ID:          id,
		Description: newTx.Description,
		Amount:      newTx.Amount,
		Kind:        newTx.Kind,
		PersonID:    person.ID,
		CategoryID:  category.ID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, transaction); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Transaction created",
		"transaction_id", transaction.ID,
		"person_id", person.ID,
		"kind", transaction.Kind)

	view := newTransactionView(domain.TransactionDetails{
		Transaction:         transaction,
		PersonName:          person.Name,
		CategoryDescription: category.Description,
	})
	publish(ctx, s.publisher, events.TransactionCreated, view)
	return &view, nil
}

func (s *TransactionService) ListTransactions(ctx context.Context) ([]TransactionView, error) {
	transactions, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return newTransactionViews(transactions), nil
}

// ListTransactionsByPerson returns an empty list for an unknown person.
func (s *TransactionService) ListTransactionsByPerson(ctx context.Context, personID uuid.UUID) ([]TransactionView, error) {
	transactions, err := s.repo.FindByPerson(ctx, personID)
	if err != nil {
		return nil, err
	}
	return newTransactionViews(transactions), nil
}

func newTransactionViews(transactions []domain.TransactionDetails) []TransactionView {
	views := make([]TransactionView, 0, len(transactions))
	for _, t := range transactions {
		views = append(views, newTransactionView(t))
	}
	return views
}
