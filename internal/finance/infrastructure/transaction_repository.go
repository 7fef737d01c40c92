package infrastructure

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/google/uuid"
	"github.com/sebuszqo/ExpenseTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/ExpenseTracker/internal/finance/errors"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

const selectTransactionDetails = `
	SELECT t.id, t.description, t.amount, t.kind, t.person_id, t.category_id, t.created_at,
	       p.name, c.description
	FROM transactions t
	JOIN persons p ON p.id = t.person_id
	JOIN categories c ON c.id = t.category_id`

// Create inserts the transaction. A person or category removed after the service looked it up
// surfaces as a NotFoundError through the foreign keys.
func (r *TransactionRepository) Create(ctx context.Context, transaction domain.Transaction) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (id, description, amount, kind, person_id, category_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		transaction.ID, transaction.Description, transaction.Amount, string(transaction.Kind),
		transaction.PersonID, transaction.CategoryID, transaction.CreatedAt,
	)
	if err != nil {
		switch constraint, _ := foreignKeyConstraint(err); constraint {
		case transactionPersonFK:
			return financeErrors.NewNotFoundError("Person", transaction.PersonID.String())
		case transactionCategoryFK:
			return financeErrors.NewNotFoundError("Category", transaction.CategoryID.String())
		}
		return fmt.Errorf("could not create transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepository) FindAll(ctx context.Context) ([]domain.TransactionDetails, error) {
	return r.query(ctx, selectTransactionDetails+` ORDER BY t.created_at DESC, t.id DESC`)
}

func (r *TransactionRepository) FindByPerson(ctx context.Context, personID uuid.UUID) ([]domain.TransactionDetails, error) {
	return r.query(ctx, selectTransactionDetails+` WHERE t.person_id = $1 ORDER BY t.created_at DESC, t.id DESC`, personID)
}

func (r *TransactionRepository) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, "transactions")
}

func (r *TransactionRepository) query(ctx context.Context, query string, args ...any) ([]domain.TransactionDetails, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("could not list transactions: %w", err)
	}
	defer rows.Close()

	transactions := make([]domain.TransactionDetails, 0)
	for rows.Next() {
		var (
			t    domain.TransactionDetails
			kind string
		)
		if err := rows.Scan(&t.ID, &t.Description, &t.Amount, &kind, &t.PersonID, &t.CategoryID, &t.CreatedAt,
			&t.PersonName, &t.CategoryDescription); err != nil {
			return nil, fmt.Errorf("could not scan transaction: %w", err)
		}
		t.Kind = domain.Kind(kind)
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}
