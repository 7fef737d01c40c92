package infrastructure

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/sebuszqo/ExpenseTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/ExpenseTracker/internal/finance/errors"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category domain.Category) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (id, description, purpose, created_at) VALUES ($1, $2, $3, $4)`,
		category.ID, category.Description, string(category.Purpose), category.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("could not create category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	var (
		category domain.Category
		purpose  string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, description, purpose, created_at FROM categories WHERE id = $1`, id,
	).Scan(&category.ID, &category.Description, &purpose, &category.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not find category: %w", err)
	}
	category.Purpose = domain.Purpose(purpose)
	return &category, nil
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, description, purpose, created_at FROM categories ORDER BY description, id`)
	if err != nil {
		return nil, fmt.Errorf("could not list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		var (
			category domain.Category
			purpose  string
		)
		if err := rows.Scan(&category.ID, &category.Description, &purpose, &category.CreatedAt); err != nil {
			return nil, fmt.Errorf("could not scan category: %w", err)
		}
		category.Purpose = domain.Purpose(purpose)
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) FindAllWithTransactions(ctx context.Context) ([]domain.CategoryWithTransactions, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.description, c.purpose, c.created_at,
		       t.id, t.description, t.amount, t.kind, t.person_id, t.created_at
		FROM categories c
		LEFT JOIN transactions t ON t.category_id = c.id
		ORDER BY c.description, c.id, t.created_at, t.id`)
	if err != nil {
		return nil, fmt.Errorf("could not list categories with transactions: %w", err)
	}
	defer rows.Close()

	result := make([]domain.CategoryWithTransactions, 0)
	for rows.Next() {
		var (
			category domain.Category
			purpose  string
			tx       joinedTransaction
		)
		if err := rows.Scan(&category.ID, &category.Description, &purpose, &category.CreatedAt,
			&tx.ID, &tx.Description, &tx.Amount, &tx.Kind, &tx.OwnerID, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("could not scan category transaction: %w", err)
		}
		category.Purpose = domain.Purpose(purpose)

		if len(result) == 0 || result[len(result)-1].ID != category.ID {
			result = append(result, domain.CategoryWithTransactions{Category: category, Transactions: []domain.Transaction{}})
		}
		if tx.ID.Valid {
			last := &result[len(result)-1]
			t := tx.toTransaction()
			t.CategoryID = category.ID
			t.PersonID = tx.OwnerID.UUID
			last.Transactions = append(last.Transactions, t)
		}
	}
	return result, rows.Err()
}

func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		if constraint, ok := foreignKeyConstraint(err); ok && constraint == transactionCategoryFK {
			return false, financeErrors.ErrCategoryInUse
		}
		return false, fmt.Errorf("could not delete category: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not delete category: %w", err)
	}
	return affected > 0, nil
}

func (r *CategoryRepository) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, "categories")
}
