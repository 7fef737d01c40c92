package infrastructure

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/sebuszqo/ExpenseTracker/internal/finance/domain"
	"github.com/shopspring/decimal"
)

type PersonRepository struct {
	db *sql.DB
}

func NewPersonRepository(db *sql.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

func (r *PersonRepository) Create(ctx context.Context, person domain.Person) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO persons (id, name, age, created_at) VALUES ($1, $2, $3, $4)`,
		person.ID, person.Name, person.Age, person.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("could not create person: %w", err)
	}
	return nil
}

func (r *PersonRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Person, error) {
	var person domain.Person
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, age, created_at FROM persons WHERE id = $1`, id,
	).Scan(&person.ID, &person.Name, &person.Age, &person.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not find person: %w", err)
	}
	return &person, nil
}

func (r *PersonRepository) FindAll(ctx context.Context) ([]domain.Person, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, age, created_at FROM persons ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("could not list persons: %w", err)
	}
	defer rows.Close()

	persons := make([]domain.Person, 0)
	for rows.Next() {
		var person domain.Person
		if err := rows.Scan(&person.ID, &person.Name, &person.Age, &person.CreatedAt); err != nil {
			return nil, fmt.Errorf("could not scan person: %w", err)
		}
		persons = append(persons, person)
	}
	return persons, rows.Err()
}

func (r *PersonRepository) FindAllWithTransactions(ctx context.Context) ([]domain.PersonWithTransactions, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.age, p.created_at,
		       t.id, t.description, t.amount, t.kind, t.category_id, t.created_at
		FROM persons p
		LEFT JOIN transactions t ON t.person_id = p.id
		ORDER BY p.name, p.id, t.created_at, t.id`)
	if err != nil {
		return nil, fmt.Errorf("could not list persons with transactions: %w", err)
	}
	defer rows.Close()

	result := make([]domain.PersonWithTransactions, 0)
	for rows.Next() {
		var (
			person domain.Person
			tx     joinedTransaction
		)
		if err := rows.Scan(&person.ID, &person.Name, &person.Age, &person.CreatedAt,
			&tx.ID, &tx.Description, &tx.Amount, &tx.Kind, &tx.OwnerID, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("could not scan person transaction: %w", err)
		}

		if len(result) == 0 || result[len(result)-1].ID != person.ID {
			result = append(result, domain.PersonWithTransactions{Person: person, Transactions: []domain.Transaction{}})
		}
		if tx.ID.Valid {
			last := &result[len(result)-1]
			t := tx.toTransaction()
			t.PersonID = person.ID
			t.CategoryID = tx.OwnerID.UUID
			last.Transactions = append(last.Transactions, t)
		}
	}
	return result, rows.Err()
}

func (r *PersonRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM persons WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("could not delete person: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not delete person: %w", err)
	}
	return affected > 0, nil
}

func (r *PersonRepository) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, "persons")
}

// joinedTransaction holds the nullable side of a LEFT JOIN on transactions.
// OwnerID is whichever reference the query selected besides the joined parent.
type joinedTransaction struct {
	ID          uuid.NullUUID
	Description sql.NullString
	Amount      decimal.NullDecimal
	Kind        sql.NullString
	OwnerID     uuid.NullUUID
	CreatedAt   sql.NullTime
}

func (j joinedTransaction) toTransaction() domain.Transaction {
	return domain.Transaction{
		ID:          j.ID.UUID,
		Description: j.Description.String,
		Amount:      j.Amount.Decimal,
		Kind:        domain.Kind(j.Kind.String),
		CreatedAt:   j.CreatedAt.Time,
	}
}

func count(ctx context.Context, db *sql.DB, table string) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("could not count %s: %w", table, err)
	}
	return n, nil
}
