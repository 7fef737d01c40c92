package infrastructure

import (
	"errors"
	"github.com/jackc/pgx/v5/pgconn"
)

const foreignKeyViolation = "23503"

const (
	transactionPersonFK   = "transactions_person_id_fkey"
	transactionCategoryFK = "transactions_category_id_fkey"
)

// foreignKeyConstraint returns the violated constraint name when err is a foreign key violation.
func foreignKeyConstraint(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}
