package domain

import (
	"context"
	"github.com/google/uuid"
	"time"
)

const (
	MaxPersonNameLength = 200
	MinPersonAge        = 1
	MaxPersonAge        = 120
	AdultAge            = 18
)

type Person struct {
	ID        uuid.UUID
	Name      string
	Age       int
	CreatedAt time.Time
}

func (p Person) IsMinor() bool {
	return p.Age < AdultAge
}

type PersonWithTransactions struct {
	Person
	Transactions []Transaction
}

// PersonRepository finders return (nil, nil) when the person does not exist.
type PersonRepository interface {
	Create(ctx context.Context, person Person) error
	FindByID(ctx context.Context, id uuid.UUID) (*Person, error)
	FindAll(ctx context.Context) ([]Person, error)
	// FindAllWithTransactions returns every person, ordered by name, with its transactions.
	FindAllWithTransactions(ctx context.Context) ([]PersonWithTransactions, error)
	// Delete removes the person and, through the foreign key cascade, all of its transactions.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Count(ctx context.Context) (int, error)
}
