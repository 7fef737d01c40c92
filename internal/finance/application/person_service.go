package application

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"github.com/sebuszqo/ExpenseTracker/internal/events"
	"github.com/sebuszqo/ExpenseTracker/internal/finance/domain"
	"log/slog"
	"strings"
	"time"
)

type PersonService struct {
	repo      domain.PersonRepository
	publisher EventPublisher
}

func NewPersonService(repo domain.PersonRepository, publisher EventPublisher) *PersonService {
	return &PersonService{repo: repo, publisher: publisher}
}

func (s *PersonService) CreatePerson(ctx context.Context, name string, age int) (*PersonView, error) {
	name = strings.TrimSpace(name)
	if err := domain.ValidatePersonInput(name, age); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate person id: %w", err)
	}
	person := domain.Person{ID: id, Name: name, Age: age, CreatedAt: time.Now().UTC()}
	if err := s.repo.Create(ctx, person); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Person created", "person_id", person.ID)
	view := newPersonView(person)
	publish(ctx, s.publisher, events.PersonCreated, view)
	return &view, nil
}

// GetPerson returns nil without an error when the person does not exist.
func (s *PersonService) GetPerson(ctx context.Context, id uuid.UUID) (*PersonView, error) {
	person, err := s.repo.FindByID(ctx, id)
	if err != nil || person == nil {
		return nil, err
	}
	view := newPersonView(*person)
	return &view, nil
}

func (s *PersonService) ListPersons(ctx context.Context) ([]PersonView, error) {
	persons, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]PersonView, 0, len(persons))
	for _, p := range persons {
		views = append(views, newPersonView(p))
	}
	return views, nil
}

// DeletePerson removes the person together with all of their transactions.
func (s *PersonService) DeletePerson(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil || !deleted {
		return false, err
	}
	slog.InfoContext(ctx, "Person deleted", "person_id", id)
	publish(ctx, s.publisher, events.PersonDeleted, map[string]uuid.UUID{"id": id})
	return true, nil
}
