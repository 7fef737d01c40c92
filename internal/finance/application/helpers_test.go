package application

import (
	"context"
	"errors"
	"github.com/sebuszqo/ExpenseTracker/internal/events"
	"github.com/sebuszqo/ExpenseTracker/internal/finance/infrastructure"
	"sync"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) types() []events.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]events.Type, 0, len(p.events))
	for _, e := range p.events {
		types = append(types, e.Type)
	}
	return types
}

var errDatabaseDown = errors.New("database down")

type testServices struct {
	store        *infrastructure.MockStore
	publisher    *recordingPublisher
	persons      *PersonService
	categories   *CategoryService
	transactions *TransactionService
	reports      *ReportService
}

func newTestServices() *testServices {
	store := infrastructure.NewMockStore()
	publisher := &recordingPublisher{}
	return &testServices{
		store:        store,
		publisher:    publisher,
		persons:      NewPersonService(store.Persons(), publisher),
		categories:   NewCategoryService(store.Categories(), publisher),
		transactions: NewTransactionService(store.Transactions(), store.Persons(), store.Categories(), publisher),
		reports:      NewReportService(store.Persons(), store.Categories()),
	}
}
