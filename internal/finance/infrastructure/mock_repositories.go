package infrastructure

import (
	"context"
	"github.com/google/uuid"
	"github.com/sebuszqo/ExpenseTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/ExpenseTracker/internal/finance/errors"
	"sort"
	"sync"
)

// MockStore is an in-memory stand-in for the Postgres schema, including the cascade on person
// delete and the restrict on category delete. Setting Err makes every call fail with it.
type MockStore struct {
	mu           sync.Mutex
	persons      map[uuid.UUID]domain.Person
	categories   map[uuid.UUID]domain.Category
	transactions []domain.Transaction
	Err          error
}

func NewMockStore() *MockStore {
	return &MockStore{
		persons:    make(map[uuid.UUID]domain.Person),
		categories: make(map[uuid.UUID]domain.Category),
	}
}

func (s *MockStore) Persons() *MockPersonRepository {
	return &MockPersonRepository{store: s}
}

func (s *MockStore) Categories() *MockCategoryRepository {
	return &MockCategoryRepository{store: s}
}

func (s *MockStore) Transactions() *MockTransactionRepository {
	return &MockTransactionRepository{store: s}
}

func (s *MockStore) transactionsWhere(match func(domain.Transaction) bool) []domain.Transaction {
	result := []domain.Transaction{}
	for _, t := range s.transactions {
		if match(t) {
			result = append(result, t)
		}
	}
	return result
}

type MockPersonRepository struct {
	store *MockStore
}

func (m *MockPersonRepository) Create(_ context.Context, person domain.Person) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if m.store.Err != nil {
		return m.store.Err
	}
	m.store.persons[person.ID] = person
	return nil
}

func (m *MockPersonRepository) FindByID(_ context.Context, id uuid.UUID) (*domain.Person, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if m.store.Err != nil {
		return nil, m.store.Err
	}
	person, ok := m.store.persons[id]
	if !ok {
		return nil, nil
	}
	return &person, nil
}

func (m *MockPersonRepository) FindAll(_ context.Context) ([]domain.Person, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if m.store.Err != nil {
		return nil, m.store.Err
	}
	return m.sorted(), nil
}

func (m *MockPersonRepository) FindAllWithTransactions(_ context.Context) ([]domain.PersonWithTransactions, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if m.store.Err != nil {
		return nil, m.store.Err
	}
	result := make([]domain.PersonWithTransactions, 0, len(m.store.persons))
	for _, p := range m.sorted() {
		result = append(result, domain.PersonWithTransactions{
			Person: p,
			Transactions: m.store.transactionsWhere(func(t domain.Transaction) bool {
				return t.PersonID == p.ID
			}),
		})
	}
	return result, nil
}

func (m *MockPersonRepository) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if m.store.Err != nil {
		return false, m.store.Err
	}
	if _, ok := m.store.persons[id]; !ok {
		return false, nil
	}
	delete(m.store.persons, id)
	m.store.transactions = m.store.transactionsWhere(func(t domain.Transaction) bool {
		return t.PersonID != id
	})
	return true, nil
}

func (m *MockPersonRepository) Count(_ context.Context) (int, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if m.store.Err != nil {
		return 0, m.store.Err
	}
	return len(m.store.persons), nil
}

func (m *MockPersonRepository) sorted() []domain.Person {
	persons := make([]domain.Person, 0, len(m.store.persons))
	for _, p := range m.store.persons {
		persons = append(persons, p)
	}
	sort.Slice(persons, func(i, j int) bool {
		if persons[i].Name != persons[j].Name {
			return persons[i].Name < persons[j].Name
		}
		return persons[i].ID.String() < persons[j].ID.String()
	})
	return persons
}

type MockCategoryRepository struct {
	store *MockStore
}

func (m *MockCategoryRepository) Create(_ context.Context, category domain.Category) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if m.store.Err != nil {
		return m.store.Err
	}
	m.store.categories[category.ID] = category
	return nil
}

func (m *MockCategoryRepository) FindByID(_ context.Context, id uuid.UUID) (*domain.Category, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if m.store.Err != nil {
		return nil, m.store.Err
	}
	category, ok := m.store.categories[id]
	if !ok {
		return nil, nil
	}
	return &category, nil
}

func (m *MockCategoryRepository) FindAll(_ context.Context) ([]domain.Category, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if m.store.Err != nil {
		return nil, m.store.Err
	}
	return m.sorted(), nil
}

func (m *MockCategoryRepository) FindAllWithTransactions(_ context.Context) ([]domain.CategoryWithTransactions, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if m.store.Err != nil {
		return nil, m.store.Err
	}
	result := make([]domain.CategoryWithTransactions, 0, len(m.store.categories))
	for _, c := range m.sorted() {
		result = append(result, domain.CategoryWithTransactions{
			Category: c,
			Transactions: m.store.transactionsWhere(func(t domain.Transaction) bool {
				return t.CategoryID == c.ID
			}),
		})
	}
	return result, nil
}

func (m *MockCategoryRepository) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if m.store.Err != nil {
		return false, m.store.Err
	}
	if _, ok := m.store.categories[id]; !ok {
		return false, nil
	}
	inUse := m.store.transactionsWhere(func(t domain.Transaction) bool {
		return t.CategoryID == id
	})
	if len(inUse) > 0 {
		return false, financeErrors.ErrCategoryInUse
	}
	delete(m.store.categories, id)
	return true, nil
}

func (m *MockCategoryRepository) Count(_ context.Context) (int, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if m.store.Err != nil {
		return 0, m.store.Err
	}
	return len(m.store.categories), nil
}

func (m *MockCategoryRepository) sorted() []domain.Category {
	categories := make([]domain.Category, 0, len(m.store.categories))
	for _, c := range m.store.categories {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Description != categories[j].Description {
			return categories[i].Description < categories[j].Description
		}
		return categories[i].ID.String() < categories[j].ID.String()
	})
	return categories
}

type MockTransactionRepository struct {
	store *MockStore
}

func (m *MockTransactionRepository) Create(_ context.Context, transaction domain.Transaction) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if m.store.Err != nil {
		return m.store.Err
	}
	if _, ok := m.store.persons[transaction.PersonID]; !ok {
		return financeErrors.NewNotFoundError("Person", transaction.PersonID.String())
	}
	if _, ok := m.store.categories[transaction.CategoryID]; !ok {
		return financeErrors.NewNotFoundError("Category", transaction.CategoryID.String())
	}
	m.store.transactions = append(m.store.transactions, transaction)
	return nil
}

func (m *MockTransactionRepository) FindAll(_ context.Context) ([]domain.TransactionDetails, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if m.store.Err != nil {
		return nil, m.store.Err
	}
	return m.details(m.store.transactions), nil
}

func (m *MockTransactionRepository) FindByPerson(_ context.Context, personID uuid.UUID) ([]domain.TransactionDetails, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if m.store.Err != nil {
		return nil, m.store.Err
	}
	return m.details(m.store.transactionsWhere(func(t domain.Transaction) bool {
		return t.PersonID == personID
	})), nil
}

func (m *MockTransactionRepository) Count(_ context.Context) (int, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if m.store.Err != nil {
		return 0, m.store.Err
	}
	return len(m.store.transactions), nil
}

// details joins names and orders newest first.
func (m *MockTransactionRepository) details(transactions []domain.Transaction) []domain.TransactionDetails {
	result := make([]domain.TransactionDetails, 0, len(transactions))
	for _, t := range transactions {
		result = append(result, domain.TransactionDetails{
			Transaction:         t,
			PersonName:          m.store.persons[t.PersonID].Name,
			CategoryDescription: m.store.categories[t.CategoryID].Description,
		})
	}
	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID.String() > result[j].ID.String()
	})
	return result
}
