package interfaces

import (
	"context"
	"github.com/google/uuid"
	"github.com/sebuszqo/ExpenseTracker/internal/finance/application"
	"github.com/sebuszqo/ExpenseTracker/internal/finance/domain"
)

type MockPersonService struct {
	CreatePersonFunc func(ctx context.Context, name string, age int) (*application.PersonView, error)
	GetPersonFunc    func(ctx context.Context, id uuid.UUID) (*application.PersonView, error)
	ListPersonsFunc  func(ctx context.Context) ([]application.PersonView, error)
	DeletePersonFunc func(ctx context.Context, id uuid.UUID) (bool, error)
}

func (m *MockPersonService) CreatePerson(ctx context.Context, name string, age int) (*application.PersonView, error) {
	return m.CreatePersonFunc(ctx, name, age)
}

func (m *MockPersonService) GetPerson(ctx context.Context, id uuid.UUID) (*application.PersonView, error) {
	return m.GetPersonFunc(ctx, id)
}

func (m *MockPersonService) ListPersons(ctx context.Context) ([]application.PersonView, error) {
	return m.ListPersonsFunc(ctx)
}

func (m *MockPersonService) DeletePerson(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.DeletePersonFunc(ctx, id)
}

type MockCategoryService struct {
	CreateCategoryFunc func(ctx context.Context, description string, purpose domain.Purpose) (*application.CategoryView, error)
	GetCategoryFunc    func(ctx context.Context, id uuid.UUID) (*application.CategoryView, error)
	ListCategoriesFunc func(ctx context.Context) ([]application.CategoryView, error)
	DeleteCategoryFunc func(ctx context.Context, id uuid.UUID) (bool, error)
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, description string, purpose domain.Purpose) (*application.CategoryView, error) {
	return m.CreateCategoryFunc(ctx, description, purpose)
}

func (m *MockCategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*application.CategoryView, error) {
	return m.GetCategoryFunc(ctx, id)
}

func (m *MockCategoryService) ListCategories(ctx context.Context) ([]application.CategoryView, error) {
	return m.ListCategoriesFunc(ctx)
}

func (m *MockCategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.DeleteCategoryFunc(ctx, id)
}

type MockTransactionService struct {
	CreateTransactionFunc        func(ctx context.Context, input application.CreateTransactionInput) (*application.TransactionView, error)
	ListTransactionsFunc         func(ctx context.Context) ([]application.TransactionView, error)
	ListTransactionsByPersonFunc func(ctx context.Context, personID uuid.UUID) ([]application.TransactionView, error)
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, input application.CreateTransactionInput) (*application.TransactionView, error) {
	return m.CreateTransactionFunc(ctx, input)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context) ([]application.TransactionView, error) {
	return m.ListTransactionsFunc(ctx)
}

func (m *MockTransactionService) ListTransactionsByPerson(ctx context.Context, personID uuid.UUID) ([]application.TransactionView, error) {
	return m.ListTransactionsByPersonFunc(ctx, personID)
}

type MockReportService struct {
	ReportByPersonFunc   func(ctx context.Context) (*application.PersonReportView, error)
	ReportByCategoryFunc func(ctx context.Context) (*application.CategoryReportView, error)
	SummaryFunc          func(ctx context.Context) (*application.SummaryView, error)
}

func (m *MockReportService) ReportByPerson(ctx context.Context) (*application.PersonReportView, error) {
	return m.ReportByPersonFunc(ctx)
}

func (m *MockReportService) ReportByCategory(ctx context.Context) (*application.CategoryReportView, error) {
	return m.ReportByCategoryFunc(ctx)
}

func (m *MockReportService) Summary(ctx context.Context) (*application.SummaryView, error) {
	return m.SummaryFunc(ctx)
}
