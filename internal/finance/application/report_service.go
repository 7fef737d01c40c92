package application

import (
	"context"
	"github.com/sebuszqo/ExpenseTracker/internal/finance/domain"
	"golang.org/x/sync/errgroup"
)

type ReportService struct {
	personRepo   domain.PersonRepository
	categoryRepo domain.CategoryRepository
}

func NewReportService(personRepo domain.PersonRepository, categoryRepo domain.CategoryRepository) *ReportService {
	return &ReportService{
		personRepo:   personRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *ReportService) ReportByPerson(ctx context.Context) (*PersonReportView, error) {
	persons, err := s.personRepo.FindAllWithTransactions(ctx)
	if err != nil {
		return nil, err
	}
	view := newPersonReportView(domain.BuildPersonReport(persons))
	return &view, nil
}

func (s *ReportService) ReportByCategory(ctx context.Context) (*CategoryReportView, error) {
	categories, err := s.categoryRepo.FindAllWithTransactions(ctx)
	if err != nil {
		return nil, err
	}
	view := newCategoryReportView(domain.BuildCategoryReport(categories))
	return &view, nil
}

// Summary takes the person and transaction counts from the same single-statement read that
// produces the totals, so they always agree. The category count is read alongside it and does
// not affect the totals.
func (s *ReportService) Summary(ctx context.Context) (*SummaryView, error) {
	var (
		withTransactions []domain.PersonWithTransactions
		categories       int
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		withTransactions, err = s.personRepo.FindAllWithTransactions(ctx)
		return err
	})
	g.Go(func() (err error) {
		categories, err = s.categoryRepo.Count(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	transactionCount := 0
	for _, p := range withTransactions {
		transactionCount += len(p.Transactions)
	}
	report := domain.BuildPersonReport(withTransactions)

	return &SummaryView{
		TotalPersons:      len(withTransactions),
		TotalCategories:   categories,
		TotalTransactions: transactionCount,
		TotalsView:        newTotalsView(report.Totals),
		Status:            domain.BalanceStatus(report.Balance),
	}, nil
}
