package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PersonReportRow struct {
	PersonID   uuid.UUID
	PersonName string
	Totals
}

type PersonReport struct {
	Rows []PersonReportRow
	Totals
}

type CategoryReportRow struct {
	CategoryID          uuid.UUID
	CategoryDescription string
	Totals
}

type CategoryReport struct {
	Rows []CategoryReportRow
	Totals
}

// BuildPersonReport aggregates each person's transactions into a row. Grand totals sum the
// per-row income and expense separately; the balance is derived from those sums.
func BuildPersonReport(persons []PersonWithTransactions) PersonReport {
	report := PersonReport{Rows: make([]PersonReportRow, 0, len(persons))}
	income, expense := decimal.Zero, decimal.Zero
	for _, p := range persons {
		row := PersonReportRow{
			PersonID:   p.ID,
			PersonName: p.Name,
			Totals:     Aggregate(p.Transactions),
		}
		income = income.Add(row.TotalIncome)
		expense = expense.Add(row.TotalExpense)
		report.Rows = append(report.Rows, row)
	}
	report.Totals = NewTotals(income, expense)
	return report
}

func BuildCategoryReport(categories []CategoryWithTransactions) CategoryReport {
	report := CategoryReport{Rows: make([]CategoryReportRow, 0, len(categories))}
	income, expense := decimal.Zero, decimal.Zero
	for _, c := range categories {
		row := CategoryReportRow{
			CategoryID:          c.ID,
			CategoryDescription: c.Description,
			Totals:              Aggregate(c.Transactions),
		}
		income = income.Add(row.TotalIncome)
		expense = expense.Add(row.TotalExpense)
		report.Rows = append(report.Rows, row)
	}
	report.Totals = NewTotals(income, expense)
	return report
}

const (
	StatusPositive = "Positive"
	StatusNegative = "Negative"
)

// BalanceStatus labels a non-negative balance as positive.
func BalanceStatus(balance decimal.Decimal) string {
	if balance.IsNegative() {
		return StatusNegative
	}
	return StatusPositive
}
