package application

import (
	"github.com/google/uuid"
	"github.com/sebuszqo/ExpenseTracker/internal/finance/domain"
	"github.com/shopspring/decimal"
	"time"
)

type PersonView struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Age     int       `json:"age"`
	IsMinor bool      `json:"isMinor"`
}

type CategoryView struct {
	ID          uuid.UUID      `json:"id"`
	Description string         `json:"description"`
	Purpose     domain.Purpose `json:"purpose"`
	PurposeText string         `json:"purposeText"`
}

type TransactionView struct {
	ID                  uuid.UUID   `json:"id"`
	Description         string      `json:"description"`
	Amount              string      `json:"amount"`
	Kind                domain.Kind `json:"kind"`
	KindText            string      `json:"kindText"`
	CategoryID          uuid.UUID   `json:"categoryId"`
	CategoryDescription string      `json:"categoryDescription"`
	PersonID            uuid.UUID   `json:"personId"`
	PersonName          string      `json:"personName"`
	CreatedAt           time.Time   `json:"createdAt"`
}

type TotalsView struct {
	TotalIncome  string `json:"totalIncome"`
	TotalExpense string `json:"totalExpense"`
	Balance      string `json:"balance"`
}

type PersonReportRowView struct {
	PersonID   uuid.UUID `json:"personId"`
	PersonName string    `json:"personName"`
	TotalsView
}

type PersonReportView struct {
	Rows []PersonReportRowView `json:"rows"`
	TotalsView
}

type CategoryReportRowView struct {
	CategoryID          uuid.UUID `json:"categoryId"`
	CategoryDescription string    `json:"categoryDescription"`
	TotalsView
}

type CategoryReportView struct {
	Rows []CategoryReportRowView `json:"rows"`
	TotalsView
}

type SummaryView struct {
	TotalPersons      int `json:"totalPersons"`
	TotalCategories   int `json:"totalCategories"`
	TotalTransactions int `json:"totalTransactions"`
	TotalsView
	Status string `json:"status"`
}

func money(d decimal.Decimal) string {
	return d.StringFixed(domain.AmountPlaces)
}

func newPersonView(p domain.Person) PersonView {
	return PersonView{ID: p.ID, Name: p.Name, Age: p.Age, IsMinor: p.IsMinor()}
}

func newCategoryView(c domain.Category) CategoryView {
	return CategoryView{ID: c.ID, Description: c.Description, Purpose: c.Purpose, PurposeText: c.Purpose.Text()}
}

func newTransactionView(t domain.TransactionDetails) TransactionView {
	return TransactionView{
		ID:                  t.ID,
		Description:         t.Description,
		Amount:              money(t.Amount),
		Kind:                t.Kind,
		KindText:            t.Kind.Text(),
		CategoryID:          t.CategoryID,
		CategoryDescription: t.CategoryDescription,
		PersonID:            t.PersonID,
		PersonName:          t.PersonName,
		CreatedAt:           t.CreatedAt,
	}
}

func newTotalsView(t domain.Totals) TotalsView {
	return TotalsView{
		TotalIncome:  money(t.TotalIncome),
		TotalExpense: money(t.TotalExpense),
		Balance:      money(t.Balance),
	}
}

func newPersonReportView(r domain.PersonReport) PersonReportView {
	rows := make([]PersonReportRowView, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, PersonReportRowView{
			PersonID:   row.PersonID,
			PersonName: row.PersonName,
			TotalsView: newTotalsView(row.Totals),
		})
	}
	return PersonReportView{Rows: rows, TotalsView: newTotalsView(r.Totals)}
}

func newCategoryReportView(r domain.CategoryReport) CategoryReportView {
	rows := make([]CategoryReportRowView, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, CategoryReportRowView{
			CategoryID:          row.CategoryID,
			CategoryDescription: row.CategoryDescription,
			TotalsView:          newTotalsView(row.Totals),
		})
	}
	return CategoryReportView{Rows: rows, TotalsView: newTotalsView(r.Totals)}
}
