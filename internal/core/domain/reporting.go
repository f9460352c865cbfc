package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodTrend compares a month's total against the immediately preceding
// month.
type PeriodTrend struct {
	ReferenceMonth   time.Time       `json:"referenceMonth"` // First day of the analyzed month
	CurrentTotal     Money           `json:"currentTotal"`
	PreviousTotal    Money           `json:"previousTotal"`
	ChangePercentage decimal.Decimal `json:"changePercentage"` // Half-up, 2 decimal places
}

// HasIncreased reports whether the current month is above the previous one.
func (t PeriodTrend) HasIncreased() bool {
	return t.CurrentTotal.GreaterThan(t.PreviousTotal)
}

// HasDecreased reports whether the current month is below the previous one.
func (t PeriodTrend) HasDecreased() bool {
	return t.PreviousTotal.GreaterThan(t.CurrentTotal)
}

// AbsoluteChange returns |current - previous| as a Money.
func (t PeriodTrend) AbsoluteChange() Money {
	diff := t.CurrentTotal.Decimal().Sub(t.PreviousTotal.Decimal()).Abs()
	return Money{value: diff}
}

// CategoryShare is a category's slice of a period total.
type CategoryShare struct {
	Category   Category        `json:"category"`
	Total      Money           `json:"total"`
	Percentage decimal.Decimal `json:"percentage"` // Of the period total, half-up, 2 decimal places
}

// BudgetUtilization reports actual spend against a budget limit for a period.
type BudgetUtilization struct {
	BudgetLimit           Money           `json:"budgetLimit"`
	ActualSpending        Money           `json:"actualSpending"`
	UtilizationPercentage decimal.Decimal `json:"utilizationPercentage"` // Half-up, 2 decimal places; 100 when the limit is zero
	IsOverBudget          bool            `json:"isOverBudget"`
	Remaining             Money           `json:"remaining"` // max(limit - actual, 0)
	Overspend             Money           `json:"overspend"` // actual - limit when over budget, else 0
}
