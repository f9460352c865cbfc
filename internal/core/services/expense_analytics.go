package services

import (
	"time"

	"github.com/GabrielEVP/cashly-api-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// HighestCategory returns the expense category with the largest total in the
// period together with its share of the period total. When no records match
// it returns a zero-valued share with an empty category. Ties resolve to the
// category first encountered in input order.
func HighestCategory(records []domain.ExpenseRecord, userID string, start, end time.Time) (domain.CategoryShare, error) {
	if err := validatePeriodInputs(records, userID, start, end); err != nil {
		return domain.CategoryShare{}, err
	}

	totals := make(map[domain.Category]decimal.Decimal)
	var order []domain.Category
	periodTotal := decimal.Zero
	for _, record := range records {
		if !matchesPeriod(record, userID, start, end) {
			continue
		}
		category := record.CategoryValue()
		if _, seen := totals[category]; !seen {
			order = append(order, category)
		}
		totals[category] = totals[category].Add(record.Amount.Decimal())
		periodTotal = periodTotal.Add(record.Amount.Decimal())
	}

	if len(order) == 0 {
		return domain.CategoryShare{
			Total:      domain.ZeroMoney(),
			Percentage: decimal.Zero,
		}, nil
	}

	highest := order[0]
	for _, category := range order[1:] {
		if totals[category].GreaterThan(totals[highest]) {
			highest = category
		}
	}

	percentage := decimal.Zero
	if !periodTotal.IsZero() {
		percentage = totals[highest].Mul(hundred).DivRound(periodTotal, 4).Round(2)
	}
	amount, err := domain.NewMoney(totals[highest])
	if err != nil {
		return domain.CategoryShare{}, err
	}
	return domain.CategoryShare{
		Category:   highest,
		Total:      amount,
		Percentage: percentage,
	}, nil
}

// BudgetUtilization computes the user's actual spend in the period against a
// budget limit. A zero limit reports 100% utilization; the remaining amount
// never goes negative.
func BudgetUtilization(records []domain.ExpenseRecord, userID string, start, end time.Time, limit domain.Money) (domain.BudgetUtilization, error) {
	actual, err := TotalForPeriod(records, userID, start, end)
	if err != nil {
		return domain.BudgetUtilization{}, err
	}

	utilization := hundred
	if !limit.IsZero() {
		utilization = actual.Decimal().Mul(hundred).DivRound(limit.Decimal(), 4).Round(2)
	}

	isOver := actual.GreaterThan(limit)
	remaining := domain.ZeroMoney()
	overspend := domain.ZeroMoney()
	if isOver {
		if overspend, err = actual.Subtract(limit); err != nil {
			return domain.BudgetUtilization{}, err
		}
	} else {
		if remaining, err = limit.Subtract(actual); err != nil {
			return domain.BudgetUtilization{}, err
		}
	}

	return domain.BudgetUtilization{
		BudgetLimit:           limit,
		ActualSpending:        actual,
		UtilizationPercentage: utilization,
		IsOverBudget:          isOver,
		Remaining:             remaining,
		Overspend:             overspend,
	}, nil
}
