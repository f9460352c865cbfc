// Package services holds the domain services of the bookkeeping core: the
// period analytics engine and the transaction integrity validator. Analytics
// functions are pure: they take an already-loaded record collection, perform
// no I/O and never mutate their inputs, so they are safe to call concurrently
// over distinct collections.
package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/GabrielEVP/cashly-api-sub001/internal/apperrors"
	"github.com/GabrielEVP/cashly-api-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// TotalForPeriod sums the amounts of the user's records dated within
// [start, end], inclusive on both ends. Records owned by other users or
// outside the range never contribute. An empty match yields zero.
func TotalForPeriod[R domain.PeriodRecord](records []R, userID string, start, end time.Time) (domain.Money, error) {
	if err := validatePeriodInputs(records, userID, start, end); err != nil {
		return domain.Money{}, err
	}
	total := domain.ZeroMoney()
	for _, record := range records {
		if matchesPeriod(record, userID, start, end) {
			total = total.Add(record.AmountValue())
		}
	}
	return total, nil
}

// TotalsByCategory groups the user's records in [start, end] by category,
// summing amounts per category. Categories with no matching records are
// absent from the result.
func TotalsByCategory[R domain.PeriodRecord](records []R, userID string, start, end time.Time) (map[domain.Category]domain.Money, error) {
	if err := validatePeriodInputs(records, userID, start, end); err != nil {
		return nil, err
	}
	totals := make(map[domain.Category]domain.Money)
	for _, record := range records {
		if !matchesPeriod(record, userID, start, end) {
			continue
		}
		category := record.CategoryValue()
		current, ok := totals[category]
		if !ok {
			current = domain.ZeroMoney()
		}
		totals[category] = current.Add(record.AmountValue())
	}
	return totals, nil
}

// CategoryPercentages computes each category's share of the period total,
// rounded half-up to 2 decimal places at 4-decimal intermediate precision.
// When the period total is zero every present category maps to zero.
func CategoryPercentages[R domain.PeriodRecord](records []R, userID string, start, end time.Time) (map[domain.Category]decimal.Decimal, error) {
	totals, err := TotalsByCategory(records, userID, start, end)
	if err != nil {
		return nil, err
	}
	periodTotal := decimal.Zero
	for _, amount := range totals {
		periodTotal = periodTotal.Add(amount.Decimal())
	}
	percentages := make(map[domain.Category]decimal.Decimal, len(totals))
	for category, amount := range totals {
		if periodTotal.IsZero() {
			percentages[category] = decimal.Zero
			continue
		}
		percentages[category] = amount.Decimal().Mul(hundred).DivRound(periodTotal, 4).Round(2)
	}
	return percentages, nil
}

// MonthlyAverage averages the user's total over the given number of months
// ending with the reference date's month, rounded half-up to 2 decimal
// places. The window runs from the first day of the earliest month to the
// last instant of the reference month.
func MonthlyAverage[R domain.PeriodRecord](records []R, userID string, months int, reference time.Time) (domain.Money, error) {
	if months <= 0 {
		return domain.Money{}, fmt.Errorf("%w: months must be positive, got %d", apperrors.ErrValidation, months)
	}
	start := startOfMonth(reference).AddDate(0, -(months - 1), 0)
	end := endOfMonth(reference)
	total, err := TotalForPeriod(records, userID, start, end)
	if err != nil {
		return domain.Money{}, err
	}
	average := total.Decimal().DivRound(decimal.NewFromInt(int64(months)), 2)
	return domain.NewMoney(average)
}

// TrendForMonth compares the user's total for the given month against the
// immediately preceding month. The change percentage is half-up at 2 decimal
// places; a zero previous total yields 0 when the current total is also zero
// and 100 otherwise.
func TrendForMonth[R domain.PeriodRecord](records []R, userID string, month time.Time) (domain.PeriodTrend, error) {
	currentStart := startOfMonth(month)
	previousStart := currentStart.AddDate(0, -1, 0)

	current, err := TotalForPeriod(records, userID, currentStart, endOfMonth(currentStart))
	if err != nil {
		return domain.PeriodTrend{}, err
	}
	previous, err := TotalForPeriod(records, userID, previousStart, endOfMonth(previousStart))
	if err != nil {
		return domain.PeriodTrend{}, err
	}

	return domain.PeriodTrend{
		ReferenceMonth:   currentStart,
		CurrentTotal:     current,
		PreviousTotal:    previous,
		ChangePercentage: changePercentage(current.Decimal(), previous.Decimal()),
	}, nil
}

func changePercentage(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.IsZero() {
			return decimal.Zero
		}
		return hundred
	}
	return current.Sub(previous).Mul(hundred).DivRound(previous, 4).Round(2)
}

// ExceedsThreshold reports whether amount is strictly greater than the user's
// average scaled by multiplier. It backs both excessive-expense and
// significant-income checks; the multiplier must be strictly positive.
func ExceedsThreshold(amount, average domain.Money, multiplier decimal.Decimal) (bool, error) {
	if !multiplier.IsPositive() {
		return false, fmt.Errorf("%w: threshold multiplier must be positive, got %s", apperrors.ErrValidation, multiplier.String())
	}
	return amount.Decimal().GreaterThan(average.Decimal().Mul(multiplier)), nil
}

func validatePeriodInputs[R domain.PeriodRecord](records []R, userID string, start, end time.Time) error {
	if records == nil {
		return fmt.Errorf("%w: records list is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("%w: user ID is required", apperrors.ErrValidation)
	}
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", apperrors.ErrValidation)
	}
	if start.After(end) {
		return fmt.Errorf("%w: start date %s is after end date %s",
			apperrors.ErrValidation, start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	return nil
}

func matchesPeriod(record domain.PeriodRecord, userID string, start, end time.Time) bool {
	if !record.BelongsToUser(userID) {
		return false
	}
	date := record.OccurredOn()
	return !date.Before(start) && !date.After(end)
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// endOfMonth returns the last instant of t's month, so inclusive range checks
// admit any timestamp on the final day.
func endOfMonth(t time.Time) time.Time {
	return startOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}
