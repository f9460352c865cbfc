package domain_test

import (
	"testing"
	"time"

	"github.com/GabrielEVP/cashly-api-sub001/internal/apperrors"
	"github.com/GabrielEVP/cashly-api-sub001/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExpenseRecord(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1)

	tests := []struct {
		name     string
		userID   string
		desc     string
		category domain.Category
		date     time.Time
		errMsg   string
	}{
		{name: "valid", userID: "user-1", desc: "Groceries", category: domain.CategoryFoodDining, date: yesterday},
		{name: "blank user", userID: "  ", desc: "Groceries", category: domain.CategoryFoodDining, date: yesterday, errMsg: "user ID is required"},
		{name: "blank description", userID: "user-1", desc: " ", category: domain.CategoryFoodDining, date: yesterday, errMsg: "description is required"},
		{name: "income category rejected", userID: "user-1", desc: "Groceries", category: domain.CategorySalary, date: yesterday, errMsg: "invalid expense category"},
		{name: "zero date", userID: "user-1", desc: "Groceries", category: domain.CategoryFoodDining, errMsg: "expense date is required"},
		{name: "future date", userID: "user-1", desc: "Groceries", category: domain.CategoryFoodDining, date: time.Now().Add(48 * time.Hour), errMsg: "expense date cannot be in the future"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := domain.NewExpenseRecord(tt.userID, domain.MustMoney("120.00"), tt.desc, tt.category, tt.date)
			if tt.errMsg != "" {
				require.ErrorIs(t, err, apperrors.ErrValidation)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, record.RecordID)
			assert.Equal(t, "user-1", record.UserID)
			assert.False(t, record.CreatedAt.IsZero())
		})
	}
}

func TestNewIncomeRecord(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1)

	record, err := domain.NewIncomeRecord("user-1", domain.MustMoney("2500.00"), "March salary", domain.CategorySalary, yesterday)
	require.NoError(t, err)
	assert.Equal(t, domain.CategorySalary, record.Category)

	_, err = domain.NewIncomeRecord("user-1", domain.MustMoney("10"), "Refund", domain.CategoryTravel, yesterday)
	require.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "invalid income category")
}

func TestRecords_SatisfyPeriodRecord(t *testing.T) {
	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	expense, err := domain.NewExpenseRecord("user-1", domain.MustMoney("120.00"), "Groceries", domain.CategoryFoodDining, date)
	require.NoError(t, err)

	var record domain.PeriodRecord = *expense
	assert.True(t, record.BelongsToUser("user-1"))
	assert.True(t, record.AmountValue().Equal(domain.MustMoney("120.00")))
	assert.Equal(t, domain.CategoryFoodDining, record.CategoryValue())
	assert.Equal(t, date, record.OccurredOn())
}
