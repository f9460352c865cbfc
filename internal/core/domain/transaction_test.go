package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/GabrielEVP/cashly-api-sub001/internal/apperrors"
	"github.com/GabrielEVP/cashly-api-sub001/internal/core/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

// baseParams returns a valid parameter set for the given type, with the
// account legs the capability table requires.
func baseParams(txnType domain.TransactionType) domain.NewTransactionParams {
	params := domain.NewTransactionParams{
		TransactionID:   uuid.NewString(),
		UserID:          "user-1",
		Type:            txnType,
		Status:          domain.Pending,
		Amount:          domain.MustMoney("100.00"),
		CurrencyCode:    "USD",
		Description:     "Monthly groceries",
		TransactionDate: time.Now().AddDate(0, 0, -1),
	}
	caps := txnType.Capabilities()
	if caps.RequiresSource {
		params.SourceAccountID = strPtr("acc-src")
	}
	if caps.RequiresDestination {
		params.DestinationAccountID = strPtr("acc-dst")
	}
	return params
}

func TestNewTransaction_AccountLegsPerType(t *testing.T) {
	legCombos := []struct {
		name        string
		source      *string
		destination *string
	}{
		{name: "no legs"},
		{name: "source only", source: strPtr("acc-src")},
		{name: "destination only", destination: strPtr("acc-dst")},
		{name: "both legs", source: strPtr("acc-src"), destination: strPtr("acc-dst")},
	}

	for _, txnType := range domain.TransactionTypes {
		caps := txnType.Capabilities()
		for _, combo := range legCombos {
			t.Run(string(txnType)+"/"+combo.name, func(t *testing.T) {
				params := baseParams(txnType)
				params.SourceAccountID = combo.source
				params.DestinationAccountID = combo.destination

				txn, err := domain.NewTransaction(params)

				wantOK := caps.RequiresSource == (combo.source != nil) &&
					caps.RequiresDestination == (combo.destination != nil)
				if wantOK {
					require.NoError(t, err)
					assert.Equal(t, txnType, txn.Type)
				} else {
					require.ErrorIs(t, err, apperrors.ErrValidation)
					assert.Nil(t, txn)
				}
			})
		}
	}
}

func TestNewTransaction_TransferWithoutDestination(t *testing.T) {
	params := baseParams(domain.Transfer)
	params.DestinationAccountID = nil

	_, err := domain.NewTransaction(params)

	require.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "TRANSFER requires a destination account")
}

func TestNewTransaction_SameSourceAndDestination(t *testing.T) {
	params := baseParams(domain.Transfer)
	params.SourceAccountID = strPtr("acc-1")
	params.DestinationAccountID = strPtr("acc-1")

	_, err := domain.NewTransaction(params)

	require.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "source and destination accounts must differ")
}

func TestNewTransaction_Linkage(t *testing.T) {
	tests := []struct {
		name      string
		txnType   domain.TransactionType
		expenseID *string
		incomeID  *string
		wantErr   bool
	}{
		{name: "payment may link expense", txnType: domain.Payment, expenseID: strPtr("exp-1")},
		{name: "refund may link income", txnType: domain.Refund, incomeID: strPtr("inc-1")},
		{name: "transfer cannot link expense", txnType: domain.Transfer, expenseID: strPtr("exp-1"), wantErr: true},
		{name: "payment cannot link income", txnType: domain.Payment, incomeID: strPtr("inc-1"), wantErr: true},
		{name: "refund cannot link expense", txnType: domain.Refund, expenseID: strPtr("exp-1"), wantErr: true},
		{name: "deposit cannot link income", txnType: domain.Deposit, incomeID: strPtr("inc-1"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := baseParams(tt.txnType)
			params.ExpenseID = tt.expenseID
			params.IncomeID = tt.incomeID

			txn, err := domain.NewTransaction(params)
			if tt.wantErr {
				require.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expenseID != nil, txn.IsLinkedToExpense())
			assert.Equal(t, tt.incomeID != nil, txn.IsLinkedToIncome())
		})
	}
}

func TestNewTransaction_FieldValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.NewTransactionParams)
		errMsg string
	}{
		{name: "missing transaction ID", mutate: func(p *domain.NewTransactionParams) { p.TransactionID = " " }, errMsg: "transaction ID is required"},
		{name: "missing user ID", mutate: func(p *domain.NewTransactionParams) { p.UserID = "" }, errMsg: "user ID is required"},
		{name: "invalid type", mutate: func(p *domain.NewTransactionParams) { p.Type = "LOAN" }, errMsg: "invalid transaction type"},
		{name: "invalid status", mutate: func(p *domain.NewTransactionParams) { p.Status = "ARCHIVED" }, errMsg: "invalid transaction status"},
		{name: "bad currency length", mutate: func(p *domain.NewTransactionParams) { p.CurrencyCode = "USDT" }, errMsg: "currency code must be 3 letters"},
		{name: "non-letter currency", mutate: func(p *domain.NewTransactionParams) { p.CurrencyCode = "U5D" }, errMsg: "currency code must be 3 letters"},
		{name: "empty description", mutate: func(p *domain.NewTransactionParams) { p.Description = "   " }, errMsg: "description is required"},
		{name: "oversized description", mutate: func(p *domain.NewTransactionParams) { p.Description = strings.Repeat("x", 256) }, errMsg: "description cannot exceed 255 characters"},
		{name: "zero date", mutate: func(p *domain.NewTransactionParams) { p.TransactionDate = time.Time{} }, errMsg: "transaction date is required"},
		{name: "future date", mutate: func(p *domain.NewTransactionParams) { p.TransactionDate = time.Now().Add(48 * time.Hour) }, errMsg: "transaction date cannot be in the future"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := baseParams(domain.Transfer)
			tt.mutate(&params)

			txn, err := domain.NewTransaction(params)

			require.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Nil(t, txn)
		})
	}
}

func TestNewTransaction_Normalization(t *testing.T) {
	params := baseParams(domain.Deposit)
	params.UserID = "  user-1  "
	params.CurrencyCode = " usd "
	params.Description = "  Paycheck deposit  "

	txn, err := domain.NewTransaction(params)

	require.NoError(t, err)
	assert.Equal(t, "user-1", txn.UserID)
	assert.Equal(t, "USD", txn.CurrencyCode)
	assert.Equal(t, "Paycheck deposit", txn.Description)
	assert.False(t, txn.CreatedAt.IsZero())
	assert.Equal(t, txn.CreatedAt, txn.LastUpdatedAt)
}

func TestRehydrateTransaction_KeepsStoredTimestamps(t *testing.T) {
	createdAt := time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)
	updatedAt := time.Date(2024, 2, 1, 18, 0, 0, 0, time.UTC)

	txn, err := domain.RehydrateTransaction(baseParams(domain.Withdrawal), createdAt, updatedAt)

	require.NoError(t, err)
	assert.Equal(t, createdAt, txn.CreatedAt)
	assert.Equal(t, updatedAt, txn.LastUpdatedAt)
}

func TestRehydrateTransaction_StillValidates(t *testing.T) {
	params := baseParams(domain.Transfer)
	params.DestinationAccountID = nil

	_, err := domain.RehydrateTransaction(params, time.Now(), time.Now())

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestTransaction_StatusTransitions(t *testing.T) {
	txn, err := domain.NewTransaction(baseParams(domain.Transfer))
	require.NoError(t, err)
	require.True(t, txn.IsPending())

	require.NoError(t, txn.Complete())
	assert.True(t, txn.IsCompleted())

	// Terminal state refuses further transitions and stays untouched
	err = txn.Cancel()
	require.ErrorIs(t, err, apperrors.ErrInvalidState)
	assert.NotErrorIs(t, err, apperrors.ErrValidation)
	assert.True(t, txn.IsCompleted())
}

func TestTransaction_StatusWrappers(t *testing.T) {
	tests := []struct {
		name       string
		transition func(*domain.Transaction) error
		want       domain.TransactionStatus
	}{
		{name: "complete", transition: (*domain.Transaction).Complete, want: domain.Completed},
		{name: "cancel", transition: (*domain.Transaction).Cancel, want: domain.Cancelled},
		{name: "mark as failed", transition: (*domain.Transaction).MarkAsFailed, want: domain.Failed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn, err := domain.NewTransaction(baseParams(domain.Payment))
			require.NoError(t, err)

			require.NoError(t, tt.transition(txn))
			assert.Equal(t, tt.want, txn.Status)
		})
	}
}

func TestTransaction_UpdateStatus_InvalidTarget(t *testing.T) {
	txn, err := domain.NewTransaction(baseParams(domain.Deposit))
	require.NoError(t, err)

	err = txn.UpdateStatus("ARCHIVED")

	require.ErrorIs(t, err, apperrors.ErrValidation)
	assert.True(t, txn.IsPending())
}

func TestTransaction_UpdateDescription(t *testing.T) {
	txn, err := domain.NewTransaction(baseParams(domain.Withdrawal))
	require.NoError(t, err)
	before := txn.LastUpdatedAt

	require.NoError(t, txn.UpdateDescription("ATM withdrawal downtown"))
	assert.Equal(t, "ATM withdrawal downtown", txn.Description)
	assert.False(t, txn.LastUpdatedAt.Before(before))

	require.NoError(t, txn.MarkAsFailed())
	err = txn.UpdateDescription("too late")
	require.ErrorIs(t, err, apperrors.ErrInvalidState)
	assert.Equal(t, "ATM withdrawal downtown", txn.Description)
}

func TestTransaction_Predicates(t *testing.T) {
	params := baseParams(domain.Transfer)
	txn, err := domain.NewTransaction(params)
	require.NoError(t, err)

	assert.True(t, txn.BelongsToUser("user-1"))
	assert.False(t, txn.BelongsToUser("user-2"))
	assert.True(t, txn.InvolvesAccount("acc-src"))
	assert.True(t, txn.InvolvesAccount("acc-dst"))
	assert.False(t, txn.InvolvesAccount("acc-other"))
}
