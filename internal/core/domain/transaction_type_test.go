package domain_test

import (
	"testing"

	"github.com/GabrielEVP/cashly-api-sub001/internal/apperrors"
	"github.com/GabrielEVP/cashly-api-sub001/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionType_Capabilities(t *testing.T) {
	tests := []struct {
		txnType domain.TransactionType
		want    domain.TypeCapabilities
	}{
		{domain.Transfer, domain.TypeCapabilities{RequiresSource: true, RequiresDestination: true}},
		{domain.Deposit, domain.TypeCapabilities{RequiresDestination: true}},
		{domain.Withdrawal, domain.TypeCapabilities{RequiresSource: true}},
		{domain.Payment, domain.TypeCapabilities{RequiresSource: true, AllowsExpenseLink: true}},
		{domain.Refund, domain.TypeCapabilities{RequiresDestination: true, AllowsIncomeLink: true}},
	}

	for _, tt := range tests {
		t.Run(string(tt.txnType), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.txnType.Capabilities())
		})
	}
}

func TestParseTransactionType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.TransactionType
		wantErr bool
	}{
		{name: "exact", input: "TRANSFER", want: domain.Transfer},
		{name: "lower case", input: "deposit", want: domain.Deposit},
		{name: "whitespace", input: " payment ", want: domain.Payment},
		{name: "unknown", input: "LOAN", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseTransactionType(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, apperrors.ErrValidation)
				assert.Contains(t, err.Error(), "TRANSFER, DEPOSIT, WITHDRAWAL, PAYMENT, REFUND")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransactionType_IsValid(t *testing.T) {
	for _, txnType := range domain.TransactionTypes {
		assert.True(t, txnType.IsValid(), txnType)
	}
	assert.False(t, domain.TransactionType("LOAN").IsValid())
}
