package domain

import (
	"fmt"
	"strings"

	"github.com/GabrielEVP/cashly-api-sub001/internal/apperrors"
)

// TransactionType classifies a ledger entry and determines which account legs
// it requires and whether it may link to an expense or income record.
type TransactionType string

const (
	Transfer   TransactionType = "TRANSFER"
	Deposit    TransactionType = "DEPOSIT"
	Withdrawal TransactionType = "WITHDRAWAL"
	Payment    TransactionType = "PAYMENT"
	Refund     TransactionType = "REFUND"
)

// TypeCapabilities holds the structural requirements of a transaction type:
// which account legs it must carry and which record linkages it permits.
type TypeCapabilities struct {
	RequiresSource      bool
	RequiresDestination bool
	AllowsExpenseLink   bool
	AllowsIncomeLink    bool
}

// typeCapabilities is the single source of truth for per-type requirements,
// consumed by both the Transaction constructor and the integrity validator.
var typeCapabilities = map[TransactionType]TypeCapabilities{
	Transfer:   {RequiresSource: true, RequiresDestination: true},
	Deposit:    {RequiresDestination: true},
	Withdrawal: {RequiresSource: true},
	Payment:    {RequiresSource: true, AllowsExpenseLink: true},
	Refund:     {RequiresDestination: true, AllowsIncomeLink: true},
}

// TransactionTypes lists all valid transaction types.
var TransactionTypes = []TransactionType{Transfer, Deposit, Withdrawal, Payment, Refund}

// ParseTransactionType normalizes free-text input (trim, upper-case) and
// returns the matching type, or a validation error listing the legal values.
func ParseTransactionType(input string) (TransactionType, error) {
	normalized := TransactionType(strings.ToUpper(strings.TrimSpace(input)))
	if _, ok := typeCapabilities[normalized]; !ok {
		names := make([]string, len(TransactionTypes))
		for i, t := range TransactionTypes {
			names[i] = string(t)
		}
		return "", fmt.Errorf("%w: invalid transaction type %q, must be one of %s",
			apperrors.ErrValidation, input, strings.Join(names, ", "))
	}
	return normalized, nil
}

// Capabilities returns the structural requirements of the type. Unknown types
// report no requirements and no linkage permissions.
func (t TransactionType) Capabilities() TypeCapabilities {
	return typeCapabilities[t]
}

// IsValid reports whether t is one of the closed set of transaction types.
func (t TransactionType) IsValid() bool {
	_, ok := typeCapabilities[t]
	return ok
}

func (t TransactionType) String() string {
	return string(t)
}
