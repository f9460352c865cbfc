package services

import (
	"fmt"
	"strings"

	"github.com/GabrielEVP/cashly-api-sub001/internal/apperrors"
	"github.com/GabrielEVP/cashly-api-sub001/internal/core/domain"
)

// TransactionIntegrityValidator re-checks the structural invariants of an
// already-built transaction. It exists for defense in depth: transactions
// rehydrated from storage or handed across layer boundaries can be verified
// without going back through the constructor.
type TransactionIntegrityValidator struct{}

// NewTransactionIntegrityValidator creates a TransactionIntegrityValidator.
func NewTransactionIntegrityValidator() *TransactionIntegrityValidator {
	return &TransactionIntegrityValidator{}
}

// ValidateIntegrity verifies the account legs against the type's capability
// table and that a currency is set. A nil transaction fails validation.
func (v *TransactionIntegrityValidator) ValidateIntegrity(txn *domain.Transaction) error {
	if txn == nil {
		return fmt.Errorf("%w: transaction is required", apperrors.ErrValidation)
	}
	if !txn.Type.IsValid() {
		return fmt.Errorf("%w: invalid transaction type %q", apperrors.ErrValidation, string(txn.Type))
	}

	caps := txn.Type.Capabilities()
	hasSource := txn.SourceAccountID != nil && strings.TrimSpace(*txn.SourceAccountID) != ""
	hasDestination := txn.DestinationAccountID != nil && strings.TrimSpace(*txn.DestinationAccountID) != ""

	if caps.RequiresSource != hasSource {
		return fmt.Errorf("%w: %s account legs are inconsistent: source account %s",
			apperrors.ErrValidation, txn.Type, requirementWord(caps.RequiresSource))
	}
	if caps.RequiresDestination != hasDestination {
		return fmt.Errorf("%w: %s account legs are inconsistent: destination account %s",
			apperrors.ErrValidation, txn.Type, requirementWord(caps.RequiresDestination))
	}
	if hasSource && hasDestination && *txn.SourceAccountID == *txn.DestinationAccountID {
		return fmt.Errorf("%w: source and destination accounts must differ", apperrors.ErrValidation)
	}
	if !caps.AllowsExpenseLink && txn.ExpenseID != nil {
		return fmt.Errorf("%w: %s cannot be linked to an expense", apperrors.ErrValidation, txn.Type)
	}
	if !caps.AllowsIncomeLink && txn.IncomeID != nil {
		return fmt.Errorf("%w: %s cannot be linked to an income", apperrors.ErrValidation, txn.Type)
	}
	if strings.TrimSpace(txn.CurrencyCode) == "" {
		return fmt.Errorf("%w: currency code is required", apperrors.ErrValidation)
	}
	return nil
}

func requirementWord(required bool) string {
	if required {
		return "is required"
	}
	return "must be absent"
}

// CanTransactionBeModified reports whether the transaction is still open to
// changes. A nil transaction is simply not modifiable; no error is raised.
func (v *TransactionIntegrityValidator) CanTransactionBeModified(txn *domain.Transaction) bool {
	return txn != nil && txn.IsPending()
}

// CanTransactionBeCancelled reports whether the transaction may still be
// cancelled. A nil transaction is simply not cancellable; no error is raised.
func (v *TransactionIntegrityValidator) CanTransactionBeCancelled(txn *domain.Transaction) bool {
	return txn != nil && txn.IsPending()
}
