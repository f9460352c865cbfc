package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/GabrielEVP/cashly-api-sub001/internal/apperrors"
)

const maxDescriptionLength = 255

// Transaction is a ledger entry: a record of money movement between at most
// two account legs, optionally linked to an expense (PAYMENT) or an income
// (REFUND) record. Construction validates all structural invariants
// atomically; state changes go through UpdateStatus and its named wrappers.
//
// A Transaction is not safe for concurrent mutation; callers owning an
// instance must serialize access to it.
type Transaction struct {
	TransactionID        string            `json:"transactionID"`
	UserID               string            `json:"userID"`
	Type                 TransactionType   `json:"type"`
	Status               TransactionStatus `json:"status"`
	Amount               Money             `json:"amount"`
	CurrencyCode         string            `json:"currencyCode"`
	Description          string            `json:"description"`
	TransactionDate      time.Time         `json:"transactionDate"`
	SourceAccountID      *string           `json:"sourceAccountID"`      // Required by TRANSFER, WITHDRAWAL, PAYMENT
	DestinationAccountID *string           `json:"destinationAccountID"` // Required by TRANSFER, DEPOSIT, REFUND
	ExpenseID            *string           `json:"expenseID"`            // Only permitted on PAYMENT
	IncomeID             *string           `json:"incomeID"`             // Only permitted on REFUND
	AuditFields
}

// NewTransactionParams carries every field needed to construct a Transaction.
type NewTransactionParams struct {
	TransactionID        string
	UserID               string
	Type                 TransactionType
	Status               TransactionStatus
	Amount               Money
	CurrencyCode         string
	Description          string
	TransactionDate      time.Time
	SourceAccountID      *string
	DestinationAccountID *string
	ExpenseID            *string
	IncomeID             *string
}

// NewTransaction constructs a new transaction with both timestamps set to
// now. All invariants are checked before anything is built; a failed
// construction yields no partially-initialized object.
func NewTransaction(params NewTransactionParams) (*Transaction, error) {
	now := time.Now()
	return buildTransaction(params, now, now)
}

// RehydrateTransaction rebuilds a previously persisted transaction with its
// stored timestamps. It runs the same structural validation as
// NewTransaction; only the timestamp handling differs.
func RehydrateTransaction(params NewTransactionParams, createdAt, lastUpdatedAt time.Time) (*Transaction, error) {
	return buildTransaction(params, createdAt, lastUpdatedAt)
}

func buildTransaction(params NewTransactionParams, createdAt, lastUpdatedAt time.Time) (*Transaction, error) {
	if strings.TrimSpace(params.TransactionID) == "" {
		return nil, fmt.Errorf("%w: transaction ID is required", apperrors.ErrValidation)
	}
	userID := strings.TrimSpace(params.UserID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user ID is required", apperrors.ErrValidation)
	}
	if !params.Type.IsValid() {
		return nil, fmt.Errorf("%w: invalid transaction type %q", apperrors.ErrValidation, string(params.Type))
	}
	if !params.Status.IsValid() {
		return nil, fmt.Errorf("%w: invalid transaction status %q", apperrors.ErrValidation, string(params.Status))
	}
	currency, err := normalizeCurrencyCode(params.CurrencyCode)
	if err != nil {
		return nil, err
	}
	description, err := normalizeDescription(params.Description)
	if err != nil {
		return nil, err
	}
	if params.TransactionDate.IsZero() {
		return nil, fmt.Errorf("%w: transaction date is required", apperrors.ErrValidation)
	}
	if params.TransactionDate.After(time.Now()) {
		return nil, fmt.Errorf("%w: transaction date cannot be in the future", apperrors.ErrValidation)
	}
	if err := validateAccountLegs(params.Type, params.SourceAccountID, params.DestinationAccountID); err != nil {
		return nil, err
	}
	if err := validateLinkage(params.Type, params.ExpenseID, params.IncomeID); err != nil {
		return nil, err
	}

	return &Transaction{
		TransactionID:        strings.TrimSpace(params.TransactionID),
		UserID:               userID,
		Type:                 params.Type,
		Status:               params.Status,
		Amount:               params.Amount,
		CurrencyCode:         currency,
		Description:          description,
		TransactionDate:      params.TransactionDate,
		SourceAccountID:      params.SourceAccountID,
		DestinationAccountID: params.DestinationAccountID,
		ExpenseID:            params.ExpenseID,
		IncomeID:             params.IncomeID,
		AuditFields: AuditFields{
			CreatedAt:     createdAt,
			LastUpdatedAt: lastUpdatedAt,
		},
	}, nil
}

// validateAccountLegs checks the attached account ids against the capability
// table: each required leg must be present and each forbidden leg absent.
func validateAccountLegs(txnType TransactionType, sourceID, destinationID *string) error {
	caps := txnType.Capabilities()
	hasSource := sourceID != nil && strings.TrimSpace(*sourceID) != ""
	hasDestination := destinationID != nil && strings.TrimSpace(*destinationID) != ""

	if caps.RequiresSource && !hasSource {
		return fmt.Errorf("%w: %s requires a source account", apperrors.ErrValidation, txnType)
	}
	if !caps.RequiresSource && hasSource {
		return fmt.Errorf("%w: %s must not have a source account", apperrors.ErrValidation, txnType)
	}
	if caps.RequiresDestination && !hasDestination {
		return fmt.Errorf("%w: %s requires a destination account", apperrors.ErrValidation, txnType)
	}
	if !caps.RequiresDestination && hasDestination {
		return fmt.Errorf("%w: %s must not have a destination account", apperrors.ErrValidation, txnType)
	}
	if hasSource && hasDestination && *sourceID == *destinationID {
		return fmt.Errorf("%w: source and destination accounts must differ", apperrors.ErrValidation)
	}
	return nil
}

func validateLinkage(txnType TransactionType, expenseID, incomeID *string) error {
	caps := txnType.Capabilities()
	if expenseID != nil && !caps.AllowsExpenseLink {
		return fmt.Errorf("%w: %s cannot be linked to an expense", apperrors.ErrValidation, txnType)
	}
	if incomeID != nil && !caps.AllowsIncomeLink {
		return fmt.Errorf("%w: %s cannot be linked to an income", apperrors.ErrValidation, txnType)
	}
	return nil
}

func normalizeCurrencyCode(code string) (string, error) {
	currency := strings.ToUpper(strings.TrimSpace(code))
	if len(currency) != 3 {
		return "", fmt.Errorf("%w: currency code must be 3 letters, got %q", apperrors.ErrValidation, code)
	}
	for _, r := range currency {
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("%w: currency code must be 3 letters, got %q", apperrors.ErrValidation, code)
		}
	}
	return currency, nil
}

func normalizeDescription(description string) (string, error) {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return "", fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}
	if len(trimmed) > maxDescriptionLength {
		return "", fmt.Errorf("%w: description cannot exceed %d characters", apperrors.ErrValidation, maxDescriptionLength)
	}
	return trimmed, nil
}

// UpdateStatus moves the transaction to target, failing with ErrInvalidState
// when the state machine forbids the transition. State is untouched on
// failure.
func (t *Transaction) UpdateStatus(target TransactionStatus) error {
	if !target.IsValid() {
		return fmt.Errorf("%w: invalid transaction status %q", apperrors.ErrValidation, string(target))
	}
	if !t.Status.CanTransitionTo(target) {
		return fmt.Errorf("%w: cannot transition from %s to %s", apperrors.ErrInvalidState, t.Status, target)
	}
	t.Status = target
	t.LastUpdatedAt = time.Now()
	return nil
}

// Complete marks the transaction COMPLETED.
func (t *Transaction) Complete() error {
	return t.UpdateStatus(Completed)
}

// Cancel marks the transaction CANCELLED.
func (t *Transaction) Cancel() error {
	return t.UpdateStatus(Cancelled)
}

// MarkAsFailed marks the transaction FAILED.
func (t *Transaction) MarkAsFailed() error {
	return t.UpdateStatus(Failed)
}

// UpdateDescription replaces the description. Transactions in a terminal
// status are locked and refuse the update with ErrInvalidState.
func (t *Transaction) UpdateDescription(description string) error {
	if t.Status.IsTerminal() {
		return fmt.Errorf("%w: cannot update description of a %s transaction", apperrors.ErrInvalidState, t.Status)
	}
	normalized, err := normalizeDescription(description)
	if err != nil {
		return err
	}
	t.Description = normalized
	t.LastUpdatedAt = time.Now()
	return nil
}

// BelongsToUser reports whether the transaction is owned by userID.
func (t *Transaction) BelongsToUser(userID string) bool {
	return t.UserID == userID
}

// InvolvesAccount reports whether accountID is either leg of the transaction.
func (t *Transaction) InvolvesAccount(accountID string) bool {
	if t.SourceAccountID != nil && *t.SourceAccountID == accountID {
		return true
	}
	if t.DestinationAccountID != nil && *t.DestinationAccountID == accountID {
		return true
	}
	return false
}

// IsLinkedToExpense reports whether an expense record is attached.
func (t *Transaction) IsLinkedToExpense() bool {
	return t.ExpenseID != nil
}

// IsLinkedToIncome reports whether an income record is attached.
func (t *Transaction) IsLinkedToIncome() bool {
	return t.IncomeID != nil
}

func (t *Transaction) IsPending() bool   { return t.Status == Pending }
func (t *Transaction) IsCompleted() bool { return t.Status == Completed }
func (t *Transaction) IsFailed() bool    { return t.Status == Failed }
func (t *Transaction) IsCancelled() bool { return t.Status == Cancelled }
