package domain

import (
	"fmt"
	"strings"

	"github.com/GabrielEVP/cashly-api-sub001/internal/apperrors"
)

// TransactionStatus indicates where a transaction is in its lifecycle.
// PENDING is the only non-terminal state.
type TransactionStatus string

const (
	Pending   TransactionStatus = "PENDING"
	Completed TransactionStatus = "COMPLETED"
	Failed    TransactionStatus = "FAILED"
	Cancelled TransactionStatus = "CANCELLED"
)

// statusTransitions is the state machine: a status maps to the set of
// statuses it may transition into. Terminal states have no entry.
var statusTransitions = map[TransactionStatus][]TransactionStatus{
	Pending: {Completed, Failed, Cancelled},
}

// TransactionStatuses lists all valid transaction statuses.
var TransactionStatuses = []TransactionStatus{Pending, Completed, Failed, Cancelled}

// ParseTransactionStatus normalizes free-text input (trim, upper-case) and
// returns the matching status, or a validation error listing the legal values.
func ParseTransactionStatus(input string) (TransactionStatus, error) {
	normalized := TransactionStatus(strings.ToUpper(strings.TrimSpace(input)))
	if !normalized.IsValid() {
		names := make([]string, len(TransactionStatuses))
		for i, s := range TransactionStatuses {
			names[i] = string(s)
		}
		return "", fmt.Errorf("%w: invalid transaction status %q, must be one of %s",
			apperrors.ErrValidation, input, strings.Join(names, ", "))
	}
	return normalized, nil
}

// CanTransitionTo reports whether the state machine permits moving from s to
// target. Self-transitions and any move out of a terminal state are illegal.
func (s TransactionStatus) CanTransitionTo(target TransactionStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether s has no outgoing transitions. Terminal
// transactions also refuse description updates.
func (s TransactionStatus) IsTerminal() bool {
	return s.IsValid() && len(statusTransitions[s]) == 0
}

// IsValid reports whether s is one of the closed set of statuses.
func (s TransactionStatus) IsValid() bool {
	for _, known := range TransactionStatuses {
		if s == known {
			return true
		}
	}
	return false
}

func (s TransactionStatus) String() string {
	return string(s)
}
