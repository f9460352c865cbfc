package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/GabrielEVP/cashly-api-sub001/internal/apperrors"
	"github.com/google/uuid"
)

// PeriodRecord is the minimal capability surface the analytics engine needs
// from a record. ExpenseRecord and IncomeRecord both satisfy it, letting one
// generic engine serve both kinds.
type PeriodRecord interface {
	BelongsToUser(userID string) bool
	AmountValue() Money
	CategoryValue() Category
	OccurredOn() time.Time
}

// ExpenseRecord is a persisted expense as seen by the analytics engine. The
// engine treats it as read-only; it is loaded and saved elsewhere.
type ExpenseRecord struct {
	RecordID    string    `json:"recordID"`
	UserID      string    `json:"userID"`
	Amount      Money     `json:"amount"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	Date        time.Time `json:"date"`
	AuditFields
}

// IncomeRecord is a persisted income as seen by the analytics engine.
type IncomeRecord struct {
	RecordID    string    `json:"recordID"`
	UserID      string    `json:"userID"`
	Amount      Money     `json:"amount"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	Date        time.Time `json:"date"`
	AuditFields
}

// NewExpenseRecord validates and builds an expense record with a generated
// id and both timestamps set to now.
func NewExpenseRecord(userID string, amount Money, description string, category Category, date time.Time) (*ExpenseRecord, error) {
	base, err := buildRecord(userID, description, category, ExpenseCategories, "expense", date)
	if err != nil {
		return nil, err
	}
	return &ExpenseRecord{
		RecordID:    base.recordID,
		UserID:      base.userID,
		Amount:      amount,
		Description: base.description,
		Category:    category,
		Date:        date,
		AuditFields: base.audit,
	}, nil
}

// NewIncomeRecord validates and builds an income record with a generated id
// and both timestamps set to now.
func NewIncomeRecord(userID string, amount Money, description string, category Category, date time.Time) (*IncomeRecord, error) {
	base, err := buildRecord(userID, description, category, IncomeCategories, "income", date)
	if err != nil {
		return nil, err
	}
	return &IncomeRecord{
		RecordID:    base.recordID,
		UserID:      base.userID,
		Amount:      amount,
		Description: base.description,
		Category:    category,
		Date:        date,
		AuditFields: base.audit,
	}, nil
}

type recordFields struct {
	recordID    string
	userID      string
	description string
	audit       AuditFields
}

func buildRecord(userID, description string, category Category, catalog []Category, kind string, date time.Time) (recordFields, error) {
	trimmedUser := strings.TrimSpace(userID)
	if trimmedUser == "" {
		return recordFields{}, fmt.Errorf("%w: user ID is required", apperrors.ErrValidation)
	}
	trimmedDescription, err := normalizeDescription(description)
	if err != nil {
		return recordFields{}, err
	}
	if _, err := parseCategory(string(category), catalog, kind); err != nil {
		return recordFields{}, err
	}
	if date.IsZero() {
		return recordFields{}, fmt.Errorf("%w: %s date is required", apperrors.ErrValidation, kind)
	}
	if date.After(time.Now()) {
		return recordFields{}, fmt.Errorf("%w: %s date cannot be in the future", apperrors.ErrValidation, kind)
	}
	now := time.Now()
	return recordFields{
		recordID:    uuid.NewString(),
		userID:      trimmedUser,
		description: trimmedDescription,
		audit:       AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}, nil
}

// BelongsToUser reports whether the record is owned by userID.
func (e ExpenseRecord) BelongsToUser(userID string) bool { return e.UserID == userID }

// AmountValue returns the recorded amount.
func (e ExpenseRecord) AmountValue() Money { return e.Amount }

// CategoryValue returns the record's category.
func (e ExpenseRecord) CategoryValue() Category { return e.Category }

// OccurredOn returns the calendar date of the expense.
func (e ExpenseRecord) OccurredOn() time.Time { return e.Date }

// BelongsToUser reports whether the record is owned by userID.
func (i IncomeRecord) BelongsToUser(userID string) bool { return i.UserID == userID }

// AmountValue returns the recorded amount.
func (i IncomeRecord) AmountValue() Money { return i.Amount }

// CategoryValue returns the record's category.
func (i IncomeRecord) CategoryValue() Category { return i.Category }

// OccurredOn returns the calendar date of the income.
func (i IncomeRecord) OccurredOn() time.Time { return i.Date }

var (
	_ PeriodRecord = ExpenseRecord{}
	_ PeriodRecord = IncomeRecord{}
)
