package domain

import (
	"fmt"

	"github.com/GabrielEVP/cashly-api-sub001/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Money is a non-negative monetary amount with precise decimal arithmetic.
// It is the amount type for expenses, incomes and transactions. Every
// operation returns a new value; Money is never mutated in place.
type Money struct {
	value decimal.Decimal
}

// ZeroMoney returns a Money of exactly zero.
func ZeroMoney() Money {
	return Money{value: decimal.Zero}
}

// NewMoney wraps a decimal value, rejecting negative amounts.
func NewMoney(value decimal.Decimal) (Money, error) {
	if value.IsNegative() {
		return Money{}, fmt.Errorf("%w: amount cannot be negative, got %s", apperrors.ErrValidation, value.String())
	}
	return Money{value: value}, nil
}

// NewMoneyFromString parses a decimal string (e.g. "120.00") into a Money.
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, fmt.Errorf("%w: invalid amount %q", apperrors.ErrValidation, value)
	}
	return NewMoney(d)
}

// MustMoney is a convenience for static amounts; it panics on invalid input
// and is intended for tests and fixtures only.
func MustMoney(value string) Money {
	m, err := NewMoneyFromString(value)
	if err != nil {
		panic(err)
	}
	return m
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.value
}

// Add returns a new Money holding m + other.
func (m Money) Add(other Money) Money {
	return Money{value: m.value.Add(other.value)}
}

// Subtract returns m - other, failing if the result would be negative.
func (m Money) Subtract(other Money) (Money, error) {
	result := m.value.Sub(other.value)
	if result.IsNegative() {
		return Money{}, fmt.Errorf("%w: insufficient amount: %s - %s is negative", apperrors.ErrValidation, m.value.String(), other.value.String())
	}
	return Money{value: result}, nil
}

// GreaterThan reports whether m is strictly greater than other.
func (m Money) GreaterThan(other Money) bool {
	return m.value.GreaterThan(other.value)
}

// IsZero reports whether m is exactly zero.
func (m Money) IsZero() bool {
	return m.value.IsZero()
}

// Equal reports whether both amounts hold the same decimal value.
func (m Money) Equal(other Money) bool {
	return m.value.Equal(other.value)
}

func (m Money) String() string {
	return m.value.String()
}

// MarshalJSON renders the amount as a JSON number string, matching the
// decimal library's own representation.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}

// UnmarshalJSON parses a decimal value, enforcing the non-negative invariant.
func (m *Money) UnmarshalJSON(data []byte) error {
	var value decimal.Decimal
	if err := value.UnmarshalJSON(data); err != nil {
		return err
	}
	parsed, err := NewMoney(value)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Balance is a signed monetary value used for account balances, which may go
// negative (credit). Unlike Money it carries no sign invariant.
type Balance struct {
	value decimal.Decimal
}

// NewBalance wraps a decimal value as an account balance.
func NewBalance(value decimal.Decimal) Balance {
	return Balance{value: value}
}

// Decimal returns the underlying decimal value.
func (b Balance) Decimal() decimal.Decimal {
	return b.value
}

// Add returns a new Balance holding b + amount.
func (b Balance) Add(amount Money) Balance {
	return Balance{value: b.value.Add(amount.value)}
}

// Subtract returns b - amount. The result may be negative.
func (b Balance) Subtract(amount Money) Balance {
	return Balance{value: b.value.Sub(amount.value)}
}

// IsNegative reports whether the balance is below zero.
func (b Balance) IsNegative() bool {
	return b.value.IsNegative()
}

// IsPositive reports whether the balance is above zero.
func (b Balance) IsPositive() bool {
	return b.value.IsPositive()
}

// IsZero reports whether the balance is exactly zero.
func (b Balance) IsZero() bool {
	return b.value.IsZero()
}

func (b Balance) String() string {
	return b.value.String()
}

func (b Balance) MarshalJSON() ([]byte, error) {
	return b.value.MarshalJSON()
}

func (b *Balance) UnmarshalJSON(data []byte) error {
	var value decimal.Decimal
	if err := value.UnmarshalJSON(data); err != nil {
		return err
	}
	b.value = value
	return nil
}
