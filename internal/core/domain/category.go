package domain

import (
	"fmt"
	"strings"

	"github.com/GabrielEVP/cashly-api-sub001/internal/apperrors"
)

// Category is a normalized classification tag on an expense or income record.
// Values are drawn from a closed set; use ParseExpenseCategory or
// ParseIncomeCategory to construct one from free-text input.
type Category string

// Expense categories.
const (
	CategoryFoodDining     Category = "FOOD_DINING"
	CategoryTransportation Category = "TRANSPORTATION"
	CategoryHousing        Category = "HOUSING"
	CategoryHealthcare     Category = "HEALTHCARE"
	CategoryEntertainment  Category = "ENTERTAINMENT"
	CategoryShopping       Category = "SHOPPING"
	CategoryEducation      Category = "EDUCATION"
	CategoryTravel         Category = "TRAVEL"
	CategoryOther          Category = "OTHER"
)

// Income categories. OTHER is shared with the expense catalog.
const (
	CategorySalary     Category = "SALARY"
	CategoryBusiness   Category = "BUSINESS"
	CategoryInvestment Category = "INVESTMENT"
)

// ExpenseCategories lists the closed set of valid expense categories.
var ExpenseCategories = []Category{
	CategoryFoodDining,
	CategoryTransportation,
	CategoryHousing,
	CategoryHealthcare,
	CategoryEntertainment,
	CategoryShopping,
	CategoryEducation,
	CategoryTravel,
	CategoryOther,
}

// IncomeCategories lists the closed set of valid income categories.
var IncomeCategories = []Category{
	CategorySalary,
	CategoryBusiness,
	CategoryInvestment,
	CategoryOther,
}

// ParseExpenseCategory normalizes free-text input (trim, upper-case) and
// returns the matching expense category, or a validation error listing the
// legal values.
func ParseExpenseCategory(input string) (Category, error) {
	return parseCategory(input, ExpenseCategories, "expense")
}

// ParseIncomeCategory normalizes free-text input (trim, upper-case) and
// returns the matching income category, or a validation error listing the
// legal values.
func ParseIncomeCategory(input string) (Category, error) {
	return parseCategory(input, IncomeCategories, "income")
}

func parseCategory(input string, catalog []Category, kind string) (Category, error) {
	normalized := Category(strings.ToUpper(strings.TrimSpace(input)))
	for _, c := range catalog {
		if normalized == c {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: invalid %s category %q, must be one of %s",
		apperrors.ErrValidation, kind, input, joinCategories(catalog))
}

func joinCategories(catalog []Category) string {
	names := make([]string, len(catalog))
	for i, c := range catalog {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func (c Category) String() string {
	return string(c)
}
