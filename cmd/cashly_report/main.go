// Command cashly_report runs the period analytics engine over a small set of
// sample records and prints the resulting reports as structured logs. It is
// the manual smoke test for the bookkeeping core.
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/GabrielEVP/cashly-api-sub001/internal/core/domain"
	"github.com/GabrielEVP/cashly-api-sub001/internal/core/services"
	"github.com/GabrielEVP/cashly-api-sub001/internal/platform/config"
	"github.com/google/uuid"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	userID := uuid.NewString()
	now := time.Now()
	expenses := sampleExpenses(logger, userID, now)

	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

	total, err := services.TotalForPeriod(expenses, userID, start, end)
	if err != nil {
		logger.Error("Failed to compute period total", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Period total",
		slog.String("user_id", userID),
		slog.String("currency", cfg.DefaultCurrency),
		slog.String("total", total.String()),
	)

	percentages, err := services.CategoryPercentages(expenses, userID, start, end)
	if err != nil {
		logger.Error("Failed to compute category percentages", slog.String("error", err.Error()))
		os.Exit(1)
	}
	for category, pct := range percentages {
		logger.Info("Category share",
			slog.String("category", category.String()),
			slog.String("percentage", pct.String()),
		)
	}

	budgetLimit, err := domain.NewMoney(cfg.MonthlyBudget)
	if err != nil {
		logger.Error("Invalid monthly budget", slog.String("error", err.Error()))
		os.Exit(1)
	}
	utilization, err := services.BudgetUtilization(expenses, userID, start, end, budgetLimit)
	if err != nil {
		logger.Error("Failed to compute budget utilization", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Budget utilization",
		slog.String("limit", utilization.BudgetLimit.String()),
		slog.String("actual", utilization.ActualSpending.String()),
		slog.String("utilization_pct", utilization.UtilizationPercentage.String()),
		slog.Bool("over_budget", utilization.IsOverBudget),
		slog.String("remaining", utilization.Remaining.String()),
	)

	trend, err := services.TrendForMonth(expenses, userID, now)
	if err != nil {
		logger.Error("Failed to compute spending trend", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Spending trend",
		slog.String("month", trend.ReferenceMonth.Format("2006-01")),
		slog.String("current", trend.CurrentTotal.String()),
		slog.String("previous", trend.PreviousTotal.String()),
		slog.String("change_pct", trend.ChangePercentage.String()),
		slog.Bool("increased", trend.HasIncreased()),
	)

	average, err := services.MonthlyAverage(expenses, userID, cfg.TrendMonths, now)
	if err != nil {
		logger.Error("Failed to compute monthly average", slog.String("error", err.Error()))
		os.Exit(1)
	}
	excessive, err := services.ExceedsThreshold(total, average, cfg.ExcessiveMultiplier)
	if err != nil {
		logger.Error("Failed to evaluate spending threshold", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Monthly average",
		slog.Int("months", cfg.TrendMonths),
		slog.String("average", average.String()),
		slog.Bool("current_month_excessive", excessive),
	)
}

func sampleExpenses(logger *slog.Logger, userID string, now time.Time) []domain.ExpenseRecord {
	fixtures := []struct {
		amount   string
		desc     string
		category domain.Category
		daysAgo  int
	}{
		{"120.00", "Groceries", domain.CategoryFoodDining, 2},
		{"80.00", "Bus pass", domain.CategoryTransportation, 5},
		{"450.00", "Rent share", domain.CategoryHousing, 10},
		{"60.00", "Concert tickets", domain.CategoryEntertainment, 35},
	}

	records := make([]domain.ExpenseRecord, 0, len(fixtures))
	for _, f := range fixtures {
		record, err := domain.NewExpenseRecord(userID, domain.MustMoney(f.amount), f.desc, f.category, now.AddDate(0, 0, -f.daysAgo))
		if err != nil {
			logger.Error("Failed to build sample expense", slog.String("error", err.Error()))
			os.Exit(1)
		}
		records = append(records, *record)
	}
	return records
}
