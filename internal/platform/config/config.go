package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	IsProduction bool

	// Analytics defaults consumed by report generation.
	DefaultCurrency       string
	ExcessiveMultiplier   decimal.Decimal // Expense-vs-average excess threshold
	SignificantMultiplier decimal.Decimal // Income-vs-average significance threshold
	TrendMonths           int             // Monthly-average window
	MonthlyBudget         decimal.Decimal // Default budget limit per month
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("DEFAULT_CURRENCY", "USD")
	viper.SetDefault("EXCESSIVE_MULTIPLIER", "1.5")
	viper.SetDefault("SIGNIFICANT_MULTIPLIER", "2.0")
	viper.SetDefault("TREND_MONTHS", 6)
	viper.SetDefault("MONTHLY_BUDGET", "1000")

	// Environment variables override defaults and .env file values.
	viper.AutomaticEnv()

	cfg := &Config{}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.DefaultCurrency = viper.GetString("DEFAULT_CURRENCY")

	excessive, err := decimal.NewFromString(viper.GetString("EXCESSIVE_MULTIPLIER"))
	if err != nil {
		return nil, fmt.Errorf("invalid EXCESSIVE_MULTIPLIER: %w", err)
	}
	cfg.ExcessiveMultiplier = excessive

	significant, err := decimal.NewFromString(viper.GetString("SIGNIFICANT_MULTIPLIER"))
	if err != nil {
		return nil, fmt.Errorf("invalid SIGNIFICANT_MULTIPLIER: %w", err)
	}
	cfg.SignificantMultiplier = significant

	cfg.TrendMonths = viper.GetInt("TREND_MONTHS")
	if cfg.TrendMonths <= 0 {
		cfg.TrendMonths = 6
		log.Printf("Warning: TREND_MONTHS must be positive. Defaulting to %d.\n", cfg.TrendMonths)
	}

	budget, err := decimal.NewFromString(viper.GetString("MONTHLY_BUDGET"))
	if err != nil {
		return nil, fmt.Errorf("invalid MONTHLY_BUDGET: %w", err)
	}
	cfg.MonthlyBudget = budget

	return cfg, nil
}
