package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"

	"extratime/timesheet"
)

type Config struct {
	DatabaseURL   string        `env:"DATABASE_URL,   default=postgresql://postgres@localhost:5432/extratime"`
	JWTSecret     string        `env:"JWT_SECRET,     default=change-me-in-production"`
	JWTExpiration time.Duration `env:"JWT_EXPIRATION, default=24h"`
	ServerPort    string        `env:"SERVER_PORT,    default=8080"`
	LogLevel      string        `env:"LOG_LEVEL,      default=info"`
	LogPretty     bool          `env:"LOG_PRETTY,     default=false"`

	// Accounting constants. Defaults mirror the payroll agreement: R$15.75
	// per overtime hour, one hour deducted for lunch, 160h monthly target.
	OvertimeRate   float64 `env:"OVERTIME_RATE,   default=15.75"`
	LunchDeduction float64 `env:"LUNCH_DEDUCTION, default=1"`
	MonthlyGoal    float64 `env:"MONTHLY_GOAL,    default=160"`
}

// Load reads configuration from environment variables.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Calculator builds the accounting engine from the configured constants.
func (c *Config) Calculator() timesheet.Calculator {
	return timesheet.Calculator{
		Rate:           c.OvertimeRate,
		LunchDeduction: c.LunchDeduction,
		MonthlyGoal:    c.MonthlyGoal,
	}
}
