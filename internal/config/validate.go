package config

import (
	"fmt"
	"strings"
)

// Isolation levels accepted by ledger.isolation.
const (
	IsolationReadCommitted  = "read_committed"
	IsolationRepeatableRead = "repeatable_read"
	IsolationSerializable   = "serializable"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be between 4 and 31 (got %d)", c.Auth.PasswordHashCost)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Ledger.validate(); err != nil {
		return fmt.Errorf("ledger: %w", err)
	}

	if c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	return nil
}

func (l *LedgerConfig) validate() error {
	if l.MaxAttempts < 1 || l.MaxAttempts > 10 {
		return fmt.Errorf("max_attempts must be between 1 and 10 (got %d)", l.MaxAttempts)
	}
	if l.InitialBackoff <= 0 {
		return fmt.Errorf("initial_backoff must be > 0 (got %s)", l.InitialBackoff)
	}
	if l.MaxBackoff < l.InitialBackoff {
		return fmt.Errorf("max_backoff (%s) must be >= initial_backoff (%s)", l.MaxBackoff, l.InitialBackoff)
	}
	if l.MaxProductionQuantity <= 0 {
		return fmt.Errorf("max_production_quantity must be > 0 (got %d)", l.MaxProductionQuantity)
	}

	l.Isolation = strings.ToLower(strings.TrimSpace(l.Isolation))
	switch l.Isolation {
	case IsolationReadCommitted, IsolationRepeatableRead, IsolationSerializable:
	default:
		return fmt.Errorf("isolation must be one of %s, %s, %s (got %q)",
			IsolationReadCommitted, IsolationRepeatableRead, IsolationSerializable, l.Isolation)
	}

	return nil
}
