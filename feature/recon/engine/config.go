package engine

import (
	"time"

	"ledger-recon/feature/recon/strategy"
)

// Config holds configuration for one reconciliation engine.
type Config struct {
	// TargetMatchRate is the ledger match rate at which the controller
	// stops with TARGET_REACHED. Must be in (0,1].
	TargetMatchRate float64 `mapstructure:"target_match_rate" default:"0.8"`

	// MaxIterations caps the number of cascade passes.
	MaxIterations int `mapstructure:"max_iterations" default:"10"`

	// MaxWallTime caps the run wall time, checked at iteration boundaries.
	// Zero means unlimited.
	MaxWallTime time.Duration `mapstructure:"max_wall_time" default:"0"`

	// BalanceTolerance is the materiality threshold below which the two
	// sides are reported as balanced. This is not a matching tolerance.
	BalanceTolerance float64 `mapstructure:"balance_tolerance" default:"1000"`

	// TimingWindowDays is the size of the month-end window used when
	// classifying unmatched ledger records as timing differences.
	TimingWindowDays int `mapstructure:"timing_window_days" default:"2"`

	// TimingCategories lists the categories known to post with a lag.
	// This is caller-supplied domain knowledge, never inferred.
	TimingCategories []string `mapstructure:"timing_categories" default:""`

	// ScoreWorkers bounds the worker pool used for candidate scoring.
	// Values below 2 keep scoring serial. Match acceptance is always
	// serial and deterministic regardless of this setting.
	ScoreWorkers int `mapstructure:"score_workers" default:"1"`

	// Strategies overrides the built-in cascade. Nil selects the default
	// five strategies in their fixed priority order.
	Strategies []strategy.Strategy `mapstructure:"-"`
}

// withDefaults fills zero-valued options with their defaults.
func (c Config) withDefaults() Config {
	if c.TargetMatchRate == 0 {
		c.TargetMatchRate = 0.8
	}
	if c.MaxIterations == 0 {
		c.MaxIterations = 10
	}
	if c.TimingWindowDays == 0 {
		c.TimingWindowDays = 2
	}
	if c.BalanceTolerance == 0 {
		c.BalanceTolerance = 1000
	}
	if c.Strategies == nil {
		c.Strategies = strategy.DefaultCascade()
	}
	return c
}

// validate rejects out-of-range options after defaults are applied.
func (c Config) validate() error {
	if c.TargetMatchRate < 0 || c.TargetMatchRate > 1 {
		return &ConfigurationError{Option: "target_match_rate", Reason: "must be in (0,1]"}
	}
	if c.MaxIterations < 1 {
		return &ConfigurationError{Option: "max_iterations", Reason: "must be at least 1"}
	}
	if c.MaxWallTime < 0 {
		return &ConfigurationError{Option: "max_wall_time", Reason: "must not be negative"}
	}
	if c.BalanceTolerance < 0 {
		return &ConfigurationError{Option: "balance_tolerance", Reason: "must not be negative"}
	}
	if c.TimingWindowDays < 0 {
		return &ConfigurationError{Option: "timing_window_days", Reason: "must not be negative"}
	}
	if c.ScoreWorkers < 0 {
		return &ConfigurationError{Option: "score_workers", Reason: "must not be negative"}
	}
	if len(c.Strategies) == 0 {
		return &ConfigurationError{Option: "strategies", Reason: "cascade must contain at least one strategy"}
	}
	seen := make(map[string]struct{}, len(c.Strategies))
	for _, s := range c.Strategies {
		if _, dup := seen[s.Name()]; dup {
			return &ConfigurationError{Option: "strategies", Reason: "duplicate strategy name " + s.Name()}
		}
		seen[s.Name()] = struct{}{}
	}
	return nil
}
