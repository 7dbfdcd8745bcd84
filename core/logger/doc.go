// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) for both the CLI and the reconciliation engine.
//
// # Run Correlation
//
// Every reconciliation run carries a generated run ID. The WithRunID helper
// attaches that ID to the log entry, ensuring that all logs produced during
// a specific run can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Reconciliation started")
//
//	// Inside a run:
//	l := logger.WithRunID(log, runID)
//	l.Warn("Strategy evaluation failed", zap.Error(err))
package logger
