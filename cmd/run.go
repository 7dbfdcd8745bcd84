package cmd

import (
	"fmt"

	"ledger-recon/core/config"
	"ledger-recon/core/logger"
	"ledger-recon/feature/recon/engine"
	"ledger-recon/feature/recon/loader"
	"ledger-recon/feature/recon/models"
	"ledger-recon/feature/recon/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the run command
	ledgerFile    string
	statementFile string
	outputFile    string
)

// runCmd performs one reconciliation run over two CSV files.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Reconcile a ledger CSV against a statement CSV",
	Long: `Reconcile an internal ledger export against an external statement export.

Both files must carry a header row with either an amount column or a
debit/credit pair. The run report lists every match with its rationale,
classifies leftover ledger records, and includes the full audit trail.

Examples:
  # Report to the log only
  ledger-recon run --ledger gl.csv --statement bank.csv

  # Also write the full JSON report
  ledger-recon run --ledger gl.csv --statement bank.csv --output report.json`,
	RunE: runReconciliation,
}

func init() {
	runCmd.Flags().StringVar(&ledgerFile, "ledger", "", "Path to the ledger CSV export (required)")
	runCmd.Flags().StringVar(&statementFile, "statement", "", "Path to the statement CSV export (required)")
	runCmd.Flags().StringVar(&outputFile, "output", "", "Path to write the full JSON report (optional)")
	_ = runCmd.MarkFlagRequired("ledger")
	_ = runCmd.MarkFlagRequired("statement")

	RootCmd.AddCommand(runCmd)
}

func runReconciliation(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	l.Info("Starting reconciliation",
		zap.String("ledger", ledgerFile),
		zap.String("statement", statementFile),
	)

	// Load and normalize both sides
	ledger, err := loader.LoadFile(ledgerFile, models.SideLedger)
	if err != nil {
		return fmt.Errorf("failed to load ledger: %w", err)
	}
	statement, err := loader.LoadFile(statementFile, models.SideStatement)
	if err != nil {
		return fmt.Errorf("failed to load statement: %w", err)
	}

	eng, err := engine.New(cfg.Recon, l)
	if err != nil {
		return fmt.Errorf("failed to build engine: %w", err)
	}

	result, err := eng.Run(cmd.Context(), ledger, statement)
	if err != nil {
		return fmt.Errorf("reconciliation failed: %w", err)
	}

	printRunReport(l, result)

	if outputFile != "" {
		if err := report.WriteFile(outputFile, result); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		l.Info("Report written", zap.String("path", outputFile))
	}

	return nil
}

// printRunReport prints a formatted reconciliation report using logger.
func printRunReport(l *zap.Logger, result *models.Result) {
	s := result.Summary

	status := "IMBALANCED"
	if s.Balanced {
		status = "BALANCED"
	}

	l.Info("Reconciliation report",
		zap.String("status", status),
		zap.String("final_state", string(result.FinalState)),
		zap.Float64("ledger_total", s.LedgerTotal),
		zap.Float64("statement_total", s.StatementTotal),
		zap.Float64("variance", s.Variance),
		zap.Float64("variance_percentage", s.VariancePercentage),
		zap.Float64("match_rate", s.MatchRate),
		zap.Int("matches", s.MatchCount),
		zap.Int("unmatched_ledger", len(result.UnmatchedLedger)),
		zap.Int("unmatched_statement", len(result.UnmatchedStatement)),
		zap.Int("timing_differences", s.TimingDifferences),
		zap.Int("discrepancies", s.Discrepancies),
	)

	for name, stats := range result.Audit.StrategyStats {
		if stats.MatchesFound == 0 {
			continue
		}
		l.Info("Strategy contribution",
			zap.String("strategy", name),
			zap.Int("matches_found", stats.MatchesFound),
			zap.Float64("average_confidence", stats.AverageConfidence),
			zap.Float64("contribution", stats.ContributionToTotal),
		)
	}
}
