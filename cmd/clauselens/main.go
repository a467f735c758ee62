// clauselens analyzes natural-language clauses: tagged tokens, heuristic
// quality metrics, a 3-bit state classification, a relation skeleton,
// rule-based rewrite suggestions, and document-level dependency analysis.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"clauselens/internal/config"
	"clauselens/internal/pipeline"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Logger, built in PersistentPreRunE
	logger *zap.Logger

	cfg      config.Config
	analyzer *pipeline.Analyzer
)

// Input contract of the request layer this CLI stands in for.
const (
	minInputLen = 1
	maxInputLen = 10000
)

var rootCmd = &cobra.Command{
	Use:   "clauselens",
	Short: "clauselens - deterministic clause analysis pipeline",
	Long: `clauselens turns a short natural-language clause into a tagged token
sequence, five heuristic quality metrics, a 3-bit state classification, a
symbolic relation skeleton, and rule-based rewrite suggestions. Multi-clause
documents additionally get a dependency graph with cycle detection,
topological ordering, and equivalence grouping.

All scores are heuristic lexical counts; nothing here is legal advice.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapCfg := zap.NewProductionConfig()
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg = config.Default()
		if configPath != "" {
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
		}

		analyzer, err = pipeline.New(cfg, nil, logger)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(docCmd)
	rootCmd.AddCommand(rewriteCmd)
	rootCmd.AddCommand(diffCmd)
}

// validateInput enforces the request-layer contract before the core is
// invoked: the core itself treats malformed calls as programmer errors.
func validateInput(text string) error {
	if len(text) < minInputLen {
		return fmt.Errorf("input is empty; expected %d-%d characters", minInputLen, maxInputLen)
	}
	if len(text) > maxInputLen {
		return fmt.Errorf("input is %d characters; limit is %d", len(text), maxInputLen)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
