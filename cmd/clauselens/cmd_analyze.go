package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"clauselens/internal/pipeline"
)

var (
	analyzeRewrite bool
	analyzeJSON    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <clause text>",
	Short: "Analyze a single clause",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		if err := validateInput(text); err != nil {
			return err
		}

		result := analyzer.Analyze(text, pipeline.Options{Rewrite: analyzeRewrite})
		if analyzeJSON {
			return printJSON(cmd, result)
		}
		printResult(cmd, result)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeRewrite, "rewrite", false, "include rewrite suggestions and diff")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "emit the full result record as JSON")
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func printResult(cmd *cobra.Command, r *pipeline.Result) {
	cmd.Printf("State %s (%s)\n", r.State.Bits(), stateBadge(r.State))
	cmd.Println(r.State.Explanation)
	cmd.Println()

	cmd.Printf("  structural  %.2f  %s\n", r.Metrics.Structural.Score, r.Metrics.Structural.Label)
	cmd.Printf("  logical     %.2f  %s\n", r.Metrics.Logical.Score, r.Metrics.Logical.Label)
	cmd.Printf("  ethical     %.2f  %s\n", r.Metrics.Ethical.Score, r.Metrics.Ethical.Label)
	cmd.Printf("  ambiguity   %.2f  %s\n", r.Metrics.Ambiguity.Score, r.Metrics.Ambiguity.Label)
	cmd.Printf("  modal       %s\n", r.Metrics.Modal.Summary)
	cmd.Println()

	cmd.Println("Relation:", r.Relation.Text)

	if r.Rewrite != nil {
		cmd.Println()
		cmd.Printf("Rewrite (%d candidate(s)):\n", len(r.Rewrite.Candidates))
		cmd.Println(renderDiff(r.Rewrite.Diff))
		cmd.Printf("Multiway: %d state(s), %d terminal\n",
			r.Rewrite.Multiway.StateCount, r.Rewrite.Multiway.TerminalCount)
	}
}
