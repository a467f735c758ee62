package main

import (
	"strings"

	"github.com/spf13/cobra"

	"clauselens/internal/pipeline"
)

var rewriteJSON bool

var rewriteCmd = &cobra.Command{
	Use:   "rewrite <clause text>",
	Short: "Suggest rule-based redrafts of a clause",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		if err := validateInput(text); err != nil {
			return err
		}

		result := analyzer.Analyze(text, pipeline.Options{Rewrite: true})
		if rewriteJSON {
			return printJSON(cmd, result.Rewrite)
		}

		rw := result.Rewrite
		if len(rw.Candidates) == 0 {
			cmd.Println("No rewrite rules matched; text unchanged.")
			return nil
		}

		cmd.Println(renderDiff(rw.Diff))
		cmd.Println()
		for _, c := range rw.Candidates {
			cmd.Printf("  [%s] %q -> %q (%.0f%%)\n",
				c.Category, c.Original, c.Suggested, c.Confidence*100)
		}
		cmd.Println()
		for category, m := range rw.Categories {
			cmd.Printf("  %s: %d change(s), mean confidence %.2f, impact %.2f\n",
				category, m.Count, m.MeanConfidence, m.Impact)
		}
		return nil
	},
}

func init() {
	rewriteCmd.Flags().BoolVar(&rewriteJSON, "json", false, "emit the rewrite report as JSON")
}
