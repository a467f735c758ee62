package main

import (
	"github.com/spf13/cobra"
)

var diffJSON bool

var diffCmd = &cobra.Command{
	Use:   "diff <old text> <new text>",
	Short: "Show a word-level diff between two texts",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateInput(args[0]); err != nil {
			return err
		}
		if err := validateInput(args[1]); err != nil {
			return err
		}

		segments := analyzer.Diff(args[0], args[1])
		if diffJSON {
			return printJSON(cmd, segments)
		}
		cmd.Println(renderDiff(segments))
		return nil
	},
}

func init() {
	diffCmd.Flags().BoolVar(&diffJSON, "json", false, "emit the edit script as JSON")
}
