package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"clauselens/internal/graph"
)

var (
	docDOT  bool
	docJSON bool
)

// clauseFile is the on-disk document format: a list of clause records.
type clauseFile struct {
	Clauses []graph.Clause `yaml:"clauses"`
}

var docCmd = &cobra.Command{
	Use:   "doc <clauses.yaml>",
	Short: "Analyze dependencies across a clause list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read clause file: %w", err)
		}
		var file clauseFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("parse clause file: %w", err)
		}
		for _, c := range file.Clauses {
			if c.ID == "" || c.Text == "" {
				return fmt.Errorf("every clause needs an id and text")
			}
			if err := validateInput(c.Text); err != nil {
				return fmt.Errorf("clause %s: %w", c.ID, err)
			}
		}

		result := analyzer.AnalyzeDocument(file.Clauses)

		if docDOT {
			cmd.Print(result.DOT)
			return nil
		}
		if docJSON {
			return printJSON(cmd, result)
		}

		cmd.Printf("Vertices: %d  Edges: %d  Density: %.3f  AvgOut: %.2f\n",
			result.Stats.Vertices, result.Stats.Edges,
			result.Stats.Density, result.Stats.AvgOutDegree)

		if len(result.Cycles) > 0 {
			cmd.Printf("Cycles (%d):\n", len(result.Cycles))
			for _, cycle := range result.Cycles {
				cmd.Println("  " + strings.Join(cycle, " -> "))
			}
			cmd.Println("No topological order exists.")
		} else {
			cmd.Println("Order: " + strings.Join(result.TopologicalOrder, " -> "))
		}

		for i, class := range result.EquivalenceClasses {
			if len(class.Members) > 1 {
				cmd.Printf("Class %d: %s\n", i+1, strings.Join(class.Members, ", "))
			}
		}
		return nil
	},
}

func init() {
	docCmd.Flags().BoolVar(&docDOT, "dot", false, "emit the dependency graph in DOT form")
	docCmd.Flags().BoolVar(&docJSON, "json", false, "emit the full document result as JSON")
}
