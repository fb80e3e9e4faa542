package main

import (
	"fmt"
	"strings"

	"github.com/Veraticus/silhouette/internal/cli"
	"github.com/Veraticus/silhouette/internal/config"
	"github.com/Veraticus/silhouette/internal/landmarks"
	"github.com/Veraticus/silhouette/internal/model"
	"github.com/spf13/cobra"
)

func analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <landmarks-file>...",
		Short: "Analyze landmark files and report body shape and measurements",
		Long: `Analyze reads one or more landmark documents and runs the full analysis on each file.

A file holds a single view or a list of views (front, side, back). The front view drives
the measurements; other views are recorded.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine()
			if err != nil {
				return err
			}

			var (
				results []model.AnalysisResult
				failed  int
			)
			for _, path := range config.ExpandPaths(args) {
				result, err := eng.AnalyzeSource(cmd.Context(), landmarks.NewFileSource(path))
				if err != nil {
					failed++
					if len(result.Errors) == 0 {
						result.Errors = append(result.Errors, err.Error())
					}
				}
				results = append(results, result)
			}

			var payload any = results
			if len(results) == 1 {
				payload = results[0]
			}
			if err := writeResult(cmd, payload, func() string {
				rendered := make([]string, len(results))
				for i, r := range results {
					rendered[i] = cli.RenderAnalysis(r)
				}
				return strings.Join(rendered, "\n")
			}); err != nil {
				return err
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d analyses failed", failed, len(results))
			}
			return nil
		},
	}
}
