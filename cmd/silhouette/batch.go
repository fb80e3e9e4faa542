package main

import (
	"fmt"
	"time"

	"github.com/Veraticus/silhouette/internal/cli"
	"github.com/Veraticus/silhouette/internal/common"
	"github.com/Veraticus/silhouette/internal/config"
	"github.com/Veraticus/silhouette/internal/engine"
	"github.com/Veraticus/silhouette/internal/landmarks"
	"github.com/Veraticus/silhouette/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type batchFileOutput struct {
	Source    string         `json:"source"`
	BodyShape model.BodyType `json:"body_shape,omitempty"`
	Error     string         `json:"error,omitempty"`
}

type batchOutput struct {
	ByShape        map[model.BodyType]int `json:"by_shape"`
	Files          []batchFileOutput      `json:"files"`
	Total          int                    `json:"total"`
	Succeeded      int                    `json:"succeeded"`
	Failed         int                    `json:"failed"`
	ProcessingTime string                 `json:"processing_time"`
}

func newBatchOutput(summary *engine.BatchSummary) batchOutput {
	out := batchOutput{
		ByShape:        summary.ByShape,
		Files:          make([]batchFileOutput, len(summary.Results)),
		Total:          summary.Total,
		Succeeded:      summary.Succeeded,
		Failed:         summary.Failed,
		ProcessingTime: summary.ProcessingTime.Round(time.Millisecond).String(),
	}
	for i, r := range summary.Results {
		out.Files[i] = batchFileOutput{Source: r.Source, BodyShape: r.Result.BodyShape}
		if r.Error != nil {
			out.Files[i].Error = r.Error.Error()
		}
	}
	return out
}

func batchCmd() *cobra.Command {
	var noProgress bool

	cmd := &cobra.Command{
		Use:   "batch <directory>",
		Short: "Analyze every landmark file in a directory",
		Long: `Batch analyzes all .json, .yaml and .yml landmark files in a directory in parallel
and prints a summary of the body shapes found.

Press Ctrl+C to stop; files already in flight finish first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			analysisCfg, err := config.LoadAnalysisConfig()
			if err != nil {
				return common.NewUserError("invalid analysis settings", err)
			}
			format, err := outputFormat()
			if err != nil {
				return err
			}

			files, err := landmarks.FindFiles(config.ExpandPath(args[0]))
			if err != nil {
				return common.NewUserError("cannot read batch directory", err)
			}
			if len(files) == 0 {
				return common.NewUserError(fmt.Sprintf("no landmark files found in %s", args[0]), nil)
			}

			sources := make([]engine.LandmarkSource, len(files))
			for i, f := range files {
				sources[i] = landmarks.NewFileSource(f)
			}

			interrupts := cli.NewInterruptHandler(cmd.ErrOrStderr(), "Finishing files already in progress")
			ctx := interrupts.HandleInterrupts(cmd.Context())
			defer interrupts.Stop()

			opts := engine.BatchOptions{ParallelWorkers: analysisCfg.Workers}
			if format == cli.OutputText && !noProgress {
				progress := cli.NewProgress(cmd.ErrOrStderr(), len(sources), "Analyzing landmarks...")
				opts.OnProgress = func(engine.BatchResult) {
					progress.Increment()
				}
			}

			eng := engine.NewWithConfig(engine.Config{ReferenceInches: analysisCfg.ReferenceInches})
			summary, err := eng.AnalyzeBatch(ctx, sources, opts)
			if err != nil {
				if interrupts.WasInterrupted() {
					return common.NewUserError("batch interrupted", err)
				}
				return fmt.Errorf("batch analysis failed: %w", err)
			}

			return writeResult(cmd, newBatchOutput(summary), func() string {
				return cli.RenderBatchSummary(summary)
			})
		},
	}

	cmd.Flags().Int("workers", config.DefaultAnalysisConfig().Workers, "number of files analyzed in parallel")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "hide the progress bar")
	_ = viper.BindPFlag(config.KeyWorkers, cmd.Flags().Lookup("workers"))

	return cmd
}
