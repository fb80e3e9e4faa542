package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/Veraticus/silhouette/internal/common"
	"github.com/Veraticus/silhouette/internal/model"
	"golang.org/x/sync/errgroup"
)

// BatchOptions configures batch analysis behavior.
type BatchOptions struct {
	OnProgress      func(BatchResult) // Called once per finished source; may be called concurrently
	ParallelWorkers int               // Number of sources analyzed at once
}

// DefaultBatchOptions returns sensible defaults.
func DefaultBatchOptions() BatchOptions {
	return BatchOptions{
		ParallelWorkers: 4,
	}
}

// BatchResult is the outcome for one landmark source.
type BatchResult struct {
	Error  error
	Result model.AnalysisResult
	Source string
}

// BatchSummary contains statistics about a batch run.
type BatchSummary struct {
	ByShape        map[model.BodyType]int `json:"by_shape"`
	Results        []BatchResult          `json:"-"`
	Total          int                    `json:"total"`
	Succeeded      int                    `json:"succeeded"`
	Failed         int                    `json:"failed"`
	ProcessingTime time.Duration          `json:"processing_time"`
}

// AnalyzeBatch analyzes every source with bounded parallelism. Results keep the order of
// sources. Per-source failures are recorded in the summary; only context cancellation is
// returned as an error.
func (e *AnalysisEngine) AnalyzeBatch(ctx context.Context, sources []LandmarkSource, opts BatchOptions) (*BatchSummary, error) {
	startTime := time.Now()
	if opts.ParallelWorkers <= 0 {
		opts.ParallelWorkers = DefaultBatchOptions().ParallelWorkers
	}

	results := make([]BatchResult, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.ParallelWorkers)

	for i, src := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			result, err := e.AnalyzeSource(gctx, src)
			results[i] = BatchResult{
				Source: src.Name(),
				Result: result,
				Error:  err,
			}

			if err != nil {
				common.LogError(err, "Batch source failed", common.Fields{"source": src.Name()})
			}
			if opts.OnProgress != nil {
				opts.OnProgress(results[i])
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &BatchSummary{
		ByShape: make(map[model.BodyType]int),
		Results: results,
		Total:   len(sources),
	}
	for _, r := range results {
		if r.Error != nil || !r.Result.Success {
			summary.Failed++
			continue
		}
		summary.Succeeded++
		summary.ByShape[r.Result.BodyShape]++
	}
	summary.ProcessingTime = time.Since(startTime)

	slog.Info("Batch analysis complete",
		"total", summary.Total,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
		"duration", summary.ProcessingTime)

	return summary, nil
}
