// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package batch

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/zakaut"
	"github.com/poiesic/zakaut/core"
)

// Processor answers one intake document against a criteria corpus.
// *zakaut.Pipeline satisfies it.
type Processor interface {
	Process(ctx context.Context, intakeText string, docs []core.CriteriaDocument, opts *zakaut.ProcessOptions) (*zakaut.ProcessResult, error)
}

// Config holds configuration for a batch run.
type Config struct {
	// PoolSize is the number of intake files processed concurrently
	PoolSize int

	// ReportInterval is how often to report progress (number of files)
	ReportInterval int

	// MaxRetries is the maximum number of attempts per intake file
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	workers := runtime.NumCPU() / 2
	if workers < 1 {
		workers = 1
	}
	return &Config{
		PoolSize:       workers,
		ReportInterval: 10,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
	}
}

// FileResult is the outcome of one intake file within a run. Err is set when
// the file failed after all retry attempts; the rest of the run is unaffected.
type FileResult struct {
	Name  string
	Route *core.RouteResult
	Cases []*core.CaseRecord
	Err   error
}

// RunResult summarizes one batch run. Results holds one entry per intake
// file, in the directory's name order.
type RunResult struct {
	RunID   string
	Results []FileResult
	Failed  int
}

// Runner processes a directory of intake files over a worker pool.
type Runner struct {
	processor Processor
	config    *Config
	progress  io.Writer
	pool      *ants.Pool
}

// NewRunner creates a batch runner.
// progress: where to write progress output (typically os.Stderr)
func NewRunner(processor Processor, config *Config, progress io.Writer) (*Runner, error) {
	if processor == nil {
		return nil, ErrProcessorRequired
	}
	if config == nil {
		config = DefaultConfig()
	}

	pool, err := ants.NewPool(config.PoolSize)
	if err != nil {
		return nil, fmt.Errorf("creating worker pool: %w", err)
	}

	return &Runner{
		processor: processor,
		config:    config,
		progress:  progress,
		pool:      pool,
	}, nil
}

// Release frees the runner's worker pool.
func (r *Runner) Release() {
	if r.pool != nil {
		r.pool.Release()
		r.pool = nil
	}
}

// Run answers every intake file in intakeDir against docs. Each file is
// retried per the config before its failure is recorded; file failures do
// not abort the run. Run itself fails only on setup problems (unreadable
// directory, invalid corpus) or a cancelled context.
func (r *Runner) Run(ctx context.Context, intakeDir string, docs []core.CriteriaDocument) (*RunResult, error) {
	files, err := LoadIntakeDir(intakeDir)
	if err != nil {
		return nil, err
	}
	if err := core.ValidateDocuments(docs); err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	fmt.Fprintf(r.progress, "Starting batch run %s: %d intake files (workers: %d)\n",
		runID, len(files), r.config.PoolSize)

	tracker := NewProgressTracker(r.progress, len(files), r.config.ReportInterval)
	tracker.Start()

	results := make([]FileResult, len(files))

	var wg sync.WaitGroup
	for i, file := range files {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			results[i] = r.processFile(ctx, file, docs, runID)
			tracker.Increment(1)
		}
		if err := r.pool.Submit(task); err != nil {
			// Pool saturated or released: degrade to inline execution.
			task()
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tracker.Finish()

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}

	elapsed := tracker.Elapsed()
	fmt.Fprintf(r.progress, "Batch run %s complete. Processed %d files (%d failed) in %v (%.1f files/sec)\n",
		runID, len(files), failed, elapsed.Round(time.Second), float64(len(files))/elapsed.Seconds())

	return &RunResult{RunID: runID, Results: results, Failed: failed}, nil
}

// processFile answers one intake file, retrying transient failures.
func (r *Runner) processFile(ctx context.Context, file IntakeFile, docs []core.CriteriaDocument, runID string) FileResult {
	res := FileResult{Name: file.Name}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	res.Err = RetryWithBackoff(ctx, func() error {
		out, err := r.processor.Process(ctx, file.Text, docs, &zakaut.ProcessOptions{RunID: runID})
		if err != nil {
			return err
		}
		res.Route = out.Route
		res.Cases = out.Cases
		return nil
	}, r.config.MaxRetries, r.config.RetryDelay)

	return res
}
