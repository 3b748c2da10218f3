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


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/zakaut"
	"github.com/poiesic/zakaut/ai"
	"github.com/poiesic/zakaut/ai/openai"
	"github.com/poiesic/zakaut/batch"
	"github.com/poiesic/zakaut/core"
	"github.com/poiesic/zakaut/corpus"
	"github.com/poiesic/zakaut/planner"
	"github.com/poiesic/zakaut/retrieval"
	"github.com/poiesic/zakaut/routing"
	"github.com/poiesic/zakaut/storage/badger"
)

var (
	categoryColor = color.New(color.FgCyan, color.Bold)
	sectionColor  = color.New(color.FgYellow)
	dimColor      = color.New(color.FgHiBlack)
)

func main() {
	// A .env file is optional; existing environment variables win
	_ = godotenv.Load()

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "zakaut",
		Usage: "Eligibility screening over Hebrew criteria documents",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "retrieve",
				Usage:  "Find criteria sections matching queries, no model calls",
				Action: retrieveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "docs",
						Aliases:  []string{"d"},
						Usage:    "Directory of criteria documents (.txt/.md)",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:     "query",
						Aliases:  []string{"q"},
						Usage:    "Criteria query (repeatable)",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "max-per-query",
						Usage: "Maximum sections returned per query",
						Value: 1,
					},
				},
			},
			{
				Name:   "plan",
				Usage:  "Show the retrieval plan for a category and intake document",
				Action: planCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "category",
						Aliases:  []string{"c"},
						Usage:    "Eligibility category or routed label",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "intake",
						Aliases:  []string{"i"},
						Usage:    "Path to the intake document",
						Required: true,
					},
				},
			},
			{
				Name:   "route",
				Usage:  "Classify an intake document into eligibility categories",
				Action: routeCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "intake",
						Aliases:  []string{"i"},
						Usage:    "Path to the intake document",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "db",
						Usage: "Path to BadgerDB directory for the route cache (omit to skip caching)",
					},
					&cli.StringFlag{
						Name:  "host",
						Usage: "OpenAI-compatible host for both services (default: OpenAI API)",
					},
					&cli.StringFlag{
						Name:  "classifier-model",
						Usage: "Model used to score categories",
					},
					&cli.StringFlag{
						Name:  "composer-model",
						Usage: "Model used to compose answers",
					},
					&cli.Float64Flag{
						Name:  "min-confidence",
						Usage: "Confidence threshold for routed categories",
						Value: 0.40,
					},
				},
			},
			{
				Name:   "answer",
				Usage:  "Answer an intake document against a criteria corpus",
				Action: answerCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "docs",
						Aliases:  []string{"d"},
						Usage:    "Directory of criteria documents (.txt/.md)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "intake",
						Aliases:  []string{"i"},
						Usage:    "Path to the intake document",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "db",
						Usage: "Path to BadgerDB directory for the case log and route cache",
						Value: "./zakaut_db",
					},
					&cli.IntFlag{
						Name:  "max-per-query",
						Usage: "Maximum sections retrieved per query",
						Value: 1,
					},
					&cli.StringFlag{
						Name:  "host",
						Usage: "OpenAI-compatible host for both services (default: OpenAI API)",
					},
					&cli.StringFlag{
						Name:  "classifier-model",
						Usage: "Model used to score categories",
					},
					&cli.StringFlag{
						Name:  "composer-model",
						Usage: "Model used to compose answers",
					},
					&cli.Float64Flag{
						Name:  "min-confidence",
						Usage: "Confidence threshold for routed categories",
						Value: 0.40,
					},
				},
			},
			{
				Name:   "batch",
				Usage:  "Answer a directory of intake documents in one run",
				Action: batchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "docs",
						Aliases:  []string{"d"},
						Usage:    "Directory of criteria documents (.txt/.md)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "intake-dir",
						Usage:    "Directory of intake documents (.txt/.md)",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "db",
						Usage: "Path to BadgerDB directory for the case log and route cache",
						Value: "./zakaut_db",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of intake files processed concurrently",
						Value: 4,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N files",
						Value: 10,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum attempts per intake file",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
					&cli.IntFlag{
						Name:  "max-per-query",
						Usage: "Maximum sections retrieved per query",
						Value: 1,
					},
					&cli.StringFlag{
						Name:  "host",
						Usage: "OpenAI-compatible host for both services (default: OpenAI API)",
					},
					&cli.StringFlag{
						Name:  "classifier-model",
						Usage: "Model used to score categories",
					},
					&cli.StringFlag{
						Name:  "composer-model",
						Usage: "Model used to compose answers",
					},
					&cli.Float64Flag{
						Name:  "min-confidence",
						Usage: "Confidence threshold for routed categories",
						Value: 0.40,
					},
				},
			},
			{
				Name:   "history",
				Usage:  "Show recorded case records",
				Action: historyCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Usage:    "Path to BadgerDB directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum records to show, newest first",
						Value: 20,
					},
					&cli.StringFlag{
						Name:  "run",
						Usage: "Show only records of this batch run ID",
					},
				},
			},
		},
	}
}

func retrieveCommand(c *cli.Context) error {
	ctx := context.Background()

	docs, err := corpus.LoadDirectory(ctx, c.String("docs"))
	if err != nil {
		return fmt.Errorf("failed to load criteria documents: %w", err)
	}

	retriever, err := retrieval.NewRetriever(retrieval.WithMaxPerQuery(c.Int("max-per-query")))
	if err != nil {
		return fmt.Errorf("failed to create retriever: %w", err)
	}
	defer retriever.Release()

	sections, err := retriever.Retrieve(ctx, c.StringSlice("query"), docs)
	if err != nil {
		return fmt.Errorf("retrieval failed: %w", err)
	}

	fmt.Printf("Found %d sections\n", len(sections))
	for i, section := range sections {
		printSection(i, section)
	}
	return nil
}

func planCommand(c *cli.Context) error {
	intake, err := readIntake(c.String("intake"))
	if err != nil {
		return err
	}

	plan, err := planner.BuildPlan(c.String("category"), intake)
	if err != nil {
		return fmt.Errorf("failed to build plan: %w", err)
	}

	fmt.Printf("Category: %s\n", categoryColor.Sprint(plan.Category))
	fmt.Printf("Question: %s\n", plan.Question)
	fmt.Printf("Queries (%d):\n", len(plan.Queries))
	for i, query := range plan.Queries {
		fmt.Printf("  %d: %s\n", i+1, query)
	}
	return nil
}

func routeCommand(c *cli.Context) error {
	ctx := context.Background()

	intake, err := readIntake(c.String("intake"))
	if err != nil {
		return err
	}

	aiConfig := aiConfigFromFlags(c)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	routerOpts := []routing.Option{routing.WithMinConfidence(aiConfig.MinConfidence)}
	if dbPath := c.String("db"); dbPath != "" {
		backend, err := badger.OpenBackend(dbPath, false)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer backend.Close()
		routerOpts = append(routerOpts, routing.WithCache(badger.NewRouteCache(backend)))
	}

	provider, err := openai.NewProvider(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create AI provider: %w", err)
	}
	defer provider.Close()

	router, err := routing.NewRouter(provider.Classifier(), routerOpts...)
	if err != nil {
		return fmt.Errorf("failed to create router: %w", err)
	}

	result, err := router.Route(ctx, intake)
	if err != nil {
		return fmt.Errorf("routing failed: %w", err)
	}

	if result.Fallback() {
		fmt.Println(dimColor.Sprint("Classification unavailable; document routed to the fallback label."))
	}
	fmt.Printf("Categories (%d):\n", len(result.Categories))
	for _, category := range result.Categories {
		fmt.Printf("  %s\n", categoryColor.Sprint(category))
	}
	if len(result.Scored) > 0 {
		fmt.Println("Scores:")
		for _, scored := range result.Scored {
			fmt.Printf("  %.2f  %s\n", scored.Confidence, scored.Name)
		}
	}
	return nil
}

func answerCommand(c *cli.Context) error {
	ctx := context.Background()

	intake, err := readIntake(c.String("intake"))
	if err != nil {
		return err
	}

	docs, err := corpus.LoadDirectory(ctx, c.String("docs"))
	if err != nil {
		return fmt.Errorf("failed to load criteria documents: %w", err)
	}

	pipeline, err := zakaut.NewPipeline(c.String("db"),
		zakaut.WithAIConfig(aiConfigFromFlags(c)),
		zakaut.WithRetrievalOptions(retrieval.WithMaxPerQuery(c.Int("max-per-query"))))
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer pipeline.Close()

	result, err := pipeline.Process(ctx, intake, docs, nil)
	if err != nil {
		return fmt.Errorf("processing failed: %w", err)
	}

	printProcessResult(result)
	return nil
}

func batchCommand(c *cli.Context) error {
	ctx := context.Background()

	docs, err := corpus.LoadDirectory(ctx, c.String("docs"))
	if err != nil {
		return fmt.Errorf("failed to load criteria documents: %w", err)
	}

	runConfig := &batch.Config{
		PoolSize:       c.Int("workers"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}
	if runConfig.PoolSize <= 0 {
		return fmt.Errorf("workers must be greater than 0")
	}
	if runConfig.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if runConfig.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	pipeline, err := zakaut.NewPipeline(c.String("db"),
		zakaut.WithAIConfig(aiConfigFromFlags(c)),
		zakaut.WithRetrievalOptions(retrieval.WithMaxPerQuery(c.Int("max-per-query"))))
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer pipeline.Close()

	runner, err := batch.NewRunner(pipeline, runConfig, os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to create batch runner: %w", err)
	}
	defer runner.Release()

	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	fmt.Fprintf(os.Stderr, "Criteria documents: %d\n", len(docs))
	fmt.Fprintln(os.Stderr)

	result, err := runner.Run(ctx, c.String("intake-dir"), docs)
	if err != nil {
		return fmt.Errorf("batch run failed: %w", err)
	}

	for _, res := range result.Results {
		if res.Err != nil {
			fmt.Printf("FAILED %s: %v\n", res.Name, res.Err)
		}
	}
	fmt.Printf("Run %s: %d files, %d failed\n", result.RunID, len(result.Results), result.Failed)
	return nil
}

func historyCommand(c *cli.Context) error {
	ctx := context.Background()

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewCaseRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create case repository: %w", err)
	}
	defer repo.Close()

	var records []*core.CaseRecord
	if runID := c.String("run"); runID != "" {
		records, err = repo.CasesByRun(ctx, runID)
	} else {
		records, err = repo.RecentCases(ctx, c.Int("limit"))
	}
	if err != nil {
		return fmt.Errorf("failed to read case records: %w", err)
	}

	fmt.Printf("Found %d case records\n", len(records))
	for _, rec := range records {
		fmt.Printf("\n#%d  %s  %s\n", rec.Id, dimColor.Sprint(rec.CreatedAt.Format(time.RFC3339)), categoryColor.Sprint(rec.Category))
		if rec.RunID != "" {
			fmt.Printf("run: %s\n", dimColor.Sprint(rec.RunID))
		}
		fmt.Printf("Q: %s\nA: %s\n", rec.Question, rec.Answer)
	}
	return nil
}

// aiConfigFromFlags builds the provider configuration from the command's
// flags; unset flags keep the environment-driven defaults.
func aiConfigFromFlags(c *cli.Context) *ai.Config {
	var opts []ai.ConfigOption
	if host := c.String("host"); host != "" {
		opts = append(opts, ai.WithHost(host))
	}
	if model := c.String("classifier-model"); model != "" {
		opts = append(opts, ai.WithClassifierModel(model))
	}
	if model := c.String("composer-model"); model != "" {
		opts = append(opts, ai.WithComposerModel(model))
	}
	opts = append(opts, ai.WithMinConfidence(c.Float64("min-confidence")))
	return ai.NewConfig(opts...)
}

func readIntake(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read intake file: %w", err)
	}
	return strings.TrimPrefix(string(data), "\uFEFF"), nil
}

func printSection(i int, section core.RetrievedSection) {
	if section.IsSentinel() {
		fmt.Printf("%d: %s\n", i, dimColor.Sprint(section.Text))
		return
	}
	header := categoryColor.Sprint(section.SourceID)
	if section.SectionRef != "" {
		header += "  " + sectionColor.Sprint(section.SectionRef)
	}
	fmt.Printf("%d: [%s]\n%s\n", i, header, section.Text)
}

func printProcessResult(result *zakaut.ProcessResult) {
	if result.Route.Fallback() {
		fmt.Println(dimColor.Sprint("Classification unavailable; no answers composed."))
		return
	}
	if len(result.Cases) == 0 {
		fmt.Println("No eligibility categories routed.")
		return
	}
	for _, rec := range result.Cases {
		fmt.Printf("\n=== %s ===\n", categoryColor.Sprint(rec.Category))
		fmt.Printf("%s\n\n%s\n", rec.Question, rec.Answer)
	}
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
