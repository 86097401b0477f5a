package main

import (
	"context"
	"fmt"

	"github.com/Shi-553/music-assistant-nicovideo-fixtures/internal/collector"
	"github.com/Shi-553/music-assistant-nicovideo-fixtures/internal/fixtures"
	"github.com/Shi-553/music-assistant-nicovideo-fixtures/internal/niconico"
	"github.com/Shi-553/music-assistant-nicovideo-fixtures/internal/repositories"
	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"
)

// Generate fetches fixture data from the Niconico API and writes
// stabilized, diff-tracked fixture files.
//
// Fixtures generated with user credentials contain personal user data;
// only a dedicated test account session should ever be used.
func (r *Runner) Generate(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd)

	session, err := r.config.ResolveSession()
	if err != nil {
		return err
	}

	outputDir := r.config.Fixtures.Dir
	if dir := cmd.String("output"); dir != "" {
		outputDir = dir
	}

	limit := r.config.Fixtures.Limit
	if n := cmd.Int("limit"); n > 0 {
		limit = int(n)
	}

	var categories []fixtures.Category
	if name := cmd.String("category"); name != "" {
		category, err := fixtures.ParseCategory(name)
		if err != nil {
			return err
		}
		categories = []fixtures.Category{category}
	}

	var repo *repositories.RunRepository
	if !cmd.Bool("no-db") {
		db, err := r.openDatabase()
		if err != nil {
			r.logger.Warn("run history unavailable, continuing without it", "error", err)
		} else {
			defer db.Close()
			repo = repositories.NewRunRepository(db)
		}
	}

	client := niconico.NewClient(r.config.Niconico.BaseURL, session, r.httpClient)

	rateLimit := r.config.Fixtures.RateLimit
	if rateLimit <= 0 {
		rateLimit = 1.0
	}

	tracker := fixtures.NewDiffTracker(r.logger)
	saver := fixtures.NewSaver(outputDir, tracker, r.logger)

	progressCh := make(chan collector.ProgressUpdate, 50)
	go func() {
		for update := range progressCh {
			switch update.Phase {
			case collector.CollectCategory:
				r.writePlain("\n%s\n", update.Message)
			case collector.ProcessFixture:
				r.writePlain("  %s\n", update.Message)
			case collector.GenerateTypeMap:
				r.writePlain("\n%s\n", update.Message)
			}
		}
	}()

	orchestrator := collector.NewOrchestrator(collector.OrchestratorOpts{
		Saver:    saver,
		Limiter:  rate.NewLimiter(rate.Limit(rateLimit), 1),
		Repo:     repo,
		Logger:   r.logger,
		Limit:    limit,
		Progress: progressCh,
	})

	samples := collector.SamplesFromConfig(r.config.Niconico)
	run, err := orchestrator.RunAll(ctx, client, samples, r.config.Fixtures.TypeMapPath, categories)
	close(progressCh)

	if err != nil {
		return fmt.Errorf("fixture generation failed: %w", err)
	}

	r.writePlain("\n═══════════════════════════════════════\n")
	r.writePlain("Generation Complete\n")
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("Run: %s\n", run.ID)
	r.writePlain("Fixtures: %d total\n", run.Total)
	r.writePlain("  + new:       %d\n", run.NewCount)
	r.writePlain("  ~ changed:   %d\n", run.ChangedCount)
	r.writePlain("  = unchanged: %d\n", run.UnchangedCount)
	if run.FailedCount > 0 {
		r.writePlain("  ! failed:    %d\n", run.FailedCount)
	}
	r.writePlain("Output: %s\n", outputDir)

	return nil
}
