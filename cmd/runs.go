package main

import (
	"context"
	"strings"

	"github.com/Shi-553/music-assistant-nicovideo-fixtures/internal/models"
	"github.com/Shi-553/music-assistant-nicovideo-fixtures/internal/repositories"
	"github.com/Shi-553/music-assistant-nicovideo-fixtures/internal/shared"
	"github.com/urfave/cli/v3"
)

// RunsList prints recorded generation runs, most recent first.
func (r *Runner) RunsList(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd)

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repositories.NewRunRepository(db)
	runs, err := repo.List(int(cmd.Int("limit")))
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(runs, true)
	}

	if len(runs) == 0 {
		r.writePlain("No runs recorded yet. Run 'nicofix generate' first.\n")
		return nil
	}

	r.writePlain("%-36s  %-19s  %5s  %4s  %4s  %4s  %4s\n",
		"ID", "STARTED", "TOTAL", "NEW", "CHG", "SAME", "FAIL")
	for _, run := range runs {
		r.writePlain("%-36s  %-19s  %5d  %4d  %4d  %4d  %4d\n",
			run.ID, shared.FormatTimestamp(run.StartedAt),
			run.Total, run.NewCount, run.ChangedCount, run.UnchangedCount, run.FailedCount)
	}

	return nil
}

// RunsShow prints one run with its per-fixture outcomes.
func (r *Runner) RunsShow(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd)

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repositories.NewRunRepository(db)

	var run *models.Run
	if id := cmd.String("id"); id != "" {
		run, err = repo.Get(id)
	} else {
		run, err = repo.Latest()
	}
	if err != nil {
		return err
	}

	fixtureRecords, err := repo.Fixtures(run.ID)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(map[string]any{
			"run":      run,
			"fixtures": fixtureRecords,
		}, true)
	}

	r.writePlain("Run %s\n", run.ID)
	r.writePlain("Started:  %s\n", shared.FormatTimestamp(run.StartedAt))
	if run.FinishedAt != nil {
		r.writePlain("Finished: %s\n", shared.FormatTimestamp(*run.FinishedAt))
	} else {
		r.writePlain("Finished: (still running or interrupted)\n")
	}
	r.writePlain("Fixtures: %d total, %d new, %d changed, %d unchanged, %d failed\n\n",
		run.Total, run.NewCount, run.ChangedCount, run.UnchangedCount, run.FailedCount)

	showDiffs := cmd.Bool("diffs")
	for _, record := range fixtureRecords {
		line := statusGlyph(record.Status) + " " + record.Path
		if record.TypeName != "" {
			line += "  (" + record.TypeName + ")"
		}
		if record.Error != "" {
			line += "  error: " + record.Error
		}
		r.writePlain("%s\n", line)

		if showDiffs && record.Diff != "" {
			r.writePlain("%s\n", indent(record.Diff, "    "))
		}
	}

	return nil
}

func statusGlyph(status string) string {
	switch status {
	case "new":
		return "+"
	case "changed":
		return "~"
	case "unchanged":
		return "="
	case "failed":
		return "!"
	default:
		return "?"
	}
}

func indent(text, prefix string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
