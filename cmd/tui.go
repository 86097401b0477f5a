package main

import (
	"context"
	"fmt"

	"github.com/Shi-553/music-assistant-nicovideo-fixtures/internal/repositories"
	"github.com/Shi-553/music-assistant-nicovideo-fixtures/internal/shared"
	"github.com/Shi-553/music-assistant-nicovideo-fixtures/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive fixture browser for the latest run.
//
// Logs are redirected to a file because the TUI owns the terminal.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd)

	fileLogger, err := shared.NewFileLogger("./tmp/nicofix-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	r.SetLogger(fileLogger)

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repositories.NewRunRepository(db)
	model := ui.NewModel(repo)

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
