package main

import (
	"context"
	"os"

	"github.com/Shi-553/music-assistant-nicovideo-fixtures/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup creates a starter config file and initializes the run database.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if _, err := os.Stat(configPath); err == nil {
		r.writePlain("Config file already exists at %s\n", configPath)
	} else {
		if err := shared.CreateConfigFile(configPath); err != nil {
			return err
		}
		r.writePlain("Created config file at %s\n", configPath)
		r.writePlain("Edit it to set your sample IDs, then export NICONICO_SESSION.\n")
	}

	r.reloadConfig(cmd)

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	version, err := shared.CurrentVersion(db)
	if err != nil {
		return err
	}

	r.writePlain("Database ready at %s (schema version %d)\n", r.config.Database.Path, version)
	return nil
}
