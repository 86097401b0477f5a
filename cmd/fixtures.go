package main

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"
)

// fixtureFile describes one fixture JSON file on disk.
type fixtureFile struct {
	Path string `json:"path"`
	Size int64  `json:"size"`
}

// FixturesList prints the fixture files under the configured output directory.
func (r *Runner) FixturesList(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd)

	baseDir := r.config.Fixtures.Dir
	if _, err := os.Stat(baseDir); err != nil {
		r.writePlain("No fixtures found at %s. Run 'nicofix generate' first.\n", baseDir)
		return nil
	}

	var files []fixtureFile
	err := filepath.WalkDir(baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(baseDir, path)
		if err != nil {
			return err
		}
		files = append(files, fixtureFile{Path: filepath.ToSlash(rel), Size: info.Size()})
		return nil
	})
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(files, true)
	}

	if len(files) == 0 {
		r.writePlain("No fixture files under %s.\n", baseDir)
		return nil
	}

	for _, f := range files {
		r.writePlain("%8d  %s\n", f.Size, f.Path)
	}
	r.writePlain("\n%d fixture files in %s\n", len(files), baseDir)

	return nil
}
