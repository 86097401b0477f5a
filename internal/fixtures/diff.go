package fixtures

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pmezard/go-difflib/difflib"
)

// DiffTracker compares fixtures about to be written against the
// previously saved files and accumulates a change report for the run.
type DiffTracker struct {
	logger  *log.Logger
	new     []string
	changed []string
	diffs   map[string]string
}

// NewDiffTracker creates a tracker that logs diffs through the given logger.
func NewDiffTracker(logger *log.Logger) *DiffTracker {
	return &DiffTracker{
		logger: logger,
		diffs:  make(map[string]string),
	}
}

// Track classifies the fixture at absPath given the content that is about
// to be written. relPath is the fixture path used in reports
// (e.g. "tracks/own_videos.json").
//
// A prior file that exists but cannot be read is treated as new after a
// warning; generation never stops on a stale fixture.
func (t *DiffTracker) Track(relPath, absPath string, newContent []byte) (Status, string) {
	oldContent, err := os.ReadFile(absPath)
	if err != nil {
		if !os.IsNotExist(err) {
			t.logger.Warn("could not read existing fixture", "path", absPath, "error", err)
		}
		t.logger.Info("NEW FIXTURE", "path", relPath)
		t.new = append(t.new, relPath)
		return StatusNew, ""
	}

	if string(oldContent) == string(newContent) {
		return StatusUnchanged, ""
	}

	diff := renderDiff(oldContent, newContent)
	t.logDiff(relPath, diff)
	t.changed = append(t.changed, relPath)
	t.diffs[relPath] = diff
	return StatusChanged, diff
}

// Diff returns the stored unified diff for a changed fixture path.
func (t *DiffTracker) Diff(relPath string) string {
	return t.diffs[relPath]
}

// NewFixtures returns the paths classified as new, in tracking order.
func (t *DiffTracker) NewFixtures() []string { return t.new }

// ChangedFixtures returns the paths classified as changed, in tracking order.
func (t *DiffTracker) ChangedFixtures() []string { return t.changed }

// renderDiff produces a unified diff with three lines of context.
func renderDiff(oldContent, newContent []byte) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(oldContent)),
		B:        difflib.SplitLines(string(newContent)),
		FromFile: "before",
		ToFile:   "after",
		Context:  3,
	})
	if err != nil {
		return fmt.Sprintf("(failed to render diff: %v)", err)
	}
	return diff
}

func (t *DiffTracker) logDiff(relPath, diff string) {
	t.logger.Info(strings.Repeat("=", 60))
	t.logger.Info("FIXTURE CHANGED", "path", relPath)
	t.logger.Info(strings.Repeat("=", 60))

	if diff == "" {
		t.logger.Info("(no differences found)")
		return
	}

	for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
		t.logger.Info(line)
	}
	t.logger.Info(strings.Repeat("=", 60))
}

// LogSummary logs a summary of all fixture changes tracked this run.
func (t *DiffTracker) LogSummary() {
	t.logger.Info(strings.Repeat("=", 60))
	t.logger.Info("FIXTURE GENERATION SUMMARY")
	t.logger.Info(strings.Repeat("=", 60))

	if len(t.new) > 0 {
		t.logger.Info(fmt.Sprintf("NEW FIXTURES (%d):", len(t.new)))
		for _, fixture := range t.new {
			t.logger.Info("  + " + fixture)
		}
	}

	if len(t.changed) > 0 {
		t.logger.Info(fmt.Sprintf("CHANGED FIXTURES (%d):", len(t.changed)))
		for _, fixture := range t.changed {
			t.logger.Info("  ~ " + fixture)
		}
	}

	if len(t.new) == 0 && len(t.changed) == 0 {
		t.logger.Info("No changes detected in any fixtures.")
	}

	t.logger.Info(strings.Repeat("=", 60))
}
