package fixtures

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Shi-553/music-assistant-nicovideo-fixtures/internal/shared"
	"github.com/charmbracelet/log"
)

// FormatJSON renders fixture data with two-space indentation, no HTML
// escaping, and a trailing newline. Fixture files are compared byte for
// byte, so this is the only serializer in the pipeline.
func FormatJSON(data any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return nil, fmt.Errorf("failed to encode fixture data: %w", err)
	}
	// Encode already appends a single newline
	return buf.Bytes(), nil
}

// Saver writes fixture files under a base directory with integrated diff
// tracking.
type Saver struct {
	baseDir string
	tracker *DiffTracker
	logger  *log.Logger
}

// NewSaver creates a Saver rooted at baseDir.
func NewSaver(baseDir string, tracker *DiffTracker, logger *log.Logger) *Saver {
	return &Saver{
		baseDir: baseDir,
		tracker: tracker,
		logger:  logger,
	}
}

// Tracker exposes the diff tracker for summary reporting.
func (s *Saver) Tracker() *DiffTracker { return s.tracker }

// Path returns the absolute path for a fixture.
func (s *Saver) Path(category Category, name string) string {
	return filepath.Join(s.baseDir, string(category), name+".json")
}

// Save formats data, tracks the diff against the previously saved file,
// and writes the fixture. Returns the status classification and the
// unified diff text (empty unless changed).
func (s *Saver) Save(category Category, name string, data any) (Status, string, error) {
	relPath := string(category) + "/" + name + ".json"
	absPath := s.Path(category, name)

	content, err := FormatJSON(data)
	if err != nil {
		return StatusFailed, "", err
	}

	status, diff := s.tracker.Track(relPath, absPath, content)

	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return StatusFailed, "", fmt.Errorf("%w: %v", shared.ErrFixtureWrite, err)
	}

	if err := os.WriteFile(absPath, content, 0644); err != nil {
		return StatusFailed, "", fmt.Errorf("%w: %v", shared.ErrFixtureWrite, err)
	}

	s.logger.Info("saved fixture", "path", relPath, "status", string(status))
	return status, diff, nil
}
