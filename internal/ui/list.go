package ui

import (
	"fmt"
	"strings"

	"github.com/Shi-553/music-assistant-nicovideo-fixtures/internal/models"
	"github.com/charmbracelet/bubbles/list"
)

var (
	_ list.Item = categoryItem{}
	_ list.Item = fixtureItem{}
)

// categoryItem summarizes one fixture category for the category list.
type categoryItem struct {
	name     string
	fixtures []models.RunFixture
}

func (i categoryItem) FilterValue() string { return i.name }
func (i categoryItem) Title() string       { return i.name }
func (i categoryItem) Description() string {
	var changed, failed int
	for _, f := range i.fixtures {
		switch f.Status {
		case "new", "changed":
			changed++
		case "failed":
			failed++
		}
	}

	desc := fmt.Sprintf("%d fixtures", len(i.fixtures))
	if changed > 0 {
		desc = fmt.Sprintf("%s • %d changed", desc, changed)
	}
	if failed > 0 {
		desc = fmt.Sprintf("%s • %d failed", desc, failed)
	}
	return desc
}

// fixtureItem wraps [models.RunFixture] to implement [list.Item].
type fixtureItem struct {
	fixture models.RunFixture
}

func (i fixtureItem) FilterValue() string { return i.fixture.Path }
func (i fixtureItem) Title() string {
	name := i.fixture.Path
	if idx := strings.Index(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}
func (i fixtureItem) Description() string {
	desc := i.fixture.Status
	if i.fixture.TypeName != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.fixture.TypeName)
	}
	if i.fixture.Error != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.fixture.Error)
	}
	return desc
}
