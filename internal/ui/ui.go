package ui

import (
	"fmt"
	"strings"

	"github.com/Shi-553/music-assistant-nicovideo-fixtures/internal/models"
	"github.com/Shi-553/music-assistant-nicovideo-fixtures/internal/shared"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	CategoryListView ViewState = iota
	FixtureListView
	DiffView
)

// RunSource provides the run data the TUI displays.
// Satisfied by repositories.RunRepository.
type RunSource interface {
	Latest() (*models.Run, error)
	Fixtures(runID string) ([]models.RunFixture, error)
}

// runLoadedMsg carries the loaded run data into the update loop.
type runLoadedMsg struct {
	run      *models.Run
	fixtures []models.RunFixture
	err      error
}

// Model represents the TUI application state.
type Model struct {
	source       RunSource
	view         ViewState
	width        int
	height       int
	run          *models.Run
	byCategory   map[string][]models.RunFixture
	categoryList list.Model
	fixtureList  list.Model
	diff         viewport.Model
	selected     *models.RunFixture
	err          error
	help         help.Model
	keys         keyMap
}

// NewModel creates the TUI model backed by the given run source.
func NewModel(source RunSource) Model {
	categoryList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	categoryList.Title = "Fixture categories"
	categoryList.SetShowHelp(false)

	fixtureList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	fixtureList.SetShowHelp(false)

	return Model{
		source:       source,
		view:         CategoryListView,
		categoryList: categoryList,
		fixtureList:  fixtureList,
		diff:         viewport.New(0, 0),
		help:         help.New(),
		keys:         newKeyMap(),
	}
}

// Init loads the latest run from the repository.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		run, err := m.source.Latest()
		if err != nil {
			return runLoadedMsg{err: err}
		}
		fixtures, err := m.source.Fixtures(run.ID)
		return runLoadedMsg{run: run, fixtures: fixtures, err: err}
	}
}

// Update handles messages and transitions between views.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		listHeight := m.height - 4
		m.categoryList.SetSize(m.width, listHeight)
		m.fixtureList.SetSize(m.width, listHeight)
		m.diff.Width = m.width
		m.diff.Height = listHeight
		return m, nil

	case runLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.run = msg.run
		m.byCategory = groupByCategory(msg.fixtures)
		items := make([]list.Item, 0, len(m.byCategory))
		for _, name := range categoryOrder(msg.fixtures) {
			items = append(items, categoryItem{name: name, fixtures: m.byCategory[name]})
		}
		m.categoryList.SetItems(items)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	return m.updateActive(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.view {
	case CategoryListView:
		if key.Matches(msg, m.keys.enter) {
			if item, ok := m.categoryList.SelectedItem().(categoryItem); ok {
				m.fixtureList.Title = fmt.Sprintf("Fixtures: %s", item.name)
				items := make([]list.Item, 0, len(item.fixtures))
				for _, f := range item.fixtures {
					items = append(items, fixtureItem{fixture: f})
				}
				m.fixtureList.SetItems(items)
				m.view = FixtureListView
			}
			return m, nil
		}

	case FixtureListView:
		if key.Matches(msg, m.keys.back) {
			m.view = CategoryListView
			return m, nil
		}
		if key.Matches(msg, m.keys.enter) {
			if item, ok := m.fixtureList.SelectedItem().(fixtureItem); ok {
				m.selected = &item.fixture
				m.diff.SetContent(diffContent(item.fixture))
				m.diff.GotoTop()
				m.view = DiffView
			}
			return m, nil
		}

	case DiffView:
		if key.Matches(msg, m.keys.back) {
			m.view = FixtureListView
			return m, nil
		}
	}

	return m.updateActive(msg)
}

// updateActive forwards a message to the component backing the current view.
func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case CategoryListView:
		m.categoryList, cmd = m.categoryList.Update(msg)
	case FixtureListView:
		m.fixtureList, cmd = m.fixtureList.Update(msg)
	case DiffView:
		m.diff, cmd = m.diff.Update(msg)
	}
	return m, cmd
}

// View renders the current view.
func (m Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v", m.err)) + "\n" +
			styles.help.Render("q: quit")
	}
	if m.run == nil {
		return styles.help.Render("Loading latest run...")
	}

	var body string
	switch m.view {
	case CategoryListView:
		header := styles.title.Render(fmt.Sprintf(
			"Run %s (%s) — %d fixtures, %d new, %d changed, %d failed",
			shortID(m.run.ID), shared.FormatTimestamp(m.run.StartedAt),
			m.run.Total, m.run.NewCount, m.run.ChangedCount, m.run.FailedCount,
		))
		body = header + "\n" + m.categoryList.View()
	case FixtureListView:
		body = m.fixtureList.View()
	case DiffView:
		title := styles.title.Render(m.selected.Path)
		body = title + "\n" + m.diff.View()
	}

	return body + "\n" + m.help.View(m.keys)
}

// diffContent renders the viewport body for a fixture record.
func diffContent(f models.RunFixture) string {
	switch f.Status {
	case "changed":
		return f.Diff
	case "failed":
		return styles.err.Render("Generation failed: " + f.Error)
	case "new":
		return styles.ok.Render("New fixture (no previous version to diff against).")
	default:
		return styles.help.Render("Unchanged since the previous generation.")
	}
}

func groupByCategory(fixtures []models.RunFixture) map[string][]models.RunFixture {
	grouped := make(map[string][]models.RunFixture)
	for _, f := range fixtures {
		grouped[categoryOf(f.Path)] = append(grouped[categoryOf(f.Path)], f)
	}
	return grouped
}

// categoryOrder returns category names in first-seen order.
func categoryOrder(fixtures []models.RunFixture) []string {
	seen := make(map[string]bool)
	var order []string
	for _, f := range fixtures {
		name := categoryOf(f.Path)
		if !seen[name] {
			seen[name] = true
			order = append(order, name)
		}
	}
	return order
}

func categoryOf(path string) string {
	if idx := strings.Index(path, "/"); idx >= 0 {
		return path[:idx]
	}
	return path
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
