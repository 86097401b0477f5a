// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for reviewing the most recent
// fixture generation run:
//  1. [CategoryListView] : Browse fixture categories with change counts
//  2. [FixtureListView] : Browse fixtures in a category with their status
//  3. [DiffView] : Scroll through the stored unified diff of a changed fixture
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View
// pattern. Run data is loaded from the run repository on Init, so the TUI
// reviews past generations without touching the API.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui
