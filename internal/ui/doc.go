// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow over the tracked library:
//  1. [LibraryView] : Browse the filtered, paginated record list
//  2. [FilterView] : Edit filter criteria field by field
//  3. [PaletteView] : Apply palette tags to the selected title
//  4. [DetailView] : Full metadata for one title
//  5. [RepairView] / [RepairResultView] : Bulk metadata backfills with confirmation
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Backend calls run as tea.Cmd goroutines posting typed messages; per-title busy
// markers come from the library card state machine.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, y/n, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
