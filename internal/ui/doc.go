// Package ui provides the terminal user interface for folio.
//
// # Architecture Overview
//
// The UI is built on Bubble Tea's Elm-style architecture: a single root
// Model holds all state, Update handles messages, and View renders the
// whole screen from scratch each frame. The interface is read-only
// toward the API; the only state it mutates is its own view state and
// the saved theme preference.
//
// # Package Structure
//
// The package is organized into focused modules:
//
//   - app.go: Root model, message handling, key dispatch, and the Run function
//   - list.go: Entity list with split layout (list + detail pane)
//   - detail.go: Full-screen entity detail rendering
//   - logs.go: Tail of folio's own log file
//   - header.go: Status bar and command hints bar
//   - help.go: Help overlay built from the key map
//   - theme.go: Color themes and pre-built Lipgloss styles
//
// # Views
//
// Three views are available:
//
//   - List View: All loaded entities, one row per entity, with a detail
//     pane for the selection. The default view.
//   - Detail View: Full-screen scrollable detail for the selected entity.
//   - Logs View: The tail of folio's structured log file.
//
// A help overlay can be toggled from any view.
//
// # Pagination Flow
//
// The model never fetches pages itself. Controller operations return a
// dispatched fetch, which the model wraps in a tea.Cmd; the command
// runs the fetch off the Update loop and posts a refresh message when
// it settles. Moving the selection near the end of the loaded list
// requests the next page automatically, so scrolling down feels like
// one continuous list. All single-flight and ordering rules live in
// the controller; the UI just re-reads snapshots.
//
// # Key Bindings
//
//   - j/k or arrows: Move selection / scroll
//   - g/G: Jump to top/bottom
//   - ctrl+d/ctrl+u: Half page down/up
//   - enter: Open entity detail
//   - esc: Back to list, or clear the filter
//   - l: Logs view
//   - r: Retry after a failure; refresh in logs view
//   - /: Filter the visible rows
//   - tab: Toggle pane focus
//   - T: Cycle theme (persisted)
//   - h/?: Toggle help
//   - q or Ctrl+C: Quit
//
// # Design Principles
//
//   - Single root model: No nested tea.Model components, just methods.
//   - Snapshot driven: The controller is the single source of truth;
//     rendering never reads controller internals.
//   - Filtering is view state: The filter narrows what is drawn, never
//     what is loaded.
package ui
