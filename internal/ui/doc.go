// Package ui contains the Bubble Tea program for the recipe browser. The
// Model type focuses on message orchestration while dedicated helpers own
// navigation, text entry, rendering and service results.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Key presses go to the active form when one of the add screens is
//     open. Otherwise every tea.Msg is routed through a typed handler
//     registry so each message kind is handled by a focused function.
//   - Service calls are built by backend.Fetcher and run through the
//     command bus (internal/ui/command). Their results come back as
//     backendEventMsg values and are applied by applyBackendEvent.
//
// State ownership:
//   - The recipe and category snapshots live in internal/state stores and
//     are only written by the dispatcher, which drops read results that
//     were overtaken by a newer request of the same kind.
//   - Card and category picker lists use internal/ui/state.Level for
//     cursor, viewport and fuzzy filter state.
//   - The current screen is a route.Path. Arriving at route.List counts as
//     displaying the page again and reloads both snapshots.
package ui
