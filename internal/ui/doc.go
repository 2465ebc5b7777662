// Package ui contains the Bubble Tea program that drives the setup
// composer. The Model owns the session mode (browsing, reviewing, saving)
// and routes messages to focused handlers.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - While the save form is active, key messages go to the form first; its
//     completion or cancellation returns the session to the review screen.
//   - Otherwise messages are routed through a typed handler registry so each
//     tea.Msg is handled by a single function (key presses, window resizes).
//
// State ownership:
//   - The catalogue tree and its selection flags live in internal/catalog.
//   - Browsing position (navigation path, cursor, viewport) lives in
//     internal/ui/state.Navigator.
//   - Script text is never stored while browsing; it is synthesized from the
//     selection state on every render and once more when the session ends.
package ui
