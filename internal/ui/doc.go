// Package ui contains the Bubble Tea program that renders the documentation
// sidebar. The Model type focuses on message orchestration while dedicated
// helpers own navigation, input, rendering and reloads.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, window resizes, navigation results, reloads).
//   - Navigation helpers (navigation.go) move the cursor, toggle groups and
//     activate pages. Filter helpers (input.go) keep text entry isolated from
//     the event loop.
//
// State ownership:
//   - The navigation model is immutable; a reload replaces it wholesale.
//   - Expansion state is an immutable uistate.Expansion value replaced by
//     Apply. Its keys are title paths, so it survives reloads and the search
//     view.
//   - Cursor, viewport and filter live in uistate.Level. Rows are recomputed
//     by tree.Render after every change to the model, expansion or location.
//   - Page changes run through the command bus against a router.Navigator,
//     and the result message sets the location used for highlighting.
//
// Backend interactions:
//   - An optional backend.Watcher streams reloaded navigation models. Update
//     waits for them and applyBackendEvent swaps the model in place, keeping
//     the previous one when a reload fails validation.
package ui
