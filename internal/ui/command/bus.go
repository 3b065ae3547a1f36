package command

import (
	"context"

	"github.com/atomicstack/squirrel-docs/internal/logging/events"
	"github.com/atomicstack/squirrel-docs/internal/router"
	tea "github.com/charmbracelet/bubbletea"
)

// Request asks the bus to navigate to a leaf's target.
type Request struct {
	Target string
	Label  string
}

// Result is delivered back to the UI once the navigator returns. Location is
// the navigator's current location afterwards.
type Result struct {
	Target   string
	Label    string
	Location string
	Err      error
}

// Bus runs navigation requests off the UI event loop.
type Bus struct {
	nav router.Navigator
}

// New initialises a command bus around the given navigator.
func New(nav router.Navigator) *Bus {
	return &Bus{nav: nav}
}

// Navigate wraps a navigation request into a Bubble Tea command while
// emitting trace logs.
func (b *Bus) Navigate(ctx context.Context, req Request) tea.Cmd {
	events.Command.Queue(req.Target, req.Label)
	return func() tea.Msg {
		if b.nav == nil {
			return Result{Target: req.Target, Label: req.Label, Location: req.Target}
		}
		if err := b.nav.Navigate(ctx, req.Target); err != nil {
			events.Command.Error(req.Target, req.Label, err)
			return Result{Target: req.Target, Label: req.Label, Location: b.nav.Current(), Err: err}
		}
		location := b.nav.Current()
		events.Command.Result(req.Target, req.Label, location)
		return Result{Target: req.Target, Label: req.Label, Location: location}
	}
}
