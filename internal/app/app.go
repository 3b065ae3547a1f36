package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/atomicstack/squirrel-docs/internal/backend"
	"github.com/atomicstack/squirrel-docs/internal/logging/events"
	"github.com/atomicstack/squirrel-docs/internal/nav"
	"github.com/atomicstack/squirrel-docs/internal/router"
	"github.com/atomicstack/squirrel-docs/internal/ui"
	"github.com/atomicstack/squirrel-docs/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

const reloadDebounce = 150 * time.Millisecond

// Config describes user-provided application options.
type Config struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ShowFooter  bool   `json:"footer"`
	Verbose     bool   `json:"verbose"`
	CurrentPath string `json:"path"`
	OpenDepth   int    `json:"open_depth"`
	NavFile     string `json:"nav_file"`
	Watch       bool   `json:"watch"`

	// Open and Closed hold group paths written as "Section/Group/...". They
	// override OpenDepth for the groups they name.
	Open   []string `json:"open,omitempty"`
	Closed []string `json:"closed,omitempty"`
}

// Policy returns the initial expansion policy for the configuration.
func (c Config) Policy() state.Policy {
	return state.Policy{
		OpenDepth: c.OpenDepth,
		Open:      parsePaths(c.Open),
		Closed:    parsePaths(c.Closed),
	}
}

func parsePaths(raw []string) []nav.Path {
	var out []nav.Path
	for _, s := range raw {
		if p := nav.ParsePath(s); p != nil {
			out = append(out, p)
		}
	}
	return out
}

// LoadModel returns the navigation described by navFile, or the built-in
// site navigation when navFile is empty.
func LoadModel(navFile string) (*nav.Model, error) {
	if strings.TrimSpace(navFile) == "" {
		return nav.Site(), nil
	}
	return nav.Load(navFile)
}

// Run bootstraps and executes the Bubble Tea program.
func Run(ctx context.Context, cfg Config) error {
	model, err := LoadModel(cfg.NavFile)
	if err != nil {
		return fmt.Errorf("navigation model: %w", err)
	}

	var watcher *backend.Watcher
	if cfg.Watch && strings.TrimSpace(cfg.NavFile) != "" {
		watcher, err = backend.NewWatcher(cfg.NavFile, reloadDebounce)
		if err != nil {
			return fmt.Errorf("watch navigation file: %w", err)
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	r := router.New(cfg.CurrentPath)
	sidebar := ui.NewModel(model, ui.Options{
		Width:       cfg.Width,
		Height:      cfg.Height,
		ShowFooter:  cfg.ShowFooter,
		Verbose:     cfg.Verbose,
		CurrentPath: cfg.CurrentPath,
		Policy:      cfg.Policy(),
		Navigator:   r,
		Watcher:     watcher,
		Context:     ctx,
	})
	program := tea.NewProgram(sidebar, tea.WithAltScreen(), tea.WithContext(ctx))

	g, gctx := errgroup.WithContext(ctx)
	if watcher != nil {
		g.Go(func() error {
			return watcher.Run(gctx)
		})
	}
	g.Go(func() error {
		defer cancel()
		_, err := program.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	})
	err = g.Wait()
	events.App.Stop(err)
	return err
}
