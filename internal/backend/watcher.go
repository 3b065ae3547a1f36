// Package backend watches a navigation file and publishes validated reloads.
package backend

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/atomicstack/squirrel-docs/internal/logging"
	"github.com/atomicstack/squirrel-docs/internal/logging/events"
	"github.com/atomicstack/squirrel-docs/internal/nav"
)

// Event carries either a freshly loaded model or the error that prevented
// loading it.
type Event struct {
	Model *nav.Model
	Err   error
}

// Watcher reloads a YAML navigation file whenever it changes on disk.
type Watcher struct {
	path     string
	debounce time.Duration
	fs       *fsnotify.Watcher
	events   chan Event
	log      zerolog.Logger
}

// NewWatcher prepares a watch on path. The containing directory is watched
// so that editors which replace the file on save are followed. Nothing is
// emitted until Run is called.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	if dir, err := filepath.EvalSymlinks(filepath.Dir(abs)); err == nil {
		abs = filepath.Join(dir, filepath.Base(abs))
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	return &Watcher{
		path:     abs,
		debounce: debounce,
		fs:       fsw,
		events:   make(chan Event, 4),
		log:      logging.Logger("watcher"),
	}, nil
}

// Events returns a channel of reload events. It is closed when Run returns.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Run processes file system notifications until ctx is cancelled. Writes
// that arrive within the debounce interval of each other cause one reload.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.events)
	defer w.fs.Close()

	th := newThrottle(w.debounce)
	defer th.stop()

	events.Watch.Start(w.path)
	defer events.Watch.Stop(w.path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				w.log.Warn().Str("file", w.path).Str("op", ev.Op.String()).Msg("navigation file went away, keeping the last model")
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			events.Watch.Change(w.path, ev.Op.String())
			th.poke()
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			if !w.emit(ctx, Event{Err: fmt.Errorf("watch %s: %w", w.path, err)}) {
				return nil
			}
		case <-th.C():
			m, err := nav.Load(w.path)
			events.Watch.Reload(w.path, err)
			if err == nil {
				w.log.Info().Str("file", w.path).Int("items", m.Count()).Msg("navigation reloaded")
			}
			if !w.emit(ctx, Event{Model: m, Err: err}) {
				return nil
			}
		}
	}
}

func (w *Watcher) emit(ctx context.Context, evt Event) bool {
	select {
	case <-ctx.Done():
		return false
	case w.events <- evt:
		return true
	}
}
