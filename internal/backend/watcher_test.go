package backend

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/atomicstack/squirrel-docs/internal/logging"
	"github.com/atomicstack/squirrel-docs/internal/nav"
)

const validNav = `sections:
  - title: Guides
    icon: book
    items:
      - title: Routing
        href: /docs/guides/routing
`

const twoSections = validNav + `  - title: Examples
    icon: file-text
    items:
      - title: Basic Server
        href: /docs/examples/basic-server
`

func startWatcher(t *testing.T, path string) (*Watcher, context.CancelFunc, <-chan error) {
	t.Helper()
	w, err := NewWatcher(path, 50*time.Millisecond)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	return w, cancel, done
}

func nextEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case evt, ok := <-w.Events():
		require.True(t, ok, "events channel closed early")
		return evt
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
	return Event{}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "nav.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validNav), 0o644))

	w, cancel, done := startWatcher(t, path)
	require.NoError(t, os.WriteFile(path, []byte(twoSections), 0o644))

	evt := nextEvent(t, w)
	require.NoError(t, evt.Err)
	require.NotNil(t, evt.Model)
	assert.Len(t, evt.Model.Sections(), 2)

	require.NoError(t, os.WriteFile(path, []byte("sections:\n  - title: Empty\n"), 0o644))
	evt = nextEvent(t, w)
	assert.ErrorIs(t, evt.Err, nav.ErrEmptySection)
	assert.Nil(t, evt.Model)

	cancel()
	require.NoError(t, <-done)
	_, ok := <-w.Events()
	assert.False(t, ok, "events channel must close when Run returns")
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "nav.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validNav), 0o644))

	w, cancel, done := startWatcher(t, path)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644))

	select {
	case evt := <-w.Events():
		t.Fatalf("unexpected event for sibling file: %+v", evt)
	case <-time.After(200 * time.Millisecond):
	}
	cancel()
	require.NoError(t, <-done)
}

func logMessages(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var out []string
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		var entry map[string]interface{}
		if json.Unmarshal([]byte(line), &entry) != nil {
			continue
		}
		if entry["component"] == "watcher" {
			out = append(out, entry["message"].(string))
		}
	}
	return out
}

func TestWatcherLogsReloadAndRemoval(t *testing.T) {
	defer goleak.VerifyNone(t)

	logPath := filepath.Join(t.TempDir(), "watch.log")
	logging.Configure(logPath)
	t.Cleanup(func() { logging.Configure("") })

	path := filepath.Join(t.TempDir(), "nav.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validNav), 0o644))

	w, cancel, done := startWatcher(t, path)
	require.NoError(t, os.WriteFile(path, []byte(twoSections), 0o644))
	evt := nextEvent(t, w)
	require.NoError(t, evt.Err)

	require.NoError(t, os.Remove(path))
	require.Eventually(t, func() bool {
		msgs := logMessages(t, logPath)
		return len(msgs) == 2 && msgs[1] == "navigation file went away, keeping the last model"
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, "navigation reloaded", logMessages(t, logPath)[0])

	select {
	case evt := <-w.Events():
		t.Fatalf("removal must not publish a reload: %+v", evt)
	case <-time.After(150 * time.Millisecond):
	}
	cancel()
	require.NoError(t, <-done)
}

func TestNewWatcherRejectsMissingDirectory(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing", "nav.yaml"), time.Millisecond)
	require.Error(t, err)
}

func TestThrottleCoalescesPokes(t *testing.T) {
	th := newThrottle(30 * time.Millisecond)
	defer th.stop()
	for i := 0; i < 5; i++ {
		th.poke()
		time.Sleep(5 * time.Millisecond)
	}
	select {
	case <-th.C():
	case <-time.After(time.Second):
		t.Fatal("expected a tick after the burst")
	}
	select {
	case <-th.C():
		t.Fatal("expected a single tick per burst")
	case <-time.After(80 * time.Millisecond):
	}
}
