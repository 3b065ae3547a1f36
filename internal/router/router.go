// Package router holds the reader's current location and performs
// navigation requests issued by the sidebar.
package router

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/atomicstack/squirrel-docs/internal/logging/events"
)

var ErrInvalidTarget = errors.New("target must be an absolute path")

// Navigator is the host routing capability the sidebar depends on.
type Navigator interface {
	Navigate(ctx context.Context, target string) error
	Current() string
}

// Router is the in-process Navigator. The zero value starts at no location.
type Router struct {
	mu      sync.Mutex
	current string
}

// New returns a router positioned at start.
func New(start string) *Router {
	return &Router{current: strings.TrimSpace(start)}
}

// Navigate moves to target. Targets must be absolute paths; the query and
// fragment are kept in the stored location.
func (r *Router) Navigate(ctx context.Context, target string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	trimmed := strings.TrimSpace(target)
	if !strings.HasPrefix(trimmed, "/") {
		err := fmt.Errorf("%w: %q", ErrInvalidTarget, target)
		events.Router.Reject(target, err)
		return err
	}
	r.mu.Lock()
	from := r.current
	r.current = trimmed
	r.mu.Unlock()
	events.Router.Navigate(from, trimmed)
	return nil
}

// Current returns the location snapshot.
func (r *Router) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}
