package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/milk9111/actionmap/action"
)

var ErrUnknownOwner = errors.New("transport: diff for unregistered owner")

// Router delivers incoming diffs to the action state that owns them,
// keyed by the stable owner id stamped into each diff. Registration
// and Apply may be called from different goroutines.
type Router[A action.Actionlike[A], ID comparable] struct {
	mu     sync.Mutex
	states map[ID]*action.State[A]
}

// NewRouter creates an empty router.
func NewRouter[A action.Actionlike[A], ID comparable]() *Router[A, ID] {
	return &Router[A, ID]{states: make(map[ID]*action.State[A])}
}

// Register routes diffs carrying id to the given state.
func (r *Router[A, ID]) Register(id ID, s *action.State[A]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states[id] = s
}

// Unregister stops routing diffs for id.
func (r *Router[A, ID]) Unregister(id ID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.states, id)
}

// Apply replays one diff onto its owner's state.
func (r *Router[A, ID]) Apply(d action.Diff[A, ID]) error {
	r.mu.Lock()
	s, ok := r.states[d.ID]
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownOwner, d.ID)
	}
	d.Apply(s)
	return nil
}

// Listen dials a hub and forwards every incoming diff to out until the
// context ends or the connection drops. The consumer drains out on its
// own loop (typically once per frame) and applies the diffs through a
// Router, which keeps all state mutation on the game's goroutine.
// Malformed frames are logged and skipped.
func Listen[A action.Actionlike[A], ID comparable](ctx context.Context, url string, out chan<- action.Diff[A, ID], logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("transport: dial %s: %w", url, err)
	}
	defer conn.Close()

	// Unblock ReadMessage when the context is cancelled.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, frame, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("transport: read: %w", err)
		}

		var env envelope
		if err := json.Unmarshal(frame, &env); err != nil {
			logger.Warn("skipping malformed frame", "error", err)
			continue
		}
		if env.Type != diffMessage {
			continue
		}

		var d action.Diff[A, ID]
		if err := json.Unmarshal(env.Data, &d); err != nil {
			logger.Warn("skipping malformed diff", "error", err)
			continue
		}
		select {
		case out <- d:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
