package transport

import (
	"context"
	"errors"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/milk9111/actionmap/action"
)

type testAction int

const (
	actRun testAction = iota
	actJump
)

func (testAction) Variants() []testAction {
	return []testAction{actRun, actJump}
}

func TestRouterApply(t *testing.T) {
	r := NewRouter[testAction, string]()
	s := action.NewState[testAction]()
	r.Register("p1", s)

	if err := r.Apply(action.Diff[testAction, string]{Kind: action.DiffPressed, Action: actJump, ID: "p1"}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !s.Pressed(actJump) {
		t.Fatalf("expected routed diff to press jump")
	}

	err := r.Apply(action.Diff[testAction, string]{Kind: action.DiffPressed, Action: actJump, ID: "p2"})
	if !errors.Is(err, ErrUnknownOwner) {
		t.Fatalf("expected ErrUnknownOwner, got %v", err)
	}

	r.Unregister("p1")
	err = r.Apply(action.Diff[testAction, string]{Kind: action.DiffReleased, Action: actJump, ID: "p1"})
	if !errors.Is(err, ErrUnknownOwner) {
		t.Fatalf("expected ErrUnknownOwner after unregister, got %v", err)
	}
}

func TestHubBroadcastToListener(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(testWriter{t}, nil))
	hub := NewHub(logger)
	server := httptest.NewServer(hub)
	defer server.Close()
	url := "ws" + strings.TrimPrefix(server.URL, "http")

	router := NewRouter[testAction, string]()
	remote := action.NewState[testAction]()
	router.Register("p1", remote)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	diffs := make(chan action.Diff[testAction, string], 16)
	listenDone := make(chan error, 1)
	go func() {
		listenDone <- Listen(ctx, url, diffs, logger)
	}()

	// Wait for the listener to register with the hub.
	deadline := time.Now().Add(5 * time.Second)
	for hub.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("listener never connected")
		}
		time.Sleep(5 * time.Millisecond)
	}

	if err := BroadcastDiff(hub, action.Diff[testAction, string]{Kind: action.DiffPressed, Action: actRun, ID: "p1"}); err != nil {
		t.Fatalf("BroadcastDiff: %v", err)
	}

	select {
	case d := <-diffs:
		if err := router.Apply(d); err != nil {
			t.Fatalf("Apply: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("diff never reached the listener")
	}
	if !remote.Pressed(actRun) {
		t.Fatalf("expected replayed diff to press run")
	}

	cancel()
	select {
	case err := <-listenDone:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("listener did not stop on cancel")
	}
}

type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}
