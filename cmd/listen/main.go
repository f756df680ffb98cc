// Command listen connects to a demo diff hub and replays incoming
// diffs onto a local mirror of the player's action state, printing
// each transition. Run the demo with -serve :8765, then:
//
//	listen -url ws://localhost:8765
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/milk9111/actionmap/action"
	"github.com/milk9111/actionmap/transport"
)

type demoAction int

const (
	actLeft demoAction = iota
	actRight
	actJump
)

func (demoAction) Variants() []demoAction {
	return []demoAction{actLeft, actRight, actJump}
}

func (a demoAction) String() string {
	switch a {
	case actLeft:
		return "left"
	case actRight:
		return "right"
	case actJump:
		return "jump"
	}
	return "unknown"
}

func main() {
	url := flag.String("url", "ws://localhost:8765", "diff hub websocket URL")
	owner := flag.String("owner", "player-1", "owner id to mirror")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	mirror := action.NewState[demoAction]()
	router := transport.NewRouter[demoAction, string]()
	router.Register(*owner, mirror)

	diffs := make(chan action.Diff[demoAction, string], 64)
	errCh := make(chan error, 1)
	go func() {
		errCh <- transport.Listen(ctx, *url, diffs, logger)
	}()

	for {
		select {
		case d := <-diffs:
			if err := router.Apply(d); err != nil {
				logger.Warn("skipping diff", "error", err)
				continue
			}
			logger.Info("diff applied",
				"action", d.Action.String(),
				"kind", string(d.Kind),
				"pressed", mirror.PressedActions(),
			)
		case err := <-errCh:
			if err != nil && ctx.Err() == nil {
				logger.Error("listen failed", "error", err)
				os.Exit(1)
			}
			return
		}
	}
}
