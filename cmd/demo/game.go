package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/actionmap/bindings"
	"github.com/milk9111/actionmap/ecs"
	"github.com/milk9111/actionmap/ecs/component"
	"github.com/milk9111/actionmap/ecs/system"
	"github.com/milk9111/actionmap/transport"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	groundY   = 600.0
	moveSpeed = 4.0
	jumpSpeed = 12.0
	gravity   = 0.5
)

var (
	actionsComponent = component.NewKind[component.Actions[demoAction, string]]()
	driversComponent = component.NewKind[component.Driver[demoAction, string]]()
)

// Game runs a square around with the full stack: binding profile,
// device snapshot, action system, optional diff broadcast.
type Game struct {
	world  *ecs.World
	player *component.Actions[demoAction, string]

	profilePath string
	watcher     *bindings.Watcher

	x, y     float64
	vy       float64
	grounded bool
}

func NewGame(profilePath string, hub *transport.Hub) (*Game, error) {
	profile, fromDisk, err := loadProfile(profilePath)
	if err != nil {
		return nil, err
	}
	bound, err := bindings.BuildMap(profile, actionNames)
	if err != nil {
		return nil, err
	}

	g := &Game{
		world:       ecs.NewWorld(),
		profilePath: profilePath,
		x:           baseWidth / 2,
		y:           groundY,
		grounded:    true,
	}

	g.player = component.NewActions[demoAction]("player-1", bound)
	e := g.world.CreateEntity()
	if err := ecs.Add(g.world, e, actionsComponent, g.player); err != nil {
		return nil, err
	}

	g.world.AddSystem(system.NewActionSystem(actionsComponent, driversComponent, nil, nil))
	if hub != nil {
		g.world.AddSystem(transport.NewBroadcaster(hub, nil))
	}

	// Hot-reload the profile while the game runs, if it came from disk.
	if fromDisk {
		watcher, err := bindings.Watch(filepath.Dir(profilePath))
		if err != nil {
			log.Printf("binding watch disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.pollProfileEdits()

	g.world.Update()

	moveX := 0.0
	if g.player.State.Pressed(actLeft) {
		moveX -= 1
	}
	if g.player.State.Pressed(actRight) {
		moveX += 1
	}
	g.x += moveX * moveSpeed

	if g.player.State.Pressed(actJump) && g.grounded {
		g.vy = -jumpSpeed
		g.grounded = false
	}
	if !g.grounded {
		g.vy += gravity
		g.y += g.vy
		if g.y >= groundY {
			g.y = groundY
			g.vy = 0
			g.grounded = true
		}
	}

	return nil
}

func (g *Game) pollProfileEdits() {
	if g.watcher == nil {
		return
	}
	select {
	case path, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		if filepath.Clean(path) != filepath.Clean(g.profilePath) {
			return
		}
		profile, _, err := loadProfile(g.profilePath)
		if err != nil {
			log.Printf("profile reload failed: %v", err)
			return
		}
		bound, err := bindings.BuildMap(profile, actionNames)
		if err != nil {
			log.Printf("profile reload failed: %v", err)
			return
		}
		g.player.Bindings = bound
		log.Printf("reloaded bindings from %s", g.profilePath)
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("binding watch error: %v", err)
		}
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, float32(groundY)+20, baseWidth, baseHeight-float32(groundY)-20, color.RGBA{40, 40, 40, 255}, false)
	vector.DrawFilledRect(screen, float32(g.x)-10, float32(g.y), 20, 20, color.RGBA{220, 80, 80, 255}, false)

	msg := fmt.Sprintf("FPS: %.1f\n", ebiten.ActualFPS())
	for _, a := range g.player.State.PressedActions() {
		b := g.player.State.ButtonState(a)
		msg += fmt.Sprintf("%v held %s\n", a, b.CurrentDuration().Round(10*time.Millisecond))
	}
	for _, a := range g.player.State.ReleasedActions() {
		b := g.player.State.ButtonState(a)
		if b.PreviousDuration() > 0 {
			msg += fmt.Sprintf("%v last held %s\n", a, b.PreviousDuration().Round(10*time.Millisecond))
		}
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
