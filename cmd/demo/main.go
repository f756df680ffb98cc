package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/actionmap/transport"
)

func main() {
	profilePath := flag.String("bindings", "bindings.yaml", "binding profile path (falls back to the embedded default)")
	serveAddr := flag.String("serve", "", "if set, broadcast action diffs to websocket clients on this address")
	flag.Parse()

	var hub *transport.Hub
	if *serveAddr != "" {
		hub = transport.NewHub(nil)
		go func() {
			log.Printf("diff hub listening on %s", *serveAddr)
			if err := http.ListenAndServe(*serveAddr, hub); err != nil {
				log.Fatal(err)
			}
		}()
	}

	game, err := NewGame(*profilePath, hub)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("actionmap demo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
