//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"lifegrid/internal/app"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	host, err := app.NewHost(cfg)
	if err != nil {
		log.Fatalf("start %s engine: %v", cfg.Engine, err)
	}
	log.Printf("engine %s, %dx%d cells", cfg.Engine, cfg.Cols, cfg.Rows)

	game := app.New(host)
	w, h := game.WindowSize()

	ebiten.SetWindowTitle("life - " + cfg.Engine)
	ebiten.SetTPS(host.Playback().Rate())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
