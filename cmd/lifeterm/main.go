package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"lifegrid/internal/app"
	"lifegrid/internal/term"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
	sized := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { sized[f.Name] = true })

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init terminal: %v", err)
	}
	defer screen.Fini()

	w, h := screen.Size()
	cols, rows := term.ViewportFor(w, h)
	if !sized["cols"] {
		cfg.Cols = cols
	}
	if !sized["rows"] {
		cfg.Rows = rows
	}
	cfg.CellSize = term.CellWidth

	host, err := app.NewHost(cfg)
	if err != nil {
		screen.Fini()
		log.Fatalf("start %s engine: %v", cfg.Engine, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := term.New(screen, host).Run(ctx); err != nil {
		screen.Fini()
		log.Fatal(err)
	}
}
