package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
)

func main() {
	steps := flag.Int("steps", 500, "generations to compare per seed")
	cols := flag.Int("cols", 160, "dense grid columns")
	rows := flag.Int("rows", 120, "dense grid rows")
	margin := flag.Int("margin", 40, "cells left empty around the seeded region")
	density := flag.Float64("density", 0.35, "fill density of the seeded region")
	seed := flag.Int64("seed", 1, "first seed")
	runs := flag.Int("runs", 8, "number of consecutive seeds to compare")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel comparisons")
	flag.Parse()
	if *cols <= 0 || *rows <= 0 {
		log.Fatalf("grid size must be positive, got %dx%d", *cols, *rows)
	}

	p := params{cols: *cols, rows: *rows, margin: *margin, density: *density, steps: *steps}
	results, err := compareAll(context.Background(), p, *seed, *runs, *workers)
	for _, r := range results {
		if r.generation > 0 || r.border {
			fmt.Println(r)
		}
	}
	if err != nil {
		log.Fatalf("engines disagree: %v", err)
	}
	fmt.Printf("dense and sparse engines agree on %d seeds\n", *runs)
}
