package main

import (
	"context"
	"testing"
)

func TestCompareAgreesUntilBorder(t *testing.T) {
	p := params{cols: 48, rows: 48, margin: 18, density: 0.4, steps: 200}
	results, err := compareAll(context.Background(), p, 1, 6, 3)
	if err != nil {
		t.Fatalf("engines disagree: %v", err)
	}
	for _, r := range results {
		if r.generation == 0 && !r.border {
			t.Fatalf("seed %d did not run", r.seed)
		}
		if !r.border && r.generation != p.steps {
			t.Fatalf("seed %d stopped at %d without reaching the border", r.seed, r.generation)
		}
	}
}

func TestCompareRejectsOversizedMargin(t *testing.T) {
	p := params{cols: 10, rows: 10, margin: 5, density: 0.5, steps: 10}
	if _, err := compare(context.Background(), p, 1); err == nil {
		t.Fatal("empty region accepted")
	}
}

func TestCompareHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := params{cols: 30, rows: 30, margin: 10, density: 0.5, steps: 10}
	if _, err := compare(ctx, p, 1); err == nil {
		t.Fatal("cancelled comparison reported success")
	}
}
