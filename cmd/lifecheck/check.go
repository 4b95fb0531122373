package main

import (
	"context"
	"fmt"
	"slices"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"lifegrid/internal/core"
	"lifegrid/internal/life"
)

type params struct {
	cols, rows int
	margin     int
	density    float64
	steps      int
}

type result struct {
	seed       int64
	generation int
	population int
	// border is set when a live cell reached the edge of the dense grid,
	// after which the two engines are allowed to differ.
	border bool
}

func (r result) String() string {
	if r.border {
		return fmt.Sprintf("seed %d: agreed for %d generations until the pattern reached the border (population %d)", r.seed, r.generation, r.population)
	}
	return fmt.Sprintf("seed %d: agreed for %d generations (population %d)", r.seed, r.generation, r.population)
}

// touchesBorder reports whether d has a live cell on its outermost ring.
func touchesBorder(d *life.Dense) bool {
	size := d.Size()
	for c := range d.Cells() {
		if c.X == 0 || c.Y == 0 || c.X == size.W-1 || c.Y == size.H-1 {
			return true
		}
	}
	return false
}

// compare seeds a dense grid and a sparse plane identically and steps both
// until p.steps generations pass or the pattern reaches the dense border.
func compare(ctx context.Context, p params, seed int64) (result, error) {
	res := result{seed: seed}
	dense := life.NewDense(p.rows, p.cols)
	region := core.Rect{
		Min: core.Coord{X: p.margin, Y: p.margin},
		Max: core.Coord{X: p.cols - p.margin, Y: p.rows - p.margin},
	}
	if region.Empty() {
		return res, errors.Errorf("margin %d leaves no room in a %dx%d grid", p.margin, p.cols, p.rows)
	}
	if err := core.Scatter(core.NewRNG(seed), dense, region, p.density); err != nil {
		return res, errors.Wrapf(err, "[compare] seed %d", seed)
	}
	sparse := life.NewSparse()
	for c := range dense.Cells() {
		sparse.Set(c.X, c.Y)
	}

	for res.generation < p.steps {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if touchesBorder(dense) {
			res.border = true
			break
		}
		dense.Step()
		sparse.Step()
		res.generation++
		dc, sc := core.LiveCells(dense), core.LiveCells(sparse)
		if !slices.Equal(dc, sc) {
			return res, errors.Errorf("seed %d diverged at generation %d: dense %d cells, sparse %d cells",
				seed, res.generation, len(dc), len(sc))
		}
	}
	res.population = dense.Population()
	return res, nil
}

// compareAll runs one comparison per seed, at most workers at a time. Each
// run owns its engines, so runs never share state.
func compareAll(ctx context.Context, p params, first int64, runs, workers int) ([]result, error) {
	results := make([]result, runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, workers))
	for i := 0; i < runs; i++ {
		seed := first + int64(i)
		g.Go(func() error {
			res, err := compare(ctx, p, seed)
			results[i] = res
			return err
		})
	}
	return results, g.Wait()
}
