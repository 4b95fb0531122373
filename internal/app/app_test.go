package app

import (
	"flag"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"lifegrid/internal/core"
)

func TestConfigFileThenFlags(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "life.json")
	body := `{"engine": "sparse", "cols": 40, "rows": 30, "rate": 20}`
	if err := os.WriteFile(file, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	if err := cfg.Parse(fs, []string{"-config", file, "-rows", "25"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Engine != "sparse" || cfg.Cols != 40 || cfg.Rate != 20 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Rows != 25 {
		t.Fatalf("flag did not override file: rows=%d", cfg.Rows)
	}
	if cfg.CellSize != 10 {
		t.Fatalf("default lost: cell=%d", cfg.CellSize)
	}
}

func TestConfigLoadErrors(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("missing file accepted")
	}
	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Load(bad); err == nil {
		t.Fatal("malformed file accepted")
	}
}

func TestConfigValidate(t *testing.T) {
	for name, mutate := range map[string]func(*Config){
		"zero cols":     func(c *Config) { c.Cols = 0 },
		"zero cell":     func(c *Config) { c.CellSize = 0 },
		"inverted rate": func(c *Config) { c.MinRate, c.MaxRate = 80, 12 },
		"zero rate":     func(c *Config) { c.Rate = 0 },
		"density":       func(c *Config) { c.Density = 1.5 },
		"engine":        func(c *Config) { c.Engine = "hex" },
	} {
		cfg := NewConfig()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: invalid config accepted", name)
		}
	}
	if err := NewConfig().Validate(); err != nil {
		t.Fatalf("defaults rejected: %v", err)
	}
}

func TestPlaybackStartsPaused(t *testing.T) {
	pb := NewPlayback(NewConfig())
	if !pb.Paused() || pb.Rate() != 40 {
		t.Fatalf("paused=%v rate=%d", pb.Paused(), pb.Rate())
	}
	if tick := pb.Tick(); tick.Advance {
		t.Fatal("paused playback advanced")
	}
	pb.StepOnce()
	if tick := pb.Tick(); !tick.Advance {
		t.Fatal("step once did not advance")
	}
	if tick := pb.Tick(); tick.Advance {
		t.Fatal("step once advanced twice")
	}
}

func TestPlaybackRateBounds(t *testing.T) {
	pb := NewPlayback(NewConfig())
	if pb.Adjust(1) {
		t.Fatal("rate adjusted while paused")
	}
	pb.Toggle()
	if pb.Rate() != 14 {
		t.Fatalf("running rate %d, expected 14", pb.Rate())
	}
	for i := 0; i < 200; i++ {
		pb.Adjust(1)
	}
	if pb.Rate() != 79 {
		t.Fatalf("rate climbed to %d, expected 79", pb.Rate())
	}
	for i := 0; i < 200; i++ {
		pb.Adjust(-1)
	}
	if pb.Rate() != 13 {
		t.Fatalf("rate fell to %d, expected 13", pb.Rate())
	}
	if pb.SetIntParameter("rate", 12) || !pb.SetIntParameter("rate", 30) || pb.Rate() != 30 {
		t.Fatalf("hud rate control misbehaved, rate=%d", pb.Rate())
	}

	// Pausing and resuming restores the configured pace.
	pb.Toggle()
	if pb.Rate() != 40 {
		t.Fatalf("paused rate %d", pb.Rate())
	}
	pb.Toggle()
	if pb.Rate() != 14 {
		t.Fatalf("resumed rate %d, expected 14", pb.Rate())
	}
	if tick := pb.Tick(); !tick.Advance || tick.Rate != 14 {
		t.Fatalf("running tick %+v", tick)
	}
}

func TestViewportMapping(t *testing.T) {
	v := Viewport{Cols: 80, Rows: 60, CellSize: 10}
	if c, ok := v.CellAt(799, 599); !ok || c != (core.Coord{X: 79, Y: 59}) {
		t.Fatalf("bottom-right pixel -> %v ok=%v", c, ok)
	}
	for _, p := range [][2]int{{800, 0}, {0, 600}, {-1, 5}} {
		if _, ok := v.CellAt(p[0], p[1]); ok {
			t.Fatalf("pixel %v mapped inside viewport", p)
		}
	}
	v.Pan(-5, 3)
	if c, _ := v.CellAt(15, 15); c != (core.Coord{X: -4, Y: 4}) {
		t.Fatalf("panned mapping -> %v", c)
	}
	if col, row, ok := v.Local(core.Coord{X: -4, Y: 4}); !ok || col != 1 || row != 1 {
		t.Fatalf("local -> %d,%d ok=%v", col, row, ok)
	}
	if _, _, ok := v.Local(core.Coord{X: 100, Y: 4}); ok {
		t.Fatal("off-screen cell reported visible")
	}
}

func TestHostPaintAndTick(t *testing.T) {
	cfg := NewConfig()
	cfg.Cols, cfg.Rows = 10, 10
	h, err := NewHost(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !h.Bounded() {
		t.Fatal("dense host should be bounded")
	}
	// A vertical blinker painted with the pointer.
	for _, y := range []int{35, 45, 55} {
		if !h.Paint(45, y, core.Alive) {
			t.Fatalf("paint at y=%d dropped", y)
		}
	}
	if h.Paint(100, 5, core.Alive) {
		t.Fatal("paint outside the grid was accepted")
	}
	if _, err := h.Tick(); err != nil {
		t.Fatal(err)
	}
	want := []core.Coord{{X: 4, Y: 3}, {X: 4, Y: 4}, {X: 4, Y: 5}}
	if snap := h.Session().Snapshot(); !slices.Equal(snap.Cells, want) || snap.Generation != 0 {
		t.Fatalf("snapshot %+v", snap)
	}

	h.Playback().Toggle()
	if _, err := h.Tick(); err != nil {
		t.Fatal(err)
	}
	want = []core.Coord{{X: 3, Y: 4}, {X: 4, Y: 4}, {X: 5, Y: 4}}
	if snap := h.Session().Snapshot(); !slices.Equal(snap.Cells, want) || snap.Generation != 1 {
		t.Fatalf("snapshot %+v", snap)
	}
	if _, err := h.Tick(); err != nil {
		t.Fatal(err)
	}
	period, _ := h.Parameters().Lookup("period")
	if period.Value != "p2" {
		t.Fatalf("period %q, expected p2", period.Value)
	}
}

func TestHostSparsePanAndPattern(t *testing.T) {
	cfg := NewConfig()
	cfg.Engine = "sparse"
	cfg.Cols, cfg.Rows = 20, 20
	cfg.Pattern = "block"
	h, err := NewHost(cfg)
	if err != nil {
		t.Fatal(err)
	}
	want := []core.Coord{{X: 9, Y: 9}, {X: 10, Y: 9}, {X: 9, Y: 10}, {X: 10, Y: 10}}
	got := h.Visible()
	core.SortCoords(got)
	if !slices.Equal(got, want) {
		t.Fatalf("visible %v, expected %v", got, want)
	}

	h.Pan(-10, -10)
	if h.Viewport().Camera != (core.Coord{X: -10, Y: -10}) {
		t.Fatalf("camera %v", h.Viewport().Camera)
	}
	// Painting at the top-left pixel now reaches negative coordinates.
	h.Paint(0, 0, core.Alive)
	if _, err := h.Tick(); err != nil {
		t.Fatal(err)
	}
	var found bool
	h.Session().View(func(e core.Engine) { found = e.Alive(core.Coord{X: -10, Y: -10}) })
	if !found {
		t.Fatal("paint at negative coordinate missing")
	}
	if _, ok := h.Parameters().Lookup("camera"); !ok {
		t.Fatal("sparse host should report its camera")
	}
}

func TestHostRandomizeDeterministic(t *testing.T) {
	cfg := NewConfig()
	cfg.Cols, cfg.Rows = 16, 16
	a, _ := NewHost(cfg)
	b, _ := NewHost(cfg)
	a.Randomize(5)
	b.Randomize(5)
	_, _ = a.Tick()
	_, _ = b.Tick()
	sa, sb := a.Session().Snapshot(), b.Session().Snapshot()
	if sa.Population == 0 || !slices.Equal(sa.Cells, sb.Cells) {
		t.Fatalf("randomize not deterministic: %d vs %d cells", sa.Population, sb.Population)
	}
	a.Clear()
	_, _ = a.Tick()
	if a.Session().Snapshot().Population != 0 {
		t.Fatal("clear left live cells")
	}
	a.Reseed()
	_, _ = a.Tick()
	if !slices.Equal(a.Session().Snapshot().Cells, sb.Cells) {
		t.Fatal("reseed did not repeat the last fill")
	}
}

func TestHostRejectsUnknownPattern(t *testing.T) {
	cfg := NewConfig()
	cfg.Pattern = "spaceship-9000"
	if _, err := NewHost(cfg); err == nil {
		t.Fatal("unknown pattern accepted")
	}
}
