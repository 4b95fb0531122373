package app

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"lifegrid/internal/core"
)

// Config represents the host parameters, bound to flags and optionally
// seeded from a JSON file.
type Config struct {
	Engine     string  `json:"engine"`
	Cols       int     `json:"cols"`
	Rows       int     `json:"rows"`
	CellSize   int     `json:"cell_size"`
	Rate       int     `json:"rate"`
	PausedRate int     `json:"paused_rate"`
	MinRate    int     `json:"min_rate"`
	MaxRate    int     `json:"max_rate"`
	Seed       int64   `json:"seed"`
	Density    float64 `json:"density"`
	Pattern    string  `json:"pattern"`
	History    int     `json:"history"`

	File string `json:"-"`
}

// NewConfig returns a Config populated with the defaults of the classic
// 800x600 window: 80x60 cells of 10 pixels, 14 generations per second.
func NewConfig() *Config {
	return &Config{
		Engine:     "dense",
		Cols:       80,
		Rows:       60,
		CellSize:   10,
		Rate:       core.DefaultRate,
		PausedRate: 40,
		MinRate:    12,
		MaxRate:    80,
		Seed:       42,
		History:    12,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Engine, "engine", c.Engine, "automaton engine: dense or sparse")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns (dense) or viewport columns (sparse)")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows (dense) or viewport rows (sparse)")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.Rate, "rate", c.Rate, "generations per second while running")
	fs.IntVar(&c.PausedRate, "paused-rate", c.PausedRate, "frames per second while paused")
	fs.IntVar(&c.MinRate, "min-rate", c.MinRate, "lower bound (exclusive) for rate adjustments")
	fs.IntVar(&c.MaxRate, "max-rate", c.MaxRate, "upper bound (exclusive) for rate adjustments")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fills")
	fs.Float64Var(&c.Density, "density", c.Density, "initial random fill density (0 leaves the grid empty)")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "built-in pattern stamped at the centre on start")
	fs.IntVar(&c.History, "history", c.History, "generations remembered for period detection")
	fs.StringVar(&c.File, "config", c.File, "optional JSON file with defaults")
}

// Parse reads args into c. When -config names a file its values become the
// defaults and the flags are parsed again so the command line still wins.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "[Config.Parse] failed to parse flags")
	}
	if c.File == "" {
		return c.Validate()
	}
	file := c.File
	set := map[string]string{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = f.Value.String() })
	if err := c.Load(file); err != nil {
		return err
	}
	for name, value := range set {
		if err := fs.Set(name, value); err != nil {
			return errors.Wrapf(err, "[Config.Parse] failed to reapply -%s", name)
		}
	}
	return c.Validate()
}

// Load overlays values from a JSON file onto c.
func (c *Config) Load(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "[Config.Load] failed to read file: %+v", filename)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[Config.Load] failed to unmarshal data from file: %+v", filename)
	}
	return nil
}

// Validate rejects configurations no host can run.
func (c *Config) Validate() error {
	switch {
	case c.Cols <= 0 || c.Rows <= 0:
		return errors.Errorf("grid must be positive, got %dx%d", c.Cols, c.Rows)
	case c.CellSize <= 0:
		return errors.Errorf("cell size must be positive, got %d", c.CellSize)
	case c.MinRate >= c.MaxRate:
		return errors.Errorf("rate bounds inverted: %d >= %d", c.MinRate, c.MaxRate)
	case c.Rate <= 0 || c.PausedRate <= 0:
		return errors.Errorf("rates must be positive, got %d and %d", c.Rate, c.PausedRate)
	case c.Density < 0 || c.Density > 1:
		return errors.Errorf("density must be within [0,1], got %v", c.Density)
	}
	if _, ok := core.Engines()[c.Engine]; !ok {
		return errors.Errorf("unknown engine %q", c.Engine)
	}
	return nil
}

// EngineConfig returns the FromMap parameters for the selected engine.
func (c *Config) EngineConfig() map[string]string {
	return map[string]string{"w": strconv.Itoa(c.Cols), "h": strconv.Itoa(c.Rows)}
}
