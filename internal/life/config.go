package life

import "strconv"

// Config holds the dimensions of the dense grid. The sparse engine ignores it.
type Config struct {
	Width  int
	Height int
}

// DefaultConfig returns an 80x60 grid, an 800x600 window at 10 pixels per cell.
func DefaultConfig() Config {
	return Config{Width: 80, Height: 60}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	return c
}
