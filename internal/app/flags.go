package app

import (
	"flag"
	"fmt"
	"strings"

	"uncurl/internal/view"
)

// pathList collects a repeatable string flag.
type pathList []string

func (p *pathList) String() string { return strings.Join(*p, ",") }

func (p *pathList) Set(v string) error {
	*p = append(*p, v)
	return nil
}

// Config represents the command-line parameters for the application. Input
// is the positional argument; everything else is a flag.
type Config struct {
	Input         string
	Curve         string
	Sensitivity   float64
	Window        int
	ExitOnClick   bool
	WriteTargets  pathList
	SnapshotDir   string
	SnapshotScale int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Curve:         "hilbert",
		Sensitivity:   view.DefaultSensitivity,
		Window:        1024,
		SnapshotDir:   ".",
		SnapshotScale: 1,
	}
}

// Validate rejects parameter values the interactive loop cannot run with.
// Called from main after flag parsing, before any mapping state exists. A
// non-positive sensitivity would drive the scale to zero or NaN under
// ZoomAt, and exactly 1 freezes the wheel entirely.
func (c *Config) Validate() error {
	if c.Sensitivity <= 0 || c.Sensitivity == 1 {
		return fmt.Errorf("sensitivity must be positive and not 1, got %v", c.Sensitivity)
	}
	if c.Window <= 0 {
		return fmt.Errorf("window size must be positive, got %d", c.Window)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Curve, "curve", c.Curve, "space-filling curve type")
	fs.Float64Var(&c.Sensitivity, "sensitivity", c.Sensitivity, "zoom factor per mouse wheel tick")
	fs.IntVar(&c.Window, "window", c.Window, "initial window size in pixels")
	fs.BoolVar(&c.ExitOnClick, "exit", c.ExitOnClick, "exit after the first successful click")
	fs.Var(&c.WriteTargets, "write", "write the picked 1D offset to this file on click, \"-\" for stdout (repeatable)")
	fs.StringVar(&c.SnapshotDir, "snapshot-dir", c.SnapshotDir, "directory PNG snapshots are written to")
	fs.IntVar(&c.SnapshotScale, "snapshot-scale", c.SnapshotScale, "integer upscale factor for PNG snapshots")
}
