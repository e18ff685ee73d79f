// SPDX-License-Identifier: Unlicense OR MIT

// Package cli implements the scalekit command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/indextrown/ScaleKit/device"
	"github.com/indextrown/ScaleKit/display"
	"github.com/indextrown/ScaleKit/geom"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// flags bound by RootCommand
	configPath string
	preset     string
	class      device.Class
	width      float64
	height     float64
	terminal   bool
	pixelRatio float64

	// terminalBounds is replaced in tests.
	terminalBounds func() (geom.Rectangle, error)
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		terminalBounds: func() (geom.Rectangle, error) {
			return display.Terminal(os.Stdout.Fd())
		},
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "scalekit",
		Short:         "Scale UI sizes to a device screen",
		Long:          `scalekit scales font sizes, paddings and radii designed for a reference phone or tablet to the diagonal of another screen.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "TOML config file")
	flags.StringVar(&c.preset, "preset", "", "device preset name (see presets)")
	flags.Var(&c.class, "class", "device class: compact or large, guessed from the viewport when unset")
	flags.Float64Var(&c.width, "width", 0, "viewport width in points")
	flags.Float64Var(&c.height, "height", 0, "viewport height in points")
	flags.BoolVar(&c.terminal, "terminal", false, "use the terminal window pixel size as viewport")
	flags.Float64Var(&c.pixelRatio, "pixel-ratio", 1, "device pixels per point, applied to --terminal")

	root.AddCommand(c.factorCommand())
	root.AddCommand(c.sizeCommand())
	root.AddCommand(c.presetsCommand())

	return root
}

// config merges the config file, the terminal size and the flags, in
// increasing precedence.
func (c *CLI) config(cmd *cobra.Command) (Config, error) {
	var cfg Config
	if c.configPath != "" {
		file, err := LoadConfig(c.configPath)
		if err != nil {
			return Config{}, err
		}
		c.Logger.Debug("loaded config", "path", c.configPath)
		cfg = file
	}
	if c.terminal {
		r, err := c.terminalBounds()
		if err != nil {
			return Config{}, fmt.Errorf("terminal viewport: %w", err)
		}
		if c.pixelRatio <= 0 {
			return Config{}, fmt.Errorf("invalid --pixel-ratio %g", c.pixelRatio)
		}
		pt := r.Size().Mul(1 / c.pixelRatio)
		c.Logger.Debug("terminal bounds", "pixels", r.Size(), "points", pt, "ratio", c.pixelRatio)
		cfg = cfg.Merge(Config{Viewport: Viewport{Width: pt.X, Height: pt.Y}})
	}

	var fl Config
	flags := cmd.Flags()
	if flags.Changed("preset") {
		fl.Preset = c.preset
	}
	if flags.Changed("class") {
		class := c.class
		fl.Class = &class
	}
	if flags.Changed("width") {
		fl.Viewport.Width = c.width
	}
	if flags.Changed("height") {
		fl.Viewport.Height = c.height
	}
	return cfg.Merge(fl), nil
}
