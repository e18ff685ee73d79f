// SPDX-License-Identifier: Unlicense OR MIT

package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/indextrown/ScaleKit/device"
	"github.com/indextrown/ScaleKit/scale"
	"github.com/indextrown/ScaleKit/unit"
)

// factorCommand prints the scale factor of the configured device.
func (c *CLI) factorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "factor",
		Short: "Print the scale factor for the viewport",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.engine(cmd)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%.4f\n", e.ScaleFactor())
			return err
		},
	}
}

// sizeCommand scales each nominal size argument.
func (c *CLI) sizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "size <nominal>...",
		Short: "Scale nominal sizes to the viewport",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]float64, len(args))
			for i, a := range args {
				v, err := strconv.ParseFloat(a, 64)
				if err != nil {
					return fmt.Errorf("invalid size %q: %w", a, err)
				}
				values[i] = v
			}
			e, err := c.engine(cmd)
			if err != nil {
				return err
			}
			b := e.Auto()
			w := cmd.OutOrStdout()
			for _, v := range values {
				if _, err := fmt.Fprintf(w, "%g\t%.2f\n", v, unit.Of(b, v)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// presetsCommand lists device presets with their factors.
func (c *CLI) presetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List device presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(device.Presets))
			for _, p := range device.Presets {
				e := scale.New(scale.WithViewport(p.Width, p.Height))
				rows = append(rows, []string{
					p.Name,
					strconv.FormatFloat(p.Width, 'g', -1, 64),
					strconv.FormatFloat(p.Height, 'g', -1, 64),
					p.Class.String(),
					fmt.Sprintf("%.4f", e.Factor(p.Class)),
				})
			}

			headerStyle := lipgloss.NewStyle().Bold(true)
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				Headers("NAME", "WIDTH", "HEIGHT", "CLASS", "FACTOR").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return headerStyle.Padding(0, 1)
					}
					return lipgloss.NewStyle().Padding(0, 1)
				})
			_, err := fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return err
		},
	}
}

// engine builds the engine for the merged configuration.
func (c *CLI) engine(cmd *cobra.Command) (*scale.Engine, error) {
	cfg, err := c.config(cmd)
	if err != nil {
		return nil, err
	}
	e, err := cfg.Engine()
	if err != nil {
		return nil, err
	}
	b := e.Auto()
	c.Logger.Debug("viewport",
		"width", e.Width(),
		"height", e.Height(),
		"class", b.Class(),
		"baseline", scale.BaselineFor(b.Class()),
	)
	return e, nil
}
