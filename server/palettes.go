//go:build !js
// +build !js

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/simukka/brewfx/palette"
	"github.com/spf13/cobra"
)

var (
	swatchName  = lipgloss.NewStyle().Bold(true).Width(22)
	swatchLabel = lipgloss.NewStyle().Faint(true).Width(10)
	swatchBlock = lipgloss.NewStyle().Width(3)
)

func swatch(hex string) string {
	return swatchBlock.Background(lipgloss.Color(hex)).Render("")
}

// renderSwatches draws one block of color swatches per drink.
func renderSwatches(model *palette.Model, ids []string) string {
	var b strings.Builder
	for _, id := range ids {
		v := NewPaletteView(model, id)
		b.WriteString(swatchName.Foreground(lipgloss.Color(v.AccentLight)).Render(v.ID))
		b.WriteString("\n")

		row := func(label string, colors ...string) {
			b.WriteString(swatchLabel.Render(label))
			for _, c := range colors {
				b.WriteString(swatch(c))
			}
			b.WriteString("\n")
		}
		row("particles", v.Particles...)
		row("accent", v.AccentLight, v.AccentDark)
		row("ramp", v.Ramp[:]...)
		if v.Liquid.FillLevel >= palette.EmptyFillThreshold {
			row("liquid", v.Liquid.BaseColor, v.Liquid.SecondaryColor)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func newPalettesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "palettes [drink...]",
		Short: "Show drink palettes as terminal swatches",
		RunE: func(cmd *cobra.Command, args []string) error {
			model := palette.NewModel()
			ids := args
			if len(ids) == 0 {
				ids = append([]string{palette.DefaultID}, model.Drinks()...)
			}
			for _, id := range ids {
				if id != palette.DefaultID && !model.Known(id) {
					a.logger.Warn().Str("drink", id).Msg("unknown drink, showing default")
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), renderSwatches(model, ids))
			return nil
		},
	}
}
