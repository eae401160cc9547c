package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/color-game/palettes/palette"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
)

func textHex(tone palette.TextTone) string {
	if tone == palette.TextDark {
		return "#000000"
	}
	return "#FFFFFF"
}

// swatchBlock draws label on the colour's background in its text colour.
func swatchBlock(sw palette.Swatch, label string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(sw.Hex)).
		Foreground(lipgloss.Color(textHex(sw.TextColor))).
		Padding(0, 2).
		Width(14).
		Render(label)
}

// renderPalette prints one line per swatch: position, coloured block, the
// value in format and a lock marker.
func renderPalette(p palette.Palette, format palette.Format) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s palette", p.Harmony)))
	b.WriteString("\n")
	for i, sw := range p.Swatches() {
		line := fmt.Sprintf("%d %s %s", i, swatchBlock(sw, sw.Hex), palette.ColorValue(sw.Color, format))
		if sw.Locked {
			line += " " + mutedStyle.Render("(locked)")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func newHarmoniesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "harmonies",
		Short: "List the harmony kinds",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, h := range palette.Harmonies {
				fmt.Fprintln(cmd.OutOrStdout(), h)
			}
		},
	}
}
