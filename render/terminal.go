package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Terminal prints one colored block per swatch followed by its hex and hsl
// values.
type Terminal struct{}

func (Terminal) Render(w io.Writer, swatches []Swatch) error {
	for _, s := range swatches {
		hex := s.RGB.Hex()
		fg := lipgloss.Color("#ffffff")
		if s.Lab.L > 50 {
			fg = lipgloss.Color("#000000")
		}
		block := lipgloss.NewStyle().
			Background(lipgloss.Color(hex)).
			Foreground(fg).
			Padding(0, 2).
			Render(hex)
		if _, err := fmt.Fprintf(w, "%s %s\n", block, s.HSL); err != nil {
			return err
		}
	}
	return nil
}
