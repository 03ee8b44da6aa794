package render

import (
	"image/color"
	"io"

	"github.com/fogleman/gg"
)

// PNG draws swatches as rounded squares on a white grid.
type PNG struct {
	// Columns per row; 5 when zero.
	Columns int
	// Size of a swatch in pixels; 100 when zero.
	Size int
}

const pngMargin = 10

func (p PNG) Render(w io.Writer, swatches []Swatch) error {
	cols, size := p.Columns, p.Size
	if cols <= 0 {
		cols = 5
	}
	if size <= 0 {
		size = 100
	}
	if len(swatches) < cols {
		cols = len(swatches)
	}
	if cols == 0 {
		cols = 1
	}
	rows := (len(swatches) + cols - 1) / cols
	if rows == 0 {
		rows = 1
	}

	cell := size + pngMargin
	dc := gg.NewContext(cols*cell+pngMargin, rows*cell+pngMargin)
	dc.SetColor(color.White)
	dc.Clear()

	for i, s := range swatches {
		x := float64(pngMargin + (i%cols)*cell)
		y := float64(pngMargin + (i/cols)*cell)
		dc.SetColor(s.RGB)
		dc.DrawRoundedRectangle(x, y, float64(size), float64(size), float64(size)/10)
		dc.Fill()
	}

	return dc.EncodePNG(w)
}
