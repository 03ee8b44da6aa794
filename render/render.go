// Package render presents generated colors. Renderers consume an ordered list
// of swatches and know nothing about how the colors were chosen.
package render

import (
	"io"
	"sort"

	"github.com/mmuldo/distinct/colorspace"
	"github.com/pkg/errors"
)

// Swatch is one color in every form a renderer may need.
type Swatch struct {
	Lab colorspace.Lab
	RGB colorspace.RGB
	HSL colorspace.HSL
}

// Swatches converts colors to swatches, keeping their order.
func Swatches(colors []colorspace.Lab) []Swatch {
	out := make([]Swatch, len(colors))
	for i, c := range colors {
		out[i] = Swatch{
			Lab: c,
			RGB: colorspace.LabToRGB(c),
			HSL: colorspace.LabToHSL(c),
		}
	}
	return out
}

// Renderer writes swatches to w.
type Renderer interface {
	Render(w io.Writer, swatches []Swatch) error
}

var renderers = map[string]func() Renderer{
	"terminal": func() Renderer { return Terminal{} },
	"html":     func() Renderer { return HTML{Title: "distinct colors"} },
	"png":      func() Renderer { return PNG{} },
}

// ByName returns the built-in renderer with the given name.
func ByName(name string) (Renderer, error) {
	r, ok := renderers[name]
	if !ok {
		return nil, errors.Errorf("unknown format %q, want one of %v", name, Names())
	}
	return r(), nil
}

// Names lists the built-in renderers.
func Names() []string {
	names := make([]string, 0, len(renderers))
	for n := range renderers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
