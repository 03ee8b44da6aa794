package render

import (
	"io"

	"github.com/flosch/pongo2"
	"github.com/mmuldo/distinct/colorspace"
	"github.com/mmuldo/distinct/theme"
	"github.com/pkg/errors"
)

// Template renders a user pongo2 template against the theme built from the
// swatches.
type Template struct {
	Path string
	// Opts are extra theme keys, e.g. transparency.
	Opts map[string]interface{}
}

func (t Template) Render(w io.Writer, swatches []Swatch) error {
	labs := make([]colorspace.Lab, len(swatches))
	for i, s := range swatches {
		labs[i] = s.Lab
	}
	return ExecuteTheme(w, t.Path, theme.Create(labs, t.Opts))
}

// ExecuteTheme renders the template at path with th as its context.
func ExecuteTheme(w io.Writer, path string, th theme.Theme) error {
	tpl, err := pongo2.FromFile(path)
	if err != nil {
		return errors.Wrapf(err, "load template %s", path)
	}
	return errors.Wrap(tpl.ExecuteWriter(pongo2.Context(th), w), "execute template")
}
