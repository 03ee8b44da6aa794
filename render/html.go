package render

import (
	"io"

	"github.com/flosch/pongo2"
)

var htmlTemplate = pongo2.Must(pongo2.FromString(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{ title }}</title>
</head>
<body>
{% for s in swatches %}<div title="{{ s.hex }} {{ s.hsl }}" style="display: inline-block; padding: 3em; margin: 10px; border-radius: 10%; background-color: {{ s.hex }}; background-color: {{ s.lab }};"></div>
{% endfor %}</body>
</html>
`))

// HTML writes a page of rounded swatches using CSS lab() colors, with hex
// fallbacks.
type HTML struct {
	Title string
}

func (h HTML) Render(w io.Writer, swatches []Swatch) error {
	items := make([]map[string]string, len(swatches))
	for i, s := range swatches {
		items[i] = map[string]string{
			"hex": s.RGB.Hex(),
			"hsl": s.HSL.String(),
			"lab": s.Lab.String(),
		}
	}
	return htmlTemplate.ExecuteWriter(pongo2.Context{
		"title":    h.Title,
		"swatches": items,
	}, w)
}
