package render

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmuldo/distinct/colorspace"
)

var testColors = []colorspace.Lab{
	{L: 50},
	{L: 53.24, A: 80.09, B: 67.2},
	{L: 87.73, A: -86.18, B: 83.18},
}

func TestSwatches(t *testing.T) {
	sw := Swatches(testColors)
	if len(sw) != len(testColors) {
		t.Fatalf("len = %d, want %d", len(sw), len(testColors))
	}
	if sw[0].RGB != (colorspace.RGB{R: 119, G: 119, B: 119}) {
		t.Errorf("gray swatch RGB = %+v", sw[0].RGB)
	}
	if sw[1].RGB != (colorspace.RGB{R: 255, G: 0, B: 0}) {
		t.Errorf("red swatch RGB = %+v", sw[1].RGB)
	}
	for i, s := range sw {
		if s.Lab != testColors[i] {
			t.Errorf("swatch %d reordered", i)
		}
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		if _, err := ByName(name); err != nil {
			t.Errorf("ByName(%q) error = %v", name, err)
		}
	}
	if _, err := ByName("svg"); err == nil {
		t.Error("ByName(svg) should fail")
	}
}

func TestTerminal(t *testing.T) {
	var buf bytes.Buffer
	if err := (Terminal{}).Render(&buf, Swatches(testColors)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if n := strings.Count(out, "\n"); n != len(testColors) {
		t.Errorf("wrote %d lines, want %d", n, len(testColors))
	}
	for _, want := range []string{"#777777", "#ff0000", "hsl(0.0, 0%, 46.7%)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := (HTML{Title: "test"}).Render(&buf, Swatches(testColors)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if n := strings.Count(out, "<div "); n != len(testColors) {
		t.Errorf("wrote %d divs, want %d", n, len(testColors))
	}
	for _, want := range []string{"<title>test</title>", "background-color: #777777", "lab(50% 0 0)", "border-radius: 10%"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := (PNG{Columns: 2, Size: 40}).Render(&buf, Swatches(testColors)); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	// 2 columns x 2 rows of 40px cells with 10px margins.
	if b := img.Bounds(); b.Dx() != 110 || b.Dy() != 110 {
		t.Errorf("bounds = %v, want 110x110", b)
	}
	centers := []struct{ x, y int }{{30, 30}, {80, 30}, {30, 80}}
	for i, c := range centers {
		got := colorspace.FromColor(img.At(c.x, c.y))
		want := colorspace.LabToRGB(testColors[i])
		if got != want {
			t.Errorf("swatch %d center = %+v, want %+v", i, got, want)
		}
	}
	if got := colorspace.FromColor(img.At(105, 105)); got != (colorspace.RGB{R: 255, G: 255, B: 255}) {
		t.Errorf("empty cell = %+v, want white", got)
	}
}

func TestPNG_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := (PNG{}).Render(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Errorf("decode: %v", err)
	}
}

func TestTemplate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config")
	tpl := "background = {{ background }}\nforeground = {{ foreground }}\ncolors = {{ count }}\n"
	if err := os.WriteFile(path, []byte(tpl), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := (Template{Path: path}).Render(&buf, Swatches(testColors)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "background = #777777") {
		t.Errorf("output missing background:\n%s", out)
	}
	if !strings.Contains(out, "foreground = #00ff00") {
		t.Errorf("output missing foreground:\n%s", out)
	}
	if !strings.Contains(out, "colors = 3") {
		t.Errorf("output missing count:\n%s", out)
	}
}

func TestTemplate_Missing(t *testing.T) {
	err := (Template{Path: filepath.Join(t.TempDir(), "none")}).Render(&bytes.Buffer{}, nil)
	if err == nil {
		t.Error("missing template should fail")
	}
}
