package image

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmuldo/distinct/colorspace"
)

// stripes returns a 10x10 image with 5 red columns, 3 green and 2 blue.
func stripes() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for x := 0; x < 10; x++ {
		c := color.NRGBA{255, 0, 0, 255}
		switch {
		case x >= 8:
			c = color.NRGBA{0, 0, 255, 255}
		case x >= 5:
			c = color.NRGBA{0, 255, 0, 255}
		}
		for y := 0; y < 10; y++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestColors(t *testing.T) {
	m := Colors(stripes(), 1)
	want := map[colorspace.RGB]int{
		{R: 255, G: 0, B: 0}: 50,
		{R: 0, G: 255, B: 0}: 30,
		{R: 0, G: 0, B: 255}: 20,
	}
	if len(m) != len(want) {
		t.Fatalf("Colors() found %d colors, want %d", len(m), len(want))
	}
	for c, n := range want {
		if m[c] != n {
			t.Errorf("count of %v = %d, want %d", c, m[c], n)
		}
	}
}

func TestColors_SkipsTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.NRGBA{10, 20, 30, 255})
	m := Colors(img, 1)
	if len(m) != 1 || m[colorspace.RGB{R: 10, G: 20, B: 30}] != 1 {
		t.Errorf("Colors() = %v, want only the opaque pixel", m)
	}
}

func TestRank(t *testing.T) {
	ranked := Rank(Colors(stripes(), 1))
	want := []colorspace.RGB{{R: 255, G: 0, B: 0}, {R: 0, G: 255, B: 0}, {R: 0, G: 0, B: 255}}
	for i, c := range want {
		if ranked[i].Color != c {
			t.Errorf("rank %d = %v, want %v", i, ranked[i].Color, c)
		}
	}
}

func TestQuantize(t *testing.T) {
	q := Quantize(stripes(), 4)
	if q.Bounds() != stripes().Bounds() {
		t.Errorf("Quantize changed bounds to %v", q.Bounds())
	}
	if n := len(Colors(q, 1)); n == 0 || n > 4 {
		t.Errorf("quantized image has %d colors, want 1..4", n)
	}
}

func TestLoadAndPalette(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stripes.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, stripes()); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if img.Bounds().Dx() != 10 {
		t.Errorf("loaded width = %d, want 10", img.Bounds().Dx())
	}

	p, err := Palette(path, 4)
	if err != nil {
		t.Fatalf("Palette() error = %v", err)
	}
	if len(p) == 0 || len(p) > 4 {
		t.Errorf("Palette() returned %d colors, want 1..4", len(p))
	}
}

func TestPalette_Errors(t *testing.T) {
	dir := t.TempDir()
	blank := filepath.Join(dir, "clear.png")
	f, err := os.Create(blank)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 10, 10))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	tests := []struct {
		name string
		path string
		n    int
		want string
	}{
		{"zero size", blank, 0, "palette size must be positive"},
		{"missing", filepath.Join(dir, "nope.png"), 4, "open image"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Palette(tt.path, tt.n)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Palette() error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}
