package image

import (
	"image"
	"sort"

	"github.com/esimov/colorquant"
	"github.com/mmuldo/distinct/colorspace"
	"github.com/pkg/errors"
)

// ColorCount is a color and the number of sampled pixels that have it.
type ColorCount struct {
	Color colorspace.RGB
	Count int
}

type ColorCountList []ColorCount

func (ccl ColorCountList) Len() int { return len(ccl) }
func (ccl ColorCountList) Less(i, j int) bool {
	if ccl[i].Count != ccl[j].Count {
		return ccl[i].Count > ccl[j].Count
	}
	return ccl[i].Color.Hex() < ccl[j].Color.Hex()
}
func (ccl ColorCountList) Swap(i, j int) { ccl[i], ccl[j] = ccl[j], ccl[i] }

// Colors returns the opaque colors of img and how many times each occurs,
// sampling every step-th pixel in both directions.
func Colors(img image.Image, step int) map[colorspace.RGB]int {
	if step < 1 {
		step = 1
	}
	m := make(map[colorspace.RGB]int)

	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x += step {
		for y := b.Min.Y; y < b.Max.Y; y += step {
			c := img.At(x, y)
			if _, _, _, a := c.RGBA(); a != 0 {
				m[colorspace.FromColor(c)]++
			}
		}
	}

	return m
}

// Rank sorts colors by frequency, most common first.
func Rank(m map[colorspace.RGB]int) ColorCountList {
	cc := make(ColorCountList, 0, len(m))
	for k, v := range m {
		cc = append(cc, ColorCount{k, v})
	}

	sort.Sort(cc)
	return cc
}

// Quantize reduces img to at most n colors using median cut, without dithering.
func Quantize(img image.Image, n int) image.Image {
	b := img.Bounds()
	o := image.NewNRGBA(image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y))
	colorquant.NoDither.Quantize(img, o, n, false, true)
	return o
}

// Palette loads the image at path, quantizes it to n colors and returns them
// most common first.
func Palette(path string, n int) ([]colorspace.RGB, error) {
	if n < 1 {
		return nil, errors.Errorf("palette size must be positive, got %d", n)
	}
	img, err := Load(path)
	if err != nil {
		return nil, err
	}

	ranked := Rank(Colors(Quantize(img, n), 5))
	if len(ranked) == 0 {
		return nil, errors.Errorf("image at %s has no opaque pixels", path)
	}

	out := make([]colorspace.RGB, len(ranked))
	for i, cc := range ranked {
		out[i] = cc.Color
	}
	return out, nil
}
