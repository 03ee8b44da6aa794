package palette

import (
	"math"
	"math/rand"

	"github.com/jkl1337/go-chromath"
	"github.com/mmuldo/distinct/colorspace"
)

var (
	rgb2Xyz = chromath.NewRGBTransformer(
		&chromath.SpaceSRGB,
		&chromath.AdaptationBradford,
		&chromath.IlluminantRefD65,
		&chromath.Scaler8bClamping,
		1.0,
		nil,
	)
	lab2Xyz = chromath.NewLabTransformer(&chromath.IlluminantRefD65)
)

// RGB2Lab converts an 8-bit sRGB color to Lab through the chromath
// transformers. chromath's D65 white differs slightly from colorspace.D65, so
// the result matches colorspace.RGBToLab only up to 8-bit rounding.
func RGB2Lab(c colorspace.RGB) colorspace.Lab {
	xyz := rgb2Xyz.Convert(chromath.RGB{float64(c.R), float64(c.G), float64(c.B)})
	lab := lab2Xyz.Invert(xyz)
	return colorspace.Lab{L: lab.L(), A: lab.A(), B: lab.B()}
}

// Set is an ordered sequence of accepted colors.
type Set []colorspace.Lab

// MinDistance returns the smallest pairwise distance in s under m, or +Inf
// when s has fewer than two colors.
func (s Set) MinDistance(m Metric) float64 {
	lowest := math.Inf(1)
	for i := range s {
		for j := i + 1; j < len(s); j++ {
			if d := m(s[i], s[j]); d < lowest {
				lowest = d
			}
		}
	}
	return lowest
}

// Distinct reports whether c is at least threshold away from every color in s.
func (s Set) Distinct(c colorspace.Lab, threshold float64, m Metric) bool {
	for _, o := range s {
		if m(c, o) < threshold {
			return false
		}
	}
	return true
}

// BuildDistinctColorSet samples the full Lab range and returns up to count
// colors that are pairwise at least threshold apart under CIEDE2000. Fewer
// colors are returned when maxRejections consecutive candidates are rejected.
// Invalid arguments yield an empty set.
func BuildDistinctColorSet(count int, threshold float64, maxRejections int, rng *rand.Rand) Set {
	res, err := Build(Options{
		Count:         count,
		Threshold:     threshold,
		MaxRejections: maxRejections,
	}, LabUniform(LabL, LabA, LabB), rng)
	if err != nil {
		Logger().Warn("distinct color set not built", "err", err)
		return Set{}
	}
	return res.Colors
}
