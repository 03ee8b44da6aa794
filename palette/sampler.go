package palette

import (
	"math"
	"math/rand"

	"github.com/mmuldo/distinct/colorspace"
)

// Sampler draws one candidate color per call. All randomness must come from
// rng so that a seeded generator reproduces the same sequence.
type Sampler func(rng *rand.Rand) colorspace.Lab

// Range is a closed-open interval of floats.
type Range struct {
	Min, Max float64
}

// Draw returns a uniform value in [Min, Max).
func (r Range) Draw(rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Full ranges of the Lab and HSL components.
var (
	LabL = Range{0, 100}
	LabA = Range{-100, 100}
	LabB = Range{-100, 100}

	Hue        = Range{0, 360}
	Saturation = Range{0, 100}
	Lightness  = Range{0, 100}
)

// Pastel is the light, low-saturation HSL region.
var Pastel = struct{ H, S, L Range }{
	H: Range{0, 360},
	S: Range{25, 45},
	L: Range{85, 95},
}

// LabUniform draws integer Lab components uniformly from the given ranges.
func LabUniform(l, a, b Range) Sampler {
	return func(rng *rand.Rand) colorspace.Lab {
		return colorspace.Lab{
			L: math.Round(l.Draw(rng)),
			A: math.Round(a.Draw(rng)),
			B: math.Round(b.Draw(rng)),
		}
	}
}

// HSLUniform draws HSL colors uniformly from the given ranges and converts
// them to Lab.
func HSLUniform(h, s, l Range) Sampler {
	return func(rng *rand.Rand) colorspace.Lab {
		return colorspace.HSLToLab(colorspace.HSL{
			H: h.Draw(rng),
			S: s.Draw(rng),
			L: l.Draw(rng),
		})
	}
}

// FromColors picks uniformly from a fixed pool of sRGB colors. It returns nil
// for an empty pool.
func FromColors(pool []colorspace.RGB) Sampler {
	if len(pool) == 0 {
		return nil
	}
	labs := make([]colorspace.Lab, len(pool))
	for i, c := range pool {
		labs[i] = RGB2Lab(c)
	}
	return func(rng *rand.Rand) colorspace.Lab {
		return labs[rng.Intn(len(labs))]
	}
}

// Sequence returns the given colors in order, cycling when exhausted. It
// ignores rng. It returns nil for an empty sequence.
func Sequence(labs ...colorspace.Lab) Sampler {
	if len(labs) == 0 {
		return nil
	}
	i := 0
	return func(*rand.Rand) colorspace.Lab {
		c := labs[i%len(labs)]
		i++
		return c
	}
}
