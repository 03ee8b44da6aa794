package colorspace

import (
	"fmt"
	"math"
)

// HSL is a presentation color. H is in degrees and wraps; S and L are
// percentages in [0,100].
type HSL struct {
	H, S, L float64
}

// String formats the color as a CSS hsl() value.
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%.1f, %g%%, %g%%)", c.H, c.S, c.L)
}

// RGBToHSL converts an sRGB color to HSL. The hue is normalized into [0,360);
// saturation and lightness are rounded to one decimal place.
func RGBToHSL(c RGB) HSL {
	r, g, b := float64(c.R)/255, float64(c.G)/255, float64(c.B)/255
	cmax := math.Max(r, math.Max(g, b))
	cmin := math.Min(r, math.Min(g, b))
	delta := cmax - cmin

	var h float64
	switch {
	case delta == 0:
		h = 0
	case cmax == r:
		h = math.Mod((g-b)/delta, 6)
	case cmax == g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}

	l := (cmax + cmin) / 2
	var s float64
	if delta != 0 {
		s = delta / (1 - math.Abs(2*l-1))
	}

	return HSL{
		H: normalizeHue(h * 60),
		S: round1(s * 100),
		L: round1(l * 100),
	}
}

// HSLToRGB converts an HSL color to sRGB. The hue is wrapped and S and L are
// clamped to [0,100] before conversion.
func HSLToRGB(c HSL) RGB {
	h := normalizeHue(c.H)
	s := clampUnit(c.S / 100)
	l := clampUnit(c.L / 100)

	chroma := (1 - math.Abs(2*l-1)) * s
	hp := h / 60
	x := chroma * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = chroma, x, 0
	case hp < 2:
		r, g, b = x, chroma, 0
	case hp < 3:
		r, g, b = 0, chroma, x
	case hp < 4:
		r, g, b = 0, x, chroma
	case hp < 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	m := l - chroma/2
	return RGB{
		R: clamp8((r + m) * 255),
		G: clamp8((g + m) * 255),
		B: clamp8((b + m) * 255),
	}
}

func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// math.Mod(-1e-18, 360)+360 rounds to 360.
	if h >= 360 {
		h = 0
	}
	return unsigned(h)
}

func round1(v float64) float64 {
	return unsigned(math.Round(v*10) / 10)
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
