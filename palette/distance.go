package palette

import (
	"math"

	"github.com/mmuldo/distinct/colorspace"
)

// Metric measures the perceptual distance between two Lab colors.
type Metric func(a, b colorspace.Lab) float64

// pow25to7 is 25^7, used by the chroma compensation terms.
const pow25to7 = 6103515625.0

// DeltaE00 returns the CIEDE2000 color difference between a and b with unit
// weighting factors (kL = kC = kH = 1). It is symmetric and zero only for
// identical colors.
//
// See http://www.brucelindbloom.com/index.html?Eqn_DeltaE_CIE2000.html
func DeltaE00(a, b colorspace.Lab) float64 {
	avgL := (a.L + b.L) / 2
	c1 := math.Hypot(a.A, a.B)
	c2 := math.Hypot(b.A, b.B)
	avgC := (c1 + c2) / 2

	g := (1 - math.Sqrt(pow7(avgC)/(pow7(avgC)+pow25to7))) / 2
	a1p := a.A * (1 + g)
	a2p := b.A * (1 + g)

	c1p := math.Hypot(a1p, a.B)
	c2p := math.Hypot(a2p, b.B)
	avgCp := (c1p + c2p) / 2

	h1p := hueAngle(a.B, a1p)
	h2p := hueAngle(b.B, a2p)

	avgHp := (h1p + h2p) / 2
	if math.Abs(h1p-h2p) > 180 {
		avgHp += 180
	}

	t := 1 -
		0.17*math.Cos(radians(avgHp-30)) +
		0.24*math.Cos(radians(2*avgHp)) +
		0.32*math.Cos(radians(3*avgHp+6)) -
		0.20*math.Cos(radians(4*avgHp-63))

	dhp := h2p - h1p
	if math.Abs(dhp) > 180 {
		if h2p <= h1p {
			dhp += 360
		} else {
			dhp -= 360
		}
	}

	dLp := b.L - a.L
	dCp := c2p - c1p
	dHp := 2 * math.Sqrt(c1p*c2p) * math.Sin(radians(dhp)/2)

	sl := 1 + (0.015*sq(avgL-50))/math.Sqrt(20+sq(avgL-50))
	sc := 1 + 0.045*avgCp
	sh := 1 + 0.015*avgCp*t

	dRo := 30 * math.Exp(-sq((avgHp-275)/25))
	rc := 2 * math.Sqrt(pow7(avgCp)/(pow7(avgCp)+pow25to7))
	rt := -rc * math.Sin(2*radians(dRo))

	const kl, kc, kh = 1, 1, 1
	l := dLp / (kl * sl)
	c := dCp / (kc * sc)
	h := dHp / (kh * sh)

	return math.Sqrt(l*l + c*c + h*h + rt*c*h)
}

// DeltaE76 returns the Euclidean distance between a and b in Lab space.
func DeltaE76(a, b colorspace.Lab) float64 {
	return math.Sqrt(sq(a.L-b.L) + sq(a.A-b.A) + sq(a.B-b.B))
}

// hueAngle returns atan2(y, x) in degrees, in [0,360).
func hueAngle(y, x float64) float64 {
	h := degrees(math.Atan2(y, x))
	if h < 0 {
		h += 360
	}
	return h
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
func degrees(rad float64) float64 { return rad * 180 / math.Pi }

func sq(v float64) float64 { return v * v }

func pow7(v float64) float64 {
	v2 := v * v
	return v2 * v2 * v2 * v
}
