package palette

import (
	"math/rand"

	"github.com/pkg/errors"
)

const initialSetCap = 64

// ErrInvalidOptions is returned by Build for options it cannot run with.
var ErrInvalidOptions = errors.New("invalid build options")

// Outcome is the terminal state of a build.
type Outcome int

const (
	// Complete means the requested number of colors was reached.
	Complete Outcome = iota
	// BailedOut means MaxRejections consecutive candidates were rejected
	// before the set was full.
	BailedOut
)

func (o Outcome) String() string {
	switch o {
	case Complete:
		return "complete"
	case BailedOut:
		return "bailed out"
	}
	return "unknown"
}

// Options configures Build.
type Options struct {
	// Count is the number of colors wanted.
	Count int
	// Threshold is the minimum distance between any two accepted colors.
	Threshold float64
	// MaxRejections is the number of consecutive rejected candidates after
	// which Build gives up.
	MaxRejections int
	// Metric defaults to DeltaE00.
	Metric Metric
}

func (o Options) validate() error {
	switch {
	case o.Count <= 0:
		return errors.Wrapf(ErrInvalidOptions, "count must be positive, got %d", o.Count)
	case o.Threshold <= 0:
		return errors.Wrapf(ErrInvalidOptions, "threshold must be positive, got %g", o.Threshold)
	case o.MaxRejections <= 0:
		return errors.Wrapf(ErrInvalidOptions, "max rejections must be positive, got %d", o.MaxRejections)
	}
	return nil
}

// Result is the output of Build.
type Result struct {
	Colors  Set
	Outcome Outcome
	// Rejected counts every rejected candidate, not only the final run.
	Rejected int
}

// Build draws candidates from sample until opts.Count colors have been
// accepted or opts.MaxRejections consecutive candidates have been rejected.
// A candidate is accepted when it is at least opts.Threshold away from every
// color accepted so far. Each candidate is compared against the whole set, so
// a build is quadratic in opts.Count.
//
// A bailout is not an error: the result simply holds fewer colors.
func Build(opts Options, sample Sampler, rng *rand.Rand) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	if sample == nil {
		return Result{}, errors.Wrap(ErrInvalidOptions, "nil sampler")
	}
	if rng == nil {
		return Result{}, errors.Wrap(ErrInvalidOptions, "nil random source")
	}
	metric := opts.Metric
	if metric == nil {
		metric = DeltaE00
	}

	log := Logger()
	// Count may be far larger than what a bailout lets through; grow on demand.
	res := Result{Colors: make(Set, 0, min(opts.Count, initialSetCap))}
	streak := 0

	for len(res.Colors) < opts.Count {
		c := sample(rng)
		if !res.Colors.Distinct(c, opts.Threshold, metric) {
			res.Rejected++
			streak++
			log.Debug("candidate rejected", "color", c, "streak", streak)
			if streak >= opts.MaxRejections {
				res.Outcome = BailedOut
				log.Warn("bailed out",
					"accepted", len(res.Colors),
					"wanted", opts.Count,
					"rejected", res.Rejected)
				return res, nil
			}
			continue
		}
		res.Colors = append(res.Colors, c)
		streak = 0
	}

	res.Outcome = Complete
	log.Info("color set complete", "colors", len(res.Colors), "rejected", res.Rejected)
	return res, nil
}
