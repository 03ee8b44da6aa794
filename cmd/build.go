package cmd

import (
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mmuldo/distinct/palette"
	"github.com/mmuldo/distinct/render"
	"github.com/mmuldo/distinct/theme"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// addBuildFlags registers the flags shared by every command that builds a
// color set.
func addBuildFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntP("count", "n", 20, "number of colors to generate")
	f.Float64P("threshold", "d", 10, "minimum CIEDE2000 distance between colors")
	f.Int("bailout", 100, "give up after this many consecutive rejections")
	f.Int64("seed", 0, "random seed (the clock when not given)")
	f.String("metric", "cie2000", "distance metric: cie2000 or cie76")
	f.StringP("format", "f", "terminal", "output format: "+strings.Join(render.Names(), ", "))
	f.StringP("out", "o", "", "output file (default stdout)")
	f.String("template", "", "render through this pongo2 template instead of --format")
	f.String("save", "", "save the result as a theme with this name")
}

// bindFlags binds cmd's flags to viper. It runs per command so that commands
// sharing flag names do not steal each other's bindings.
func bindFlags(cmd *cobra.Command, args []string) error {
	return viper.BindPFlags(cmd.Flags())
}

func buildOptions() (palette.Options, error) {
	metric, err := metricByName(viper.GetString("metric"))
	if err != nil {
		return palette.Options{}, err
	}
	return palette.Options{
		Count:         viper.GetInt("count"),
		Threshold:     viper.GetFloat64("threshold"),
		MaxRejections: viper.GetInt("bailout"),
		Metric:        metric,
	}, nil
}

func metricByName(name string) (palette.Metric, error) {
	switch name {
	case "cie2000", "ciede2000", "de00":
		return palette.DeltaE00, nil
	case "cie76", "de76":
		return palette.DeltaE76, nil
	}
	return nil, errors.Errorf("unknown metric %q", name)
}

// seedGiven reports whether a seed was set explicitly, so that 0 is a valid
// seed like any other.
func seedGiven(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("seed") || viper.InConfig("seed") {
		return true
	}
	_, ok := os.LookupEnv("DISTINCT_SEED")
	return ok
}

func newRand(given bool, seed int64) *rand.Rand {
	if !given {
		seed = time.Now().UnixNano()
	}
	palette.Logger().Info("seeding", "seed", seed)
	return rand.New(rand.NewSource(seed))
}

// parseRange parses "min:max".
func parseRange(s string) (palette.Range, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return palette.Range{}, errors.Errorf("range %q is not min:max", s)
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return palette.Range{}, errors.Wrapf(err, "range %q", s)
	}
	hi, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return palette.Range{}, errors.Wrapf(err, "range %q", s)
	}
	if hi < lo {
		return palette.Range{}, errors.Errorf("range %q is reversed", s)
	}
	return palette.Range{Min: lo, Max: hi}, nil
}

// run builds a color set from sample and writes it out.
func run(cmd *cobra.Command, sample palette.Sampler) error {
	opts, err := buildOptions()
	if err != nil {
		return err
	}

	res, err := palette.Build(opts, sample, newRand(seedGiven(cmd), viper.GetInt64("seed")))
	if err != nil {
		return err
	}
	if res.Outcome == palette.BailedOut {
		palette.Logger().Warn("returning fewer colors than requested",
			"got", len(res.Colors), "wanted", opts.Count)
	}

	if name := viper.GetString("save"); name != "" {
		t := theme.Create(res.Colors, nil)
		if err := t.Save(filepath.Join(viper.GetString("themes"), name)); err != nil {
			return err
		}
	}

	return write(cmd.OutOrStdout(), render.Swatches(res.Colors))
}

func write(stdout io.Writer, swatches []render.Swatch) error {
	var r render.Renderer
	if tpl := viper.GetString("template"); tpl != "" {
		r = render.Template{Path: tpl}
	} else {
		var err error
		if r, err = render.ByName(viper.GetString("format")); err != nil {
			return err
		}
	}

	out := viper.GetString("out")
	if out == "" {
		return r.Render(stdout, swatches)
	}

	f, err := os.Create(out)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	if err := r.Render(f, swatches); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
