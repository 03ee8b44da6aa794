package cmd

import (
	"github.com/mmuldo/distinct/palette"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generates distinct colors from random Lab or HSL samples",
	Long: `Generates distinct colors from random samples.

With --sampler lab, candidates are drawn uniformly from the whole Lab space.
With --sampler hsl, candidates are drawn from the --hue, --sat and --light
ranges. --sampler pastel is shorthand for --sat 25:45 --light 85:95:

  distinct generate --sampler pastel -n 50 -d 3`,
	Args:    cobra.NoArgs,
	PreRunE: bindFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		sample, err := sampler()
		if err != nil {
			return err
		}
		return run(cmd, sample)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	addBuildFlags(generateCmd)
	generateCmd.Flags().StringP("sampler", "s", "lab", "candidate distribution: lab, hsl or pastel")
	generateCmd.Flags().String("hue", "0:360", "hsl sampler hue range")
	generateCmd.Flags().String("sat", "0:100", "hsl sampler saturation range")
	generateCmd.Flags().String("light", "0:100", "hsl sampler lightness range")
}

func sampler() (palette.Sampler, error) {
	switch name := viper.GetString("sampler"); name {
	case "lab":
		return palette.LabUniform(palette.LabL, palette.LabA, palette.LabB), nil
	case "pastel":
		return palette.HSLUniform(palette.Pastel.H, palette.Pastel.S, palette.Pastel.L), nil
	case "hsl":
		var rs [3]palette.Range
		for i, key := range []string{"hue", "sat", "light"} {
			r, err := parseRange(viper.GetString(key))
			if err != nil {
				return nil, errors.Wrap(err, key)
			}
			rs[i] = r
		}
		return palette.HSLUniform(rs[0], rs[1], rs[2]), nil
	default:
		return nil, errors.Errorf("unknown sampler %q", name)
	}
}
