package cmd

import (
	"github.com/mmuldo/distinct/image"
	"github.com/mmuldo/distinct/palette"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create IMAGE",
	Short: "Creates a distinct color set from an image",
	Long: `Quantizes IMAGE to --colors colors and keeps the ones that are
distinct from each other, drawing from the quantized palette at random.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: bindFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		pool, err := image.Palette(args[0], viper.GetInt("colors"))
		if err != nil {
			return err
		}
		palette.Logger().Info("quantized image", "path", args[0], "colors", len(pool))

		return run(cmd, palette.FromColors(pool))
	},
}

func init() {
	rootCmd.AddCommand(createCmd)

	addBuildFlags(createCmd)
	createCmd.Flags().Int("colors", 32, "number of colors to quantize the image to")
}
