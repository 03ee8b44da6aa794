/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/mmuldo/distinct/palette"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "distinct",
	Short: "Generates sets of perceptually distinct colors",
	Long: `distinct draws random colors and keeps only those that are at least
a given CIEDE2000 distance from every color kept so far.

Colors can be drawn from the whole Lab space, from an HSL region, or from
the palette of an image, and written to the terminal, an HTML page, a PNG
or a theme template.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose || viper.GetBool("verbose") {
			level = slog.LevelDebug
		}
		palette.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.distinct.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every rejected candidate")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	home, err := homedir.Dir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	viper.SetDefault("count", 20)
	viper.SetDefault("threshold", 10.0)
	viper.SetDefault("bailout", 100)
	viper.SetDefault("sampler", "lab")
	viper.SetDefault("metric", "cie2000")
	viper.SetDefault("format", "terminal")
	viper.SetDefault("themes", filepath.Join(home, ".config", "distinct", "themes"))

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search config in home directory with name ".distinct" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".distinct")
	}

	viper.SetEnvPrefix("distinct")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		palette.Logger().Debug("using config file", "path", viper.ConfigFileUsed())
	}
}
