/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"io"
	"os"
	"path"

	"github.com/mmuldo/distinct/render"
	"github.com/mmuldo/distinct/theme"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// switchCmd represents the switch command
var switchCmd = &cobra.Command{
	Use:   "switch THEME",
	Short: "Renders a saved theme through a template",
	Long: `Loads THEME from the themes directory (saved earlier with --save)
and renders --template with it, writing the result to --dest.

  distinct generate -n 16 --save mine
  distinct switch mine --template templates/termite --dest ~/.config/termite/config`,
	Args:    cobra.ExactArgs(1),
	PreRunE: bindFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		return template(cmd.OutOrStdout(), viper.GetString("template"), args[0], viper.GetString("dest"))
	},
}

func init() {
	rootCmd.AddCommand(switchCmd)

	switchCmd.Flags().StringP("template", "t", "", "pongo2 template to render")
	switchCmd.Flags().String("dest", "", "file to write (default stdout)")
	switchCmd.MarkFlagRequired("template")
}

func template(stdout io.Writer, filepath string, name string, dest string) error {
	t, e := theme.Load(path.Join(viper.GetString("themes"), name))
	if e != nil {
		return e
	}

	if dest == "" {
		return render.ExecuteTheme(stdout, filepath, t)
	}

	f, e := os.Create(dest)
	if e != nil {
		return errors.Wrap(e, "create destination")
	}
	if e = render.ExecuteTheme(f, filepath, t); e != nil {
		f.Close()
		return e
	}

	return f.Close()
}
