package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go3dview/internal/app"
	"go3dview/internal/config"
	"go3dview/version"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "go3dview <file>",
	Short: "An interactive OBJ model viewer with transform editing",
	Long: `go3dview is a desktop viewer for Wavefront OBJ files. Models can be
moved, rotated and scaled interactively; committed transforms persist
across sessions and the watched file reloads automatically on change.`,
	Version: version.GetVersion(),
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		return app.Run(cfg, args[0])
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file")
	rootCmd.SilenceUsage = true
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
