package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/slidejet/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "slidejet",
	Short: "Serve slide decks as a single-slide web viewer",
	Long: `SlideJet Present Hub discovers *_SJconfig.yaml deck configurations,
loads each deck's slide_data.json manifest and serves a web viewer with a
deck picker, a slide selector, speaker notes and shareable deep links.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
