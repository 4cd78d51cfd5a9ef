package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sprig",
	Short: "sprig dispatches pointer and touch input to scene graph items",
	Long: `sprig resolves raw pointer and touch input to the items of a 2D scene graph
and fires semantic hover, press, click and touch events. The CLI replays
scripted input against a scene file without opening a window.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("json", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().Bool("debug", false, "Log listener attachment and every dispatch")
}
