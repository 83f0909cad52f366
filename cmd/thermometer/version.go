package main

import (
	"github.com/spf13/cobra"

	"github.com/sweeney/oled-thermometer/internal/ui"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of thermometer",
	Run: func(cmd *cobra.Command, args []string) {
		ui.Printfln("%s", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
