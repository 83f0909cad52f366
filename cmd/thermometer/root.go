package main

import (
	"github.com/spf13/cobra"

	"github.com/sweeney/oled-thermometer/internal/config"
	"github.com/sweeney/oled-thermometer/internal/ui"
)

var (
	cfgFile    string
	verbose    bool
	noColor    bool
	noStyle    bool
	printState bool
	summary    bool
)

var rootCmd = &cobra.Command{
	Use:   "thermometer",
	Short: "Two-button thermometer on an OLED display",
	Long: `thermometer reads an up and a down button and shows a temperature
between a lower and an upper limit on an SSD1306 OLED display.

Use --simulate with a button script (e.g. "uuud") to run without hardware.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		setupUi()

		v, err := config.NewViper(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}
		cfg, err := config.Load(v)
		if err != nil {
			return err
		}
		if f := v.ConfigFileUsed(); f != "" {
			ui.Debug("using config file: %s", f)
		}
		return run(cfg, printState, summary)
	},
}

func setupUi() {
	ui.SetDebugEnabled(verbose)
	if noColor {
		ui.DisableColor()
	}
	if noStyle {
		ui.DisableStyling()
	}
}

// Execute runs the root command and exits with status 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.Fatal("%v", err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is thermometer.yaml in ., $HOME or /etc/thermometer)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "More verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable all terminal output coloration")
	rootCmd.PersistentFlags().BoolVar(&noStyle, "no-style", false, "Disable all terminal output styling")

	rootCmd.Flags().BoolVar(&printState, "print-state", false, "Print current button levels and exit")
	rootCmd.Flags().BoolVar(&summary, "summary", false, "Print a table and plot of the session on exit")
	config.RegisterFlags(rootCmd.Flags())
}
