/*
Package cmd provides the CLI commands for Tripcheck.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tripcheck/tripcheck/internal/config"
)

var (
	cfgFile string
	verbose bool
	debug   bool
	dataDir string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tripcheck",
	Short: "An offline trip-packing checklist",
	Long: `Tripcheck keeps packing checklists for your trips, tracks packing
progress, and awards achievements along the way. Everything is stored
locally; no account, no network.

Example:
  tripcheck trip add "Paris" --icon airplane   # Create a checklist
  tripcheck item add Paris "Passport"          # Add an item
  tripcheck item check Paris Passport          # Tick it off
  tripcheck trip list                          # Show progress`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ~/.tripcheck.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory for snapshots")

	// Add subcommands
	rootCmd.AddCommand(tripCmd)
	rootCmd.AddCommand(itemCmd)
	rootCmd.AddCommand(categoryCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(presetCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if debug {
		log.SetLevel(log.DebugLevel)
	} else if verbose {
		log.SetLevel(log.InfoLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	if cfgFile != "" {
		// Use config file from the flag
		if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Config file not found: %s\n", cfgFile)
			os.Exit(1)
		}
	}
}

// levelFromConfig applies a config-file log level unless a flag already
// raised verbosity
func levelFromConfig(cfg *config.Config) {
	if debug || verbose || cfg.LogLevel == "" {
		return
	}
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
}
