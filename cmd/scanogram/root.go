package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/andaru/scanogram/config"
)

var (
	// Global flags
	cfgFile string
	format  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "scanogram",
	Short: "Load and summarize 3D scan project files",
	Long: `scanogram reads *.scan.xml project files describing recorded 3D scans.

Commands:
  scanogram iterate [dir]      # Summarize every scan below a directory
  scanogram validate FILE...   # Check project files and print error traces
  scanogram enums              # List the accepted enumeration values

Settings are read from scanogram.yaml when present and may be overridden
with SCANOGRAM_* environment variables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// glog reads its flags from the standard flag set
		return flag.CommandLine.Parse(nil)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().StringVar(&format, "format", "", "output format: text or json (overrides the config)")
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
}

// loadConfig loads the config file, falling back to defaults, and
// applies the command line overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadWithFallback(cfgFile)
	if err != nil {
		return nil, err
	}
	switch format {
	case "":
	case config.FormatText, config.FormatJSON:
		cfg.Output.Format = format
	default:
		return nil, errors.Errorf("--format must be 'text' or 'json', got %q", format)
	}
	return cfg, nil
}
