package cmd

import (
	"fmt"
	"os"

	"github.com/mordilloSan/go-logger/logger"
	"github.com/spf13/cobra"

	"github.com/mvidal/launchbox/internal/output"
	"github.com/mvidal/launchbox/internal/version"
)

var rootCmd = &cobra.Command{
	Use:          "launchbox",
	Short:        "Organize and launch desktop applications",
	Long:         "A launcher core for Linux desktops: discovers installed applications from .desktop entries, keeps them organized in a persisted category config, and launches them as detached processes.",
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("config", "", "Config file path (default: ~/.local/share/launchbox/config.json)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
		var levels []logger.Level
		if verbose {
			levels = logger.AllLevels()
		} else {
			levels = []logger.Level{logger.InfoLevel, logger.WarnLevel, logger.ErrorLevel}
		}
		logger.Init(logger.Config{Levels: levels})

		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}

		pretty, _ := rootCmd.PersistentFlags().GetBool("pretty")
		output.PrettyOutput = pretty
		return nil
	}
}
