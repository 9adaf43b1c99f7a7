package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/quanta/cmd/quanta/commands"
	"github.com/teranos/quanta/logger"
)

var rootCmd = &cobra.Command{
	Use:   "quanta",
	Short: "quanta - Extract structured values from natural-language text",
	Long: `quanta - Structured-value extraction for natural-language text.

quanta scans text for numbers, ordinals, dates and times, durations,
measured quantities, currency amounts, and identifiers (emails, URLs, phone
numbers), and reports each as a typed value with its source span.

Available commands:
  parse   - Parse text and print resolved spans
  locales - List available locales and their dimensions
  version - Show version information

Examples:
  quanta parse "meet me tomorrow at 6pm"
  quanta parse --dims time,numeral "in 30 minutes"
  quanta parse --locale en-GB --json "thirty-three degrees"
  quanta locales`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		if err := logger.InitializeWithVerbosity(jsonOutput, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output machine-readable JSON")

	rootCmd.AddCommand(commands.ParseCmd)
	rootCmd.AddCommand(commands.LocalesCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
