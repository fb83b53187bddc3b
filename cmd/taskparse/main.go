package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "taskparse",
	Short:        "Parse and edit family tasks from the command line",
	Long:         `taskparse runs the Hebrew/English task parser locally and prints the result as JSON`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(editCmd)

	rootCmd.PersistentFlags().String("roster", "", "roster YAML file (empty for none)")
	rootCmd.PersistentFlags().String("now", "", "reference time, RFC3339 (default: current time)")
	rootCmd.PersistentFlags().String("tz", "", "IANA time zone for relative dates (default: local)")
	rootCmd.PersistentFlags().Bool("compact", false, "print single-line JSON")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
