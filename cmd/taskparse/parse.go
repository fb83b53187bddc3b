package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"family-task-parser/internal/task"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] \"text\"",
	Short: "Parse task text",
	Long:  `Parse extracts timing, people, place, priority and recurrence from the text`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().Bool("speech", false, "treat the text as a speech transcript")
}

func runParse(cmd *cobra.Command, args []string) error {
	speech, _ := cmd.Flags().GetBool("speech")

	uc, err := newUseCase(cmd)
	if err != nil {
		return err
	}

	in := task.ParseInput{Text: strings.Join(args, " "), Source: task.SourceTyped}
	if speech {
		in.Source = task.SourceSpeech
	}
	out, err := uc.Parse(cmd.Context(), in)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	if len(out.Corrections) > 0 {
		return printJSON(cmd, cmd.OutOrStdout(), out)
	}
	return printJSON(cmd, cmd.OutOrStdout(), out.Task)
}
