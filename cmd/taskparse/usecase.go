package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"family-task-parser/internal/roster"
	"family-task-parser/internal/task"
	"family-task-parser/internal/task/usecase"
	"family-task-parser/internal/transcript"
	"family-task-parser/pkg/datemath"
	"family-task-parser/pkg/log"
)

// newUseCase builds the task use case from the persistent flags.
func newUseCase(cmd *cobra.Command) (task.UseCase, error) {
	flags := cmd.Root().PersistentFlags()
	rosterPath, _ := flags.GetString("roster")
	nowFlag, _ := flags.GetString("now")
	tz, _ := flags.GetString("tz")

	loc := time.Local
	if tz != "" {
		dates, err := datemath.NewParser(tz)
		if err != nil {
			return nil, fmt.Errorf("--tz: %w", err)
		}
		loc = dates.Location()
	}

	now := time.Now
	if nowFlag != "" {
		t, err := time.Parse(time.RFC3339, nowFlag)
		if err != nil {
			return nil, fmt.Errorf("--now: %w", err)
		}
		now = func() time.Time { return t }
	}

	snap, err := roster.Load(rosterPath)
	if err != nil {
		return nil, err
	}

	return usecase.New(log.NewNop(), usecase.Config{
		Roster:    snap,
		Location:  loc,
		Now:       now,
		Corrector: transcript.New(nil),
	}), nil
}

func printJSON(cmd *cobra.Command, w io.Writer, v any) error {
	compact, _ := cmd.Root().PersistentFlags().GetBool("compact")
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if !compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
