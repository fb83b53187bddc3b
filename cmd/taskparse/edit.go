package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"family-task-parser/internal/model"
	"family-task-parser/internal/task"
)

var editCmd = &cobra.Command{
	Use:   "edit --tag N --value JSON \"text\"",
	Short: "Change one tag and print the re-parsed task",
	Long: `Edit parses the text, rewrites the words behind tag N so they carry the new value,
and parses again. The value is JSON shaped by the tag type, for example '"P2"',
'{"hour":9,"minute":30}' or '[1,3]'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().Int("tag", 0, "id of the tag to change")
	editCmd.Flags().String("value", "", "new value as JSON")
	_ = editCmd.MarkFlagRequired("tag")
	_ = editCmd.MarkFlagRequired("value")
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetInt("tag")
	raw, _ := cmd.Flags().GetString("value")
	text := strings.Join(args, " ")

	uc, err := newUseCase(cmd)
	if err != nil {
		return err
	}

	before, err := uc.Parse(cmd.Context(), task.ParseInput{Text: text})
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	tag, ok := before.Task.Tag(id)
	if !ok {
		return fmt.Errorf("%w: %d", task.ErrTagNotFound, id)
	}
	if !json.Valid([]byte(raw)) {
		return errors.New("--value is not valid JSON")
	}
	value, err := model.DecodeTagValue(tag.Type, json.RawMessage(raw))
	if err != nil {
		return err
	}

	out, err := uc.EditTag(cmd.Context(), task.EditTagInput{Text: text, TagID: id, Value: value})
	if err != nil {
		return fmt.Errorf("edit: %w", err)
	}
	return printJSON(cmd, cmd.OutOrStdout(), out.Task)
}
