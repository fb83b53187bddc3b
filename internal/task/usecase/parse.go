package usecase

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"family-task-parser/internal/model"
	"family-task-parser/internal/parser"
	"family-task-parser/internal/task"
	"family-task-parser/internal/transcript"
)

func (uc *implUseCase) Parse(ctx context.Context, input task.ParseInput) (task.ParseOutput, error) {
	if err := checkText(input.Text); err != nil {
		return task.ParseOutput{}, err
	}
	if !input.Source.Valid() {
		return task.ParseOutput{}, task.ErrInvalidSource
	}

	text, fixes := input.Text, []transcript.Correction{}
	if input.Source == task.SourceSpeech {
		text, fixes = uc.corrector.Correct(text)
		if len(fixes) > 0 {
			uc.l.Debugf(ctx, "task.usecase.Parse: %d transcript correction(s)", len(fixes))
		}
	}

	return task.ParseOutput{Task: uc.parse(text), Corrections: fixes}, nil
}

func (uc *implUseCase) EditTag(ctx context.Context, input task.EditTagInput) (task.ParseOutput, error) {
	if err := checkText(input.Text); err != nil {
		return task.ParseOutput{}, err
	}

	edited, err := uc.engine.EditTag(uc.parse(input.Text), input.TagID, input.Value)
	switch {
	case errors.Is(err, parser.ErrTagNotFound):
		return task.ParseOutput{}, fmt.Errorf("%w: %d", task.ErrTagNotFound, input.TagID)
	case errors.Is(err, parser.ErrInvalidTagValue):
		return task.ParseOutput{}, fmt.Errorf("%w: %v", task.ErrInvalidValue, err)
	case err != nil:
		return task.ParseOutput{}, err
	}

	if uc.cache != nil {
		uc.cache.Add(uc.key(edited.RawText), edited)
	}
	return task.ParseOutput{Task: edited, Corrections: []transcript.Correction{}}, nil
}

func (uc *implUseCase) Roster(ctx context.Context) task.RosterOutput {
	return task.RosterOutput{Roster: uc.snapshot.Roster, Version: uc.snapshot.Version}
}

// parse memoises the engine per roster version and calendar day.
func (uc *implUseCase) parse(text string) model.ParsedTask {
	if uc.cache == nil {
		return uc.engine.Parse(text)
	}
	key := uc.key(text)
	if t, ok := uc.cache.Get(key); ok {
		return t
	}
	t := uc.engine.Parse(text)
	uc.cache.Add(key, t)
	return t
}

func (uc *implUseCase) key(text string) cacheKey {
	return cacheKey{
		version: uc.snapshot.Version,
		date:    model.NewDate(uc.now().In(uc.loc)).String(),
		text:    text,
	}
}

func checkText(text string) error {
	if utf8.RuneCountInString(text) > task.MaxTextLength {
		return task.ErrTextTooLong
	}
	return nil
}
