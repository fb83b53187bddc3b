package usecase

import (
	"context"

	"family-task-parser/internal/enhancer"
	"family-task-parser/internal/parser"
	"family-task-parser/internal/task"
)

func (uc *implUseCase) Enhance(ctx context.Context, input task.EnhanceInput) (task.EnhanceOutput, error) {
	if err := checkText(input.Text); err != nil {
		return task.EnhanceOutput{}, err
	}

	base := uc.parse(input.Text)
	out := task.EnhanceOutput{Task: base}
	if uc.enhancer == nil {
		return out, nil
	}

	if uc.enhanceTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.enhanceTimeout)
		defer cancel()
	}

	recent := input.RecentTasks
	if uc.maxRecent > 0 && len(recent) > uc.maxRecent {
		recent = recent[len(recent)-uc.maxRecent:]
	}

	enh, err := uc.enhancer.Enhance(ctx, enhancer.Input{
		Text:        input.Text,
		RecentTasks: recent,
		Categories:  input.Categories,
	})
	if err != nil {
		uc.l.Warnf(ctx, "task.usecase.Enhance: falling back to rule-based parse: %v", err)
		return out, nil
	}

	out.Task = uc.engine.Augment(base, parser.Hints{
		Members:  enh.Members,
		Location: enh.Location,
		Time:     enh.Time,
	})
	out.Enhancement = &enh
	out.Enhanced = true
	return out, nil
}
