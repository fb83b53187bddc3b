package enhancer

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"family-task-parser/internal/model"
	"family-task-parser/pkg/llmprovider"
	"family-task-parser/pkg/log"
)

type implEnhancer struct {
	l      log.Logger
	gen    Generator
	roster model.Roster
}

func (e *implEnhancer) Enhance(ctx context.Context, in Input) (Enhancement, error) {
	if strings.TrimSpace(in.Text) == "" {
		return Enhancement{}, ErrEmptyText
	}

	resp, err := e.gen.GenerateContent(ctx, &llmprovider.Request{
		System:      systemPrompt,
		Prompt:      buildPrompt(in, e.roster),
		Temperature: 0.1,
		JSON:        true,
	})
	if err != nil {
		return Enhancement{}, fmt.Errorf("enhancer: generate: %w", err)
	}

	cleaned := sanitizeJSONResponse(resp.Text)
	var r reply
	if err := json.Unmarshal([]byte(cleaned), &r); err != nil {
		e.l.Debugf(ctx, "enhancer.Enhance: unparseable reply raw=%q cleaned=%q", resp.Text, cleaned)
		return Enhancement{}, fmt.Errorf("%w: %v", ErrBadReply, err)
	}
	return e.validate(r, in.Categories), nil
}

// validate keeps only what refers to the roster and known categories.
func (e *implEnhancer) validate(r reply, categories []string) Enhancement {
	out := Enhancement{
		Members:         []string{},
		RequiresDriving: r.RequiresDriving,
		Confidence:      min(max(r.Confidence, 0), 1),
		Reasoning:       strings.TrimSpace(r.Reasoning),
	}

	for _, name := range r.Members {
		if _, ok := e.roster.Member(name); ok && !slices.Contains(out.Members, name) {
			out.Members = append(out.Members, name)
		}
	}
	if _, ok := e.roster.Place(r.Location); ok {
		out.Location = r.Location
	}
	if t, err := time.Parse("15:04", strings.TrimSpace(r.Time)); err == nil {
		out.Time = &model.ClockTime{Hour: t.Hour(), Minute: t.Minute()}
	}
	if len(categories) == 0 || slices.Contains(categories, r.Category) {
		out.Category = r.Category
	}
	return out
}

var codeFence = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	if m := codeFence.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}

	start := strings.IndexByte(text, '{')
	if start == -1 {
		return text
	}
	end := strings.LastIndexByte(text, '}')
	if end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}
