package task

import (
	"family-task-parser/internal/enhancer"
	"family-task-parser/internal/model"
	"family-task-parser/internal/transcript"
)

// MaxTextLength bounds input text, in runes.
const MaxTextLength = 500

// Source says where the text came from.
type Source string

const (
	SourceTyped  Source = "typed"
	SourceSpeech Source = "speech"
)

func (s Source) Valid() bool {
	return s == "" || s == SourceTyped || s == SourceSpeech
}

type ParseInput struct {
	Text   string
	Source Source
}

type ParseOutput struct {
	Task model.ParsedTask
	// Corrections lists transcript fixes applied before parsing.
	Corrections []transcript.Correction
}

type EditTagInput struct {
	Text  string
	TagID int
	Value model.Value
}

type EnhanceInput struct {
	Text        string
	RecentTasks []string
	Categories  []string
}

type EnhanceOutput struct {
	Task        model.ParsedTask
	Enhancement *enhancer.Enhancement
	// Enhanced is set when the model answered, even if it added nothing.
	Enhanced bool
}

type RosterOutput struct {
	Roster  model.Roster
	Version string
}
