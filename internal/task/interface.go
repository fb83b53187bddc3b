package task

import (
	"context"
)

// UseCase is the task parsing service behind the HTTP and CLI front ends.
type UseCase interface {
	// Parse runs the rule engine, cleaning speech transcripts first.
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)

	// EditTag rewrites the text behind one tag and re-parses it.
	EditTag(ctx context.Context, input EditTagInput) (ParseOutput, error)

	// Enhance parses, then asks the language model for missing details. It never
	// fails because of the model: on any model error the plain parse is returned.
	Enhance(ctx context.Context, input EnhanceInput) (EnhanceOutput, error)

	// Roster returns the active reference data.
	Roster(ctx context.Context) RosterOutput
}
