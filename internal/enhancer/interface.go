// Package enhancer asks a language model for task details the rule engine missed.
package enhancer

import (
	"context"

	"family-task-parser/internal/model"
	"family-task-parser/pkg/llmprovider"
	"family-task-parser/pkg/log"
)

// Enhancer infers members, place, time and category from free text.
type Enhancer interface {
	Enhance(ctx context.Context, in Input) (Enhancement, error)
}

// Generator is the slice of llmprovider.Manager the enhancer uses.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// New returns an Enhancer that prompts gen with the roster's names and places.
func New(l log.Logger, gen Generator, roster model.Roster) Enhancer {
	return &implEnhancer{l: l, gen: gen, roster: roster}
}
