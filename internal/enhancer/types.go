package enhancer

import (
	"errors"

	"family-task-parser/internal/model"
)

var (
	ErrEmptyText = errors.New("enhancer: text is empty")
	ErrBadReply  = errors.New("enhancer: model reply is not a usable enhancement")
)

// Input is one enhancement request.
type Input struct {
	Text        string
	RecentTasks []string
	Categories  []string
}

// Enhancement is the model's guess. It is advisory: unknown names and places are
// dropped before it is returned.
type Enhancement struct {
	Members         []string         `json:"members"`
	Location        string           `json:"location,omitempty"`
	Time            *model.ClockTime `json:"time,omitempty"`
	Category        string           `json:"category,omitempty"`
	RequiresDriving bool             `json:"requiresDriving"`
	Confidence      float64          `json:"confidence"`
	Reasoning       string           `json:"reasoning,omitempty"`
}

// reply is the JSON object the prompt asks for.
type reply struct {
	Members         []string `json:"members"`
	Location        string   `json:"location"`
	Time            string   `json:"time"`
	Category        string   `json:"category"`
	RequiresDriving bool     `json:"requires_driving"`
	Confidence      float64  `json:"confidence"`
	Reasoning       string   `json:"reasoning"`
}
