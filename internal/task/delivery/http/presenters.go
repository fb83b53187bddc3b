package http

import (
	"encoding/json"
	"strings"

	"family-task-parser/internal/enhancer"
	"family-task-parser/internal/model"
	"family-task-parser/internal/task"
	"family-task-parser/internal/transcript"
)

// --- Request DTOs ---

type parseReq struct {
	Text   string `json:"text"`
	Source string `json:"source" enums:"typed,speech"`
}

func (r parseReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errTextRequired
	}
	return nil
}

func (r parseReq) toInput() task.ParseInput {
	return task.ParseInput{Text: r.Text, Source: task.Source(r.Source)}
}

// ---

type editTagReq struct {
	Text  string          `json:"text"`
	TagID int             `json:"tagId"`
	Value json.RawMessage `json:"value" swaggertype:"object"`
}

func (r editTagReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errTextRequired
	}
	if r.TagID <= 0 {
		return errTagRequired
	}
	return nil
}

func (r editTagReq) toInput(v model.Value) task.EditTagInput {
	return task.EditTagInput{Text: r.Text, TagID: r.TagID, Value: v}
}

// ---

type enhanceReq struct {
	Text        string   `json:"text"`
	RecentTasks []string `json:"recentTasks"`
	Categories  []string `json:"categories"`
}

func (r enhanceReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errTextRequired
	}
	return nil
}

func (r enhanceReq) toInput() task.EnhanceInput {
	return task.EnhanceInput{Text: r.Text, RecentTasks: r.RecentTasks, Categories: r.Categories}
}

// --- Response DTOs ---

type parseResp struct {
	Task        model.ParsedTask        `json:"task"`
	Corrections []transcript.Correction `json:"corrections"`
}

func (h *handler) newParseResp(out task.ParseOutput) parseResp {
	fixes := out.Corrections
	if fixes == nil {
		fixes = []transcript.Correction{}
	}
	return parseResp{Task: out.Task, Corrections: fixes}
}

type enhanceResp struct {
	Task        model.ParsedTask      `json:"task"`
	Enhancement *enhancer.Enhancement `json:"enhancement,omitempty"`
	Enhanced    bool                  `json:"enhanced"`
}

func (h *handler) newEnhanceResp(out task.EnhanceOutput) enhanceResp {
	return enhanceResp{Task: out.Task, Enhancement: out.Enhancement, Enhanced: out.Enhanced}
}

type rosterResp struct {
	Version string               `json:"version"`
	Members []model.FamilyMember `json:"members"`
	Places  []model.KnownPlace   `json:"places"`
}

func (h *handler) newRosterResp(out task.RosterOutput) rosterResp {
	resp := rosterResp{
		Version: out.Version,
		Members: out.Roster.Members,
		Places:  out.Roster.Places,
	}
	if resp.Members == nil {
		resp.Members = []model.FamilyMember{}
	}
	if resp.Places == nil {
		resp.Places = []model.KnownPlace{}
	}
	return resp
}
