package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"

	"family-task-parser/internal/enhancer"
	"family-task-parser/internal/middleware"
	"family-task-parser/internal/model"
	"family-task-parser/internal/task"
	"family-task-parser/pkg/log"
)

type mockUseCase struct {
	parsed     model.ParsedTask
	parseErr   error
	editErr    error
	enhanceOut task.EnhanceOutput

	lastParse task.ParseInput
	lastEdit  task.EditTagInput
}

func (m *mockUseCase) Parse(ctx context.Context, in task.ParseInput) (task.ParseOutput, error) {
	m.lastParse = in
	if m.parseErr != nil {
		return task.ParseOutput{}, m.parseErr
	}
	return task.ParseOutput{Task: m.parsed}, nil
}

func (m *mockUseCase) EditTag(ctx context.Context, in task.EditTagInput) (task.ParseOutput, error) {
	m.lastEdit = in
	if m.editErr != nil {
		return task.ParseOutput{}, m.editErr
	}
	return task.ParseOutput{Task: m.parsed}, nil
}

func (m *mockUseCase) Enhance(ctx context.Context, in task.EnhanceInput) (task.EnhanceOutput, error) {
	return m.enhanceOut, nil
}

func (m *mockUseCase) Roster(ctx context.Context) task.RosterOutput {
	return task.RosterOutput{
		Roster:  model.Roster{Members: []model.FamilyMember{{Name: "Alon"}}},
		Version: "v1",
	}
}

func newServer(uc task.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	l := log.NewNop()
	RegisterRoutes(r.Group("/api/v1"), New(l, uc), middleware.New(l, 0))
	return r
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return w.Code, env
}

var priorityTask = model.ParsedTask{
	RawText:  "Buy milk P1",
	Priority: model.PriorityP1,
	Tags: []model.ExtractedTag{
		{ID: 1, Type: model.TagPriority, DisplayText: "P1", Value: model.PriorityP1, Editable: true},
	},
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		parseErr error
		wantCode int
	}{
		{name: "ok", body: `{"text":"Buy milk P1","source":"speech"}`, wantCode: http.StatusOK},
		{name: "empty text", body: `{"text":"  "}`, wantCode: http.StatusBadRequest},
		{name: "malformed", body: `{"text":`, wantCode: http.StatusBadRequest},
		{name: "too long", body: `{"text":"x"}`, parseErr: task.ErrTextTooLong, wantCode: http.StatusRequestEntityTooLarge},
		{name: "bad source", body: `{"text":"x","source":"fax"}`, parseErr: task.ErrInvalidSource, wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{parsed: priorityTask, parseErr: tt.parseErr}
			code, env := do(t, newServer(uc), http.MethodPost, "/api/v1/tasks/parse", tt.body)
			if code != tt.wantCode {
				t.Fatalf("status = %d, want %d (%s)", code, tt.wantCode, env.Message)
			}
			if code != http.StatusOK {
				return
			}
			if uc.lastParse.Source != task.SourceSpeech {
				t.Errorf("Source = %q, want speech", uc.lastParse.Source)
			}
			var got struct {
				Task        struct{ Priority string }
				Corrections []json.RawMessage
			}
			if err := json.Unmarshal(env.Data, &got); err != nil {
				t.Fatal(err)
			}
			if got.Task.Priority != "P1" || got.Corrections == nil {
				t.Errorf("data = %+v", got)
			}
		})
	}
}

func TestEditTag(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		editErr   error
		wantCode  int
		wantValue model.Value
	}{
		{name: "decodes by tag type", body: `{"text":"Buy milk P1","tagId":1,"value":"p3"}`, wantCode: http.StatusOK, wantValue: model.PriorityP3},
		{name: "value of the wrong shape", body: `{"text":"Buy milk P1","tagId":1,"value":{"hour":9}}`, wantCode: http.StatusUnprocessableEntity},
		{name: "missing tag id", body: `{"text":"Buy milk P1","value":"P3"}`, wantCode: http.StatusBadRequest},
		{name: "unknown tag", body: `{"text":"Buy milk P1","tagId":7,"value":"P3"}`, editErr: task.ErrTagNotFound, wantCode: http.StatusNotFound},
		{name: "rejected value", body: `{"text":"Buy milk P1","tagId":1,"value":"P9"}`, editErr: task.ErrInvalidValue, wantCode: http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{parsed: priorityTask, editErr: tt.editErr}
			code, env := do(t, newServer(uc), http.MethodPost, "/api/v1/tasks/edit-tag", tt.body)
			if code != tt.wantCode {
				t.Fatalf("status = %d, want %d (%s)", code, tt.wantCode, env.Message)
			}
			if tt.wantValue != nil {
				if diff := cmp.Diff(tt.wantValue, uc.lastEdit.Value); diff != "" {
					t.Errorf("value mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestEnhance(t *testing.T) {
	uc := &mockUseCase{enhanceOut: task.EnhanceOutput{
		Task:        priorityTask,
		Enhancement: &enhancer.Enhancement{Members: []string{"Alon"}, Confidence: 0.8},
		Enhanced:    true,
	}}
	code, env := do(t, newServer(uc), http.MethodPost, "/api/v1/tasks/enhance", `{"text":"Buy milk P1","recentTasks":["a"]}`)
	if code != http.StatusOK {
		t.Fatalf("status = %d (%s)", code, env.Message)
	}
	// Tag values are interfaces, so only the enhancement half is decoded.
	var got struct {
		Enhancement *enhancer.Enhancement
		Enhanced    bool
	}
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatal(err)
	}
	if !got.Enhanced || got.Enhancement == nil || got.Enhancement.Confidence != 0.8 {
		t.Errorf("data = %+v", got)
	}
}

func TestRoster(t *testing.T) {
	code, env := do(t, newServer(&mockUseCase{}), http.MethodGet, "/api/v1/roster", "")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	var got rosterResp
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatal(err)
	}
	if got.Version != "v1" || len(got.Members) != 1 || got.Places == nil {
		t.Errorf("data = %+v", got)
	}
}
