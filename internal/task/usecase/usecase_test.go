package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"family-task-parser/internal/enhancer"
	"family-task-parser/internal/model"
	"family-task-parser/internal/roster"
	"family-task-parser/internal/task"
	"family-task-parser/internal/transcript"
	"family-task-parser/pkg/log"
)

type mockEnhancer struct {
	out   enhancer.Enhancement
	err   error
	input enhancer.Input
	calls int
}

func (m *mockEnhancer) Enhance(ctx context.Context, in enhancer.Input) (enhancer.Enhancement, error) {
	m.calls++
	m.input = in
	return m.out, m.err
}

func testSnapshot(t *testing.T) roster.Snapshot {
	t.Helper()
	snap, err := roster.New(model.Roster{
		Members: []model.FamilyMember{
			{Name: "Alon", NameLocalized: "אלון", IsChild: true, NeedsSupervision: true},
			{Name: "Dana", NameLocalized: "דנה", Aliases: []string{"mom"}},
		},
		Places: []model.KnownPlace{
			{Key: "kindergarten", Name: "Kindergarten", NameLocalized: "גן", Keywords: []string{"gan"}, DrivingTimeFromHome: 15, RequiresDriving: true},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return snap
}

type fixture struct {
	uc  task.UseCase
	now *time.Time
	enh *mockEnhancer
}

func newFixture(t *testing.T, enh *mockEnhancer) fixture {
	t.Helper()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	cfg := Config{
		Roster:         testSnapshot(t),
		Location:       time.UTC,
		Now:            func() time.Time { return now },
		Corrector:      transcript.New(map[string]string{"alona": "Alon"}),
		EnhanceTimeout: time.Second,
		MaxRecent:      2,
		CacheSize:      16,
		CacheTTL:       time.Minute,
	}
	if enh != nil {
		cfg.Enhancer = enh
	}
	return fixture{uc: New(log.NewNop(), cfg), now: &now, enh: enh}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name         string
		in           task.ParseInput
		wantPriority model.Priority
		wantMembers  []string
		wantFixes    int
		wantErr      error
	}{
		{name: "typed", in: task.ParseInput{Text: "Buy milk today P1"}, wantPriority: model.PriorityP1, wantMembers: []string{}},
		{name: "typed text is not corrected", in: task.ParseInput{Text: "call alona priority 1", Source: task.SourceTyped}, wantMembers: []string{}},
		{
			name:         "speech is corrected",
			in:           task.ParseInput{Text: "call alona priority 1", Source: task.SourceSpeech},
			wantPriority: model.PriorityP1,
			wantMembers:  []string{"Alon"},
			wantFixes:    2,
		},
		{name: "bad source", in: task.ParseInput{Text: "x", Source: "fax"}, wantErr: task.ErrInvalidSource},
		{name: "too long", in: task.ParseInput{Text: strings.Repeat("א", task.MaxTextLength+1)}, wantErr: task.ErrTextTooLong},
	}
	f := newFixture(t, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.uc.Parse(context.Background(), tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got.Task.Priority != tt.wantPriority {
				t.Errorf("Priority = %q, want %q", got.Task.Priority, tt.wantPriority)
			}
			if diff := cmp.Diff(tt.wantMembers, got.Task.InvolvedMembers); diff != "" {
				t.Errorf("InvolvedMembers mismatch (-want +got):\n%s", diff)
			}
			if len(got.Corrections) != tt.wantFixes {
				t.Errorf("Corrections = %v, want %d", got.Corrections, tt.wantFixes)
			}
		})
	}
}

func TestParse_CacheFollowsTheDate(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	first, _ := f.uc.Parse(ctx, task.ParseInput{Text: "pay bills today"})
	again, _ := f.uc.Parse(ctx, task.ParseInput{Text: "pay bills today"})
	if diff := cmp.Diff(first.Task, again.Task); diff != "" {
		t.Errorf("cached parse differs (-first +again):\n%s", diff)
	}

	*f.now = f.now.AddDate(0, 0, 1)
	next, _ := f.uc.Parse(ctx, task.ParseInput{Text: "pay bills today"})
	if next.Task.SpecificDate == nil || next.Task.SpecificDate.String() != "2024-05-02" {
		t.Errorf("SpecificDate after midnight = %v, want 2024-05-02", next.Task.SpecificDate)
	}
}

func TestEditTag(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	got, err := f.uc.EditTag(ctx, task.EditTagInput{Text: "Buy milk today P1", TagID: 2, Value: model.PriorityP3})
	if err != nil {
		t.Fatalf("EditTag() error = %v", err)
	}
	if got.Task.RawText != "Buy milk today P3" || got.Task.Priority != model.PriorityP3 {
		t.Errorf("edited task = %q %q", got.Task.RawText, got.Task.Priority)
	}

	if _, err := f.uc.EditTag(ctx, task.EditTagInput{Text: "Buy milk today P1", TagID: 42, Value: model.PriorityP3}); !errors.Is(err, task.ErrTagNotFound) {
		t.Errorf("unknown tag error = %v", err)
	}
	if _, err := f.uc.EditTag(ctx, task.EditTagInput{Text: "Buy milk today P1", TagID: 2, Value: model.Priority("P9")}); !errors.Is(err, task.ErrInvalidValue) {
		t.Errorf("bad value error = %v", err)
	}
}

func TestEnhance(t *testing.T) {
	ctx := context.Background()
	in := task.EnhanceInput{Text: "pick up tomorrow", RecentTasks: []string{"a", "b", "c"}, Categories: []string{"kids"}}

	t.Run("disabled", func(t *testing.T) {
		got, err := newFixture(t, nil).uc.Enhance(ctx, in)
		if err != nil || got.Enhanced || got.Enhancement != nil {
			t.Errorf("Enhance() = %+v, %v", got, err)
		}
		if got.Task.RawText != in.Text {
			t.Errorf("RawText = %q", got.Task.RawText)
		}
	})

	t.Run("model error falls back", func(t *testing.T) {
		enh := &mockEnhancer{err: errors.New("model down")}
		got, err := newFixture(t, enh).uc.Enhance(ctx, in)
		if err != nil {
			t.Fatalf("Enhance() error = %v", err)
		}
		if got.Enhanced || got.Task.RawText != in.Text || enh.calls != 1 {
			t.Errorf("Enhance() = %+v", got)
		}
	})

	t.Run("hints are written into the text", func(t *testing.T) {
		enh := &mockEnhancer{out: enhancer.Enhancement{
			Members:    []string{"Alon"},
			Location:   "kindergarten",
			Time:       &model.ClockTime{Hour: 16},
			Confidence: 0.7,
		}}
		f := newFixture(t, enh)
		got, err := f.uc.Enhance(ctx, in)
		if err != nil {
			t.Fatalf("Enhance() error = %v", err)
		}
		if !got.Enhanced || got.Enhancement == nil || got.Enhancement.Confidence != 0.7 {
			t.Errorf("Enhancement = %+v", got.Enhancement)
		}
		if got.Task.RawText != "pick up tomorrow with Alon at Kindergarten at 16:00" {
			t.Errorf("RawText = %q", got.Task.RawText)
		}
		if !got.Task.RequiresDriving || got.Task.Location != "kindergarten" {
			t.Errorf("task = %+v", got.Task)
		}
		if diff := cmp.Diff([]string{"b", "c"}, enh.input.RecentTasks); diff != "" {
			t.Errorf("RecentTasks mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestRoster(t *testing.T) {
	f := newFixture(t, nil)
	got := f.uc.Roster(context.Background())
	if got.Version == "" || len(got.Roster.Members) != 2 {
		t.Errorf("Roster() = %+v", got)
	}
}
