package parser_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"family-task-parser/internal/model"
	"family-task-parser/internal/parser"
)

func tagOf(t *testing.T, task model.ParsedTask, typ model.TagType) model.ExtractedTag {
	t.Helper()
	for _, tag := range task.Tags {
		if tag.Type == typ {
			return tag
		}
	}
	t.Fatalf("no %s tag in %q", typ, task.RawText)
	return model.ExtractedTag{}
}

func TestEditTag(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		tag      model.TagType
		value    model.Value
		wantText string
		check    func(t *testing.T, got model.ParsedTask)
	}{
		{
			name:     "numeric time keeps its marker",
			text:     "לאסוף את נועה בשעה 8",
			tag:      model.TagTime,
			value:    model.ClockTime{Hour: 9, Minute: 30},
			wantText: "לאסוף את נועה בשעה 9:30",
			check: func(t *testing.T, got model.ParsedTask) {
				if got.SpecificTime == nil || *got.SpecificTime != (model.ClockTime{Hour: 9, Minute: 30}) {
					t.Errorf("SpecificTime = %v, want 09:30", got.SpecificTime)
				}
			},
		},
		{
			name:     "spoken time stays spoken",
			text:     "לאסוף את נועה בשמונה וחצי בערב",
			tag:      model.TagTime,
			value:    model.ClockTime{Hour: 21},
			wantText: "לאסוף את נועה בתשע בערב",
		},
		{
			name:     "spoken time without a quarter falls back to digits",
			text:     "לאסוף את נועה בשמונה וחצי בערב",
			tag:      model.TagTime,
			value:    model.ClockTime{Hour: 21, Minute: 10},
			wantText: "לאסוף את נועה ב21:10",
		},
		{
			name:     "english spoken time",
			text:     "call mom at eight",
			tag:      model.TagTime,
			value:    model.ClockTime{Hour: 9, Minute: 30},
			wantText: "call mom at nine thirty",
		},
		{
			name:     "member keeps object marker",
			text:     "לקחת את אלון לגן",
			tag:      model.TagInvolved,
			value:    model.PersonRef("Noa"),
			wantText: "לקחת את נועה לגן",
			check: func(t *testing.T, got model.ParsedTask) {
				if diff := cmp.Diff([]string{"Noa"}, got.InvolvedMembers); diff != "" {
					t.Errorf("InvolvedMembers mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:     "location keeps prefix",
			text:     "לקחת את אלון לגן",
			tag:      model.TagLocation,
			value:    model.LocationKey("school"),
			wantText: "לקחת את אלון לבית ספר",
		},
		{
			name:     "bucket swap",
			text:     "Buy milk today P1",
			tag:      model.TagTimeBucket,
			value:    model.BucketTomorrow,
			wantText: "Buy milk tomorrow P1",
		},
		{
			name:     "hebrew bucket keeps prefix",
			text:     "לקנות חלב למחר",
			tag:      model.TagTimeBucket,
			value:    model.BucketNextWeek,
			wantText: "לקנות חלב לשבוע הבא",
		},
		{
			name:     "priority swap",
			text:     "Buy milk today P1",
			tag:      model.TagPriority,
			value:    model.PriorityP3,
			wantText: "Buy milk today P3",
		},
		{
			name:     "drive duration numeral",
			text:     "take Alon to gan 20 min drive",
			tag:      model.TagTransport,
			value:    model.Minutes(30),
			wantText: "take Alon to gan 30 min drive",
		},
		{
			name:     "drive duration appended",
			text:     "לקחת את אלון לגן",
			tag:      model.TagTransport,
			value:    model.Minutes(25),
			wantText: "לקחת את אלון לגן 25 דקות נסיעה",
			check: func(t *testing.T, got model.ParsedTask) {
				if got.DrivingDuration == nil || *got.DrivingDuration != 25 {
					t.Errorf("DrivingDuration = %v, want 25", got.DrivingDuration)
				}
			},
		},
		{
			name:     "weekday list",
			text:     "כל יום שני וחמישי חוג",
			tag:      model.TagRecurring,
			value:    model.Weekdays{0, 2},
			wantText: "כל יום ראשון ושלישי חוג",
			check: func(t *testing.T, got model.ParsedTask) {
				if diff := cmp.Diff([]int{0, 2}, got.RecurringDays); diff != "" {
					t.Errorf("RecurringDays mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:     "weekday list to daily",
			text:     "every Monday and Thursday gym",
			tag:      model.TagRecurring,
			value:    model.RecurrenceDaily,
			wantText: "every day gym",
			check: func(t *testing.T, got model.ParsedTask) {
				if got.Recurring != model.RecurrenceDaily || len(got.RecurringDays) != 0 {
					t.Errorf("Recurring = %q days %v, want daily only", got.Recurring, got.RecurringDays)
				}
			},
		},
		{
			name:     "bucket from a date replaces the date",
			text:     "dentist on Friday",
			tag:      model.TagTimeBucket,
			value:    model.BucketNextWeek,
			wantText: "dentist next week",
			check: func(t *testing.T, got model.ParsedTask) {
				if got.TimeBucket != model.BucketNextWeek {
					t.Errorf("TimeBucket = %q, want next-week", got.TimeBucket)
				}
			},
		},
		{
			name:     "hebrew bucket from a weekday replaces the weekday",
			text:     "לקחת את אלון לגן ביום שישי",
			tag:      model.TagTimeBucket,
			value:    model.BucketTomorrow,
			wantText: "לקחת את אלון לגן מחר",
			check: func(t *testing.T, got model.ParsedTask) {
				if got.TimeBucket != model.BucketTomorrow {
					t.Errorf("TimeBucket = %q, want tomorrow", got.TimeBucket)
				}
			},
		},
		{
			name:     "bucket from a relative date replaces it",
			text:     "dentist in 3 days",
			tag:      model.TagTimeBucket,
			value:    model.BucketToday,
			wantText: "dentist today",
		},
		{
			name:     "numeric time with a day part",
			text:     "פגישה בשעה 8:00 בערב",
			tag:      model.TagTime,
			value:    model.ClockTime{Hour: 9, Minute: 30},
			wantText: "פגישה בשעה 9:30",
			check: func(t *testing.T, got model.ParsedTask) {
				if got.SpecificTime == nil || *got.SpecificTime != (model.ClockTime{Hour: 9, Minute: 30}) {
					t.Errorf("SpecificTime = %v, want 09:30", got.SpecificTime)
				}
			},
		},
	}

	e := newEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := e.Parse(tt.text)
			tag := tagOf(t, task, tt.tag)

			got, err := e.EditTag(task, tag.ID, tt.value)
			if err != nil {
				t.Fatalf("EditTag() error = %v", err)
			}
			if got.RawText != tt.wantText {
				t.Errorf("RawText = %q, want %q", got.RawText, tt.wantText)
			}
			if diff := cmp.Diff(e.Parse(got.RawText), got); diff != "" {
				t.Errorf("edit result is not a fresh parse (-want +got):\n%s", diff)
			}
			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}

func TestEditTag_Errors(t *testing.T) {
	e := newEngine()
	task := e.Parse("לאסוף את נועה בשעה 8")

	got, err := e.EditTag(task, 99, model.ClockTime{Hour: 9})
	if !errors.Is(err, parser.ErrTagNotFound) {
		t.Errorf("unknown tag error = %v, want ErrTagNotFound", err)
	}
	if got.RawText != task.RawText {
		t.Errorf("RawText changed to %q", got.RawText)
	}

	timeTag := tagOf(t, task, model.TagTime)
	invalid := []model.Value{
		model.PersonRef("Noa"),
		model.ClockTime{Hour: 24},
		model.Flag(true),
		nil,
	}
	for _, v := range invalid {
		if _, err := e.EditTag(task, timeTag.ID, v); !errors.Is(err, parser.ErrInvalidTagValue) {
			t.Errorf("EditTag(%v) error = %v, want ErrInvalidTagValue", v, err)
		}
	}

	member := tagOf(t, task, model.TagInvolved)
	if _, err := e.EditTag(task, member.ID, model.PersonRef("Nobody")); !errors.Is(err, parser.ErrInvalidTagValue) {
		t.Errorf("unknown member error = %v, want ErrInvalidTagValue", err)
	}
}
