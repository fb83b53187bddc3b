package parser

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"family-task-parser/internal/model"
	"family-task-parser/pkg/datemath"
)

var wednesday = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func baseSignals() signals {
	return signals{today: wednesday, dates: datemath.NewParserIn(time.UTC)}
}

func ptr[T any](v T) *T { return &v }

var (
	child      = model.FamilyMember{Name: "Alon", IsChild: true, NeedsSupervision: true}
	olderChild = model.FamilyMember{Name: "Noa", IsChild: true}
	mom        = model.FamilyMember{Name: "Dana"}
	dad        = model.FamilyMember{Name: "Yossi"}
	gan        = model.KnownPlace{Key: "gan", DrivingTimeFromHome: 15, RequiresDriving: true}
	shop       = model.KnownPlace{Key: "shop", DrivingTimeFromHome: 5}
)

func TestInfer_Bucket(t *testing.T) {
	tests := []struct {
		name    string
		buckets []model.TimeBucket
		date    *time.Time
		want    model.TimeBucket
	}{
		{name: "nothing", want: model.BucketUnlabeled},
		{name: "today beats tomorrow", buckets: []model.TimeBucket{model.BucketTomorrow, model.BucketToday}, want: model.BucketToday},
		{name: "next week beats this week", buckets: []model.TimeBucket{model.BucketThisWeek, model.BucketNextWeek}, want: model.BucketNextWeek},
		{name: "keyword beats date", buckets: []model.TimeBucket{model.BucketToday}, date: ptr(wednesday.AddDate(0, 0, 6)), want: model.BucketToday},
		{name: "date today", date: ptr(wednesday), want: model.BucketToday},
		{name: "date tomorrow", date: ptr(wednesday.AddDate(0, 0, 1)), want: model.BucketTomorrow},
		{name: "date saturday", date: ptr(wednesday.AddDate(0, 0, 3)), want: model.BucketThisWeek},
		{name: "date next sunday", date: ptr(wednesday.AddDate(0, 0, 4)), want: model.BucketNextWeek},
		{name: "date far away", date: ptr(wednesday.AddDate(0, 1, 0)), want: model.BucketUnlabeled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := baseSignals()
			s.buckets, s.date = tt.buckets, tt.date
			if got := infer(s).bucket; got != tt.want {
				t.Errorf("bucket = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInfer_OwnerAndDriving(t *testing.T) {
	tests := []struct {
		name         string
		members      []model.FamilyMember
		place        *model.KnownPlace
		transport    bool
		drive        *int
		wantOwner    string
		wantInvolved []string
		wantDriving  bool
		wantDuration *int
	}{
		{
			name:         "supervised child to driving place",
			members:      []model.FamilyMember{child},
			place:        &gan,
			wantInvolved: []string{"Alon"},
			wantDriving:  true,
			wantDuration: ptr(15),
		},
		{
			name:         "unsupervised child to driving place",
			members:      []model.FamilyMember{olderChild},
			place:        &gan,
			wantInvolved: []string{"Noa"},
		},
		{
			name:         "transport to driving place",
			members:      []model.FamilyMember{olderChild},
			place:        &gan,
			transport:    true,
			wantInvolved: []string{"Noa"},
			wantDriving:  true,
			wantDuration: ptr(15),
		},
		{
			name:         "supervised child with transport and no place",
			members:      []model.FamilyMember{child},
			transport:    true,
			wantInvolved: []string{"Alon"},
			wantDriving:  true,
		},
		{
			name:         "explicit duration wins",
			members:      []model.FamilyMember{child},
			place:        &gan,
			drive:        ptr(40),
			wantInvolved: []string{"Alon"},
			wantDriving:  true,
			wantDuration: ptr(40),
		},
		{
			name:         "transport to a place without driving",
			place:        &shop,
			transport:    true,
			wantInvolved: []string{},
		},
		{
			name:         "first adult owns",
			members:      []model.FamilyMember{child, dad, mom},
			wantOwner:    "Yossi",
			wantInvolved: []string{"Alon", "Dana"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := baseSignals()
			s.members, s.place, s.transport, s.drive = tt.members, tt.place, tt.transport, tt.drive
			f := infer(s)

			var owner string
			if f.owner != nil {
				owner = f.owner.Name
			}
			if owner != tt.wantOwner {
				t.Errorf("owner = %q, want %q", owner, tt.wantOwner)
			}
			involved := make([]string, 0, len(f.involved))
			for _, m := range f.involved {
				involved = append(involved, m.Name)
			}
			if diff := cmp.Diff(tt.wantInvolved, involved); diff != "" {
				t.Errorf("involved mismatch (-want +got):\n%s", diff)
			}
			if f.driving != tt.wantDriving {
				t.Errorf("driving = %v, want %v", f.driving, tt.wantDriving)
			}
			if diff := cmp.Diff(tt.wantDuration, f.duration); diff != "" {
				t.Errorf("duration mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInfer_Recurrence(t *testing.T) {
	tests := []struct {
		name     string
		flags    []model.Recurrence
		weekdays model.Weekdays
		want     model.Recurrence
	}{
		{name: "none", want: model.RecurrenceNone},
		{name: "daily beats monthly", flags: []model.Recurrence{model.RecurrenceMonthly, model.RecurrenceDaily}, want: model.RecurrenceDaily},
		{name: "weekly beats monthly", flags: []model.Recurrence{model.RecurrenceMonthly, model.RecurrenceWeekly}, want: model.RecurrenceWeekly},
		{name: "weekday list is weekly", weekdays: model.Weekdays{1, 4}, want: model.RecurrenceWeekly},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := baseSignals()
			s.recurrence, s.weekdays = tt.flags, tt.weekdays
			if got := infer(s).recurring; got != tt.want {
				t.Errorf("recurring = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInfer_Warnings(t *testing.T) {
	s := baseSignals()
	s.members = []model.FamilyMember{child}
	s.transport = true
	got := infer(s).warnings

	want := []string{WarnDrivingNoLocation, WarnDrivingNoTime, WarnUnsupervisedChild}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("warnings mismatch (-want +got):\n%s", diff)
	}

	s = baseSignals()
	s.members = []model.FamilyMember{child, mom}
	s.place = &gan
	s.time = &model.ClockTime{Hour: 8}
	if got := infer(s).warnings; len(got) != 0 {
		t.Errorf("warnings = %v, want none", got)
	}
}

func TestConfidence(t *testing.T) {
	s := baseSignals()
	if got := infer(s).confidence; got != 0.3 {
		t.Errorf("empty confidence = %v, want 0.3", got)
	}

	s.place = &shop
	s.time = &model.ClockTime{Hour: 9}
	if got := infer(s).confidence; got != 0.6 {
		t.Errorf("two indicators = %v, want 0.6", got)
	}

	s.members = []model.FamilyMember{mom}
	if got := infer(s).confidence; got != 0.85 {
		t.Errorf("three indicators = %v, want 0.85", got)
	}

	s.buckets = []model.TimeBucket{model.BucketToday}
	if got := infer(s).confidence; got != 1.0 {
		t.Errorf("all indicators = %v, want 1.0", got)
	}
}

func TestResolve(t *testing.T) {
	m := func(c model.Category, start, end int) model.Match {
		return model.Match{Span: model.Span{Start: start, End: end, PayloadStart: start, PayloadEnd: end}, Category: c}
	}
	tests := []struct {
		name string
		in   []model.Match
		want []model.Match
	}{
		{
			name: "rank breaks start ties",
			in:   []model.Match{m(model.CategoryLocation, 0, 9), m(model.CategoryPriority, 0, 2)},
			want: []model.Match{m(model.CategoryPriority, 0, 2)},
		},
		{
			name: "overlap drops the later start",
			in:   []model.Match{m(model.CategoryTime, 5, 10), m(model.CategoryFamilyMember, 3, 7)},
			want: []model.Match{m(model.CategoryFamilyMember, 3, 7)},
		},
		{
			name: "touching spans both survive",
			in:   []model.Match{m(model.CategoryTime, 4, 8), m(model.CategoryTimeBucket, 0, 4)},
			want: []model.Match{m(model.CategoryTimeBucket, 0, 4), m(model.CategoryTime, 4, 8)},
		},
		{
			name: "empty",
			want: []model.Match{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, resolve(tt.in)); diff != "" {
				t.Errorf("resolve() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
