package parser

import (
	"math"
	"slices"
	"time"

	"family-task-parser/internal/model"
	"family-task-parser/pkg/datemath"
)

// signals are the values inference works from. Inference never looks at text.
type signals struct {
	today time.Time
	dates *datemath.Parser

	buckets    []model.TimeBucket
	date       *time.Time
	time       *model.ClockTime
	members    []model.FamilyMember
	place      *model.KnownPlace
	priority   model.Priority
	transport  bool
	reminder   bool
	task       bool
	recurrence []model.Recurrence
	weekdays   model.Weekdays
	drive      *int
}

// facts is signals plus everything derived from them.
type facts struct {
	signals

	bucket         model.TimeBucket
	specificDate   *time.Time
	owner          *model.FamilyMember
	involved       []model.FamilyMember
	driving        bool
	duration       *int
	isReminder     bool
	typeConfidence float64
	recurring      model.Recurrence
	confidence     float64
	warnings       []string
}

// rule is one "condition -> derived fact" row. Tables are evaluated top-down and the
// first rule whose condition holds decides.
type rule[T any] struct {
	name string
	when func(*facts) bool
	then func(*facts) T
}

func decide[T any](rules []rule[T], f *facts, fallback T) T {
	for _, r := range rules {
		if r.when(f) {
			return r.then(f)
		}
	}
	return fallback
}

func is[T any](v T) func(*facts) T {
	return func(*facts) T { return v }
}

func hasBucket(b model.TimeBucket) func(*facts) bool {
	return func(f *facts) bool { return slices.Contains(f.buckets, b) }
}

func dateWhere(match func(f *facts, d time.Time) bool) func(*facts) bool {
	return func(f *facts) bool { return f.date != nil && match(f, *f.date) }
}

var keywordBucketRules = []rule[model.TimeBucket]{
	{name: "today keyword", when: hasBucket(model.BucketToday), then: is(model.BucketToday)},
	{name: "tomorrow keyword", when: hasBucket(model.BucketTomorrow), then: is(model.BucketTomorrow)},
	{name: "next week keyword", when: hasBucket(model.BucketNextWeek), then: is(model.BucketNextWeek)},
	{name: "this week keyword", when: hasBucket(model.BucketThisWeek), then: is(model.BucketThisWeek)},
}

var dateBucketRules = []rule[model.TimeBucket]{
	{
		name: "date is today",
		when: dateWhere(func(f *facts, d time.Time) bool { return f.dates.SameDay(d, f.today) }),
		then: is(model.BucketToday),
	},
	{
		name: "date is tomorrow",
		when: dateWhere(func(f *facts, d time.Time) bool { return f.dates.SameDay(d, f.today.AddDate(0, 0, 1)) }),
		then: is(model.BucketTomorrow),
	},
	{
		name: "date in this week",
		when: dateWhere(func(f *facts, d time.Time) bool { return f.dates.Week(f.today).Contains(d) }),
		then: is(model.BucketThisWeek),
	},
	{
		name: "date in next week",
		when: dateWhere(func(f *facts, d time.Time) bool { return f.dates.NextWeek(f.today).Contains(d) }),
		then: is(model.BucketNextWeek),
	},
}

func firstAdult(members []model.FamilyMember) int {
	return slices.IndexFunc(members, func(m model.FamilyMember) bool { return !m.IsChild })
}

var ownerRules = []rule[*model.FamilyMember]{
	{
		name: "first adult in mention order owns the task",
		when: func(f *facts) bool { return firstAdult(f.members) >= 0 },
		then: func(f *facts) *model.FamilyMember {
			m := f.members[firstAdult(f.members)]
			return &m
		},
	},
}

func (f *facts) supervisedChild() bool {
	return slices.ContainsFunc(f.involved, func(m model.FamilyMember) bool {
		return m.IsChild && m.NeedsSupervision
	})
}

func (f *facts) placeNeedsCar() bool {
	return f.place != nil && f.place.RequiresDriving
}

var drivingRules = []rule[bool]{
	{
		name: "supervised child to a place that needs driving",
		when: func(f *facts) bool { return f.supervisedChild() && f.placeNeedsCar() },
		then: is(true),
	},
	{
		name: "transport to a place that needs driving",
		when: func(f *facts) bool { return f.transport && f.placeNeedsCar() },
		then: is(true),
	},
	{
		name: "supervised child with transport",
		when: func(f *facts) bool { return f.supervisedChild() && f.transport },
		then: is(true),
	},
}

var durationRules = []rule[*int]{
	{
		name: "explicit drive duration",
		when: func(f *facts) bool { return f.drive != nil },
		then: func(f *facts) *int {
			n := *f.drive
			return &n
		},
	},
	{
		name: "place driving time",
		when: func(f *facts) bool { return f.place != nil && f.place.DrivingTimeFromHome > 0 },
		then: func(f *facts) *int {
			n := f.place.DrivingTimeFromHome
			return &n
		},
	},
}

type taskKind struct {
	reminder   bool
	confidence float64
}

var kindRules = []rule[taskKind]{
	{name: "reminder keyword", when: func(f *facts) bool { return f.reminder }, then: is(taskKind{reminder: true, confidence: 0.9})},
	{name: "task keyword", when: func(f *facts) bool { return f.task }, then: is(taskKind{confidence: 0.7})},
	{name: "has an owner", when: func(f *facts) bool { return f.owner != nil }, then: is(taskKind{confidence: 0.7})},
	{name: "transport", when: func(f *facts) bool { return f.transport }, then: is(taskKind{confidence: 0.7})},
}

var defaultKind = taskKind{confidence: 0.4}

func hasRecurrence(r model.Recurrence) func(*facts) bool {
	return func(f *facts) bool { return slices.Contains(f.recurrence, r) }
}

var recurrenceRules = []rule[model.Recurrence]{
	{name: "daily", when: hasRecurrence(model.RecurrenceDaily), then: is(model.RecurrenceDaily)},
	{name: "weekly", when: hasRecurrence(model.RecurrenceWeekly), then: is(model.RecurrenceWeekly)},
	{name: "monthly", when: hasRecurrence(model.RecurrenceMonthly), then: is(model.RecurrenceMonthly)},
	{name: "weekday list", when: func(f *facts) bool { return len(f.weekdays) > 0 }, then: is(model.RecurrenceWeekly)},
}

type weight struct {
	name string
	when func(*facts) bool
	add  float64
}

const (
	baseConfidence     = 0.3
	multipleIndicators = 3
	multipleBonus      = 0.1
)

var confidenceWeights = []weight{
	{name: "time bucket", when: func(f *facts) bool { return f.bucket != model.BucketUnlabeled }, add: 0.15},
	{name: "location", when: func(f *facts) bool { return f.place != nil }, add: 0.15},
	{name: "family members", when: func(f *facts) bool { return len(f.members) > 0 }, add: 0.15},
	{name: "specific time", when: func(f *facts) bool { return f.time != nil }, add: 0.15},
}

type check struct {
	message string
	when    func(*facts) bool
}

const (
	WarnDrivingNoLocation  = "driving detected but no location"
	WarnDrivingNoTime      = "driving required but no specific time"
	WarnUnsupervisedChild  = "child needs supervision but no responsible adult"
	WarnDateBucketMismatch = "date and time bucket disagree"
)

var warningChecks = []check{
	{message: WarnDrivingNoLocation, when: func(f *facts) bool { return f.driving && f.place == nil }},
	{message: WarnDrivingNoTime, when: func(f *facts) bool { return f.driving && f.time == nil }},
	{message: WarnUnsupervisedChild, when: func(f *facts) bool { return f.supervisedChild() && f.owner == nil }},
	{
		message: WarnDateBucketMismatch,
		when: func(f *facts) bool {
			if f.date == nil || len(f.buckets) == 0 {
				return false
			}
			return decide(dateBucketRules, f, model.BucketUnlabeled) != f.bucket
		},
	},
}

// infer derives every task fact from s. Order matters: driving needs the owner split,
// the task kind needs the owner, confidence needs the bucket.
func infer(s signals) *facts {
	f := &facts{signals: s}

	f.bucket = decide(keywordBucketRules, f, decide(dateBucketRules, f, model.BucketUnlabeled))
	f.specificDate = specificDate(f)

	f.owner = decide(ownerRules, f, nil)
	f.involved = make([]model.FamilyMember, 0, len(f.members))
	for _, m := range f.members {
		if f.owner == nil || m.Name != f.owner.Name {
			f.involved = append(f.involved, m)
		}
	}

	f.driving = decide(drivingRules, f, false)
	if f.driving {
		f.duration = decide(durationRules, f, nil)
	}

	kind := decide(kindRules, f, defaultKind)
	f.isReminder, f.typeConfidence = kind.reminder, kind.confidence

	f.recurring = decide(recurrenceRules, f, model.RecurrenceNone)

	f.confidence = confidence(f)

	for _, c := range warningChecks {
		if c.when(f) {
			f.warnings = append(f.warnings, c.message)
		}
	}
	return f
}

func specificDate(f *facts) *time.Time {
	if f.date != nil {
		d := *f.date
		return &d
	}
	switch {
	case slices.Contains(f.buckets, model.BucketToday):
		d := f.today
		return &d
	case slices.Contains(f.buckets, model.BucketTomorrow):
		d := f.today.AddDate(0, 0, 1)
		return &d
	}
	return nil
}

func confidence(f *facts) float64 {
	score, hits := baseConfidence, 0
	for _, w := range confidenceWeights {
		if w.when(f) {
			score += w.add
			hits++
		}
	}
	if hits >= multipleIndicators {
		score += multipleBonus
	}
	return math.Min(1.0, math.Round(score*100)/100)
}
