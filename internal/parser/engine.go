// Package parser turns one Hebrew or English task sentence into a model.ParsedTask
// and rewrites sentences when a single extracted tag is edited.
package parser

import (
	"time"

	"family-task-parser/internal/model"
	"family-task-parser/pkg/datemath"
	"family-task-parser/pkg/textfold"
)

// Engine parses against a fixed roster. It is immutable and safe for concurrent use.
type Engine struct {
	roster    model.Roster
	libraries map[model.Language]*library
	dates     *datemath.Parser
	now       func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the clock used for relative dates.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithLocation sets the timezone days and weeks are computed in.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		e.dates = datemath.NewParserIn(loc)
	}
}

// New compiles the pattern library for both languages against roster.
func New(roster model.Roster, opts ...Option) *Engine {
	e := &Engine{
		roster: roster,
		dates:  datemath.NewParserIn(time.Local),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.libraries = map[model.Language]*library{
		model.LanguageHebrew:  newLibrary(model.LanguageHebrew, roster),
		model.LanguageEnglish: newLibrary(model.LanguageEnglish, roster),
	}
	return e
}

// Roster returns the roster the engine was built with.
func (e *Engine) Roster() model.Roster {
	return e.roster
}

type analysis struct {
	raw      string
	lang     model.Language
	scan     scanResult
	resolved []model.Match
	facts    *facts
}

func (e *Engine) analyze(text string) *analysis {
	lang := DetectLanguage(text)
	lib, ok := e.libraries[lang]
	if !ok {
		lib = e.libraries[model.LanguageEnglish]
	}
	now := e.now().In(e.dates.Location())

	sc := lib.scan(textfold.Fold(text), now, e.dates)
	resolved := resolve(sc.matches)
	return &analysis{
		raw:      text,
		lang:     lang,
		scan:     sc,
		resolved: resolved,
		facts:    infer(e.signals(now, sc, resolved)),
	}
}

func (e *Engine) signals(now time.Time, sc scanResult, resolved []model.Match) signals {
	s := signals{
		today:     e.dates.StartOfDay(now),
		dates:     e.dates,
		date:      sc.date,
		transport: sc.transport != nil,
		reminder:  sc.reminder,
		task:      sc.task,
	}

	seen := make(map[string]bool)
	for _, m := range resolved {
		switch v := m.Value.(type) {
		case model.TimeBucket:
			s.buckets = append(s.buckets, v)
		case model.ClockTime:
			if s.time == nil {
				s.time = &v
			}
		case model.PersonRef:
			if member, ok := e.roster.Member(string(v)); ok && !seen[member.Name] {
				seen[member.Name] = true
				s.members = append(s.members, member)
			}
		case model.LocationKey:
			if s.place == nil {
				if p, ok := e.roster.Place(string(v)); ok {
					s.place = &p
				}
			}
		case model.Priority:
			if s.priority == "" {
				s.priority = v
			}
		}
	}

	for _, d := range sc.recurrence {
		if r, ok := d.Value.(model.Recurrence); ok {
			s.recurrence = append(s.recurrence, r)
		}
	}
	if sc.weekdays != nil {
		s.weekdays, _ = sc.weekdays.Value.(model.Weekdays)
	}
	if sc.drive != nil {
		if n, ok := sc.drive.Value.(model.Minutes); ok {
			minutes := int(n)
			s.drive = &minutes
		}
	}
	return s
}

// Parse parses text. It never fails: unrecognised text yields an unlabeled task.
func (e *Engine) Parse(text string) model.ParsedTask {
	return e.task(e.analyze(text))
}

func (e *Engine) task(a *analysis) model.ParsedTask {
	f := a.facts
	t := model.ParsedTask{
		RawText:         a.raw,
		Language:        a.lang,
		Segments:        buildSegments(a.raw, a.resolved),
		Tags:            e.synthesize(a),
		TimeBucket:      f.bucket,
		SpecificTime:    f.time,
		InvolvedMembers: make([]string, 0, len(f.involved)),
		Priority:        f.priority,
		Recurring:       f.recurring,
		RecurringDays:   []int(f.weekdays),
		IsReminder:      f.isReminder,
		TypeConfidence:  f.typeConfidence,
		RequiresDriving: f.driving,
		DrivingDuration: f.duration,
		Confidence:      f.confidence,
		Warnings:        f.warnings,
	}
	if f.specificDate != nil {
		d := model.NewDate(*f.specificDate)
		t.SpecificDate = &d
	}
	if f.owner != nil {
		t.Owner = f.owner.Name
	}
	for _, m := range f.involved {
		t.InvolvedMembers = append(t.InvolvedMembers, m.Name)
	}
	if f.place != nil {
		t.Location = f.place.Key
	}
	if f.driving {
		t.DrivingFrom = "home"
		t.DrivingTo = t.Location
	}
	return t
}
