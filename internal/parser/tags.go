package parser

import (
	"family-task-parser/internal/model"
)

var tagEmoji = map[model.TagType]string{
	model.TagTimeBucket: "📅",
	model.TagTime:       "⏰",
	model.TagOwner:      "👤",
	model.TagInvolved:   "👥",
	model.TagLocation:   "📍",
	model.TagTransport:  "🚗",
	model.TagRecurring:  "🔁",
}

var priorityEmoji = map[model.Priority]string{
	model.PriorityP1: "🔴",
	model.PriorityP2: "🟠",
	model.PriorityP3: "🟢",
}

func emoji(t model.TagType, v model.Value) string {
	if p, ok := v.(model.Priority); ok {
		return priorityEmoji[p]
	}
	return tagEmoji[t]
}

// firstMatch returns the span of the first resolved match satisfying pred.
func firstMatch(resolved []model.Match, pred func(model.Match) bool) (*model.Span, bool) {
	for _, m := range resolved {
		if pred(m) {
			sp := m.Span
			return &sp, m.Words
		}
	}
	return nil, false
}

func valueIs(c model.Category, v model.Value) func(model.Match) bool {
	return func(m model.Match) bool {
		if m.Category != c {
			return false
		}
		switch want := v.(type) {
		case nil:
			return true
		case model.PersonRef, model.LocationKey, model.TimeBucket, model.Priority:
			return m.Value == want
		}
		return false
	}
}

func spanOf(d *detection) *model.Span {
	if d == nil {
		return nil
	}
	sp := d.Span
	return &sp
}

// synthesize builds tags in their fixed order: timeBucket, time, owner, involved,
// location, transport, priority, recurring.
func (e *Engine) synthesize(a *analysis) []model.ExtractedTag {
	f := a.facts
	tags := make([]model.ExtractedTag, 0, 8)
	add := func(t model.TagType, v model.Value, source *model.Span, words bool) {
		tags = append(tags, model.ExtractedTag{
			ID:          len(tags) + 1,
			Type:        t,
			DisplayText: e.display(a.lang, v),
			Value:       v,
			Emoji:       emoji(t, v),
			Editable:    t != model.TagTransport,
			Source:      source,
			Words:       words,
		})
	}

	if f.bucket != model.BucketUnlabeled {
		src, _ := firstMatch(a.resolved, valueIs(model.CategoryTimeBucket, f.bucket))
		add(model.TagTimeBucket, f.bucket, src, false)
	}
	if f.time != nil {
		src, words := firstMatch(a.resolved, valueIs(model.CategoryTime, nil))
		add(model.TagTime, *f.time, src, words)
	}
	if f.owner != nil {
		ref := model.PersonRef(f.owner.Name)
		src, _ := firstMatch(a.resolved, valueIs(model.CategoryFamilyMember, ref))
		add(model.TagOwner, ref, src, false)
	}
	for _, m := range f.involved {
		ref := model.PersonRef(m.Name)
		src, _ := firstMatch(a.resolved, valueIs(model.CategoryFamilyMember, ref))
		add(model.TagInvolved, ref, src, false)
	}
	if f.place != nil {
		key := model.LocationKey(f.place.Key)
		src, _ := firstMatch(a.resolved, valueIs(model.CategoryLocation, key))
		add(model.TagLocation, key, src, false)
	}
	if f.driving && f.duration != nil {
		add(model.TagTransport, model.Minutes(*f.duration), spanOf(a.scan.drive), false)
	}
	if f.priority != "" {
		src, _ := firstMatch(a.resolved, valueIs(model.CategoryPriority, f.priority))
		add(model.TagPriority, f.priority, src, false)
	}
	if f.recurring != model.RecurrenceNone {
		for _, d := range a.scan.recurrence {
			if d.Value == f.recurring {
				add(model.TagRecurring, f.recurring, spanOf(&d), false)
				break
			}
		}
	}
	if len(f.weekdays) > 0 {
		add(model.TagRecurring, f.weekdays, spanOf(a.scan.weekdays), false)
	}
	return tags
}
