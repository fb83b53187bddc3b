package parser

import (
	"fmt"
	"strconv"
	"strings"

	"family-task-parser/internal/model"
)

// EditTag writes value into the text behind tag tagID and re-parses the result.
// The task's raw text is re-analysed first, so tag ids and spans always belong to it.
// On error the returned task is the unchanged re-parse.
func (e *Engine) EditTag(task model.ParsedTask, tagID int, value model.Value) (model.ParsedTask, error) {
	a := e.analyze(task.RawText)
	current := e.task(a)

	tag, ok := current.Tag(tagID)
	if !ok {
		return current, fmt.Errorf("%w: %d", ErrTagNotFound, tagID)
	}
	if !e.accepts(tag.Type, value) {
		return current, fmt.Errorf("%w: %T for %s", ErrInvalidTagValue, value, tag.Type)
	}

	return e.Parse(e.rewrite(a, tag, value)), nil
}

func (e *Engine) accepts(t model.TagType, v model.Value) bool {
	switch val := v.(type) {
	case model.TimeBucket:
		return t == model.TagTimeBucket && val.Valid() && val != model.BucketUnlabeled
	case model.ClockTime:
		return t == model.TagTime && val.Valid()
	case model.PersonRef:
		_, known := e.roster.Member(string(val))
		return (t == model.TagOwner || t == model.TagInvolved) && known
	case model.LocationKey:
		_, known := e.roster.Place(string(val))
		return t == model.TagLocation && known
	case model.Minutes:
		return t == model.TagTransport && val > 0
	case model.Priority:
		return t == model.TagPriority && val.Valid()
	case model.Recurrence:
		return t == model.TagRecurring && val.Valid() && val != model.RecurrenceNone
	case model.Weekdays:
		if t != model.TagRecurring || len(val) == 0 {
			return false
		}
		for _, d := range val {
			if d < 0 || d > 6 {
				return false
			}
		}
		return true
	}
	return false
}

// rewrite tries, in order: the tag's recorded span, a category search over all
// candidates, a category-specific replace or append, and a literal swap of the
// display text. If all of them miss the text is returned as is.
func (e *Engine) rewrite(a *analysis, tag model.ExtractedTag, v model.Value) string {
	raw := a.raw

	sp, ok := validSpan(tag.Source, raw)
	if !ok {
		sp, ok = a.fallbackSpan(tag)
	}
	if ok {
		affix := raw[sp.Start:sp.PayloadStart]
		payload := raw[sp.PayloadStart:sp.PayloadEnd]
		return raw[:sp.PayloadStart] + e.render(a.lang, tag, v, affix, payload) + raw[sp.PayloadEnd:]
	}

	switch val := v.(type) {
	case model.Minutes:
		return appendClause(raw, driveClause(a.lang, int(val)))
	case model.TimeBucket:
		// A bucket inferred from a date replaces the whole date phrase.
		if sp, ok := detectionSpan(a.scan.dateText, raw); ok {
			return raw[:sp.Start] + bucketPhrase(a.lang, val) + raw[sp.End:]
		}
		return appendClause(raw, bucketPhrase(a.lang, val))
	}

	if tag.DisplayText != "" && strings.Contains(raw, tag.DisplayText) {
		return strings.Replace(raw, tag.DisplayText, e.display(a.lang, v), 1)
	}
	return raw
}

func validSpan(sp *model.Span, raw string) (model.Span, bool) {
	if sp == nil {
		return model.Span{}, false
	}
	ok := sp.Start >= 0 &&
		sp.Start <= sp.PayloadStart &&
		sp.PayloadStart < sp.PayloadEnd &&
		sp.PayloadEnd <= sp.End &&
		sp.End <= len(raw)
	return *sp, ok
}

// fallbackSpan searches every scanned candidate, including ones the resolver dropped.
func (a *analysis) fallbackSpan(tag model.ExtractedTag) (model.Span, bool) {
	var pred func(model.Match) bool
	switch tag.Type {
	case model.TagTime:
		pred = valueIs(model.CategoryTime, nil)
	case model.TagTimeBucket:
		pred = valueIs(model.CategoryTimeBucket, nil)
	case model.TagPriority:
		pred = valueIs(model.CategoryPriority, nil)
	case model.TagOwner, model.TagInvolved:
		pred = valueIs(model.CategoryFamilyMember, tag.Value)
	case model.TagLocation:
		pred = valueIs(model.CategoryLocation, tag.Value)
	case model.TagTransport:
		return detectionSpan(a.scan.drive, a.raw)
	case model.TagRecurring:
		if _, ok := tag.Value.(model.Weekdays); ok {
			return detectionSpan(a.scan.weekdays, a.raw)
		}
		for _, d := range a.scan.recurrence {
			if d.Value == tag.Value {
				return detectionSpan(&d, a.raw)
			}
		}
		return model.Span{}, false
	default:
		return model.Span{}, false
	}

	if sp, _ := firstMatch(a.scan.matches, pred); sp != nil {
		return validSpan(sp, a.raw)
	}
	return model.Span{}, false
}

func detectionSpan(d *detection, raw string) (model.Span, bool) {
	return validSpan(spanOf(d), raw)
}

func appendClause(raw, clause string) string {
	raw = strings.TrimRight(raw, " ")
	if raw == "" {
		return clause
	}
	return raw + " " + clause
}

// render is the payload text for v; the affix in front of it is kept by the caller.
func (e *Engine) render(lang model.Language, tag model.ExtractedTag, v model.Value, affix, payload string) string {
	switch val := v.(type) {
	case model.ClockTime:
		return timePhrase(lang, val, tag.Words, affix, payload)
	case model.PersonRef:
		if m, ok := e.roster.Member(string(val)); ok {
			return memberName(lang, m)
		}
	case model.LocationKey:
		if p, ok := e.roster.Place(string(val)); ok {
			return placeName(lang, p)
		}
	case model.TimeBucket:
		return bucketPhrase(lang, val)
	case model.Priority:
		return string(val)
	case model.Minutes:
		return strconv.Itoa(int(val))
	case model.Recurrence:
		return recurrencePhrases[lang][val]
	case model.Weekdays:
		return weekdaysPhrase(lang, val)
	}
	return e.display(lang, v)
}
