// Package spokentime recognises clock times written as words or loose digits
// ("בשמונה וחצי בערב", "quarter to nine", "at 8") and renders times back into
// the same kind of phrase.
//
// Input is expected to be lower-cased and free of diacritics.
package spokentime

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"family-task-parser/pkg/textfold"
)

var grammars = map[string]*grammar{
	Hebrew:  newHebrewGrammar(),
	English: newEnglishGrammar(),
}

// Parse returns the highest-priority spoken time phrase in text. Unknown
// languages use the English grammar.
func Parse(text, lang string) (Result, bool) {
	g, ok := grammars[lang]
	if !ok {
		g = grammars[English]
	}

	for tier, patterns := range g.tiers {
		for _, p := range patterns {
			if res, ok := g.find(p, text); ok {
				res.Tier = tier + 1
				return res, true
			}
		}
	}
	return Result{}, false
}

// DayPart reads a time-of-day phrase ("בערב", "in the evening", "pm") at the
// start of rest and moves t into that part of the day. n is the number of
// bytes of rest the phrase occupies, leading spaces included.
func DayPart(t Time, rest, lang string) (Time, int, bool) {
	g, ok := grammars[lang]
	if !ok {
		g = grammars[English]
	}
	loc := g.contextRe.FindStringSubmatchIndex(rest)
	if loc == nil || !textfold.Isolated(rest, loc[2], loc[3]) {
		return t, 0, false
	}
	part := g.part(rest[loc[2]:loc[3]])
	if part == partNone {
		return t, 0, false
	}
	t.Hour = applyPart(t.Hour, part)
	return t, loc[1], true
}

func (g *grammar) find(p pattern, text string) (Result, bool) {
	for pos := 0; pos < len(text); {
		loc := p.re.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			return Result{}, false
		}
		for i := range loc {
			if loc[i] >= 0 {
				loc[i] += pos
			}
		}
		if res, ok := g.accept(p, text, loc); ok {
			return res, true
		}
		_, size := utf8.DecodeRuneInString(text[loc[0]:])
		if size == 0 {
			size = 1
		}
		pos = loc[0] + size
	}
	return Result{}, false
}

func (g *grammar) accept(p pattern, text string, loc []int) (Result, bool) {
	start, end := loc[0], loc[1]
	if !bounded(text, start, end) {
		return Result{}, false
	}
	if p.rejectContext && g.contextRe.MatchString(text[end:]) {
		return Result{}, false
	}
	if p.lead != nil && p.lead.MatchString(text[:start]) {
		return Result{}, false
	}

	group := func(name string) (string, int, bool) {
		idx := p.re.SubexpIndex(name)
		if idx < 0 || loc[2*idx] < 0 {
			return "", -1, false
		}
		return text[loc[2*idx]:loc[2*idx+1]], loc[2*idx], true
	}

	hourToken, _, ok := group("h")
	if !ok {
		return Result{}, false
	}
	hour, words, ok := g.hour(hourToken)
	if !ok {
		return Result{}, false
	}

	minute := p.minute
	if minute < 0 {
		mod, _, _ := group("mod")
		minute = g.mods[strings.TrimSpace(mod)]
	}

	if p.hourOffset != 0 {
		hour += p.hourOffset
		if hour <= 0 {
			hour += 12
		}
	}

	if ctxToken, _, ok := group("ctx"); ok {
		hour = applyPart(hour, g.part(ctxToken))
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Result{}, false
	}

	payloadStart := start
	if prep, at, ok := group("prep"); ok {
		payloadStart = at + len(prep)
	}

	return Result{
		Time:         Time{Hour: hour, Minute: minute},
		Text:         text[start:end],
		Start:        start,
		End:          end,
		PayloadStart: payloadStart,
		Words:        words,
	}, true
}

func (g *grammar) hour(token string) (int, bool, bool) {
	if n, err := strconv.Atoi(token); err == nil {
		return n, false, n >= 0 && n <= 23
	}
	n, ok := g.hours[strings.Join(strings.Fields(token), " ")]
	return n, true, ok
}

func applyPart(hour int, part dayPart) int {
	switch part {
	case partAfternoon, partEvening, partPM:
		if hour < 12 {
			return hour + 12
		}
	case partAM:
		if hour == 12 {
			return 0
		}
	case partNight:
		if hour == 12 {
			return 0
		}
		if hour >= 6 && hour <= 11 {
			return hour + 12
		}
	}
	return hour
}

// bounded reports whether text[start:end] stands alone and is not the tail of a
// hyphenated compound such as "forty-five".
func bounded(text string, start, end int) bool {
	if !textfold.Isolated(text, start, end) {
		return false
	}
	return !strings.HasSuffix(text[:start], "-")
}
