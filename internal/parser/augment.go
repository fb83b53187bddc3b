package parser

import (
	"slices"
	"strings"

	"family-task-parser/internal/model"
)

// Hints are task facts found outside the text, for example by a language model.
type Hints struct {
	Members  []string
	Location string
	Time     *model.ClockTime
}

// Augment appends a clause for every hint task does not already carry, then
// re-parses. Hints naming members or places missing from the roster are ignored.
func (e *Engine) Augment(task model.ParsedTask, h Hints) model.ParsedTask {
	lang := DetectLanguage(task.RawText)
	var clauses []string

	var names []string
	for _, name := range h.Members {
		m, ok := e.roster.Member(name)
		if !ok || name == task.Owner || slices.Contains(task.InvolvedMembers, name) {
			continue
		}
		if n := memberName(lang, m); !slices.Contains(names, n) {
			names = append(names, n)
		}
	}
	if len(names) > 0 {
		clauses = append(clauses, withClause(lang, names))
	}

	if p, ok := e.roster.Place(h.Location); ok && task.Location == "" {
		clauses = append(clauses, placeClause(lang, placeName(lang, p)))
	}

	if h.Time != nil && h.Time.Valid() && task.SpecificTime == nil {
		clauses = append(clauses, timeClause(lang, *h.Time))
	}

	if len(clauses) == 0 {
		return task
	}
	return e.Parse(appendClause(task.RawText, strings.Join(clauses, " ")))
}

func withClause(lang model.Language, names []string) string {
	if lang == model.LanguageHebrew {
		return "עם " + joinNames(names, ", ", " ו")
	}
	return "with " + joinNames(names, ", ", " and ")
}

func joinNames(names []string, sep, last string) string {
	if len(names) == 1 {
		return names[0]
	}
	return strings.Join(names[:len(names)-1], sep) + last + names[len(names)-1]
}

func placeClause(lang model.Language, name string) string {
	if lang == model.LanguageHebrew {
		return "ב" + name
	}
	return "at " + name
}

func timeClause(lang model.Language, t model.ClockTime) string {
	if lang == model.LanguageHebrew {
		return "בשעה " + clockDigits(t)
	}
	return "at " + clockDigits(t)
}
