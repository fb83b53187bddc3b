// Package transcript cleans speech-to-text output before it is parsed.
package transcript

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"family-task-parser/pkg/textfold"
)

// Defaults are spoken forms the recogniser commonly writes out instead of the token.
var Defaults = map[string]string{
	"פי 1":       "P1",
	"פי 2":       "P2",
	"פי 3":       "P3",
	"פי אחת":     "P1",
	"פי שתיים":   "P2",
	"פי שלוש":    "P3",
	"p one":      "P1",
	"p two":      "P2",
	"p three":    "P3",
	"priority 1": "P1",
	"priority 2": "P2",
	"priority 3": "P3",
}

// Correction is one substitution applied to a transcript.
type Correction struct {
	Original  string `json:"original"`
	Corrected string `json:"corrected"`
	Start     int    `json:"start"`
}

// Corrector replaces whole-word mistakes with their corrections. Matching ignores
// case and diacritics. A Corrector is immutable and safe for concurrent use.
type Corrector struct {
	re      *regexp.Regexp
	replace map[string]string
}

// New builds a Corrector from Defaults overlaid with extra.
func New(extra map[string]string) *Corrector {
	table := make(map[string]string, len(Defaults)+len(extra))
	for k, v := range Defaults {
		table[key(k)] = v
	}
	for k, v := range extra {
		if k := key(k); k != "" {
			table[k] = v
		}
	}

	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	c := &Corrector{replace: table}
	if len(keys) == 0 {
		return c
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strings.ReplaceAll(regexp.QuoteMeta(k), " ", `\s+`)
	}
	c.re = regexp.MustCompile(strings.Join(parts, "|"))
	return c
}

func key(s string) string {
	return strings.Join(strings.Fields(textfold.String(s)), " ")
}

// Correct returns text with every isolated mistake replaced, and the substitutions made.
// Text with no mistakes is returned unchanged with an empty, non-nil slice.
func (c *Corrector) Correct(text string) (string, []Correction) {
	applied := []Correction{}
	if c.re == nil || text == "" {
		return text, applied
	}

	f := textfold.Fold(text)
	folded := f.Text

	var sb strings.Builder
	last, pos := 0, 0
	for pos < len(folded) {
		loc := c.re.FindStringIndex(folded[pos:])
		if loc == nil {
			break
		}
		start, end := loc[0]+pos, loc[1]+pos
		if !textfold.Isolated(folded, start, end) {
			_, size := utf8.DecodeRuneInString(folded[start:])
			pos = start + size
			continue
		}

		correction := c.replace[key(folded[start:end])]
		srcStart, srcEnd := f.Span(start, end)
		sb.WriteString(text[last:srcStart])
		sb.WriteString(correction)
		applied = append(applied, Correction{
			Original:  text[srcStart:srcEnd],
			Corrected: correction,
			Start:     srcStart,
		})
		last, pos = srcEnd, end
	}
	sb.WriteString(text[last:])
	return sb.String(), applied
}
