// Package textfold lower-cases text and strips combining marks (Hebrew niqqud,
// Latin accents) while remembering where every folded byte came from, so matches
// found on the folded text can be mapped back onto the original string.
package textfold

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Folded is a folded copy of a source string with a byte-level offset map.
type Folded struct {
	Text   string
	source string
	// starts[i] is the source offset of the rune that produced folded byte i.
	starts []int
	// ends[i] is the source offset just past that rune and any marks dropped after it.
	ends []int
}

// Fold folds s.
func Fold(s string) Folded {
	var b strings.Builder
	b.Grow(len(s))
	starts := make([]int, 0, len(s))
	ends := make([]int, 0, len(s))

	lastEmitted := -1
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		f := foldRune(r)
		if f == "" {
			// Dropped mark: attach it to the previous visible rune.
			if lastEmitted >= 0 {
				for j := lastEmitted; j < len(ends); j++ {
					ends[j] = i + size
				}
			}
			i += size
			continue
		}
		lastEmitted = len(starts)
		b.WriteString(f)
		for range len(f) {
			starts = append(starts, i)
			ends = append(ends, i+size)
		}
		i += size
	}

	return Folded{Text: b.String(), source: s, starts: starts, ends: ends}
}

// Source returns the original string.
func (f Folded) Source() string {
	return f.source
}

// Start maps a folded offset to the source offset where that byte's rune begins.
func (f Folded) Start(i int) int {
	if i >= len(f.starts) {
		return len(f.source)
	}
	if i < 0 {
		return 0
	}
	return f.starts[i]
}

// End maps an exclusive folded end offset to an exclusive source end offset.
func (f Folded) End(i int) int {
	if i <= 0 {
		return 0
	}
	if i > len(f.ends) {
		return len(f.source)
	}
	return f.ends[i-1]
}

// Span maps a folded [start,end) range back to the source.
func (f Folded) Span(start, end int) (int, int) {
	return f.Start(start), f.End(end)
}

var stripMarks = runes.Remove(runes.In(unicode.Mn))

func foldRune(r rune) string {
	if unicode.Is(unicode.Mn, r) {
		return ""
	}
	out, _, err := transform.String(transform.Chain(norm.NFD, stripMarks, norm.NFC), string(r))
	if err != nil {
		out = string(r)
	}
	return strings.ToLower(out)
}

// String folds s without keeping offsets. Used to normalise roster keywords.
func String(s string) string {
	return Fold(s).Text
}

// Isolated reports whether s[start:end] stands on its own: the runes around it are
// not letters or digits, and a digit at either edge does not run into a numeric
// time or date ("12:30", "3/4", "1.5").
func Isolated(s string, start, end int) bool {
	if start > 0 {
		prev, _ := utf8.DecodeLastRuneInString(s[:start])
		if unicode.IsLetter(prev) || unicode.IsDigit(prev) {
			return false
		}
		if isDigitAt(s, start) && isNumericJoiner(prev) && isDigitBefore(s, start-utf8.RuneLen(prev)) {
			return false
		}
	}
	if end < len(s) {
		next, size := utf8.DecodeRuneInString(s[end:])
		if unicode.IsLetter(next) || unicode.IsDigit(next) {
			return false
		}
		if isDigitAt(s, end-1) && isNumericJoiner(next) && isDigitAt(s, end+size) {
			return false
		}
	}
	return true
}

func isNumericJoiner(r rune) bool {
	return r == ':' || r == '/' || r == '.'
}

func isDigitAt(s string, i int) bool {
	return i >= 0 && i < len(s) && s[i] >= '0' && s[i] <= '9'
}

func isDigitBefore(s string, i int) bool {
	return isDigitAt(s, i-1)
}
