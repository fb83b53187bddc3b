package spokentime

import (
	"regexp"
	"sort"
	"strings"
)

// pattern is one phrasing inside a tier. Named groups: prep, h, mod, ctx.
type pattern struct {
	re *regexp.Regexp
	// minute is fixed for the phrasing, or -1 to read it from the mod group.
	minute int
	// hourOffset is -1 for "quarter to H" phrasings.
	hourOffset int
	// rejectContext skips candidates directly followed by a time-of-day word.
	rejectContext bool
	// lead, when set, rejects candidates whose preceding text matches it.
	lead *regexp.Regexp
}

type grammar struct {
	tiers     [][]pattern
	hours     map[string]int
	mods      map[string]int
	parts     map[string]dayPart
	contextRe *regexp.Regexp
}

var hebrewHours = map[string]int{
	"אחת": 1, "אחד": 1,
	"שתיים": 2, "שתים": 2, "שניים": 2,
	"שלוש": 3, "שלש": 3,
	"ארבע": 4,
	"חמש":  5,
	"שש":   6,
	"שבע":  7,
	"שמונה": 8,
	"תשע":   9,
	"עשר":   10,
	"אחת עשרה": 11, "אחת-עשרה": 11,
	"שתים עשרה": 12, "שתיים עשרה": 12, "שתים-עשרה": 12,
}

var hebrewParts = map[string]dayPart{
	"בבוקר":        partMorning,
	"לפנות בוקר":   partMorning,
	"בצהריים":      partAfternoon,
	"בצהרים":       partAfternoon,
	"אחר הצהריים":  partAfternoon,
	"אחרי הצהריים": partAfternoon,
	`אחה"צ`:        partAfternoon,
	"אחה״צ":        partAfternoon,
	"בערב":         partEvening,
	"בלילה":        partNight,
}

var englishHours = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
	"seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12,
}

var englishParts = map[string]dayPart{
	"am":               partAM,
	"pm":               partPM,
	"in the morning":   partMorning,
	"in the afternoon": partAfternoon,
	"in the evening":   partEvening,
	"at night":         partNight,
}

func alternation(words []string) string {
	sorted := append([]string(nil), words...)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})
	quoted := make([]string, len(sorted))
	for i, w := range sorted {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(quoted, "|")
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func newHebrewGrammar() *grammar {
	num := `(?P<h>\d{1,2}|` + alternation(keys(hebrewHours)) + `)`
	ctx := `(?P<ctx>` + alternation(keys(hebrewParts)) + `)`
	prepOpt := `(?P<prep>(?:ו?בשעה\s*|ו?ב-?|עד\s*|סביב\s*))?`
	prepReq := `(?P<prep>(?:ו?בשעה\s*|ו?ב-?|עד\s*|סביב\s*))`

	mk := func(expr string) *regexp.Regexp { return regexp.MustCompile(expr) }

	return &grammar{
		hours:     hebrewHours,
		mods:      map[string]int{"וחצי": 30, "ורבע": 15},
		parts:     hebrewParts,
		contextRe: mk(`^\s*(` + alternation(keys(hebrewParts)) + `)`),
		tiers: [][]pattern{
			// 1. number + time of day
			{
				{re: mk(prepOpt + num + `\s+` + ctx), minute: 0},
			},
			// 2. modifiers without time of day
			{
				{re: mk(prepOpt + num + `\s+ו?רבע\s+ל-?(?:\d{1,2}|` + alternation(keys(hebrewHours)) + `)`), minute: 45, rejectContext: true},
				{re: mk(prepOpt + `רבע\s+ל-?` + num), minute: 45, hourOffset: -1, rejectContext: true},
				{re: mk(prepOpt + num + `\s+(?P<mod>וחצי|ורבע)`), minute: -1, rejectContext: true},
			},
			// 3. modifier + time of day
			{
				{re: mk(prepOpt + `רבע\s+ל-?` + num + `\s+` + ctx), minute: 45, hourOffset: -1},
				{re: mk(prepOpt + num + `\s+(?P<mod>וחצי|ורבע)\s+` + ctx), minute: -1},
			},
			// 4. bare number after a preposition
			{
				{re: mk(prepReq + num), minute: 0},
			},
		},
	}
}

func newEnglishGrammar() *grammar {
	num := `(?P<h>\d{1,2}|` + alternation(keys(englishHours)) + `)`
	ctx := `(?P<ctx>a\.?m\.?|p\.?m\.?|in the morning|in the afternoon|in the evening|at night)`
	prepOpt := `(?P<prep>(?:at|by|around|@)\s*)?`
	prepReq := `(?P<prep>(?:at|by|around|@)\s*)`
	oclock := `(?:\s*o'?clock)?`
	// "quarter to nine pm" must not be read as "nine pm"
	modifierLead := regexp.MustCompile(`(?:quarter\s+(?:to|till|of|past|after)|half\s+past)\s*$`)

	mk := func(expr string) *regexp.Regexp { return regexp.MustCompile(expr) }

	return &grammar{
		hours:     englishHours,
		mods:      map[string]int{"thirty": 30, "fifteen": 15, "forty-five": 45, "forty five": 45},
		parts:     englishParts,
		contextRe: mk(`^\s*(a\.?m\.?|p\.?m\.?|in the morning|in the afternoon|in the evening|at night)`),
		tiers: [][]pattern{
			{
				{re: mk(prepOpt + num + oclock + `\s*` + ctx), minute: 0, lead: modifierLead},
			},
			{
				{re: mk(prepOpt + `quarter\s+(?:to|till|of)\s+` + num), minute: 45, hourOffset: -1, rejectContext: true},
				{re: mk(prepOpt + `half\s+past\s+` + num), minute: 30, rejectContext: true},
				{re: mk(prepOpt + `quarter\s+(?:past|after)\s+` + num), minute: 15, rejectContext: true},
				{re: mk(prepOpt + num + `\s+(?P<mod>thirty|fifteen|forty[- ]five)`), minute: -1, rejectContext: true},
			},
			{
				{re: mk(prepOpt + `quarter\s+(?:to|till|of)\s+` + num + `\s*` + ctx), minute: 45, hourOffset: -1},
				{re: mk(prepOpt + `half\s+past\s+` + num + `\s*` + ctx), minute: 30},
				{re: mk(prepOpt + `quarter\s+(?:past|after)\s+` + num + `\s*` + ctx), minute: 15},
				{re: mk(prepOpt + num + `\s+(?P<mod>thirty|fifteen|forty[- ]five)\s*` + ctx), minute: -1},
			},
			{
				{re: mk(prepReq + num + oclock), minute: 0},
				{re: mk(num + `\s*o'?clock`), minute: 0},
			},
		},
	}
}

func (g *grammar) part(token string) dayPart {
	token = strings.TrimSpace(token)
	if p, ok := g.parts[token]; ok {
		return p
	}
	// a.m. / p.m. spellings
	if p, ok := g.parts[strings.ReplaceAll(token, ".", "")]; ok {
		return p
	}
	return partNone
}
