package parser

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"family-task-parser/internal/model"
	"family-task-parser/pkg/textfold"
)

// lexicon is a closed keyword set compiled into one alternation. Groups: affix, body.
// Keys of values are folded, single-spaced keywords.
type lexicon struct {
	re     *regexp.Regexp
	values map[string]model.Value
}

func newLexicon(affix string, entries map[string]model.Value) lexicon {
	values := make(map[string]model.Value, len(entries))
	for k, v := range entries {
		key := normalizeKey(k)
		if key == "" {
			continue
		}
		if _, dup := values[key]; dup {
			continue
		}
		values[key] = v
	}
	if len(values) == 0 {
		return lexicon{values: values}
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	expr := `(?P<affix>` + affix + `)(?P<body>` + alternation(keys) + `)`
	return lexicon{re: regexp.MustCompile(expr), values: values}
}

// rosterLexicon keeps the first spelling owner on collisions, in roster order.
func rosterLexicon(affix string, spellings [][]string, values []model.Value) lexicon {
	entries := make(map[string]model.Value)
	for i, list := range spellings {
		for _, s := range list {
			key := normalizeKey(s)
			if _, taken := entries[key]; !taken {
				entries[key] = values[i]
			}
		}
	}
	return newLexicon(affix, entries)
}

func (l lexicon) lookup(body string) (model.Value, bool) {
	v, ok := l.values[normalizeKey(body)]
	return v, ok
}

func normalizeKey(s string) string {
	return strings.Join(strings.Fields(textfold.String(s)), " ")
}

// alternation builds a longest-first regexp alternation; spaces match any run of
// whitespace.
func alternation(words []string) string {
	sorted := append([]string(nil), words...)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})
	parts := make([]string, len(sorted))
	for i, w := range sorted {
		fields := strings.Fields(w)
		for j, f := range fields {
			fields[j] = regexp.QuoteMeta(f)
		}
		parts[i] = strings.Join(fields, `\s+`)
	}
	return strings.Join(parts, "|")
}

func flags(words ...string) map[string]model.Value {
	out := make(map[string]model.Value, len(words))
	for _, w := range words {
		out[w] = model.Flag(true)
	}
	return out
}

// vocabulary is the fixed, roster-independent word list of one language.
type vocabulary struct {
	memberAffix string
	placeAffix  string
	bucketAffix string
	wordAffix   string
	clockAffix  string

	buckets    map[string]model.Value
	transport  []string
	reminder   []string
	task       []string
	recurrence map[string]model.Value
	// weekdays maps folded day names (any inflection found in phrases) to indexes.
	weekdays map[string]time.Weekday

	weekdayPhrase string
	singleDay     string
	driveDuration string
	numericDate   string
	dayAfter      []string
	// relativeDate matches "in <n> <unit>" with groups n and unit, or a bare
	// "yesterday" without them.
	relativeDate string
	dateUnits    map[string]dateUnit
}

// dateUnit is a folded unit word as an English duration unit. count is used when
// the phrase has no number ("בעוד שבועיים", "in a week").
type dateUnit struct {
	name  string
	count int
}

// library holds every compiled matcher for one language and roster. It carries no
// scan state and is shared by concurrent parses.
type library struct {
	lang model.Language

	priority   *regexp.Regexp
	buckets    lexicon
	members    lexicon
	places     lexicon
	clock      *regexp.Regexp
	transport  lexicon
	reminder   lexicon
	task       lexicon
	recurrence lexicon

	weekdayPhrase *regexp.Regexp
	weekdayName   *regexp.Regexp
	weekdays      map[string]time.Weekday
	singleDay     *regexp.Regexp
	driveDuration *regexp.Regexp
	isoDate       *regexp.Regexp
	numericDate   *regexp.Regexp
	dayAfter      lexicon
	relativeDate  *regexp.Regexp
	dateUnits     map[string]dateUnit
}

var (
	priorityRe = regexp.MustCompile(`(?P<affix>)(?P<body>p[1-3])`)
	isoDateRe  = regexp.MustCompile(`(?P<y>\d{4})-(?P<m>\d{1,2})-(?P<d>\d{1,2})`)
)

const clockBody = `(?P<body>(?P<h>\d{1,2}):(?P<min>\d{2})(?:\s*(?P<ampm>a\.?m\.?|p\.?m\.?))?)`

func newLibrary(lang model.Language, roster model.Roster) *library {
	v := vocabularies[lang]

	memberSpellings := make([][]string, len(roster.Members))
	memberValues := make([]model.Value, len(roster.Members))
	for i, m := range roster.Members {
		memberSpellings[i] = m.Spellings()
		memberValues[i] = model.PersonRef(m.Name)
	}
	placeSpellings := make([][]string, len(roster.Places))
	placeValues := make([]model.Value, len(roster.Places))
	for i, p := range roster.Places {
		placeSpellings[i] = p.Spellings()
		placeValues[i] = model.LocationKey(p.Key)
	}

	dayNames := make([]string, 0, len(v.weekdays))
	for name := range v.weekdays {
		dayNames = append(dayNames, name)
	}

	return &library{
		lang:       lang,
		priority:   priorityRe,
		buckets:    newLexicon(v.bucketAffix, v.buckets),
		members:    rosterLexicon(v.memberAffix, memberSpellings, memberValues),
		places:     rosterLexicon(v.placeAffix, placeSpellings, placeValues),
		clock:      regexp.MustCompile(`(?P<affix>` + v.clockAffix + `)` + clockBody),
		transport:  newLexicon(v.wordAffix, flags(v.transport...)),
		reminder:   newLexicon(v.wordAffix, flags(v.reminder...)),
		task:       newLexicon(v.wordAffix, flags(v.task...)),
		recurrence: newLexicon(v.wordAffix, v.recurrence),

		weekdayPhrase: regexp.MustCompile(v.weekdayPhrase),
		weekdayName:   regexp.MustCompile(alternation(dayNames)),
		weekdays:      v.weekdays,
		singleDay:     regexp.MustCompile(v.singleDay),
		driveDuration: regexp.MustCompile(v.driveDuration),
		isoDate:       isoDateRe,
		numericDate:   regexp.MustCompile(v.numericDate),
		dayAfter:      newLexicon(v.wordAffix, flags(v.dayAfter...)),
		relativeDate:  regexp.MustCompile(v.relativeDate),
		dateUnits:     v.dateUnits,
	}
}

var vocabularies = map[model.Language]vocabulary{
	model.LanguageHebrew:  hebrew,
	model.LanguageEnglish: english,
}
