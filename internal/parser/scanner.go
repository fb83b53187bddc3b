package parser

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"family-task-parser/internal/model"
	"family-task-parser/pkg/datemath"
	"family-task-parser/pkg/spokentime"
	"family-task-parser/pkg/textfold"
)

// detection is a non-spanned finding. Its span is kept so edits can find it again.
type detection struct {
	model.Span
	Text  string
	Value model.Value
}

type scanResult struct {
	// matches holds every spanned candidate in scan order, before resolution.
	matches    []model.Match
	transport  *detection
	reminder   bool
	task       bool
	recurrence []detection
	weekdays   *detection
	drive      *detection
	date       *time.Time
	// dateText is the phrase date was read from.
	dateText   *detection
}

// scan is one pass over a folded input. Cursors are local to each walk.
type scan struct {
	lib   *library
	f     textfold.Folded
	now   time.Time
	dates *datemath.Parser
	out   scanResult
}

func (l *library) scan(f textfold.Folded, now time.Time, dates *datemath.Parser) scanResult {
	s := &scan{lib: l, f: f, now: now, dates: dates}

	// Non-spanned detections first: some of them veto spanned candidates.
	s.scanWeekdays()
	s.scanRecurrence()
	s.scanFlags()
	s.scanDriveDuration()
	dayAfter := s.scanDate()

	s.scanPriority()
	s.scanBuckets(dayAfter)
	s.scanLexicon(l.members, model.CategoryFamilyMember)
	s.scanLexicon(l.places, model.CategoryLocation)
	s.scanClock()

	return s.out
}

// each walks the isolated, non-overlapping matches of re from left to right.
// A rejected candidate moves the cursor forward by one rune.
func each(re *regexp.Regexp, text string, accept func(loc []int) bool) {
	if re == nil {
		return
	}
	for pos := 0; pos < len(text); {
		loc := re.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			return
		}
		for i := range loc {
			if loc[i] >= 0 {
				loc[i] += pos
			}
		}
		if loc[1] > loc[0] && textfold.Isolated(text, loc[0], loc[1]) && accept(loc) {
			pos = loc[1]
			continue
		}
		_, size := utf8.DecodeRuneInString(text[loc[0]:])
		pos = loc[0] + max(size, 1)
	}
}

// group returns the named submatch and its folded offsets.
func group(re *regexp.Regexp, text string, loc []int, name string) (string, int, int, bool) {
	idx := re.SubexpIndex(name)
	if idx < 0 || 2*idx+1 >= len(loc) || loc[2*idx] < 0 {
		return "", -1, -1, false
	}
	return text[loc[2*idx]:loc[2*idx+1]], loc[2*idx], loc[2*idx+1], true
}

// span maps a folded match to source offsets; the body group, when present, is the payload.
func (s *scan) span(re *regexp.Regexp, loc []int) model.Span {
	payloadStart, payloadEnd := loc[0], loc[1]
	if _, bs, be, ok := group(re, s.f.Text, loc, "body"); ok && be > bs {
		payloadStart, payloadEnd = bs, be
	}
	start, end := s.f.Span(loc[0], loc[1])
	return model.Span{
		Start:        start,
		End:          end,
		PayloadStart: s.f.Start(payloadStart),
		PayloadEnd:   s.f.End(payloadEnd),
	}
}

func (s *scan) source(sp model.Span) string {
	return s.f.Source()[sp.Start:sp.End]
}

func (s *scan) addMatch(sp model.Span, c model.Category, v model.Value, words bool) {
	s.out.matches = append(s.out.matches, model.Match{
		Span:     sp,
		Category: c,
		Value:    v,
		Text:     s.source(sp),
		Words:    words,
	})
}

func (s *scan) detect(re *regexp.Regexp, loc []int, v model.Value) *detection {
	sp := s.span(re, loc)
	return &detection{Span: sp, Text: s.source(sp), Value: v}
}

func (s *scan) scanPriority() {
	re := s.lib.priority
	each(re, s.f.Text, func(loc []int) bool {
		body, _, _, _ := group(re, s.f.Text, loc, "body")
		s.addMatch(s.span(re, loc), model.CategoryPriority, model.Priority(strings.ToUpper(body)), false)
		return true
	})
}

func (s *scan) scanBuckets(veto []int) {
	re := s.lib.buckets.re
	each(re, s.f.Text, func(loc []int) bool {
		if veto != nil && loc[0] < veto[1] && veto[0] < loc[1] {
			return false
		}
		body, _, _, _ := group(re, s.f.Text, loc, "body")
		v, ok := s.lib.buckets.lookup(body)
		if !ok {
			return false
		}
		s.addMatch(s.span(re, loc), model.CategoryTimeBucket, v, false)
		return true
	})
}

func (s *scan) scanLexicon(lex lexicon, c model.Category) {
	each(lex.re, s.f.Text, func(loc []int) bool {
		body, _, _, _ := group(lex.re, s.f.Text, loc, "body")
		v, ok := lex.lookup(body)
		if !ok {
			return false
		}
		s.addMatch(s.span(lex.re, loc), c, v, false)
		return true
	})
}

func (s *scan) scanClock() {
	re := s.lib.clock
	found := false
	each(re, s.f.Text, func(loc []int) bool {
		hs, _, _, _ := group(re, s.f.Text, loc, "h")
		ms, _, _, _ := group(re, s.f.Text, loc, "min")
		hour, _ := strconv.Atoi(hs)
		minute, _ := strconv.Atoi(ms)
		if ampm, _, _, ok := group(re, s.f.Text, loc, "ampm"); ok {
			switch strings.ReplaceAll(ampm, ".", "") {
			case "pm":
				if hour < 12 {
					hour += 12
				}
			case "am":
				if hour == 12 {
					hour = 0
				}
			}
		} else if pt, n, ok := spokentime.DayPart(spokentime.Time{Hour: hour, Minute: minute}, s.f.Text[loc[1]:], string(s.lib.lang)); ok {
			// "8:00 בערב": the day part belongs to the time's payload.
			hour = pt.Hour
			loc[1] += n
			if body := re.SubexpIndex("body"); body >= 0 {
				loc[2*body+1] = loc[1]
			}
		}
		t := model.ClockTime{Hour: hour, Minute: minute}
		if !t.Valid() {
			return false
		}
		s.addMatch(s.span(re, loc), model.CategoryTime, t, false)
		found = true
		return true
	})
	if found {
		return
	}

	res, ok := spokentime.Parse(s.f.Text, string(s.lib.lang))
	if !ok {
		return
	}
	start, end := s.f.Span(res.Start, res.End)
	sp := model.Span{Start: start, End: end, PayloadStart: s.f.Start(res.PayloadStart), PayloadEnd: end}
	s.addMatch(sp, model.CategoryTime, model.ClockTime{Hour: res.Time.Hour, Minute: res.Time.Minute}, res.Words)
}

func (s *scan) scanWeekdays() {
	re := s.lib.weekdayPhrase
	each(re, s.f.Text, func(loc []int) bool {
		if s.out.weekdays != nil {
			return true
		}
		phrase := s.f.Text[loc[0]:loc[1]]
		var days model.Weekdays
		for _, name := range s.lib.weekdayName.FindAllString(phrase, -1) {
			d, ok := s.lib.weekdays[name]
			if ok && !slices.Contains(days, int(d)) {
				days = append(days, int(d))
			}
		}
		if len(days) == 0 {
			return false
		}
		slices.Sort(days)
		s.out.weekdays = s.detect(re, loc, days)
		return true
	})
}

func (s *scan) scanRecurrence() {
	re := s.lib.recurrence.re
	each(re, s.f.Text, func(loc []int) bool {
		sp := s.span(re, loc)
		if w := s.out.weekdays; w != nil && sp.Start < w.End && w.Start < sp.End {
			return false
		}
		body, _, _, _ := group(re, s.f.Text, loc, "body")
		v, ok := s.lib.recurrence.lookup(body)
		if !ok {
			return false
		}
		s.out.recurrence = append(s.out.recurrence, detection{Span: sp, Text: s.source(sp), Value: v})
		return true
	})
}

func (s *scan) scanFlags() {
	first := func(lex lexicon) *detection {
		var d *detection
		each(lex.re, s.f.Text, func(loc []int) bool {
			if d == nil {
				d = s.detect(lex.re, loc, model.Flag(true))
			}
			return true
		})
		return d
	}
	s.out.transport = first(s.lib.transport)
	s.out.reminder = first(s.lib.reminder) != nil
	s.out.task = first(s.lib.task) != nil
}

func (s *scan) scanDriveDuration() {
	re := s.lib.driveDuration
	each(re, s.f.Text, func(loc []int) bool {
		if s.out.drive != nil {
			return true
		}
		body, _, _, _ := group(re, s.f.Text, loc, "body")
		n, err := strconv.Atoi(body)
		if err != nil || n <= 0 {
			return false
		}
		s.out.drive = s.detect(re, loc, model.Minutes(n))
		return true
	})
}

// scanDate resolves the first explicit date. It returns the folded range of a
// "day after tomorrow" phrase so the bucket scan does not read "tomorrow" in it.
func (s *scan) scanDate() []int {
	today := s.dates.StartOfDay(s.now)

	var dayAfter []int
	each(s.lib.dayAfter.re, s.f.Text, func(loc []int) bool {
		if dayAfter == nil {
			dayAfter = loc
		}
		return true
	})

	found := func(d time.Time, re *regexp.Regexp, loc []int) {
		s.out.date = &d
		s.out.dateText = s.detect(re, loc, nil)
	}

	if d, loc, ok := s.calendarDate(s.lib.isoDate, today); ok {
		found(d, s.lib.isoDate, loc)
		return dayAfter
	}
	if d, loc, ok := s.calendarDate(s.lib.numericDate, today); ok {
		found(d, s.lib.numericDate, loc)
		return dayAfter
	}
	if dayAfter != nil {
		if d, err := s.dates.Parse("day after tomorrow", s.now); err == nil {
			found(d, s.lib.dayAfter.re, dayAfter)
		}
		return dayAfter
	}
	if d, loc, ok := s.relativeDate(); ok {
		found(d, s.lib.relativeDate, loc)
		return nil
	}
	if s.out.weekdays != nil {
		return nil
	}

	re := s.lib.singleDay
	each(re, s.f.Text, func(loc []int) bool {
		if s.out.date != nil {
			return true
		}
		body, _, _, _ := group(re, s.f.Text, loc, "body")
		day, ok := s.lib.weekdays[body]
		if !ok {
			return false
		}
		affix, _, _, _ := group(re, s.f.Text, loc, "affix")
		if s.lib.lang == model.LanguageHebrew && day != time.Saturday && !strings.Contains(affix, "יום") {
			return false
		}
		d := s.dates.Upcoming(day, s.now, true)
		if strings.HasPrefix(affix, "next") {
			var err error
			if d, err = s.dates.Parse("next "+day.String(), s.now); err != nil {
				return false
			}
		}
		found(d, re, loc)
		return true
	})
	return nil
}

// relativeDate reads "in 3 days", "בעוד שבועיים" or "yesterday" as a date.
func (s *scan) relativeDate() (time.Time, []int, bool) {
	re := s.lib.relativeDate
	var (
		out   time.Time
		at    []int
		found bool
	)
	each(re, s.f.Text, func(loc []int) bool {
		if found {
			return true
		}
		phrase := "yesterday"
		if unit, _, _, ok := group(re, s.f.Text, loc, "unit"); ok {
			u, ok := s.lib.dateUnits[unit]
			if !ok {
				return false
			}
			n := u.count
			if ns, _, _, ok := group(re, s.f.Text, loc, "n"); ok {
				if v, err := strconv.Atoi(ns); err == nil {
					n = v
				}
			}
			if n <= 0 {
				return false
			}
			phrase = "in " + strconv.Itoa(n) + " " + u.name
		}
		d, err := s.dates.Parse(phrase, s.now)
		if err != nil {
			return false
		}
		out, at, found = d, loc, true
		return true
	})
	return out, at, found
}

func (s *scan) calendarDate(re *regexp.Regexp, today time.Time) (time.Time, []int, bool) {
	var (
		out   time.Time
		at    []int
		found bool
	)
	each(re, s.f.Text, func(loc []int) bool {
		if found {
			return true
		}
		ds, _, _, _ := group(re, s.f.Text, loc, "d")
		ms, _, _, _ := group(re, s.f.Text, loc, "m")
		ys, _, _, hasYear := group(re, s.f.Text, loc, "y")
		day, _ := strconv.Atoi(ds)
		month, _ := strconv.Atoi(ms)
		year := today.Year()
		if hasYear {
			year, _ = strconv.Atoi(ys)
			if year < 100 {
				year += 2000
			}
		}
		d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, today.Location())
		if d.Day() != day || int(d.Month()) != month {
			return false
		}
		if !hasYear && d.Before(today) {
			d = d.AddDate(1, 0, 0)
		}
		out, at, found = d, loc, true
		return true
	})
	return out, at, found
}
