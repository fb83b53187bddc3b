package parser

import (
	"fmt"
	"strconv"
	"strings"

	"family-task-parser/internal/model"
	"family-task-parser/pkg/spokentime"
	"family-task-parser/pkg/textfold"
)

var bucketLabels = map[model.Language]map[model.TimeBucket]string{
	model.LanguageHebrew: {
		model.BucketToday:    "היום",
		model.BucketTomorrow: "מחר",
		model.BucketThisWeek: "השבוע",
		model.BucketNextWeek: "שבוע הבא",
	},
	model.LanguageEnglish: {
		model.BucketToday:    "Today",
		model.BucketTomorrow: "Tomorrow",
		model.BucketThisWeek: "This week",
		model.BucketNextWeek: "Next week",
	},
}

var recurrenceLabels = map[model.Language]map[model.Recurrence]string{
	model.LanguageHebrew: {
		model.RecurrenceDaily:   "כל יום",
		model.RecurrenceWeekly:  "כל שבוע",
		model.RecurrenceMonthly: "כל חודש",
	},
	model.LanguageEnglish: {
		model.RecurrenceDaily:   "Daily",
		model.RecurrenceWeekly:  "Weekly",
		model.RecurrenceMonthly: "Monthly",
	},
}

var recurrencePhrases = map[model.Language]map[model.Recurrence]string{
	model.LanguageHebrew: recurrenceLabels[model.LanguageHebrew],
	model.LanguageEnglish: {
		model.RecurrenceDaily:   "every day",
		model.RecurrenceWeekly:  "every week",
		model.RecurrenceMonthly: "every month",
	},
}

var dayNames = map[model.Language][7]string{
	model.LanguageHebrew:  {"ראשון", "שני", "שלישי", "רביעי", "חמישי", "שישי", "שבת"},
	model.LanguageEnglish: {"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
}

func bucketLabel(lang model.Language, b model.TimeBucket) string {
	return bucketLabels[lang][b]
}

// bucketPhrase is the keyword written into text for b.
func bucketPhrase(lang model.Language, b model.TimeBucket) string {
	if lang == model.LanguageHebrew {
		return bucketLabels[lang][b]
	}
	return strings.ToLower(bucketLabels[lang][b])
}

func memberName(lang model.Language, m model.FamilyMember) string {
	if lang == model.LanguageHebrew && m.NameLocalized != "" {
		return m.NameLocalized
	}
	return m.Name
}

func placeName(lang model.Language, p model.KnownPlace) string {
	if lang == model.LanguageHebrew && p.NameLocalized != "" {
		return p.NameLocalized
	}
	if p.Name != "" {
		return p.Name
	}
	if len(p.Keywords) > 0 {
		return p.Keywords[0]
	}
	return p.Key
}

func minutesLabel(lang model.Language, n int) string {
	if lang == model.LanguageHebrew {
		return fmt.Sprintf("%d דק׳", n)
	}
	return fmt.Sprintf("%d min", n)
}

// driveClause is appended to text that has no drive duration to edit.
func driveClause(lang model.Language, n int) string {
	if lang == model.LanguageHebrew {
		return fmt.Sprintf("%d דקות נסיעה", n)
	}
	return fmt.Sprintf("%d min drive", n)
}

// dayList names every day: "שני וחמישי", "Monday, Wednesday and Friday".
func dayList(lang model.Language, days model.Weekdays) string {
	names := make([]string, 0, len(days))
	for _, d := range days {
		if d >= 0 && d < 7 {
			names = append(names, dayNames[lang][d])
		}
	}
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	head := strings.Join(names[:len(names)-1], ", ")
	if lang == model.LanguageHebrew {
		return head + " ו" + names[len(names)-1]
	}
	return head + " and " + names[len(names)-1]
}

func weekdaysPhrase(lang model.Language, days model.Weekdays) string {
	if lang == model.LanguageHebrew {
		return "כל יום " + dayList(lang, days)
	}
	return "every " + dayList(lang, days)
}

func clockDigits(t model.ClockTime) string {
	return fmt.Sprintf("%d:%02d", t.Hour, t.Minute)
}

// timePhrase renders t for a source mention. Word sources stay words when the minute
// allows it and the phrase reads back as t after affix; everything else becomes H:MM.
func timePhrase(lang model.Language, t model.ClockTime, words bool, affix, oldPayload string) string {
	if !words {
		return clockDigits(t)
	}
	want := spokentime.Time{Hour: t.Hour, Minute: t.Minute}
	old, ok := spokentime.Parse(textfold.String(oldPayload), string(lang))
	hadContext := ok && (old.Tier == 1 || old.Tier == 3)

	for _, withContext := range []bool{hadContext, true} {
		phrase, ok := spokentime.Phrase(want, string(lang), withContext)
		if !ok {
			break
		}
		if got, ok := spokentime.Parse(textfold.String(affix+phrase), string(lang)); ok && got.Time == want {
			return phrase
		}
	}
	return clockDigits(t)
}

// display is the tag text for a value.
func (e *Engine) display(lang model.Language, v model.Value) string {
	switch val := v.(type) {
	case model.TimeBucket:
		return bucketLabel(lang, val)
	case model.ClockTime:
		return val.String()
	case model.PersonRef:
		if m, ok := e.roster.Member(string(val)); ok {
			return memberName(lang, m)
		}
		return string(val)
	case model.LocationKey:
		if p, ok := e.roster.Place(string(val)); ok {
			return placeName(lang, p)
		}
		return string(val)
	case model.Minutes:
		return minutesLabel(lang, int(val))
	case model.Priority:
		return string(val)
	case model.Recurrence:
		return recurrenceLabels[lang][val]
	case model.Weekdays:
		return dayList(lang, val)
	case model.Flag:
		return strconv.FormatBool(bool(val))
	}
	return ""
}
