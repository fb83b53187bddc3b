package parser

import (
	"time"

	"family-task-parser/internal/model"
)

const hebrewDay = `(?:ראשון|שני|שלישי|רביעי|חמישי|שישי|שבת)`

var hebrew = vocabulary{
	memberAffix: `(?:ו?את\s+)?[ולבשהמכ]{0,2}`,
	placeAffix:  `[ולבשהמכ]{0,2}`,
	bucketAffix: `[ול]?`,
	wordAffix:   `[וש]?`,
	clockAffix:  `(?:ו?בשעה\s*|ו?ב-?|עד\s*)?`,

	buckets: map[string]model.Value{
		"היום":      model.BucketToday,
		"הערב":      model.BucketToday,
		"הלילה":     model.BucketToday,
		"מחר":       model.BucketTomorrow,
		"השבוע":     model.BucketThisWeek,
		"בשבוע הזה": model.BucketThisWeek,
		"השבוע הזה": model.BucketThisWeek,
		"בשבוע הבא": model.BucketNextWeek,
		"שבוע הבא":  model.BucketNextWeek,
		"השבוע הבא": model.BucketNextWeek,
	},
	transport: []string{
		"לקחת", "להסיע", "להביא", "לאסוף", "להוריד", "לנסוע", "להקפיץ", "הסעה", "איסוף",
	},
	reminder: []string{
		"להזכיר", "תזכורת", "תזכיר", "תזכירי", "לזכור", "אל תשכח", "אל תשכחי", "לא לשכוח",
	},
	task: []string{
		"לקנות", "לעשות", "לסיים", "להתקשר", "לשלם", "לתקן", "לנקות", "לסדר", "להכין",
		"לבשל", "לכבס", "להזמין", "לקבוע", "משימה",
	},
	recurrence: map[string]model.Value{
		"כל יום":    model.RecurrenceDaily,
		"כל בוקר":   model.RecurrenceDaily,
		"כל ערב":    model.RecurrenceDaily,
		"יומי":      model.RecurrenceDaily,
		"כל שבוע":   model.RecurrenceWeekly,
		"שבועי":     model.RecurrenceWeekly,
		"פעם בשבוע": model.RecurrenceWeekly,
		"כל חודש":   model.RecurrenceMonthly,
		"חודשי":     model.RecurrenceMonthly,
		"פעם בחודש": model.RecurrenceMonthly,
	},
	weekdays: map[string]time.Weekday{
		"ראשון": time.Sunday,
		"שני":   time.Monday,
		"שלישי": time.Tuesday,
		"רביעי": time.Wednesday,
		"חמישי": time.Thursday,
		"שישי":  time.Friday,
		"שבת":   time.Saturday,
	},

	// "כל יום שני וחמישי", "בימי ראשון, שלישי"
	weekdayPhrase: `(?P<body>(?:כל|בימי)\s+(?:יום\s+)?` + hebrewDay + `(?:\s*,?\s*ו?(?:יום\s+)?` + hebrewDay + `)*)`,
	// "ביום שלישי", "בשבת"; a bare prefixed day other than Saturday is too ambiguous.
	singleDay:     `(?P<affix>ו?ב?יום\s+|ו?ב)?(?P<body>` + hebrewDay + `)`,
	driveDuration: `(?P<body>\d{1,3})\s*(?:דקות|דק׳|דק'|דק)\s+(?:של\s+)?נסיעה`,
	numericDate:   `(?P<d>\d{1,2})/(?P<m>\d{1,2})(?:/(?P<y>\d{2,4}))?`,
	dayAfter:      []string{"מחרתיים"},
	relativeDate:  `בעוד\s+(?:(?P<n>\d{1,3})\s+)?(?P<unit>יומיים|ימים|יום|שבועיים|שבועות|שבוע|חודשיים|חודשים|חודש)|אתמול`,
	dateUnits: map[string]dateUnit{
		"יום":     {name: "days", count: 1},
		"ימים":    {name: "days"},
		"יומיים":  {name: "days", count: 2},
		"שבוע":    {name: "weeks", count: 1},
		"שבועות":  {name: "weeks"},
		"שבועיים": {name: "weeks", count: 2},
		"חודש":    {name: "months", count: 1},
		"חודשים":  {name: "months"},
		"חודשיים": {name: "months", count: 2},
	},
}
