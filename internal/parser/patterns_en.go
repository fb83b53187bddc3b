package parser

import (
	"time"

	"family-task-parser/internal/model"
)

const (
	englishDay  = `(?:sun|mon|tues|wednes|thurs|fri|satur)day`
	englishList = `(?:\s*,\s*|\s*,?\s*(?:and|&)\s*)`
)

var english = vocabulary{
	clockAffix: `(?:(?:at|by|around)\s+|@\s*)?`,

	buckets: map[string]model.Value{
		"today":        model.BucketToday,
		"tonight":      model.BucketToday,
		"this evening": model.BucketToday,
		"tomorrow":     model.BucketTomorrow,
		"tmrw":         model.BucketTomorrow,
		"this week":    model.BucketThisWeek,
		"next week":    model.BucketNextWeek,
	},
	transport: []string{
		"take", "taking", "drive", "driving", "pick up", "picking up", "pickup",
		"drop off", "dropping off", "drop-off", "bring", "ride",
	},
	reminder: []string{
		"remind", "reminder", "remember", "don't forget", "dont forget",
	},
	task: []string{
		"buy", "call", "pay", "fix", "clean", "finish", "do", "task", "book", "schedule",
		"order", "cook", "prepare", "make", "wash",
	},
	recurrence: map[string]model.Value{
		"every day":     model.RecurrenceDaily,
		"everyday":      model.RecurrenceDaily,
		"each day":      model.RecurrenceDaily,
		"daily":         model.RecurrenceDaily,
		"every morning": model.RecurrenceDaily,
		"every evening": model.RecurrenceDaily,
		"every week":    model.RecurrenceWeekly,
		"each week":     model.RecurrenceWeekly,
		"weekly":        model.RecurrenceWeekly,
		"every month":   model.RecurrenceMonthly,
		"each month":    model.RecurrenceMonthly,
		"monthly":       model.RecurrenceMonthly,
	},
	weekdays: map[string]time.Weekday{
		"sunday": time.Sunday, "sundays": time.Sunday,
		"monday": time.Monday, "mondays": time.Monday,
		"tuesday": time.Tuesday, "tuesdays": time.Tuesday,
		"wednesday": time.Wednesday, "wednesdays": time.Wednesday,
		"thursday": time.Thursday, "thursdays": time.Thursday,
		"friday": time.Friday, "fridays": time.Friday,
		"saturday": time.Saturday, "saturdays": time.Saturday,
	},

	// "every monday and thursday", "on tuesdays, fridays"
	weekdayPhrase: `(?P<body>(?:every|each)\s+` + englishDay + `(?:` + englishList + englishDay + `)*` +
		`|(?:on\s+)?` + englishDay + `s(?:` + englishList + englishDay + `s)*)`,
	singleDay:     `(?P<affix>(?:on|this|next)\s+)?(?P<body>` + englishDay + `)`,
	driveDuration: `(?P<body>\d{1,3})(?:\s*|-)(?:minutes?|mins?)\s+(?:drive|ride|driving)`,
	numericDate:   `(?P<m>\d{1,2})/(?P<d>\d{1,2})(?:/(?P<y>\d{2,4}))?`,
	dayAfter:      []string{"day after tomorrow"},
	relativeDate:  `in\s+(?P<n>\d{1,3}|an?)\s+(?P<unit>days?|weeks?|months?)|yesterday`,
	dateUnits: map[string]dateUnit{
		"day": {name: "days", count: 1}, "days": {name: "days"},
		"week": {name: "weeks", count: 1}, "weeks": {name: "weeks"},
		"month": {name: "months", count: 1}, "months": {name: "months"},
	},
}
