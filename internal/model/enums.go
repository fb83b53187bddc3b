package model

// Language is the detected input language.
type Language string

const (
	LanguageHebrew  Language = "he"
	LanguageEnglish Language = "en"
)

// TimeBucket is the coarse temporal classification of a task.
type TimeBucket string

const (
	BucketToday     TimeBucket = "today"
	BucketTomorrow  TimeBucket = "tomorrow"
	BucketThisWeek  TimeBucket = "this-week"
	BucketNextWeek  TimeBucket = "next-week"
	BucketUnlabeled TimeBucket = "unlabeled"
)

// Valid reports whether b is one of the known buckets.
func (b TimeBucket) Valid() bool {
	switch b {
	case BucketToday, BucketTomorrow, BucketThisWeek, BucketNextWeek, BucketUnlabeled:
		return true
	}
	return false
}

// Priority is a P1..P3 level.
type Priority string

const (
	PriorityP1 Priority = "P1"
	PriorityP2 Priority = "P2"
	PriorityP3 Priority = "P3"
)

func (p Priority) Valid() bool {
	return p == PriorityP1 || p == PriorityP2 || p == PriorityP3
}

// Recurrence is the normalized repeat pattern.
type Recurrence string

const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

func (r Recurrence) Valid() bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	}
	return false
}

// Category names a spanned match kind. Segment types use the same names plus SegmentText.
type Category string

const (
	CategoryPriority     Category = "priority"
	CategoryTimeBucket   Category = "timeBucket"
	CategoryFamilyMember Category = "familyMember"
	CategoryLocation     Category = "location"
	CategoryTime         Category = "time"

	SegmentText Category = "text"
)

// TagType names a user-facing tag kind.
type TagType string

const (
	TagTimeBucket TagType = "timeBucket"
	TagTime       TagType = "time"
	TagOwner      TagType = "owner"
	TagInvolved   TagType = "involved"
	TagLocation   TagType = "location"
	TagTransport  TagType = "transport"
	TagPriority   TagType = "priority"
	TagRecurring  TagType = "recurring"
)
