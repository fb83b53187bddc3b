package model

// Span locates a mention in the raw text. Start/End cover affix plus payload;
// PayloadStart/PayloadEnd cover only the semantic part. Offsets are byte indexes.
type Span struct {
	Start        int `json:"start"`
	End          int `json:"end"`
	PayloadStart int `json:"payloadStart"`
	PayloadEnd   int `json:"payloadEnd"`
}

// Match is a spanned detection of one category.
type Match struct {
	Span
	Category Category
	Value    Value
	Text     string
	// Words is set for time matches written as number words rather than digits.
	Words bool
}

// Segment is a contiguous slice of the raw text.
type Segment struct {
	Text  string   `json:"text"`
	Type  Category `json:"type"`
	Value Value    `json:"value,omitempty"`
	Start int      `json:"start"`
	End   int      `json:"end"`
}

// ExtractedTag is a user-facing projection of one inferred fact.
type ExtractedTag struct {
	ID          int     `json:"id"`
	Type        TagType `json:"type"`
	DisplayText string  `json:"displayText"`
	Value       Value   `json:"value"`
	Emoji       string  `json:"emoji"`
	Editable    bool    `json:"editable"`
	Source      *Span   `json:"source,omitempty"`
	// Words mirrors Match.Words for time tags so edits keep the original phrasing.
	Words bool `json:"words,omitempty"`
}

// ParsedTask is the full result of parsing one sentence.
type ParsedTask struct {
	RawText         string         `json:"rawText"`
	Language        Language       `json:"language"`
	Segments        []Segment      `json:"segments"`
	Tags            []ExtractedTag `json:"tags"`
	TimeBucket      TimeBucket     `json:"timeBucket"`
	SpecificTime    *ClockTime     `json:"specificTime,omitempty"`
	SpecificDate    *Date          `json:"specificDate,omitempty"`
	Owner           string         `json:"owner,omitempty"`
	InvolvedMembers []string       `json:"involvedMembers"`
	Location        string         `json:"location,omitempty"`
	Priority        Priority       `json:"priority,omitempty"`
	Recurring       Recurrence     `json:"recurring,omitempty"`
	RecurringDays   []int          `json:"recurringDays,omitempty"`
	IsReminder      bool           `json:"isReminder"`
	TypeConfidence  float64        `json:"typeConfidence"`
	RequiresDriving bool           `json:"requiresDriving"`
	DrivingDuration *int           `json:"drivingDuration,omitempty"`
	DrivingFrom     string         `json:"drivingFrom,omitempty"`
	DrivingTo       string         `json:"drivingTo,omitempty"`
	Confidence      float64        `json:"confidence"`
	Warnings        []string       `json:"warnings,omitempty"`
}

// Tag returns the tag with the given id.
func (t ParsedTask) Tag(id int) (ExtractedTag, bool) {
	for _, tag := range t.Tags {
		if tag.ID == id {
			return tag, true
		}
	}
	return ExtractedTag{}, false
}
