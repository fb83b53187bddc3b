package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Value is the decoded payload of a match or tag. The set of implementations is closed;
// consumers switch on the concrete type.
type Value interface {
	isValue()
}

// ClockTime is a 24-hour wall clock value.
type ClockTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// Valid reports whether the time is within 00:00..23:59.
func (c ClockTime) Valid() bool {
	return c.Hour >= 0 && c.Hour <= 23 && c.Minute >= 0 && c.Minute <= 59
}

// String renders the time as zero-padded HH:MM.
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// PersonRef points at a roster member by canonical name.
type PersonRef string

// LocationKey points at a roster place by key.
type LocationKey string

// Weekdays is a sorted set of day indexes, Sunday = 0.
type Weekdays []int

// Flag is a boolean detection.
type Flag bool

// Minutes is a duration in whole minutes.
type Minutes int

func (TimeBucket) isValue()  {}
func (ClockTime) isValue()   {}
func (PersonRef) isValue()   {}
func (Priority) isValue()    {}
func (Recurrence) isValue()  {}
func (Weekdays) isValue()    {}
func (LocationKey) isValue() {}
func (Flag) isValue()        {}
func (Minutes) isValue()     {}

// DecodeTagValue decodes a JSON tag value for the given tag type.
func DecodeTagValue(t TagType, raw json.RawMessage) (Value, error) {
	switch t {
	case TagTimeBucket:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("decode %s: %w", t, err)
		}
		b := TimeBucket(s)
		if !b.Valid() {
			return nil, fmt.Errorf("decode %s: unknown bucket %q", t, s)
		}
		return b, nil
	case TagTime:
		var c ClockTime
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("decode %s: %w", t, err)
		}
		return c, nil
	case TagOwner, TagInvolved:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("decode %s: %w", t, err)
		}
		return PersonRef(s), nil
	case TagLocation:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("decode %s: %w", t, err)
		}
		return LocationKey(s), nil
	case TagTransport:
		var n int
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, fmt.Errorf("decode %s: %w", t, err)
		}
		return Minutes(n), nil
	case TagPriority:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("decode %s: %w", t, err)
		}
		return Priority(strings.ToUpper(s)), nil
	case TagRecurring:
		var days []int
		if err := json.Unmarshal(raw, &days); err == nil {
			return Weekdays(days), nil
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("decode %s: %w", t, err)
		}
		return Recurrence(s), nil
	}
	return nil, fmt.Errorf("decode: unknown tag type %q", t)
}
