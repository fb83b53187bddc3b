package spokentime

// Languages understood by the parser.
const (
	Hebrew  = "he"
	English = "en"
)

// Time is a 24-hour wall clock value.
type Time struct {
	Hour   int
	Minute int
}

// Result is one recognised spoken time phrase. Offsets index the input text.
type Result struct {
	Time Time
	Text string
	// Start and End bound the whole phrase including a leading preposition.
	Start int
	End   int
	// PayloadStart is where the phrase proper begins, after the preposition.
	PayloadStart int
	// Words is set when the hour was written as a word rather than digits.
	Words bool
	// Tier is the 1-based priority tier that produced the result.
	Tier int
}

type dayPart int

const (
	partNone dayPart = iota
	partMorning
	partAM
	partAfternoon
	partEvening
	partPM
	partNight
)
