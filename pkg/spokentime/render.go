package spokentime

import "fmt"

var hebrewHourWords = [...]string{
	1: "אחת", 2: "שתיים", 3: "שלוש", 4: "ארבע", 5: "חמש", 6: "שש",
	7: "שבע", 8: "שמונה", 9: "תשע", 10: "עשר", 11: "אחת עשרה", 12: "שתים עשרה",
}

var englishHourWords = [...]string{
	1: "one", 2: "two", 3: "three", 4: "four", 5: "five", 6: "six",
	7: "seven", 8: "eight", 9: "nine", 10: "ten", 11: "eleven", 12: "twelve",
}

// Phrase renders t as a spoken phrase that Parse reads back as t. It reports false
// when the minute cannot be expressed with the supported modifiers. A time-of-day
// word is added when withContext is set or the hour would otherwise be ambiguous.
func Phrase(t Time, lang string, withContext bool) (string, bool) {
	if t.Hour < 0 || t.Hour > 23 {
		return "", false
	}
	switch t.Minute {
	case 0, 15, 30, 45:
	default:
		return "", false
	}
	needContext := withContext || t.Hour == 0 || t.Hour >= 12

	if lang == Hebrew {
		return hebrewPhrase(t, needContext), true
	}
	return englishPhrase(t, needContext), true
}

func twelveHour(h int) int {
	h %= 12
	if h == 0 {
		return 12
	}
	return h
}

func hebrewPart(hour int) string {
	switch {
	case hour >= 5 && hour <= 11:
		return "בבוקר"
	case hour >= 12 && hour <= 16:
		return "בצהריים"
	case hour >= 17 && hour <= 21:
		return "בערב"
	default:
		return "בלילה"
	}
}

func hebrewPhrase(t Time, withContext bool) string {
	var phrase string
	switch t.Minute {
	case 0:
		phrase = hebrewHourWords[twelveHour(t.Hour)]
	case 15:
		phrase = hebrewHourWords[twelveHour(t.Hour)] + " ורבע"
	case 30:
		phrase = hebrewHourWords[twelveHour(t.Hour)] + " וחצי"
	case 45:
		phrase = "רבע ל" + hebrewHourWords[twelveHour(t.Hour+1)]
	}
	if withContext {
		phrase += " " + hebrewPart(t.Hour)
	}
	return phrase
}

func englishPhrase(t Time, withContext bool) string {
	word := englishHourWords[twelveHour(t.Hour)]
	var phrase string
	switch t.Minute {
	case 0:
		if withContext {
			phrase = word
		} else {
			phrase = word + " o'clock"
		}
	case 15:
		phrase = word + " fifteen"
	case 30:
		phrase = word + " thirty"
	case 45:
		phrase = word + " forty-five"
	}
	if withContext {
		suffix := "am"
		if t.Hour >= 12 {
			suffix = "pm"
		}
		phrase = fmt.Sprintf("%s %s", phrase, suffix)
	}
	return phrase
}
