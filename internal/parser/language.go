package parser

import (
	"unicode"

	"family-task-parser/internal/model"
)

const hebrewThreshold = 0.3

// DetectLanguage classifies text as Hebrew when more than 30% of its non-space
// runes fall in the Hebrew block. Empty text is English.
func DetectLanguage(text string) model.Language {
	var hebrew, total int
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if r >= 0x0590 && r <= 0x05FF {
			hebrew++
		}
	}
	if total == 0 {
		return model.LanguageEnglish
	}
	if float64(hebrew)/float64(total) > hebrewThreshold {
		return model.LanguageHebrew
	}
	return model.LanguageEnglish
}
