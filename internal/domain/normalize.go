package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// CleanPhrase prepares dictionary text for use as phrase identity:
//   - trims leading/trailing whitespace
//   - collapses internal whitespace runs (spaces, tabs, newlines) into one space
//   - applies Unicode NFC so composed and decomposed forms compare equal
//
// Case, diacritics, hyphens and apostrophes are preserved.
func CleanPhrase(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	return norm.NFC.String(strings.Join(fields, " "))
}

// FoldForSearch returns a caseless form of text for substring matching.
func FoldForSearch(text string) string {
	return cases.Fold().String(norm.NFC.String(text))
}
