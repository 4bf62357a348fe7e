package textutil

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleCase converts a string to title case for display. Judge names arrive
// from extraction as lowercase last names; this is the formatting step before
// they are written back to a record.
func TitleCase(value string) string {
	// cases.Caser carries internal state, so build one per call.
	return cases.Title(language.AmericanEnglish).String(value)
}
