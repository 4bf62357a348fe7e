// Package casenames harmonizes case-name strings so that two independently
// sourced spellings of the same caption compare and merge predictably.
package casenames

import (
	"regexp"
	"strings"
)

var (
	whitespacePattern = regexp.MustCompile(`\s+`)
	versusPattern     = regexp.MustCompile(`(?i)\s+v(?:\.|s\.?|ersus)?\s+`)
	etAlPattern       = regexp.MustCompile(`(?i),?\s+et\s+al\.?$`)
)

// Harmonize normalizes a case caption: whitespace collapsed, every
// versus form ("vs.", "versus", bare "v") rewritten as "v.", a trailing
// "et al." dropped, and trailing punctuation trimmed. Empty input stays
// empty.
func Harmonize(name string) string {
	cleaned := whitespacePattern.ReplaceAllString(strings.TrimSpace(name), " ")
	if cleaned == "" {
		return ""
	}
	cleaned = versusPattern.ReplaceAllString(cleaned, " v. ")
	cleaned = etAlPattern.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimRight(cleaned, " ,.;")
	return strings.TrimSpace(cleaned)
}
