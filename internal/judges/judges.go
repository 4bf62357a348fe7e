// Package judges extracts normalized judge last names from free-text
// attributions such as "Smith, J.", "PER CURIAM", or a comma-separated
// panel listing. Output is lowercase; callers title-case for display.
package judges

import (
	"regexp"
	"sort"
	"strings"
)

// Tokens that never name a judge: honorifics, panel designations, and the
// connective noise that surrounds names in court attributions.
var skipTokens = map[string]struct{}{
	"j":           {},
	"jj":          {},
	"cj":          {},
	"sr":          {},
	"jr":          {},
	"justice":     {},
	"justices":    {},
	"judge":       {},
	"judges":      {},
	"chief":       {},
	"senior":      {},
	"associate":   {},
	"presiding":   {},
	"acting":      {},
	"assigned":    {},
	"designation": {},
	"district":    {},
	"circuit":     {},
	"court":       {},
	"honorable":   {},
	"hon":         {},
	"mr":          {},
	"mrs":         {},
	"ms":          {},
	"pro":         {},
	"tem":         {},
	"per":         {},
	"curiam":      {},
	"en":          {},
	"banc":        {},
	"concur":      {},
	"concurs":     {},
	"concurring":  {},
	"dissent":     {},
	"dissents":    {},
	"dissenting":  {},
	"delivered":   {},
	"opinion":     {},
	"the":         {},
	"of":          {},
	"by":          {},
}

var (
	chunkSplitPattern = regexp.MustCompile(`\s*(?:,|;|&|\band\b)\s*`)
	wordSplitPattern  = regexp.MustCompile(`[^a-z]+`)
)

// LastNames extracts the set of judge last names mentioned in text.
// Each comma/and-separated chunk contributes at most one name: the last
// word remaining after honorifics and initials are dropped. The result is
// deduplicated, lowercase, and sorted. May be empty.
func LastNames(text string) []string {
	lowered := strings.ToLower(strings.TrimSpace(text))
	if lowered == "" {
		return nil
	}

	seen := make(map[string]struct{})
	for _, chunk := range chunkSplitPattern.Split(lowered, -1) {
		name := lastNameOfChunk(chunk)
		if name == "" {
			continue
		}
		seen[name] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lastNameOfChunk(chunk string) string {
	var last string
	for _, word := range wordSplitPattern.Split(chunk, -1) {
		if len(word) < 2 {
			// Single letters are initials, never last names.
			continue
		}
		if _, skip := skipTokens[word]; skip {
			continue
		}
		last = word
	}
	return last
}

// Equal reports whether two attributions resolve to the same last-name set.
func Equal(a, b string) bool {
	an, bn := LastNames(a), LastNames(b)
	if len(an) != len(bn) {
		return false
	}
	for i := range an {
		if an[i] != bn[i] {
			return false
		}
	}
	return true
}
