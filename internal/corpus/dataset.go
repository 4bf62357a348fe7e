// Package corpus reads the imported historical dataset: one immutable JSON
// document per case, holding the casebody markup and the case identifiers.
// Auxiliary metadata (judges, attorneys, narrative sections) is embedded in
// the casebody markup as tags and extracted here.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"gavel/internal/casebody"
	"gavel/internal/judges"
	"gavel/internal/textutil"
)

// Dataset is one imported corpus document.
type Dataset struct {
	Casebody struct {
		Data string `json:"data"`
	} `json:"casebody"`
	DocketNumber     string `json:"docket_number"`
	DecisionDate     string `json:"decision_date"`
	Name             string `json:"name"`
	NameAbbreviation string `json:"name_abbreviation"`
}

// Load reads and decodes a corpus document from disk.
func Load(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus document: %w", err)
	}
	var dataset Dataset
	if err := json.Unmarshal(raw, &dataset); err != nil {
		return nil, fmt.Errorf("decode corpus document %s: %w", path, err)
	}
	return &dataset, nil
}

// Canonical auxiliary field names, keyed the way the record store names the
// corresponding cluster fields.
const (
	FieldJudges         = "judges"
	FieldAttorneys      = "attorneys"
	FieldDisposition    = "disposition"
	FieldOtherDates     = "other_dates"
	FieldCrossReference = "cross_reference"
	FieldSyllabus       = "syllabus"
	FieldSummary        = "summary"
	FieldHistory        = "history"
	FieldHeadnotes      = "headnotes"
	FieldCorrection     = "correction"
)

// Casebody tags whose names differ from the cluster field they feed.
var tagRenames = map[string]string{
	"otherdate": FieldOtherDates,
	"seealso":   FieldCrossReference,
}

var shortTags = []string{"attorneys", "disposition", "otherdate", "seealso"}

var longTags = []string{"syllabus", "summary", "history", "headnotes", "correction"}

// AuxiliaryFields extracts the metadata embedded in the dataset's casebody
// markup, keyed by canonical field name. Empty values are dropped; the map
// may be empty for a sparse casebody.
func (d *Dataset) AuxiliaryFields() (map[string]string, error) {
	markup := d.Casebody.Data
	fields := make(map[string]string)

	judgesValue, err := extractJudges(markup)
	if err != nil {
		return nil, err
	}
	if judgesValue != "" {
		fields[FieldJudges] = judgesValue
	}

	for _, tag := range shortTags {
		texts, err := casebody.TagText(markup, tag)
		if err != nil {
			return nil, fmt.Errorf("extract %s: %w", tag, err)
		}
		if value := strings.Join(texts, "; "); value != "" {
			fields[canonicalName(tag)] = value
		}
	}

	for _, tag := range longTags {
		texts, err := casebody.TagText(markup, tag)
		if err != nil {
			return nil, fmt.Errorf("extract %s: %w", tag, err)
		}
		if value := strings.Join(texts, "\n\n"); value != "" {
			fields[canonicalName(tag)] = value
		}
	}

	return fields, nil
}

// extractJudges assembles the judge roster from the judges and author tags:
// deduplicated last names, sorted, title-cased, comma-joined.
func extractJudges(markup string) (string, error) {
	seen := make(map[string]struct{})
	for _, tag := range []string{"judges", "author"} {
		texts, err := casebody.TagText(markup, tag)
		if err != nil {
			return "", fmt.Errorf("extract %s: %w", tag, err)
		}
		for _, text := range texts {
			for _, name := range judges.LastNames(text) {
				seen[name] = struct{}{}
			}
		}
	}
	if len(seen) == 0 {
		return "", nil
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return textutil.TitleCase(strings.Join(names, ", ")), nil
}

func canonicalName(tag string) string {
	if renamed, ok := tagRenames[tag]; ok {
		return renamed
	}
	return tag
}
