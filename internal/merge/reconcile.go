package merge

import (
	"fmt"
	"strings"
	"time"

	"gavel/internal/casenames"
	"gavel/internal/dates"
	"gavel/internal/judges"
	"gavel/internal/store"
	"gavel/internal/textutil"
)

// Similarity thresholds encode the trust policy between the two sources.
const (
	// longTextSimilarityThreshold: at or above it the two narratives are
	// near-duplicates and the existing value stands.
	longTextSimilarityThreshold = 0.9
	// docketSimilarityThreshold: above it a longer imported docket number
	// is trusted as an extension of the existing one.
	docketSimilarityThreshold = 0.8
)

// Conflict is one field holding a non-empty, differing value on both sides.
// Identical or one-sided-empty values are resolved by direct fill before
// reconciliation and never reach this type.
type Conflict struct {
	Field    Field
	Imported string
	Existing string
}

// Decision is the deterministic result of reconciling one conflict.
// Apply false means the existing value stands and no write is issued.
type Decision struct {
	Field       Field
	Apply       bool
	Value       string
	Date        time.Time
	Approximate bool
}

// Resolve reconciles a single conflict against the cluster's current state.
// Every field class resolves to exactly one of the two inputs; the only
// error paths are the judge-roster conflict and an unparseable date.
func Resolve(conflict Conflict, cluster *store.Cluster) (Decision, error) {
	decision := Decision{Field: conflict.Field}

	switch fieldSpecs[conflict.Field].class {
	case classLongText:
		similarity := textutil.Similarity(conflict.Imported, conflict.Existing)
		if similarity >= longTextSimilarityThreshold {
			// Near-duplicates: the curated value stands.
			return decision, nil
		}
		if len(conflict.Imported) > len(conflict.Existing) {
			decision.Apply = true
			decision.Value = conflict.Imported
		}
		return decision, nil

	case classShortText:
		if len(conflict.Imported) > len(conflict.Existing) {
			decision.Apply = true
			decision.Value = conflict.Imported
		}
		return decision, nil

	case classJudges:
		return resolveJudges(conflict)

	case classDate:
		parsed, approximate, err := dates.Parse(conflict.Imported)
		if err != nil {
			return decision, fmt.Errorf("field %s: %w", conflict.Field, err)
		}
		if cluster.DateFiledIsApproximate && !approximate {
			decision.Apply = true
			decision.Date = parsed
			decision.Approximate = approximate
			decision.Value = dates.Format(parsed)
		}
		return decision, nil

	default:
		return decision, fmt.Errorf("field %s has no reconciliation strategy", conflict.Field)
	}
}

func resolveJudges(conflict Conflict) (Decision, error) {
	decision := Decision{Field: conflict.Field}

	imported := judges.LastNames(conflict.Imported)
	existing := judges.LastNames(conflict.Existing)

	importedSet := toSet(imported)
	existingSet := toSet(existing)

	if isSuperset(importedSet, existingSet) && len(importedSet) != len(existingSet) {
		decision.Apply = true
		decision.Value = textutil.TitleCase(strings.Join(imported, ", "))
		return decision, nil
	}
	if !intersects(importedSet, existingSet) {
		return decision, ErrJudgeConflict
	}
	// Partial overlap without a clear superset: keep the curated roster.
	return decision, nil
}

// ResolveDocketNumber decides whether the imported docket number replaces
// the existing one. Adoption requires the existing number to be a substring
// of the imported one, or the two to score above the docket similarity
// threshold with the imported number longer.
func ResolveDocketNumber(existing, imported string) (string, bool) {
	imported = strings.TrimSpace(imported)
	existing = strings.TrimSpace(existing)

	if imported == "" || imported == existing {
		return "", false
	}
	if existing == "" {
		return imported, true
	}
	if strings.Contains(imported, existing) {
		return imported, true
	}
	// Tokenization already ignores punctuation, so the score compares the
	// normalized forms of both numbers.
	if textutil.Similarity(existing, imported) > docketSimilarityThreshold && len(imported) > len(existing) {
		return imported, true
	}
	return "", false
}

// CaseNameResolution carries the final pair of case names after independent
// resolution and the full-name/short-name swap check.
type CaseNameResolution struct {
	CaseName       string
	CaseNameFull   string
	UpdateName     bool
	UpdateNameFull bool
}

// ResolveCaseNames reconciles the short and full case names independently:
// adopt the imported name when the existing one is empty or strictly
// shorter. If the resolved short name ends up longer than the resolved full
// name the two are swapped; the full name is never the shorter of the two.
func ResolveCaseNames(existingName, existingFull, importedName, importedFull string) CaseNameResolution {
	resolution := CaseNameResolution{
		CaseName:     casenames.Harmonize(existingName),
		CaseNameFull: casenames.Harmonize(existingFull),
	}
	importedName = casenames.Harmonize(importedName)
	importedFull = casenames.Harmonize(importedFull)

	if resolution.CaseNameFull == "" && importedFull != "" {
		resolution.CaseNameFull = importedFull
		resolution.UpdateNameFull = true
	} else if resolution.CaseNameFull != "" && importedFull != "" && len(importedFull) > len(resolution.CaseNameFull) {
		resolution.CaseNameFull = importedFull
		resolution.UpdateNameFull = true
	}

	if resolution.CaseName == "" && importedName != "" {
		resolution.CaseName = importedName
		resolution.UpdateName = true
	} else if resolution.CaseName != "" && importedName != "" && len(importedName) > len(resolution.CaseName) {
		resolution.CaseName = importedName
		resolution.UpdateName = true
	}

	if resolution.CaseName != "" && resolution.CaseNameFull != "" &&
		len(resolution.CaseName) > len(resolution.CaseNameFull) {
		resolution.CaseName, resolution.CaseNameFull = resolution.CaseNameFull, resolution.CaseName
		resolution.UpdateName = true
		resolution.UpdateNameFull = true
	}

	return resolution
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

func isSuperset(super, sub map[string]struct{}) bool {
	for name := range sub {
		if _, ok := super[name]; !ok {
			return false
		}
	}
	return true
}

func intersects(a, b map[string]struct{}) bool {
	for name := range a {
		if _, ok := b[name]; ok {
			return true
		}
	}
	return false
}
