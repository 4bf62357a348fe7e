package merge

import (
	"sort"

	"gavel/internal/casebody"
	"gavel/internal/judges"
	"gavel/internal/store"
	"gavel/internal/textutil"
)

// opinionMatchThreshold is the minimum pairwise similarity for an imported
// segment to claim an existing opinion.
const opinionMatchThreshold = 0.60

// Match pairs one existing opinion with the imported segment that aligns to
// it. NewAuthor, when non-empty, replaces the opinion's free-text author
// attribution; the segment markup is stored on the opinion either way.
type Match struct {
	Opinion   store.Opinion
	Segment   casebody.Segment
	NewAuthor string
}

// Alignment is the aligner's plan for a cluster's opinions. Abandoned is a
// valid, expected outcome: the imported casebody then becomes one
// combined-type opinion and existing opinions are left untouched.
type Alignment struct {
	Abandoned bool
	Matches   []Match
}

// AlignOpinions aligns the imported opinion segments against the cluster's
// existing opinions. Sequences of different lengths are never matched. An
// authorship conflict on a matched pair returns ErrAuthorConflict and must
// abort the record's merge.
func AlignOpinions(segments []casebody.Segment, opinions []store.Opinion) (Alignment, error) {
	if len(segments) != len(opinions) {
		return Alignment{Abandoned: true}, nil
	}
	if len(segments) == 0 {
		return Alignment{}, nil
	}

	mapping := matchSegments(segments, opinions)
	if mapping == nil {
		return Alignment{Abandoned: true}, nil
	}

	matches := make([]Match, 0, len(mapping))
	for segmentIdx, opinionIdx := range mapping {
		segment := segments[segmentIdx]
		opinion := opinions[opinionIdx]
		match := Match{Opinion: opinion, Segment: segment}

		// Authorship only matters when the record carries a free-text
		// attribution that has never been resolved to a judge record.
		if opinion.AuthorStr != "" && opinion.AuthorID == nil && segment.Author != "" {
			if !judges.Equal(opinion.AuthorStr, segment.Author) {
				return Alignment{}, ErrAuthorConflict
			}
			match.NewAuthor = segment.Author
		}
		matches = append(matches, match)
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Opinion.Position < matches[j].Opinion.Position
	})
	return Alignment{Matches: matches}, nil
}

// matchSegments produces a segment-index to opinion-index mapping, or nil
// when no confident bijection exists. Pairwise scoring uses TF-IDF weighted
// cosine over both text sets; a candidate pair must also clear the plain
// similarity threshold.
func matchSegments(segments []casebody.Segment, opinions []store.Opinion) map[int]int {
	n := len(segments)

	segmentPrints := make([]*textutil.Fingerprint, n)
	opinionPrints := make([]*textutil.Fingerprint, n)
	weights := textutil.NewCorpus()
	for i, segment := range segments {
		segmentPrints[i] = textutil.NewFingerprint(segment.ComparisonText())
		weights.Add(segmentPrints[i])
	}
	for i, opinion := range opinions {
		opinionPrints[i] = textutil.NewFingerprint(opinionBodyText(opinion))
		weights.Add(opinionPrints[i])
	}
	idf := weights.IDF()

	// When every term is shared by every document the IDF weights vanish;
	// score those on raw term frequency instead.
	weightedOrPlain := func(fp *textutil.Fingerprint) *textutil.Fingerprint {
		if weighted := fp.WithIDF(idf); weighted != nil {
			return weighted
		}
		return fp
	}

	mapping := make(map[int]int, n)
	claimed := make(map[int]struct{}, n)
	for i := 0; i < n; i++ {
		weighted := weightedOrPlain(segmentPrints[i])
		best, bestScore := -1, 0.0
		for j := 0; j < n; j++ {
			score := textutil.CosineSimilarity(weighted, weightedOrPlain(opinionPrints[j]))
			if score > bestScore {
				best, bestScore = j, score
			}
		}
		if best < 0 {
			continue
		}
		if textutil.CosineSimilarity(segmentPrints[i], opinionPrints[best]) < opinionMatchThreshold {
			continue
		}
		mapping[i] = best
		claimed[best] = struct{}{}
	}

	// A confident alignment pairs every segment with a distinct opinion.
	if len(mapping) != n || len(claimed) != n {
		return nil
	}
	return mapping
}

// opinionBodyText resolves an opinion's body by consulting its alternative
// representations in fixed priority order, converting markup to plain text.
func opinionBodyText(opinion store.Opinion) string {
	for _, markup := range []string{opinion.HTMLWithCitations, opinion.HTML, opinion.HTMLLawbox} {
		if markup != "" {
			return casebody.Text(markup)
		}
	}
	return opinion.PlainText
}
