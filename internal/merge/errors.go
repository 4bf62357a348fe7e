package merge

import "errors"

var (
	// ErrJudgeConflict means the two sources name entirely different
	// judge rosters; neither can be trusted over the other.
	ErrJudgeConflict = errors.New("judge rosters are disjoint")

	// ErrAuthorConflict means a matched opinion pair attributes the
	// opinion to different authors.
	ErrAuthorConflict = errors.New("opinion authors do not match")
)

// Outcome is the terminal state of one cluster merge.
type Outcome int

const (
	OutcomeCommitted Outcome = iota
	OutcomeSkippedNoImportData
	OutcomeAbortedJudges
	OutcomeAbortedAuthorship
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCommitted:
		return "committed"
	case OutcomeSkippedNoImportData:
		return "skipped"
	case OutcomeAbortedJudges:
		return "aborted-judges"
	case OutcomeAbortedAuthorship:
		return "aborted-authorship"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// OutcomeForError maps a merge transaction error to its terminal outcome.
// The two named conflicts are expected per-record results; anything else is
// a failure for the batch driver to isolate.
func OutcomeForError(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeCommitted
	case errors.Is(err, ErrJudgeConflict):
		return OutcomeAbortedJudges
	case errors.Is(err, ErrAuthorConflict):
		return OutcomeAbortedAuthorship
	default:
		return OutcomeFailed
	}
}
