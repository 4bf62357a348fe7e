package merge

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"gavel/internal/logging"
	"gavel/internal/store"
)

// Failure records one cluster whose merge did not commit, with its terminal
// outcome and the error that produced it.
type Failure struct {
	ClusterID int64
	Outcome   Outcome
	Err       error
}

// Summary is the result of one batch run.
type Summary struct {
	RunID     string
	Total     int
	Committed int
	Skipped   int
	Aborted   int
	Failed    int
	Failures  []Failure
	Elapsed   time.Duration
}

// Driver walks eligible clusters and merges each one, isolating per-record
// failures so one bad document never stops the batch.
type Driver struct {
	store        *store.Store
	orchestrator *Orchestrator
	logger       *slog.Logger
}

func NewDriver(st *store.Store, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Driver{
		store:        st,
		orchestrator: NewOrchestrator(st, logger),
		logger:       logger.With(logging.String("component", "driver")),
	}
}

// Run merges every eligible cluster: one whose docket has not yet recorded
// the corpus source and whose import path is set. Context cancellation stops
// the walk between records.
func (d *Driver) Run(ctx context.Context) (*Summary, error) {
	ids, err := d.store.ListEligibleClusterIDs(ctx, store.SourceCorpus)
	if err != nil {
		return nil, err
	}
	return d.run(ctx, ids)
}

// RunOne merges a single cluster regardless of eligibility.
func (d *Driver) RunOne(ctx context.Context, clusterID int64) (*Summary, error) {
	return d.run(ctx, []int64{clusterID})
}

func (d *Driver) run(ctx context.Context, ids []int64) (*Summary, error) {
	summary := &Summary{RunID: uuid.NewString(), Total: len(ids)}
	logger := d.logger.With(logging.String("run_id", summary.RunID))
	logger.Info("merge run starting", logging.Int("clusters", len(ids)))

	start := time.Now()
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			summary.Elapsed = time.Since(start)
			return summary, err
		}

		outcome, err := d.orchestrator.MergeCluster(ctx, id)
		switch outcome {
		case OutcomeCommitted:
			summary.Committed++
		case OutcomeSkippedNoImportData:
			summary.Skipped++
		case OutcomeAbortedJudges, OutcomeAbortedAuthorship:
			summary.Aborted++
			summary.Failures = append(summary.Failures, Failure{ClusterID: id, Outcome: outcome, Err: err})
		default:
			summary.Failed++
			summary.Failures = append(summary.Failures, Failure{ClusterID: id, Outcome: outcome, Err: err})
			logger.Error("cluster merge failed",
				logging.Int64("cluster_id", id),
				logging.Error(err))
		}
	}
	summary.Elapsed = time.Since(start)

	logger.Info("merge run finished",
		logging.Int("committed", summary.Committed),
		logging.Int("skipped", summary.Skipped),
		logging.Int("aborted", summary.Aborted),
		logging.Int("failed", summary.Failed),
		logging.Duration("elapsed", summary.Elapsed))
	return summary, nil
}
