package merge

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"gavel/internal/casebody"
	"gavel/internal/corpus"
	"gavel/internal/dates"
	"gavel/internal/logging"
	"gavel/internal/store"
)

// Orchestrator merges one imported corpus document into one cluster record.
// All writes for a cluster happen in a single store transaction.
type Orchestrator struct {
	store  *store.Store
	logger *slog.Logger
}

func NewOrchestrator(st *store.Store, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Orchestrator{
		store:  st,
		logger: logger.With(logging.String("component", "merge")),
	}
}

// MergeCluster merges the cluster's imported corpus document into its record.
// The returned outcome is always meaningful; the error carries detail for
// OutcomeFailed and the two aborted outcomes.
func (o *Orchestrator) MergeCluster(ctx context.Context, clusterID int64) (Outcome, error) {
	logger := o.logger.With(logging.Int64("cluster_id", clusterID))

	cluster, err := o.store.GetCluster(ctx, clusterID)
	if err != nil {
		return OutcomeFailed, err
	}
	if cluster == nil {
		return OutcomeFailed, fmt.Errorf("cluster %d not found", clusterID)
	}
	if cluster.ImportPath == "" {
		logger.Debug("no imported document recorded, skipping")
		return OutcomeSkippedNoImportData, nil
	}

	dataset, err := corpus.Load(cluster.ImportPath)
	if err != nil {
		return OutcomeFailed, err
	}
	segments, err := casebody.Opinions(dataset.Casebody.Data)
	if err != nil {
		return OutcomeFailed, fmt.Errorf("parse casebody: %w", err)
	}
	auxiliary, err := dataset.AuxiliaryFields()
	if err != nil {
		return OutcomeFailed, err
	}
	opinions, err := o.store.OpinionsForCluster(ctx, clusterID)
	if err != nil {
		return OutcomeFailed, err
	}
	docket, err := o.store.GetDocket(ctx, cluster.DocketID)
	if err != nil {
		return OutcomeFailed, err
	}
	if docket == nil {
		return OutcomeFailed, fmt.Errorf("docket %d not found for cluster %d", cluster.DocketID, clusterID)
	}

	// Alignment is pure; resolving it before the transaction keeps the
	// authorship abort from ever opening one.
	alignment, err := AlignOpinions(segments, opinions)
	if err != nil {
		logger.Warn("merge aborted", logging.Error(err))
		return OutcomeForError(err), err
	}
	if alignment.Abandoned {
		logger.Info("opinion counts differ, storing combined opinion",
			logging.Int("imported", len(segments)),
			logging.Int("existing", len(opinions)))
	}

	candidates := fieldCandidates(dataset, auxiliary, logger)

	err = o.store.WithTx(ctx, func(tx *store.Tx) error {
		if alignment.Abandoned {
			if err := tx.CreateCombinedOpinion(ctx, clusterID, dataset.Casebody.Data); err != nil {
				return err
			}
		}
		for _, match := range alignment.Matches {
			if err := tx.SetOpinionImportedXML(ctx, match.Opinion.ID, match.Segment.Markup); err != nil {
				return err
			}
			if match.NewAuthor != "" {
				if err := tx.SetOpinionAuthor(ctx, match.Opinion.ID, match.NewAuthor); err != nil {
					return err
				}
			}
		}

		if number, adopt := ResolveDocketNumber(docket.DocketNumber, dataset.DocketNumber); adopt {
			if err := tx.SetDocketNumber(ctx, docket.ID, number); err != nil {
				return err
			}
		}

		names := ResolveCaseNames(cluster.CaseName, cluster.CaseNameFull, dataset.NameAbbreviation, dataset.Name)
		if names.UpdateName {
			if err := tx.SetClusterText(ctx, clusterID, store.ColCaseName, names.CaseName); err != nil {
				return err
			}
		}
		if names.UpdateNameFull {
			if err := tx.SetClusterText(ctx, clusterID, store.ColCaseNameFull, names.CaseNameFull); err != nil {
				return err
			}
		}

		if err := o.applyFields(ctx, tx, cluster, candidates, logger); err != nil {
			return err
		}

		return tx.AddDocketSource(ctx, docket.ID, store.SourceCorpus)
	})
	if err != nil {
		outcome := OutcomeForError(err)
		logger.Warn("merge rolled back", logging.String("outcome", outcome.String()), logging.Error(err))
		return outcome, err
	}

	logger.Info("merge committed")
	return OutcomeCommitted, nil
}

type fieldCandidate struct {
	field    Field
	imported string
}

// fieldCandidates pairs every reconcilable field with its imported value, in
// stable field-name order. Names the field table does not know are logged
// and dropped rather than failing the record.
func fieldCandidates(dataset *corpus.Dataset, auxiliary map[string]string, logger *slog.Logger) []fieldCandidate {
	values := make(map[string]string, len(auxiliary)+1)
	for name, value := range auxiliary {
		values[name] = value
	}
	if dataset.DecisionDate != "" {
		values[FieldDateFiled.String()] = dataset.DecisionDate
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	candidates := make([]fieldCandidate, 0, len(names))
	for _, name := range names {
		field, ok := FieldByName(name)
		if !ok {
			logger.Warn("unknown imported field, skipping", logging.String("field", name))
			continue
		}
		candidates = append(candidates, fieldCandidate{field: field, imported: values[name]})
	}
	return candidates
}

// applyFields runs direct fill and conflict reconciliation for every
// candidate and issues the resulting writes.
func (o *Orchestrator) applyFields(ctx context.Context, tx *store.Tx, cluster *store.Cluster, candidates []fieldCandidate, logger *slog.Logger) error {
	for _, candidate := range candidates {
		existing := candidate.field.ExistingValue(cluster)
		if candidate.imported == existing {
			continue
		}

		var decision Decision
		if existing == "" {
			decision = Decision{Field: candidate.field, Apply: true, Value: candidate.imported}
			if candidate.field == FieldDateFiled {
				parsed, approximate, err := dates.Parse(candidate.imported)
				if err != nil {
					return fmt.Errorf("field %s: %w", candidate.field, err)
				}
				decision.Date = parsed
				decision.Approximate = approximate
			}
		} else {
			var err error
			decision, err = Resolve(Conflict{
				Field:    candidate.field,
				Imported: candidate.imported,
				Existing: existing,
			}, cluster)
			if err != nil {
				return err
			}
		}
		if !decision.Apply {
			continue
		}

		logger.Debug("field updated", logging.String("field", candidate.field.String()))
		if candidate.field == FieldDateFiled {
			if err := tx.SetClusterDateFiled(ctx, cluster.ID, decision.Date, decision.Approximate); err != nil {
				return err
			}
			continue
		}
		if err := tx.SetClusterText(ctx, cluster.ID, fieldSpecs[candidate.field].column, decision.Value); err != nil {
			return err
		}
	}
	return nil
}
