package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gavel/internal/dates"
)

// Tx exposes the typed write operations a cluster merge performs. Every
// method runs inside the transaction WithTx opened; nothing is visible to
// readers until the callback returns nil and the transaction commits.
type Tx struct {
	tx *sql.Tx
}

// WithTx runs fn inside one database transaction. Any error from fn rolls
// the transaction back and is returned unchanged, so sentinel comparisons
// on the caller's side keep working.
func (s *Store) WithTx(ctx context.Context, fn func(tx *Tx) error) error {
	return retryOnBusy(ctx, func() error {
		sqlTx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin tx: %w", err)
		}

		if err := fn(&Tx{tx: sqlTx}); err != nil {
			_ = sqlTx.Rollback()
			return err
		}

		if err := sqlTx.Commit(); err != nil {
			return fmt.Errorf("commit tx: %w", err)
		}
		return nil
	})
}

// SetClusterText overwrites one text column on a cluster row.
func (t *Tx) SetClusterText(ctx context.Context, clusterID int64, column ClusterColumn, value string) error {
	name, ok := clusterColumnNames[column]
	if !ok {
		return fmt.Errorf("unknown cluster column %d", column)
	}
	_, err := t.tx.ExecContext(ctx,
		`UPDATE clusters SET `+name+` = ?, updated_at = ? WHERE id = ?`,
		value, timestamp(), clusterID)
	if err != nil {
		return fmt.Errorf("update cluster %s: %w", name, err)
	}
	return nil
}

// SetClusterDateFiled overwrites the filing date and its precision flag.
func (t *Tx) SetClusterDateFiled(ctx context.Context, clusterID int64, date time.Time, approximate bool) error {
	_, err := t.tx.ExecContext(ctx,
		`UPDATE clusters SET date_filed = ?, date_filed_is_approximate = ?, updated_at = ? WHERE id = ?`,
		dates.Format(date), boolToInt(approximate), timestamp(), clusterID)
	if err != nil {
		return fmt.Errorf("update cluster date_filed: %w", err)
	}
	return nil
}

// SetDocketNumber overwrites a docket's number.
func (t *Tx) SetDocketNumber(ctx context.Context, docketID int64, value string) error {
	_, err := t.tx.ExecContext(ctx,
		`UPDATE dockets SET docket_number = ?, updated_at = ? WHERE id = ?`,
		value, timestamp(), docketID)
	if err != nil {
		return fmt.Errorf("update docket number: %w", err)
	}
	return nil
}

// AddDocketSource records an additional contributing origin on a docket.
func (t *Tx) AddDocketSource(ctx context.Context, docketID int64, source Source) error {
	_, err := t.tx.ExecContext(ctx,
		`UPDATE dockets SET source = source | ?, updated_at = ? WHERE id = ?`,
		int64(source), timestamp(), docketID)
	if err != nil {
		return fmt.Errorf("update docket source: %w", err)
	}
	return nil
}

// SetOpinionAuthor overwrites an opinion's free-text author attribution.
func (t *Tx) SetOpinionAuthor(ctx context.Context, opinionID int64, authorStr string) error {
	_, err := t.tx.ExecContext(ctx,
		`UPDATE opinions SET author_str = ?, updated_at = ? WHERE id = ?`,
		authorStr, timestamp(), opinionID)
	if err != nil {
		return fmt.Errorf("update opinion author: %w", err)
	}
	return nil
}

// SetOpinionImportedXML stores the matched imported markup on an opinion.
func (t *Tx) SetOpinionImportedXML(ctx context.Context, opinionID int64, markup string) error {
	_, err := t.tx.ExecContext(ctx,
		`UPDATE opinions SET imported_xml = ?, updated_at = ? WHERE id = ?`,
		markup, timestamp(), opinionID)
	if err != nil {
		return fmt.Errorf("update opinion imported markup: %w", err)
	}
	return nil
}

// CreateCombinedOpinion appends a combined-type opinion holding the entire
// imported casebody. Pre-existing opinions are left untouched.
func (t *Tx) CreateCombinedOpinion(ctx context.Context, clusterID int64, markup string) error {
	var maxPosition sql.NullInt64
	if err := t.tx.QueryRowContext(ctx,
		`SELECT MAX(position) FROM opinions WHERE cluster_id = ?`, clusterID,
	).Scan(&maxPosition); err != nil {
		return fmt.Errorf("next opinion position: %w", err)
	}
	position := 0
	if maxPosition.Valid {
		position = int(maxPosition.Int64) + 1
	}

	now := timestamp()
	_, err := t.tx.ExecContext(ctx,
		`INSERT INTO opinions (
            cluster_id, position, type, author_str,
            html_with_citations, html, html_lawbox, plain_text, imported_xml,
            created_at, updated_at
        ) VALUES (?, ?, ?, '', '', '', '', '', ?, ?, ?)`,
		clusterID, position, OpinionTypeCombined, markup, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert combined opinion: %w", err)
	}
	return nil
}
