package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const clusterColumns = "id, docket_id, case_name, case_name_full, judges, date_filed, date_filed_is_approximate, other_dates, attorneys, syllabus, summary, history, headnotes, correction, cross_reference, disposition, import_path, created_at, updated_at"

const opinionColumns = "id, cluster_id, position, type, author_str, author_id, html_with_citations, html, html_lawbox, plain_text, imported_xml, created_at, updated_at"

// CreateDocket inserts a docket and returns it.
func (s *Store) CreateDocket(ctx context.Context, docketNumber string, source Source) (*Docket, error) {
	now := timestamp()
	res, err := s.execWithRetry(ctx,
		`INSERT INTO dockets (docket_number, source, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		docketNumber, int64(source), now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert docket: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetDocket(ctx, id)
}

// GetDocket fetches a docket by identifier. Returns nil when absent.
func (s *Store) GetDocket(ctx context.Context, id int64) (*Docket, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, docket_number, source, created_at, updated_at FROM dockets WHERE id = ?`, id)
	docket, err := scanDocket(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get docket: %w", err)
	}
	return docket, nil
}

// CreateCluster inserts a cluster row and returns it.
func (s *Store) CreateCluster(ctx context.Context, cluster *Cluster) (*Cluster, error) {
	if cluster == nil {
		return nil, errors.New("cluster is nil")
	}
	now := timestamp()
	res, err := s.execWithRetry(ctx,
		`INSERT INTO clusters (
            docket_id, case_name, case_name_full, judges,
            date_filed, date_filed_is_approximate, other_dates, attorneys,
            syllabus, summary, history, headnotes, correction,
            cross_reference, disposition, import_path, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		cluster.DocketID, cluster.CaseName, cluster.CaseNameFull, cluster.Judges,
		cluster.DateFiled, boolToInt(cluster.DateFiledIsApproximate), cluster.OtherDates, cluster.Attorneys,
		cluster.Syllabus, cluster.Summary, cluster.History, cluster.Headnotes, cluster.Correction,
		cluster.CrossReference, cluster.Disposition, nullableString(cluster.ImportPath), now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert cluster: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetCluster(ctx, id)
}

// GetCluster fetches a cluster by identifier. Returns nil when absent.
func (s *Store) GetCluster(ctx context.Context, id int64) (*Cluster, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+clusterColumns+` FROM clusters WHERE id = ?`, id)
	cluster, err := scanCluster(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cluster: %w", err)
	}
	return cluster, nil
}

// CreateOpinion inserts an opinion row and returns it.
func (s *Store) CreateOpinion(ctx context.Context, opinion *Opinion) (*Opinion, error) {
	if opinion == nil {
		return nil, errors.New("opinion is nil")
	}
	now := timestamp()
	res, err := s.execWithRetry(ctx,
		`INSERT INTO opinions (
            cluster_id, position, type, author_str, author_id,
            html_with_citations, html, html_lawbox, plain_text, imported_xml,
            created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		opinion.ClusterID, opinion.Position, opinion.Type, opinion.AuthorStr, opinion.AuthorID,
		opinion.HTMLWithCitations, opinion.HTML, opinion.HTMLLawbox, opinion.PlainText, opinion.ImportedXML,
		now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert opinion: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetOpinion(ctx, id)
}

// GetOpinion fetches an opinion by identifier. Returns nil when absent.
func (s *Store) GetOpinion(ctx context.Context, id int64) (*Opinion, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+opinionColumns+` FROM opinions WHERE id = ?`, id)
	opinion, err := scanOpinion(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get opinion: %w", err)
	}
	return opinion, nil
}

// OpinionsForCluster returns a cluster's opinions in position order.
func (s *Store) OpinionsForCluster(ctx context.Context, clusterID int64) ([]Opinion, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+opinionColumns+` FROM opinions WHERE cluster_id = ? ORDER BY position, id`, clusterID)
	if err != nil {
		return nil, fmt.Errorf("list opinions: %w", err)
	}
	defer rows.Close()

	var opinions []Opinion
	for rows.Next() {
		opinion, err := scanOpinion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan opinion: %w", err)
		}
		opinions = append(opinions, *opinion)
	}
	return opinions, rows.Err()
}

// ListEligibleClusterIDs returns clusters whose docket has not yet recorded
// the given source and which have an imported document on file.
func (s *Store) ListEligibleClusterIDs(ctx context.Context, source Source) ([]int64, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT c.id
           FROM clusters c
           JOIN dockets d ON d.id = c.docket_id
          WHERE (d.source & ?) = 0
            AND c.import_path IS NOT NULL
            AND c.import_path != ''
          ORDER BY c.id`,
		int64(source),
	)
	if err != nil {
		return nil, fmt.Errorf("list eligible clusters: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan cluster id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// SetImportPath records the imported document location for a cluster.
func (s *Store) SetImportPath(ctx context.Context, clusterID int64, path string) error {
	_, err := s.execWithRetry(ctx,
		`UPDATE clusters SET import_path = ?, updated_at = ? WHERE id = ?`,
		nullableString(path), timestamp(), clusterID)
	if err != nil {
		return fmt.Errorf("set import path: %w", err)
	}
	return nil
}

func scanDocket(scanner interface{ Scan(dest ...any) error }) (*Docket, error) {
	var (
		docket    Docket
		source    int64
		createdAt string
		updatedAt string
	)
	if err := scanner.Scan(&docket.ID, &docket.DocketNumber, &source, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	docket.Source = Source(source)
	docket.CreatedAt = parseTimestamp(createdAt)
	docket.UpdatedAt = parseTimestamp(updatedAt)
	return &docket, nil
}

func scanCluster(scanner interface{ Scan(dest ...any) error }) (*Cluster, error) {
	var (
		cluster     Cluster
		approximate int64
		importPath  sql.NullString
		createdAt   string
		updatedAt   string
	)
	if err := scanner.Scan(
		&cluster.ID,
		&cluster.DocketID,
		&cluster.CaseName,
		&cluster.CaseNameFull,
		&cluster.Judges,
		&cluster.DateFiled,
		&approximate,
		&cluster.OtherDates,
		&cluster.Attorneys,
		&cluster.Syllabus,
		&cluster.Summary,
		&cluster.History,
		&cluster.Headnotes,
		&cluster.Correction,
		&cluster.CrossReference,
		&cluster.Disposition,
		&importPath,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}
	cluster.DateFiledIsApproximate = approximate != 0
	cluster.ImportPath = importPath.String
	cluster.CreatedAt = parseTimestamp(createdAt)
	cluster.UpdatedAt = parseTimestamp(updatedAt)
	return &cluster, nil
}

func scanOpinion(scanner interface{ Scan(dest ...any) error }) (*Opinion, error) {
	var (
		opinion   Opinion
		authorID  sql.NullInt64
		createdAt string
		updatedAt string
	)
	if err := scanner.Scan(
		&opinion.ID,
		&opinion.ClusterID,
		&opinion.Position,
		&opinion.Type,
		&opinion.AuthorStr,
		&authorID,
		&opinion.HTMLWithCitations,
		&opinion.HTML,
		&opinion.HTMLLawbox,
		&opinion.PlainText,
		&opinion.ImportedXML,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}
	if authorID.Valid {
		opinion.AuthorID = &authorID.Int64
	}
	opinion.CreatedAt = parseTimestamp(createdAt)
	opinion.UpdatedAt = parseTimestamp(updatedAt)
	return &opinion, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func parseTimestamp(value string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
