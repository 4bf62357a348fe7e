package merge

import (
	"context"
	"path/filepath"
	"testing"

	"gavel/internal/logging"
	"gavel/internal/store"
	"gavel/internal/testsupport"
)

func TestDriverRunIsolatesFailures(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	// Cluster that merges cleanly.
	goodDocket := testsupport.NewDocket(t, st, "", store.SourceDefault)
	good := testsupport.NewCluster(t, st, &store.Cluster{DocketID: goodDocket.ID})
	testsupport.NewOpinion(t, st, &store.Opinion{ClusterID: good.ID, PlainText: majorityText})
	goodPath := testsupport.WriteCorpusDocument(t, cfg, "good.json", corpusDocument(
		"The Steamer Alert", "The Alert", "", "",
		`<casebody><opinion><p>`+majorityText+`</p></opinion></casebody>`))
	if err := st.SetImportPath(ctx, good.ID, goodPath); err != nil {
		t.Fatalf("SetImportPath: %v", err)
	}

	// Cluster whose import path points at nothing.
	badDocket := testsupport.NewDocket(t, st, "", store.SourceDefault)
	bad := testsupport.NewCluster(t, st, &store.Cluster{DocketID: badDocket.ID})
	if err := st.SetImportPath(ctx, bad.ID, filepath.Join(cfg.Paths.CorpusDir, "missing.json")); err != nil {
		t.Fatalf("SetImportPath: %v", err)
	}

	// Already merged: docket carries the corpus source, so the walk skips it.
	doneDocket := testsupport.NewDocket(t, st, "", store.SourceCorpus)
	done := testsupport.NewCluster(t, st, &store.Cluster{DocketID: doneDocket.ID})
	if err := st.SetImportPath(ctx, done.ID, goodPath); err != nil {
		t.Fatalf("SetImportPath: %v", err)
	}

	driver := NewDriver(st, logging.NewNop())
	summary, err := driver.Run(ctx)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if summary.RunID == "" {
		t.Fatal("summary must carry a run id")
	}
	if summary.Total != 2 {
		t.Fatalf("total = %d, want 2", summary.Total)
	}
	if summary.Committed != 1 || summary.Failed != 1 || summary.Aborted != 0 || summary.Skipped != 0 {
		t.Fatalf("summary = %+v", summary)
	}
	if len(summary.Failures) != 1 || summary.Failures[0].ClusterID != bad.ID {
		t.Fatalf("failures = %+v", summary.Failures)
	}
	if summary.Failures[0].Outcome != OutcomeFailed || summary.Failures[0].Err == nil {
		t.Fatalf("failure = %+v", summary.Failures[0])
	}

	// The failure must not have blocked the good record.
	mergedDocket, err := st.GetDocket(ctx, goodDocket.ID)
	if err != nil {
		t.Fatalf("GetDocket: %v", err)
	}
	if !mergedDocket.Source.Has(store.SourceCorpus) {
		t.Fatal("eligible cluster was not merged")
	}
}

func TestDriverRunOneReportsSkip(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	docket := testsupport.NewDocket(t, st, "", store.SourceDefault)
	cluster := testsupport.NewCluster(t, st, &store.Cluster{DocketID: docket.ID})

	driver := NewDriver(st, logging.NewNop())
	summary, err := driver.RunOne(ctx, cluster.ID)
	if err != nil {
		t.Fatalf("RunOne: %v", err)
	}
	if summary.Total != 1 || summary.Skipped != 1 || summary.Committed != 0 {
		t.Fatalf("summary = %+v", summary)
	}
}

func TestDriverRunOneReportsMissingCluster(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	driver := NewDriver(st, logging.NewNop())
	summary, err := driver.RunOne(ctx, 999)
	if err != nil {
		t.Fatalf("RunOne: %v", err)
	}
	if summary.Total != 1 || summary.Failed != 1 {
		t.Fatalf("summary = %+v", summary)
	}
	if len(summary.Failures) != 1 || summary.Failures[0].Err == nil {
		t.Fatalf("failures = %+v", summary.Failures)
	}
}

func TestDriverRunStopsOnContextCancel(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	docket := testsupport.NewDocket(t, st, "", store.SourceDefault)
	cluster := testsupport.NewCluster(t, st, &store.Cluster{DocketID: docket.ID})
	path := testsupport.WriteCorpusDocument(t, cfg, "doc.json", corpusDocument(
		"The Steamer Alert", "The Alert", "", "",
		`<casebody><opinion><p>`+majorityText+`</p></opinion></casebody>`))
	if err := st.SetImportPath(context.Background(), cluster.ID, path); err != nil {
		t.Fatalf("SetImportPath: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	driver := NewDriver(st, logging.NewNop())
	if _, err := driver.Run(ctx); err == nil {
		t.Fatal("cancelled context must stop the run")
	}
}
