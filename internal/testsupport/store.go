package testsupport

import (
	"context"
	"testing"

	"gavel/internal/config"
	"gavel/internal/store"
)

// MustOpenStore opens a record store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		st.Close()
	})
	return st
}

// NewDocket creates a docket for tests.
func NewDocket(t testing.TB, st *store.Store, number string, source store.Source) *store.Docket {
	t.Helper()

	docket, err := st.CreateDocket(context.Background(), number, source)
	if err != nil {
		t.Fatalf("CreateDocket: %v", err)
	}
	return docket
}

// NewCluster creates a cluster for tests.
func NewCluster(t testing.TB, st *store.Store, cluster *store.Cluster) *store.Cluster {
	t.Helper()

	created, err := st.CreateCluster(context.Background(), cluster)
	if err != nil {
		t.Fatalf("CreateCluster: %v", err)
	}
	return created
}

// NewOpinion creates an opinion for tests.
func NewOpinion(t testing.TB, st *store.Store, opinion *store.Opinion) *store.Opinion {
	t.Helper()

	created, err := st.CreateOpinion(context.Background(), opinion)
	if err != nil {
		t.Fatalf("CreateOpinion: %v", err)
	}
	return created
}
