// Package store persists the case records gavel merges: dockets, opinion
// clusters, and the ordered opinions within a cluster, backed by SQLite.
//
// Reads go through typed accessors on Store. All merge writes go through
// Store.WithTx, which exposes the typed update methods on a Tx so that an
// entire cluster merge commits or rolls back as one unit.
package store
