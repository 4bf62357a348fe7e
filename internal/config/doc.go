// Package config loads and validates gavel's TOML configuration: the data
// directory holding the record database, the corpus directory holding
// imported JSON documents, and logging preferences. Paths support ~
// expansion and are normalized to absolute form during Load.
package config
