// Package merge reconciles an imported corpus record with the existing
// cluster record for the same judicial decision.
//
// The work splits four ways: field reconciliation decides, per field class,
// which of two differing values survives; opinion alignment pairs the
// imported casebody's opinion segments with the cluster's stored opinions;
// the orchestrator drives both for one cluster inside a single store
// transaction; and the batch driver walks every eligible cluster, isolating
// failures per record.
//
// Two conflicts abort a record's merge outright: a judge roster with no
// overlap between sources, and an authorship mismatch on a matched opinion
// pair. Both roll the whole transaction back; everything else resolves to a
// deterministic overwrite-or-keep decision.
package merge
