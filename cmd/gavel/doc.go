// Package main hosts the gavel CLI entrypoint and command graph.
//
// The Cobra-based command tree surfaces the merge engine to the terminal:
// batch and single-record merges, eligibility listings, record inspection,
// and configuration scaffolding. It centralizes configuration resolution and
// structured logging setup so subcommands can focus on user experience
// instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
