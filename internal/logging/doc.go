// Package logging builds the slog loggers used across gavel. Two handler
// formats are supported: a human-oriented console format and JSON for
// machine consumption. Components receive a *slog.Logger by injection;
// nothing in the repository logs through a package-level default.
package logging
