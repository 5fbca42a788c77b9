// Package logging builds slog loggers for sdhtool with either a compact
// console format (ts LEVEL component: msg key=value) or standard JSON
// output, plus attribute helpers shared across packages.
package logging
