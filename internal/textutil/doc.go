// Package textutil provides small text helpers shared by the cleaning rules
// and the CLI: whitespace normalization and filename-safe token conversion.
package textutil
