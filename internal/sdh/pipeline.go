package sdh

import (
	"fmt"
	"strings"
)

// Mode selects one of the pipeline compositions.
type Mode string

const (
	ModeSDHToFull    Mode = "sdh-to-full"
	ModeFullToForced Mode = "full-to-forced"
	ModeSDHToForced  Mode = "sdh-to-forced"
)

// Modes returns the supported modes in display order.
func Modes() []Mode {
	return []Mode{ModeSDHToFull, ModeFullToForced, ModeSDHToForced}
}

// ParseMode resolves a user-supplied mode name. Underscores are accepted in
// place of hyphens.
func ParseMode(value string) (Mode, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(value)), "_", "-")
	switch mode := Mode(normalized); mode {
	case ModeSDHToFull, ModeFullToForced, ModeSDHToForced:
		return mode, nil
	}
	return "", fmt.Errorf("unknown mode %q (expected sdh-to-full, full-to-forced, or sdh-to-forced)", value)
}

// FullEntries cleans every text line of every entry, dropping removed and
// emptied lines, then entries left with no text.
func FullEntries(entries []Entry, cfg Config) []Entry {
	result := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		lines := CleanLines(entry.Lines, cfg)
		if len(lines) == 0 {
			continue
		}
		result = append(result, Entry{Index: entry.Index, Timing: entry.Timing, Lines: lines})
	}
	return result
}

// ForcedEntries keeps entries whose every text line passes the predicate.
// Override codes are deleted for the decision only; retained entries keep
// their original text, overrides included. A nil predicate selects
// IsForcedCue. Partial matches never keep an entry.
func ForcedEntries(entries []Entry, pred CuePredicate) []Entry {
	if pred == nil {
		pred = IsForcedCue
	}
	var forced []Entry
	for _, entry := range entries {
		if len(entry.Lines) == 0 {
			continue
		}
		qualifies := true
		for _, line := range entry.Lines {
			if !pred(StripOverrides(line)) {
				qualifies = false
				break
			}
		}
		if qualifies {
			forced = append(forced, entry)
		}
	}
	return forced
}

// Transform runs the composition named by mode over the entries. The
// sdh-to-forced mode is a strict two-stage pipeline: full cleaning first,
// forced filtering on the result.
func Transform(entries []Entry, mode Mode, cfg Config, pred CuePredicate) ([]Entry, error) {
	switch mode {
	case ModeSDHToFull:
		return FullEntries(entries, cfg), nil
	case ModeFullToForced:
		return ForcedEntries(entries, pred), nil
	case ModeSDHToForced:
		return ForcedEntries(FullEntries(entries, cfg), pred), nil
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
}
