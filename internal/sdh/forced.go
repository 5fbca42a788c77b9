package sdh

import (
	"regexp"
	"strings"
	"unicode"
)

// CuePredicate decides whether a line qualifies as a forced cue. The
// pipeline accepts a custom predicate in place of IsForcedCue.
type CuePredicate func(line string) bool

// forcedRe admits text rendered entirely in uppercase letters, digits,
// whitespace, and symbols, or a standalone {\an8} position override.
var forcedRe = regexp.MustCompile(`^(?:[A-ZÁÉÍÓÚÑÜ\s\d\W]+|\{\\an8\})$`)

// IsForcedCue reports whether a line reads as on-screen text. Markup tags
// and escaped-newline sequences are invisible to the viewer, so they are
// deleted before inspection; the caller emits the original line when the
// cue qualifies. The remaining text must fully match the uppercase/symbol
// pattern, contain at least two alphabetic characters, and every alphabetic
// character must be uppercase. Empty or whitespace-only lines never
// qualify. The letter floor applies to the {\an8} alternative as well, so
// the override standing alone does not qualify.
func IsForcedCue(line string) bool {
	text := strings.TrimSpace(stripMarkup(line))
	if text == "" {
		return false
	}
	if !forcedRe.MatchString(text) {
		return false
	}
	letters := 0
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		if !unicode.IsUpper(r) {
			return false
		}
		letters++
	}
	return letters >= 2
}

// stripMarkup deletes angle-bracket tags and escaped newlines for
// classification purposes. Brace overrides are left alone; ForcedEntries
// strips those separately so the {\an8} pattern stays visible to line-level
// callers.
func stripMarkup(line string) string {
	line = brTagRe.ReplaceAllString(line, "")
	line = markupTagRe.ReplaceAllString(line, "")
	return escNewlineRe.ReplaceAllString(line, "")
}

// FilterForcedLines keeps only lines satisfying the predicate. A nil
// predicate selects IsForcedCue. Lines are tested as given; callers wanting
// override-insensitive decisions strip overrides first (see ForcedEntries).
func FilterForcedLines(lines []string, pred CuePredicate) []string {
	if pred == nil {
		pred = IsForcedCue
	}
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if pred(line) {
			kept = append(kept, line)
		}
	}
	return kept
}
