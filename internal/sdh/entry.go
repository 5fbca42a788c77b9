package sdh

import (
	"strconv"
	"strings"
)

// Entry is one timed subtitle unit. Index and Timing are opaque strings
// passed through unmodified; Lines holds the visible text rows. Entries own
// their line slices; stages build new entries rather than mutating input.
type Entry struct {
	Index  string
	Timing string
	Lines  []string
}

// Segment splits raw input lines into entries on blank-line boundaries.
// A buffer shorter than two lines becomes a degenerate entry with empty
// index and timing, so malformed input never fails.
func Segment(lines []string) []Entry {
	var entries []Entry
	var buffer []string
	flush := func() {
		if len(buffer) == 0 {
			return
		}
		entries = append(entries, makeEntry(buffer))
		buffer = nil
	}
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		buffer = append(buffer, strings.TrimSuffix(line, "\n"))
	}
	flush()
	return entries
}

func makeEntry(buffer []string) Entry {
	if len(buffer) < 2 {
		return Entry{Lines: append([]string(nil), buffer...)}
	}
	return Entry{
		Index:  buffer[0],
		Timing: buffer[1],
		Lines:  append([]string(nil), buffer[2:]...),
	}
}

// Format serializes entries back into a line stream: index, timing, text
// lines, blank separator. Entries without text are skipped. When renumber
// is set indices restart at 1 with no gaps; otherwise the original index is
// kept, with the counter as fallback for empty ones.
func Format(entries []Entry, renumber bool) []string {
	var output []string
	counter := 1
	for _, entry := range entries {
		if len(entry.Lines) == 0 {
			continue
		}
		index := strconv.Itoa(counter)
		if !renumber && entry.Index != "" {
			index = entry.Index
		}
		output = append(output, index, entry.Timing)
		output = append(output, entry.Lines...)
		output = append(output, "")
		counter++
	}
	return output
}
