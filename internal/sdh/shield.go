package sdh

import (
	"regexp"
	"strconv"
	"strings"
)

// Shielded pattern classes, in priority order. Each pass runs on the output
// of the previous one, so later passes cannot match inside a sentinel
// inserted earlier.
var (
	brTagRe      = regexp.MustCompile(`(?i)<br\s*/?>`)
	markupTagRe  = regexp.MustCompile(`<[^>]+>`)
	overrideRe   = regexp.MustCompile(`\{[^}]*\}`)
	escNewlineRe = regexp.MustCompile(`\\[Nn]`)
)

var shieldPasses = []*regexp.Regexp{brTagRe, markupTagRe, overrideRe, escNewlineRe}

// shield extracts markup and override spans from one line, replacing each
// with an index-tagged sentinel. Sentinels are NUL-framed so no cleaning
// rule can partially match into them. State is local to a single line's
// processing call.
type shield struct {
	spans []string
}

func sentinel(i int) string {
	return "\x00" + strconv.Itoa(i) + "\x00"
}

func (s *shield) apply(line string) string {
	for _, re := range shieldPasses {
		line = re.ReplaceAllStringFunc(line, func(match string) string {
			s.spans = append(s.spans, match)
			return sentinel(len(s.spans) - 1)
		})
	}
	return line
}

// restore substitutes every surviving sentinel with its captured span,
// verbatim and in insertion order.
func (s *shield) restore(line string) string {
	for i, span := range s.spans {
		line = strings.Replace(line, sentinel(i), span, 1)
	}
	return line
}

// StripOverrides deletes {...} override codes from a line. Used when a
// decision must be made on visible text while the original line is what
// gets emitted.
func StripOverrides(line string) string {
	return overrideRe.ReplaceAllString(line, "")
}
