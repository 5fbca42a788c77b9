package sdh

import (
	"regexp"
	"strings"
	"unicode"

	"sdhtool/internal/textutil"
)

// Config holds the SDH cleaning rules. The six flags are independent; no
// flag implies another. Presets provide canonical combinations and callers
// override flag-by-flag on a copy, never on the shared template.
type Config struct {
	RemoveBetweenSquare       bool
	RemoveBetweenParen        bool
	BetweenOnlyIfSeparateLine bool
	RemoveTextBeforeColon     bool
	ColonOnlyIfUppercase      bool
	RemoveIfOnlyMusicSymbols  bool
}

var (
	squareSpanRe = regexp.MustCompile(`\[[^\]]*\]`)
	parenSpanRe  = regexp.MustCompile(`\([^)]*\)`)
	squareLineRe = regexp.MustCompile(`^\[[^\]]*\]$`)
	parenLineRe  = regexp.MustCompile(`^\([^)]*\)$`)

	// Speaker tags: a name built from letters (accented included), digits,
	// spaces, quotes, ampersand, parentheses, and hyphens, at least two
	// characters, then a colon and at least one character of dialogue.
	speakerRe = regexp.MustCompile(`^\s*([A-Za-zÁÉÍÓÚÜÑáéíóúüñ0-9 '"&().-]{2,}):\s*(.+)$`)
)

// musicSymbols marks notes that indicate non-spoken cues.
var musicSymbols = map[rune]bool{'♪': true, '♫': true, '♬': true, '♩': true, '♭': true, '♯': true}

// CleanLine applies the configured SDH rules to a single line. The second
// return is false when the line must be dropped entirely. Shielded spans
// (markup tags, override codes, escaped newlines) survive byte-for-byte in
// the returned line.
func CleanLine(line string, cfg Config) (string, bool) {
	// Whole-line bracket check runs on raw text, ahead of shielding.
	if dropForStandaloneBrackets(line, cfg) {
		return "", false
	}

	var sh shield
	line = sh.apply(line)

	line = removeInlineBrackets(line, cfg)
	line = stripSpeaker(line, cfg)
	line = textutil.CollapseWhitespace(line)

	if cfg.RemoveIfOnlyMusicSymbols && onlyMusic(line) {
		return "", false
	}

	return sh.restore(line), true
}

// CleanLines cleans a sequence of lines, omitting dropped and emptied ones.
func CleanLines(lines []string, cfg Config) []string {
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		result, keep := CleanLine(strings.TrimSuffix(line, "\n"), cfg)
		if keep && result != "" {
			cleaned = append(cleaned, result)
		}
	}
	return cleaned
}

func dropForStandaloneBrackets(line string, cfg Config) bool {
	if !cfg.BetweenOnlyIfSeparateLine {
		return false
	}
	stripped := strings.TrimSpace(line)
	if cfg.RemoveBetweenSquare && squareLineRe.MatchString(stripped) {
		return true
	}
	if cfg.RemoveBetweenParen && parenLineRe.MatchString(stripped) {
		return true
	}
	return false
}

func removeInlineBrackets(line string, cfg Config) string {
	if cfg.BetweenOnlyIfSeparateLine {
		return line
	}
	if cfg.RemoveBetweenSquare {
		line = squareSpanRe.ReplaceAllString(line, "")
	}
	if cfg.RemoveBetweenParen {
		line = parenSpanRe.ReplaceAllString(line, "")
	}
	return line
}

func stripSpeaker(line string, cfg Config) string {
	if !cfg.RemoveTextBeforeColon {
		return line
	}
	match := speakerRe.FindStringSubmatch(line)
	if match == nil {
		return line
	}
	speaker, rest := match[1], match[2]
	if cfg.ColonOnlyIfUppercase && speaker != strings.ToUpper(speaker) {
		return line
	}
	return rest
}

// onlyMusic reports whether the line holds nothing but music symbols and
// whitespace, with at least one symbol present.
func onlyMusic(line string) bool {
	found := false
	for _, r := range line {
		switch {
		case musicSymbols[r]:
			found = true
		case unicode.IsSpace(r):
		default:
			return false
		}
	}
	return found
}
