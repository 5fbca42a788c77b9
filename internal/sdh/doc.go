// Package sdh transforms SDH (Subtitles for the Deaf and Hard-of-hearing)
// SubRip text into dialogue-only "full" and on-screen-text "forced" variants.
//
// Cleaning runs line by line: markup tags, brace override codes, and escaped
// newlines are shielded before any rule fires and restored verbatim
// afterward, so annotation removal can never corrupt embedded formatting.
// Entries are processed as units; the forced filter keeps an entry only when
// every one of its lines reads as on-screen text.
package sdh
