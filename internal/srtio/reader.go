package srtio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadLines decodes a subtitle stream into terminator-stripped lines. Byte
// order marks select the decoder (UTF-8, UTF-16 LE/BE); unmarked input is
// treated as UTF-8. Carriage returns from CRLF files are stripped.
func ReadLines(r io.Reader) ([]string, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read subtitle stream: %w", err)
	}
	return lines, nil
}

// ReadFile reads lines from path, or from stdin when path is empty.
func ReadFile(path string) ([]string, error) {
	if path == "" {
		return ReadLines(os.Stdin)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer file.Close()
	return ReadLines(file)
}
