package srtio

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"golang.org/x/text/encoding/unicode"
)

func TestReadLinesStripsBOMAndCR(t *testing.T) {
	input := "\xef\xbb\xbf1\r\n00:00:01,000 --> 00:00:02,000\r\nHello.\r\n"
	lines, err := ReadLines(bytes.NewReader([]byte(input)))
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	want := []string{"1", "00:00:01,000 --> 00:00:02,000", "Hello."}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("got %v, want %v", lines, want)
	}
}

func TestReadLinesDecodesUTF16(t *testing.T) {
	encoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	encoded, err := encoder.Bytes([]byte("1\nHÉLLO\n"))
	if err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	lines, err := ReadLines(bytes.NewReader(encoded))
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	want := []string{"1", "HÉLLO"}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("got %v, want %v", lines, want)
	}
}

func TestJoin(t *testing.T) {
	if got := Join(nil); got != "" {
		t.Fatalf("empty input should produce empty blob, got %q", got)
	}
	if got := Join([]string{"a", "", "b"}); got != "a\n\nb\n" {
		t.Fatalf("got %q", got)
	}
}

func TestWriteFileAndReadFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.srt")
	lines := []string{"1", "00:00:01,000 --> 00:00:02,000", "Hello.", ""}
	if err := WriteFile(path, lines); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := []string{"1", "00:00:01,000 --> 00:00:02,000", "Hello.", ""}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestRewriteInPlace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub.srt")
	if err := os.WriteFile(path, []byte("old\n"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	if err := RewriteInPlace(path, []string{"new"}); err != nil {
		t.Fatalf("RewriteInPlace: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "new\n" {
		t.Fatalf("got %q", data)
	}
	if _, err := os.Stat(path + ".lock"); !os.IsNotExist(err) {
		t.Fatalf("lock file should be removed, stat err=%v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file should be gone, stat err=%v", err)
	}
}
