package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chipng2262/huffman"
)

func TestRun_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "sample.txt")
	if err := os.WriteFile(in, []byte("a man a plan a canal panama"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	var stdout strings.Builder
	if err := run([]string{"roundtrip", "-in", in, "-baseline"}, &stdout); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	out := stdout.String()
	if !strings.HasSuffix(out, "Successful.\n") {
		t.Errorf("expected success, got:\n%s", out)
	}
	if !strings.Contains(out, "27 -> 10 bytes") {
		t.Errorf("expected the size line, got:\n%s", out)
	}
	if !strings.Contains(out, "zstd baseline") {
		t.Errorf("expected the baseline line, got:\n%s", out)
	}

	compressed, decompressed := roundTripPaths(in)
	for _, path := range []string{compressed, decompressed} {
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("expected %s to be removed, got %v", path, err)
		}
	}
}

func TestRun_RoundTripKeep(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(in, nil, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	var stdout strings.Builder
	if err := run([]string{"roundtrip", "-keep", "-in", in}, &stdout); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.HasSuffix(stdout.String(), "Successful.\n") {
		t.Errorf("expected success, got:\n%s", stdout.String())
	}

	compressed, decompressed := roundTripPaths(in)
	for _, path := range []string{compressed, decompressed} {
		fi, err := os.Stat(path)
		if err != nil {
			t.Fatalf("expected %s to be kept: %v", path, err)
		}
		if fi.Size() != 0 {
			t.Errorf("%s: expected 0 bytes, got %d", path, fi.Size())
		}
	}
}

func TestRun_CompressDecompress(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "input.bin")
	packed := filepath.Join(dir, "input.huff")
	freq := filepath.Join(dir, "input.json")
	restored := filepath.Join(dir, "restored.bin")
	if err := os.WriteFile(in, []byte("abracadabra\x00\xff"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if err := run([]string{"compress", "-in", in, "-out", packed, "-freq", freq}, os.Stdout); err != nil {
		t.Fatalf("compress failed: %v", err)
	}
	if err := run([]string{"decompress", "-in", packed, "-out", restored, "-freq", freq}, os.Stdout); err != nil {
		t.Fatalf("decompress failed: %v", err)
	}

	same, err := huffman.SameContents(in, restored)
	if err != nil {
		t.Fatalf("SameContents failed: %v", err)
	}
	if !same {
		t.Errorf("%s differs from %s", restored, in)
	}
}

func TestRun_BadArgs(t *testing.T) {
	testData := [...][]string{
		nil,
		{"explode"},
		{"compress", "-in", "x"},
		{"decompress"},
		{"roundtrip"},
	}
	for _, args := range testData {
		if err := run(args, os.Stdout); err == nil {
			t.Errorf("run(%q): expected an error", args)
		}
	}
}

func TestRoundTripPaths(t *testing.T) {
	compressed, decompressed := roundTripPaths(filepath.Join("dir", "book.txt"))
	if expect := filepath.Join("dir", "book_compressed.txt"); compressed != expect {
		t.Errorf("expected %s, got %s", expect, compressed)
	}
	if expect := filepath.Join("dir", "book_decompressed.txt"); decompressed != expect {
		t.Errorf("expected %s, got %s", expect, decompressed)
	}
}
