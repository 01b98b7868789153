package huffman

import (
	"bytes"
	"math/rand/v2"
	"testing"

	"github.com/pkg/errors"
)

var errBoom = errors.New("boom")

// failingWriter fails every write.
type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errBoom
}

// failingReader fails every read and counts the attempts.
type failingReader struct {
	calls int
}

func (r *failingReader) Read(p []byte) (int, error) {
	r.calls++
	return 0, errBoom
}

// pipeline runs the whole codec over input and returns the artifact and the
// decoded output.
func pipeline(t *testing.T, input []byte) (compressed []byte, decompressed []byte) {
	t.Helper()

	freqs, err := Analyze(bytes.NewReader(input))
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	tree := BuildTree(freqs)
	table := BuildCodeTable(tree)

	var packed bytes.Buffer
	if err := Compress(table, bytes.NewReader(input), &packed); err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	var unpacked bytes.Buffer
	if err := Decompress(bytes.NewReader(packed.Bytes()), &unpacked, tree); err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	return packed.Bytes(), unpacked.Bytes()
}

// randomInput returns n bytes drawn from the first k symbols of the alphabet,
// skewed so that low symbols are more frequent.
func randomInput(rng *rand.Rand, n int, k int) []byte {
	out := make([]byte, n)
	for i := range out {
		a, b := rng.IntN(k), rng.IntN(k)
		out[i] = byte(min(a, b))
	}
	return out
}

func TestLog2int(t *testing.T) {
	type testRow struct {
		in     int
		expect int
	}

	testData := [...]testRow{
		{in: -1, expect: 1},
		{in: 0, expect: 1},
		{in: 1, expect: 1},
		{in: 2, expect: 2},
		{in: 255, expect: 8},
		{in: 511, expect: 9},
	}
	for _, row := range testData {
		if actual := log2int(row.in); actual != row.expect {
			t.Errorf("log2int(%d): expected %d, got %d", row.in, row.expect, actual)
		}
	}
}
