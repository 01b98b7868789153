package huffman

import (
	"io"
)

// FrequencyTable maps each Symbol to the number of times it occurs in the
// input.  Symbols that never occur are absent.
//
// FrequencyTable implements io.Writer, so an input can be counted with
// io.Copy.  It is not safe for concurrent use while being filled.
//
type FrequencyTable map[Symbol]uint64

// Analyze reads r to EOF and counts every symbol in it.  An empty input yields
// an empty, non-nil table.
func Analyze(r io.Reader) (FrequencyTable, error) {
	freqs := make(FrequencyTable)
	if _, err := io.Copy(freqs, r); err != nil {
		return nil, ioError("read input", err)
	}
	return freqs, nil
}

// Add counts every symbol in p.
func (freqs FrequencyTable) Add(p []byte) {
	for _, b := range p {
		freqs[Symbol(b)]++
	}
}

// Write counts every symbol in p.  It never fails.
func (freqs FrequencyTable) Write(p []byte) (int, error) {
	freqs.Add(p)
	return len(p), nil
}

// Total returns the sum of all counts, i.e. the length of the input.
func (freqs FrequencyTable) Total() uint64 {
	var sum uint64
	for _, count := range freqs {
		sum += count
	}
	return sum
}

// Symbols returns the symbols in the table in ascending order.
func (freqs FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, 0, len(freqs))
	for i := 0; i <= int(MaxSymbol) && len(out) < len(freqs); i++ {
		if _, found := freqs[Symbol(i)]; found {
			out = append(out, Symbol(i))
		}
	}
	return out
}

var _ io.Writer = FrequencyTable(nil)
