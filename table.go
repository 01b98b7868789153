package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol to its Code.  It is only needed for encoding;
// decoding walks the Tree instead.
type CodeTable map[Symbol]Code

// BuildCodeTable derives the code of every leaf in t.  Descending to a left
// child appends a 0 bit, descending to a right child appends a 1 bit.
//
// A degenerate tree has no branches to descend, so its lone symbol is given
// the one-bit code "1".  The empty tree yields an empty table.
//
func BuildCodeTable(t *Tree) CodeTable {
	table := make(CodeTable, t.NumSymbols())
	if t.Empty() {
		return table
	}

	if t.Degenerate() {
		table[t.nodes[t.root()].symbol] = MakeCode(1, 1)
		return table
	}

	t.walk(func(n node, path Code) {
		if !n.isLeaf() {
			return
		}
		_, dup := table[n.symbol]
		assert.Assertf(!dup, "symbol %q appears in more than one leaf", n.symbol)
		table[n.symbol] = path
	})
	return table
}

// MinSize is the bit length of the shortest code.
func (table CodeTable) MinSize() byte {
	var minSize byte
	for _, hc := range table {
		if minSize == 0 || hc.Size < minSize {
			minSize = hc.Size
		}
	}
	return minSize
}

// MaxSize is the bit length of the longest code.
func (table CodeTable) MaxSize() byte {
	var maxSize byte
	for _, hc := range table {
		if hc.Size > maxSize {
			maxSize = hc.Size
		}
	}
	return maxSize
}

// EncodedBits returns the number of bits Compress emits for an input whose
// symbol counts are freqs.  It panics if freqs has a symbol the table lacks.
func (table CodeTable) EncodedBits(freqs FrequencyTable) uint64 {
	var sum uint64
	for symbol, count := range freqs {
		hc, found := table[symbol]
		assert.Assertf(found, "symbol %q has no code", symbol)
		sum += count * uint64(hc.Size)
	}
	return sum
}

// Symbols returns the symbols in the table in ascending order.
func (table CodeTable) Symbols() []Symbol {
	out := make([]Symbol, 0, len(table))
	for symbol := range table {
		out = append(out, symbol)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (table CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", table.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", table.MaxSize())
	for _, symbol := range table.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%q) = %s\n", symbol, table[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
