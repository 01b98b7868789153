package huffman

import (
	"bufio"
	"io"
)

// Decompress reads a bitstream produced by Compress from r and writes the
// decoded symbols to w.  tree must be the tree the CodeTable passed to
// Compress was built from.
//
// Decoding walks tree from the root, taking the left child on a 0 bit and the
// right child on a 1 bit.  Arriving at a leaf completes a symbol, which is
// emitted before the next bit is consumed.  The final symbol is only known to
// be complete once the bits run out, so it is emitted after the loop.
//
// A degenerate tree is its own leaf: every bit stands for one occurrence of
// its symbol and no descent happens.  The empty tree decodes to nothing
// without reading r.
//
func Decompress(r io.Reader, w io.Writer, tree *Tree) (err error) {
	if tree.Empty() {
		return nil
	}

	out := bufio.NewWriter(w)
	defer func() {
		if flushErr := out.Flush(); flushErr != nil && err == nil {
			err = ioError("write output", flushErr)
		}
	}()

	nodes := tree.nodes
	root := tree.root()
	degenerate := tree.Degenerate()

	br := NewBitReader(r)
	pos := root
	for br.More() {
		if nodes[pos].isLeaf() {
			if err := out.WriteByte(byte(nodes[pos].symbol)); err != nil {
				return ioError("write output", err)
			}
			pos = root
		}

		bit, err := br.ReadBit()
		if err != nil {
			return err
		}
		if degenerate {
			continue
		}
		if bit {
			pos = nodes[pos].right
		} else {
			pos = nodes[pos].left
		}
	}
	if err := br.Err(); err != nil {
		return err
	}

	if !degenerate && nodes[pos].isLeaf() {
		if err := out.WriteByte(byte(nodes[pos].symbol)); err != nil {
			return ioError("write output", err)
		}
	}
	return nil
}
