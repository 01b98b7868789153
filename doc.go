// Package huffman implements a lossless byte compressor built on classic
// tree-based Huffman codes.
//
// Compression is a pipeline of four steps, each producing an immutable value
// that feeds the next:
//
//     Analyze         input      → FrequencyTable
//     BuildTree       frequencies → *Tree
//     BuildCodeTable  *Tree      → CodeTable
//     Compress        CodeTable + input → bitstream
//
// Decompress inverts the last step.  It uses the *Tree, not the CodeTable, as
// its decoding automaton.  The tree is never written into the bitstream: the
// caller must supply it out-of-band, typically by rebuilding it from the same
// FrequencyTable.  BuildTree is deterministic, so equal tables always yield
// equal trees.
//
// The bitstream is packed most-significant-bit first.  If at least one bit was
// written, the zero-padded data bytes are followed by a single trailer byte
// holding the number of meaningful bits (1 through 8) in the last data byte.
// An empty bitstream is zero bytes long.  There is no header, no symbol count
// and no checksum; decoding a damaged stream, or decoding against the wrong
// tree, silently produces wrong output.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
