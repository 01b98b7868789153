package huffman

import (
	"bufio"
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// BitWriter packs individual bits into bytes, most significant bit first.
//
// Errors are sticky: once a write fails, every later call returns the same
// error.  Close must be called exactly once to flush the last partial byte and
// the trailer; it does not close the underlying io.Writer.
//
type BitWriter struct {
	w      *bitio.CountWriter
	n      int64 // bits written before Close
	err    error
	closed bool
}

// NewBitWriter returns a BitWriter that writes to w.
func NewBitWriter(w io.Writer) *BitWriter {
	return &BitWriter{w: bitio.NewCountWriter(w)}
}

// WriteBit appends one bit: 1 if bit is true, 0 otherwise.
func (bw *BitWriter) WriteBit(bit bool) error {
	if err := bw.check(); err != nil {
		return err
	}
	if err := bw.w.WriteBool(bit); err != nil {
		bw.err = ioError("write bitstream", err)
	}
	return bw.err
}

// WriteCode appends every bit of hc, in order.
func (bw *BitWriter) WriteCode(hc Code) error {
	if err := bw.check(); err != nil {
		return err
	}
	if hc.Size == 0 {
		return nil
	}
	if err := bw.w.WriteBits(hc.Bits, hc.Size); err != nil {
		bw.err = ioError("write bitstream", err)
	}
	return bw.err
}

// Len returns the number of bits written so far, not counting padding or the
// trailer.
func (bw *BitWriter) Len() int64 {
	if bw.closed {
		return bw.n
	}
	return bw.w.BitsCount
}

// Close zero-pads the last partial byte, appends the trailer byte, and flushes
// everything to the underlying io.Writer.  If no bits were written, nothing is
// written at all.  Calling Close more than once is harmless.
func (bw *BitWriter) Close() error {
	if bw.closed {
		return bw.err
	}
	n := bw.w.BitsCount
	bw.n = n
	bw.closed = true
	if bw.err != nil {
		return bw.err
	}

	if n != 0 {
		if _, err := bw.w.Align(); err != nil {
			bw.err = ioError("flush bitstream", err)
			return bw.err
		}
		if err := bw.w.WriteByte(lastByteBits(n)); err != nil {
			bw.err = ioError("write trailer", err)
			return bw.err
		}
	}
	if err := bw.w.Close(); err != nil {
		bw.err = ioError("flush bitstream", err)
	}
	return bw.err
}

func (bw *BitWriter) check() error {
	if bw.err != nil {
		return bw.err
	}
	if bw.closed {
		bw.err = errors.New("huffman: write to closed BitWriter")
	}
	return bw.err
}

// lastByteBits returns how many bits of the final byte are meaningful when n
// bits were written in total.
func lastByteBits(n int64) byte {
	return byte((n-1)%8 + 1)
}

// BitReader reads back the bits written by a BitWriter.
//
// More reports whether genuine bits remain: the zero padding in the final
// byte and the trailer byte are never returned by ReadBit.
//
type BitReader struct {
	src *trailerReader
	r   *bitio.CountReader
	err error
}

// NewBitReader returns a BitReader that reads from r.  It buffers r, so the
// caller should not read from r afterwards.
func NewBitReader(r io.Reader) *BitReader {
	src := &trailerReader{br: bufio.NewReader(r)}
	return &BitReader{src: src, r: bitio.NewCountReader(src)}
}

// More returns true iff at least one more bit can be read.  It returns false
// on error; Err returns the error in that case.
func (br *BitReader) More() bool {
	if br.err != nil {
		return false
	}
	consumed := br.r.BitsCount
	if br.src.done {
		return consumed < br.src.totalBits()
	}
	if consumed < br.src.delivered*8 {
		return true
	}
	more, err := br.src.hasData()
	if err != nil {
		br.err = err
		return false
	}
	return more
}

// ReadBit reads the next bit.  It returns io.EOF once the genuine bits are
// exhausted.
func (br *BitReader) ReadBit() (bool, error) {
	if !br.More() {
		if br.err != nil {
			return false, br.err
		}
		return false, io.EOF
	}
	bit, err := br.r.ReadBool()
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		if !errors.Is(err, ErrTruncated) {
			err = ioError("read bitstream", err)
		}
		br.err = err
		return false, br.err
	}
	return bit, nil
}

// Len returns the number of bits read so far.
func (br *BitReader) Len() int64 {
	return br.r.BitsCount
}

// Err returns the first error encountered, if any.  Reaching the end of the
// bitstream is not an error.
func (br *BitReader) Err() error {
	return br.err
}

// type trailerReader {{{

// trailerReader hands out the data bytes of a bitstream and holds back the
// trailer byte that follows them.
type trailerReader struct {
	br        *bufio.Reader
	delivered int64 // number of data bytes handed out
	lastBits  byte  // meaningful bits in the last data byte, once done
	done      bool  // true once the trailer has been consumed
	err       error
}

func (t *trailerReader) totalBits() int64 {
	return (t.delivered-1)*8 + int64(t.lastBits)
}

// hasData returns true iff at least one more data byte follows.
func (t *trailerReader) hasData() (bool, error) {
	if t.err != nil {
		return false, t.err
	}
	if t.done {
		return false, nil
	}
	peek, err := t.br.Peek(2)
	switch {
	case len(peek) == 2:
		return true, nil
	case err != nil && err != io.EOF:
		t.err = ioError("read bitstream", err)
	case len(peek) == 0 && t.delivered == 0:
		return false, nil
	default:
		t.err = errors.WithStack(ErrTruncated)
	}
	return false, t.err
}

func (t *trailerReader) ReadByte() (byte, error) {
	if t.err != nil {
		return 0, t.err
	}
	if t.done {
		return 0, io.EOF
	}
	more, err := t.hasData()
	if err != nil {
		return 0, err
	}
	if !more {
		return 0, io.EOF
	}

	b, err := t.br.ReadByte()
	if err != nil {
		t.err = ioError("read bitstream", err)
		return 0, t.err
	}
	t.delivered++

	peek, err := t.br.Peek(2)
	if err != nil && err != io.EOF {
		t.err = ioError("read bitstream", err)
		return 0, t.err
	}
	if len(peek) == 1 {
		trailer := peek[0]
		if trailer < 1 || trailer > 8 {
			t.err = errors.Wrapf(ErrTruncated, "trailer byte %d out of range", trailer)
			return 0, t.err
		}
		if _, err := t.br.Discard(1); err != nil {
			t.err = ioError("read bitstream", err)
			return 0, t.err
		}
		t.lastBits = trailer
		t.done = true
	}
	return b, nil
}

func (t *trailerReader) Read(p []byte) (int, error) {
	for i := range p {
		b, err := t.ReadByte()
		if err != nil {
			return i, err
		}
		p[i] = b
	}
	return len(p), nil
}

var _ io.ByteReader = (*trailerReader)(nil)

// }}}
