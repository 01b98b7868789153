package huffman

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// Compress reads r to EOF and writes the code of every symbol, in order, to w
// as a bitstream.
//
// If table is empty, which is what an empty input produces, nothing is read
// and nothing is written.  A symbol without a code in table fails with
// ErrMissingSymbol: table must have been built from the same input.  Failures
// of r or w are returned as *IOError.  On failure, whatever w has received is
// not a valid bitstream.
//
func Compress(table CodeTable, r io.Reader, w io.Writer) (err error) {
	if len(table) == 0 {
		return nil
	}

	bw := NewBitWriter(w)
	defer func() {
		if closeErr := bw.Close(); err == nil {
			err = closeErr
		}
	}()

	in := bufio.NewReader(r)
	for offset := int64(0); ; offset++ {
		b, readErr := in.ReadByte()
		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return ioError("read input", readErr)
		}

		hc, found := table[Symbol(b)]
		if !found {
			return errors.Wrapf(ErrMissingSymbol, "symbol %q at offset %d", b, offset)
		}
		if err := bw.WriteCode(hc); err != nil {
			return err
		}
	}
}
