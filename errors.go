package huffman

import (
	"github.com/pkg/errors"
)

// ErrMissingSymbol is returned by Compress when the input contains a symbol
// that has no code in the CodeTable.  It means the table was not derived from
// the same input, which is a programming error on the caller's side.
var ErrMissingSymbol = errors.New("huffman: symbol missing from code table")

// ErrTruncated is returned by BitReader when the bitstream's trailer byte is
// missing or out of range.
var ErrTruncated = errors.New("huffman: truncated bitstream")

// IOError reports a failure of the underlying source or sink.
type IOError struct {
	Op  string
	Err error
}

// Error returns the error message.
func (e *IOError) Error() string {
	return "huffman: " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying I/O error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// Cause returns the underlying I/O error, for github.com/pkg/errors.Cause.
func (e *IOError) Cause() error {
	return e.Err
}

func ioError(op string, err error) error {
	if err == nil {
		return nil
	}
	var already *IOError
	if errors.As(err, &already) {
		return err
	}
	return errors.WithStack(&IOError{Op: op, Err: err})
}
