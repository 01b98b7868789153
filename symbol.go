package huffman

import (
	"math"
)

// Symbol represents one code unit of the input stream.
type Symbol byte

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxUint8)
