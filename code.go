package huffman

import (
	"fmt"
	"strconv"
)

// MaxCodeSize is the maximum number of bits in a single Code.
//
// A byte-oriented Huffman tree deeper than 64 levels requires a total input
// length of at least Fib(66) bytes, so this bound is never reached in
// practice.
//
const MaxCodeSize = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant valid
	// bit of Bits (bit Size-1) is the first bit, and the least significant
	// bit of Bits is the last bit.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// Append returns the Code that results from appending one bit to this Code.
func (hc Code) Append(bit byte) Code {
	return Code{Size: hc.Size + 1, Bits: (hc.Bits << 1) | uint64(bit&1)}
}

// HasPrefix returns true iff prefix is a prefix of this Code.  Every Code has
// the empty Code as a prefix, and every Code is a prefix of itself.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	shift := hc.Size - prefix.Size
	if shift >= 64 {
		return prefix.Size == 0
	}
	return hc.Bits>>shift == prefix.Bits
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}
