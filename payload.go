package huffman

// Payload is the self-contained result of Encode: the Huffman tree, the
// packed code bits, and everything else Decode needs to recover the input.
//
// The zero Payload is the encoding of empty input.
type Payload struct {
	// Tree is the root of the Huffman tree, or nil for empty input.
	Tree Node

	// Data holds the packed code bits, most significant bit first.
	Data []byte

	// TrailingBits is the number of low-order padding bits in the final
	// byte of Data.  It is always in the range [0,7].
	TrailingBits byte

	// Count is the number of symbols that were encoded.  It is required
	// when Tree is a lone leaf; otherwise it is checked if non-zero.
	Count uint64
}

// IsEmpty returns true iff this Payload encodes empty input.
func (p Payload) IsEmpty() bool {
	return p.Tree == nil
}

// TotalBits returns the number of significant bits in Data.
func (p Payload) TotalBits() uint64 {
	if len(p.Data) == 0 {
		return 0
	}
	return uint64(len(p.Data))*8 - uint64(p.TrailingBits)
}
