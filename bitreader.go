package huffman

// BitReader is the inverse of BitWriter.  It yields the significant bits of a
// packed byte sequence one at a time, most significant bit first, and never
// yields the padding bits at the bottom of the final byte.
type BitReader struct {
	data []byte
	pos  uint64
	end  uint64
}

// NewBitReader returns a BitReader over data, where the low trailingBits bits
// of the final byte are padding.
func NewBitReader(data []byte, trailingBits byte) (*BitReader, error) {
	if trailingBits > 7 {
		return nil, malformedPayloadf("trailing bit count %d out of range [0,7]", trailingBits)
	}
	if len(data) == 0 && trailingBits != 0 {
		return nil, malformedPayloadf("trailing bit count %d with no data", trailingBits)
	}
	end := uint64(len(data))*8 - uint64(trailingBits)
	return &BitReader{data: data, end: end}, nil
}

// ReadBit returns the next significant bit.  The second return value is false
// once every significant bit has been consumed.
func (r *BitReader) ReadBit() (bit byte, ok bool) {
	if r.pos >= r.end {
		return 0, false
	}
	b := r.data[r.pos>>3]
	bit = (b >> (7 - byte(r.pos&7))) & 1
	r.pos++
	return bit, true
}

// Remaining returns the number of significant bits not yet consumed.
func (r *BitReader) Remaining() uint64 {
	return r.end - r.pos
}
