package huffman

import (
	"github.com/chronos-tachyon/assert"
)

// BitWriter packs values of arbitrary bit width into a contiguous byte
// sequence, most significant bit first.  The zero value is an empty
// BitWriter, ready to use.
type BitWriter struct {
	buf  []byte
	cur  byte
	free byte
	n    uint64
}

// WriteBits appends the low width bits of value to the stream.  Any bits of
// value above width are silently discarded.  Width must not exceed
// MaxCodeSize.
//
// A write that does not fit in the current partial byte is split: the
// high-order bits fill and flush the partial byte, and the remaining
// low-order bits continue into fresh bytes.  The resulting bit order is the
// same as if the write had not been split.
//
func (w *BitWriter) WriteBits(value uint64, width byte) {
	assert.Assertf(width <= MaxCodeSize, "width %d > MaxCodeSize %d", width, MaxCodeSize)

	if w.free == 0 {
		w.free = 8
	}

	value &= lowMask(width)
	w.n += uint64(width)

	for width > w.free {
		shift := width - w.free
		w.cur |= byte(value >> shift)
		w.buf = append(w.buf, w.cur)
		w.cur = 0
		w.free = 8
		width = shift
		value &= lowMask(width)
	}

	w.free -= width
	w.cur |= byte(value << w.free)
	if w.free == 0 {
		w.buf = append(w.buf, w.cur)
		w.cur = 0
		w.free = 8
	}
}

// Len returns the total number of bits written so far.
func (w *BitWriter) Len() uint64 {
	return w.n
}

// Finish flushes the partial trailing byte, if any, and returns the packed
// bytes along with the number of low-order padding bits in the final byte.
// The padding count is 0 whenever the stream ends on a byte boundary,
// including when nothing was written at all.
//
// The BitWriter is reset to its zero value.
//
func (w *BitWriter) Finish() (data []byte, trailingBits byte) {
	data = w.buf
	if w.free != 0 && w.free != 8 {
		data = append(data, w.cur)
		trailingBits = w.free
	}
	*w = BitWriter{}
	return data, trailingBits
}

func lowMask(width byte) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << width) - 1
}
