package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Encoder implements an encoder for a byte-oriented Huffman code.  An Encoder
// is read-only once initialized, and may be shared between goroutines.
type Encoder struct {
	tree    Node
	codes   []Code
	minSize byte
	maxSize byte
}

// NewEncoder is a convenience function that allocates and initializes an
// Encoder.
func NewEncoder(frequencies FrequencyTable) *Encoder {
	e := new(Encoder)
	e.Init(frequencies)
	return e
}

// Init initializes this Encoder from the frequency (i.e. number of
// occurrences) of each Symbol.  Symbols with a frequency of 0 receive no
// Code.
func (e *Encoder) Init(frequencies FrequencyTable) {
	tree := BuildTree(frequencies)
	codes := BuildCodeTable(tree)

	var minSize, maxSize byte
	var hasMinMax bool
	for symbol := 0; symbol < NumSymbols; symbol++ {
		size := codes[symbol].Size
		if size == 0 {
			continue
		}
		if !hasMinMax {
			hasMinMax = true
			minSize = size
			maxSize = size
		} else if minSize > size {
			minSize = size
		} else if maxSize < size {
			maxSize = size
		}
	}

	*e = Encoder{
		tree:    tree,
		codes:   codes[:],
		minSize: minSize,
		maxSize: maxSize,
	}
}

// Encode returns the Code for a Symbol.  The Code has Size 0 if the Symbol
// had a frequency of 0.
func (e Encoder) Encode(symbol Symbol) Code {
	return e.codes[symbol]
}

// EncodeBytes packs data using this Encoder's code.  Every byte of data must
// have had a non-zero frequency when the Encoder was initialized.
//
// The package-level Decode checks the decoded length against the root weight
// of the tree, so it only accepts the result if the Encoder was initialized
// with the frequencies of data itself.  Otherwise decode with a Decoder and
// the returned Count.
//
func (e Encoder) EncodeBytes(data []byte) Payload {
	if len(data) == 0 {
		return Payload{}
	}
	assert.Assertf(e.codes != nil, "Encoder is not initialized")

	var w BitWriter
	for _, b := range data {
		hc := e.codes[b]
		assert.Assertf(hc.Size != 0, "symbol %d has no code", b)
		w.WriteBits(hc.Bits, hc.Size)
	}

	packed, trailingBits := w.Finish()
	return Payload{
		Tree:         e.tree,
		Data:         packed,
		TrailingBits: trailingBits,
		Count:        uint64(len(data)),
	}
}

// Tree returns the root of the Huffman tree, or nil if every frequency was 0.
func (e Encoder) Tree() Node {
	return e.tree
}

// MinSize is the bit length of the shortest legal code.
func (e Encoder) MinSize() byte {
	return e.minSize
}

// MaxSize is the bit length of the longest legal code.
func (e Encoder) MaxSize() byte {
	return e.maxSize
}

// SizeBySymbol returns an array containing the bit length for each Symbol in
// the alphabet.
func (e Encoder) SizeBySymbol() []byte {
	out := make([]byte, NumSymbols)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		out[symbol] = e.codes[symbol].Size
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.  Symbols without a Code are omitted.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		hc := e.codes[symbol]
		if hc.Size != 0 {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Encode builds a Huffman code from the byte frequencies of data and packs
// data with it.  Empty input yields the zero Payload.
func Encode(data []byte) Payload {
	if len(data) == 0 {
		return Payload{}
	}
	var e Encoder
	e.Init(CountFrequencies(data))
	return e.EncodeBytes(data)
}
