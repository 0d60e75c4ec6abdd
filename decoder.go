package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
)

// Decoder implements a decoder for a byte-oriented Huffman code.  A Decoder
// is read-only once initialized, and may be shared between goroutines.
type Decoder struct {
	root       Node
	numSymbols int
	minSize    byte
	maxSize    byte
}

// NewDecoder is a convenience function that allocates and initializes a
// Decoder.
func NewDecoder(root Node) (*Decoder, error) {
	d := new(Decoder)
	if err := d.Init(root); err != nil {
		return nil, err
	}
	return d, nil
}

// Init initializes this Decoder with the root of a Huffman tree.  The tree is
// checked with ValidateTree, and trees whose codes would exceed MaxCodeSize
// bits are rejected.  Encode never builds such a tree, but a structurally
// valid tree from another encoder may be up to 255 levels deep, and Init
// refuses it.  A nil root is permitted; such a Decoder only accepts empty
// input.
func (d *Decoder) Init(root Node) error {
	if err := ValidateTree(root); err != nil {
		return err
	}
	if depth := TreeDepth(root); depth > MaxCodeSize {
		return malformedTreef("tree depth %d > MaxCodeSize %d", depth, MaxCodeSize)
	}

	var numSymbols int
	var minSize, maxSize byte
	for _, hc := range BuildCodeTable(root) {
		if hc.Size == 0 {
			continue
		}
		if numSymbols == 0 {
			minSize = hc.Size
			maxSize = hc.Size
		} else if minSize > hc.Size {
			minSize = hc.Size
		} else if maxSize < hc.Size {
			maxSize = hc.Size
		}
		numSymbols++
	}

	*d = Decoder{
		root:       root,
		numSymbols: numSymbols,
		minSize:    minSize,
		maxSize:    maxSize,
	}
	return nil
}

// Decode unpacks the packed code bits in data, of which the low trailingBits
// bits of the final byte are padding.  If count is non-zero, exactly count
// symbols must be decoded.  A lone-leaf tree requires data to spell out one 0
// bit per symbol, so the output never exceeds 8 bytes per byte of data.
//
// Decode fails with an error matching ErrMalformedPayload if the bits end
// partway through a code, or if the number of symbols disagrees with count.
// No partial output is returned on failure.
//
func (d Decoder) Decode(data []byte, trailingBits byte, count uint64) ([]byte, error) {
	br, err := NewBitReader(data, trailingBits)
	if err != nil {
		return nil, err
	}

	switch root := d.root.(type) {
	case nil:
		if br.Remaining() != 0 || count != 0 {
			return nil, malformedPayloadf("data present without a Huffman tree")
		}
		return []byte{}, nil

	case *Leaf:
		return decodeLoneLeaf(root.Symbol, br, count)
	}

	// Every code is at least one bit long, so a valid stream of count
	// symbols has at least count bits.
	if count > br.Remaining() {
		return nil, malformedPayloadf("%d bits cannot hold %d symbols", br.Remaining(), count)
	}
	capacity := count
	if capacity == 0 && d.minSize != 0 {
		capacity = br.Remaining() / uint64(d.minSize)
	}
	out := make([]byte, 0, capacity)

	node := d.root
	var depth int
	for {
		bit, ok := br.ReadBit()
		if !ok {
			break
		}
		in := node.(*Internal)
		if bit == 0 {
			node = in.Left
		} else {
			node = in.Right
		}
		depth++
		if leaf, ok := node.(*Leaf); ok {
			out = append(out, byte(leaf.Symbol))
			node = d.root
			depth = 0
		}
	}

	if depth != 0 {
		return nil, malformedPayloadf("bit stream ends %d bits into a code after %d symbols", depth, len(out))
	}
	if count != 0 && uint64(len(out)) != count {
		return nil, malformedPayloadf("decoded %d symbols, expected %d", len(out), count)
	}
	return out, nil
}

const maxInt = int(^uint(0) >> 1)

func decodeLoneLeaf(symbol Symbol, br *BitReader, count uint64) ([]byte, error) {
	n := br.Remaining()
	if n == 0 {
		return nil, malformedPayloadf("no code bits for single-symbol tree")
	}
	if count != 0 && n != count {
		return nil, malformedPayloadf("%d bits cannot hold %d single-bit codes", n, count)
	}
	if n > uint64(maxInt) {
		return nil, malformedPayloadf("symbol count %d too large", n)
	}
	for {
		bit, ok := br.ReadBit()
		if !ok {
			break
		}
		if bit != 0 {
			return nil, malformedPayloadf("unexpected 1 bit in single-symbol stream")
		}
	}
	return bytes.Repeat([]byte{byte(symbol)}, int(n)), nil
}

// Tree returns the root of the Huffman tree.
func (d Decoder) Tree() Node {
	return d.root
}

// MinSize is the bit length of the shortest legal code.
func (d Decoder) MinSize() byte {
	return d.minSize
}

// MaxSize is the bit length of the longest legal code.
func (d Decoder) MaxSize() byte {
	return d.maxSize
}

// NumSymbols returns the number of Symbols that have a Code.
func (d Decoder) NumSymbols() int {
	return d.numSymbols
}

// String returns a brief description of this Decoder.
func (d Decoder) String() string {
	return fmt.Sprintf("(Huffman decoder with %d symbols, with coded lengths of %d .. %d bits)", d.numSymbols, d.minSize, d.maxSize)
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer, listing each Code in order of length.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	codes := BuildCodeTable(d.root)
	keys := make(byCode, 0, d.numSymbols)
	symbols := make(map[Code]Symbol, d.numSymbols)
	for symbol, hc := range codes {
		if hc.Size != 0 {
			keys = append(keys, hc)
			symbols[hc] = Symbol(symbol)
		}
	}
	keys.Sort()

	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)
	for _, hc := range keys {
		fmt.Fprintf(&buf, "\tDecode(%s) = %d\n", hc, symbols[hc])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

var _ fmt.Stringer = Decoder{}

// Decode recovers the original bytes from a Payload produced by Encode.  The
// zero Payload decodes to empty output.
//
// The root weight of p.Tree is the length of the original input, so the
// number of decoded symbols must equal it.  A root weight that saturated at
// the maximum uint64 carries no length, and only p.Count is checked.
//
// Decode fails with an error matching ErrMalformedPayload if the bit stream
// does not end exactly at the root of the tree, if the number of decoded
// symbols disagrees with p.Count or the root weight, or if p.Tree is
// structurally invalid (in which case the error also matches
// ErrMalformedTree).
//
func Decode(p Payload) ([]byte, error) {
	var d Decoder
	if err := d.Init(p.Tree); err != nil {
		return nil, err
	}

	count := p.Count
	if p.Tree != nil {
		if weight := p.Tree.Weight(); weight != saturatedWeight {
			if count != 0 && count != weight {
				return nil, malformedPayloadf("symbol count %d disagrees with tree weight %d", count, weight)
			}
			count = weight
		}
	}
	return d.Decode(p.Data, p.TrailingBits, count)
}

const saturatedWeight = ^uint64(0)

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	as, ab := a.Size, a.Bits
	bs, bb := b.Size, b.Bits
	if as != bs {
		return as < bs
	}
	return ab < bb
}

var _ sort.Interface = byCode(nil)

// }}}
