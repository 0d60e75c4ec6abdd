package huffman

import (
	"bytes"
	"encoding"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// Payload wire format
//
// A marshaled Payload is a protobuf message with the following fields.
// Absent fields take their zero values, and unknown fields are skipped.  The
// zero Payload marshals to zero bytes.
//
//   1 tree           bytes   tree shape, in pre-order, packed MSB-first:
//                            a 1 bit followed by 8 Symbol bits for a leaf,
//                            or a 0 bit followed by the Left subtree and
//                            then the Right subtree for an internal node;
//                            zero padded to a byte boundary
//   2 weights        bytes   leaf weights in the same pre-order, as packed
//                            varints
//   3 data           bytes   Payload.Data
//   4 trailing_bits  varint  Payload.TrailingBits
//   5 count          varint  Payload.Count
//
// Internal node weights are not stored; they are recomputed from the leaves.
//
const (
	fieldTree         protowire.Number = 1
	fieldWeights      protowire.Number = 2
	fieldData         protowire.Number = 3
	fieldTrailingBits protowire.Number = 4
	fieldCount        protowire.Number = 5
)

// MarshalBinary serializes this Payload.  It fails if the tree is invalid or
// TrailingBits is out of range.
func (p Payload) MarshalBinary() ([]byte, error) {
	if err := ValidateTree(p.Tree); err != nil {
		return nil, err
	}
	if p.TrailingBits > 7 {
		return nil, malformedPayloadf("trailing bit count %d out of range [0,7]", p.TrailingBits)
	}
	if len(p.Data) == 0 && p.TrailingBits != 0 {
		return nil, malformedPayloadf("trailing bit count %d with no data", p.TrailingBits)
	}

	var out []byte
	if p.Tree != nil {
		shape, weights, err := marshalTree(p.Tree)
		if err != nil {
			return nil, err
		}
		out = protowire.AppendTag(out, fieldTree, protowire.BytesType)
		out = protowire.AppendBytes(out, shape)
		out = protowire.AppendTag(out, fieldWeights, protowire.BytesType)
		out = protowire.AppendBytes(out, weights)
	}
	if len(p.Data) != 0 {
		out = protowire.AppendTag(out, fieldData, protowire.BytesType)
		out = protowire.AppendBytes(out, p.Data)
	}
	if p.TrailingBits != 0 {
		out = protowire.AppendTag(out, fieldTrailingBits, protowire.VarintType)
		out = protowire.AppendVarint(out, uint64(p.TrailingBits))
	}
	if p.Count != 0 {
		out = protowire.AppendTag(out, fieldCount, protowire.VarintType)
		out = protowire.AppendVarint(out, p.Count)
	}
	if out == nil {
		out = []byte{}
	}
	return out, nil
}

// UnmarshalBinary replaces this Payload with the one serialized in raw.  The
// rebuilt tree is checked with ValidateTree.  Errors match
// ErrMalformedPayload.
func (p *Payload) UnmarshalBinary(raw []byte) error {
	var (
		shape, weights, data []byte
		trailingBits, count  uint64
		hasTree              bool
	)

	for len(raw) > 0 {
		num, typ, n := protowire.ConsumeTag(raw)
		if n < 0 {
			return malformedPayloadf("field tag: %v", protowire.ParseError(n))
		}
		raw = raw[n:]

		switch {
		case num == fieldTree && typ == protowire.BytesType:
			shape, n = protowire.ConsumeBytes(raw)
			hasTree = true
		case num == fieldWeights && typ == protowire.BytesType:
			weights, n = protowire.ConsumeBytes(raw)
		case num == fieldData && typ == protowire.BytesType:
			data, n = protowire.ConsumeBytes(raw)
		case num == fieldTrailingBits && typ == protowire.VarintType:
			trailingBits, n = protowire.ConsumeVarint(raw)
		case num == fieldCount && typ == protowire.VarintType:
			count, n = protowire.ConsumeVarint(raw)
		default:
			n = protowire.ConsumeFieldValue(num, typ, raw)
		}
		if n < 0 {
			return malformedPayloadf("field %d: %v", num, protowire.ParseError(n))
		}
		raw = raw[n:]
	}

	if trailingBits > 7 {
		return malformedPayloadf("trailing bit count %d out of range [0,7]", trailingBits)
	}
	if len(data) == 0 && trailingBits != 0 {
		return malformedPayloadf("trailing bit count %d with no data", trailingBits)
	}

	if !hasTree {
		if len(data) != 0 || count != 0 || len(weights) != 0 {
			return malformedPayloadf("data present without a Huffman tree")
		}
		*p = Payload{}
		return nil
	}

	tree, err := unmarshalTree(shape, weights)
	if err != nil {
		return err
	}
	if err := ValidateTree(tree); err != nil {
		return err
	}

	*p = Payload{
		Tree:         tree,
		Data:         append([]byte(nil), data...),
		TrailingBits: byte(trailingBits),
		Count:        count,
	}
	return nil
}

var (
	_ encoding.BinaryMarshaler   = Payload{}
	_ encoding.BinaryUnmarshaler = (*Payload)(nil)
)

func marshalTree(root Node) (shape []byte, weights []byte, err error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	err = walkTree(root, func(node Node, _ Code, _ int) error {
		switch x := node.(type) {
		case *Leaf:
			if err := w.WriteBool(true); err != nil {
				return err
			}
			if err := w.WriteBits(uint64(x.Symbol), 8); err != nil {
				return err
			}
			weights = protowire.AppendVarint(weights, x.Freq)
		case *Internal:
			if err := w.WriteBool(false); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to write tree shape")
	}
	if err := w.Close(); err != nil {
		return nil, nil, errors.Wrap(err, "failed to flush tree shape")
	}
	return buf.Bytes(), weights, nil
}

func unmarshalTree(shape []byte, weights []byte) (Node, error) {
	tr := treeReader{
		bits:    bitio.NewReader(bytes.NewReader(shape)),
		weights: weights,
	}
	root, err := tr.readNode()
	if err != nil {
		return nil, err
	}
	if used := (tr.numBits + 7) / 8; used != len(shape) {
		return nil, malformedTreef("tree shape has %d bytes, used %d", len(shape), used)
	}
	if len(tr.weights) != 0 {
		return nil, malformedTreef("%d bytes of leaf weights left over", len(tr.weights))
	}
	return root, nil
}

type treeReader struct {
	bits         *bitio.Reader
	weights      []byte
	seen         [NumSymbols]bool
	numBits      int
	numInternals int
}

// readNode reads one subtree.  Recursion depth is bounded by the limit on
// internal nodes, which no valid tree exceeds.
func (tr *treeReader) readNode() (Node, error) {
	isLeaf, err := tr.bits.ReadBool()
	if err != nil {
		return nil, malformedTreef("truncated tree shape: %v", err)
	}
	tr.numBits++

	if !isLeaf {
		tr.numInternals++
		if tr.numInternals > NumSymbols-1 {
			return nil, malformedTreef("tree has more than %d internal nodes", NumSymbols-1)
		}
		left, err := tr.readNode()
		if err != nil {
			return nil, err
		}
		right, err := tr.readNode()
		if err != nil {
			return nil, err
		}
		return NewInternal(left, right), nil
	}

	u, err := tr.bits.ReadBits(8)
	if err != nil {
		return nil, malformedTreef("truncated tree shape: %v", err)
	}
	tr.numBits += 8

	symbol := Symbol(u)
	if tr.seen[symbol] {
		return nil, malformedTreef("duplicate leaf for symbol %d", symbol)
	}
	tr.seen[symbol] = true

	freq, n := protowire.ConsumeVarint(tr.weights)
	if n < 0 {
		return nil, malformedTreef("weight for symbol %d: %v", symbol, protowire.ParseError(n))
	}
	tr.weights = tr.weights[n:]
	if freq == 0 {
		return nil, malformedTreef("leaf for symbol %d has zero weight", symbol)
	}
	return &Leaf{Symbol: symbol, Freq: freq}, nil
}
