package huffman

import (
	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol to its Code.  Symbols that do not appear in the
// tree have a Code with Size 0.
type CodeTable [NumSymbols]Code

// BuildCodeTable walks a Huffman tree and assigns each leaf the Code spelled
// by the path from the root: 0 for each step Left, 1 for each step Right.
//
// A tree consisting of a lone leaf has no paths, so its Symbol is assigned
// the 1-bit Code "0".  The empty tree yields an empty table.
//
func BuildCodeTable(root Node) CodeTable {
	var codes CodeTable
	if leaf, ok := root.(*Leaf); ok {
		codes[leaf.Symbol] = MakeCode(1, 0)
		return codes
	}

	_ = walkTree(root, func(node Node, code Code, depth int) error {
		leaf, ok := node.(*Leaf)
		if !ok {
			return nil
		}
		assert.Assertf(depth <= MaxCodeSize, "symbol %d: code size %d > MaxCodeSize %d", leaf.Symbol, depth, MaxCodeSize)
		assert.Assertf(code.Size == MaxCodeSize || code.Bits>>code.Size == 0, "symbol %d: code %#x does not fit in %d bits", leaf.Symbol, code.Bits, code.Size)
		codes[leaf.Symbol] = code
		return nil
	})
	return codes
}

// Lookup returns the Code for symbol, and false if symbol has no Code.
func (codes *CodeTable) Lookup(symbol Symbol) (Code, bool) {
	hc := codes[symbol]
	return hc, hc.Size != 0
}
