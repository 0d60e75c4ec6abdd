package huffman

import (
	"container/heap"
)

// maxTreeNodes is the number of nodes in a full binary tree with one leaf per
// Symbol.  No valid tree has more.
const maxTreeNodes = 2*NumSymbols - 1

// Node is a node in a Huffman tree.  It is either a *Leaf or an *Internal.
type Node interface {
	// Weight returns the total frequency of all leaves at or below this
	// node.
	Weight() uint64

	isNode()
}

// Leaf is a Node that carries a Symbol.
type Leaf struct {
	Symbol Symbol
	Freq   uint64
}

// Weight returns the leaf's frequency.
func (leaf *Leaf) Weight() uint64 {
	if leaf == nil {
		return 0
	}
	return leaf.Freq
}

func (*Leaf) isNode() {}

// Internal is a Node with exactly two children.  Following Left appends a 0
// bit to the code, and following Right appends a 1 bit.
type Internal struct {
	Left  Node
	Right Node
	Sum   uint64
}

// NewInternal constructs an Internal node whose weight is the (saturating)
// sum of its children's weights.
func NewInternal(left, right Node) *Internal {
	return &Internal{
		Left:  left,
		Right: right,
		Sum:   addSaturating(left.Weight(), right.Weight()),
	}
}

// Weight returns the sum of the children's weights.
func (in *Internal) Weight() uint64 {
	if in == nil {
		return 0
	}
	return in.Sum
}

func (*Internal) isNode() {}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)

// BuildTree constructs a Huffman tree from a FrequencyTable by repeatedly
// merging the two lowest-weight nodes.  It returns nil if every frequency is
// zero, and a lone *Leaf if exactly one frequency is non-zero.
//
// Ties are broken by an order key: a leaf's key is its Symbol, and an
// internal node's key is NumSymbols plus the number of internal nodes created
// before it.  So among nodes of equal weight, leaves come first in Symbol
// order, followed by internal nodes from oldest to newest.  Of each merged
// pair, the node that sorts first becomes the Left child.
//
func BuildTree(frequencies FrequencyTable) Node {
	h := nodeHeap{make([]keyedNode, 0, NumSymbols)}
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if freq := frequencies[symbol]; freq != 0 {
			leaf := &Leaf{Symbol: Symbol(symbol), Freq: freq}
			h.list = append(h.list, keyedNode{leaf, uint32(symbol)})
		}
	}

	if h.Len() == 0 {
		return nil
	}

	h.Init()
	nextKey := uint32(NumSymbols)
	for h.Len() > 1 {
		a := heap.Pop(&h).(keyedNode)
		b := heap.Pop(&h).(keyedNode)
		heap.Push(&h, keyedNode{NewInternal(a.node, b.node), nextKey})
		nextKey++
	}
	return heap.Pop(&h).(keyedNode).node
}

// ValidateTree checks that root obeys the structural laws of a Huffman tree:
// no missing children, every leaf has a non-zero weight, every internal node
// weighs the (saturating) sum of its children, and no Symbol appears on more
// than one leaf.  A nil root is the valid empty tree.
//
// Violations are reported as errors matching ErrMalformedTree.
//
func ValidateTree(root Node) error {
	var seen [NumSymbols]bool
	return walkTree(root, func(node Node, _ Code, depth int) error {
		switch x := node.(type) {
		case nil:
			return malformedTreef("missing child at depth %d", depth)

		case *Leaf:
			if x == nil {
				return malformedTreef("nil leaf at depth %d", depth)
			}
			if x.Freq == 0 {
				return malformedTreef("leaf for symbol %d has zero weight", x.Symbol)
			}
			if seen[x.Symbol] {
				return malformedTreef("duplicate leaf for symbol %d", x.Symbol)
			}
			seen[x.Symbol] = true

		case *Internal:
			if x == nil {
				return malformedTreef("nil internal node at depth %d", depth)
			}
			if x.Left == nil || x.Right == nil {
				return malformedTreef("internal node at depth %d is missing a child", depth)
			}
			if sum := addSaturating(x.Left.Weight(), x.Right.Weight()); x.Sum != sum {
				return malformedTreef("internal node at depth %d has weight %d, children sum to %d", depth, x.Sum, sum)
			}

		default:
			return malformedTreef("unknown node type %T", node)
		}
		return nil
	})
}

// TreeDepth returns the depth of the deepest leaf, which is also the length
// of the longest code.  The empty tree and a lone leaf both have depth 0.
func TreeDepth(root Node) int {
	var maxDepth int
	_ = walkTree(root, func(_ Node, _ Code, depth int) error {
		if depth > maxDepth {
			maxDepth = depth
		}
		return nil
	})
	return maxDepth
}

// walkTree visits every node reachable from root in pre-order (node, then
// Left subtree, then Right subtree), passing each node's code and depth.  The
// walk stops at the first error returned by visit.
//
// We use an explicit stack instead of recursion.  stackItem.x tracks where we
// are at each internal node:
//   x=0 → We have not yet visited the left child
//   x=1 → We have already processed the left child
//   x=2 → We have already processed both children
//
// A tree with more than maxTreeNodes nodes cannot be valid, and may contain
// a cycle, so the walk gives up once it has seen that many.
//
func walkTree(root Node, visit func(node Node, code Code, depth int) error) error {
	if root == nil {
		return nil
	}
	if err := visit(root, Code{}, 0); err != nil {
		return err
	}
	top, ok := root.(*Internal)
	if !ok {
		return nil
	}

	type stackItem struct {
		node *Internal
		code Code
		x    byte
	}

	stack := make([]stackItem, 0, 16)
	stack = append(stack, stackItem{node: top})
	numVisited := 1

	processChild := func(child Node, code Code) error {
		numVisited++
		if numVisited > maxTreeNodes {
			return malformedTreef("tree has more than %d nodes", maxTreeNodes)
		}
		if err := visit(child, code, len(stack)); err != nil {
			return err
		}
		if in, ok := child.(*Internal); ok {
			stack = append(stack, stackItem{node: in, code: code})
		}
		return nil
	}

	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++

		var err error
		switch x {
		case 0:
			err = processChild(top.node.Left, top.code.Append(0))
		case 1:
			err = processChild(top.node.Right, top.code.Append(1))
		case 2:
			stack = stack[:len(stack)-1]
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// type keyedNode + type nodeHeap {{{

type keyedNode struct {
	node Node
	key  uint32
}

type nodeHeap struct {
	list []keyedNode
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	aw, bw := a.node.Weight(), b.node.Weight()
	if aw != bw {
		return aw < bw
	}
	return a.key < b.key
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(keyedNode))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = keyedNode{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
