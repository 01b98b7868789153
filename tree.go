package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Tree is a Huffman code tree.  Each leaf holds one Symbol and its frequency;
// each internal node has exactly two children and weighs as much as both of
// them together.  A Tree is read-only once built.
//
// The zero Tree, like a Tree built from an empty FrequencyTable, is the empty
// tree: it has no nodes and encodes nothing.
//
type Tree struct {
	// nodes is an arena.  Leaves come first, in ascending symbol order,
	// followed by internal nodes in merge order; the root is always last.
	nodes []node
}

type node struct {
	weight uint64
	left   int32
	right  int32
	symbol Symbol
}

const noChild = int32(-1)

func (n node) isLeaf() bool {
	return n.left == noChild
}

// BuildTree constructs the Huffman tree for freqs.
//
// The two lightest nodes are merged repeatedly, the first one popped becoming
// the left child.  Ties are broken in favor of the node created first, so the
// result depends only on the contents of freqs.  A table with one symbol
// yields a tree whose root is that symbol's leaf; an empty table yields the
// empty tree.
//
func BuildTree(freqs FrequencyTable) *Tree {
	symbols := freqs.Symbols()
	t := &Tree{}
	if len(symbols) == 0 {
		return t
	}

	t.nodes = make([]node, 0, 2*len(symbols)-1)
	h := nodeHeap{nodes: &t.nodes, list: make([]int32, 0, len(symbols))}
	for _, symbol := range symbols {
		h.list = append(h.list, t.addNode(node{
			weight: freqs[symbol],
			left:   noChild,
			right:  noChild,
			symbol: symbol,
		}))
	}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(int32)
		b := heap.Pop(&h).(int32)

		wa, wb := t.nodes[a].weight, t.nodes[b].weight
		sum := wa + wb
		assert.Assertf(sum >= wa, "weight overflow merging %d and %d", wa, wb)

		heap.Push(&h, t.addNode(node{weight: sum, left: a, right: b}))
	}

	root := heap.Pop(&h).(int32)
	assert.Assertf(root == t.root(), "root is node %d, expected %d", root, t.root())
	return t
}

func (t *Tree) addNode(n node) int32 {
	t.nodes = append(t.nodes, n)
	return int32(len(t.nodes) - 1)
}

func (t *Tree) root() int32 {
	return int32(len(t.nodes) - 1)
}

// Empty returns true iff this is the empty tree.
func (t *Tree) Empty() bool {
	return t == nil || len(t.nodes) == 0
}

// Degenerate returns true iff the tree consists of a single leaf.
func (t *Tree) Degenerate() bool {
	return !t.Empty() && t.nodes[t.root()].isLeaf()
}

// NumSymbols returns the number of leaves.
func (t *Tree) NumSymbols() int {
	if t.Empty() {
		return 0
	}
	return (len(t.nodes) + 1) / 2
}

// Weight returns the weight of the root, i.e. the length of the input the
// tree was built from.
func (t *Tree) Weight() uint64 {
	if t.Empty() {
		return 0
	}
	return t.nodes[t.root()].weight
}

// Root returns the root node.  It panics if the tree is empty.
func (t *Tree) Root() Node {
	assert.Assertf(!t.Empty(), "Root called on the empty tree")
	return Node{t: t, index: t.root()}
}

// WeightedPathLength returns the sum, over all leaves, of the leaf's weight
// times its depth.  Huffman's algorithm minimizes this quantity.
func (t *Tree) WeightedPathLength() uint64 {
	var sum uint64
	t.walk(func(n node, path Code) {
		if n.isLeaf() {
			sum += n.weight * uint64(path.Size)
		}
	})
	return sum
}

// walk visits every node in depth-first order, left before right, along with
// the path from the root to it.
func (t *Tree) walk(fn func(n node, path Code)) {
	if t.Empty() {
		return
	}

	type stackItem struct {
		index int32
		path  Code
	}

	stack := make([]stackItem, 0, 2*log2int(len(t.nodes)))
	stack = append(stack, stackItem{index: t.root()})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.nodes[top.index]
		fn(n, top.path)
		if !n.isLeaf() {
			stack = append(stack, stackItem{n.right, top.path.Append(true)})
			stack = append(stack, stackItem{n.left, top.path.Append(false)})
		}
	}
}

// String returns a short description of the tree.
func (t *Tree) String() string {
	if t.Empty() {
		return "(empty Huffman tree)"
	}
	return fmt.Sprintf("(Huffman tree with %d symbols, total weight %d)", t.NumSymbols(), t.Weight())
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer, one node per line, in depth-first order.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	t.walk(func(n node, path Code) {
		if n.isLeaf() {
			fmt.Fprintf(&buf, "\tNode(%s) = {%q, %d}\n", path, n.symbol, n.weight)
		} else {
			fmt.Fprintf(&buf, "\tNode(%s) = {%d}\n", path, n.weight)
		}
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

var _ fmt.Stringer = (*Tree)(nil)

// Node is a read-only handle on one node of a Tree.
type Node struct {
	t     *Tree
	index int32
}

// IsLeaf returns true iff the node is a leaf.
func (n Node) IsLeaf() bool {
	return n.t.nodes[n.index].isLeaf()
}

// Symbol returns the leaf's symbol.  It panics on internal nodes.
func (n Node) Symbol() Symbol {
	assert.Assertf(n.IsLeaf(), "Symbol called on internal node %d", n.index)
	return n.t.nodes[n.index].symbol
}

// Weight returns the node's weight.
func (n Node) Weight() uint64 {
	return n.t.nodes[n.index].weight
}

// Left returns the left child.  It panics on leaves.
func (n Node) Left() Node {
	assert.Assertf(!n.IsLeaf(), "Left called on leaf node %d", n.index)
	return Node{t: n.t, index: n.t.nodes[n.index].left}
}

// Right returns the right child.  It panics on leaves.
func (n Node) Right() Node {
	assert.Assertf(!n.IsLeaf(), "Right called on leaf node %d", n.index)
	return Node{t: n.t, index: n.t.nodes[n.index].right}
}

// type nodeHeap {{{

// nodeHeap is a min-heap of node indices ordered by (weight, index).  Lower
// indices were created earlier, so ties go to the older node.
type nodeHeap struct {
	nodes *[]node
	list  []int32
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
	wa, wb := (*h.nodes)[a].weight, (*h.nodes)[b].weight
	if wa != wb {
		return wa < wb
	}
	return a < b
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(int32))
}

func (h *nodeHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
