package huffman

import "container/heap"

// blockSize is the number of source bytes assigned to each parallel
// encoding/frequency block, and the number of payload bytes assigned to
// each parallel bit-unpacking block on decode. It is not recorded in the
// container; blocks are delimited by the block-offset index instead.
const blockSize = 500

// node is a node of a Huffman tree. Leaves carry a symbol; internal nodes
// own exactly two children and carry no symbol of their own.
type node struct {
	freq        uint64
	symbol      byte
	left, right *node
}

func (n *node) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// heapItem pairs a node with its insertion sequence so that nodes with
// equal frequency are ordered deterministically without depending on a
// symbol-value tie-break: the container self-describes its codebook, so
// no canonical cross-run ordering is required.
type heapItem struct {
	n   *node
	seq uint64
}

type nodeHeap []*heapItem

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].n.freq != h[j].n.freq {
		return h[i].n.freq < h[j].n.freq
	}
	return h[i].seq < h[j].seq
}
func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x any) {
	*h = append(*h, x.(*heapItem))
}
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// buildTree constructs a Huffman tree from a byte histogram. It returns
// nil for an empty histogram, and a single leaf (no internal node) when
// exactly one byte value occurs.
func buildTree(hist *[256]uint64) *node {
	h := &nodeHeap{}
	var seq uint64
	for b := 0; b < 256; b++ {
		if hist[b] == 0 {
			continue
		}
		*h = append(*h, &heapItem{n: &node{freq: hist[b], symbol: byte(b)}, seq: seq})
		seq++
	}
	if len(*h) == 0 {
		return nil
	}
	if len(*h) == 1 {
		return (*h)[0].n
	}

	heap.Init(h)
	for h.Len() > 1 {
		right := heap.Pop(h).(*heapItem)
		left := heap.Pop(h).(*heapItem)
		merged := &node{
			freq:  right.n.freq + left.n.freq,
			left:  left.n,
			right: right.n,
		}
		heap.Push(h, &heapItem{n: merged, seq: seq})
		seq++
	}
	return (*h)[0].n
}
