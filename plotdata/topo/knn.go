package topo

import "container/heap"

// nearestHeap is a max-heap of electrode indices keyed by weight.
// Equal weights pop in ascending index order.
type nearestHeap struct {
	idx     []int
	weights []float64
}

func (h *nearestHeap) Len() int { return len(h.idx) }

func (h *nearestHeap) Less(i, j int) bool {
	wi, wj := h.weights[h.idx[i]], h.weights[h.idx[j]]
	if wi != wj {
		return wi > wj
	}
	return h.idx[i] < h.idx[j]
}

func (h *nearestHeap) Swap(i, j int) { h.idx[i], h.idx[j] = h.idx[j], h.idx[i] }

func (h *nearestHeap) Push(x any) { h.idx = append(h.idx, x.(int)) }

func (h *nearestHeap) Pop() any {
	n := len(h.idx)
	x := h.idx[n-1]
	h.idx = h.idx[:n-1]
	return x
}

// nearest writes the indices of the k largest weights into dst in
// descending weight order and returns the filled prefix. dst must have room
// for len(weights) indices; it doubles as heap storage.
func nearest(dst []int, weights []float64, k int) []int {
	n := len(weights)
	if k > n {
		k = n
	}
	if k <= 0 {
		return dst[:0]
	}

	h := &nearestHeap{idx: dst[:n], weights: weights}
	for i := range h.idx {
		h.idx[i] = i
	}
	heap.Init(h)

	// Popped indices land in the tail of dst as the heap shrinks, largest
	// first from the back.
	for i := 0; i < k; i++ {
		heap.Pop(h)
	}
	out := dst[n-k : n]
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
