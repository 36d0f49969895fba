package datastructure

import (
	"errors"
)

var ErrHeapEmpty = errors.New("heap is empty")

// HeapEntry (node id, tentative distance) pair di priority queue.
type HeapEntry struct {
	NodeID int32
	Dist   float64
}

// MinHeap binary heap priorityqueue untuk dijkstra. Kapasitas fixed = jumlah
// node, karena caller menjamin max 1 entry per node id (Insert kalau belum ada,
// DecreaseKey kalau sudah). pos map id -> index heap biar DecreaseKey/Contains
// tidak perlu linear scan.
type MinHeap struct {
	heap     []HeapEntry
	pos      map[int32]int
	capacity int
}

func NewMinHeap(capacity int) *MinHeap {
	return &MinHeap{
		heap:     make([]HeapEntry, 0, capacity),
		pos:      make(map[int32]int, capacity),
		capacity: capacity,
	}
}

func (h *MinHeap) parent(index int) int {
	return (index - 1) / 2
}

func (h *MinHeap) leftChild(index int) int {
	return 2*index + 1
}

func (h *MinHeap) rightChild(index int) int {
	return 2*index + 2
}

// heapifyUp mempertahankan heap property. check apakah parent dari index lebih
// besar, kalau iya swap, lanjut ke parent. O(logN) tree height.
func (h *MinHeap) heapifyUp(index int) {
	for index != 0 && h.heap[index].Dist < h.heap[h.parent(index)].Dist {
		h.heap[index], h.heap[h.parent(index)] = h.heap[h.parent(index)], h.heap[index]

		h.pos[h.heap[index].NodeID] = index
		h.pos[h.heap[h.parent(index)].NodeID] = h.parent(index)
		index = h.parent(index)
	}
}

// heapifyDown check apakah salah satu children dari index lebih kecil, kalau iya
// swap, then recursive ke child yang kecil tadi. O(logN) tree height.
func (h *MinHeap) heapifyDown(index int) {
	smallest := index
	left := h.leftChild(index)
	right := h.rightChild(index)

	if left < len(h.heap) && h.heap[left].Dist < h.heap[smallest].Dist {
		smallest = left
	}
	if right < len(h.heap) && h.heap[right].Dist < h.heap[smallest].Dist {
		smallest = right
	}
	if smallest != index {
		h.heap[index], h.heap[smallest] = h.heap[smallest], h.heap[index]
		h.pos[h.heap[index].NodeID] = index
		h.pos[h.heap[smallest].NodeID] = smallest

		h.heapifyDown(smallest)
	}
}

func (h *MinHeap) Size() int {
	return len(h.heap)
}

func (h *MinHeap) isEmpty() bool {
	return len(h.heap) == 0
}

// Contains check apakah node id ada di heap.
func (h *MinHeap) Contains(nodeID int32) bool {
	_, ok := h.pos[nodeID]
	return ok
}

// Insert entry baru. No-op kalau heap sudah penuh (caller contract violation,
// kapasitas = jumlah node dan duplicate dilarang).
func (h *MinHeap) Insert(nodeID int32, dist float64) {
	if len(h.heap) == h.capacity {
		return
	}
	h.heap = append(h.heap, HeapEntry{NodeID: nodeID, Dist: dist})
	index := h.Size() - 1
	h.pos[nodeID] = index
	h.heapifyUp(index)
}

// ExtractMin ambil entry minimum (index 0) & pop dari heap, heapifyDown(0).
func (h *MinHeap) ExtractMin() (HeapEntry, error) {
	if h.isEmpty() {
		return HeapEntry{}, ErrHeapEmpty
	}
	root := h.heap[0]
	delete(h.pos, root.NodeID)

	last := h.Size() - 1
	h.heap[0] = h.heap[last]
	h.heap = h.heap[:last]
	if last > 0 {
		h.pos[h.heap[0].NodeID] = 0
		h.heapifyDown(0)
	}
	return root, nil
}

// DecreaseKey turunkan Dist dari node yang sudah ada di heap, lalu heapifyUp.
func (h *MinHeap) DecreaseKey(nodeID int32, newDist float64) error {
	index, ok := h.pos[nodeID]
	if !ok || newDist > h.heap[index].Dist {
		return errors.New("invalid node id or new value")
	}
	h.heap[index].Dist = newDist
	h.heapifyUp(index)
	return nil
}
