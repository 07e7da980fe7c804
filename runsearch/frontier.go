package runsearch

import (
	"github.com/zyedidia/generic/heap"
)

// entry is a pending (state, tentative distance) pair.
type entry struct {
	state State
	dist  int64
}

// frontier is a min-heap of entries ordered by dist. Several entries for the
// same state may coexist; stale ones are dropped at pop time against the
// settled table. Ties pop in no particular order.
type frontier struct {
	h *heap.Heap[entry]
}

func newFrontier() *frontier {
	return &frontier{
		h: heap.New[entry](func(a, b entry) bool { return a.dist < b.dist }),
	}
}

func (f *frontier) push(s State, dist int64) {
	f.h.Push(entry{state: s, dist: dist})
}

// pop removes the minimal entry; ok is false when the frontier is empty.
func (f *frontier) pop() (e entry, ok bool) {
	return f.h.Pop()
}

func (f *frontier) len() int { return f.h.Size() }

// settled records the final distance of each state. It only grows.
type settled map[State]int64

// settle records dist for s and reports true, unless s was already settled.
func (t settled) settle(s State, dist int64) bool {
	if _, ok := t[s]; ok {
		return false
	}
	t[s] = dist

	return true
}
