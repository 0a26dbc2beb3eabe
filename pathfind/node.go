package pathfind

import (
	"container/heap"
)

const (
	nodeOpen   = 0x01
	nodeClosed = 0x02
)

type pathNode struct {
	idx    int32 // grid cell index
	cost   float32
	total  float32 // cost + heuristic, open-list key
	parent *pathNode
	flags  uint8
	_index int // position in the open list
}

func (n *pathNode) SetIndex(index int) { n._index = index }
func (n *pathNode) GetIndex() int      { return n._index }

type NodeQueueIndex interface {
	SetIndex(index int)
	GetIndex() int
}

type NodeQueue[T NodeQueueIndex] interface {
	Poll() T
	Offer(T)
	Update(T)
	Reset()
	Empty() bool
}

// Binary min-heap with in-place priority updates via the stored heap index.
type nodeQueue[T NodeQueueIndex] struct {
	data []T
	less func(t1, t2 T) bool
}

func NewNodeQueue[T NodeQueueIndex](less func(t1, t2 T) bool) NodeQueue[T] {
	return &nodeQueue[T]{less: less}
}

func (q *nodeQueue[T]) Reset()        { q.data = q.data[:0] }
func (q *nodeQueue[T]) Poll() T       { return heap.Pop(q).(T) }
func (q *nodeQueue[T]) Offer(value T) { heap.Push(q, value) }
func (q *nodeQueue[T]) Update(value T) {
	heap.Fix(q, value.GetIndex())
}
func (q *nodeQueue[T]) Empty() bool { return q.Len() == 0 }

func (q *nodeQueue[T]) Len() int           { return len(q.data) }
func (q *nodeQueue[T]) Less(i, j int) bool { return q.less(q.data[i], q.data[j]) }
func (q *nodeQueue[T]) Swap(i, j int) {
	q.data[i], q.data[j] = q.data[j], q.data[i]
	q.data[i].SetIndex(i)
	q.data[j].SetIndex(j)
}

func (q *nodeQueue[T]) Push(x any) {
	v := x.(T)
	v.SetIndex(len(q.data))
	q.data = append(q.data, v)
}

func (q *nodeQueue[T]) Pop() any {
	old := q.data
	n := len(old)
	v := old[n-1]
	var zero T
	old[n-1] = zero
	v.SetIndex(-1)
	q.data = old[:n-1]
	return v
}
