package waiting

// Container is the shared contract both orderings satisfy: push stores
// an item, Pop returns the next item whose isActive predicate holds,
// discarding any tombstoned items it skips along the way (spec 4.6.2's
// "peek the head and pop while it is inactive before returning"). A nil
// isActive treats every item as active.
type Container[T any] interface {
	Push(v T)
	Pop(isActive func(T) bool) (T, bool)
	Empty() bool
	Len() int
}

// FIFO is the bfs search order (push at the tail, pop from the head).
type FIFO[T any] struct {
	items []T
}

// NewFIFO returns an empty FIFO container.
func NewFIFO[T any]() *FIFO[T] { return &FIFO[T]{} }

func (f *FIFO[T]) Push(v T) { f.items = append(f.items, v) }

func (f *FIFO[T]) Empty() bool { return len(f.items) == 0 }

func (f *FIFO[T]) Len() int { return len(f.items) }

func (f *FIFO[T]) Pop(isActive func(T) bool) (T, bool) {
	for len(f.items) > 0 {
		v := f.items[0]
		f.items = f.items[1:]
		if isActive == nil || isActive(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// LIFO is the dfs search order (push/pop both at the tail).
type LIFO[T any] struct {
	items []T
}

// NewLIFO returns an empty LIFO container.
func NewLIFO[T any]() *LIFO[T] { return &LIFO[T]{} }

func (l *LIFO[T]) Push(v T) { l.items = append(l.items, v) }

func (l *LIFO[T]) Empty() bool { return len(l.items) == 0 }

func (l *LIFO[T]) Len() int { return len(l.items) }

func (l *LIFO[T]) Pop(isActive func(T) bool) (T, bool) {
	for len(l.items) > 0 {
		n := len(l.items) - 1
		v := l.items[n]
		l.items = l.items[:n]
		if isActive == nil || isActive(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}
