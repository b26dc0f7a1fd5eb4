package ribbon

var _ Ribbon[int] = (*Band[int])(nil)

// Band is a fixed-capacity ring buffer over a Source. It never holds more
// than its capacity: growing past it evicts the oldest held item first.
//
// Occupied slots form a contiguous run of count items starting at head,
// wrapping modulo the capacity. Vacated slots are zeroed so the buffer does
// not pin values the caller already received.
type Band[T any] struct {
	src   *peekSource[T]
	buf   []T
	head  int
	count int
}

// NewBand creates an empty Band of the given fixed capacity over src.
// A capacity below 1 is clamped to 1, which behaves as an always-evicting
// single-slot buffer.
func NewBand[T any](src Source[T], capacity int) *Band[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Band[T]{
		src: newPeekSource(src),
		buf: make([]T, capacity),
	}
}

// slide removes the front item in O(1): only the head index moves, no
// elements are shifted.
func (b *Band[T]) slide() (T, bool) {
	if b.count == 0 {
		var zero T
		return zero, false
	}
	item := b.buf[b.head]
	var zero T
	b.buf[b.head] = zero
	b.head = (b.head + 1) % len(b.buf)
	b.count--
	return item, true
}

// tail returns the physical slot of the newest item. Only meaningful when
// count > 0.
func (b *Band[T]) tail() int {
	return (b.head + b.count - 1) % len(b.buf)
}

func (b *Band[T]) full() bool {
	return b.count == len(b.buf)
}

// Advance pulls one item from the source and appends it at the back,
// evicting and returning the front item if the Band is at capacity.
// It is a no-op if the source is exhausted.
func (b *Band[T]) Advance() (T, bool) {
	item, ok := b.src.next()
	if !ok {
		var zero T
		return zero, false
	}

	var evicted T
	var wasEvicted bool
	if b.full() {
		evicted, wasEvicted = b.slide()
	}

	b.count++
	b.buf[b.tail()] = item
	return evicted, wasEvicted
}

// Grow pulls one item from the source and appends it at the back, evicting
// the front item first if at capacity. It reports false iff the source is
// exhausted.
func (b *Band[T]) Grow() bool {
	item, ok := b.src.next()
	if !ok {
		return false
	}
	if b.full() {
		b.slide()
	}
	b.count++
	b.buf[b.tail()] = item
	return true
}

// GrowN calls Grow up to n times, reporting whether at least one item was
// appended.
func (b *Band[T]) GrowN(n int) bool {
	return growN[T](b, n)
}

// GrowWhile appends items while the next pending source item satisfies
// keep, reporting whether at least one item was appended.
func (b *Band[T]) GrowWhile(keep func(T) bool) bool {
	return growWhile(b, b.src, keep)
}

// PopFront removes and returns the oldest held item.
func (b *Band[T]) PopFront() (T, bool) {
	return b.slide()
}

// PopBack removes and returns the newest held item.
func (b *Band[T]) PopBack() (T, bool) {
	if b.count == 0 {
		var zero T
		return zero, false
	}
	i := b.tail()
	item := b.buf[i]
	var zero T
	b.buf[i] = zero
	b.count--
	return item, true
}

// PeekAt returns the held item at offset i from the front.
func (b *Band[T]) PeekAt(i int) (T, bool) {
	if i < 0 || i >= b.count {
		var zero T
		return zero, false
	}
	return b.buf[(b.head+i)%len(b.buf)], true
}

// SetAt replaces the held item at offset i from the front.
func (b *Band[T]) SetAt(i int, item T) bool {
	if i < 0 || i >= b.count {
		return false
	}
	b.buf[(b.head+i)%len(b.buf)] = item
	return true
}

// PeekFront returns the oldest held item without removing it.
func (b *Band[T]) PeekFront() (T, bool) {
	return peekFront[T](b)
}

// PeekBack returns the newest held item without removing it.
func (b *Band[T]) PeekBack() (T, bool) {
	return peekBack[T](b)
}

// SetBack replaces the newest held item.
func (b *Band[T]) SetBack(item T) bool {
	return setBack[T](b, item)
}

// Next refills the Band to full capacity when it is empty, then pops and
// returns the front item.
func (b *Band[T]) Next() (T, bool) {
	return next[T](b, len(b.buf))
}

// Len returns the number of items currently held.
func (b *Band[T]) Len() int {
	return b.count
}

// Empty reports whether no items are currently held.
func (b *Band[T]) Empty() bool {
	return b.count == 0
}

// Cap returns the fixed capacity.
func (b *Band[T]) Cap() int {
	return len(b.buf)
}
