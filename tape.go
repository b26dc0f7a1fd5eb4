package ribbon

import "github.com/gammazero/deque"

var _ Ribbon[int] = (*Tape[int])(nil)

// Tape is an unbounded buffer over a Source, backed by a double-ended queue
// with O(1) access at both ends. Growth never evicts: Advance mirrors Band's
// signature by popping the front before appending, but Grow is an
// unconditional append.
type Tape[T any] struct {
	src *peekSource[T]
	buf deque.Deque[T]
}

// NewTape creates an empty Tape over src.
func NewTape[T any](src Source[T]) *Tape[T] {
	return &Tape[T]{src: newPeekSource(src)}
}

// Advance pulls one item from the source, removes and returns the front
// item, and appends the pulled item at the back. The length is unchanged
// unless the Tape was empty. It is a no-op if the source is exhausted.
func (t *Tape[T]) Advance() (T, bool) {
	item, ok := t.src.next()
	if !ok {
		var zero T
		return zero, false
	}
	front, had := t.PopFront()
	t.buf.PushBack(item)
	return front, had
}

// Grow pulls one item from the source and appends it at the back. It
// reports false iff the source is exhausted.
func (t *Tape[T]) Grow() bool {
	item, ok := t.src.next()
	if !ok {
		return false
	}
	t.buf.PushBack(item)
	return true
}

// GrowN calls Grow up to n times, reporting whether at least one item was
// appended.
func (t *Tape[T]) GrowN(n int) bool {
	return growN[T](t, n)
}

// GrowWhile appends items while the next pending source item satisfies
// keep, reporting whether at least one item was appended.
func (t *Tape[T]) GrowWhile(keep func(T) bool) bool {
	return growWhile(t, t.src, keep)
}

// PopFront removes and returns the oldest held item.
func (t *Tape[T]) PopFront() (T, bool) {
	if t.buf.Len() == 0 {
		var zero T
		return zero, false
	}
	return t.buf.PopFront(), true
}

// PopBack removes and returns the newest held item.
func (t *Tape[T]) PopBack() (T, bool) {
	if t.buf.Len() == 0 {
		var zero T
		return zero, false
	}
	return t.buf.PopBack(), true
}

// PeekAt returns the held item at offset i from the front.
func (t *Tape[T]) PeekAt(i int) (T, bool) {
	if i < 0 || i >= t.buf.Len() {
		var zero T
		return zero, false
	}
	return t.buf.At(i), true
}

// SetAt replaces the held item at offset i from the front.
func (t *Tape[T]) SetAt(i int, item T) bool {
	if i < 0 || i >= t.buf.Len() {
		return false
	}
	t.buf.Set(i, item)
	return true
}

// PeekFront returns the oldest held item without removing it.
func (t *Tape[T]) PeekFront() (T, bool) {
	return peekFront[T](t)
}

// PeekBack returns the newest held item without removing it.
func (t *Tape[T]) PeekBack() (T, bool) {
	return peekBack[T](t)
}

// SetBack replaces the newest held item.
func (t *Tape[T]) SetBack(item T) bool {
	return setBack[T](t, item)
}

// Next grows the Tape by one item when it is empty, then pops and returns
// the front item.
func (t *Tape[T]) Next() (T, bool) {
	return next[T](t, 1)
}

// Len returns the number of items currently held.
func (t *Tape[T]) Len() int {
	return t.buf.Len()
}

// Empty reports whether no items are currently held.
func (t *Tape[T]) Empty() bool {
	return t.buf.Len() == 0
}
