package ribbon

import "iter"

// Ribbon is the capability set shared by both buffer variants. A Ribbon owns
// a Source, pulls items from it on demand, and re-exposes the held items
// through front/back and indexed accessors. Index 0 is the oldest held item.
//
// Every fallible operation reports "no value" through its ok result; there
// are no error values and no panics on empty or out-of-range access.
type Ribbon[T any] interface {
	// Advance pulls one item from the source and appends it at the back.
	// It is a no-op if the source is exhausted. The returned item is the
	// one that came off the front to make room, with ok=false when nothing
	// did (source exhausted, or a Band not yet at capacity).
	Advance() (T, bool)

	// Grow pulls one item from the source and appends it at the back,
	// discarding whatever Advance would have returned. It reports false
	// iff the source is exhausted.
	Grow() bool

	// GrowN calls Grow up to n times, stopping at the first failure.
	// It reports whether at least one item was appended.
	GrowN(n int) bool

	// GrowWhile appends items for as long as the next pending source item
	// satisfies keep, without consuming the first item that does not.
	// It reports whether at least one item was appended.
	GrowWhile(keep func(T) bool) bool

	// PopFront removes and returns the oldest held item.
	PopFront() (T, bool)

	// PopBack removes and returns the newest held item.
	PopBack() (T, bool)

	// PeekAt returns the held item at offset i from the front. The bounds
	// check is against the current length, not capacity.
	PeekAt(i int) (T, bool)

	// SetAt replaces the held item at offset i from the front, reporting
	// whether i was in range.
	SetAt(i int, item T) bool

	// PeekFront returns the oldest held item without removing it.
	PeekFront() (T, bool)

	// PeekBack returns the newest held item without removing it.
	PeekBack() (T, bool)

	// SetBack replaces the newest held item, reporting whether one was held.
	SetBack(item T) bool

	// Next refills the buffer from the source when it is empty, then pops
	// and returns the front item. It lets the buffer act as a plain
	// pass-through iterator with internal lookahead.
	Next() (T, bool)

	// Len returns the number of items currently held.
	Len() int

	// Empty reports whether no items are currently held.
	Empty() bool
}

// All returns a lazy sequence that drains r through Next. The sequence is
// finite exactly when r's source is, and is not restartable since the
// source is consumed.
func All[T any](r Ribbon[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := r.Next()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// Derived behaviors shared by both variants.

func growN[T any](r Ribbon[T], n int) bool {
	grew := false
	for range n {
		if !r.Grow() {
			break
		}
		grew = true
	}
	return grew
}

func growWhile[T any](r Ribbon[T], src *peekSource[T], keep func(T) bool) bool {
	grew := false
	for {
		item, ok := src.peek()
		if !ok || !keep(item) {
			return grew
		}
		r.Grow()
		grew = true
	}
}

func peekFront[T any](r Ribbon[T]) (T, bool) {
	return r.PeekAt(0)
}

// peekBack guards the empty case so the back index is never computed from
// a zero length.
func peekBack[T any](r Ribbon[T]) (T, bool) {
	n := r.Len()
	if n == 0 {
		var zero T
		return zero, false
	}
	return r.PeekAt(n - 1)
}

func setBack[T any](r Ribbon[T], item T) bool {
	n := r.Len()
	if n == 0 {
		return false
	}
	return r.SetAt(n-1, item)
}

// next refills an empty buffer by up to refill items before popping the
// front. Band refills to capacity, Tape by one.
func next[T any](r Ribbon[T], refill int) (T, bool) {
	if r.Empty() {
		growN(r, refill)
	}
	return r.PopFront()
}
