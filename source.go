package ribbon

import "iter"

// Source produces items on demand. Each call yields the next item, or
// ok=false once the source is exhausted. Exhaustion is permanent: a buffer
// never calls a source again after the first false.
type Source[T any] func() (item T, ok bool)

// FromSlice returns a Source that yields the elements of items in order.
func FromSlice[T any](items []T) Source[T] {
	i := 0
	return func() (T, bool) {
		if i >= len(items) {
			var zero T
			return zero, false
		}
		item := items[i]
		i++
		return item, true
	}
}

// FromSeq returns a Source that pulls from the given iterator sequence.
// The pull iterator is released as soon as the sequence reports exhaustion;
// a source abandoned before that holds the iterator until it is collected.
func FromSeq[T any](seq iter.Seq[T]) Source[T] {
	next, stop := iter.Pull(seq)
	return func() (T, bool) {
		item, ok := next()
		if !ok {
			stop()
		}
		return item, ok
	}
}

// peekSource wraps a Source with non-destructive lookahead of its next
// pending item. At most one pulled item is held between peek and next.
type peekSource[T any] struct {
	src     Source[T]
	pending T
	ready   bool
	done    bool
}

func newPeekSource[T any](src Source[T]) *peekSource[T] {
	return &peekSource[T]{src: src}
}

// peek returns the next pending item without consuming it.
func (p *peekSource[T]) peek() (T, bool) {
	if p.ready {
		return p.pending, true
	}
	if p.done {
		var zero T
		return zero, false
	}
	item, ok := p.src()
	if !ok {
		p.done = true
		var zero T
		return zero, false
	}
	p.pending = item
	p.ready = true
	return item, true
}

// next consumes and returns the next item, preferring a pending peeked one.
func (p *peekSource[T]) next() (T, bool) {
	if p.ready {
		item := p.pending
		var zero T
		p.pending = zero
		p.ready = false
		return item, true
	}
	if p.done {
		var zero T
		return zero, false
	}
	item, ok := p.src()
	if !ok {
		p.done = true
	}
	return item, ok
}
