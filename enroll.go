package ribbon

import "iter"

// BandOf wraps an iterator sequence in a Band of the given fixed capacity.
func BandOf[T any](seq iter.Seq[T], capacity int) *Band[T] {
	return NewBand(FromSeq(seq), capacity)
}

// TapeOf wraps an iterator sequence in a Tape.
func TapeOf[T any](seq iter.Seq[T]) *Tape[T] {
	return NewTape(FromSeq(seq))
}
