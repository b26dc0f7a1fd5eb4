package ribbon

// Package ribbon buffers items pulled from an exhaustible source so a consumer
// can hold several recent items at once and inspect the ones ahead of the item
// it is currently processing. Band keeps a fixed number of items in a ring and
// evicts the oldest when it grows past capacity; Tape grows without bound and
// never evicts. Both satisfy the same Ribbon contract, and either can be driven
// as a plain forward iterator that keeps its lookahead window filled internally.
