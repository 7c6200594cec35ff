package set

// Set formalizes set semantics for a map of comparable keys.
type Set[T comparable] map[T]struct{}

// New creates a new [Set] from the given values.
// The returned [Set] will have no values if none are given.
func New[T comparable](vals ...T) Set[T] {
	s := Set[T]{}
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

func (s Set[T]) Add(val T, others ...T) Set[T] {
	if s == nil {
		s = Set[T]{}
	}
	s[val] = struct{}{}
	for _, v := range others {
		s[v] = struct{}{}
	}
	return s
}

func (s Set[T]) Has(val T) bool {
	_, ok := s[val]
	return ok
}

// Ordered is a [Set] that remembers the order values were first added in.
// The zero value is ready to use.
type Ordered[T comparable] struct {
	seen  Set[T]
	order []T
}

// NewOrdered creates an [Ordered] set from the given values, dropping later duplicates.
func NewOrdered[T comparable](vals ...T) *Ordered[T] {
	o := new(Ordered[T])
	o.Add(vals...)
	return o
}

// Add appends each value that isn't already present.
// The number of values actually added is returned.
func (o *Ordered[T]) Add(vals ...T) int {
	if o.seen == nil {
		o.seen = Set[T]{}
	}
	var added int
	for _, v := range vals {
		if o.seen.Has(v) {
			continue
		}
		o.seen[v] = struct{}{}
		o.order = append(o.order, v)
		added++
	}
	return added
}

// Slice returns a copy of the values in insertion order.
// An empty, non-nil slice is returned for an empty set.
func (o *Ordered[T]) Slice() []T {
	vals := make([]T, len(o.order))
	copy(vals, o.order)
	return vals
}
