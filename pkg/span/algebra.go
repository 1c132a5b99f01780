package span

// Empty reports whether s denotes no values.
func Empty[T any](d Domain[T], s Span[T]) bool {
	return d.Compare(s.StartsAt(), s.EndsAt()) > 0
}

// Includes reports whether v is a member of s. Always false when s is
// empty.
func Includes[T any](d Domain[T], s Span[T], v T) bool {
	return d.Compare(s.StartsAt(), v) <= 0 && d.Compare(v, s.EndsAt()) <= 0
}

// Intersects reports whether a and b share at least one value, e.g.
// 0-3 and 2-Max intersect while 0-3 and 4-10 don't. False whenever
// either span is empty.
func Intersects[T any](d Domain[T], a, b Span[T]) bool {
	_, ok := Intersection(d, a, b)
	return ok
}

// Intersection returns the largest span contained in both a and b,
// e.g. the intersection of 0-3 and 1-10 is 1-3. False when a and b do
// not intersect.
func Intersection[T any](d Domain[T], a, b Span[T]) (Inclusive[T], bool) {
	lo := a.StartsAt()
	if d.Compare(b.StartsAt(), lo) > 0 {
		lo = b.StartsAt()
	}
	hi := a.EndsAt()
	if d.Compare(b.EndsAt(), hi) < 0 {
		hi = b.EndsAt()
	}
	if d.Compare(lo, hi) > 0 {
		return Inclusive[T]{}, false
	}
	return Inclusive[T]{Lo: lo, Hi: hi}, true
}

// SetMinus returns the values of s not in other, as up to two disjoint
// spans: below is the piece under other, above the piece over it. The
// below/above order is part of the contract. When other does not
// intersect s, s comes back unchanged in the below slot. When other
// covers all of s, both slots are nil.
func SetMinus[T any](d Domain[T], s, other Span[T]) (below, above *Inclusive[T]) {
	if Empty(d, s) {
		return nil, nil
	}
	overlap, ok := Intersection(d, s, other)
	if !ok {
		return &Inclusive[T]{Lo: s.StartsAt(), Hi: s.EndsAt()}, nil
	}
	// the overlap lower bound is clipped to s, so anything below it is
	// still in s; stepping is safe as long as the bound is off Min
	if d.Compare(overlap.Lo, d.Min()) > 0 && d.Compare(s.StartsAt(), overlap.Lo) < 0 {
		below = &Inclusive[T]{Lo: s.StartsAt(), Hi: d.Prev(overlap.Lo)}
	}
	if d.Compare(overlap.Hi, d.Max()) < 0 && d.Compare(overlap.Hi, s.EndsAt()) < 0 {
		above = &Inclusive[T]{Lo: d.Next(overlap.Hi), Hi: s.EndsAt()}
	}
	return below, above
}

// Covers reports whether inner lies entirely within outer. An empty
// inner is covered by anything.
func Covers[T any](d Domain[T], outer, inner Span[T]) bool {
	if Empty(d, inner) {
		return true
	}
	return d.Compare(outer.StartsAt(), inner.StartsAt()) <= 0 &&
		d.Compare(inner.EndsAt(), outer.EndsAt()) <= 0
}

// Before reports whether s lies entirely below other.
func Before[T any](d Domain[T], s, other Span[T]) bool {
	return d.Compare(s.EndsAt(), other.StartsAt()) < 0
}

// Equal reports whether a and b denote the same set of values.
func Equal[T any](d Domain[T], a, b Span[T]) bool {
	if Empty(d, a) || Empty(d, b) {
		return Empty(d, a) && Empty(d, b)
	}
	return d.Compare(a.StartsAt(), b.StartsAt()) == 0 &&
		d.Compare(a.EndsAt(), b.EndsAt()) == 0
}
