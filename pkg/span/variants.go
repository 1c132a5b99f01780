package span

// Each syntactic range shape is its own variant carrying only the raw
// bound value(s) it was constructed with; all set algebra works on the
// StartsAt/EndsAt normalization the variant provides.

type closed[T any] struct {
	lo T
	hi T
}

// Closed returns the span [lo, hi], both bounds inclusive.
func Closed[T any](lo, hi T) Span[T] {
	return closed[T]{lo: lo, hi: hi}
}

func (r closed[T]) StartsAt() T { return r.lo }

func (r closed[T]) EndsAt() T { return r.hi }

type closedOpen[T any] struct {
	dom Domain[T]
	lo  T
	hi  T
}

// ClosedOpen returns the span [lo, hi): lo inclusive, hi exclusive.
func ClosedOpen[T any](d Domain[T], lo, hi T) Span[T] {
	if d.Compare(hi, d.Min()) == 0 {
		// nothing below hi to include, and Prev(Min) must never be
		// evaluated
		return empty(d)
	}
	return closedOpen[T]{dom: d, lo: lo, hi: hi}
}

func (r closedOpen[T]) StartsAt() T { return r.lo }

func (r closedOpen[T]) EndsAt() T { return r.dom.Prev(r.hi) }

type atLeast[T any] struct {
	dom Domain[T]
	lo  T
}

// AtLeast returns the span unbounded above: [lo, Max].
func AtLeast[T any](d Domain[T], lo T) Span[T] {
	return atLeast[T]{dom: d, lo: lo}
}

func (r atLeast[T]) StartsAt() T { return r.lo }

func (r atLeast[T]) EndsAt() T { return r.dom.Max() }

type atMost[T any] struct {
	dom Domain[T]
	hi  T
}

// AtMost returns the span unbounded below: [Min, hi].
func AtMost[T any](d Domain[T], hi T) Span[T] {
	return atMost[T]{dom: d, hi: hi}
}

func (r atMost[T]) StartsAt() T { return r.dom.Min() }

func (r atMost[T]) EndsAt() T { return r.hi }

type lessThan[T any] struct {
	dom Domain[T]
	hi  T
}

// LessThan returns the span unbounded below with hi excluded: [Min, hi).
func LessThan[T any](d Domain[T], hi T) Span[T] {
	if d.Compare(hi, d.Min()) == 0 {
		return empty(d)
	}
	return lessThan[T]{dom: d, hi: hi}
}

func (r lessThan[T]) StartsAt() T { return r.dom.Min() }

func (r lessThan[T]) EndsAt() T { return r.dom.Prev(r.hi) }

type all[T any] struct {
	dom Domain[T]
}

// All returns the span covering the whole domain: [Min, Max].
func All[T any](d Domain[T]) Span[T] {
	return all[T]{dom: d}
}

func (r all[T]) StartsAt() T { return r.dom.Min() }

func (r all[T]) EndsAt() T { return r.dom.Max() }

type single[T any] struct {
	v T
}

// Single returns the span holding exactly one value: [v, v].
func Single[T any](v T) Span[T] {
	return single[T]{v: v}
}

func (r single[T]) StartsAt() T { return r.v }

func (r single[T]) EndsAt() T { return r.v }

// empty returns the canonical empty span, Max over Min reversed.
func empty[T any](d Domain[T]) Span[T] {
	return Inclusive[T]{Lo: d.Max(), Hi: d.Min()}
}
