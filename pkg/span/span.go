package span

import "fmt"

// Span is the capability every range shape provides: the inclusive
// normalization of its bounds over the value domain. A span whose
// start is greater than its end denotes the empty set.
type Span[T any] interface {
	// StartsAt returns the inclusive lower bound.
	StartsAt() T
	// EndsAt returns the inclusive upper bound.
	EndsAt() T
}

// Inclusive is a normalized span, both bounds inclusive. It is the
// result shape of Intersection and SetMinus.
type Inclusive[T any] struct {
	Lo T
	Hi T
}

func (r Inclusive[T]) StartsAt() T { return r.Lo }

func (r Inclusive[T]) EndsAt() T { return r.Hi }

func (r Inclusive[T]) String() string {
	return fmt.Sprintf("%v-%v", r.Lo, r.Hi)
}
