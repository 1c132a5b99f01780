package span

import "golang.org/x/exp/constraints"

type integers[T constraints.Integer] struct {
	min T
	max T
}

// Integers returns the Domain of any builtin integer type. Min and Max
// are the smallest and largest values representable in T.
func Integers[T constraints.Integer]() Domain[T] {
	var zero T
	min, max := zero, ^zero
	if max < zero {
		// signed: shift the low one bits down until the sign bit is
		// the only bit left.
		min = ^zero
		for m := min << 1; m < min; m = min << 1 {
			min = m
		}
		max = ^min
	}
	return integers[T]{min: min, max: max}
}

func (d integers[T]) Min() T { return d.min }

func (d integers[T]) Max() T { return d.max }

func (d integers[T]) Next(v T) T { return v + 1 }

func (d integers[T]) Prev(v T) T { return v - 1 }

func (d integers[T]) Compare(a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Count returns the number of values s denotes and false when s is
// empty. The count is exact for every domain except the full 64-bit
// ones, whose 2^64 values come back as 0.
func Count[T constraints.Integer](s Span[T]) (uint64, bool) {
	if s.EndsAt() < s.StartsAt() {
		return 0, false
	}
	return uint64(s.EndsAt()) - uint64(s.StartsAt()) + 1, true
}
