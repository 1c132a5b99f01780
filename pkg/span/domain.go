package span

// Domain describes a totally ordered value space with a first and last
// value and discrete successor/predecessor steps.
type Domain[T any] interface {
	// Min returns the smallest value of the domain.
	Min() T
	// Max returns the largest value of the domain.
	Max() T
	// Next returns the successor of v. Undefined at Max; callers must
	// guard before stepping.
	Next(v T) T
	// Prev returns the predecessor of v. Undefined at Min.
	Prev(v T) T
	// Compare returns -1, 0 or 1 when a is less than, equal to or
	// greater than b.
	Compare(a, b T) int
}
