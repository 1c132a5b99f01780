package spantable

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/henderiw/span/pkg/span"
	"k8s.io/apimachinery/pkg/labels"
)

// Entry is a claimed span together with the labels attached to it.
type Entry[T any] struct {
	Span   span.Inclusive[T]
	Labels labels.Set
}

type Table[T any] interface {
	Claim(s span.Span[T], d labels.Set) error
	ClaimFree(d labels.Set) (T, error)
	Release(s span.Span[T]) bool
	Update(s span.Span[T], d labels.Set) error

	Get(v T) (Entry[T], error)
	Count() int
	Has(v T) bool

	IsFree(s span.Span[T]) bool
	FindFree() (T, error)
	Free() []span.Inclusive[T]

	GetAll() []Entry[T]
	GetByLabel(selector labels.Selector) []Entry[T]
}

// ValidationFn vetoes spans that must never be claimed, on top of the
// bounds and overlap checks the table always performs.
type ValidationFn[T any] func(s span.Inclusive[T]) error

// New returns a table of non-overlapping claimed spans inside bounds.
// initEntries are claimed up front and bypass the validation fn.
func New[T any](d span.Domain[T], bounds span.Span[T], initEntries []Entry[T], v ValidationFn[T]) (Table[T], error) {
	if span.Empty(d, bounds) {
		return nil, fmt.Errorf("bounds %v-%v is empty", bounds.StartsAt(), bounds.EndsAt())
	}
	r := &table[T]{
		m:          new(sync.RWMutex),
		dom:        d,
		bounds:     span.Inclusive[T]{Lo: bounds.StartsAt(), Hi: bounds.EndsAt()},
		validateFn: v,
	}

	var errm error
	for _, e := range initEntries {
		if err := r.add(e.Span, e.Labels, true); err != nil {
			errm = errors.Join(errm, err)
		}
	}

	return r, errm
}

type table[T any] struct {
	m          *sync.RWMutex
	dom        span.Domain[T]
	bounds     span.Inclusive[T]
	entries    []Entry[T]
	validateFn ValidationFn[T]
}

func (r *table[T]) validate(c span.Inclusive[T], init bool) error {
	if span.Empty(r.dom, c) {
		return fmt.Errorf("span %s is empty", c.String())
	}
	if !span.Covers(r.dom, r.bounds, c) {
		return fmt.Errorf("span %s does not fit in bounds %s", c.String(), r.bounds.String())
	}
	if r.validateFn != nil && !init {
		if err := r.validateFn(c); err != nil {
			return err
		}
	}
	return nil
}

func (r *table[T]) Claim(s span.Span[T], d labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.add(s, d, false)
}

func (r *table[T]) ClaimFree(d labels.Set) (T, error) {
	r.m.Lock()
	defer r.m.Unlock()

	var v T
	free := r.free()
	if len(free) == 0 {
		return v, fmt.Errorf("no free entry found")
	}
	v = free[0].Lo
	if err := r.add(span.Single(v), d, false); err != nil {
		return v, err
	}
	return v, nil
}

// Release removes the claim exactly matching s and reports whether an
// entry was removed. Releasing an unclaimed span is a no-op.
func (r *table[T]) Release(s span.Span[T]) bool {
	r.m.Lock()
	defer r.m.Unlock()

	c := span.Inclusive[T]{Lo: s.StartsAt(), Hi: s.EndsAt()}
	for i, e := range r.entries {
		if span.Equal[T](r.dom, e.Span, c) {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (r *table[T]) Update(s span.Span[T], d labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	c := span.Inclusive[T]{Lo: s.StartsAt(), Hi: s.EndsAt()}
	for i, e := range r.entries {
		if span.Equal[T](r.dom, e.Span, c) {
			r.entries[i].Labels = d
			return nil
		}
	}
	return fmt.Errorf("entry %s not found", c.String())
}

func (r *table[T]) Get(v T) (Entry[T], error) {
	r.m.RLock()
	defer r.m.RUnlock()

	for _, e := range r.entries {
		if span.Includes[T](r.dom, e.Span, v) {
			return e, nil
		}
	}
	return Entry[T]{}, fmt.Errorf("no match found for: %v", v)
}

func (r *table[T]) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.entries)
}

func (r *table[T]) Has(v T) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	for _, e := range r.entries {
		if span.Includes[T](r.dom, e.Span, v) {
			return true
		}
	}
	return false
}

func (r *table[T]) IsFree(s span.Span[T]) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	c := span.Inclusive[T]{Lo: s.StartsAt(), Hi: s.EndsAt()}
	if span.Empty(r.dom, c) || !span.Covers(r.dom, r.bounds, c) {
		return false
	}
	for _, e := range r.entries {
		if span.Intersects[T](r.dom, c, e.Span) {
			return false
		}
	}
	return true
}

func (r *table[T]) FindFree() (T, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	var v T
	free := r.free()
	if len(free) == 0 {
		return v, fmt.Errorf("no free entry found")
	}
	return free[0].Lo, nil
}

func (r *table[T]) Free() []span.Inclusive[T] {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.free()
}

// free carves every claimed span out of the bounds; entries are kept
// sorted and disjoint so the result is sorted too.
func (r *table[T]) free() []span.Inclusive[T] {
	free := []span.Inclusive[T]{r.bounds}
	for _, e := range r.entries {
		next := make([]span.Inclusive[T], 0, len(free)+1)
		for _, f := range free {
			below, above := span.SetMinus[T](r.dom, f, e.Span)
			if below != nil {
				next = append(next, *below)
			}
			if above != nil {
				next = append(next, *above)
			}
		}
		free = next
	}
	return free
}

func (r *table[T]) GetAll() []Entry[T] {
	r.m.RLock()
	defer r.m.RUnlock()

	entries := make([]Entry[T], len(r.entries))
	copy(entries, r.entries)
	return entries
}

func (r *table[T]) GetByLabel(selector labels.Selector) []Entry[T] {
	r.m.RLock()
	defer r.m.RUnlock()

	var entries []Entry[T]
	for _, e := range r.entries {
		if selector.Matches(e.Labels) {
			entries = append(entries, e)
		}
	}
	return entries
}

func (r *table[T]) add(s span.Span[T], d labels.Set, init bool) error {
	c := span.Inclusive[T]{Lo: s.StartsAt(), Hi: s.EndsAt()}
	if err := r.validate(c, init); err != nil {
		return err
	}
	for _, e := range r.entries {
		if span.Intersects[T](r.dom, c, e.Span) {
			return fmt.Errorf("span %s intersects claimed span %s", c.String(), e.Span.String())
		}
	}
	r.entries = append(r.entries, Entry[T]{Span: c, Labels: d})
	sort.Slice(r.entries, func(i, j int) bool {
		return r.dom.Compare(r.entries[i].Span.Lo, r.entries[j].Span.Lo) < 0
	})
	return nil
}
