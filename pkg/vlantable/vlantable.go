package vlantable

import (
	"fmt"

	"github.com/henderiw/span/pkg/span"
	"github.com/henderiw/span/pkg/spantable"
	"k8s.io/apimachinery/pkg/labels"
)

type VLANTable interface {
	Get(id uint16) (labels.Set, error)
	Claim(id uint16, d labels.Set) error
	ClaimRange(from, to uint16, d labels.Set) error
	ClaimDynamic(d labels.Set) (uint16, error)
	Release(id uint16) error
	ReleaseRange(from, to uint16) error
	Update(id uint16, d labels.Set) error

	Count() int
	Has(id uint16) bool

	IsFree(id uint16) bool
	FindFree() (uint16, error)

	GetAll() []spantable.Entry[uint16]
	GetByLabel(selector labels.Selector) []spantable.Entry[uint16]
}

var initEntries = []spantable.Entry[uint16]{
	{Span: span.Inclusive[uint16]{Lo: 0, Hi: 0}, Labels: labels.Set{"type": "untagged", "status": "reserved"}},
	{Span: span.Inclusive[uint16]{Lo: 1, Hi: 1}, Labels: labels.Set{"type": "untagged", "status": "reserved"}},
	{Span: span.Inclusive[uint16]{Lo: 4095, Hi: 4095}, Labels: labels.Set{"type": "untagged", "status": "reserved"}},
}

func New() (VLANTable, error) {
	dom := span.Integers[uint16]()
	t, err := spantable.New(
		dom,
		span.Closed[uint16](0, 4095),
		initEntries,
		func(s span.Inclusive[uint16]) error {
			for _, id := range []uint16{0, 1, 4095} {
				if span.Includes[uint16](dom, s, id) {
					return fmt.Errorf("VLAN %d is reserved, cannot be added to the database", id)
				}
			}
			return nil
		},
	)
	if err != nil {
		return nil, err
	}
	return &vlanTable{
		table: t,
	}, nil
}

type vlanTable struct {
	table spantable.Table[uint16]
}

func (r *vlanTable) Get(id uint16) (labels.Set, error) {
	e, err := r.table.Get(id)
	if err != nil {
		return nil, err
	}
	return e.Labels, nil
}

func (r *vlanTable) Claim(id uint16, d labels.Set) error {
	return r.table.Claim(span.Single(id), d)
}

func (r *vlanTable) ClaimRange(from, to uint16, d labels.Set) error {
	return r.table.Claim(span.Closed(from, to), d)
}

func (r *vlanTable) ClaimDynamic(d labels.Set) (uint16, error) {
	return r.table.ClaimFree(d)
}

func (r *vlanTable) Release(id uint16) error {
	r.table.Release(span.Single(id))
	return nil
}

func (r *vlanTable) ReleaseRange(from, to uint16) error {
	r.table.Release(span.Closed(from, to))
	return nil
}

func (r *vlanTable) Update(id uint16, d labels.Set) error {
	return r.table.Update(span.Single(id), d)
}

func (r *vlanTable) Count() int {
	return r.table.Count()
}

func (r *vlanTable) Has(id uint16) bool {
	return r.table.Has(id)
}

func (r *vlanTable) IsFree(id uint16) bool {
	return r.table.IsFree(span.Single(id))
}

func (r *vlanTable) FindFree() (uint16, error) {
	return r.table.FindFree()
}

func (r *vlanTable) GetAll() []spantable.Entry[uint16] {
	return r.table.GetAll()
}

func (r *vlanTable) GetByLabel(selector labels.Selector) []spantable.Entry[uint16] {
	return r.table.GetByLabel(selector)
}
