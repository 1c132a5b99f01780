package iptable

import (
	"fmt"
	"net/netip"
	"strings"

	"github.com/hansthienpondt/nipam/pkg/table"
	"github.com/henderiw/span/pkg/ipspan"
	"github.com/henderiw/span/pkg/span"
	"github.com/henderiw/span/pkg/spantable"
	"go4.org/netipx"
	"k8s.io/apimachinery/pkg/labels"
)

type IPTable interface {
	Get(addr string) (table.Route, error)
	Claim(rng string, d labels.Set) error
	Release(rng string) error

	Count() int
	Has(addr string) bool

	IsFree(addr string) bool
	FindFree() (netip.Addr, error)
	Free() []netipx.IPRange

	GetAll() table.Routes
	GetByLabel(selector labels.Selector) table.Routes
}

func New(from, to netip.Addr) (IPTable, error) {
	if from.Is4() != to.Is4() {
		return nil, fmt.Errorf("from %s and to %s are not of the same address family", from.String(), to.String())
	}
	dom := ipspan.DomainOf(from)
	spans, err := spantable.New(dom, span.Closed(from, to), nil, nil)
	if err != nil {
		return nil, err
	}
	return &ipTable{
		dom:     dom,
		spans:   spans,
		rib:     table.NewRIB(),
		ipRange: netipx.IPRangeFrom(from, to),
	}, nil
}

type ipTable struct {
	dom     span.Domain[netip.Addr]
	spans   spantable.Table[netip.Addr]
	rib     *table.RIB
	ipRange netipx.IPRange
}

func (r *ipTable) Get(addr string) (table.Route, error) {
	var route table.Route
	claimIP, err := r.validateIP(addr)
	if err != nil {
		return route, err
	}
	// longest prefix wins
	found := false
	for _, rt := range r.rib.GetTable() {
		if !rt.Prefix().Contains(claimIP) {
			continue
		}
		if !found || rt.Prefix().Bits() > route.Prefix().Bits() {
			route = rt
			found = true
		}
	}
	if !found {
		return route, fmt.Errorf("no match found for: %v", addr)
	}
	return route, nil
}

func (r *ipTable) Claim(rng string, d labels.Set) error {
	ipRange, err := r.validateRange(rng)
	if err != nil {
		return err
	}
	if err := r.spans.Claim(ipspan.FromIPRange(ipRange), d); err != nil {
		return err
	}
	for _, prefix := range ipRange.Prefixes() {
		route := table.NewRoute(prefix, d, map[string]any{})
		if err := r.rib.Add(route); err != nil {
			return err
		}
	}
	return nil
}

func (r *ipTable) Release(rng string) error {
	ipRange, err := r.validateRange(rng)
	if err != nil {
		return err
	}
	if !r.spans.Release(ipspan.FromIPRange(ipRange)) {
		// not an exact claim, leave the RIB untouched
		return nil
	}
	for _, prefix := range ipRange.Prefixes() {
		// Delete matches on labels too, so delete the stored route
		route, ok := r.rib.Get(prefix)
		if !ok {
			continue
		}
		if err := r.rib.Delete(route); err != nil {
			return err
		}
	}
	return nil
}

func (r *ipTable) Count() int {
	return r.spans.Count()
}

func (r *ipTable) Has(addr string) bool {
	claimIP, err := r.validateIP(addr)
	if err != nil {
		return false
	}
	return r.spans.Has(claimIP)
}

func (r *ipTable) IsFree(addr string) bool {
	claimIP, err := r.validateIP(addr)
	if err != nil {
		return false
	}
	return r.spans.IsFree(span.Single(claimIP))
}

func (r *ipTable) FindFree() (netip.Addr, error) {
	return r.spans.FindFree()
}

func (r *ipTable) Free() []netipx.IPRange {
	var ranges []netipx.IPRange
	for _, s := range r.spans.Free() {
		ranges = append(ranges, ipspan.IPRange(s))
	}
	return ranges
}

func (r *ipTable) GetAll() table.Routes {
	return r.rib.GetTable()
}

func (r *ipTable) GetByLabel(selector labels.Selector) table.Routes {
	var routes table.Routes
	for _, route := range r.rib.GetTable() {
		if selector.Matches(route.Labels()) {
			routes = append(routes, route)
		}
	}
	return routes
}

func (r *ipTable) validateIP(addr string) (netip.Addr, error) {
	claimIP, err := netip.ParseAddr(addr)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("ip address %s is invalid", addr)
	}
	if !r.ipRange.Contains(claimIP) {
		return netip.Addr{}, fmt.Errorf("ip address %s, does not fit in the range from %s to %s", addr, r.ipRange.From().String(), r.ipRange.To().String())
	}
	return claimIP, nil
}

// validateRange accepts a from-to range or a single address.
func (r *ipTable) validateRange(rng string) (netipx.IPRange, error) {
	var ipRange netipx.IPRange
	if strings.IndexByte(rng, '-') == -1 {
		addr, err := r.validateIP(rng)
		if err != nil {
			return ipRange, err
		}
		return netipx.IPRangeFrom(addr, addr), nil
	}
	ipRange, err := netipx.ParseIPRange(rng)
	if err != nil {
		return ipRange, fmt.Errorf("ip range %s is invalid", rng)
	}
	if !r.ipRange.Contains(ipRange.From()) || !r.ipRange.Contains(ipRange.To()) {
		return ipRange, fmt.Errorf("ip range %s, does not fit in the range from %s to %s", rng, r.ipRange.From().String(), r.ipRange.To().String())
	}
	return ipRange, nil
}
