package ipspan

import (
	"net/netip"

	"github.com/henderiw/span/pkg/span"
	"go4.org/netipx"
)

type addrDomain struct {
	min netip.Addr
	max netip.Addr
}

// V4 returns the Domain of the IPv4 address space.
func V4() span.Domain[netip.Addr] {
	return addrDomain{
		min: netip.AddrFrom4([4]byte{0, 0, 0, 0}),
		max: netip.AddrFrom4([4]byte{255, 255, 255, 255}),
	}
}

// V6 returns the Domain of the IPv6 address space.
func V6() span.Domain[netip.Addr] {
	return addrDomain{
		min: netip.IPv6Unspecified(),
		max: netip.AddrFrom16([16]byte{
			255, 255, 255, 255, 255, 255, 255, 255,
			255, 255, 255, 255, 255, 255, 255, 255,
		}),
	}
}

// DomainOf returns the address Domain of the family addr belongs to.
func DomainOf(addr netip.Addr) span.Domain[netip.Addr] {
	if addr.Is4() {
		return V4()
	}
	return V6()
}

func (d addrDomain) Min() netip.Addr { return d.min }

func (d addrDomain) Max() netip.Addr { return d.max }

func (d addrDomain) Next(v netip.Addr) netip.Addr { return v.Next() }

func (d addrDomain) Prev(v netip.Addr) netip.Addr { return v.Prev() }

func (d addrDomain) Compare(a, b netip.Addr) int { return a.Compare(b) }

// FromIPRange returns the span of addresses r covers.
func FromIPRange(r netipx.IPRange) span.Span[netip.Addr] {
	return span.Inclusive[netip.Addr]{Lo: r.From(), Hi: r.To()}
}

// FromPrefix returns the span of addresses p covers.
func FromPrefix(p netip.Prefix) span.Span[netip.Addr] {
	r := netipx.RangeOfPrefix(p)
	return span.Inclusive[netip.Addr]{Lo: r.From(), Hi: r.To()}
}

// IPRange converts a span back to a netipx range. The zero IPRange
// comes back for an empty span.
func IPRange(s span.Span[netip.Addr]) netipx.IPRange {
	return netipx.IPRangeFrom(s.StartsAt(), s.EndsAt())
}

// Prefixes returns the minimum set of prefixes covering s.
func Prefixes(s span.Span[netip.Addr]) []netip.Prefix {
	return IPRange(s).Prefixes()
}
