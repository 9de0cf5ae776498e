// Package csp implements the DPQA encoder's finite-domain constraint
// model: domains, a propagation store, a constraint interface, and a
// backtracking search procedure. internal/dpqa encodes the DPQA
// scheduling problem as a set of csp.Constraint propagators over csp.Var
// decision variables and hands the whole thing to csp.Search in place of
// a hand-written solver.
//
// Store and Search are thin translation layers over
// github.com/gitrdm/gokanlogic/pkg/minikanren's finite-domain solver:
// every csp.Var is backed by a real minikanren.FDVar bitset domain inside
// a shared minikanren.FDStore, Equal/NotEqual/LessEqual/LessThan register
// directly against the library's own AddInequalityConstraint
// propagators, and Search.Solve delegates traversal to
// minikanren.FDStore.Solve. Domain stays a
// small local value type (rather than a wrapper around
// minikanren.BitSet) only because callers and tests need a 0-based,
// per-variable-bounded view, whereas the library's BitSet is 1-based and
// sized once per store; the DPQA encoder's reified "if these coordinates
// take these values, then these others must" rules (A2-A9, C2-C3) are
// expressed as Check/Func constraints wrapped in a checkAdapter that
// implements minikanren.CustomConstraint, since they have no natural
// arc-consistent narrowing and are instead verified once every watched
// variable is singleton.
package csp

import (
	"fmt"
	"math/bits"
	"strings"
)

const wordBits = 64

// Domain is an immutable finite set of integers in [0, max]. The zero value
// is not meaningful; construct with NewDomain, EmptyDomain or Singleton.
type Domain struct {
	max   int
	words []uint64
}

func numWords(max int) int { return max/wordBits + 1 }

// NewDomain returns the full domain {0, ..., max}.
func NewDomain(max int) Domain {
	if max < 0 {
		panic("csp: domain max must be non-negative")
	}
	d := Domain{max: max, words: make([]uint64, numWords(max))}
	for i := range d.words {
		d.words[i] = ^uint64(0)
	}
	d.maskTail()
	return d
}

// EmptyDomain returns the empty domain over [0, max].
func EmptyDomain(max int) Domain {
	return Domain{max: max, words: make([]uint64, numWords(max))}
}

// Singleton returns the domain {v} over [0, max].
func Singleton(max, v int) Domain {
	d := EmptyDomain(max)
	d = d.with(v, true)
	return d
}

// maskTail clears any bits beyond max in the final word, so Count and
// IsEmpty never see spurious high bits.
func (d *Domain) maskTail() {
	extra := len(d.words)*wordBits - (d.max + 1)
	if extra <= 0 {
		return
	}
	last := len(d.words) - 1
	d.words[last] &^= (^uint64(0)) << (wordBits - extra)
}

func (d Domain) clone() Domain {
	w := make([]uint64, len(d.words))
	copy(w, d.words)
	return Domain{max: d.max, words: w}
}

func (d Domain) with(v int, set bool) Domain {
	nd := d.clone()
	word, bit := v/wordBits, uint(v%wordBits)
	if set {
		nd.words[word] |= 1 << bit
	} else {
		nd.words[word] &^= 1 << bit
	}
	return nd
}

// Max returns the domain's universe upper bound (not its current maximum
// member); use CurrentMax for the largest remaining value.
func (d Domain) Max() int { return d.max }

// Has reports whether v is a member of the domain.
func (d Domain) Has(v int) bool {
	if v < 0 || v > d.max {
		return false
	}
	word, bit := v/wordBits, uint(v%wordBits)
	return d.words[word]&(1<<bit) != 0
}

// Count returns the number of members.
func (d Domain) Count() int {
	n := 0
	for _, w := range d.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// IsEmpty reports whether the domain has no members.
func (d Domain) IsEmpty() bool { return d.Count() == 0 }

// IsSingleton reports whether the domain has exactly one member.
func (d Domain) IsSingleton() bool { return d.Count() == 1 }

// SingletonValue returns the sole member. Behavior is undefined if
// IsSingleton is false.
func (d Domain) SingletonValue() int {
	for i, w := range d.words {
		if w != 0 {
			return i*wordBits + bits.TrailingZeros64(w)
		}
	}
	return -1
}

// CurrentMin returns the smallest member, or -1 if empty.
func (d Domain) CurrentMin() int {
	for i, w := range d.words {
		if w != 0 {
			return i*wordBits + bits.TrailingZeros64(w)
		}
	}
	return -1
}

// CurrentMax returns the largest member, or -1 if empty.
func (d Domain) CurrentMax() int {
	for i := len(d.words) - 1; i >= 0; i-- {
		if d.words[i] != 0 {
			return i*wordBits + (wordBits - 1 - bits.LeadingZeros64(d.words[i]))
		}
	}
	return -1
}

// Values returns the members in ascending order.
func (d Domain) Values() []int {
	out := make([]int, 0, d.Count())
	for i, w := range d.words {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			out = append(out, i*wordBits+tz)
			w &^= 1 << uint(tz)
		}
	}
	return out
}

// Remove returns a new domain with v excluded.
func (d Domain) Remove(v int) Domain {
	if v < 0 || v > d.max {
		return d
	}
	return d.with(v, false)
}

// Intersect returns a new domain containing only members of both domains.
func (d Domain) Intersect(other Domain) Domain {
	nd := d.clone()
	for i := range nd.words {
		if i < len(other.words) {
			nd.words[i] &= other.words[i]
		} else {
			nd.words[i] = 0
		}
	}
	return nd
}

// RemoveAbove returns a new domain with every member > threshold removed.
func (d Domain) RemoveAbove(threshold int) Domain {
	if threshold >= d.max {
		return d
	}
	if threshold < 0 {
		return EmptyDomain(d.max)
	}
	nd := d.clone()
	keepWords := threshold/wordBits + 1
	for i := keepWords; i < len(nd.words); i++ {
		nd.words[i] = 0
	}
	rem := uint(threshold % wordBits)
	nd.words[keepWords-1] &= (^uint64(0)) >> (wordBits - 1 - rem)
	return nd
}

// RemoveBelow returns a new domain with every member < threshold removed.
func (d Domain) RemoveBelow(threshold int) Domain {
	if threshold <= 0 {
		return d
	}
	if threshold > d.max {
		return EmptyDomain(d.max)
	}
	nd := d.clone()
	dropWords := threshold / wordBits
	for i := 0; i < dropWords && i < len(nd.words); i++ {
		nd.words[i] = 0
	}
	rem := uint(threshold % wordBits)
	if dropWords < len(nd.words) {
		nd.words[dropWords] &^= (1 << rem) - 1
	}
	return nd
}

// Equal reports whether d and other contain exactly the same members.
func (d Domain) Equal(other Domain) bool {
	n := len(d.words)
	if len(other.words) > n {
		n = len(other.words)
	}
	for i := 0; i < n; i++ {
		var a, b uint64
		if i < len(d.words) {
			a = d.words[i]
		}
		if i < len(other.words) {
			b = other.words[i]
		}
		if a != b {
			return false
		}
	}
	return true
}

func (d Domain) String() string {
	vals := d.Values()
	strs := make([]string, len(vals))
	for i, v := range vals {
		strs[i] = fmt.Sprintf("%d", v)
	}
	return "{" + strings.Join(strs, ",") + "}"
}
