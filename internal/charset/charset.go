// Package charset implements compact character classes as short lists of
// inclusive byte ranges. Membership is a linear probe: sets built by lexers
// hold a handful of ranges, so anything cleverer does not pay for itself.
// Overlapping ranges are kept as added, without merging.
package charset

import "fmt"

type span struct {
	lo, hi byte
}

// Set is a character class. The zero value is an empty set ready for use.
type Set struct {
	spans []span
}

// New returns an empty set.
func New() *Set {
	return &Set{}
}

// Add includes a single character.
func (s *Set) Add(b byte) *Set {
	s.spans = append(s.spans, span{lo: b, hi: b})
	return s
}

// AddRange includes the inclusive range [lo, hi]. lo <= hi is the caller's
// responsibility.
func (s *Set) AddRange(lo, hi byte) *Set {
	if lo > hi {
		panic(fmt.Errorf("charset: inverted range %q..%q", lo, hi))
	}
	s.spans = append(s.spans, span{lo: lo, hi: hi})
	return s
}

// AddSet includes every range of other.
func (s *Set) AddSet(other *Set) *Set {
	s.spans = append(s.spans, other.spans...)
	return s
}

// Contains reports whether b belongs to the set.
func (s *Set) Contains(b byte) bool {
	for _, sp := range s.spans {
		if b >= sp.lo && b <= sp.hi {
			return true
		}
	}
	return false
}

// Clone returns an independent copy: later mutation of either set is not
// observed by the other.
func (s *Set) Clone() *Set {
	out := &Set{spans: make([]span, len(s.spans))}
	copy(out.spans, s.spans)
	return out
}

// Len returns the number of stored ranges.
func (s *Set) Len() int {
	return len(s.spans)
}
