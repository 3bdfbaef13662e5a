package source

import (
	"fmt"
)

// Span identifies a subrange of a source buffer as a start offset plus a
// length, both in bytes. It carries no reference to the buffer itself;
// resolve it to text through the owning Source.
type Span struct {
	Start uint32
	Len   uint32
}

// NewSpan returns a span starting at start with zero length.
func NewSpan(start uint32) Span {
	return Span{Start: start, Len: 0}
}

// End returns the exclusive end offset.
func (s Span) End() uint32 {
	return s.Start + s.Len
}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool {
	return s.Len == 0
}

func (s Span) String() string {
	return fmt.Sprintf("%d+%d", s.Start, s.Len)
}

// Extend grows the span by n bytes.
func (s Span) Extend(n uint32) Span {
	s.Len += n
	return s
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	start := s.Start
	if other.Start < start {
		start = other.Start
	}
	end := s.End()
	if other.End() > end {
		end = other.End()
	}
	return Span{Start: start, Len: end - start}
}
