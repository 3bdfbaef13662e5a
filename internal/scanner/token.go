package scanner

import (
	"cslex/internal/charset"
	"cslex/internal/source"
)

// GetCharToken consumes one token-character unit at the cursor: a whole
// break sequence (when nextline allows it), an inner atomic unit, or one
// ordinary character. This is the single step that every "while" loop is
// built on, so ordinary characters, breaks, and multi-character units
// compose uniformly.
//
// Check order: a break with nextline unset fails without consuming; a break
// with nextline set is consumed whole and counted; otherwise the inner
// callback may claim a unit; otherwise EOF fails; otherwise exactly one
// character is consumed.
func (s *Scanner) GetCharToken(nextline bool, inner InnerScan, advance bool) (source.Span, bool) {
	lines := s.lines
	sp := source.NewSpan(s.src.Pos())

	if n := s.IsBreak(); n > 0 {
		if !nextline {
			return sp, false
		}
		sp.Len = uint32(n)
		s.src.Advance(int32(n))
		s.lines++
	} else if n := innerLen(s, inner); n > 0 {
		sp.Len = n
		s.src.Advance(int32(n))
	} else if s.src.EOF() {
		return sp, false
	} else {
		sp.Len = 1
		s.src.Advance(1)
	}

	if !advance {
		s.restore(sp, lines)
	}
	return sp, true
}

// CheckCharToken is GetCharToken with a membership requirement: an ordinary
// single-character result must belong to set. Break and inner results bypass
// the set test; they are already whole units by construction.
func (s *Scanner) CheckCharToken(set *charset.Set, nextline bool, inner InnerScan, advance bool) (source.Span, bool) {
	lines := s.lines
	sp := source.NewSpan(s.src.Pos())

	if n := s.IsBreak(); n > 0 {
		if !nextline {
			return sp, false
		}
		sp.Len = uint32(n)
		s.src.Advance(int32(n))
		s.lines++
	} else if n := innerLen(s, inner); n > 0 {
		sp.Len = n
		s.src.Advance(int32(n))
	} else if s.src.EOF() || !set.Contains(s.src.Peek()) {
		return sp, false
	} else {
		sp.Len = 1
		s.src.Advance(1)
	}

	if !advance {
		s.restore(sp, lines)
	}
	return sp, true
}

func innerLen(s *Scanner, inner InnerScan) uint32 {
	if inner == nil {
		return 0
	}
	return inner(s)
}
