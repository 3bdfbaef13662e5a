package scanner

import (
	"cslex/internal/charset"
	"cslex/internal/source"
)

// FromSetWhile matches one leading unit from first, then extends greedily
// with units from while. Never partial: if the leading unit does not match,
// the call fails outright with the cursor untouched.
func (s *Scanner) FromSetWhile(first, while *charset.Set, multiline bool, inner InnerScan, advance bool) (source.Span, bool) {
	lines := s.lines
	sp := source.NewSpan(s.src.Pos())

	head, ok := s.CheckCharToken(first, multiline, inner, true)
	if !ok {
		return sp, false
	}
	sp.Len = head.Len

	for {
		u, ok := s.CheckCharToken(while, multiline, inner, true)
		if !ok {
			break
		}
		sp.Len += u.Len
	}

	if !advance {
		s.restore(sp, lines)
	}
	return sp, true
}

// FromTokenWhile matches a fixed literal, then extends greedily with units
// from while. If notEmptyWhile is set and nothing extended the match beyond
// the literal, the whole call fails and the cursor is restored.
func (s *Scanner) FromTokenWhile(lit string, while *charset.Set, multiline bool, inner InnerScan, notEmptyWhile, advance bool) (source.Span, bool) {
	lines := s.lines
	sp := source.NewSpan(s.src.Pos())

	if !s.Check(lit, true) {
		return sp, false
	}
	sp.Len = uint32(len(lit))

	var ext uint32
	for {
		u, ok := s.CheckCharToken(while, multiline, inner, true)
		if !ok {
			break
		}
		ext += u.Len
	}
	sp.Len += ext

	if notEmptyWhile && ext == 0 {
		s.restore(sp, lines)
		return source.NewSpan(sp.Start), false
	}
	if !advance {
		s.restore(sp, lines)
	}
	return sp, true
}

// FromAnyWhile is FromTokenWhile over an ordered literal alternative list:
// the first literal that matches at the cursor is extended. Returns the
// index of the matched literal, or -1 when none matched.
func (s *Scanner) FromAnyWhile(lits []string, while *charset.Set, multiline bool, inner InnerScan, notEmptyWhile, advance bool) (source.Span, int, bool) {
	for i, lit := range lits {
		if !s.Check(lit, false) {
			continue
		}
		sp, ok := s.FromTokenWhile(lit, while, multiline, inner, notEmptyWhile, advance)
		return sp, i, ok
	}
	return source.NewSpan(s.src.Pos()), -1, false
}
