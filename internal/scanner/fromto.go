package scanner

import (
	"cslex/internal/source"
)

// FromTo is the delimiter-pair primitive. It consumes from, then scans unit
// by unit until the matching to. With nesting set, every further occurrence
// of from deepens a nesting counter and the scan completes only when the
// counter returns to zero. The inner callback keeps escape sequences and
// similar atomic units from being mistaken for delimiters.
//
// If a disallowed break is hit first the outcome is MatchTrimmedEOL; if the
// buffer ends first it is MatchTrimmedEOF. Both trimmed outcomes still
// return the partial span, so callers can emit a malformed-but-bounded token
// instead of losing input.
func (s *Scanner) FromTo(from, to string, multiline bool, inner InnerScan, nesting, advance bool) (source.Span, Outcome) {
	lines := s.lines
	sp := source.NewSpan(s.src.Pos())

	if !s.Check(from, true) {
		return sp, NoMatch
	}
	sp.Len = uint32(len(from))

	depth := 1
	outcome := Match
	for depth > 0 {
		if nesting && s.Check(from, true) {
			depth++
			sp.Len += uint32(len(from))
			continue
		}
		if s.Check(to, true) {
			depth--
			sp.Len += uint32(len(to))
			continue
		}
		u, ok := s.GetCharToken(multiline, inner, true)
		if !ok {
			if s.src.EOF() {
				outcome = MatchTrimmedEOF
			} else {
				outcome = MatchTrimmedEOL
			}
			break
		}
		sp.Len += u.Len
	}

	if !advance {
		s.restore(sp, lines)
	}
	return sp, outcome
}

// MatchFunc is one alternative for AnyMatch.
type MatchFunc func() (source.Span, Outcome)

// AnyMatch runs the alternatives in order and returns the first outcome that
// is not NoMatch. Alternatives that fail leave the cursor untouched by the
// NoMatch contract, so trying the next one is always safe.
func (s *Scanner) AnyMatch(alts ...MatchFunc) (source.Span, Outcome) {
	for _, alt := range alts {
		if sp, oc := alt(); oc != NoMatch {
			return sp, oc
		}
	}
	return source.NewSpan(s.src.Pos()), NoMatch
}
