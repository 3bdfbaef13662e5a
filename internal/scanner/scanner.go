// Package scanner implements the combinator engine: a set of composable
// matching primitives over a source.Source cursor. Every primitive takes an
// advance flag; with advance=false the cursor and the line counter are
// restored to their pre-call values for every outcome, which is what makes
// unbounded lookahead safe. Returned spans are valid either way.
package scanner

import (
	"cslex/internal/source"
)

// SpaceFunc decides whether a byte counts as in-line whitespace. Line breaks
// are never spaces; they are handled by IsBreak.
type SpaceFunc func(b byte) bool

// InnerScan recognizes a multi-character atomic unit at the cursor (an
// escape sequence, a balanced bracket run) and returns its length in bytes,
// or 0 if there is none. It must leave the cursor where it found it; the
// engine consumes the reported bytes itself.
type InnerScan func(s *Scanner) uint32

// DefaultIsSpace treats control characters and the space character as
// whitespace, except CR and LF.
func DefaultIsSpace(b byte) bool {
	return b > 0 && b <= 32 && b != '\r' && b != '\n'
}

// Options configures scanner policy hooks.
type Options struct {
	IsSpace SpaceFunc // nil means DefaultIsSpace
}

// Scanner owns a Source cursor and a monotone line-break counter, and
// exposes the matching primitives. Exactly one Scanner owns one Source;
// the pair is single-threaded.
type Scanner struct {
	src     source.Source
	lines   uint32
	isSpace SpaceFunc
}

// New creates a scanner over src. The scanner takes exclusive ownership of
// the cursor.
func New(src source.Source, opts Options) *Scanner {
	isSpace := opts.IsSpace
	if isSpace == nil {
		isSpace = DefaultIsSpace
	}
	return &Scanner{src: src, isSpace: isSpace}
}

// Pos returns the current cursor offset.
func (s *Scanner) Pos() uint32 {
	return s.src.Pos()
}

// EOF reports whether the cursor is at the end of the buffer.
func (s *Scanner) EOF() bool {
	return s.src.EOF()
}

// LineCount returns the number of line breaks consumed so far.
func (s *Scanner) LineCount() uint32 {
	return s.lines
}

// Text resolves a span against the owned source.
func (s *Scanner) Text(sp source.Span) string {
	return s.src.Text(sp)
}

// Source exposes the owned cursor. Callers must not move it while a scan is
// in flight.
func (s *Scanner) Source() source.Source {
	return s.src
}

// IsBreak returns the length of the line-break sequence at the cursor:
// 0 if the cursor is not at a break (including at EOF), 1 for a lone CR or
// LF, 2 for a CRLF or LFCR compound pair.
func (s *Scanner) IsBreak() int {
	if s.src.EOF() {
		return 0
	}
	b := s.src.Peek()
	if b != '\r' && b != '\n' {
		return 0
	}
	if s.src.Pos()+1 < s.src.Len() {
		n := s.src.PeekAt(1)
		if (b == '\r' && n == '\n') || (b == '\n' && n == '\r') {
			return 2
		}
	}
	return 1
}

// SkipToToken consumes runs of whitespace and, when nextline is set, break
// sequences. It returns false without consuming the blocking character if it
// stops at a break while nextline is unset, or if the buffer ends; otherwise
// true with the cursor at the first non-space, non-break character.
func (s *Scanner) SkipToToken(nextline bool) bool {
	for {
		if s.src.EOF() {
			return false
		}
		if s.isSpace(s.src.Peek()) {
			s.src.Advance(1)
			continue
		}
		if n := s.IsBreak(); n > 0 {
			if !nextline {
				return false
			}
			s.src.Advance(int32(n))
			s.lines++
			continue
		}
		return true
	}
}

// restore rewinds the cursor by the accumulated span length and resets the
// line counter, so that advance=false calls observe full undo.
func (s *Scanner) restore(sp source.Span, lines uint32) {
	s.src.Advance(-int32(sp.Len))
	s.lines = lines
}
