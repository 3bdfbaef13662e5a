package scanner

import (
	"fmt"
)

// Check matches lit exactly at the cursor. An empty literal is a caller bug.
func (s *Scanner) Check(lit string, advance bool) bool {
	if lit == "" {
		panic(fmt.Errorf("scanner: empty literal"))
	}
	n := uint32(len(lit))
	if s.src.Pos()+n > s.src.Len() {
		return false
	}
	for i := uint32(0); i < n; i++ {
		if s.src.PeekAt(i) != lit[i] {
			return false
		}
	}
	if advance {
		s.src.Advance(int32(n))
	}
	return true
}

// CheckByte matches a single byte at the cursor.
func (s *Scanner) CheckByte(b byte, advance bool) bool {
	if s.src.EOF() || s.src.Peek() != b {
		return false
	}
	if advance {
		s.src.Advance(1)
	}
	return true
}

// CheckAny tries each literal in order and returns the index of the first
// match, or -1. First match wins: order overlapping prefixes longest-first.
func (s *Scanner) CheckAny(lits []string, advance bool) int {
	for i, lit := range lits {
		if s.Check(lit, advance) {
			return i
		}
	}
	return -1
}
