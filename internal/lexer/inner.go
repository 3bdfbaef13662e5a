package lexer

import (
	"cslex/internal/scanner"
)

// Inner scans recognize multi-character atomic units mid-combinator, so a
// "while" loop never splits an escape or a nested bracket run. They report
// the unit length without consuming; the engine advances.

// identEscape recognizes \u and \U followed by a non-empty hex digit run.
func identEscape(s *scanner.Scanner) uint32 {
	if sp, _, ok := s.FromAnyWhile(identEscapePrefixes, hex, false, nil, true, false); ok {
		return sp.Len
	}
	return 0
}

// stringEscape recognizes the hex-escape family (\u, \U, \x plus digits)
// and the fixed two-character escape table.
func stringEscape(s *scanner.Scanner) uint32 {
	if sp, _, ok := s.FromAnyWhile(hexEscapePrefixes, hex, false, nil, true, false); ok {
		return sp.Len
	}
	if s.CheckAny(charEscapes, false) >= 0 {
		return 2
	}
	return 0
}

// blockComment recognizes a complete /*...*/ run. Used inside interpolation
// braces so a } buried in a comment does not close the expression.
func blockComment(s *scanner.Scanner) uint32 {
	if sp, oc := s.FromTo("/*", "*/", true, nil, false, false); oc == scanner.Match {
		return sp.Len
	}
	return 0
}

// interpolation returns the inner scan for $"..." bodies: ordinary escapes
// plus balanced {...} runs consumed as single units. With multiline set the
// brace scan may cross lines and skip embedded block comments.
func interpolation(multiline bool) scanner.InnerScan {
	var braceInner scanner.InnerScan
	if multiline {
		braceInner = blockComment
	}
	return func(s *scanner.Scanner) uint32 {
		if n := stringEscape(s); n > 0 {
			return n
		}
		if sp, oc := s.FromTo("{", "}", multiline, braceInner, true, false); oc == scanner.Match {
			return sp.Len
		}
		return 0
	}
}
