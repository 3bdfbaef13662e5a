package scanner_test

import (
	"testing"

	"cslex/internal/charset"
	"cslex/internal/scanner"
	"cslex/internal/source"
)

func makeScanner(input string) *scanner.Scanner {
	return scanner.New(source.FromString(input), scanner.Options{})
}

var (
	alpha    = charset.New().Add('_').AddRange('A', 'Z').AddRange('a', 'z')
	alphanum = alpha.Clone().AddRange('0', '9')
	digits   = charset.New().AddRange('0', '9')
)

func TestIsBreak(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"abc", 0},
		{"", 0},
		{"\n", 1},
		{"\r", 1},
		{"\r\n", 2},
		{"\n\r", 2},
		{"\nx", 1},
		{"\n\n", 1}, // two equal break bytes are two lone breaks, not a pair
	}
	for _, tt := range tests {
		s := makeScanner(tt.input)
		got := s.IsBreak()
		if got != tt.want {
			t.Errorf("IsBreak(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestSkipToToken(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		nextline bool
		want     bool
		wantPos  uint32
	}{
		{"spaces then char", "   x", false, true, 3},
		{"tabs and spaces", " \t x", false, true, 3},
		{"stops at break", "  \n x", false, false, 2},
		{"crosses break", "  \n x", true, true, 4},
		{"only spaces", "   ", true, false, 3},
		{"empty", "", true, false, 0},
		{"at token already", "x", false, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := makeScanner(tt.input)
			got := s.SkipToToken(tt.nextline)
			if got != tt.want {
				t.Errorf("SkipToToken = %v, want %v", got, tt.want)
			}
			if s.Pos() != tt.wantPos {
				t.Errorf("pos = %d, want %d", s.Pos(), tt.wantPos)
			}
		})
	}
}

func TestSkipToTokenCountsLines(t *testing.T) {
	s := makeScanner("\n\r\n x")
	if !s.SkipToToken(true) {
		t.Fatal("expected to reach token")
	}
	if s.LineCount() != 2 {
		t.Errorf("LineCount = %d, want 2 (LF then CRLF)", s.LineCount())
	}
}

func TestCheck(t *testing.T) {
	s := makeScanner("using System;")

	if !s.Check("using", false) {
		t.Fatal("lookahead Check failed")
	}
	if s.Pos() != 0 {
		t.Fatal("lookahead must not consume")
	}
	if !s.Check("using", true) {
		t.Fatal("Check failed")
	}
	if s.Pos() != 5 {
		t.Fatalf("pos = %d, want 5", s.Pos())
	}
	if s.Check("using", false) {
		t.Fatal("Check should fail mid-input")
	}
}

func TestCheckPastEnd(t *testing.T) {
	s := makeScanner("us")
	if s.Check("using", false) {
		t.Fatal("literal longer than remainder must not match")
	}
}

func TestCheckEmptyLiteralPanics(t *testing.T) {
	s := makeScanner("x")
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for empty literal")
		}
	}()
	s.Check("", false)
}

func TestCheckAnyFirstMatchWins(t *testing.T) {
	s := makeScanner("<<=")
	ops := []string{"<<=", "<<", "<"}
	if idx := s.CheckAny(ops, true); idx != 0 {
		t.Fatalf("idx = %d, want 0", idx)
	}
	if s.Pos() != 3 {
		t.Fatalf("pos = %d, want 3", s.Pos())
	}

	s = makeScanner("<+")
	if idx := s.CheckAny(ops, false); idx != 2 {
		t.Fatalf("idx = %d, want 2", idx)
	}
	if idx := s.CheckAny([]string{">>", ">"}, false); idx != -1 {
		t.Fatalf("idx = %d, want -1", idx)
	}
}

func TestGetCharToken(t *testing.T) {
	// ordinary char
	s := makeScanner("ab")
	sp, ok := s.GetCharToken(false, nil, true)
	if !ok || sp.Len != 1 || s.Pos() != 1 {
		t.Fatalf("ordinary char: sp=%s ok=%v pos=%d", sp, ok, s.Pos())
	}

	// break with nextline unset fails without consuming
	s = makeScanner("\nx")
	if _, ok := s.GetCharToken(false, nil, true); ok {
		t.Fatal("break must fail when nextline is unset")
	}
	if s.Pos() != 0 {
		t.Fatal("failed call must not consume")
	}

	// break with nextline set consumes the whole pair and counts a line
	s = makeScanner("\r\nx")
	sp, ok = s.GetCharToken(true, nil, true)
	if !ok || sp.Len != 2 || s.LineCount() != 1 {
		t.Fatalf("compound break: sp=%s ok=%v lines=%d", sp, ok, s.LineCount())
	}

	// EOF fails
	s = makeScanner("")
	if _, ok := s.GetCharToken(true, nil, true); ok {
		t.Fatal("EOF must fail")
	}
}

func TestGetCharTokenInnerUnit(t *testing.T) {
	inner := func(s *scanner.Scanner) uint32 {
		if s.Check("\\n", false) {
			return 2
		}
		return 0
	}
	s := makeScanner("\\nx")
	sp, ok := s.GetCharToken(false, inner, true)
	if !ok || sp.Len != 2 || s.Pos() != 2 {
		t.Fatalf("inner unit: sp=%s ok=%v pos=%d", sp, ok, s.Pos())
	}
}

func TestCheckCharToken(t *testing.T) {
	// set member
	s := makeScanner("a1")
	sp, ok := s.CheckCharToken(alpha, false, nil, true)
	if !ok || sp.Len != 1 {
		t.Fatalf("member: sp=%s ok=%v", sp, ok)
	}
	// non-member fails without consuming
	if _, ok := s.CheckCharToken(alpha, false, nil, true); ok {
		t.Fatal("digit must not match alpha")
	}
	if s.Pos() != 1 {
		t.Fatal("failed call must not consume")
	}

	// break and inner results bypass the set test
	s = makeScanner("\nx")
	if sp, ok := s.CheckCharToken(alpha, true, nil, true); !ok || sp.Len != 1 {
		t.Fatal("break should bypass the set test")
	}
}

func TestFromSetWhile(t *testing.T) {
	s := makeScanner("_abc123 ")
	sp, ok := s.FromSetWhile(alpha, alphanum, false, nil, true)
	if !ok {
		t.Fatal("expected match")
	}
	if sp.Start != 0 || sp.Len != 7 {
		t.Fatalf("span = %s, want 0+7", sp)
	}
	if s.Text(sp) != "_abc123" {
		t.Fatalf("text = %q", s.Text(sp))
	}

	// leading char not in first set: fail outright, nothing consumed
	s = makeScanner("1abc")
	if _, ok := s.FromSetWhile(alpha, alphanum, false, nil, true); ok {
		t.Fatal("digit cannot start an identifier")
	}
	if s.Pos() != 0 {
		t.Fatal("failed call must not consume")
	}
}

func TestFromTokenWhile(t *testing.T) {
	s := makeScanner("0x1F rest")
	sp, ok := s.FromTokenWhile("0x", charset.New().AddRange('0', '9').AddRange('a', 'f').AddRange('A', 'F'), false, nil, true, true)
	if !ok || sp.Len != 4 {
		t.Fatalf("sp=%s ok=%v", sp, ok)
	}

	// notEmptyWhile: bare literal fails and restores
	s = makeScanner("0x rest")
	if _, ok := s.FromTokenWhile("0x", digits, false, nil, true, true); ok {
		t.Fatal("empty extension must fail with notEmptyWhile")
	}
	if s.Pos() != 0 {
		t.Fatal("failed call must restore the cursor")
	}

	// without notEmptyWhile the bare literal is a match
	s = makeScanner("0x rest")
	sp, ok = s.FromTokenWhile("0x", digits, false, nil, false, true)
	if !ok || sp.Len != 2 {
		t.Fatalf("sp=%s ok=%v", sp, ok)
	}
}

func TestFromAnyWhile(t *testing.T) {
	lits := []string{"e+", "e-", "e"}
	s := makeScanner("e-3f")
	sp, idx, ok := s.FromAnyWhile(lits, digits, false, nil, true, true)
	if !ok || idx != 1 || sp.Len != 3 {
		t.Fatalf("sp=%s idx=%d ok=%v", sp, idx, ok)
	}

	s = makeScanner("x")
	if _, idx, ok := s.FromAnyWhile(lits, digits, false, nil, true, true); ok || idx != -1 {
		t.Fatal("no literal should match")
	}
}

func TestFromTo(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		from, to  string
		multiline bool
		nesting   bool
		want      scanner.Outcome
		wantLen   uint32
	}{
		{"block comment", "/* a */", "/*", "*/", true, false, scanner.Match, 7},
		{"trailing input", "/* a */ x", "/*", "*/", true, false, scanner.Match, 7},
		{"unterminated at EOF", "/* unterminated", "/*", "*/", true, false, scanner.MatchTrimmedEOF, 15},
		{"break disallowed", "/* a\nb */", "/*", "*/", false, false, scanner.MatchTrimmedEOL, 4},
		{"multiline crosses break", "/* a\nb */", "/*", "*/", true, false, scanner.Match, 9},
		{"no match", "x", "/*", "*/", true, false, scanner.NoMatch, 0},
		{"nested pairs", "(a(b)c)", "(", ")", false, true, scanner.Match, 7},
		{"nested unterminated", "(a(b)", "(", ")", false, true, scanner.MatchTrimmedEOF, 5},
		{"string", `"ab"`, `"`, `"`, false, false, scanner.Match, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := makeScanner(tt.input)
			sp, oc := s.FromTo(tt.from, tt.to, tt.multiline, nil, tt.nesting, true)
			if oc != tt.want {
				t.Fatalf("outcome = %v, want %v", oc, tt.want)
			}
			if sp.Len != tt.wantLen {
				t.Fatalf("span = %s, want length %d", sp, tt.wantLen)
			}
			if oc == scanner.NoMatch && s.Pos() != 0 {
				t.Fatal("NoMatch must leave the cursor untouched")
			}
		})
	}
}

func TestFromToInnerKeepsEscapedQuote(t *testing.T) {
	escape := func(s *scanner.Scanner) uint32 {
		if s.Check(`\"`, false) || s.Check(`\\`, false) {
			return 2
		}
		return 0
	}
	s := makeScanner(`"a\"b" rest`)
	sp, oc := s.FromTo(`"`, `"`, false, escape, false, true)
	if oc != scanner.Match {
		t.Fatalf("outcome = %v", oc)
	}
	if s.Text(sp) != `"a\"b"` {
		t.Fatalf("text = %q", s.Text(sp))
	}
}

func TestFromToInterpolationUnit(t *testing.T) {
	// a balanced {...} run is one atomic unit inside the string
	braces := func(s *scanner.Scanner) uint32 {
		sp, oc := s.FromTo("{", "}", false, nil, true, false)
		if oc == scanner.Match {
			return sp.Len
		}
		return 0
	}
	input := `"ab{1+1}cd"`
	s := makeScanner(input)
	sp, oc := s.FromTo(`"`, `"`, false, braces, false, true)
	if oc != scanner.Match {
		t.Fatalf("outcome = %v", oc)
	}
	if sp.Len != uint32(len(input)) {
		t.Fatalf("span = %s, want the whole literal", sp)
	}
}

func TestAnyMatchOrder(t *testing.T) {
	s := makeScanner("/* x */")
	sp, oc := s.AnyMatch(
		func() (source.Span, scanner.Outcome) {
			p, ok := s.FromTokenWhile("//", charset.New().AddRange(0, 0xFF), false, nil, false, true)
			if !ok {
				return p, scanner.NoMatch
			}
			return p, scanner.Match
		},
		func() (source.Span, scanner.Outcome) {
			return s.FromTo("/*", "*/", true, nil, false, true)
		},
	)
	if oc != scanner.Match || sp.Len != 7 {
		t.Fatalf("sp=%s oc=%v", sp, oc)
	}

	s = makeScanner("x")
	if _, oc := s.AnyMatch(); oc != scanner.NoMatch {
		t.Fatal("no alternatives means NoMatch")
	}
}

func TestBacktrackRestore(t *testing.T) {
	// advance=false restores position and line counter for every outcome
	tests := []struct {
		name  string
		input string
		run   func(s *scanner.Scanner)
	}{
		{"check", "hello", func(s *scanner.Scanner) { s.Check("hello", false) }},
		{"get char token", "a", func(s *scanner.Scanner) { s.GetCharToken(false, nil, false) }},
		{"get char token break", "\r\nx", func(s *scanner.Scanner) { s.GetCharToken(true, nil, false) }},
		{"check char token", "a", func(s *scanner.Scanner) { s.CheckCharToken(alpha, false, nil, false) }},
		{"from set while", "_abc123", func(s *scanner.Scanner) { s.FromSetWhile(alpha, alphanum, false, nil, false) }},
		{"from token while", "0x1F", func(s *scanner.Scanner) {
			s.FromTokenWhile("0x", digits, false, nil, false, false)
		}},
		{"from to match", "/* a */", func(s *scanner.Scanner) { s.FromTo("/*", "*/", true, nil, false, false) }},
		{"from to multiline", "/* a\nb */", func(s *scanner.Scanner) { s.FromTo("/*", "*/", true, nil, false, false) }},
		{"from to trimmed", "/* a", func(s *scanner.Scanner) { s.FromTo("/*", "*/", true, nil, false, false) }},
		{"from to no match", "x", func(s *scanner.Scanner) { s.FromTo("/*", "*/", true, nil, false, false) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := makeScanner(tt.input)
			tt.run(s)
			if s.Pos() != 0 {
				t.Errorf("pos = %d, want 0 after advance=false", s.Pos())
			}
			if s.LineCount() != 0 {
				t.Errorf("lines = %d, want 0 after advance=false", s.LineCount())
			}
		})
	}
}

func TestLookaheadSpanStaysValid(t *testing.T) {
	s := makeScanner("_name rest")
	sp, ok := s.FromSetWhile(alpha, alphanum, false, nil, false)
	if !ok {
		t.Fatal("expected match")
	}
	if s.Pos() != 0 {
		t.Fatal("lookahead must not consume")
	}
	if s.Text(sp) != "_name" {
		t.Fatalf("span text after restore = %q", s.Text(sp))
	}
}
