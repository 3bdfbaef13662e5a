package lexer

import (
	"cslex/internal/diag"
	"cslex/internal/scanner"
	"cslex/internal/source"
	"cslex/internal/token"
)

// scanCommentOrOperator tries the two comment forms via alternation: // to
// the end of the line, then /*...*/ across lines. A lone slash falls
// through to the operator path.
func (lx *Lexer) scanCommentOrOperator() token.Token {
	sp, oc := lx.sc.AnyMatch(
		func() (source.Span, scanner.Outcome) {
			sp, ok := lx.sc.FromTokenWhile("//", anyChar, false, nil, false, true)
			if !ok {
				return sp, scanner.NoMatch
			}
			return sp, scanner.Match
		},
		func() (source.Span, scanner.Outcome) {
			return lx.sc.FromTo("/*", "*/", true, nil, false, true)
		},
	)

	if oc == scanner.NoMatch {
		return lx.scanOperator()
	}
	if oc.Trimmed() {
		lx.report(diag.LexUnterminatedComment, sp, "unterminated block comment")
	}
	tok := lx.make(token.Comment, sp)
	tok.Trim = trimOf(oc)
	return tok
}

// scanChar matches a character literal with the same escape scan as
// strings. Breaks are disallowed, so a stray quote is cut at the line end.
func (lx *Lexer) scanChar() token.Token {
	sp, oc := lx.sc.FromTo("'", "'", false, stringEscape, false, true)
	if oc == scanner.NoMatch {
		return lx.scanOperator()
	}
	if oc.Trimmed() {
		lx.report(diag.LexUnterminatedChar, sp, "unterminated character literal")
	}
	tok := lx.make(token.CharLit, sp)
	tok.Trim = trimOf(oc)
	return tok
}

// scanPreprocessor consumes a #directive to the end of the line as one
// opaque span; its contents are not parsed further.
func (lx *Lexer) scanPreprocessor() token.Token {
	sp, ok := lx.sc.FromTokenWhile("#", anyChar, false, nil, false, true)
	if !ok {
		return lx.scanOperator()
	}
	return lx.make(token.Preprocessor, sp)
}
