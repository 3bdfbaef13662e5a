package lexer

import (
	"cslex/internal/diag"
	"cslex/internal/scanner"
	"cslex/internal/source"
	"cslex/internal/token"
)

// scanString matches an ordinary "..." literal. Escapes are consumed as
// atomic units so an escaped quote never closes the string. A trimmed
// outcome still yields a StringLit token carrying the partial span.
func (lx *Lexer) scanString() token.Token {
	sp, oc := lx.sc.FromTo("\"", "\"", false, stringEscape, false, true)
	return lx.finishString(sp, oc)
}

// scanPrefixedStringOrOperator handles the @ and $ prefixes: verbatim
// @"...", interpolated $"...", verbatim interpolated $@"...". A prefix not
// followed by a quote falls through to the operator path.
func (lx *Lexer) scanPrefixedStringOrOperator() token.Token {
	switch {
	case lx.sc.Check("$@\"", false):
		inner := interpolation(true)
		sp, oc := lx.sc.FromTo("$@\"", "\"", true, inner, false, true)
		return lx.finishVerbatim(sp, oc, inner)
	case lx.sc.Check("@\"", false):
		sp, oc := lx.sc.FromTo("@\"", "\"", true, nil, false, true)
		return lx.finishVerbatim(sp, oc, nil)
	case lx.sc.Check("$\"", false):
		sp, oc := lx.sc.FromTo("$\"", "\"", false, interpolation(false), false, true)
		return lx.finishString(sp, oc)
	default:
		return lx.scanOperator()
	}
}

// finishVerbatim splices directly-adjacent "..." segments into the same
// token before finishing. The doubled quote inside a verbatim string is
// exactly such an adjacent segment, so @"ab""cd" comes out as one literal.
func (lx *Lexer) finishVerbatim(sp source.Span, oc scanner.Outcome, inner scanner.InnerScan) token.Token {
	for oc == scanner.Match && lx.sc.Check("\"", false) {
		seg, segOc := lx.sc.FromTo("\"", "\"", true, inner, false, true)
		sp.Len += seg.Len
		oc = segOc
	}
	return lx.finishString(sp, oc)
}

// finishString reports trimmed outcomes and wraps the span into a token.
func (lx *Lexer) finishString(sp source.Span, oc scanner.Outcome) token.Token {
	if oc.Trimmed() {
		lx.report(diag.LexUnterminatedString, sp, "unterminated string literal")
	}
	tok := lx.make(token.StringLit, sp)
	tok.Trim = trimOf(oc)
	return tok
}
