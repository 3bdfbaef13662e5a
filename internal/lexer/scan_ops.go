package lexer

import (
	"cslex/internal/diag"
	"cslex/internal/source"
	"cslex/internal/token"
)

// scanOperator matches the compound table longest-first, then the fixed
// single-character set, and finally consumes exactly one character tagged
// Invalid so the stream always moves forward.
func (lx *Lexer) scanOperator() token.Token {
	start := lx.sc.Pos()

	if idx := lx.sc.CheckAny(compoundOps, true); idx >= 0 {
		return lx.make(token.Symbol, source.Span{Start: start, Len: uint32(len(compoundOps[idx]))})
	}

	if sp, ok := lx.sc.CheckCharToken(singleOps, false, nil, true); ok {
		return lx.make(token.Symbol, sp)
	}

	sp, ok := lx.sc.GetCharToken(false, nil, true)
	if !ok {
		// unreachable after SkipToToken(true): not EOF, not at a break
		return lx.make(token.EOF, source.NewSpan(start))
	}
	lx.report(diag.LexUnknownChar, sp, "unknown character")
	return lx.make(token.Invalid, sp)
}
