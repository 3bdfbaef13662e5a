package lexer

import (
	"cslex/internal/token"
)

// scanIdent matches one leading alpha unit then extends with alphanum,
// allowing \u escapes as atomic units anywhere. A keyword hit reclassifies
// the token.
func (lx *Lexer) scanIdent() token.Token {
	sp, ok := lx.sc.FromSetWhile(alpha, alphanum, false, identEscape, true)
	if !ok {
		// dispatch saw '\' that is not an identifier escape
		return lx.scanOperator()
	}

	kind := token.Ident
	if token.IsKeyword(lx.sc.Text(sp)) {
		kind = token.Keyword
	}
	return lx.make(kind, sp)
}
