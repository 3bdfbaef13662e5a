package lexer

import (
	"cslex/internal/charset"
	"cslex/internal/token"
)

// scanNumber classifies numeric literals. The hexadecimal form is tried
// first: 0x with a non-empty digit run, which excludes a fractional suffix
// by construction. Otherwise a decimal digit run, where an integer postfix
// (l/L/u/U) short-circuits the fractional attempt and a matched fractional
// suffix reclassifies the token to RealNumber.
func (lx *Lexer) scanNumber() token.Token {
	if sp, _, ok := lx.sc.FromAnyWhile([]string{"0x", "0X"}, hex, false, nil, true, true); ok {
		sp.Len += lx.postfix(intPostfix)
		return lx.make(token.Number, sp)
	}

	sp, ok := lx.sc.FromSetWhile(dec, dec, false, nil, true)
	if !ok {
		// dispatch guarantees a digit at the cursor
		return lx.scanOperator()
	}

	if n := lx.postfix(intPostfix); n > 0 {
		sp.Len += n
		return lx.make(token.Number, sp)
	}

	kind := token.Number
	if frac, ok := lx.scanFraction(); ok {
		kind = token.RealNumber
		sp.Len += frac
	}
	return lx.make(kind, sp)
}

// scanFraction matches `.` digits [e|E [+|-] digits] [f|d|F|D] and returns
// the consumed length. Without a digit after the dot nothing is consumed:
// "1.x" stays an integer followed by a dot.
func (lx *Lexer) scanFraction() (uint32, bool) {
	sp, ok := lx.sc.FromTokenWhile(".", dec, false, nil, true, true)
	if !ok {
		return 0, false
	}
	total := sp.Len

	if esp, _, ok := lx.sc.FromAnyWhile(exponentPrefixes, dec, false, nil, true, true); ok {
		total += esp.Len
	}
	total += lx.postfix(realSuffix)
	return total, true
}

// exponentPrefixes are ordered longest-first so the signed forms win over
// the bare e/E.
var exponentPrefixes = []string{"e+", "e-", "E+", "E-", "e", "E"}

// postfix consumes at most one ordinary character from set.
func (lx *Lexer) postfix(set *charset.Set) uint32 {
	sp, ok := lx.sc.CheckCharToken(set, false, nil, true)
	if !ok {
		return 0
	}
	return sp.Len
}
