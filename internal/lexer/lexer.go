// Package lexer tokenizes a C#-like language by composing the scanner
// engine's primitives. One pull skips whitespace and breaks, then runs a
// single classification path picked by the current character. No path can
// abort the stream: malformed input becomes an Invalid or trimmed token and
// the cursor always moves forward.
package lexer

import (
	"cslex/internal/scanner"
	"cslex/internal/source"
	"cslex/internal/token"
)

// Lexer holds a scanner engine and classifies its output into tokens.
type Lexer struct {
	sc   *scanner.Scanner
	src  source.Source
	opts Options
}

// New creates a lexer over src. The lexer takes exclusive ownership of the
// cursor; one lexer per Source, one Source per lexer.
func New(src source.Source, opts Options) *Lexer {
	return &Lexer{
		sc:   scanner.New(src, scanner.Options{}),
		src:  src,
		opts: opts,
	}
}

// Next returns the next token. After the input is exhausted it always
// returns EOF. Dispatch order follows expected frequency: identifiers
// first, then comments, literals, and numbers, falling through to operators
// and finally a one-character Invalid token.
func (lx *Lexer) Next() token.Token {
	if !lx.sc.SkipToToken(true) {
		return token.Token{Kind: token.EOF, Span: source.NewSpan(lx.sc.Pos())}
	}

	ch := lx.src.Peek()
	switch {
	case alpha.Contains(ch) || ch == '\\':
		return lx.scanIdent()
	case ch == '/':
		return lx.scanCommentOrOperator()
	case ch == '"':
		return lx.scanString()
	case ch == '@' || ch == '$':
		return lx.scanPrefixedStringOrOperator()
	case ch == '\'':
		return lx.scanChar()
	case dec.Contains(ch):
		return lx.scanNumber()
	case ch == '#':
		return lx.scanPreprocessor()
	default:
		return lx.scanOperator()
	}
}

// Tokens pulls the remaining tokens into a slice, including the final EOF.
func (lx *Lexer) Tokens() []token.Token {
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

// LineCount returns the number of line breaks consumed so far.
func (lx *Lexer) LineCount() uint32 {
	return lx.sc.LineCount()
}

// Text resolves a token's span against the owned source.
func (lx *Lexer) Text(t token.Token) string {
	return lx.sc.Text(t.Span)
}

func (lx *Lexer) make(kind token.Kind, sp source.Span) token.Token {
	return token.Token{Kind: kind, Span: sp}
}

func trimOf(oc scanner.Outcome) token.Trim {
	switch oc {
	case scanner.MatchTrimmedEOL:
		return token.TrimEOL
	case scanner.MatchTrimmedEOF:
		return token.TrimEOF
	default:
		return token.TrimNone
	}
}
