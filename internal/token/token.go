package token

import (
	"cslex/internal/source"
)

// Trim records whether a token's closing pattern was ever found.
type Trim uint8

const (
	// TrimNone means the token matched completely.
	TrimNone Trim = iota
	// TrimEOL means the token was cut short by a disallowed line break.
	TrimEOL
	// TrimEOF means the token was cut short by the end of the buffer.
	TrimEOF
)

func (tr Trim) String() string {
	switch tr {
	case TrimNone:
		return "None"
	case TrimEOL:
		return "EOL"
	case TrimEOF:
		return "EOF"
	}
	return "Unknown"
}

// Token is one lexical token: a kind plus the span it covers. Tokens are
// immutable once yielded and own no buffer data; resolve the text through
// the Source that produced them.
type Token struct {
	Kind Kind
	Span source.Span
	Trim Trim
}

// IsLiteral reports whether the token is a numeric, character, or string
// literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Number, RealNumber, CharLit, StringLit:
		return true
	default:
		return false
	}
}

// Trimmed reports whether the token was cut short of its closing pattern.
func (t Token) Trimmed() bool {
	return t.Trim != TrimNone
}
