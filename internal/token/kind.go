package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token: an unrecognized character or an
	// unterminated construct. Invalid tokens still cover a span, so the
	// stream keeps making forward progress.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// Keyword represents a reserved word. The concrete word is the token
	// text; there is one kind for all of them.
	Keyword
	// Number represents an integer literal (decimal or 0x hexadecimal,
	// with an optional l/L/u/U postfix).
	Number
	// RealNumber represents a literal with a fractional part, exponent, or
	// float suffix.
	RealNumber
	// CharLit represents a character literal 'x'.
	CharLit
	// StringLit represents a string literal: ordinary "...", verbatim
	// @"...", or interpolated $"..." / $@"...".
	StringLit
	// Comment represents a line or block comment.
	Comment
	// Preprocessor represents a #directive line, kept as an opaque span.
	Preprocessor
	// Symbol represents an operator or punctuation token.
	Symbol
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Ident:
		return "Ident"
	case Keyword:
		return "Keyword"
	case Number:
		return "Number"
	case RealNumber:
		return "RealNumber"
	case CharLit:
		return "CharLit"
	case StringLit:
		return "StringLit"
	case Comment:
		return "Comment"
	case Preprocessor:
		return "Preprocessor"
	case Symbol:
		return "Symbol"
	}
	return "Unknown"
}
