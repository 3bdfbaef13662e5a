package lexer

import (
	"cslex/internal/charset"
)

// Character classes shared by the classification paths. Built once; the
// lexer only reads them.
var (
	alpha    = charset.New().Add('_').AddRange('A', 'Z').AddRange('a', 'z')
	alphanum = alpha.Clone().AddRange('0', '9')
	dec      = charset.New().AddRange('0', '9')
	hex      = charset.New().AddRange('0', '9').AddRange('a', 'f').AddRange('A', 'F')

	// anyChar accepts every byte; break and EOF handling happens before
	// the set test, so this is the "rest of the line" class.
	anyChar = charset.New().AddRange(0, 0xFF)

	intPostfix = charset.New().Add('l').Add('L').Add('u').Add('U')
	realSuffix = charset.New().Add('f').Add('d').Add('F').Add('D')

	singleOps = charset.New().
			Add('{').Add('}').Add('(').Add(')').Add('[').Add(']').
			Add('.').Add(',').Add(':').Add(';').
			Add('+').Add('-').Add('*').Add('/').Add('%').
			Add('=').Add('<').Add('>').Add('!').Add('~').
			Add('&').Add('|').Add('^').Add('?').Add('@').Add('$')
)

// compoundOps is checked first-match-wins, so longer compounds sharing a
// prefix with shorter ones come first.
var compoundOps = []string{
	"<<=", ">>=",
	"==", "!=", "<=", ">=",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
	"&&", "||", "++", "--",
	"->", "=>", "??", "?.", "::",
	"<<", ">>",
}

// hexEscapePrefixes start the universal hex-escape family; the digits run
// is greedy and must be non-empty.
var hexEscapePrefixes = []string{"\\u", "\\U", "\\x"}

// identEscapePrefixes are the subset valid inside identifiers.
var identEscapePrefixes = []string{"\\u", "\\U"}

// charEscapes is the fixed table of two-character escapes.
var charEscapes = []string{
	"\\'", "\\\"", "\\\\",
	"\\t", "\\r", "\\n", "\\b", "\\f", "\\0",
}
