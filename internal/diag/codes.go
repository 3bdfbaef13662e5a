package diag

import (
	"fmt"
)

// Code identifies a diagnostic category. The 1000 block is lexical, the
// 4000 block is I/O; other blocks are reserved for layers built on top.
type Code uint16

const (
	// UnknownCode is the fallback for uncategorized diagnostics.
	UnknownCode Code = 0

	// LexInfo is a generic informational lexical diagnostic.
	LexInfo Code = 1000
	// LexUnknownChar reports a character no classification path accepts.
	LexUnknownChar Code = 1001
	// LexUnterminatedString reports a string literal cut short by a line
	// break or the end of the buffer.
	LexUnterminatedString Code = 1002
	// LexUnterminatedComment reports a block comment without its closer.
	LexUnterminatedComment Code = 1003
	// LexUnterminatedChar reports a character literal without its closing
	// quote.
	LexUnterminatedChar Code = 1004
	// LexBadNumber reports a malformed numeric literal.
	LexBadNumber Code = 1005

	// IOReadFailed reports a file that could not be read.
	IOReadFailed Code = 4000
	// IOCacheFailed reports a token cache read or write problem.
	IOCacheFailed Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:            "unknown diagnostic",
	LexInfo:                "lexical note",
	LexUnknownChar:         "unknown character",
	LexUnterminatedString:  "unterminated string literal",
	LexUnterminatedComment: "unterminated block comment",
	LexUnterminatedChar:    "unterminated character literal",
	LexBadNumber:           "malformed number literal",
	IOReadFailed:           "file read failed",
	IOCacheFailed:          "token cache failure",
}

// ID returns the short stable identifier, e.g. LEX1002.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

// Title returns the human-readable description of the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
