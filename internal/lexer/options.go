package lexer

import (
	"cslex/internal/diag"
	"cslex/internal/source"
)

// Options configures the lexer. A nil Reporter drops diagnostics but never
// stops the token stream.
type Options struct {
	Reporter diag.Reporter
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg)
	}
}
