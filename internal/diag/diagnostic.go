package diag

import (
	"cslex/internal/source"
)

// Diagnostic is one reported finding: what, how bad, and where.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Path     string
	Primary  source.Span
}

// New constructs a diagnostic without emitting it.
func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

// NewError is a shortcut for SevError diagnostics.
func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}
