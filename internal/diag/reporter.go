package diag

import "cslex/internal/source"

// Reporter is the minimal contract for receiving diagnostics from the lexer
// and the driver. Implementations: BagReporter (stores into a Bag),
// NopReporter (drops everything).
type Reporter interface {
	Report(code Code, sev Severity, primary source.Span, msg string)
}

// BagReporter stores reported diagnostics into a Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, primary source.Span, msg string) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
	})
}

// PathBagReporter stores diagnostics like BagReporter and stamps a file
// path onto each one, for multi-file runs.
type PathBagReporter struct {
	Bag  *Bag
	Path string
}

func (r PathBagReporter) Report(code Code, sev Severity, primary source.Span, msg string) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Path:     r.Path,
		Primary:  primary,
	})
}

// NopReporter drops every diagnostic.
type NopReporter struct{}

func (NopReporter) Report(Code, Severity, source.Span, string) {}
