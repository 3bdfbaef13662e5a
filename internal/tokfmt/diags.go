package tokfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"cslex/internal/diag"
)

// DiagOpts configures diagnostic rendering.
type DiagOpts struct {
	Color bool
}

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
)

func severityLabel(sev diag.Severity, useColor bool) string {
	if !useColor {
		return sev.String()
	}
	switch sev {
	case diag.SevError:
		return errColor.Sprint(sev.String())
	case diag.SevWarning:
		return warnColor.Sprint(sev.String())
	default:
		return infoColor.Sprint(sev.String())
	}
}

// FormatDiagnostics writes one line per diagnostic:
// <path>:<start>..<end>: <SEV> <CODE>: <message>
// The bag is expected to be sorted by the caller.
func FormatDiagnostics(w io.Writer, bag *diag.Bag, opts DiagOpts) {
	for _, d := range bag.Items() {
		path := d.Path
		if path == "" {
			path = "<input>"
		}
		fmt.Fprintf(w, "%s:%d..%d: %s %s: %s\n",
			path, d.Primary.Start, d.Primary.End(),
			severityLabel(d.Severity, opts.Color), d.Code.ID(), d.Message)
	}
}
