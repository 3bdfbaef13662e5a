// Package tokfmt renders token streams and diagnostics for the CLI.
package tokfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"cslex/internal/source"
	"cslex/internal/token"
)

// TokenOutput is the JSON shape of one token.
type TokenOutput struct {
	Kind  string `json:"kind"`
	Text  string `json:"text,omitempty"`
	Start uint32 `json:"start"`
	Len   uint32 `json:"len"`
	Trim  string `json:"trim,omitempty"`
}

// FormatTokensPretty writes tokens in a human-readable form, one per line,
// with byte-offset spans.
func FormatTokensPretty(w io.Writer, tokens []token.Token, file *source.File) error {
	buf := file.Buffer()
	for i, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%3d: %-12s", i+1, tok.Kind.String()); err != nil {
			return err
		}

		if !tok.Span.Empty() {
			fmt.Fprintf(w, " %q", buf.Text(tok.Span))
		}

		fmt.Fprintf(w, " at %d..%d", tok.Span.Start, tok.Span.End())

		if tok.Trimmed() {
			fmt.Fprintf(w, " (trimmed at %s)", tok.Trim)
		}

		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON writes tokens as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token, file *source.File) error {
	buf := file.Buffer()
	output := make([]TokenOutput, 0, len(tokens))

	for _, tok := range tokens {
		out := TokenOutput{
			Kind:  tok.Kind.String(),
			Start: tok.Span.Start,
			Len:   tok.Span.Len,
		}
		if !tok.Span.Empty() {
			out.Text = buf.Text(tok.Span)
		}
		if tok.Trimmed() {
			out.Trim = tok.Trim.String()
		}
		output = append(output, out)

		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
