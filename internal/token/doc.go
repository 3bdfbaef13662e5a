// Package token defines lexical token kinds for the C#-like lexer.
// Invariants:
//   - Token.Span matches the consumed input exactly; tokens never overlap.
//   - Tokens carry no text: resolve spans through the producing Source.
//   - Keywords are identifiers first; the lexer reclassifies them to the
//     single Keyword kind via IsKeyword.
//   - Malformed input still yields tokens (Invalid kind or a Trim marker);
//     the stream always terminates.
package token
