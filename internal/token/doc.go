// Package token defines lexical token kinds for the Quartz compiler.
// Invariants:
//   - Token.Text is exactly the source substring matched by Token.Span.
//   - Tokens are immutable values once produced by the scanner.
//   - Built-in type names are identifiers; they are recognized by later
//     phases, not the lexer.
package token
