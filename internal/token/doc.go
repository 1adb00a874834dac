// Package token defines lexical token kinds and trivia for defmod declarations.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Begin..End).
//   - '<' and '>' are always lexed as single tokens; there are no shift
//     operators in the declaration grammar, so generic nesting never needs
//     token splitting.
//   - Comments (// ..., /* ... */) are leading Trivia and never appear in the
//     main token stream.
package token
