// Package ast defines the declaration tree produced by the parser.
//
// The tree is transient: it is built once per invocation, consumed by the
// router and the assertion generator, and discarded. Nothing mutates a node
// after construction — Self-substitution in the generator builds new type
// nodes instead of rewriting existing ones.
package ast
