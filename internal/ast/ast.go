// Package ast is the in-memory representation the parser produces and the
// checker walks: modules, procedures, statements, expressions, and (via
// the typesystem package) type expressions. The parser's only contract
// with the rest of the core is that every node here is fully formed and
// every type expression is in canonical form (§4.2).
package ast

import "github.com/catseye/Dieter/internal/token"

// Node is the base interface implemented by every AST node.
type Node interface {
	TokenLiteral() string
	GetToken() token.Token
}

// Statement is a Node appearing in a procedure body.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that has a static type once checked.
type Expression interface {
	Node
	expressionNode()
}

// Decl is a top-level declaration: a Module, an Ordering, or a Forward.
type Decl interface {
	Node
	declNode()
	// File is set by the loader when a declaration is read from a
	// specific source file, for diagnostics spanning multiple files.
	File() string
	SetFile(string)
}

// Program is the root node produced by parsing (or loading) one or more
// source files: a sequence of top-level declarations, per the grammar's
// `Program ::= { Module | Ordering | Forward } "."`.
type Program struct {
	Decls []Decl
}
