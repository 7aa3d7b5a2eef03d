// Package diagnostics defines the checker's error taxonomy (§7) and the
// structured error value every stage (loader, parser, checker) reports
// through. Diagnostics are collected, never thrown: a run produces a
// slice of them, and sibling declarations keep being checked after one
// fails so a single invocation surfaces every problem it can find.
package diagnostics

import (
	"fmt"

	"github.com/catseye/Dieter/internal/token"
)

// Code identifies a diagnostic's kind, independent of its rendered message.
type Code string

const (
	Syntax                  Code = "syntax"
	UndefinedName           Code = "undefined-name"
	QualifierModuleMismatch Code = "qualifier-module-mismatch"
	QualifierSetViolation   Code = "qualifier-set-violation"
	StructuralMismatch      Code = "structural-mismatch"
	ReturnTypeDivergence    Code = "return-type-divergence"
	AmbiguousDispatch       Code = "ambiguous-dispatch"
	OrderingCycle           Code = "ordering-cycle"
	ArityMismatch           Code = "arity-mismatch"
)

// Error is a single reported diagnostic, carrying enough to both print a
// human-readable message and to let tooling (an LSP, a test fixture
// comparator) act on the Code and source position independently of the
// message text.
type Error struct {
	Code    Code
	File    string
	Token   token.Token
	Message string
}

func (e *Error) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.File, e.Token.Line, e.Token.Column, e.Code, e.Message)
	}
	return fmt.Sprintf("%d:%d: %s: %s", e.Token.Line, e.Token.Column, e.Code, e.Message)
}

// New builds a diagnostic with a formatted message.
func New(code Code, file string, tok token.Token, format string, args ...interface{}) *Error {
	return &Error{Code: code, File: file, Token: tok, Message: fmt.Sprintf(format, args...)}
}

// Bag accumulates diagnostics across an entire run (possibly several
// files, possibly several declarations within one file) so that one
// invocation of the checker reports every problem it finds rather than
// stopping at the first.
type Bag struct {
	errors []*Error
}

// Add records a diagnostic.
func (b *Bag) Add(e *Error) {
	b.errors = append(b.errors, e)
}

// Addf is a convenience that builds and records a diagnostic in one call.
func (b *Bag) Addf(code Code, file string, tok token.Token, format string, args ...interface{}) {
	b.Add(New(code, file, tok, format, args...))
}

// Errors returns the diagnostics recorded so far, in report order.
func (b *Bag) Errors() []*Error {
	return b.errors
}

// OK reports whether no diagnostics have been recorded.
func (b *Bag) OK() bool {
	return len(b.errors) == 0
}
