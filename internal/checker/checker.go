// Package checker is the type checker and qualifier-specificity
// dispatcher: the part of Dieter that actually decides whether a program
// is well-typed. It walks an *ast.Program built by the parser (or the
// loader, for a multi-file build) in four passes — register qualifiers,
// register the order graph, register procedure signatures, then check
// every procedure body — so that a name used before its declaration
// within the same file still resolves (§4.3).
package checker

import (
	"github.com/catseye/Dieter/internal/ast"
	"github.com/catseye/Dieter/internal/diagnostics"
	"github.com/catseye/Dieter/internal/ordering"
	"github.com/catseye/Dieter/internal/symbols"
	"github.com/catseye/Dieter/internal/token"
	"github.com/catseye/Dieter/internal/typesystem"
)

// Checker owns the three registries a Dieter program is checked against
// (§4.3) plus the fresh-variable generator and the diagnostics collected
// along the way.
type Checker struct {
	Quals *symbols.QualifierTable
	Procs *symbols.ProcedureTable
	Order *ordering.Graph
	Gen   *typesystem.IDGen

	errs   *diagnostics.Bag
	chains map[string][]*symbols.ProcSignature
	sigOf  map[*ast.ProcDecl]*symbols.ProcSignature
}

// New returns an empty Checker, ready for Check.
func New() *Checker {
	return &Checker{
		Quals: symbols.NewQualifierTable(),
		Procs: symbols.NewProcedureTable(),
		Order: ordering.New(),
		Gen:   &typesystem.IDGen{},
		errs:  &diagnostics.Bag{},
		sigOf: make(map[*ast.ProcDecl]*symbols.ProcSignature),
	}
}

// Check runs all four passes over prog and returns every diagnostic
// raised. A failure in an earlier pass (an undeclared qualifier, an
// order cycle) does not stop later passes from running: the goal is to
// surface as much as one invocation usefully can.
func (c *Checker) Check(prog *ast.Program) []*diagnostics.Error {
	c.registerQualifiers(prog)
	c.registerOrderings(prog)
	c.registerProcedures(prog)
	c.buildChains()
	c.checkBodies(prog)
	return c.errs.Errors()
}

func (c *Checker) registerQualifiers(prog *ast.Program) {
	for _, decl := range prog.Decls {
		if mod, ok := decl.(*ast.ModuleDecl); ok {
			c.Quals.Define(mod.Name)
		}
	}
}

func (c *Checker) registerOrderings(prog *ast.Program) {
	for _, decl := range prog.Decls {
		ord, ok := decl.(*ast.OrderingDecl)
		if !ok {
			continue
		}
		if !c.Quals.IsDefined(ord.Lo) {
			c.errs.Addf(diagnostics.QualifierModuleMismatch, decl.File(), ord.Tok, "qualifier %q in order declaration is not defined by any module", ord.Lo)
		}
		if !c.Quals.IsDefined(ord.Hi) {
			c.errs.Addf(diagnostics.QualifierModuleMismatch, decl.File(), ord.Tok, "qualifier %q in order declaration is not defined by any module", ord.Hi)
		}
		if err := c.Order.Declare(ord.Lo, ord.Hi); err != nil {
			c.errs.Addf(diagnostics.OrderingCycle, decl.File(), ord.Tok, "%s", err)
		}
	}
}

func (c *Checker) registerProcedures(prog *ast.Program) {
	for _, decl := range prog.Decls {
		switch d := decl.(type) {
		case *ast.ForwardDecl:
			c.checkTypeQualifiers(decl.File(), d.Tok, d.ReturnType)
			for _, pt := range d.ParamTypes {
				c.checkTypeQualifiers(decl.File(), d.Tok, pt)
			}
			sig := &symbols.ProcSignature{
				Name:       d.Name,
				ParamTypes: d.ParamTypes,
				ReturnType: d.ReturnType,
				DeclToken:  d.Tok,
			}
			if err := c.Procs.Register(sig); err != nil {
				c.errs.Addf(diagnostics.ReturnTypeDivergence, decl.File(), d.Tok, "%s", err)
			}
		case *ast.ModuleDecl:
			for _, proc := range d.Procs {
				c.checkTypeQualifiers(decl.File(), proc.Tok, proc.ReturnType)
				for _, pt := range proc.ParamTypes() {
					c.checkTypeQualifiers(decl.File(), proc.Tok, pt)
				}
				sig := &symbols.ProcSignature{
					Name:         proc.Name,
					ParamTypes:   proc.ParamTypes(),
					ReturnType:   proc.ReturnType,
					Body:         proc.Body,
					OwningModule: d.Name,
					DeclToken:    proc.Tok,
				}
				if err := c.Procs.Register(sig); err != nil {
					c.errs.Addf(diagnostics.ReturnTypeDivergence, decl.File(), proc.Tok, "%s", err)
				}
				c.sigOf[proc] = sig
			}
		}
	}
}

// checkTypeQualifiers reports every qualifier name mentioned anywhere in
// t (including nested map key/value types) that no module defines (§7
// qualifier-module-mismatch).
func (c *Checker) checkTypeQualifiers(file string, tok token.Token, t typesystem.Type) {
	for _, q := range t.Quals {
		if !c.Quals.IsDefined(q) {
			c.errs.Addf(diagnostics.QualifierModuleMismatch, file, tok, "qualifier %q is not defined by any module", q)
		}
	}
	if m, ok := t.Base.(typesystem.MapType); ok {
		if m.KeyType != nil {
			c.checkTypeQualifiers(file, tok, *m.KeyType)
		}
		c.checkTypeQualifiers(file, tok, *m.ValueType)
	}
}
