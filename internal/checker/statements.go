package checker

import (
	"github.com/catseye/Dieter/internal/ast"
	"github.com/catseye/Dieter/internal/diagnostics"
	"github.com/catseye/Dieter/internal/symbols"
	"github.com/catseye/Dieter/internal/token"
	"github.com/catseye/Dieter/internal/typesystem"
)

// procCtx is the state threaded through checking one procedure body: the
// signature being checked, its variable scope, the index of its own
// signature within its name's dispatch chain (for `super`), and the
// single Subst accumulated across the whole body (§3 Lifecycles: a Subst
// lives for one call-site or assignment resolution — here, one body
// check plays that role for every call made within it).
type procCtx struct {
	file       string
	module     string // name of the enclosing module, for bestow-encapsulation (§7)
	sig        *symbols.ProcSignature
	chain      []*symbols.ProcSignature
	chainIndex int // index of sig within chain; -1 if not found
	scope      *symbols.Scope
	subst      typesystem.Subst
}

func (c *Checker) checkBodies(prog *ast.Program) {
	for _, decl := range prog.Decls {
		mod, ok := decl.(*ast.ModuleDecl)
		if !ok {
			continue
		}
		moduleScope := symbols.NewScope()
		for _, v := range mod.Variables {
			c.checkTypeQualifiers(decl.File(), v.Tok, v.Type)
			moduleScope.Define(v.Name, v.Type)
		}
		for _, proc := range mod.Procs {
			if proc.Body == nil {
				continue
			}
			sig := c.sigOf[proc]
			chain := c.chainFor(proc.Name)
			idx := -1
			for i, s := range chain {
				if s == sig {
					idx = i
					break
				}
			}

			// The parser mints every declared ♥-variable with ID 0 and
			// distinguishes them only by Name (parser/types.go), while Subst
			// keys solely off ID (typesystem/subst.go). Left alone, two
			// distinctly-named tvars in the same procedure's own params,
			// locals or return type would collide on slot 0 in ctx.subst.
			// Freshen them together here, once per procedure, the same way
			// Freshen does for a callee at a call site (symbols/procedures.go),
			// so that distinct Names get distinct IDs and recurring Names
			// keep sharing one.
			all := make([]typesystem.Type, 0, len(proc.Params)+len(proc.Locals)+1)
			for _, p := range proc.Params {
				all = append(all, p.Type)
			}
			for _, l := range proc.Locals {
				all = append(all, l.Type)
			}
			all = append(all, sig.ReturnType)
			fresh := typesystem.FreshenAll(c.Gen, all...)
			freshParams, rest := fresh[:len(proc.Params)], fresh[len(proc.Params):]
			freshLocals, freshReturn := rest[:len(proc.Locals)], rest[len(proc.Locals)]

			scope := moduleScope.Push()
			for i, p := range proc.Params {
				scope.Define(p.Name, freshParams[i])
			}
			for i, l := range proc.Locals {
				c.checkTypeQualifiers(decl.File(), l.Tok, l.Type)
				scope.Define(l.Name, freshLocals[i])
			}

			bodySig := *sig
			bodySig.ParamTypes = freshParams
			bodySig.ReturnType = freshReturn

			ctx := &procCtx{file: decl.File(), module: mod.Name, sig: &bodySig, chain: chain, chainIndex: idx, scope: scope}
			c.checkStatement(ctx, proc.Body)
		}
	}
}

func (c *Checker) checkStatement(ctx *procCtx, stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.BlockStatement:
		inner := *ctx
		inner.scope = ctx.scope.Push()
		for _, sub := range s.Statements {
			c.checkStatement(&inner, sub)
		}
		ctx.subst = inner.subst
	case *ast.IfStatement:
		c.expectProvider(ctx, s.Tok, typesystem.Bare(typesystem.Bool), s.Condition)
		c.checkStatement(ctx, s.Consequence)
		if s.Alternative != nil {
			c.checkStatement(ctx, s.Alternative)
		}
	case *ast.WhileStatement:
		c.expectProvider(ctx, s.Tok, typesystem.Bare(typesystem.Bool), s.Condition)
		c.checkStatement(ctx, s.Body)
	case *ast.AssignStatement:
		c.checkAssign(ctx, s)
	case *ast.CallStatement:
		c.inferCall(ctx, s.Call)
	case *ast.ReturnStatement:
		c.expectProvider(ctx, s.Tok, ctx.subst.Apply(ctx.sig.ReturnType), s.Value)
	}
}

func (c *Checker) checkAssign(ctx *procCtx, s *ast.AssignStatement) {
	varType, ok := ctx.scope.Lookup(s.Name)
	if !ok {
		c.errs.Addf(diagnostics.UndefinedName, ctx.file, s.Tok, "undefined variable %q", s.Name)
		return
	}

	if s.Index == nil {
		c.expectProvider(ctx, s.Tok, varType, s.Value)
		return
	}

	m, ok := varType.Base.(typesystem.MapType)
	if !ok {
		c.errs.Addf(diagnostics.StructuralMismatch, ctx.file, s.Tok, "%q is indexed but its declared type %s is not a map", s.Name, varType)
		return
	}
	if m.KeyType != nil {
		c.expectProvider(ctx, s.Tok, *m.KeyType, s.Index)
	} else {
		c.inferExpr(ctx, s.Index)
	}
	c.expectProvider(ctx, s.Tok, *m.ValueType, s.Value)
}

// expectProvider infers e's type and unifies it as provider against
// receptor, recording a diagnostic on mismatch.
func (c *Checker) expectProvider(ctx *procCtx, tok token.Token, receptor typesystem.Type, e ast.Expression) typesystem.Type {
	provided := c.inferExpr(ctx, e)
	next, err := typesystem.Unify(receptor, provided, ctx.subst)
	if err != nil {
		c.errs.Addf(codeFor(err), ctx.file, tok, "%s", err)
		return provided
	}
	ctx.subst = next
	return provided
}

func codeFor(err error) diagnostics.Code {
	if ue, ok := err.(*typesystem.UnifyError); ok && ue.Kind == typesystem.QualifierSetViolation {
		return diagnostics.QualifierSetViolation
	}
	return diagnostics.StructuralMismatch
}
