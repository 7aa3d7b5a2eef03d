package checker

import (
	"github.com/catseye/Dieter/internal/ast"
	"github.com/catseye/Dieter/internal/diagnostics"
	"github.com/catseye/Dieter/internal/typesystem"
)

// inferExpr computes e's static type, recording any diagnostics along the
// way and updating ctx.subst as call-site and map-index resolutions bind
// type variables (§4.6). A malformed expression still returns some Type
// (void, by convention) so the caller can keep checking the rest of the
// body instead of aborting.
func (c *Checker) inferExpr(ctx *procCtx, e ast.Expression) typesystem.Type {
	switch expr := e.(type) {
	case *ast.IntLiteral:
		return typesystem.Bare(typesystem.Int)
	case *ast.RatLiteral:
		return typesystem.Bare(typesystem.Rat)
	case *ast.Identifier:
		return c.inferIdentifier(ctx, expr)
	case *ast.ParenExpression:
		return c.inferExpr(ctx, expr.Inner)
	case *ast.BestowExpression:
		return c.inferBestow(ctx, expr)
	case *ast.SuperExpression:
		return c.inferSuper(ctx, expr)
	case *ast.CallExpression:
		return c.inferCall(ctx, expr)
	default:
		return typesystem.Bare(typesystem.VoidT)
	}
}

func (c *Checker) inferIdentifier(ctx *procCtx, id *ast.Identifier) typesystem.Type {
	t, ok := ctx.scope.Lookup(id.Name)
	if !ok {
		c.errs.Addf(diagnostics.UndefinedName, ctx.file, id.Tok, "undefined variable %q", id.Name)
		return typesystem.Bare(typesystem.VoidT)
	}
	t = ctx.subst.Apply(t)
	if id.Index == nil {
		return t
	}

	m, ok := t.Base.(typesystem.MapType)
	if !ok {
		c.errs.Addf(diagnostics.StructuralMismatch, ctx.file, id.Tok, "%q is indexed but its type %s is not a map", id.Name, t)
		return typesystem.Bare(typesystem.VoidT)
	}
	if m.KeyType != nil {
		c.expectProvider(ctx, id.Tok, *m.KeyType, id.Index)
	} else {
		c.inferExpr(ctx, id.Index)
	}
	return ctx.subst.Apply(*m.ValueType)
}

// inferBestow enforces bestow-encapsulation (§7, §8): `bestow q e` is only
// permitted inside the module named q, since q is what grants the
// qualifier its meaning.
func (c *Checker) inferBestow(ctx *procCtx, b *ast.BestowExpression) typesystem.Type {
	inner := c.inferExpr(ctx, b.Value)
	if !c.Quals.IsDefined(b.Qualifier) {
		c.errs.Addf(diagnostics.QualifierModuleMismatch, ctx.file, b.Tok, "qualifier %q is not defined by any module", b.Qualifier)
		return inner
	}
	if b.Qualifier != ctx.module {
		c.errs.Addf(diagnostics.QualifierModuleMismatch, ctx.file, b.Tok, "bestow %q used outside its defining module %q", b.Qualifier, b.Qualifier)
		return inner
	}
	return inner.Qualify(b.Qualifier)
}

// inferSuper resolves `super` to the next-more-general signature in the
// current procedure's dispatch chain (§4.6, §9 Open Question: `super`
// used in the most general candidate for its name is a dispatch error,
// since there is nothing more general left to fall back to).
func (c *Checker) inferSuper(ctx *procCtx, s *ast.SuperExpression) typesystem.Type {
	if ctx.chainIndex <= 0 {
		c.errs.Addf(diagnostics.AmbiguousDispatch, ctx.file, s.Tok, "super used in %q, which has no more general signature to fall back to", ctx.sig.Name)
		return ctx.sig.ReturnType
	}
	return ctx.chain[ctx.chainIndex-1].ReturnType
}

func (c *Checker) inferCall(ctx *procCtx, call *ast.CallExpression) typesystem.Type {
	argTypes := make([]typesystem.Type, len(call.Arguments))
	for i, arg := range call.Arguments {
		argTypes[i] = c.inferExpr(ctx, arg)
	}

	result, derr := c.resolveCall(call.ProcName, argTypes, ctx.subst)
	if derr != nil {
		c.reportDispatchError(ctx, call, derr)
	}
	if result == nil {
		return typesystem.Bare(typesystem.VoidT)
	}
	ctx.subst = result.subst
	return ctx.subst.Apply(result.sig.ReturnType)
}

func (c *Checker) reportDispatchError(ctx *procCtx, call *ast.CallExpression, derr *dispatchError) {
	switch {
	case derr.undefined:
		c.errs.Addf(diagnostics.UndefinedName, ctx.file, call.Tok, "undefined procedure %q", call.ProcName)
	case len(derr.arity) > 0:
		c.errs.Addf(diagnostics.ArityMismatch, ctx.file, call.Tok, "call to %q with %d arguments matches no declared signature (declared arities: %v)", call.ProcName, len(call.Arguments), derr.arity)
	case len(derr.tied) > 0:
		c.errs.Addf(diagnostics.AmbiguousDispatch, ctx.file, call.Tok, "call to %q is ambiguous among %d equally specific signatures", call.ProcName, len(derr.tied))
	default:
		// When every candidate was rejected for missing qualifiers, the
		// call is a qualifier-set violation rather than a shape mismatch.
		code := diagnostics.StructuralMismatch
		if len(derr.attempts) > 0 {
			code = diagnostics.QualifierSetViolation
			for _, a := range derr.attempts {
				if codeFor(a) != diagnostics.QualifierSetViolation {
					code = diagnostics.StructuralMismatch
					break
				}
			}
		}
		c.errs.Addf(code, ctx.file, call.Tok, "no signature of %q accepts these argument types: %s", call.ProcName, derr)
	}
}
