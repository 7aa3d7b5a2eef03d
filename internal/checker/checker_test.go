package checker

import (
	"testing"

	"github.com/catseye/Dieter/internal/ast"
	"github.com/catseye/Dieter/internal/diagnostics"
	"github.com/catseye/Dieter/internal/lexer"
	"github.com/catseye/Dieter/internal/parser"
)

func parseOrFail(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := parser.New(lexer.New(src), "test")
	prog := p.ParseProgram()
	if errs := p.Errors(); len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	return prog
}

func checkSrc(t *testing.T, src string) []*diagnostics.Error {
	t.Helper()
	prog := parseOrFail(t, src)
	return New().Check(prog)
}

func requireOK(t *testing.T, errs []*diagnostics.Error) {
	t.Helper()
	if len(errs) != 0 {
		t.Fatalf("expected OK, got %d diagnostics: %v", len(errs), errs)
	}
}

func requireCode(t *testing.T, errs []*diagnostics.Error, code diagnostics.Code) {
	t.Helper()
	for _, e := range errs {
		if e.Code == code {
			return
		}
	}
	t.Fatalf("expected a %s diagnostic, got %v", code, errs)
}

// TestCheckPersonModule is spec.md §8 seed scenario 1: two module-level
// maps keyed on `person ref`, a constructor that bestows `person` and
// returns `person ref`, and accessors over the maps. Expected: OK.
func TestCheckPersonModule(t *testing.T) {
	src := `
module person
  var names : map from person ref to string
  var ages : map from person ref to int

  procedure person_new(n : string, a : int) : person ref
  var self : person ref
  begin
    names[self] := n;
    ages[self] := a;
    return bestow person self
  end

  procedure person_name(p : person ref) : string
  begin
    return names[p]
  end

  procedure person_age(p : person ref) : int
  begin
    return ages[p]
  end
end.`
	requireOK(t, checkSrc(t, src))
}

// TestCheckRebindingSuccess is spec.md §8 seed scenario 2: equal's shared
// ♥a is first bound against `gnarly int`, then re-bound down to bare
// `int` on the second argument — loosening, not tightening, so it
// succeeds.
func TestCheckRebindingSuccess(t *testing.T) {
	src := `
forward glunt(beefy gnarly ♥t): gnarly ♥t
forward equal(♥a, ♥a): bool

module gnarly
end

module beefy
  procedure run() : bool
  var i : beefy gnarly int
  begin
    return equal(glunt(i), 4)
  end
end.`
	requireOK(t, checkSrc(t, src))
}

// TestCheckSupersetViolation is spec.md §8 seed scenario 3: traub demands
// `beefy gnarly int`, but the only value on hand is `beefy int` — gnarly
// is missing, so unification's cardinal rule rejects it.
func TestCheckSupersetViolation(t *testing.T) {
	src := `
forward traub(beefy gnarly int): bool

module gnarly
end

module beefy
  procedure run() : bool
  var x : beefy int
  begin
    return traub(x)
  end
end.`
	requireCode(t, checkSrc(t, src), diagnostics.QualifierSetViolation)
}

// TestCheckBestowOutsideDefiningModule is spec.md §8 seed scenario 4:
// `bestow beta x` only belongs inside module `beta`.
func TestCheckBestowOutsideDefiningModule(t *testing.T) {
	src := `
module beta
end

module alpha
  procedure run(x : int) : int
  begin
    return bestow beta x
  end
end.`
	requireCode(t, checkSrc(t, src), diagnostics.QualifierModuleMismatch)
}

// TestCheckAmbiguousDispatchWithoutOrdering is spec.md §8 seed scenario 5:
// two `grind` signatures over `gnarly ♥t` and `beefy ♥t` are incomparable
// without an `order` declaration, and a `beefy gnarly int` argument
// applies to both.
func TestCheckAmbiguousDispatchWithoutOrdering(t *testing.T) {
	src := `
module gnarly
  procedure grind(x : gnarly ♥t) : int
  begin
    return 1
  end
end

module beefy
  procedure grind(x : beefy ♥t) : int
  begin
    return 2
  end

  procedure run() : int
  var v : beefy gnarly int
  begin
    return grind(v)
  end
end.`
	requireCode(t, checkSrc(t, src), diagnostics.AmbiguousDispatch)
}

// TestCheckAmbiguousDispatchResolvedByOrdering is the same shape as
// TestCheckAmbiguousDispatchWithoutOrdering, but with `order beefy <
// gnarly` added: the two `grind` signatures are now linearizable, so the
// call resolves cleanly.
func TestCheckAmbiguousDispatchResolvedByOrdering(t *testing.T) {
	src := `
order beefy < gnarly

module gnarly
  procedure grind(x : gnarly ♥t) : int
  begin
    return 1
  end
end

module beefy
  procedure grind(x : beefy ♥t) : int
  begin
    return 2
  end

  procedure run() : int
  var v : beefy gnarly int
  begin
    return grind(v)
  end
end.`
	requireOK(t, checkSrc(t, src))
}

// TestCheckReturnTypeDivergence is spec.md §8 seed scenario 6: two `foo`
// procedures disagree on return type.
func TestCheckReturnTypeDivergence(t *testing.T) {
	src := `
forward foo(int): int
forward foo(string): bool.`
	requireCode(t, checkSrc(t, src), diagnostics.ReturnTypeDivergence)
}

// TestCheckDistinctTVarsInOwnSignatureDontAlias guards against a
// procedure's own distinctly-named declared type variables colliding on
// type-variable identity: x's ♥a and y's ♥b must stay unrelated, so
// `equal(x, y)` — which demands both arguments share one type — is a
// qualifier-set violation, not a pass.
func TestCheckDistinctTVarsInOwnSignatureDontAlias(t *testing.T) {
	src := `
forward equal(♥a, ♥a): bool

module gnarly
end

module beefy
  procedure bad(x : gnarly ♥a, y : beefy ♥b) : bool
  begin
    return equal(x, y)
  end
end.`
	requireCode(t, checkSrc(t, src), diagnostics.QualifierSetViolation)
}

// TestCheckDistinctTVarsInOwnSignatureRoundTrip confirms the freshening
// fix doesn't break the ordinary case of using two params whose
// declared types are meant to be related: a map's declared key/value
// tvars stay themselves across the body.
func TestCheckDistinctTVarsInOwnSignatureRoundTrip(t *testing.T) {
	src := `
module m
  procedure get(box : map from ♥k to ♥v, key : ♥k) : ♥v
  begin
    return box[key]
  end
end.`
	requireOK(t, checkSrc(t, src))
}

// TestCheckArityMismatch exercises the arity-mismatch diagnostic (§7):
// run calls bump with too many arguments.
func TestCheckArityMismatch(t *testing.T) {
	src := `
module m
  procedure bump(x : int) : int
  begin
    return x
  end

  procedure run() : int
  begin
    return bump(1, 2)
  end
end.`
	requireCode(t, checkSrc(t, src), diagnostics.ArityMismatch)
}

// TestCheckUndefinedProcedure exercises the undefined-name diagnostic for
// a call to a procedure that was never declared anywhere.
func TestCheckUndefinedProcedure(t *testing.T) {
	src := `
module m
  procedure run() : int
  begin
    return nope(1)
  end
end.`
	requireCode(t, checkSrc(t, src), diagnostics.UndefinedName)
}

// TestCheckOrderingCycleReported exercises the ordering-cycle diagnostic
// (§7): declaring gnarly < beefy after beefy < gnarly closes a cycle.
func TestCheckOrderingCycleReported(t *testing.T) {
	src := `
order beefy < gnarly
order gnarly < beefy

module beefy
end

module gnarly
end.`
	requireCode(t, checkSrc(t, src), diagnostics.OrderingCycle)
}
