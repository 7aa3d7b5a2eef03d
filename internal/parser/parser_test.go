package parser

import (
	"testing"

	"github.com/catseye/Dieter/internal/ast"
	"github.com/catseye/Dieter/internal/lexer"
	"github.com/catseye/Dieter/internal/typesystem"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := New(lexer.New(src), "test")
	prog := p.ParseProgram()
	if errs := p.Errors(); len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	return prog
}

func TestParseForwardDeclaration(t *testing.T) {
	prog := parseProgram(t, `forward glunt(beefy gnarly ♥t): gnarly ♥t.`)
	if len(prog.Decls) != 1 {
		t.Fatalf("expected 1 decl, got %d", len(prog.Decls))
	}
	fwd, ok := prog.Decls[0].(*ast.ForwardDecl)
	if !ok {
		t.Fatalf("expected *ast.ForwardDecl, got %T", prog.Decls[0])
	}
	if fwd.Name != "glunt" {
		t.Errorf("Name = %q, want glunt", fwd.Name)
	}
	if len(fwd.ParamTypes) != 1 {
		t.Fatalf("expected 1 param type, got %d", len(fwd.ParamTypes))
	}
	if !fwd.ParamTypes[0].Quals.Equal(typesystem.NewQualifierSet("beefy", "gnarly")) {
		t.Errorf("param quals = %v, want beefy+gnarly", fwd.ParamTypes[0].Quals)
	}
	if !fwd.ReturnType.Quals.Equal(typesystem.NewQualifierSet("gnarly")) {
		t.Errorf("return quals = %v, want gnarly", fwd.ReturnType.Quals)
	}
}

func TestParseOrdering(t *testing.T) {
	prog := parseProgram(t, `order beefy < gnarly.`)
	ord, ok := prog.Decls[0].(*ast.OrderingDecl)
	if !ok {
		t.Fatalf("expected *ast.OrderingDecl, got %T", prog.Decls[0])
	}
	if ord.Lo != "beefy" || ord.Hi != "gnarly" {
		t.Errorf("got %s < %s, want beefy < gnarly", ord.Lo, ord.Hi)
	}
}

func TestParseModuleWithVarsAndProcedure(t *testing.T) {
	src := `
module beefy
  var counter : int
  procedure bump(x : int) : int
  begin
    return x
  end
end.`
	prog := parseProgram(t, src)
	mod, ok := prog.Decls[0].(*ast.ModuleDecl)
	if !ok {
		t.Fatalf("expected *ast.ModuleDecl, got %T", prog.Decls[0])
	}
	if mod.Name != "beefy" {
		t.Errorf("Name = %q, want beefy", mod.Name)
	}
	if len(mod.Variables) != 1 || mod.Variables[0].Name != "counter" {
		t.Fatalf("unexpected variables: %+v", mod.Variables)
	}
	if len(mod.Procs) != 1 || mod.Procs[0].Name != "bump" {
		t.Fatalf("unexpected procs: %+v", mod.Procs)
	}
}

func TestParseOnlyOneTrailingDotTerminatesWholeProgram(t *testing.T) {
	// Program ::= { Module | Ordering | Forward } "." — a single dot ends
	// the whole sequence of declarations, not one dot per declaration.
	src := `
forward succ(int): int
forward pred(int): int.`
	prog := parseProgram(t, src)
	if len(prog.Decls) != 2 {
		t.Fatalf("expected both forward decls to be parsed, got %d", len(prog.Decls))
	}
}

func TestParseMapType(t *testing.T) {
	prog := parseProgram(t, `forward lookup(map from string to int): int.`)
	fwd := prog.Decls[0].(*ast.ForwardDecl)
	m, ok := fwd.ParamTypes[0].Base.(typesystem.MapType)
	if !ok {
		t.Fatalf("expected MapType, got %T", fwd.ParamTypes[0].Base)
	}
	if m.KeyType == nil {
		t.Fatal("expected a specified key type")
	}
	if m.KeyType.Base != typesystem.Str {
		t.Errorf("key type = %v, want string", m.KeyType.Base)
	}
	if m.ValueType.Base != typesystem.Int {
		t.Errorf("value type = %v, want int", m.ValueType.Base)
	}
}

func TestParseUnspecifiedKeyMap(t *testing.T) {
	prog := parseProgram(t, `forward mk(): map to int.`)
	fwd := prog.Decls[0].(*ast.ForwardDecl)
	m := fwd.ReturnType.Base.(typesystem.MapType)
	if m.KeyType != nil {
		t.Errorf("expected nil key type for unspecified-key map, got %v", m.KeyType)
	}
}

func TestParseIdentStatementDisambiguation(t *testing.T) {
	src := `
module m
  procedure p() : void
  var x : int
  begin
    x := 1;
    x[1] := 2;
    q(x)
  end
end.`
	prog := parseProgram(t, src)
	mod := prog.Decls[0].(*ast.ModuleDecl)
	body := mod.Procs[0].Body.(*ast.BlockStatement)
	if len(body.Statements) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(body.Statements))
	}
	if _, ok := body.Statements[0].(*ast.AssignStatement); !ok {
		t.Errorf("statement 0: expected *ast.AssignStatement, got %T", body.Statements[0])
	}
	indexed, ok := body.Statements[1].(*ast.AssignStatement)
	if !ok || indexed.Index == nil {
		t.Errorf("statement 1: expected an indexed assignment, got %+v", body.Statements[1])
	}
	if _, ok := body.Statements[2].(*ast.CallStatement); !ok {
		t.Errorf("statement 2: expected *ast.CallStatement, got %T", body.Statements[2])
	}
}

func TestParseIfWhileReturnFinal(t *testing.T) {
	src := `
module m
  procedure p() : int
  begin
    if 1 then return final 2 else while 1 do return 3
  end
end.`
	prog := parseProgram(t, src)
	mod := prog.Decls[0].(*ast.ModuleDecl)
	body := mod.Procs[0].Body.(*ast.BlockStatement)
	ifStmt, ok := body.Statements[0].(*ast.IfStatement)
	if !ok {
		t.Fatalf("expected *ast.IfStatement, got %T", body.Statements[0])
	}
	ret, ok := ifStmt.Consequence.(*ast.ReturnStatement)
	if !ok || !ret.Final {
		t.Errorf("expected a `return final`, got %+v", ifStmt.Consequence)
	}
	whileStmt, ok := ifStmt.Alternative.(*ast.WhileStatement)
	if !ok {
		t.Fatalf("expected *ast.WhileStatement, got %T", ifStmt.Alternative)
	}
	if _, ok := whileStmt.Body.(*ast.ReturnStatement); !ok {
		t.Errorf("expected a return statement as while body, got %T", whileStmt.Body)
	}
}

func TestParseBestowAndSuperExpressions(t *testing.T) {
	src := `
module beefy
  procedure mk() : int
  begin
    return bestow beefy super
  end
end.`
	prog := parseProgram(t, src)
	mod := prog.Decls[0].(*ast.ModuleDecl)
	ret := mod.Procs[0].Body.(*ast.BlockStatement).Statements[0].(*ast.ReturnStatement)
	bestow, ok := ret.Value.(*ast.BestowExpression)
	if !ok {
		t.Fatalf("expected *ast.BestowExpression, got %T", ret.Value)
	}
	if bestow.Qualifier != "beefy" {
		t.Errorf("Qualifier = %q, want beefy", bestow.Qualifier)
	}
	if _, ok := bestow.Value.(*ast.SuperExpression); !ok {
		t.Errorf("expected *ast.SuperExpression, got %T", bestow.Value)
	}
}

func TestParseRationalLiteral(t *testing.T) {
	prog := parseProgram(t, `
module m
  procedure p() : rat
  begin
    return 3/4
  end
end.`)
	mod := prog.Decls[0].(*ast.ModuleDecl)
	ret := mod.Procs[0].Body.(*ast.BlockStatement).Statements[0].(*ast.ReturnStatement)
	rat, ok := ret.Value.(*ast.RatLiteral)
	if !ok {
		t.Fatalf("expected *ast.RatLiteral, got %T", ret.Value)
	}
	if rat.Numer != 3 || rat.Denom != 4 {
		t.Errorf("got %d/%d, want 3/4", rat.Numer, rat.Denom)
	}
}

func TestParseSyntaxErrorRecordsDiagnosticAndRecovers(t *testing.T) {
	p := New(lexer.New(`forward glunt(: int.`), "test")
	p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Fatal("expected at least one syntax diagnostic")
	}
}
