package symbols

import (
	"testing"

	"github.com/catseye/Dieter/internal/typesystem"
)

func TestScopeLookupSearchesOuterFrames(t *testing.T) {
	outer := NewScope()
	outer.Define("x", typesystem.Bare(typesystem.Int))
	inner := outer.Push()

	got, ok := inner.Lookup("x")
	if !ok || !got.Equal(typesystem.Bare(typesystem.Int)) {
		t.Errorf("Lookup(x) from inner scope = %v, %v; want int, true", got, ok)
	}
}

func TestScopeInnerShadowsOuter(t *testing.T) {
	outer := NewScope()
	outer.Define("x", typesystem.Bare(typesystem.Int))
	inner := outer.Push()
	inner.Define("x", typesystem.Bare(typesystem.Str))

	got, _ := inner.Lookup("x")
	if !got.Equal(typesystem.Bare(typesystem.Str)) {
		t.Errorf("expected inner definition to shadow outer, got %v", got)
	}
	outerGot, _ := outer.Lookup("x")
	if !outerGot.Equal(typesystem.Bare(typesystem.Int)) {
		t.Errorf("outer scope should be unaffected by inner shadowing, got %v", outerGot)
	}
}

func TestScopeLookupMissing(t *testing.T) {
	s := NewScope()
	if _, ok := s.Lookup("nope"); ok {
		t.Error("expected Lookup of an undefined name to report false")
	}
}

func TestQualifierTableDefineAndIsDefined(t *testing.T) {
	tbl := NewQualifierTable()
	if tbl.IsDefined("beefy") {
		t.Fatal("expected beefy to be undefined before Define")
	}
	tbl.Define("beefy")
	if !tbl.IsDefined("beefy") {
		t.Error("expected beefy to be defined after Define")
	}
	mod, ok := tbl.DefiningModule("beefy")
	if !ok || mod != "beefy" {
		t.Errorf("DefiningModule(beefy) = %v, %v; want beefy, true", mod, ok)
	}
}
