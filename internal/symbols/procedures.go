package symbols

import (
	"fmt"

	"github.com/catseye/Dieter/internal/ast"
	"github.com/catseye/Dieter/internal/token"
	"github.com/catseye/Dieter/internal/typesystem"
)

// ProcSignature is (name, param-types[], return-type, body, owning-module)
// from §3. Body is nil for a `forward` declaration. Multiple signatures
// may share a Name (the dispatch set for that name); ProcedureTable.Register
// enforces that they all agree on ReturnType.
type ProcSignature struct {
	Name         string
	ParamTypes   []typesystem.Type
	ReturnType   typesystem.Type
	Body         ast.Statement // nil for forward declarations
	OwningModule string
	DeclToken    token.Token
	// DeclIndex records declaration order within the procedure table, used
	// to break specificity ties (§4.6 "stable sort... declaration order").
	DeclIndex int
}

// QualifierSets returns the parameter qualifier sets, in parameter order,
// used by dispatch specificity comparisons (§4.6).
func (s *ProcSignature) QualifierSets() []typesystem.QualifierSet {
	out := make([]typesystem.QualifierSet, len(s.ParamTypes))
	for i, p := range s.ParamTypes {
		out[i] = p.Quals
	}
	return out
}

// Freshen returns a copy of s with every type variable identity replaced
// by a freshly minted one (§4.1), called exactly once per call-site
// resolution.
func (s *ProcSignature) Freshen(gen *typesystem.IDGen) *ProcSignature {
	all := append(append([]typesystem.Type{}, s.ParamTypes...), s.ReturnType)
	renamed := typesystem.FreshenAll(gen, all...)
	cp := *s
	cp.ParamTypes = renamed[:len(s.ParamTypes)]
	cp.ReturnType = renamed[len(s.ParamTypes)]
	return &cp
}

// ReturnTypeDivergenceError reports two same-named signatures disagreeing
// on return type (§7).
type ReturnTypeDivergenceError struct {
	Name          string
	First, Second typesystem.Type
}

func (e *ReturnTypeDivergenceError) Error() string {
	return fmt.Sprintf("procedure %q: return type %q conflicts with previously declared %q", e.Name, e.Second, e.First)
}

// ProcedureTable maps a procedure name to its ordered dispatch set.
// Ordering within the slice is declaration order, which both `forward`
// and `procedure` contribute to (§4.3).
type ProcedureTable struct {
	byName map[string][]*ProcSignature
	nextIx int
}

// NewProcedureTable returns an empty table.
func NewProcedureTable() *ProcedureTable {
	return &ProcedureTable{byName: make(map[string][]*ProcSignature)}
}

// Register adds sig to the dispatch set for sig.Name. It is an error for
// sig's return type to differ from an already-registered signature of
// the same name.
func (t *ProcedureTable) Register(sig *ProcSignature) error {
	existing := t.byName[sig.Name]
	for _, other := range existing {
		if !other.ReturnType.Equal(sig.ReturnType) {
			return &ReturnTypeDivergenceError{Name: sig.Name, First: other.ReturnType, Second: sig.ReturnType}
		}
	}
	sig.DeclIndex = t.nextIx
	t.nextIx++
	t.byName[sig.Name] = append(existing, sig)
	return nil
}

// Lookup returns the dispatch set for name (nil, false if undeclared).
func (t *ProcedureTable) Lookup(name string) ([]*ProcSignature, bool) {
	set, ok := t.byName[name]
	return set, ok
}
