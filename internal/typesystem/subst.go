package typesystem

// Subst maps a type-variable identity to the Type it is bound to. The
// checker starts one empty Subst per procedure body and threads it through
// every call site and assignment in that body; it never carries over from
// one procedure body to the next.
type Subst map[int]Type

// Lookup returns v's direct binding, if any, without following further
// chains (a binding may itself be a type variable that is bound in turn;
// Apply resolves those).
func (s Subst) Lookup(v TVar) (Type, bool) {
	if s == nil {
		return Type{}, false
	}
	t, ok := s[v.ID]
	return t, ok
}

// Bind returns a new Subst with v bound to t. The receiver is not mutated,
// so callers that want to discard a failed branch can keep the old value.
func (s Subst) Bind(v TVar, t Type) Subst {
	out := make(Subst, len(s)+1)
	for k, v := range s {
		out[k] = v
	}
	out[v.ID] = t
	return out
}

// Apply substitutes every bound type variable reachable from t and
// normalizes the result: per §4.1, when a tvar is replaced by a concrete
// type, the outer qualifier set is the union of the referring site's
// qualifiers and the bound type's qualifiers.
func (s Subst) Apply(t Type) Type {
	return s.applyVisited(t, nil)
}

func (s Subst) applyVisited(t Type, visiting map[int]bool) Type {
	switch b := t.Base.(type) {
	case TVar:
		bound, ok := s.Lookup(b)
		if !ok {
			return t
		}
		if visiting[b.ID] {
			// Cyclic binding (should not arise from well-formed programs); break the cycle.
			return t
		}
		nv := make(map[int]bool, len(visiting)+1)
		for k := range visiting {
			nv[k] = true
		}
		nv[b.ID] = true
		resolved := s.applyVisited(bound, nv)
		return Type{Quals: t.Quals.Union(resolved.Quals), Base: resolved.Base}
	case MapType:
		newMap := MapType{ValueType: typePtr(s.applyVisited(*b.ValueType, visiting))}
		if b.KeyType != nil {
			newMap.KeyType = typePtr(s.applyVisited(*b.KeyType, visiting))
		}
		return Type{Quals: t.Quals, Base: newMap}
	default:
		return t
	}
}

func typePtr(t Type) *Type { return &t }

// IDGen mints globally unique, monotonically increasing type-variable
// identities. It is the single piece of shared state a Checker owns
// (§5): no locking is needed because the checker is single-threaded.
type IDGen struct {
	next int
}

// Fresh returns a never-before-issued identity.
func (g *IDGen) Fresh() int {
	g.next++
	return g.next
}
