package typesystem

// Unify is the central, directional unification function. R is the
// receptor (the declared/expected type) and P is the provider (the
// supplied type); the two are never interchangeable (§4.5 Symmetry).
//
// Unlike classical Hindley-Milner unification, Unify does not dereference
// R and P up front: whether a type variable already has a binding in s
// changes how it is handled (see the re-binding rule below), so each
// variable branch looks itself up in s rather than being handed an
// already-resolved type.
func Unify(R, P Type, s Subst) (Subst, error) {
	if rv, ok := R.Base.(TVar); ok {
		return unifyReceptorVar(rv, R.Quals, P, s)
	}
	if pv, ok := P.Base.(TVar); ok {
		return unifyProviderVar(pv, P.Quals, R, s)
	}
	return unifyConcrete(R, P, s)
}

// unifyConcrete handles the case where neither side's base type is
// (syntactically) a variable.
func unifyConcrete(R, P Type, s Subst) (Subst, error) {
	// Cardinal rule: the provider's qualifier set must be a superset of
	// the receptor's.
	if !R.Quals.IsSubsetOf(P.Quals) {
		return nil, qualifierViolation(R, P)
	}

	switch rb := R.Base.(type) {
	case Primitive:
		pb, ok := P.Base.(Primitive)
		if !ok || pb != rb {
			return nil, structuralMismatch(R, P, "")
		}
		return s, nil
	case MapType:
		pb, ok := P.Base.(MapType)
		if !ok {
			return nil, structuralMismatch(R, P, "provider is not a map")
		}
		next, err := Unify(*rb.ValueType, *pb.ValueType, s)
		if err != nil {
			return nil, err
		}
		if rb.KeyType == nil {
			// Receptor is the unspecified-key mixin map: any provider key (or none) is accepted.
			return next, nil
		}
		if pb.KeyType == nil {
			return nil, structuralMismatch(R, P, "receptor requires a key type the provider does not specify")
		}
		return Unify(*rb.KeyType, *pb.KeyType, next)
	default:
		return nil, structuralMismatch(R, P, "")
	}
}

// unifyReceptorVar handles R = tvar(v) (a type variable used as receptor).
func unifyReceptorVar(v TVar, siteQuals QualifierSet, P Type, s Subst) (Subst, error) {
	P = s.Apply(P)

	if existing, bound := s.Lookup(v); bound {
		return rebind(v, existing, siteQuals, P, s)
	}

	if pv, ok := P.Base.(TVar); ok {
		if _, pBound := s.Lookup(pv); !pBound {
			// Both sides are still-unbound type variables: alias the
			// provider's variable to the receptor's type expression.
			return s.Bind(pv, Type{Quals: siteQuals, Base: v}), nil
		}
	}

	// Fresh binding: the receptor site already contributes siteQuals, so
	// the variable carries only the *extra* qualifiers the provider
	// supplied (§4.5). Applying s at the site later reconstructs
	// siteQuals ∪ (Qp\siteQuals) = Qp.
	extra := P.Quals.Minus(siteQuals)
	return s.Bind(v, Type{Quals: extra, Base: P.Base}), nil
}

// unifyProviderVar handles P = tvar(v) (a type variable used as provider),
// with R known not to itself be a variable.
func unifyProviderVar(v TVar, siteQuals QualifierSet, R Type, s Subst) (Subst, error) {
	R = s.Apply(R)

	if existing, bound := s.Lookup(v); bound {
		return rebind(v, existing, siteQuals, R, s)
	}

	// The variable is more general than whatever concrete type the
	// receptor demands; it must be narrowed, subject to the receptor
	// site's own qualifiers already being satisfiable by it.
	if !siteQuals.IsSubsetOf(R.Quals) {
		return nil, qualifierViolation(Type{Quals: siteQuals, Base: v}, R)
	}
	return s.Bind(v, R), nil
}

// rebind implements the distinctive re-binding rule (§4.5): a tvar v
// already bound to (Q1,B1) is being unified again, this time producing a
// candidate binding (Q2,B1) from the new occurrence. If Q2 ⊊ Q1, the new,
// less-qualified binding replaces the old one — the first binding was
// only a conservative upper bound, and the variable is allowed to shed
// qualifiers across a single checking pass. If Q1 ⊆ Q2 the existing
// (weaker) binding already satisfies this occurrence and is left alone.
// Otherwise the two requirements are incomparable and unification fails.
func rebind(v TVar, existing Type, siteQuals QualifierSet, occurrence Type, s Subst) (Subst, error) {
	if ov, ok := occurrence.Base.(TVar); ok {
		if _, bound := s.Lookup(ov); !bound {
			// The other occurrence is itself an unbound variable: alias
			// it to what v is already bound to.
			return s.Bind(ov, existing), nil
		}
	}

	candidate := Type{Quals: occurrence.Quals.Minus(siteQuals), Base: occurrence.Base}

	if !baseTypesEqual(candidate.Base, existing.Base) {
		// Structural types (maps) may still need their own recursive
		// unification; primitives that disagree are a hard mismatch.
		if _, isMap := existing.Base.(MapType); isMap {
			next, err := unifyConcrete(existing, candidate, s)
			if err != nil {
				return nil, err
			}
			s = next
		} else {
			return nil, structuralMismatch(existing, candidate, "re-bound occurrence disagrees on base type")
		}
	}

	switch {
	case candidate.Quals.Equal(existing.Quals):
		return s, nil
	case candidate.Quals.IsSubsetOf(existing.Quals):
		return s.Bind(v, Type{Quals: candidate.Quals, Base: existing.Base}), nil
	case existing.Quals.IsSubsetOf(candidate.Quals):
		return s, nil
	default:
		return nil, qualifierViolation(existing, candidate)
	}
}
