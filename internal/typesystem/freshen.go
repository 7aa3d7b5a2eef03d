package typesystem

// FreshenAll renames every type variable reachable from the given types
// to a fresh identity, using the same fresh identity everywhere a given
// source Name recurs (so `♥t` in a parameter and in the return type stays
// the same variable after freshening). It returns new Types in the same
// order as given. Freshen is called exactly once per call-site resolution
// (§4.1).
func FreshenAll(gen *IDGen, types ...Type) []Type {
	rename := make(map[string]int)
	out := make([]Type, len(types))
	for i, t := range types {
		out[i] = freshenType(t, gen, rename)
	}
	return out
}

func freshenType(t Type, gen *IDGen, rename map[string]int) Type {
	return Type{Quals: t.Quals, Base: freshenBase(t.Base, gen, rename)}
}

func freshenBase(b BaseType, gen *IDGen, rename map[string]int) BaseType {
	switch v := b.(type) {
	case TVar:
		id, ok := rename[v.Name]
		if !ok {
			id = gen.Fresh()
			rename[v.Name] = id
		}
		return TVar{Name: v.Name, ID: id}
	case MapType:
		nv := MapType{ValueType: typePtr(freshenType(*v.ValueType, gen, rename))}
		if v.KeyType != nil {
			nv.KeyType = typePtr(freshenType(*v.KeyType, gen, rename))
		}
		return nv
	default:
		return b
	}
}
