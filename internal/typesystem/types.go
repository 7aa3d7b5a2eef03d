package typesystem

import "fmt"

// BaseType is the closed sum of base-type variants: a primitive, a map
// (with an optional key type, the "mixin" form), or a type variable.
type BaseType interface {
	isBaseType()
	String() string
}

// Primitive is one of the non-composite base types.
type Primitive string

const (
	Bool  Primitive = "bool"
	Int   Primitive = "int"
	Rat   Primitive = "rat"
	Str   Primitive = "string"
	RefT  Primitive = "ref"
	VoidT Primitive = "void"
)

func (Primitive) isBaseType()      {}
func (p Primitive) String() string { return string(p) }

// MapType is map(keyType?, valueType). KeyType is nil for the
// unspecified-key "mixin" form, where any value may be a key.
type MapType struct {
	KeyType   *Type // nil means unspecified
	ValueType *Type
}

func (MapType) isBaseType() {}
func (m MapType) String() string {
	if m.KeyType == nil {
		return fmt.Sprintf("map to %s", m.ValueType)
	}
	return fmt.Sprintf("map from %s to %s", m.KeyType, m.ValueType)
}

// TVar is a type variable. Name is the parsed ♥-identifier and ties
// together occurrences within one signature's source text; ID is the
// globally unique identity minted by Freshen for a particular call site
// (zero until freshened). Two TVars with the same ID are the same binding
// site as far as a Subst is concerned.
type TVar struct {
	Name string
	ID   int
}

func (TVar) isBaseType() {}
func (v TVar) String() string {
	if v.ID == 0 {
		return "♥" + v.Name
	}
	return fmt.Sprintf("♥%s#%d", v.Name, v.ID)
}

// Type is a qualifier set paired with a base type, i.e. (QualifierSet, BaseType).
type Type struct {
	Quals QualifierSet
	Base  BaseType
}

// Bare constructs a Type with an empty qualifier set.
func Bare(b BaseType) Type {
	return Type{Base: b}
}

// Qualify returns t with q added to its qualifier set.
func (t Type) Qualify(q string) Type {
	return Type{Quals: t.Quals.Add(q), Base: t.Base}
}

// IsVar reports whether t's base is a (necessarily unbound, once
// dereferenced through a Subst) type variable.
func (t Type) IsVar() (TVar, bool) {
	v, ok := t.Base.(TVar)
	return v, ok
}

// Equal reports structural equality: equal qualifier sets and equal base
// types. Two TVars are equal only if their IDs match (name alone does not
// identify a binding once freshened).
func (t Type) Equal(other Type) bool {
	if !t.Quals.Equal(other.Quals) {
		return false
	}
	return baseTypesEqual(t.Base, other.Base)
}

func baseTypesEqual(a, b BaseType) bool {
	switch av := a.(type) {
	case Primitive:
		bv, ok := b.(Primitive)
		return ok && av == bv
	case TVar:
		bv, ok := b.(TVar)
		return ok && av.ID == bv.ID && av.Name == bv.Name
	case MapType:
		bv, ok := b.(MapType)
		if !ok {
			return false
		}
		if (av.KeyType == nil) != (bv.KeyType == nil) {
			return false
		}
		if av.KeyType != nil && !av.KeyType.Equal(*bv.KeyType) {
			return false
		}
		return av.ValueType.Equal(*bv.ValueType)
	default:
		return false
	}
}

func (t Type) String() string {
	return t.Quals.String() + t.Base.String()
}

// FreeTypeVariables returns the distinct TVars (by ID, or by Name when
// ID is still zero i.e. not yet freshened) reachable from t.
func (t Type) FreeTypeVariables() []TVar {
	var out []TVar
	collectFreeVars(t.Base, &out)
	return out
}

func collectFreeVars(b BaseType, out *[]TVar) {
	switch bv := b.(type) {
	case TVar:
		for _, v := range *out {
			if v.ID == bv.ID && v.Name == bv.Name {
				return
			}
		}
		*out = append(*out, bv)
	case MapType:
		if bv.KeyType != nil {
			collectFreeVars(bv.KeyType.Base, out)
		}
		collectFreeVars(bv.ValueType.Base, out)
	}
}
