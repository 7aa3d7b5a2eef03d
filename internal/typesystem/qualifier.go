package typesystem

import "sort"

// QualifierSet is a duplicate-free, order-independent set of qualifier
// names. It is kept as a sorted slice: sets this small (the article's
// examples never exceed three or four qualifiers on one type) don't
// benefit from a map, and a sorted slice gives deterministic String()
// output and cheap equality for free.
type QualifierSet []string

// NewQualifierSet builds a canonical (sorted, deduplicated) set.
func NewQualifierSet(names ...string) QualifierSet {
	if len(names) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(names))
	out := make(QualifierSet, 0, len(names))
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Has reports whether q is a member of the set.
func (s QualifierSet) Has(q string) bool {
	for _, m := range s {
		if m == q {
			return true
		}
	}
	return false
}

// IsSubsetOf reports whether every qualifier in s is also in other (s ⊆ other).
func (s QualifierSet) IsSubsetOf(other QualifierSet) bool {
	for _, m := range s {
		if !other.Has(m) {
			return false
		}
	}
	return true
}

// Equal reports set equality, ignoring order and duplicates.
func (s QualifierSet) Equal(other QualifierSet) bool {
	return s.IsSubsetOf(other) && other.IsSubsetOf(s)
}

// Union returns the canonical union of s and other.
func (s QualifierSet) Union(other QualifierSet) QualifierSet {
	return NewQualifierSet(append(append([]string{}, s...), other...)...)
}

// Minus returns the qualifiers in s that are not in other (s \ other).
func (s QualifierSet) Minus(other QualifierSet) QualifierSet {
	out := make(QualifierSet, 0, len(s))
	for _, m := range s {
		if !other.Has(m) {
			out = append(out, m)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Add returns s with q added (a no-op if q is already present).
func (s QualifierSet) Add(q string) QualifierSet {
	return NewQualifierSet(append(append([]string{}, s...), q)...)
}

func (s QualifierSet) String() string {
	out := ""
	for _, q := range s {
		out += q + " "
	}
	return out
}
