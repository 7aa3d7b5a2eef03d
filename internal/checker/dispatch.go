package checker

import (
	"fmt"
	"sort"

	"github.com/catseye/Dieter/internal/ordering"
	"github.com/catseye/Dieter/internal/symbols"
	"github.com/catseye/Dieter/internal/typesystem"
)

// buildChains sorts every name's dispatch set from most general to most
// specific (§4.4), for two purposes: `super` resolves to the entry just
// before the current one, and declaration order is the tiebreak a true
// specificity tie falls back to when building this static ordering.
func (c *Checker) buildChains() {
	c.chains = make(map[string][]*symbols.ProcSignature)
	names := make(map[string]bool)
	// ProcedureTable doesn't expose its name set directly, so the names
	// come from sigOf: every procedure that has a body. A name declared
	// only by `forward` gets its chain later, on demand, from chainFor.
	for _, sig := range c.sigOf {
		names[sig.Name] = true
	}
	for name := range names {
		c.sortChain(name)
	}
}

// sortChain computes and caches the specificity-sorted chain for name.
// chainFor calls it for any name buildChains did not cover. resolveCall
// does not read these chains; it works from Procs.Lookup directly.
func (c *Checker) sortChain(name string) {
	set, ok := c.Procs.Lookup(name)
	if !ok {
		return
	}
	cp := append([]*symbols.ProcSignature{}, set...)
	sort.SliceStable(cp, func(i, j int) bool {
		switch c.compare(cp[i], cp[j]) {
		case ordering.Less:
			return true
		case ordering.Greater:
			return false
		default:
			return cp[i].DeclIndex < cp[j].DeclIndex
		}
	})
	c.chains[name] = cp
}

func (c *Checker) chainFor(name string) []*symbols.ProcSignature {
	if chain, ok := c.chains[name]; ok {
		return chain
	}
	c.sortChain(name)
	return c.chains[name]
}

// compare reports how a and b relate under qualifier-specificity ordering
// (§4.4): a ≺ b ("a more general") when, position by position, a's
// qualifier set is a subset of (or order-graph-less-than) b's, and they
// are not simply equal throughout. A position whose qualifier sets are
// neither a subset of one another nor consistently ordered by the
// declared `order` graph makes the whole comparison Incomparable.
func (c *Checker) compare(a, b *symbols.ProcSignature) ordering.Relation {
	if len(a.ParamTypes) != len(b.ParamTypes) {
		return ordering.Incomparable
	}
	rel := ordering.Equal
	for i := range a.ParamTypes {
		qa, qb := a.ParamTypes[i].Quals, b.ParamTypes[i].Quals
		var pos ordering.Relation
		switch {
		case qa.Equal(qb):
			continue
		case qa.IsSubsetOf(qb):
			pos = ordering.Less
		case qb.IsSubsetOf(qa):
			pos = ordering.Greater
		default:
			pos = c.compareViaOrder(qa.Minus(qb), qb.Minus(qa))
		}
		if pos == ordering.Incomparable {
			return ordering.Incomparable
		}
		if rel != ordering.Equal && rel != pos {
			return ordering.Incomparable
		}
		rel = pos
	}
	return rel
}

// compareViaOrder decides a position whose qualifier sets are not
// directly comparable by subset, by consulting the declared `order`
// graph: extraA (qualifiers only a has) must be uniformly less-specific
// than extraB (qualifiers only b has), or vice versa. `order lo < hi`
// declares lo the more specific of the two (as in `order dog < animal`),
// so lo dominates hi under Order.Compare and a position is Less (a more
// general) only when every qualifier in extraA is so dominated by every
// qualifier in extraB.
func (c *Checker) compareViaOrder(extraA, extraB typesystem.QualifierSet) ordering.Relation {
	if len(extraA) == 0 || len(extraB) == 0 {
		return ordering.Incomparable
	}
	allLess, allGreater := true, true
	for _, qa := range extraA {
		for _, qb := range extraB {
			switch c.Order.Compare(qa, qb) {
			case ordering.Less:
				allLess = false
			case ordering.Greater:
				allGreater = false
			default:
				allLess, allGreater = false, false
			}
		}
	}
	switch {
	case allLess && !allGreater:
		return ordering.Less
	case allGreater && !allLess:
		return ordering.Greater
	default:
		return ordering.Incomparable
	}
}

// callResult is what resolveCall returns once dispatch has picked a
// winner: its freshened signature and the substitution accumulated while
// unifying its parameters against the call's argument types.
type callResult struct {
	sig   *symbols.ProcSignature
	subst typesystem.Subst
}

// dispatchError is resolveCall's failure mode; the caller (which has the
// source position) turns it into a *diagnostics.Error.
type dispatchError struct {
	undefined bool
	arity     []int // arities actually declared for name, when none matched
	attempts  []error
	tied      []*symbols.ProcSignature
}

func (e *dispatchError) Error() string {
	switch {
	case e.undefined:
		return "undefined procedure"
	case len(e.arity) > 0:
		return fmt.Sprintf("no signature accepts this many arguments (declared arities: %v)", e.arity)
	case len(e.tied) > 0:
		return fmt.Sprintf("%d equally specific signatures apply; add an `order` declaration to disambiguate", len(e.tied))
	default:
		return fmt.Sprintf("no applicable signature: %v", e.attempts)
	}
}

// resolveCall finds, among the signatures registered for name, the most
// specific one whose parameter types accept argTypes as providers (§4.6).
// incoming is the caller's current substitution: argument types may still
// mention type variables that incoming already binds, so they must be
// resolved through it before dispatch inspects their qualifiers.
func (c *Checker) resolveCall(name string, argTypes []typesystem.Type, incoming typesystem.Subst) (*callResult, *dispatchError) {
	candidates, ok := c.Procs.Lookup(name)
	if !ok {
		return nil, &dispatchError{undefined: true}
	}

	var arityMatches []*symbols.ProcSignature
	arities := make(map[int]bool)
	for _, cand := range candidates {
		arities[len(cand.ParamTypes)] = true
		if len(cand.ParamTypes) == len(argTypes) {
			arityMatches = append(arityMatches, cand)
		}
	}
	if len(arityMatches) == 0 {
		declared := make([]int, 0, len(arities))
		for n := range arities {
			declared = append(declared, n)
		}
		sort.Ints(declared)
		return nil, &dispatchError{arity: declared}
	}

	resolvedArgs := make([]typesystem.Type, len(argTypes))
	for i, t := range argTypes {
		resolvedArgs[i] = incoming.Apply(t)
	}

	var applicable []*symbols.ProcSignature
	var substs []typesystem.Subst
	var attempts []error
	for _, cand := range arityMatches {
		fresh := cand.Freshen(c.Gen)
		s := incoming
		ok := true
		for i, pt := range fresh.ParamTypes {
			next, err := typesystem.Unify(pt, resolvedArgs[i], s)
			if err != nil {
				attempts = append(attempts, err)
				ok = false
				break
			}
			s = next
		}
		if ok {
			applicable = append(applicable, fresh)
			substs = append(substs, s)
		}
	}
	if len(applicable) == 0 {
		return nil, &dispatchError{attempts: attempts}
	}

	var maximal []int
	for i := range applicable {
		dominated := false
		for j := range applicable {
			if i == j {
				continue
			}
			if c.compare(applicable[j], applicable[i]) == ordering.Greater {
				dominated = true
				break
			}
		}
		if !dominated {
			maximal = append(maximal, i)
		}
	}
	if len(maximal) != 1 {
		tied := make([]*symbols.ProcSignature, len(maximal))
		for k, idx := range maximal {
			tied[k] = applicable[idx]
		}
		return &callResult{sig: applicable[maximal[0]], subst: substs[maximal[0]]}, &dispatchError{tied: tied}
	}

	winner := maximal[0]
	return &callResult{sig: applicable[winner], subst: substs[winner]}, nil
}
