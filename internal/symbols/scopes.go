package symbols

import "github.com/catseye/Dieter/internal/typesystem"

// Scope is one frame of the variable scope stack: a stack of maps pushed
// per procedure body (and, in principle, per nested block), searched
// innermost-out (§4.3). Module-level variables form the outermost frame
// for procedures in that module.
type Scope struct {
	vars  map[string]typesystem.Type
	outer *Scope
}

// NewScope returns a fresh, empty top-level scope (typically the
// module-level frame).
func NewScope() *Scope {
	return &Scope{vars: make(map[string]typesystem.Type)}
}

// Push returns a new scope nested inside s.
func (s *Scope) Push() *Scope {
	return &Scope{vars: make(map[string]typesystem.Type), outer: s}
}

// Define binds name to t in this frame only (shadowing is allowed; this
// checker does not diagnose it).
func (s *Scope) Define(name string, t typesystem.Type) {
	s.vars[name] = t
}

// Lookup searches this frame, then outward, returning the first match.
func (s *Scope) Lookup(name string) (typesystem.Type, bool) {
	for frame := s; frame != nil; frame = frame.outer {
		if t, ok := frame.vars[name]; ok {
			return t, true
		}
	}
	return typesystem.Type{}, false
}
