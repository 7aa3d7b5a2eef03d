// Package symbols holds the three global registries the checker consults
// at every turn (§4.3): the qualifier table, the procedure table, and the
// variable scope stack.
package symbols

// QualifierTable maps a qualifier name to the name of the module that
// defines it. A qualifier is "defined" exactly by the module of the same
// name (§3 Qualifier); using a qualifier never defined by a module is a
// compile-time error the checker reports at the use site.
type QualifierTable struct {
	definedBy map[string]string
}

// NewQualifierTable returns an empty table.
func NewQualifierTable() *QualifierTable {
	return &QualifierTable{definedBy: make(map[string]string)}
}

// Define registers the module called name as the sole definer of the
// qualifier of the same name.
// Dieter modules and qualifiers share a namespace (a module's name is
// also its qualifier's name), so this is called once per parsed module.
func (t *QualifierTable) Define(name string) {
	t.definedBy[name] = name
}

// IsDefined reports whether name has been declared by some module.
func (t *QualifierTable) IsDefined(name string) bool {
	_, ok := t.definedBy[name]
	return ok
}

// DefiningModule returns the module that owns qualifier name.
func (t *QualifierTable) DefiningModule(name string) (string, bool) {
	m, ok := t.definedBy[name]
	return m, ok
}

// Names returns every defined qualifier, for diagnostics and tests.
func (t *QualifierTable) Names() []string {
	out := make([]string, 0, len(t.definedBy))
	for n := range t.definedBy {
		out = append(out, n)
	}
	return out
}
