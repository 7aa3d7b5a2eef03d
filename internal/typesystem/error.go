package typesystem

import "fmt"

// MismatchKind classifies why a directional unification failed.
type MismatchKind int

const (
	// QualifierSetViolation: the provider's qualifier set is not a
	// superset of the receptor's.
	QualifierSetViolation MismatchKind = iota
	// StructuralMismatch: base types disagree (different primitives,
	// a map unified against a non-map, or incompatible map key shapes).
	StructuralMismatch
)

// UnifyError reports a failed Unify call. It carries both sides so the
// checker can render a precise diagnostic without re-deriving context.
type UnifyError struct {
	Kind     MismatchKind
	Receptor Type
	Provider Type
	Detail   string
}

func (e *UnifyError) Error() string {
	switch e.Kind {
	case QualifierSetViolation:
		return fmt.Sprintf("qualifier-set violation: %q does not supply all qualifiers required by %q", e.Provider, e.Receptor)
	default:
		return fmt.Sprintf("structural mismatch: %q is not %q%s", e.Provider, e.Receptor, detailSuffix(e.Detail))
	}
}

func detailSuffix(d string) string {
	if d == "" {
		return ""
	}
	return " (" + d + ")"
}

func qualifierViolation(receptor, provider Type) error {
	return &UnifyError{Kind: QualifierSetViolation, Receptor: receptor, Provider: provider}
}

func structuralMismatch(receptor, provider Type, detail string) error {
	return &UnifyError{Kind: StructuralMismatch, Receptor: receptor, Provider: provider, Detail: detail}
}
