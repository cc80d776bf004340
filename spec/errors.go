package spec

import "fmt"

// SpecError reports a problem with the protocol model itself: a missing
// or duplicate type number, or a cross-reference that does not resolve.
// It is raised only at Load time and is meant to be fatal.
type SpecError struct {
	Reason string
}

func (e SpecError) Error() string {
	return fmt.Sprintf("spec: %s", e.Reason)
}

// ErrDuplicateTypeNumber reports two specs registered under the same
// type number within the same namespace (message, TV, or TLV).
type ErrDuplicateTypeNumber struct {
	Namespace  string
	TypeNumber int
	First      string
	Second     string
}

func (e ErrDuplicateTypeNumber) Error() string {
	return fmt.Sprintf("spec: duplicate %s type number %d: %q and %q",
		e.Namespace, e.TypeNumber, e.First, e.Second)
}

// ErrUnresolvedReference reports an enum_ref or parameter_name that does
// not resolve to a registered EnumSpec/ParameterSpec/MessageSpec.
type ErrUnresolvedReference struct {
	From string
	Kind string // "enum_ref", "parameter_name" or "response_for"
	Name string
}

func (e ErrUnresolvedReference) Error() string {
	return fmt.Sprintf("spec: %s references unresolved %s %q", e.From, e.Kind, e.Name)
}

// ErrNonDisjointChoice reports a choice group whose member rules are not
// mutually exclusive sub-parameter names.
type ErrNonDisjointChoice struct {
	Parent string
	Group  string
	Name   string
}

func (e ErrNonDisjointChoice) Error() string {
	return fmt.Sprintf("spec: choice group %q in %s is not disjoint: %q appears more than once",
		e.Group, e.Parent, e.Name)
}
