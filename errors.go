package typeguard

import "fmt"

// CheckFailure is the single sentinel used to accumulate conformance
// diagnostics up the recursion stack, adapted from the teacher's Issues
// error model: one kind of thrown object, discriminated only by message
// content as far as the public API is concerned.
type CheckFailure struct {
	Message string
}

func (f *CheckFailure) Error() string { return f.Message }

func fail(format string, args ...any) *CheckFailure {
	return &CheckFailure{Message: fmt.Sprintf(format, args...)}
}

// wrapWhileChecking appends a "While checking ..." frame to a child
// CheckFailure's message, per the descent protocol in spec.md §4.3.
func wrapWhileChecking(child *CheckFailure, shortValue, shortType string) *CheckFailure {
	return &CheckFailure{
		Message: child.Message + "\nWhile checking " + shortValue + " against type " + shortType,
	}
}

// UndefinedReferenceError reports a reference-type whose name has no
// corresponding entry in the schema. It is a schema/programming error and is
// never wrapped in a CheckFailure.
type UndefinedReferenceError struct {
	Name string
}

func (e *UndefinedReferenceError) Error() string {
	return "typeguard: undefined reference type " + e.Name
}

// OpenPropertySetError reports that computePropertiesOfType was asked for a
// finite property set on a node whose properties are not enumerable (an
// index-signature, or a mapped type keyed by unrestricted string).
type OpenPropertySetError struct {
	TypeDescription string
}

func (e *OpenPropertySetError) Error() string {
	return "typeguard: property set of " + e.TypeDescription + " is not finite"
}

// PartialOnNonInterfaceError reports Partial<T> where T does not resolve to
// an interface.
type PartialOnNonInterfaceError struct {
	TypeDescription string
}

func (e *PartialOnNonInterfaceError) Error() string {
	return "typeguard: Partial applied to non-interface type " + e.TypeDescription
}

// UnsupportedMapFromError reports a mapped type whose mapFrom does not
// resolve to string, a string-literal, or a union of string-literals.
type UnsupportedMapFromError struct {
	TypeDescription string
}

func (e *UnsupportedMapFromError) Error() string {
	return "typeguard: unsupported mapFrom on mapped type " + e.TypeDescription
}
