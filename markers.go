package typeguard

// Marker types give Go source a way to spell the TypeScript-shaped type
// operators spec.md's algebra needs but Go's own type syntax has no surface
// form for. They are recognized by internal/extractor purely as field-type
// syntax — a field typed as one of these is never actually populated at
// that type, and nothing in this package instantiates them. Writing
//
//	type Patch struct {
//	    Updates typeguard.Partial[Order]
//	}
//
// tells the extractor to lower the Updates field to a `partial` TypeNode
// wrapping the Order interface, not to embed a real Partial[Order] value.

// Omit lowers to the `omit` kind: T with the fields named by K removed from
// its property set. K names a key-carrier struct whose fields are each a
// Literal[string] tagged `typeguard:"value=..."`; the tag values are the
// omitted field names.
type Omit[T any, K any] struct{}

// Partial lowers to the `partial` kind: T with every field optional.
type Partial[T any] struct{}

// Keyof lowers to the `keyof` kind: the union of T's property names,
// including those inherited through embedded structs.
type Keyof[T any] struct{}

// Record lowers to `mapped` when K is a string-literal union, or
// `index-signature` when K is unrestricted string.
type Record[K any, V any] struct{}

// OneOf2 through OneOf6 lower to the `union` kind over their type arguments.
type OneOf2[A, B any] struct{}
type OneOf3[A, B, C any] struct{}
type OneOf4[A, B, C, D any] struct{}
type OneOf5[A, B, C, D, E any] struct{}
type OneOf6[A, B, C, D, E, F any] struct{}

// And2 through And6 lower to the `intersection` kind over their type
// arguments.
type And2[A, B any] struct{}
type And3[A, B, C any] struct{}
type And4[A, B, C, D any] struct{}
type And5[A, B, C, D, E any] struct{}
type And6[A, B, C, D, E, F any] struct{}

// Literal lowers to a string-literal/number-literal/boolean-literal node,
// taking its value from the field's own `typeguard:"value=..."` struct tag
// rather than from T.
type Literal[T any] struct{}
