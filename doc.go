// Package typeguard interprets a schema of TypeScript-shaped types against
// arbitrary JSON-like values at runtime.
//
// typeguard provides:
//   - A closed algebra of types (TypeNode) covering interfaces with
//     inheritance, discriminated and enum-like unions, intersections,
//     arrays, mapped/record types, index signatures, and the Omit/Keyof/
//     Partial type operators.
//   - A conformance checker (CheckValueAgainstType, IsValid, CheckJSON) that
//     walks a value against a type and reports a human-readable diagnostic
//     on mismatch.
//   - A source extractor (internal/extractor) that reads annotated Go
//     declarations and lowers them into the same type algebra, and an
//     emitter (internal/emitter) that renders the resulting schema plus
//     generated Go assertion functions, which cmd/typeguard writes to disk.
//
// Design policy:
//   - Keep the public surface small: Schema, TypeNode, CheckValueAgainstType,
//     IsValid, CheckJSON, LoadSchema, WriteSchema, DecodeJSONValue.
//   - Put the extractor and emitter under internal/, and the CLI under
//     cmd/typeguard.
//
// Typical usage:
//
//	schema, err := typeguard.LoadSchema(path)
//	value, issues, err := typeguard.DecodeJSONValue(data, typeguard.Strictness{OnDuplicateKey: typeguard.Warn})
//	diagnostic, err := typeguard.CheckValueAgainstType(value, schema.Lookup("Order"), schema)
package typeguard
