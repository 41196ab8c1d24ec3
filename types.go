package typeguard

// Severity expresses the severity level for a non-fatal issue raised while
// loading or decoding input, independent of schema conformance.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// Strictness configures enforcement for duplicate JSON object keys
// encountered while decoding raw input into the untyped value the checker
// consumes. It does not affect conformance checking itself.
type Strictness struct {
	OnDuplicateKey Severity
}
