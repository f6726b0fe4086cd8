package guardenv

import "context"

// UnknownPolicy controls how raw keys absent from the selected schema are
// handled.
type UnknownPolicy int

const (
	UnknownStrip  UnknownPolicy = iota // Drop unknown keys (default).
	UnknownStrict                      // Reject unknown keys with an error.
)

// FieldSchema is the opaque validation capability for a single configuration
// field. The core never inspects schema internals; it composes schemas into
// groups and delegates per-value validation. dsl provides the built-in
// implementations.
type FieldSchema interface {
	// Parse coerces/validates a single raw value. Errors are Issues with
	// field-local paths ("/"); the validator rebases them under the field name.
	Parse(ctx context.Context, v any) (any, error)
	// Required reports whether the field must be present when no default is
	// declared.
	Required() bool
	// DefaultValue yields the declared default, if any. The boolean reports
	// whether a default is declared at all.
	DefaultValue(ctx context.Context) (any, bool, error)
}

// FieldMap maps field names to their schemas.
type FieldMap map[string]FieldSchema

// Descriptor is the complete specification for one validation run.
type Descriptor struct {
	// Server holds trusted-context-only fields. With a non-empty Prefix, no
	// Server key may start with the prefix.
	Server FieldMap
	// Client holds fields exposable to untrusted contexts. Every key must
	// start with Prefix.
	Client FieldMap
	// Shared holds fields valid in both contexts, exempt from prefix rules.
	Shared FieldMap

	// Prefix identifies client-exposable keys. Required (non-empty) whenever
	// Client is non-empty. An empty prefix disables the access guard.
	Prefix string

	// Values is the raw, unvalidated source data. The core never reads the
	// process environment on its own; inject source/osenv.Environ() (or any
	// other materialized map) at the boundary. Nil is treated as empty.
	Values map[string]any

	// Strict rejects raw keys that are not declared in the selected schema.
	// When false, undeclared keys are silently dropped.
	Strict bool

	// Trusted declares the execution context. Nil falls back to DetectTrusted.
	Trusted *bool

	// Extends is an ordered sequence of plain maps merged into the result
	// after validation. Later entries override earlier ones; all override
	// validated fields of the same name.
	Extends []map[string]any

	// Skip bypasses all schema checks and returns the pruned Values verbatim,
	// unguarded. Escape hatch for tests and bootstrapping; the result carries
	// no safety guarantees.
	Skip bool

	// OnError maps a validation failure onto the error returned by Validate.
	// Nil uses a default that wraps the Issues.
	OnError func(Issues) error

	// OnBreach maps an untrusted read of a server-only key onto the error
	// returned by Env.Get. Nil uses a default that names the key.
	OnBreach func(name string) error
}
