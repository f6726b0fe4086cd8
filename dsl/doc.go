// Package dsl provides the built-in FieldSchema constructors: String, Bool,
// Int, Float, Duration, URL, and Enum, with chaining modifiers for optional
// fields, defaults, and simple range/length rules.
//
// Fields are required by default; Optional() or Default(v) relaxes that.
// Defaults are parsed through the field schema itself, so a default that the
// schema would reject surfaces as a validation issue rather than leaking an
// unchecked value into the result.
package dsl
