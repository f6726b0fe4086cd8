// Package osenv materializes the process environment table as a raw value map.
// The validator core never reads the environment on its own; callers inject
// this (or any other source) at the boundary.
package osenv

import (
	"os"
	"strings"
)

// Environ snapshots the process environment as a raw value map. Values stay
// strings; coercion is the field schemas' job.
func Environ() map[string]any {
	entries := os.Environ()
	out := make(map[string]any, len(entries))
	for _, kv := range entries {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		out[k] = v
	}
	return out
}

// Map adapts a plain string map (for example, injected test fixtures) into a
// raw value map.
func Map(values map[string]string) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		out[k] = v
	}
	return out
}
