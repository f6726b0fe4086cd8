// Package jsonenv loads raw value maps from JSON documents, the shape build
// tools emit for their injected variable maps. Decoding uses goccy/go-json
// with UseNumber so numeric values keep full precision until a field schema
// coerces them.
package jsonenv

import (
	"bytes"
	"io"

	j "github.com/goccy/go-json"
)

// Load decodes a flat JSON object into a raw value map.
func Load(b []byte) (map[string]any, error) {
	return Read(bytes.NewReader(b))
}

// Read decodes a flat JSON object from r into a raw value map.
func Read(r io.Reader) (map[string]any, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}
