package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	guardenv "github.com/guardenv/guardenv"
	"github.com/guardenv/guardenv/dsl"
)

// manifest is the YAML description of a Descriptor: three field groups, the
// client prefix, and strictness. Raw values never live in the manifest; they
// come from the process table or a -values file.
type manifest struct {
	Prefix string                   `yaml:"prefix"`
	Strict bool                     `yaml:"strict"`
	Server map[string]manifestField `yaml:"server"`
	Client map[string]manifestField `yaml:"client"`
	Shared map[string]manifestField `yaml:"shared"`
}

type manifestField struct {
	Type     string   `yaml:"type"` // string|bool|int|float|duration|url|enum
	Optional bool     `yaml:"optional"`
	Default  any      `yaml:"default"`
	Values   []string `yaml:"values"` // enum members
	Min      *float64 `yaml:"min"`
	Max      *float64 `yaml:"max"`
	NonEmpty bool     `yaml:"nonempty"`
}

func loadManifest(path string) (manifest, error) {
	var m manifest
	b, err := os.ReadFile(path)
	if err != nil {
		return m, err
	}
	if err := yaml.Unmarshal(b, &m); err != nil {
		return m, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return m, nil
}

func (m manifest) descriptor() (guardenv.Descriptor, error) {
	d := guardenv.Descriptor{
		Prefix: m.Prefix,
		Strict: m.Strict,
	}
	var err error
	if d.Server, err = buildGroup(m.Server); err != nil {
		return d, err
	}
	if d.Client, err = buildGroup(m.Client); err != nil {
		return d, err
	}
	if d.Shared, err = buildGroup(m.Shared); err != nil {
		return d, err
	}
	return d, nil
}

func buildGroup(group map[string]manifestField) (guardenv.FieldMap, error) {
	if len(group) == 0 {
		return nil, nil
	}
	out := make(guardenv.FieldMap, len(group))
	for name, mf := range group {
		f, err := mf.field(name)
		if err != nil {
			return nil, err
		}
		out[name] = f
	}
	return out, nil
}

func (mf manifestField) field(name string) (dsl.Field, error) {
	var f dsl.Field
	switch mf.Type {
	case "", "string":
		f = dsl.String()
		if mf.NonEmpty {
			f = f.NonEmpty()
		}
	case "bool":
		f = dsl.Bool()
	case "int":
		f = dsl.Int()
	case "float":
		f = dsl.Float()
	case "duration":
		f = dsl.Duration()
	case "url":
		f = dsl.URL()
	case "enum":
		if len(mf.Values) == 0 {
			return f, fmt.Errorf("field %s: enum requires values", name)
		}
		f = dsl.Enum(mf.Values...)
	default:
		return f, fmt.Errorf("field %s: unknown type %q", name, mf.Type)
	}
	if mf.Min != nil {
		f = f.Min(*mf.Min)
	}
	if mf.Max != nil {
		f = f.Max(*mf.Max)
	}
	if mf.Optional {
		f = f.Optional()
	}
	if mf.Default != nil {
		f = f.Default(mf.Default)
	}
	return f, nil
}
