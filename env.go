package guardenv

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/guardenv/guardenv/i18n"
)

// interopProbeKeys are module-loader probe names. Reads of these short-circuit
// to nil before the guard runs so interop probing never trips OnBreach.
var interopProbeKeys = map[string]struct{}{
	"__esModule": {},
	"$$typeof":   {},
}

// Env is the validated, access-guarded result configuration. It is read-only
// after construction and safe for unsynchronized concurrent reads.
type Env struct {
	values   map[string]any
	shared   map[string]struct{}
	prefix   string
	trusted  bool
	guarded  bool
	onBreach func(name string) error
	keys     []string
}

func newEnv(values map[string]any, d Descriptor, trusted, guarded bool) *Env {
	shared := make(map[string]struct{}, len(d.Shared))
	for name := range d.Shared {
		shared[name] = struct{}{}
	}
	keys := make([]string, 0, len(values))
	for name := range values {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	onBreach := d.OnBreach
	if onBreach == nil {
		onBreach = defaultOnBreach
	}
	return &Env{
		values:   values,
		shared:   shared,
		prefix:   d.Prefix,
		trusted:  trusted,
		guarded:  guarded,
		onBreach: onBreach,
		keys:     keys,
	}
}

func defaultOnBreach(name string) error {
	return Issues{{
		Path:    "/" + name,
		Code:    CodeServerOnly,
		Message: i18n.T(CodeServerOnly, map[string]string{"key": name}),
		Params:  map[string]any{"key": name},
	}}
}

// isServerOnly reports whether name is confined to the trusted context: a
// prefix is configured, name does not carry it, and name is not shared. An
// empty prefix disables the restriction for every field.
func (e *Env) isServerOnly(name string) bool {
	if e.prefix == "" {
		return false
	}
	if strings.HasPrefix(name, e.prefix) {
		return false
	}
	_, shared := e.shared[name]
	return !shared
}

// Get returns the stored value for name (nil if never set). Reading a
// server-only key from an untrusted context returns the OnBreach error
// instead. The check is re-evaluated on every read.
func (e *Env) Get(name string) (any, error) {
	if _, ok := interopProbeKeys[name]; ok {
		return nil, nil
	}
	if e.guarded && !e.trusted && e.isServerOnly(name) {
		return nil, e.onBreach(name)
	}
	return e.values[name], nil
}

// MustGet is Get panicking on a guard breach.
func (e *Env) MustGet(name string) any {
	v, err := e.Get(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Has reports whether name holds a value. It does not expose the value and
// performs no guard check.
func (e *Env) Has(name string) bool {
	_, ok := e.values[name]
	return ok
}

// Keys returns the stored field names in ascending order.
func (e *Env) Keys() []string {
	out := make([]string, len(e.keys))
	copy(out, e.keys)
	return out
}

// String returns the value for name as a string.
func (e *Env) String(name string) (string, error) {
	v, err := e.Get(name)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", typedIssue(name, v, "string")
	}
	return s, nil
}

// Bool returns the value for name as a bool.
func (e *Env) Bool(name string) (bool, error) {
	v, err := e.Get(name)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, typedIssue(name, v, "bool")
	}
	return b, nil
}

// Int returns the value for name as an int64. Values injected via Skip or
// Extends may carry related numeric types; integral ones are accepted.
func (e *Env) Int(name string) (int64, error) {
	v, err := e.Get(name)
	if err != nil {
		return 0, err
	}
	switch t := v.(type) {
	case int64:
		return t, nil
	case int:
		return int64(t), nil
	case float64:
		if t == float64(int64(t)) {
			return int64(t), nil
		}
	case json.Number:
		if i, perr := t.Int64(); perr == nil {
			return i, nil
		}
	}
	return 0, typedIssue(name, v, "int64")
}

// Float returns the value for name as a float64.
func (e *Env) Float(name string) (float64, error) {
	v, err := e.Get(name)
	if err != nil {
		return 0, err
	}
	switch t := v.(type) {
	case float64:
		return t, nil
	case int64:
		return float64(t), nil
	case int:
		return float64(t), nil
	case json.Number:
		if f, perr := t.Float64(); perr == nil {
			return f, nil
		}
	}
	return 0, typedIssue(name, v, "float64")
}

// Duration returns the value for name as a time.Duration.
func (e *Env) Duration(name string) (time.Duration, error) {
	v, err := e.Get(name)
	if err != nil {
		return 0, err
	}
	d, ok := v.(time.Duration)
	if !ok {
		return 0, typedIssue(name, v, "time.Duration")
	}
	return d, nil
}

func typedIssue(name string, got any, want string) error {
	return Issues{{
		Path:    "/" + name,
		Code:    CodeInvalidType,
		Message: i18n.T(CodeInvalidType, nil),
		Hint:    fmt.Sprintf("expected %s, got %T", want, got),
	}}
}
