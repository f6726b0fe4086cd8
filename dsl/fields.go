package dsl

import (
	"context"
	"encoding/json"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	guardenv "github.com/guardenv/guardenv"
	"github.com/guardenv/guardenv/i18n"
)

// Field is the concrete FieldSchema behind the constructors. The zero value is
// not usable; always start from a constructor. Modifiers return copies, so a
// constructed Field can be shared across descriptors.
type Field struct {
	parse      func(ctx context.Context, v any) (any, error)
	optional   bool
	defaultSet bool
	defaultRaw any
}

var _ guardenv.FieldSchema = Field{}

// Parse coerces/validates a single raw value.
func (f Field) Parse(ctx context.Context, v any) (any, error) { return f.parse(ctx, v) }

// Required reports whether the field must be present when no default applies.
func (f Field) Required() bool { return !f.optional && !f.defaultSet }

// DefaultValue parses the declared default through the field schema, the same
// path raw values take.
func (f Field) DefaultValue(ctx context.Context) (any, bool, error) {
	if !f.defaultSet {
		return nil, false, nil
	}
	v, err := f.parse(ctx, f.defaultRaw)
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

// Optional marks the field as optional.
func (f Field) Optional() Field {
	f.optional = true
	return f
}

// Default sets a default applied when the raw value is absent.
func (f Field) Default(v any) Field {
	f.defaultSet = true
	f.defaultRaw = v
	return f
}

// String returns a string field. No coercion: non-string raw values are
// rejected.
func String() Field {
	return Field{parse: func(_ context.Context, v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, invalidType()
		}
		return s, nil
	}}
}

// NonEmpty rejects empty strings after parsing. Empty-string pruning removes
// "" raw values before validation; NonEmpty additionally catches empty
// defaults and extension-injected values.
func (f Field) NonEmpty() Field {
	prev := f.parse
	f.parse = func(ctx context.Context, v any) (any, error) {
		out, err := prev(ctx, v)
		if err != nil {
			return nil, err
		}
		if s, ok := out.(string); ok && len(s) == 0 {
			return nil, guardenv.Issues{{Path: "/", Code: guardenv.CodeTooShort, Message: i18n.T(guardenv.CodeTooShort, nil)}}
		}
		return out, nil
	}
	return f
}

// Bool returns a bool field. Native bools pass through untouched; strings are
// coerced via strconv.ParseBool ("1", "t", "true", ...).
func Bool() Field {
	return Field{parse: func(_ context.Context, v any) (any, error) {
		switch t := v.(type) {
		case bool:
			return t, nil
		case string:
			b, err := strconv.ParseBool(t)
			if err != nil {
				return nil, guardenv.Issues{{Path: "/", Code: guardenv.CodeInvalidType, Message: i18n.T(guardenv.CodeInvalidType, nil), Cause: err}}
			}
			return b, nil
		default:
			return nil, invalidType()
		}
	}}
}

// Int returns an int64 field. Native integers pass through untouched (no
// stringification); floats must be integral; strings are coerced via
// strconv.ParseInt.
func Int() Field {
	return Field{parse: func(_ context.Context, v any) (any, error) {
		switch t := v.(type) {
		case int64:
			return t, nil
		case int:
			return int64(t), nil
		case int8:
			return int64(t), nil
		case int16:
			return int64(t), nil
		case int32:
			return int64(t), nil
		case uint:
			if uint64(t) > math.MaxInt64 {
				return nil, overflow("int64")
			}
			return int64(t), nil
		case uint8:
			return int64(t), nil
		case uint16:
			return int64(t), nil
		case uint32:
			return int64(t), nil
		case uint64:
			if t > math.MaxInt64 {
				return nil, overflow("int64")
			}
			return int64(t), nil
		case float64:
			if math.Trunc(t) != t {
				return nil, guardenv.Issues{{Path: "/", Code: guardenv.CodeInvalidType, Message: "fractional part not allowed for int64"}}
			}
			if t < math.MinInt64 || t > math.MaxInt64 {
				return nil, overflow("int64")
			}
			return int64(t), nil
		case json.Number:
			i, err := t.Int64()
			if err != nil {
				return nil, guardenv.Issues{{Path: "/", Code: guardenv.CodeInvalidType, Message: i18n.T(guardenv.CodeInvalidType, nil), Cause: err}}
			}
			return i, nil
		case string:
			i, err := strconv.ParseInt(t, 10, 64)
			if err != nil {
				return nil, guardenv.Issues{{Path: "/", Code: guardenv.CodeInvalidType, Message: i18n.T(guardenv.CodeInvalidType, nil), Cause: err}}
			}
			return i, nil
		default:
			return nil, invalidType()
		}
	}}
}

// Float returns a float64 field. Native numbers pass through; strings are
// coerced via strconv.ParseFloat.
func Float() Field {
	return Field{parse: func(_ context.Context, v any) (any, error) {
		switch t := v.(type) {
		case float64:
			return t, nil
		case float32:
			return float64(t), nil
		case int:
			return float64(t), nil
		case int64:
			return float64(t), nil
		case json.Number:
			f, err := t.Float64()
			if err != nil {
				return nil, guardenv.Issues{{Path: "/", Code: guardenv.CodeInvalidType, Message: i18n.T(guardenv.CodeInvalidType, nil), Cause: err}}
			}
			return f, nil
		case string:
			f, err := strconv.ParseFloat(t, 64)
			if err != nil {
				return nil, guardenv.Issues{{Path: "/", Code: guardenv.CodeInvalidType, Message: i18n.T(guardenv.CodeInvalidType, nil), Cause: err}}
			}
			return f, nil
		default:
			return nil, invalidType()
		}
	}}
}

// Duration returns a time.Duration field. Accepts time.Duration directly or a
// time.ParseDuration string ("250ms", "2h45m").
func Duration() Field {
	return Field{parse: func(_ context.Context, v any) (any, error) {
		switch t := v.(type) {
		case time.Duration:
			return t, nil
		case string:
			d, err := time.ParseDuration(t)
			if err != nil {
				return nil, guardenv.Issues{{Path: "/", Code: guardenv.CodeInvalidFormat, Message: i18n.T(guardenv.CodeInvalidFormat, nil), Hint: "duration", Cause: err}}
			}
			return d, nil
		default:
			return nil, invalidType()
		}
	}}
}

// URL returns a string field validated as an absolute URL (scheme and host
// required). The value stays a string.
func URL() Field {
	return Field{parse: func(_ context.Context, v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, invalidType()
		}
		u, err := url.Parse(s)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, guardenv.Issues{{Path: "/", Code: guardenv.CodeInvalidFormat, Message: i18n.T(guardenv.CodeInvalidFormat, nil), Hint: "url", Cause: err}}
		}
		return s, nil
	}}
}

// Enum returns a string field restricted to the given values.
func Enum(values ...string) Field {
	allowed := make(map[string]struct{}, len(values))
	for _, v := range values {
		allowed[v] = struct{}{}
	}
	return Field{parse: func(_ context.Context, v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, invalidType()
		}
		if _, ok := allowed[s]; !ok {
			return nil, guardenv.Issues{{
				Path:    "/",
				Code:    guardenv.CodeInvalidEnum,
				Message: i18n.T(guardenv.CodeInvalidEnum, map[string]string{"got": s}),
				Hint:    "one of: " + strings.Join(values, ", "),
				Params:  map[string]any{"allowed": values, "got": s},
			}}
		}
		return s, nil
	}}
}

// Min rejects parsed numeric values below min.
func (f Field) Min(min float64) Field {
	prev := f.parse
	f.parse = func(ctx context.Context, v any) (any, error) {
		out, err := prev(ctx, v)
		if err != nil {
			return nil, err
		}
		if n, ok := asFloat(out); ok && n < min {
			return nil, guardenv.Issues{{Path: "/", Code: guardenv.CodeTooSmall, Message: i18n.T(guardenv.CodeTooSmall, nil), Params: map[string]any{"min": min, "got": n}}}
		}
		return out, nil
	}
	return f
}

// Max rejects parsed numeric values above max.
func (f Field) Max(max float64) Field {
	prev := f.parse
	f.parse = func(ctx context.Context, v any) (any, error) {
		out, err := prev(ctx, v)
		if err != nil {
			return nil, err
		}
		if n, ok := asFloat(out); ok && n > max {
			return nil, guardenv.Issues{{Path: "/", Code: guardenv.CodeTooBig, Message: i18n.T(guardenv.CodeTooBig, nil), Params: map[string]any{"max": max, "got": n}}}
		}
		return out, nil
	}
	return f
}

func asFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case int64:
		return float64(t), true
	case float64:
		return t, true
	}
	return 0, false
}

func invalidType() guardenv.Issues {
	return guardenv.Issues{{Path: "/", Code: guardenv.CodeInvalidType, Message: i18n.T(guardenv.CodeInvalidType, nil)}}
}

func overflow(want string) guardenv.Issues {
	return guardenv.Issues{{Path: "/", Code: guardenv.CodeOverflow, Message: i18n.T(guardenv.CodeOverflow, nil), Hint: want}}
}
