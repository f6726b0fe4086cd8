package guardenv

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"dario.cat/mergo"

	"github.com/guardenv/guardenv/i18n"
)

// Validate consumes a Descriptor exactly once and produces the guarded result.
// Failures are routed through OnError; there are no partial results. Each call
// is independent, and the caller-supplied Values map is never mutated.
func Validate(ctx context.Context, d Descriptor) (*Env, error) {
	onError := d.OnError
	if onError == nil {
		onError = defaultOnError
	}

	// Contract violations are rejected before any schema is assembled.
	if iss := d.contractIssues(); len(iss) > 0 {
		return nil, onError(iss)
	}

	values := pruneEmpty(d.Values)

	trusted := DetectTrusted()
	if d.Trusted != nil {
		trusted = *d.Trusted
	}

	if d.Skip {
		return newEnv(values, d, trusted, false), nil
	}

	// Client-reachable fields are Client plus Shared; the server context can
	// see everything. Fields outside the selected schema are not checked at
	// all: an untrusted context structurally cannot have received server
	// values to validate.
	var reachable FieldMap
	if trusted {
		reachable = mergeFieldMaps(d.Shared, d.Client, d.Server)
	} else {
		reachable = mergeFieldMaps(d.Shared, d.Client)
	}

	policy := UnknownStrip
	if d.Strict {
		policy = UnknownStrict
	}

	out, iss := checkFields(ctx, reachable, values, policy)
	if len(iss) > 0 {
		return nil, onError(iss)
	}

	if len(d.Extends) > 0 {
		merged, err := mergeExtends(out, d.Extends)
		if err != nil {
			return nil, onError(Issues{{
				Path:    "/",
				Code:    CodeParseError,
				Message: err.Error(),
				Cause:   err,
			}})
		}
		out = merged
	}

	return newEnv(out, d, trusted, true), nil
}

// MustValidate is Validate panicking on failure, for module-level singletons.
func MustValidate(ctx context.Context, d Descriptor) *Env {
	env, err := Validate(ctx, d)
	if err != nil {
		panic(err)
	}
	return env
}

func defaultOnError(iss Issues) error {
	return fmt.Errorf("guardenv: invalid environment variables: %w", iss)
}

// contractIssues detects descriptor-shape problems: client keys missing the
// prefix and server keys carrying it.
func (d Descriptor) contractIssues() Issues {
	var iss Issues
	if len(d.Client) > 0 && d.Prefix == "" {
		iss = AppendIssues(iss, Issue{
			Path:    "/",
			Code:    CodeClientPrefix,
			Message: i18n.T(CodeClientPrefix, nil),
			Hint:    "set Prefix when Client fields are declared",
		})
		return iss
	}
	if d.Prefix == "" {
		return nil
	}
	for _, name := range sortedKeys(d.Client) {
		if !strings.HasPrefix(name, d.Prefix) {
			iss = AppendIssues(iss, Issue{
				Path:    "/" + name,
				Code:    CodeClientPrefix,
				Message: i18n.T(CodeClientPrefix, map[string]string{"key": name, "prefix": d.Prefix}),
				Params:  map[string]any{"key": name, "prefix": d.Prefix},
			})
		}
	}
	for _, name := range sortedKeys(d.Server) {
		if strings.HasPrefix(name, d.Prefix) {
			iss = AppendIssues(iss, Issue{
				Path:    "/" + name,
				Code:    CodeServerPrefix,
				Message: i18n.T(CodeServerPrefix, map[string]string{"key": name, "prefix": d.Prefix}),
				Params:  map[string]any{"key": name, "prefix": d.Prefix},
			})
		}
	}
	return iss
}

// pruneEmpty clones the raw map, dropping keys whose value is the empty
// string. Deployment platforms set absent variables to "" rather than
// omitting them; treating "" as absent lets optional-field defaults apply.
func pruneEmpty(values map[string]any) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		out[k] = v
	}
	return out
}

// mergeFieldMaps merges groups with later maps taking precedence on key
// collisions.
func mergeFieldMaps(groups ...FieldMap) FieldMap {
	out := make(FieldMap)
	for _, g := range groups {
		for name, fs := range g {
			out[name] = fs
		}
	}
	return out
}

// checkFields validates every declared field and, under UnknownStrict, rejects
// undeclared raw keys. Issues accumulate; there is no fail-fast.
func checkFields(ctx context.Context, fields FieldMap, values map[string]any, policy UnknownPolicy) (map[string]any, Issues) {
	out := make(map[string]any, len(fields))
	var iss Issues
	for _, name := range sortedKeys(fields) {
		fs := fields[name]
		raw, ok := values[name]
		if ok {
			parsed, err := fs.Parse(ctx, raw)
			if err != nil {
				iss = append(iss, rebaseIssues(name, err)...)
				continue
			}
			out[name] = parsed
			continue
		}
		dv, declared, err := fs.DefaultValue(ctx)
		if err != nil {
			iss = append(iss, rebaseIssues(name, err)...)
			continue
		}
		if declared {
			out[name] = dv
			continue
		}
		if fs.Required() {
			iss = AppendIssues(iss, Issue{
				Path:    "/" + name,
				Code:    CodeRequired,
				Message: i18n.T(CodeRequired, map[string]string{"key": name}),
			})
		}
	}
	if policy == UnknownStrict {
		for _, name := range sortedStringKeys(values) {
			if _, ok := fields[name]; ok {
				continue
			}
			iss = AppendIssues(iss, Issue{
				Path:    "/" + name,
				Code:    CodeUnknownKey,
				Message: i18n.T(CodeUnknownKey, map[string]string{"key": name}),
			})
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

// rebaseIssues rewrites field-local issue paths ("/" or relative) under
// "/name". Non-Issues errors wrap as a single parse_error entry.
func rebaseIssues(name string, err error) Issues {
	base := "/" + name
	child, ok := AsIssues(err)
	if !ok {
		return Issues{{Path: base, Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	out := make(Issues, 0, len(child))
	for _, it := range child {
		p := it.Path
		switch {
		case p == "" || p == "/":
			p = base
		case p[0] == '/':
			p = base + p
		default:
			p = base + "/" + p
		}
		it.Path = p
		out = append(out, it)
	}
	return out
}

// mergeExtends reduces the extension maps left to right (later keys win) and
// overlays the result onto the validated fields (extension keys win).
func mergeExtends(validated map[string]any, extends []map[string]any) (map[string]any, error) {
	ext := map[string]any{}
	for _, m := range extends {
		if err := mergo.Merge(&ext, m, mergo.WithOverride); err != nil {
			return nil, err
		}
	}
	out := make(map[string]any, len(validated)+len(ext))
	for k, v := range validated {
		out[k] = v
	}
	if err := mergo.Merge(&out, ext, mergo.WithOverride); err != nil {
		return nil, err
	}
	return out, nil
}

func sortedKeys(m FieldMap) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedStringKeys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
