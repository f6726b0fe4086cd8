package guardenv_test

import (
	"context"
	"testing"
	"time"

	guardenv "github.com/guardenv/guardenv"
	g "github.com/guardenv/guardenv/dsl"
)

func untrustedEnv(t *testing.T) *guardenv.Env {
	t.Helper()
	env, err := guardenv.Validate(context.Background(), guardenv.Descriptor{
		Server:  guardenv.FieldMap{"SECRET": g.String()},
		Client:  guardenv.FieldMap{"FOO_APP": g.String()},
		Shared:  guardenv.FieldMap{"MODE": g.String()},
		Prefix:  "FOO_",
		Values:  map[string]any{"SECRET": "s", "FOO_APP": "app", "MODE": "dev"},
		Trusted: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	return env
}

// Module-loader probe names short-circuit to nil before the guard runs.
func TestEnv_InteropProbeKeysBypassGuard(t *testing.T) {
	env := untrustedEnv(t)
	for _, name := range []string{"__esModule", "$$typeof"} {
		if v, err := env.Get(name); v != nil || err != nil {
			t.Fatalf("probe key %s expected nil,nil got v=%v err=%v", name, v, err)
		}
	}
}

func TestEnv_SharedReadableUntrusted(t *testing.T) {
	env := untrustedEnv(t)
	if v, err := env.Get("MODE"); err != nil || v != "dev" {
		t.Fatalf("shared field must be readable untrusted, got v=%v err=%v", v, err)
	}
}

func TestEnv_DefaultBreachNamesKey(t *testing.T) {
	env := untrustedEnv(t)
	_, err := env.Get("SECRET")
	iss, ok := guardenv.AsIssues(err)
	if !ok || iss[0].Code != guardenv.CodeServerOnly || iss[0].Path != "/SECRET" {
		t.Fatalf("expected server_only at /SECRET, got %v", err)
	}
	// the check is stateless and re-evaluated: a second read behaves the same
	if _, err2 := env.Get("SECRET"); err2 == nil {
		t.Fatalf("expected second read to fail as well")
	}
}

func TestEnv_MustGetPanicsOnBreach(t *testing.T) {
	env := untrustedEnv(t)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	env.MustGet("SECRET")
}

// An empty prefix disables the guard entirely; absent and empty collapse.
// Untrusted validation still selects the client-reachable schema only, so the
// observable effect is twofold: reads never trip OnBreach, and server values
// simply are not in the result.
func TestEnv_EmptyPrefixDisablesGuard(t *testing.T) {
	ctx := context.Background()
	desc := guardenv.Descriptor{
		Server: guardenv.FieldMap{"SECRET": g.String()},
		Shared: guardenv.FieldMap{"REGION": g.String()},
		Values: map[string]any{"SECRET": "s", "REGION": "eu"},
	}

	var breached string
	untrusted := desc
	untrusted.Trusted = boolPtr(false)
	untrusted.OnBreach = func(name string) error {
		breached = name
		return guardenv.Issues{{Path: "/" + name, Code: guardenv.CodeServerOnly}}
	}
	env, err := guardenv.Validate(ctx, untrusted)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v, gerr := env.Get("REGION"); gerr != nil || v != "eu" {
		t.Fatalf("no-prefix read of a present key must succeed, got v=%v err=%v", v, gerr)
	}
	// SECRET is outside the untrusted schema: absent, but no breach either
	if v, gerr := env.Get("SECRET"); gerr != nil || v != nil || breached != "" {
		t.Fatalf("no-prefix read must not invoke OnBreach, got v=%v err=%v breached=%q", v, gerr, breached)
	}

	trusted := desc
	trusted.Trusted = boolPtr(true)
	env, err = guardenv.Validate(ctx, trusted)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v, gerr := env.Get("SECRET"); gerr != nil || v != "s" {
		t.Fatalf("trusted read expected ok, got v=%v err=%v", v, gerr)
	}
}

func TestEnv_KeysSortedAndCopied(t *testing.T) {
	env := untrustedEnv(t)
	keys := env.Keys()
	want := []string{"FOO_APP", "MODE"} // SECRET is outside the untrusted schema
	if len(keys) != len(want) {
		t.Fatalf("unexpected keys: %v", keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("expected sorted keys %v, got %v", want, keys)
		}
	}
	keys[0] = "mutated"
	if env.Keys()[0] != "FOO_APP" {
		t.Fatalf("Keys must return a copy")
	}
}

func TestEnv_TypedAccessors(t *testing.T) {
	ctx := context.Background()
	env, err := guardenv.Validate(ctx, guardenv.Descriptor{
		Server: guardenv.FieldMap{
			"PORT":    g.Int(),
			"RATE":    g.Float(),
			"DEBUG":   g.Bool(),
			"TIMEOUT": g.Duration(),
			"NAME":    g.String(),
		},
		Values: map[string]any{
			"PORT":    "8080",
			"RATE":    "0.5",
			"DEBUG":   "1",
			"TIMEOUT": "250ms",
			"NAME":    "svc",
		},
		Trusted: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v, aerr := env.Int("PORT"); aerr != nil || v != 8080 {
		t.Fatalf("Int: v=%v err=%v", v, aerr)
	}
	if v, aerr := env.Float("RATE"); aerr != nil || v != 0.5 {
		t.Fatalf("Float: v=%v err=%v", v, aerr)
	}
	if v, aerr := env.Bool("DEBUG"); aerr != nil || v != true {
		t.Fatalf("Bool: v=%v err=%v", v, aerr)
	}
	if v, aerr := env.Duration("TIMEOUT"); aerr != nil || v != 250*time.Millisecond {
		t.Fatalf("Duration: v=%v err=%v", v, aerr)
	}
	if v, aerr := env.String("NAME"); aerr != nil || v != "svc" {
		t.Fatalf("String: v=%v err=%v", v, aerr)
	}

	// mismatches surface as invalid_type, not panics
	if _, aerr := env.Bool("NAME"); aerr == nil {
		t.Fatalf("expected invalid_type for Bool(NAME)")
	}
	iss, ok := guardenv.AsIssues(mustErr(t, func() error { _, e := env.Int("NAME"); return e }))
	if !ok || iss[0].Code != guardenv.CodeInvalidType {
		t.Fatalf("expected invalid_type issue, got %v", iss)
	}
}

func mustErr(t *testing.T, fn func() error) error {
	t.Helper()
	err := fn()
	if err == nil {
		t.Fatalf("expected error")
	}
	return err
}
