package guardenv_test

import (
	"fmt"
	"testing"

	guardenv "github.com/guardenv/guardenv"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := guardenv.Issues{
		{Path: "/A", Code: guardenv.CodeRequired},
		{Path: "/B", Code: guardenv.CodeInvalidType},
		{Path: "/C", Code: guardenv.CodeUnknownKey},
		{Path: "/D", Code: guardenv.CodeInvalidEnum},
	}
	got := iss.Error()
	want := "required at /A; invalid_type at /B; unknown_key at /C; ... (total 4)"
	if got != want {
		t.Fatalf("summary mismatch:\n got %q\nwant %q", got, want)
	}
	if (guardenv.Issues{}).Error() != "" {
		t.Fatalf("empty Issues must render empty")
	}
}

func TestAsIssues_ThroughWrapping(t *testing.T) {
	inner := guardenv.Issues{{Path: "/X", Code: guardenv.CodeRequired}}
	wrapped := fmt.Errorf("guardenv: invalid environment variables: %w", inner)
	iss, ok := guardenv.AsIssues(wrapped)
	if !ok || len(iss) != 1 || iss[0].Path != "/X" {
		t.Fatalf("expected unwrap to Issues, got ok=%v iss=%v", ok, iss)
	}
	if _, ok := guardenv.AsIssues(nil); ok {
		t.Fatalf("nil error must not yield Issues")
	}
}

func TestAppendIssues_InitializesNil(t *testing.T) {
	var dst guardenv.Issues
	dst = guardenv.AppendIssues(dst, guardenv.Issue{Path: "/A", Code: guardenv.CodeRequired})
	if len(dst) != 1 {
		t.Fatalf("expected one issue, got %v", dst)
	}
}
