package osenv_test

import (
	"testing"

	"github.com/guardenv/guardenv/source/osenv"
)

func TestEnviron_SnapshotsProcessTable(t *testing.T) {
	t.Setenv("GUARDENV_TEST_KEY", "value")
	values := osenv.Environ()
	if v, ok := values["GUARDENV_TEST_KEY"]; !ok || v != "value" {
		t.Fatalf("expected snapshot to carry the variable, got %v ok=%v", v, ok)
	}
	if _, ok := values["GUARDENV_TEST_KEY"].(string); !ok {
		t.Fatalf("values must stay strings")
	}
}

func TestMap_Adapts(t *testing.T) {
	values := osenv.Map(map[string]string{"A": "1", "B": ""})
	if len(values) != 2 || values["A"] != "1" || values["B"] != "" {
		t.Fatalf("unexpected map: %v", values)
	}
}
