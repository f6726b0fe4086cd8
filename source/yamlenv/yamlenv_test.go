package yamlenv_test

import (
	"strings"
	"testing"

	"github.com/guardenv/guardenv/source/yamlenv"
)

func TestLoad_KeepsNativeTypes(t *testing.T) {
	values, err := yamlenv.Load([]byte("PORT: 8080\nDEBUG: true\nNAME: svc\n"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if values["PORT"] != 8080 || values["DEBUG"] != true || values["NAME"] != "svc" {
		t.Fatalf("unexpected values: %v", values)
	}
}

func TestLoad_EmptyDocument(t *testing.T) {
	values, err := yamlenv.Load(nil)
	if err != nil || values == nil || len(values) != 0 {
		t.Fatalf("expected empty map, got %v err=%v", values, err)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := yamlenv.Load([]byte("- a\n- b\n")); err == nil {
		t.Fatalf("expected error for non-mapping document")
	}
}

func TestRead(t *testing.T) {
	values, err := yamlenv.Read(strings.NewReader("A: x\n"))
	if err != nil || values["A"] != "x" {
		t.Fatalf("unexpected read result: %v err=%v", values, err)
	}
}
