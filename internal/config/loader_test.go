package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"cellsim/internal/core"
)

func TestEmbeddedDefaultMatchesBuiltin(t *testing.T) {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		t.Fatal(err)
	}
	def := Default()
	if cfg.Size != def.Size || cfg.Rule != def.Rule || cfg.Wrap != def.Wrap || cfg.Seed != def.Seed {
		t.Fatalf("embedded %+v differs from builtin %+v", cfg, def)
	}
	if cfg.Params["cyclic"]["states"] != "16" || cfg.Params["cyclic"]["threshold"] != "1" {
		t.Fatalf("cyclic params = %v", cfg.Params["cyclic"])
	}
	if cfg.View != def.View {
		t.Fatalf("view = %+v, want %+v", cfg.View, def.View)
	}
}

func TestParseKeepsDefaultsForMissingFields(t *testing.T) {
	cfg, err := Parse([]byte("rule: cyclic\nsize: 64\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Rule != "cyclic" || cfg.Size != 64 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if !cfg.Wrap || cfg.View.TPS != 60 {
		t.Fatalf("defaults lost: %+v", cfg)
	}
	eng := cfg.Engine()
	if eng.Params["states"] != "16" {
		t.Fatalf("engine params = %v, want cyclic defaults", eng.Params)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero size", "size: 0\n"},
		{"negative workers", "workers: -2\n"},
		{"empty rule", "rule: \"\"\n"},
		{"zero scale", "view:\n  scale: 0\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.yaml)); !errors.Is(err, core.ErrInvalidConfig) {
				t.Fatalf("error = %v, want ErrInvalidConfig", err)
			}
		})
	}
	if _, err := Parse([]byte("size: [1, 2")); err == nil {
		t.Fatal("expected a YAML syntax error")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")
	data := "rule: wave\nwrap: false\nparams:\n  cyclic:\n    states: \"8\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Rule != "wave" || cfg.Wrap {
		t.Fatalf("got %+v", cfg)
	}
	if cfg.Params["cyclic"]["states"] != "8" {
		t.Fatalf("cyclic params = %v", cfg.Params["cyclic"])
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing custom config")
	}
}
