package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte("log_level: debug\ntrace: true\ntrace_filter: DISPLAY,EXPR\npersist_store: true\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := Config{LogLevel: "debug", Trace: true, TraceFilter: "DISPLAY,EXPR", PersistStore: true}
	if cfg != want {
		t.Errorf("got %+v, want %+v", cfg, want)
	}
}

func TestParseEmptyKeepsDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestParseRejects(t *testing.T) {
	tests := map[string]string{
		"unknown key": "colour: blue\n",
		"bad level":   "log_level: chatty\n",
		"wrong type":  "trace: [1, 2]\n",
		"malformed":   "trace: [unclosed\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(data)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockrun.yaml")
	if err := os.WriteFile(path, []byte("show_store: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.ShowStore || cfg.LogLevel != "info" {
		t.Errorf("got %+v", cfg)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}
