package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Interval() != 3*time.Second {
		t.Fatalf("default interval: %v", cfg.Interval())
	}
	if !cfg.Guard().Essential(1, "whatever") {
		t.Fatalf("defaults must protect pid 1")
	}
	if !cfg.Guard().Essential(999, "launchd") {
		t.Fatalf("defaults must protect the built-in names")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	want := &Config{
		RefreshInterval: Duration{5 * time.Second},
		ProtectedNames:  []string{"postgres", "sshd"},
		ProtectedPIDs:   []int32{0, 1, 42},
	}
	if err := Save(want, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Interval() != 5*time.Second {
		t.Fatalf("interval: %v", got.Interval())
	}
	g := got.Guard()
	if !g.Essential(42, "x") || !g.Essential(7, "sshd") {
		t.Fatalf("protected lists not round-tripped: %+v", got)
	}
	if g.Essential(7, "launchd") {
		t.Fatalf("explicit config must not inherit default names")
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("refresh_interval: 2s\nbogus: true\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("unknown field must fail loudly, not fall back to defaults")
	}
}

func TestZeroIntervalFallsBack(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	if cfg.Interval() != 3*time.Second {
		t.Fatalf("zero interval must fall back to the default, got %v", cfg.Interval())
	}
}
