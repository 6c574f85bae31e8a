package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "rpc:\n  endpoint: https://rpc.example.test\n  timeoutSeconds: 10\n  rps: 5\n  burst: 2\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Endpoint != "https://rpc.example.test" {
		t.Fatalf("endpoint not merged, got %q", cfg.Endpoint)
	}
	if cfg.Timeout != 10*time.Second {
		t.Fatalf("timeout not merged, got %v", cfg.Timeout)
	}
	if cfg.RPS != 5 || cfg.Burst != 2 {
		t.Fatalf("limiter options not merged: rps=%v burst=%d", cfg.RPS, cfg.Burst)
	}
}

func TestLoadPartialFileLeavesRestZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("rpc:\n  endpoint: https://rpc.example.test\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Timeout != 0 || cfg.RPS != 0 || cfg.Burst != 0 {
		t.Fatalf("unset fields must stay zero for the client defaults: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); !errors.Is(err, ErrNoPath) {
		t.Fatalf("want ErrNoPath, got %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing file should error")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte(":::\tnot yaml"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("bad yaml should error")
	}
}
