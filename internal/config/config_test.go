package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load(missing): %v", err)
	}
	if cfg.Host.Port != 12000 {
		t.Errorf("Host.Port = %d, want default 12000", cfg.Host.Port)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collabedit.toml")
	body := `
[host]
port = 9000
base_dir = "/var/collabedit"

[client]
username = "alice"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Host.Port != 9000 {
		t.Errorf("Host.Port = %d, want 9000", cfg.Host.Port)
	}
	if cfg.Host.BaseDir != "/var/collabedit" {
		t.Errorf("Host.BaseDir = %q, want override", cfg.Host.BaseDir)
	}
	if cfg.Client.Username != "alice" {
		t.Errorf("Client.Username = %q, want alice", cfg.Client.Username)
	}
	// Unset fields still fall back to defaults.
	if cfg.Editor.TabWidth != 4 {
		t.Errorf("Editor.TabWidth = %d, want default 4", cfg.Editor.TabWidth)
	}
}
