package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoadConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".curator")

	cfg := &Config{
		Version: "1.0",
		Profile: "skyrim",
		DBPath:  "/tmp/curator-test.db",
	}

	if err := SaveConfig(dir, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if loaded.Version != "1.0" {
		t.Errorf("Version = %q, want 1.0", loaded.Version)
	}
	if loaded.Profile != "skyrim" {
		t.Errorf("Profile = %q, want skyrim", loaded.Profile)
	}
	if loaded.DBPath != "/tmp/curator-test.db" {
		t.Errorf("DBPath = %q, want /tmp/curator-test.db", loaded.DBPath)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	if _, err := LoadConfig(t.TempDir()); err == nil {
		t.Error("expected error for missing config")
	}
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := LoadConfig(dir); err == nil {
		t.Error("expected parse error")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Version != "1.0" || cfg.Profile != "default" {
		t.Errorf("DefaultConfig() = %+v", cfg)
	}
}
