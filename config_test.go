package main

import (
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SheetFormat != "xlsx" {
		t.Errorf("format = %q, want xlsx", cfg.SheetFormat)
	}
	if cfg.DefaultDailyHours != 7.2 {
		t.Errorf("default hours = %v, want 7.2", cfg.DefaultDailyHours)
	}
	if cfg.DuplicateWindowMinutes != 5 {
		t.Errorf("window = %d, want 5", cfg.DuplicateWindowMinutes)
	}
}

func TestConfigSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg := DefaultConfig()
	cfg.DataDir = "/tmp/ponto"
	cfg.SheetFormat = "csv"
	cfg.DefaultDailyHours = 6.5
	cfg.DuplicateWindowMinutes = 10

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded != cfg {
		t.Errorf("loaded = %+v, want %+v", loaded, cfg)
	}
}
