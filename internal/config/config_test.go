package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Size != 100 {
		t.Errorf("expected size 100, got %d", cfg.Size)
	}
	if len(cfg.Algorithms) != 6 {
		t.Errorf("expected six algorithms, got %v", cfg.Algorithms)
	}
	if cfg.Display.FPS <= 0 {
		t.Error("fps should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero size", func(c *Config) { c.Size = 0 }},
		{"unknown order", func(c *Config) { c.Order = "zigzag" }},
		{"unknown algorithm", func(c *Config) { c.Algorithms = []string{"bogo"} }},
		{"zero fps", func(c *Config) { c.Display.FPS = 0 }},
		{"zero speed", func(c *Config) { c.Display.Speed = 0 }},
		{"zero columns", func(c *Config) { c.Display.Columns = 0 }},
		{"flat height", func(c *Config) { c.Display.Height = 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortvis.yaml")

	cfg := DefaultConfig()
	cfg.Size = 42
	cfg.Algorithms = []string{"quick", "merge"}
	cfg.Display.Theme = "ocean"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Size != 42 || len(loaded.Algorithms) != 2 || loaded.Display.Theme != "ocean" {
		t.Errorf("unexpected round trip: %+v", loaded)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("size: 12\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Size != 12 {
		t.Errorf("expected size 12, got %d", cfg.Size)
	}
	if cfg.Display.FPS != DefaultFPS {
		t.Errorf("expected default fps, got %d", cfg.Display.FPS)
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("size: -4\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected validation error")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("tiny")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Size != 10 {
		t.Errorf("expected size 10, got %d", cfg.Size)
	}
	if cfg.DataDir != DefaultDataDir {
		t.Errorf("preset lost default data dir: %q", cfg.DataDir)
	}

	cfg.Size = 999
	if Presets["tiny"].Size != 10 {
		t.Error("GetPreset returned shared preset")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(presets))
	}
	for _, name := range presets {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}
