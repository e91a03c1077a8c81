package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Substeps != DefaultSubsteps {
		t.Errorf("expected %d substeps, got %d", DefaultSubsteps, cfg.Substeps)
	}
	if cfg.GravityY >= 0 {
		t.Error("gravity should point down")
	}
	if !cfg.Floor {
		t.Error("floor should be on by default")
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		t.Error("window size should be positive")
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Preset = "rain"
	cfg.Seed = 1234
	cfg.AutoSpawnMs = 50

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Preset != "rain" {
		t.Errorf("expected preset rain, got %s", loaded.Preset)
	}
	if loaded.Seed != 1234 {
		t.Errorf("expected seed 1234, got %d", loaded.Seed)
	}
	if loaded.AutoSpawnMs != 50 {
		t.Errorf("expected auto_spawn_ms 50, got %f", loaded.AutoSpawnMs)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestAutoSpawnInterval(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AutoSpawnMs = 250
	if got := cfg.AutoSpawnInterval(); got != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %v", got)
	}

	cfg.AutoSpawnMs = 0
	if got := cfg.AutoSpawnInterval(); got != time.Millisecond {
		t.Errorf("expected default 1ms for unset value, got %v", got)
	}
}

func TestGetPreset(t *testing.T) {
	p, ok := GetPreset("mixed")
	if !ok {
		t.Fatal("expected mixed preset")
	}
	if p.Boxes != 4 || p.Spheres != 4 || p.Capsules != 4 {
		t.Errorf("unexpected mixed counts: %+v", p)
	}

	if _, ok := GetPreset("nonexistent"); ok {
		t.Error("expected miss for nonexistent preset")
	}
}

func TestListPresetsSorted(t *testing.T) {
	names := ListPresets()
	if len(names) < 4 {
		t.Fatalf("expected at least 4 presets, got %d", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("presets not sorted: %v", names)
		}
	}
}
