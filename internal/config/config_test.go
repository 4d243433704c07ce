package config

import (
	"path/filepath"
	"testing"

	"github.com/san-kum/mdsim/internal/barostat"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Platform != "Reference" {
		t.Errorf("expected platform Reference, got %s", cfg.Platform)
	}
	if cfg.Steps <= 0 {
		t.Error("steps should be positive")
	}
	if cfg.Barostat.Frequency <= 0 {
		t.Error("frequency should be positive")
	}
	if cfg.Barostat.Temperature <= 0 {
		t.Error("temperature should be positive")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Steps = 123
	cfg.Barostat.SurfaceTension = 42.5
	cfg.Barostat.ZMode = "constant-volume"
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Steps != 123 {
		t.Errorf("expected steps 123, got %d", loaded.Steps)
	}
	if loaded.Barostat.SurfaceTension != 42.5 {
		t.Errorf("expected tension 42.5, got %f", loaded.Barostat.SurfaceTension)
	}
	if loaded.Barostat.ZMode != "constant-volume" {
		t.Errorf("expected z_mode constant-volume, got %s", loaded.Barostat.ZMode)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestBarostatConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 99
	cfg.Barostat.XYMode = "anisotropic"
	cfg.Barostat.ZMode = "fixed"

	bc, err := cfg.BarostatConfig()
	if err != nil {
		t.Fatal(err)
	}
	if bc.Seed != 99 {
		t.Errorf("expected seed 99, got %d", bc.Seed)
	}
	if bc.XYMode != barostat.XYAnisotropic {
		t.Errorf("expected anisotropic, got %v", bc.XYMode)
	}
	if bc.ZMode != barostat.ZFixed {
		t.Errorf("expected fixed, got %v", bc.ZMode)
	}
}

func TestParseModes(t *testing.T) {
	tests := []struct {
		xy      string
		z       string
		wantXY  barostat.XYMode
		wantZ   barostat.ZMode
		wantErr bool
	}{
		{"", "", barostat.XYIsotropic, barostat.ZFree, false},
		{"isotropic", "free", barostat.XYIsotropic, barostat.ZFree, false},
		{"anisotropic", "fixed", barostat.XYAnisotropic, barostat.ZFixed, false},
		{"isotropic", "constant_volume", barostat.XYIsotropic, barostat.ZConstantVolume, false},
		{"diagonal", "free", 0, 0, true},
		{"isotropic", "sideways", 0, 0, true},
	}

	for _, tt := range tests {
		xy, errXY := ParseXYMode(tt.xy)
		z, errZ := ParseZMode(tt.z)
		gotErr := errXY != nil || errZ != nil
		if gotErr != tt.wantErr {
			t.Errorf("(%q, %q): error = %v/%v, wantErr %v", tt.xy, tt.z, errXY, errZ, tt.wantErr)
			continue
		}
		if !tt.wantErr && (xy != tt.wantXY || z != tt.wantZ) {
			t.Errorf("(%q, %q) = %v, %v; want %v, %v", tt.xy, tt.z, xy, z, tt.wantXY, tt.wantZ)
		}
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("membrane")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Barostat.SurfaceTension != 50.0 {
		t.Errorf("expected tension 50, got %f", cfg.Barostat.SurfaceTension)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsParse(t *testing.T) {
	for name, cfg := range Presets {
		if _, err := cfg.BarostatConfig(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestListPresets(t *testing.T) {
	if len(ListPresets()) != len(Presets) {
		t.Error("ListPresets should cover every preset")
	}
}
