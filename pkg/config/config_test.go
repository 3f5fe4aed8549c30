package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Calendar != DefaultCalendar || cfg.Storage != DefaultStorage || cfg.Color != DefaultColor {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.DataFile() != DefaultJSONFile {
		t.Errorf("expected %s, got %s", DefaultJSONFile, cfg.DataFile())
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	want := &Config{Calendar: "Work", Storage: "sqlite", Color: "never", Timezone: "Europe/Tallinn"}
	if err := SaveTo(path, want); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("expected 0600 permissions, got %o", perm)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if *got != *want {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if got.DataFile() != DefaultDBFile {
		t.Errorf("expected sqlite default file, got %s", got.DataFile())
	}
}

func TestLoadFillsEmptyFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"calendar": "", "file": "/tmp/x.json"}`), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Calendar != DefaultCalendar || cfg.Storage != DefaultStorage || cfg.DataFile() != "/tmp/x.json" {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLocation(t *testing.T) {
	cfg := &Config{Timezone: "Not/AZone"}
	if _, err := cfg.Location(); err == nil {
		t.Error("expected error for unknown timezone")
	}
	cfg.Timezone = "UTC"
	loc, err := cfg.Location()
	if err != nil || loc.String() != "UTC" {
		t.Errorf("expected UTC, got %v %v", loc, err)
	}
}
