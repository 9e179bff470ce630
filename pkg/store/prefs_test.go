package store

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestPreferencesRoundTrip(t *testing.T) {
	base := t.TempDir()
	p, err := Load(&Config{Prefs: base})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if _, ok := p.DisplayName("math.csv"); ok {
		t.Fatalf("expected no preference before rename")
	}
	if err := p.SetDisplayName("math.csv", "  Arithmetic "); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := p.SetDisplayName("world/history.csv", "Dates"); err != nil {
		t.Fatalf("set: %v", err)
	}

	reopened, err := Open(base)
	if err != nil {
		t.Fatal(err)
	}
	if name, ok := reopened.DisplayName("math.csv"); !ok || name != "Arithmetic" {
		t.Fatalf("DisplayName = %q, %v", name, ok)
	}
	want := map[string]string{"math.csv": "Arithmetic", "world/history.csv": "Dates"}
	if got := reopened.All(context.Background()); !reflect.DeepEqual(got, want) {
		t.Fatalf("All() = %v, want %v", got, want)
	}
}

func TestPreferencesClear(t *testing.T) {
	p, err := Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := p.SetDisplayName("math.csv", ""); err != nil {
		t.Fatalf("clearing a missing name should be a no-op: %v", err)
	}
	_ = p.SetDisplayName("math.csv", "Arithmetic")
	if err := p.SetDisplayName("math.csv", " "); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok := p.DisplayName("math.csv"); ok {
		t.Fatalf("expected preference removed")
	}
	if err := p.SetDisplayName("", "x"); err == nil {
		t.Fatalf("expected error for empty key")
	}
}

func TestLoadConfigDefaultsAndFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FLASHQ_CONFIG_PATH", dir)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SwipeThreshold != 4 || cfg.Mode != "sequential" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}

	body := "data: /srv/cards\nmode: random\nseed: 99\n"
	if err := os.WriteFile(filepath.Join(dir, ".flashq.yaml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Data != "/srv/cards" || cfg.Mode != "random" || cfg.Seed != 99 {
		t.Fatalf("config file not applied: %+v", cfg)
	}
	if got := cfg.ManifestPath(); got != filepath.Join("/srv/cards", "file-list.json") {
		t.Fatalf("ManifestPath() = %q", got)
	}
}

func TestConfigRemoteData(t *testing.T) {
	cfg := &Config{Data: "https://cards.example.com/data", Manifest: "file-list.json"}
	if cfg.ManifestPath() != "" {
		t.Fatalf("remote data has no local manifest path")
	}
	if cfg.DataLocation() != "https://cards.example.com/data" {
		t.Fatalf("remote location changed: %q", cfg.DataLocation())
	}
}
