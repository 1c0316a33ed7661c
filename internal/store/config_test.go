package store

import (
	"testing"
)

func TestLoadConfig_MissingFileYieldsDefaults(t *testing.T) {
	t.Setenv("TASKDECK_CONFIG_DIR", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.CurrentWorkspace != "" || cfg.Theme != "" {
		t.Fatalf("expected zero-value config, got %#v", cfg)
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	t.Setenv("TASKDECK_CONFIG_DIR", t.TempDir())

	if err := (SaveConfig(&GlobalConfig{CurrentWorkspace: "home", Theme: "dark"})); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.CurrentWorkspace != "home" || cfg.Theme != "dark" {
		t.Fatalf("round trip mismatch: %#v", cfg)
	}
}

func TestNormalizeWorkspaceName(t *testing.T) {
	t.Parallel()

	if _, err := NormalizeWorkspaceName("   "); err == nil {
		t.Fatalf("expected error for blank workspace name")
	}
	got, err := NormalizeWorkspaceName("  home ")
	if err != nil {
		t.Fatalf("NormalizeWorkspaceName: %v", err)
	}
	if got != "home" {
		t.Fatalf("got %q, want %q", got, "home")
	}
}
