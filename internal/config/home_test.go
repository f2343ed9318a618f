package config

import (
	"path/filepath"
	"testing"
)

func TestGetFortunerHome_EnvOverride(t *testing.T) {
	t.Setenv("FORTUNER_HOME", "/custom/fortuner")

	home, err := GetFortunerHome()
	if err != nil {
		t.Fatalf("GetFortunerHome() error = %v", err)
	}
	if home != "/custom/fortuner" {
		t.Errorf("home = %q, want /custom/fortuner", home)
	}
}

func TestGetFortunerHome_UserHome(t *testing.T) {
	t.Setenv("FORTUNER_HOME", "")
	t.Setenv("HOME", "/home/tester")

	home, err := GetFortunerHome()
	if err != nil {
		t.Fatalf("GetFortunerHome() error = %v", err)
	}
	if want := filepath.Join("/home/tester", ".fortuner"); home != want {
		t.Errorf("home = %q, want %q", home, want)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("FORTUNER_HOME", "/custom/fortuner")

	path, err := DefaultConfigPath()
	if err != nil {
		t.Fatalf("DefaultConfigPath() error = %v", err)
	}
	if want := filepath.Join("/custom/fortuner", "config.yaml"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}
