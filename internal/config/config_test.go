package config

import (
	"path/filepath"
	"testing"
)

func TestResolvePaths_Flag(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvInstallDir, filepath.Join(dir, "ignored"))

	paths, err := ResolvePaths(dir)
	if err != nil {
		t.Fatalf("ResolvePaths error: %v", err)
	}
	if paths.InstallDir != dir {
		t.Errorf("InstallDir = %q, want %q (flag should override %s)", paths.InstallDir, dir, EnvInstallDir)
	}
	if want := filepath.Join(dir, "config.yaml"); paths.ConfigFile != want {
		t.Errorf("ConfigFile = %q, want %q", paths.ConfigFile, want)
	}
}

func TestResolvePaths_EnvVar(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvInstallDir, dir)

	paths, err := ResolvePaths("")
	if err != nil {
		t.Fatalf("ResolvePaths error: %v", err)
	}
	if paths.InstallDir != dir {
		t.Errorf("InstallDir = %q, want %q", paths.InstallDir, dir)
	}
}

func TestResolvePaths_DefaultUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvInstallDir, "")
	t.Setenv("HOME", home)

	paths, err := ResolvePaths("")
	if err != nil {
		t.Fatalf("ResolvePaths error: %v", err)
	}
	want := filepath.Join(home, "SillyTavern", "config.yaml")
	if paths.ConfigFile != want {
		t.Errorf("ConfigFile = %q, want %q", paths.ConfigFile, want)
	}
}

func TestResolvePaths_RelativeFlagMadeAbsolute(t *testing.T) {
	paths, err := ResolvePaths("st")
	if err != nil {
		t.Fatalf("ResolvePaths error: %v", err)
	}
	if !filepath.IsAbs(paths.InstallDir) {
		t.Errorf("InstallDir = %q, want absolute path", paths.InstallDir)
	}
	if filepath.Base(paths.InstallDir) != "st" {
		t.Errorf("InstallDir = %q, want base %q", paths.InstallDir, "st")
	}
}

func TestResolvePaths_MissingFileIsNotAnError(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "not-installed")

	paths, err := ResolvePaths(dir)
	if err != nil {
		t.Fatalf("ResolvePaths error: %v", err)
	}
	if paths.ConfigFile != filepath.Join(dir, "config.yaml") {
		t.Errorf("ConfigFile = %q", paths.ConfigFile)
	}
}
