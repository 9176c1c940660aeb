package config

// Notes:
// - Tests that resolve config names change the working directory or set
//   XDG_CONFIG_HOME and do not run in parallel.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const sampleYAML = `
templates:
  default: newsletter
  custom:
    - id: newsletter
      name: Newsletter
      description: Weekly digest
      base: creative
      imageRules:
        minDoubleNoCaption: 5
        minDoubleWithCaption: 2
    - id: plain
      name: Plain
      base: simple
output:
  dir: out
  pdf: true
pdf:
  timeout: 45s
cache:
  ttl: 10m
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if cfg.Templates.Default != "" || len(cfg.Templates.Custom) != 0 {
		t.Errorf("default templates section should be empty, got %+v", cfg.Templates)
	}
	if cfg.TimeoutDuration() != 0 || cfg.CacheTTL() != 0 {
		t.Error("default durations should be zero")
	}
}

func TestLoadConfig_Path(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "team.yaml")
	writeFile(t, path, sampleYAML)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Templates.Default != "newsletter" {
		t.Errorf("Templates.Default = %q", cfg.Templates.Default)
	}
	if len(cfg.Templates.Custom) != 2 {
		t.Fatalf("len(Custom) = %d, want 2", len(cfg.Templates.Custom))
	}
	nl := cfg.Templates.Custom[0]
	if nl.Base != "creative" || nl.ImageRules == nil || nl.ImageRules.MinDoubleNoCaption != 5 || nl.ImageRules.MinDoubleWithCaption != 2 {
		t.Errorf("newsletter = %+v", nl)
	}
	if cfg.Templates.Custom[1].ImageRules != nil {
		t.Error("plain should inherit its policy (nil rules)")
	}
	if cfg.Output.Dir != "out" || !cfg.Output.PDF {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.TimeoutDuration() != 45*time.Second {
		t.Errorf("TimeoutDuration() = %v", cfg.TimeoutDuration())
	}
	if cfg.CacheTTL() != 10*time.Minute {
		t.Errorf("CacheTTL() = %v", cfg.CacheTTL())
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"unknown field", "templates:\n  colour: red\n", ErrConfigParse},
		{"empty file", "", ErrConfigParse},
		{"bad duration", "pdf:\n  timeout: soon\n", ErrInvalidValue},
		{"zero timeout", "pdf:\n  timeout: 0s\n", ErrInvalidValue},
		{"negative ttl", "cache:\n  ttl: -1m\n", ErrInvalidValue},
		{"custom without id", "templates:\n  custom:\n    - name: X\n", ErrInvalidValue},
		{"custom without name", "templates:\n  custom:\n    - id: x\n", ErrInvalidValue},
		{"id with space", "templates:\n  custom:\n    - id: a b\n      name: X\n", ErrInvalidValue},
		{"duplicate id", "templates:\n  custom:\n    - id: x\n      name: X\n    - id: x\n      name: Y\n", ErrInvalidValue},
		{"negative rules", "templates:\n  custom:\n    - id: x\n      name: X\n      imageRules:\n        minDoubleNoCaption: -1\n", ErrInvalidValue},
		{"long default", "templates:\n  default: " + strings.Repeat("a", MaxIDLength+1) + "\n", ErrFieldTooLong},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(dir, "c"+string(rune('a'+i))+".yaml")
			writeFile(t, path, tt.content)

			_, err := LoadConfig(path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadConfig() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig_ZeroTTLAllowed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "c.yaml")
	writeFile(t, path, "cache:\n  ttl: 0s\n")
	if _, err := LoadConfig(path); err != nil {
		t.Errorf("zero TTL should disable the cache, got error %v", err)
	}
}

func TestLoadConfig_EmptyName(t *testing.T) {
	t.Parallel()

	if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
		t.Errorf("error = %v, want ErrEmptyConfigName", err)
	}
}

func TestLoadConfig_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadConfig_ByName(t *testing.T) {
	t.Run("working directory wins", func(t *testing.T) {
		wd := t.TempDir()
		xdg := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", xdg)
		t.Chdir(wd)

		writeFile(t, filepath.Join(wd, "team.yml"), "output:\n  dir: local\n")
		writeFile(t, filepath.Join(xdg, appDir, "team.yaml"), "output:\n  dir: user\n")

		cfg, err := LoadConfig("team")
		if err != nil {
			t.Fatalf("LoadConfig() error: %v", err)
		}
		if cfg.Output.Dir != "local" {
			t.Errorf("Output.Dir = %q, want local", cfg.Output.Dir)
		}
	})

	t.Run("user config directory", func(t *testing.T) {
		xdg := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", xdg)
		t.Chdir(t.TempDir())

		writeFile(t, filepath.Join(xdg, appDir, "team.yaml"), "output:\n  dir: user\n")

		cfg, err := LoadConfig("team")
		if err != nil {
			t.Fatalf("LoadConfig() error: %v", err)
		}
		if cfg.Output.Dir != "user" {
			t.Errorf("Output.Dir = %q, want user", cfg.Output.Dir)
		}
	})

	t.Run("not found lists tried paths", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		t.Chdir(t.TempDir())

		_, err := LoadConfig("missing")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		for _, want := range []string{"missing.yaml", "missing.yml", filepath.Join(appDir, "missing.yaml")} {
			if !strings.Contains(err.Error(), want) {
				t.Errorf("error %q should mention %s", err, want)
			}
		}
	})
}

func TestSearchPaths_Order(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	got := SearchPaths("team")
	want := []string{
		"team.yaml",
		"team.yml",
		filepath.Join(xdg, appDir, "team.yaml"),
		filepath.Join(xdg, appDir, "team.yml"),
	}
	if len(got) != len(want) {
		t.Fatalf("SearchPaths() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SearchPaths()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
