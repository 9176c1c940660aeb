package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-article/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // ARTICLE_CONFIG: config file name or path
	Template   string // ARTICLE_TEMPLATE: default template id
	OutputDir  string // ARTICLE_OUTPUT_DIR: output directory
	Timeout    string // ARTICLE_TIMEOUT: PDF export timeout
	Workers    int    // ARTICLE_WORKERS: parallel workers
}

// knownEnvVars lists valid ARTICLE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"ARTICLE_CONFIG":     true,
	"ARTICLE_TEMPLATE":   true,
	"ARTICLE_OUTPUT_DIR": true,
	"ARTICLE_TIMEOUT":    true,
	"ARTICLE_WORKERS":    true,
	"ARTICLE_CONTAINER":  true,
}

// loadEnvConfig reads configuration from environment variables.
// Invalid worker counts are ignored; the timeout is validated with the
// rest of the config.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("ARTICLE_CONFIG"),
		Template:   os.Getenv("ARTICLE_TEMPLATE"),
		OutputDir:  os.Getenv("ARTICLE_OUTPUT_DIR"),
		Timeout:    os.Getenv("ARTICLE_TIMEOUT"),
	}

	if workers := os.Getenv("ARTICLE_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized ARTICLE_* variables.
// Helps catch typos like ARTICLE_TEMPLTE.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "ARTICLE_") {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Env values win over the config file; CLI flags are applied later via
// mergeFlags, giving: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Template != "" {
		cfg.Templates.Default = env.Template
	}
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.Timeout != "" {
		cfg.PDF.Timeout = env.Timeout
	}
}
