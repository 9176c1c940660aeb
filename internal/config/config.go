package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-article/internal/fileutil"
	"github.com/alnah/go-article/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxIDLength          = 64
	MaxNameLength        = 100
	MaxDescriptionLength = 500
	MaxPathLength        = 4096
	MaxCustomTemplates   = 64
)

// appDir is the directory searched under os.UserConfigDir.
const appDir = "go-article"

// Config holds everything the CLI reads from a YAML file.
type Config struct {
	Templates TemplatesConfig `yaml:"templates"`
	Output    OutputConfig    `yaml:"output"`
	PDF       PDFConfig       `yaml:"pdf"`
	Cache     CacheConfig     `yaml:"cache"`
}

// TemplatesConfig selects the default template and declares custom ones.
type TemplatesConfig struct {
	Default string           `yaml:"default"` // empty = registry default (business)
	Custom  []CustomTemplate `yaml:"custom"`
}

// CustomTemplate declares a template derived from a base template.
type CustomTemplate struct {
	ID          string      `yaml:"id"`
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Base        string      `yaml:"base"`       // empty = current default
	ImageRules  *ImageRules `yaml:"imageRules"` // nil = inherit base policy
}

// ImageRules are the image-count thresholds of a custom layout policy.
type ImageRules struct {
	MinDoubleNoCaption   int `yaml:"minDoubleNoCaption"`
	MinDoubleWithCaption int `yaml:"minDoubleWithCaption"`
}

// OutputConfig defines where converted files go.
type OutputConfig struct {
	Dir string `yaml:"dir"` // empty = next to the source
	PDF bool   `yaml:"pdf"` // also write a PDF
}

// PDFConfig defines PDF export options.
type PDFConfig struct {
	Timeout string `yaml:"timeout"` // Go duration, e.g. "45s"
}

// CacheConfig defines the result cache.
type CacheConfig struct {
	TTL string `yaml:"ttl"` // Go duration; empty or "0" disables the cache
}

// DefaultConfig returns an empty configuration: built-in templates only,
// HTML output next to the source, no cache.
func DefaultConfig() *Config {
	return &Config{}
}

// TimeoutDuration returns the parsed PDF timeout, or 0 when unset.
func (c *Config) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.PDF.Timeout)
	return d
}

// CacheTTL returns the parsed cache TTL, or 0 when unset.
func (c *Config) CacheTTL() time.Duration {
	d, _ := time.ParseDuration(c.Cache.TTL)
	return d
}

// Validate checks lengths, durations and custom template declarations.
// LoadConfig calls it; callers building a Config by hand should too.
func (c *Config) Validate() error {
	if err := validateFieldLength("templates.default", c.Templates.Default, MaxIDLength); err != nil {
		return err
	}
	if len(c.Templates.Custom) > MaxCustomTemplates {
		return fmt.Errorf("%w: templates.custom has %d entries (max %d)", ErrInvalidValue, len(c.Templates.Custom), MaxCustomTemplates)
	}

	seen := make(map[string]bool, len(c.Templates.Custom))
	for i, ct := range c.Templates.Custom {
		field := fmt.Sprintf("templates.custom[%d]", i)
		if err := ct.validate(field); err != nil {
			return err
		}
		if seen[ct.ID] {
			return fmt.Errorf("%w: %s.id: duplicate %q", ErrInvalidValue, field, ct.ID)
		}
		seen[ct.ID] = true
	}

	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateDuration("pdf.timeout", c.PDF.Timeout, false); err != nil {
		return err
	}
	return validateDuration("cache.ttl", c.Cache.TTL, true)
}

func (ct CustomTemplate) validate(field string) error {
	if strings.TrimSpace(ct.ID) == "" {
		return fmt.Errorf("%w: %s.id: required", ErrInvalidValue, field)
	}
	if strings.ContainsAny(ct.ID, " \t\n/\\") {
		return fmt.Errorf("%w: %s.id: %q contains whitespace or a path separator", ErrInvalidValue, field, ct.ID)
	}
	if strings.TrimSpace(ct.Name) == "" {
		return fmt.Errorf("%w: %s.name: required", ErrInvalidValue, field)
	}
	if err := validateFieldLength(field+".id", ct.ID, MaxIDLength); err != nil {
		return err
	}
	if err := validateFieldLength(field+".name", ct.Name, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength(field+".description", ct.Description, MaxDescriptionLength); err != nil {
		return err
	}
	if err := validateFieldLength(field+".base", ct.Base, MaxIDLength); err != nil {
		return err
	}
	if r := ct.ImageRules; r != nil && (r.MinDoubleNoCaption < 0 || r.MinDoubleWithCaption < 0) {
		return fmt.Errorf("%w: %s.imageRules: thresholds must be non-negative", ErrInvalidValue, field)
	}
	return nil
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateDuration accepts an empty value. Zero is only allowed when
// allowZero is set.
func validateDuration(fieldName, value string, allowZero bool) error {
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidValue, fieldName, err)
	}
	if d < 0 || (d == 0 && !allowZero) {
		return fmt.Errorf("%w: %s: must be positive, got %s", ErrInvalidValue, fieldName, value)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// A value containing a path separator is read as-is; a bare name is looked
// up by SearchPaths. A missing file is an error, never a silent default.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SearchPaths lists the files tried for a config name, in lookup order:
// the working directory first, then the user config directory.
func SearchPaths(name string) []string {
	exts := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(exts)*2)
	for _, ext := range exts {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range exts {
			paths = append(paths, filepath.Join(dir, appDir, name+ext))
		}
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
