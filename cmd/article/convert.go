package main

import (
	"context"
	"errors"
	"fmt"

	article "github.com/alnah/go-article"
	"github.com/alnah/go-article/internal/config"
	"github.com/alnah/go-article/internal/hints"
)

// ErrNoInput is returned when convert gets no path argument.
var (
	ErrNoInput = errors.New("no input specified")
	ErrNoFiles = errors.New("no supported documents found")
)

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	if len(positionalArgs) == 0 {
		return ErrNoInput
	}
	inputPath := positionalArgs[0]

	files, err := discoverFiles(inputPath, cfg.Output.Dir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoFiles, inputPath)
	}

	reg, err := setupRegistry(cfg)
	if err != nil {
		return err
	}

	logger := env.logger(flags.common.verbose)
	opts := []article.Option{
		article.WithRegistry(reg),
		article.WithLogger(logger),
	}
	if d := cfg.TimeoutDuration(); d > 0 {
		opts = append(opts, article.WithTimeout(d))
	}
	if ttl := cfg.CacheTTL(); ttl > 0 {
		opts = append(opts, article.WithResultCache(ttl))
	}

	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	size := article.ResolvePoolSize(workers)
	logger.Debug("starting conversion", "files", len(files), "pool", size, "pdf", cfg.Output.PDF)

	pool := env.NewPool(size, opts...)
	defer pool.Close()

	results := convertBatch(ctx, pool, files, batchParams{pdf: cfg.Output.PDF})

	failedCount := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%d of %d conversion(s) failed: %w", failedCount, len(results), firstError(results))
	}

	return nil
}

// loadConfig loads the config named by the flag, then ARTICLE_CONFIG.
// Without either, the defaults apply.
func loadConfig(flagConfig string, envCfg *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.template != "" {
		cfg.Templates.Default = flags.template
	}
	if flags.output.dir != "" {
		cfg.Output.Dir = flags.output.dir
	}
	if flags.output.pdf {
		cfg.Output.PDF = true
	}
	if flags.timeout != "" {
		cfg.PDF.Timeout = flags.timeout
	}
}

// setupRegistry builds the registry shared by every pooled service: the
// built-ins, then the custom templates from cfg, then the default.
func setupRegistry(cfg *config.Config) (*article.Registry, error) {
	reg := article.NewRegistry()

	admin, err := article.New(article.WithRegistry(reg))
	if err != nil {
		return nil, err
	}
	defer admin.Close()

	for _, ct := range cfg.Templates.Custom {
		tc := article.TemplateConfig{
			ID:          ct.ID,
			Name:        ct.Name,
			Description: ct.Description,
			BaseID:      ct.Base,
		}
		if ct.ImageRules != nil {
			tc.ImageRules = &article.ImageRules{
				MinDoubleNoCaption:   ct.ImageRules.MinDoubleNoCaption,
				MinDoubleWithCaption: ct.ImageRules.MinDoubleWithCaption,
			}
		}
		if _, err := admin.CreateTemplate(tc); err != nil {
			return nil, fmt.Errorf("registering template %q: %w", ct.ID, err)
		}
	}

	if id := cfg.Templates.Default; id != "" {
		if err := admin.SetDefaultTemplate(id); err != nil {
			return nil, fmt.Errorf("selecting template: %w%s", err, hints.ForTemplateNotFound(templateIDs(reg)))
		}
	}

	return reg, nil
}

func templateIDs(reg *article.Registry) []string {
	list := reg.List()
	ids := make([]string, len(list))
	for i, t := range list {
		ids[i] = t.ID
	}
	return ids
}
