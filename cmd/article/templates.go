package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	article "github.com/alnah/go-article"
	"github.com/alnah/go-article/internal/yamlutil"
)

// ErrUnknownFormat is returned for an unsupported --format value.
var ErrUnknownFormat = errors.New("unknown output format")

// templateView is the YAML shape of one template.
type templateView struct {
	ID          string              `yaml:"id"`
	Name        string              `yaml:"name"`
	Description string              `yaml:"description,omitempty"`
	Policy      string              `yaml:"policy"`
	Style       string              `yaml:"style"`
	BuiltIn     bool                `yaml:"builtIn"`
	Default     bool                `yaml:"default"`
	ImageRules  *article.ImageRules `yaml:"imageRules,omitempty"`
}

// runTemplates lists the templates available to convert: the built-ins
// plus any declared in the config, with the effective default marked.
func runTemplates(args []string, env *Environment) error {
	flags, _, err := parseTemplatesFlags(args)
	if err != nil {
		return err
	}
	if flags.format != "text" && flags.format != "yaml" {
		return fmt.Errorf("%w: %q (want text or yaml)", ErrUnknownFormat, flags.format)
	}

	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	reg, err := setupRegistry(cfg)
	if err != nil {
		return err
	}

	views := templateViews(reg)
	if flags.format == "yaml" {
		out, err := yamlutil.Marshal(views)
		if err != nil {
			return fmt.Errorf("encoding templates: %w", err)
		}
		_, err = env.Stdout.Write(out)
		return err
	}

	printTemplates(env.Stdout, views, flags.common.quiet)
	return nil
}

func templateViews(reg *article.Registry) []templateView {
	defaultID := reg.DefaultID()
	list := reg.List()

	views := make([]templateView, len(list))
	for i, t := range list {
		views[i] = templateView{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			Policy:      t.Policy.String(),
			Style:       t.Style,
			BuiltIn:     t.BuiltIn,
			Default:     t.ID == defaultID,
		}
		if t.Policy.Kind == article.PolicyThreshold {
			rules := t.Policy.Rules
			views[i].ImageRules = &rules
		}
	}
	return views
}

// printTemplates writes an aligned table; quiet prints ids only.
func printTemplates(w io.Writer, views []templateView, quiet bool) {
	if quiet {
		for _, v := range views {
			fmt.Fprintln(w, v.ID)
		}
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tNAME\tPOLICY\tSTYLE\tKIND")
	for _, v := range views {
		marker := " "
		if v.Default {
			marker = "*"
		}
		kind := "custom"
		if v.BuiltIn {
			kind = "built-in"
		}
		fmt.Fprintf(tw, "%s %s\t%s\t%s\t%s\t%s\n", marker, v.ID, v.Name, v.Policy, v.Style, kind)
	}
	_ = tw.Flush()
}
