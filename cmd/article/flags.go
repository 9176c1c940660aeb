package main

import (
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// ErrInvalidFlags wraps every flag parsing error. flag.ErrHelp stays
// reachable through it.
var ErrInvalidFlags = errors.New("invalid flags")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// outputFlags holds output mode flags.
type outputFlags struct {
	dir string // output directory
	pdf bool   // also write a PDF next to the HTML
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common   commonFlags
	output   outputFlags
	template string
	workers  int
	timeout  string
}

// templatesFlags holds flags for the templates command.
type templatesFlags struct {
	common commonFlags
	format string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and timing")
}

// addOutputFlags adds output mode flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.dir, "output", "o", "", "output directory (default: next to each input)")
	fs.BoolVar(&f.pdf, "pdf", false, "also export each article to PDF")
}

// newConvertFlagSet registers every convert flag on a fresh FlagSet.
func newConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)

	fs.StringVarP(&f.template, "template", "T", "", "template id (default: config or business)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF export timeout (e.g., 30s, 2m)")

	addOutputFlags(fs, &f.output)
	addCommonFlags(fs, &f.common)

	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet(f)
	fs.Usage = func() { printConvertUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidFlags, err)
	}

	return f, fs.Args(), nil
}

// parseTemplatesFlags parses templates command flags.
func parseTemplatesFlags(args []string) (*templatesFlags, []string, error) {
	fs := flag.NewFlagSet("templates", flag.ContinueOnError)
	f := &templatesFlags{}

	fs.StringVarP(&f.format, "format", "f", "text", "output format: text, yaml")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printTemplatesUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidFlags, err)
	}

	return f, fs.Args(), nil
}
