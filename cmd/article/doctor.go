package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/go-rod/rod/lib/launcher"
	flag "github.com/spf13/pflag"

	"github.com/alnah/go-article/internal/config"
	"github.com/alnah/go-article/internal/extract"
)

// checkLevel grades a single doctor finding.
type checkLevel string

const (
	levelOK    checkLevel = "ok"
	levelWarn  checkLevel = "warn"
	levelError checkLevel = "error"
)

// doctorCheck is one line of the report.
type doctorCheck struct {
	Level   checkLevel `json:"level"`
	Message string     `json:"message"`
}

// doctorArea groups the checks of one concern.
type doctorArea struct {
	Name   string        `json:"name"`
	Checks []doctorCheck `json:"checks"`
}

func (a *doctorArea) add(level checkLevel, format string, args ...any) {
	a.Checks = append(a.Checks, doctorCheck{Level: level, Message: fmt.Sprintf(format, args...)})
}

// doctorReport is everything the doctor command found.
type doctorReport struct {
	Status   string       `json:"status"` // ready, warnings, errors
	Platform string       `json:"platform"`
	Browser  string       `json:"browser,omitempty"`
	Areas    []doctorArea `json:"areas"`
}

// count returns how many checks have the given level.
func (r *doctorReport) count(level checkLevel) int {
	n := 0
	for _, a := range r.Areas {
		for _, c := range a.Checks {
			if c.Level == level {
				n++
			}
		}
	}
	return n
}

func (r *doctorReport) grade() {
	switch {
	case r.count(levelError) > 0:
		r.Status = "errors"
	case r.count(levelWarn) > 0:
		r.Status = "warnings"
	default:
		r.Status = "ready"
	}
}

// runDoctorCmd runs every check and returns an exit code: 0 when usable
// (warnings included), 1 when something blocks conversion.
// Only PDF export needs Chrome, so a missing browser is a warning.
func runDoctorCmd(args []string, env *Environment) int {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	jsonOutput := fs.Bool("json", false, "print the report as JSON")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		return ExitUsage
	}

	report := diagnose()

	if *jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(report)
	} else {
		printDoctorReport(env.Stdout, report)
	}

	if report.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// diagnose performs all checks.
func diagnose() *doctorReport {
	browser, browserPath := browserArea()
	report := &doctorReport{
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
		Browser:  browserPath,
		Areas: []doctorArea{
			browser,
			environmentArea(),
			configArea(os.Getenv("ARTICLE_CONFIG")),
			inputsArea(),
			systemArea(),
		},
	}
	report.grade()
	return report
}

// browserArea finds the Chrome that PDF export would launch.
func browserArea() (doctorArea, string) {
	area := doctorArea{Name: "Chrome/Chromium (PDF export)"}

	path := os.Getenv("ROD_BROWSER_BIN")
	if path == "" {
		var found bool
		if path, found = launcher.LookPath(); !found {
			area.add(levelWarn, "not found; --pdf downloads one on first use, or set ROD_BROWSER_BIN")
			return area, ""
		}
	}
	if _, err := os.Stat(path); err != nil {
		area.add(levelError, "not found at %s", path)
		return area, ""
	}
	area.add(levelOK, "found at %s", path)

	// #nosec G204 -- path comes from ROD_BROWSER_BIN or rod's lookup
	if out, err := exec.Command(path, "--version").Output(); err == nil {
		area.add(levelOK, "version: %s", strings.TrimSpace(string(out)))
	} else {
		area.add(levelWarn, "version unknown: %v", err)
	}

	if os.Getenv("ROD_NO_SANDBOX") == "1" {
		area.add(levelOK, "sandbox: disabled (ROD_NO_SANDBOX=1)")
	} else {
		area.add(levelOK, "sandbox: enabled")
	}
	return area, path
}

// environmentArea reports container and CI detection. Both usually need
// the Chrome sandbox turned off.
func environmentArea() doctorArea {
	area := doctorArea{Name: "Environment"}
	area.add(levelOK, "platform: %s/%s", runtime.GOOS, runtime.GOARCH)

	container, hint := isContainer()
	if container {
		area.add(levelOK, "container: detected (%s)", hint)
	}
	ci := isCI()
	if ci {
		area.add(levelOK, "CI: detected")
	}
	if (container || ci) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		area.add(levelWarn, "container/CI without ROD_NO_SANDBOX=1; PDF export may fail to launch Chrome")
	}
	return area
}

// isContainer detects if running in a container environment.
// The second value names the signal that matched.
func isContainer() (bool, string) {
	if os.Getenv("ARTICLE_CONTAINER") == "1" {
		return true, "ARTICLE_CONTAINER=1"
	}
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true, "/.dockerenv"
	}
	if v := os.Getenv("container"); v != "" {
		return true, "container=" + v
	}
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

func isCI() bool {
	for _, v := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"} {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// configArea loads the named config and registers its templates the way
// convert would. An empty name means built-in templates only.
func configArea(name string) doctorArea {
	area := doctorArea{Name: "Templates"}
	if name == "" {
		area.add(levelOK, "ARTICLE_CONFIG not set; built-in templates only")
		return area
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		area.add(levelError, "config %s: %v", name, err)
		return area
	}
	reg, err := setupRegistry(cfg)
	if err != nil {
		area.add(levelError, "config %s: %v", name, err)
		return area
	}
	area.add(levelOK, "config %s: %d custom template(s), default %s",
		name, len(cfg.Templates.Custom), reg.DefaultID())
	return area
}

func inputsArea() doctorArea {
	area := doctorArea{Name: "Inputs"}
	area.add(levelOK, "formats: %s", strings.Join(extract.SupportedExtensions(), ", "))
	return area
}

// systemArea checks the temp directory PDF export renders through.
func systemArea() doctorArea {
	area := doctorArea{Name: "System"}
	f, err := os.CreateTemp("", "article-doctor-*")
	if err != nil {
		area.add(levelError, "temp directory not writable: %s", os.TempDir())
		return area
	}
	_ = f.Close()
	_ = os.Remove(f.Name())
	area.add(levelOK, "temp directory: writable")
	return area
}

var levelTags = map[checkLevel]string{
	levelOK:    "[OK]",
	levelWarn:  "[WARN]",
	levelError: "[ERROR]",
}

// printDoctorReport writes the human-readable report.
func printDoctorReport(w io.Writer, r *doctorReport) {
	fmt.Fprintln(w, "article doctor")
	fmt.Fprintln(w)

	for _, a := range r.Areas {
		fmt.Fprintln(w, a.Name)
		for _, c := range a.Checks {
			fmt.Fprintf(w, "  %s %s\n", levelTags[c.Level], c.Message)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready")
	case "warnings":
		fmt.Fprintf(w, "Status: Ready with %d warning(s)\n", r.count(levelWarn))
	case "errors":
		fmt.Fprintf(w, "Status: Not ready (%d error(s) above)\n", r.count(levelError))
	}
}
