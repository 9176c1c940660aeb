package main

// Notes:
// - runDoctorCmd JSON output is checked for shape only: Chrome detection
//   depends on the machine running the tests.
// - printDoctorReport and grading are checked on hand-built reports.
// - isContainer and configArea read environment variables or files; the
//   env-dependent tests cannot use t.Parallel().
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRunDoctorCmd - Command output
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_JSONOutput(t *testing.T) {
	t.Setenv("ARTICLE_CONFIG", "")
	env, stdout, _ := testEnv()

	code := runDoctorCmd([]string{"--json"}, env)

	var report doctorReport
	if err := json.Unmarshal(stdout.Bytes(), &report); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, stdout.String())
	}
	if want := runtime.GOOS + "/" + runtime.GOARCH; report.Platform != want {
		t.Errorf("Platform = %q, want %q", report.Platform, want)
	}
	var names []string
	for _, a := range report.Areas {
		names = append(names, a.Name)
	}
	if got := strings.Join(names, ","); got != "Chrome/Chromium (PDF export),Environment,Templates,Inputs,System" {
		t.Errorf("areas = %s", got)
	}
	switch report.Status {
	case "errors":
		if code != ExitGeneral {
			t.Errorf("exit code = %d for errors status, want %d", code, ExitGeneral)
		}
	case "ready", "warnings":
		if code != ExitSuccess {
			t.Errorf("exit code = %d for %s status, want %d", code, report.Status, ExitSuccess)
		}
	default:
		t.Errorf("status = %q, want ready/warnings/errors", report.Status)
	}
}

func TestRunDoctorCmd_BadFlag(t *testing.T) {
	t.Parallel()
	env, _, _ := testEnv()

	if code := runDoctorCmd([]string{"--yaml"}, env); code != ExitUsage {
		t.Errorf("runDoctorCmd(--yaml) = %d, want %d", code, ExitUsage)
	}
}

// ---------------------------------------------------------------------------
// TestIsContainer - Container detection
// ---------------------------------------------------------------------------

func TestIsContainer(t *testing.T) {
	t.Run("explicit variable", func(t *testing.T) {
		t.Setenv("ARTICLE_CONTAINER", "1")

		ok, hint := isContainer()
		if !ok || hint != "ARTICLE_CONTAINER=1" {
			t.Errorf("isContainer() = (%v, %q), want (true, ARTICLE_CONTAINER=1)", ok, hint)
		}
	})

	t.Run("kubernetes", func(t *testing.T) {
		t.Setenv("ARTICLE_CONTAINER", "")
		t.Setenv("container", "")
		t.Setenv("KUBERNETES_SERVICE_HOST", "10.0.0.1")

		ok, hint := isContainer()
		if !ok {
			t.Fatal("isContainer() = false, want true")
		}
		// /.dockerenv is checked first when present.
		if hint != "KUBERNETES_SERVICE_HOST" && hint != "/.dockerenv" {
			t.Errorf("hint = %q", hint)
		}
	})
}

// ---------------------------------------------------------------------------
// TestConfigArea - Config and template checks
// ---------------------------------------------------------------------------

func TestConfigArea(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	valid := writeFile(t, dir, "valid.yaml", `templates:
  default: weekly
  custom:
    - id: weekly
      name: Weekly
      base: simple
`)
	badDefault := writeFile(t, dir, "bad.yaml", "templates:\n  default: magazine\n")

	tests := []struct {
		name      string
		config    string
		wantLevel checkLevel
		wantText  string
	}{
		{"unset", "", levelOK, "built-in templates only"},
		{"valid", valid, levelOK, "1 custom template(s), default weekly"},
		{"unknown default", badDefault, levelError, "template not found"},
		{"missing file", filepath.Join(dir, "gone.yaml"), levelError, "config file not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			area := configArea(tt.config)

			if len(area.Checks) != 1 {
				t.Fatalf("checks = %+v, want one", area.Checks)
			}
			c := area.Checks[0]
			if c.Level != tt.wantLevel || !strings.Contains(c.Message, tt.wantText) {
				t.Errorf("check = %+v, want %s containing %q", c, tt.wantLevel, tt.wantText)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestPrintDoctorReport - Human-readable output
// ---------------------------------------------------------------------------

func TestPrintDoctorReport(t *testing.T) {
	t.Parallel()
	newReport := func(levels ...checkLevel) *doctorReport {
		area := doctorArea{Name: "System"}
		for _, l := range levels {
			area.add(l, "check %s", l)
		}
		r := &doctorReport{Areas: []doctorArea{area}}
		r.grade()
		return r
	}

	tests := []struct {
		name   string
		report *doctorReport
		status string
		want   []string
	}{
		{"ready", newReport(levelOK), "ready", []string{"System", "  [OK] check ok", "Status: Ready"}},
		{"warnings", newReport(levelOK, levelWarn), "warnings", []string{"[WARN] check warn", "Status: Ready with 1 warning(s)"}},
		{"errors", newReport(levelWarn, levelError), "errors", []string{"[ERROR] check error", "Status: Not ready (1 error(s) above)"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.report.Status != tt.status {
				t.Errorf("Status = %q, want %q", tt.report.Status, tt.status)
			}
			var buf bytes.Buffer
			printDoctorReport(&buf, tt.report)
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output missing %q:\n%s", want, buf.String())
				}
			}
		})
	}
}
