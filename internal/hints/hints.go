// Package hints builds the short follow-up suggestions the CLI appends to
// error messages. Every hint is rendered as "\n  hint: <text>".
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-article/internal/fileutil"
)

// IsInContainer reports whether the process runs inside a container.
// Docker creates /.dockerenv in every container.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect suggests the rod environment variables that usually fix
// a failed Chrome launch in CI or containers.
func ForBrowserConnect() string {
	var out []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		out = append(out, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		out = append(out, "set ROD_BROWSER_BIN to use an installed Chrome")
	}
	out = append(out, "or drop --pdf to write HTML only")

	return formatAll(out)
}

// ForTimeout suggests a longer PDF timeout.
func ForTimeout() string {
	return format("long articles may need a larger --timeout")
}

// ForConfigNotFound suggests --config, or creating the user config file
// when one of the searched paths is under the user config directory.
func ForConfigNotFound(searched []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searched {
		if strings.Contains(p, "/go-article/") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForOutputDirectory is shown when the output directory cannot be created.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForTemplateNotFound lists the template ids the user can pick from.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available templates: " + strings.Join(available, ", "))
}

// ForUnreadableDocument lists the accepted input formats.
func ForUnreadableDocument() string {
	return format("supported inputs: .docx, .md, .html, .txt (UTF-8)")
}

// ForProtectedTemplate explains why a built-in template cannot be removed.
func ForProtectedTemplate() string {
	return format("built-in templates cannot be removed; create a custom template instead")
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

func formatAll(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return format(strings.Join(list, "; "))
}
