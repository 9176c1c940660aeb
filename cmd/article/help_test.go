package main

// Notes:
// - runHelp: every topic prints to stdout; unknown topics print the main
//   usage to stderr and fail with ErrUnknownCommand.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"strings"
	"testing"
)

func TestRunHelp(t *testing.T) {
	t.Parallel()
	tests := []struct {
		topic string
		want  string
	}{
		{"", "Commands:"},
		{"convert", "--template"},
		{"templates", "--format"},
		{"doctor", "article doctor [--json]"},
		{"version", "article version"},
		{"help", "article help [command]"},
	}
	for _, tt := range tests {
		t.Run("topic "+tt.topic, func(t *testing.T) {
			t.Parallel()
			env, stdout, _ := testEnv()
			var args []string
			if tt.topic != "" {
				args = []string{tt.topic}
			}

			if err := runHelp(args, env); err != nil {
				t.Fatalf("runHelp(%v) error = %v", args, err)
			}
			if !strings.Contains(stdout.String(), tt.want) {
				t.Errorf("output = %q, want %q", stdout.String(), tt.want)
			}
		})
	}
}

func TestRunHelp_UnknownTopic(t *testing.T) {
	t.Parallel()
	env, stdout, stderr := testEnv()

	err := runHelp([]string{"publish"}, env)

	if !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("runHelp() error = %v, want ErrUnknownCommand", err)
	}
	if stdout.Len() != 0 || !strings.Contains(stderr.String(), "Usage: article") {
		t.Errorf("stdout = %q, stderr = %q", stdout.String(), stderr.String())
	}
}

func TestPrintConvertUsage_ListsEnvironment(t *testing.T) {
	t.Parallel()
	env, stdout, _ := testEnv()

	printConvertUsage(env.Stdout)

	for name := range knownEnvVars {
		if name == "ARTICLE_CONTAINER" {
			continue
		}
		if !strings.Contains(stdout.String(), name) {
			t.Errorf("convert usage does not mention %s", name)
		}
	}
}
