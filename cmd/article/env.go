package main

import (
	"io"
	"log/slog"
	"os"

	article "github.com/alnah/go-article"
)

// Environment holds injectable dependencies for testability:
// the output streams and the service pool factory.
type Environment struct {
	Stdout  io.Writer
	Stderr  io.Writer
	NewPool func(size int, opts ...article.Option) Pool
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		NewPool: newServicePool,
	}
}

// logger returns a Debug logger on Stderr when verbose, else a discarding one.
func (e *Environment) logger(verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(e.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
