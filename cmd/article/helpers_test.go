package main

// Notes:
// - Shared test helpers: in-memory environments, a mock Converter and a
//   mock Pool injected through Environment.NewPool.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	article "github.com/alnah/go-article"
)

// ---------------------------------------------------------------------------
// Environments
// ---------------------------------------------------------------------------

// testEnv returns an environment writing to buffers and using the real pool.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	env := &Environment{
		Stdout:  stdout,
		Stderr:  stderr,
		NewPool: newServicePool,
	}
	return env, stdout, stderr
}

// mockEnv returns an environment whose pool hands out conv.
func mockEnv(conv *mockConverter) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	env, stdout, stderr := testEnv()
	env.NewPool = func(size int, _ ...article.Option) Pool {
		return &mockPool{conv: conv, size: size}
	}
	return env, stdout, stderr
}

// ---------------------------------------------------------------------------
// Files
// ---------------------------------------------------------------------------

// sampleText is a plain-text document: a title, a heading, body text and
// an image with its caption.
const sampleText = "春季新品发布\n一、活动背景\n今年春季我们推出了三款新品，深受用户欢迎。\n[图片]新品外观\n图1 新品细节\n"

// writeFile creates dir/name (and parents) with content and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// writeConfig writes a YAML config into dir and returns its path.
func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	return writeFile(t, dir, "article.yaml", content)
}

// ---------------------------------------------------------------------------
// Mock Implementations
// ---------------------------------------------------------------------------

// mockConverter returns a fixed result and records what it was given.
type mockConverter struct {
	mu        sync.Mutex
	inputs    []article.DocumentInput
	convErr   error
	pageErr   error
	pdfErr    error
	pdfCalls  atomic.Int32
	pageCalls atomic.Int32
}

func (m *mockConverter) FromDocument(_ context.Context, in article.DocumentInput) (*article.Result, error) {
	m.mu.Lock()
	m.inputs = append(m.inputs, in)
	m.mu.Unlock()
	if m.convErr != nil {
		return nil, m.convErr
	}
	return &article.Result{
		Title:      in.Filename,
		Sections:   []article.Section{{Type: article.SectionText, Content: "body", Position: 1}},
		Markup:     "<p>body</p>",
		TemplateID: "business",
		Variant:    "standard",
	}, nil
}

func (m *mockConverter) Page(res *article.Result) (string, error) {
	m.pageCalls.Add(1)
	if m.pageErr != nil {
		return "", m.pageErr
	}
	return "<html><title>" + res.Title + "</title>" + res.Markup + "</html>", nil
}

func (m *mockConverter) ExportPDF(_ context.Context, _ *article.Result) ([]byte, error) {
	m.pdfCalls.Add(1)
	if m.pdfErr != nil {
		return nil, m.pdfErr
	}
	return []byte("%PDF-1.7 mock"), nil
}

func (m *mockConverter) filenames() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		names[i] = in.Filename
	}
	return names
}

// mockPool hands out a single shared converter.
type mockPool struct {
	conv       *mockConverter
	size       int
	acquireErr error
	acquired   atomic.Int32
	released   atomic.Int32
	closed     atomic.Bool
}

func (p *mockPool) Acquire() (Converter, error) {
	if p.acquireErr != nil {
		return nil, p.acquireErr
	}
	p.acquired.Add(1)
	return p.conv, nil
}

func (p *mockPool) Release(Converter) { p.released.Add(1) }
func (p *mockPool) Size() int         { return p.size }

func (p *mockPool) Close() error {
	p.closed.Store(true)
	return nil
}
