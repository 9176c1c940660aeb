package main

import (
	"context"
	"fmt"

	article "github.com/alnah/go-article"
)

// Converter is the part of article.Service the CLI needs.
type Converter interface {
	FromDocument(ctx context.Context, in article.DocumentInput) (*article.Result, error)
	Page(res *article.Result) (string, error)
	ExportPDF(ctx context.Context, res *article.Result) ([]byte, error)
}

// Compile-time interface implementation check.
var _ Converter = (*article.Service)(nil)

// Pool abstracts service pool operations for testability.
type Pool interface {
	Acquire() (Converter, error)
	Release(Converter)
	Size() int
	Close() error
}

// servicePool adapts article.ServicePool to Pool.
type servicePool struct {
	pool *article.ServicePool
}

// Compile-time check that servicePool implements Pool.
var _ Pool = (*servicePool)(nil)

// newServicePool is the production Environment.NewPool.
func newServicePool(size int, opts ...article.Option) Pool {
	return &servicePool{pool: article.NewServicePool(size, opts...)}
}

func (p *servicePool) Acquire() (Converter, error) {
	svc, err := p.pool.Acquire()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceInit, err)
	}
	return svc, nil
}

func (p *servicePool) Release(c Converter) {
	if svc, ok := c.(*article.Service); ok {
		p.pool.Release(svc)
	}
}

func (p *servicePool) Size() int    { return p.pool.Size() }
func (p *servicePool) Close() error { return p.pool.Close() }
