package article

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"
	"time"
)

// Compile-time interface check.
var _ interface {
	Acquire() (*Service, error)
	Release(*Service)
	Size() int
	Close() error
} = (*ServicePool)(nil)

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	gomaxprocs := runtime.GOMAXPROCS(0)

	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{
			name:    "explicit takes priority",
			workers: 4,
			want:    4,
		},
		{
			name:    "explicit=1 for sequential",
			workers: 1,
			want:    1,
		},
		{
			name:    "explicit can exceed max",
			workers: 100,
			want:    100,
		},
		{
			name:    "zero uses auto calculation",
			workers: 0,
			want:    min(max(gomaxprocs/cpuDivisor, MinPoolSize), MaxPoolSize),
		},
		{
			name:    "negative uses auto calculation",
			workers: -5,
			want:    min(max(gomaxprocs/cpuDivisor, MinPoolSize), MaxPoolSize),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ResolvePoolSize(tt.workers)
			if got != tt.want {
				t.Errorf("ResolvePoolSize(%d) = %d, want %d", tt.workers, got, tt.want)
			}
		})
	}
}

func mustAcquire(t *testing.T, pool *ServicePool) *Service {
	t.Helper()
	svc, err := pool.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}
	if svc == nil {
		t.Fatal("Acquire() returned nil")
	}
	return svc
}

func TestServicePool_AcquireRelease(t *testing.T) {
	t.Parallel()

	pool := NewServicePool(2)
	defer pool.Close()

	svc1 := mustAcquire(t, pool)
	svc2 := mustAcquire(t, pool)

	if svc1 == svc2 {
		t.Error("expected different service instances")
	}

	// Release and re-acquire
	pool.Release(svc1)
	svc3 := mustAcquire(t, pool)

	if svc3 != svc1 {
		t.Error("expected to get back released service")
	}

	pool.Release(svc2)
	pool.Release(svc3)
}

func TestServicePool_Size(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		size int
		want int
	}{
		{"size 1", 1, 1},
		{"size 4", 4, 4},
		{"size 0 becomes 1", 0, 1},
		{"negative becomes 1", -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pool := NewServicePool(tt.size)
			defer pool.Close()

			if got := pool.Size(); got != tt.want {
				t.Errorf("Size() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestServicePool_SharedRegistry(t *testing.T) {
	t.Parallel()

	pool := NewServicePool(2)
	defer pool.Close()

	svc1 := mustAcquire(t, pool)
	svc2 := mustAcquire(t, pool)
	defer pool.Release(svc1)
	defer pool.Release(svc2)

	if _, err := svc1.CreateTemplate(TemplateConfig{ID: "team", Name: "Team"}); err != nil {
		t.Fatalf("CreateTemplate() error: %v", err)
	}

	res, err := svc2.FromDocument(context.Background(), DocumentInput{
		Data:       []byte(sampleDocument),
		TemplateID: "team",
	})
	if err != nil {
		t.Fatalf("FromDocument() on second service error: %v", err)
	}
	if res.TemplateID != "team" {
		t.Errorf("TemplateID = %q, want team", res.TemplateID)
	}
	if _, err := pool.Registry().Get("team"); err != nil {
		t.Errorf("pool registry should hold the new template: %v", err)
	}
}

func TestServicePool_ExplicitRegistry(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	pool := NewServicePool(1, WithRegistry(reg))
	defer pool.Close()

	if pool.Registry() != reg {
		t.Fatal("Registry() should return the registry passed in")
	}

	svc := mustAcquire(t, pool)
	defer pool.Release(svc)
	if svc.Registry() != reg {
		t.Error("pooled service should use the registry passed in")
	}
}

func TestServicePool_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	pool := NewServicePool(4)
	defer pool.Close()

	var wg sync.WaitGroup
	iterations := 20

	for range iterations {
		wg.Go(func() {
			svc, err := pool.Acquire()
			if err != nil {
				t.Errorf("Acquire() error: %v", err)
				return
			}
			time.Sleep(5 * time.Millisecond) // Simulate work
			pool.Release(svc)
		})
	}

	// Should complete without deadlock
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	timer := time.NewTimer(5 * time.Second)
	defer timer.Stop()

	select {
	case <-done:
	case <-timer.C:
		t.Fatal("concurrent access test timed out - possible deadlock")
	}
}

// TestServicePool_HighContention verifies the pool remains deadlock-free under
// heavy concurrent access: 50 goroutines share 2 services.
func TestServicePool_HighContention(t *testing.T) {
	t.Parallel()

	pool := NewServicePool(2)
	defer pool.Close()

	var wg sync.WaitGroup
	goroutines := 50
	iterations := 10

	for range goroutines {
		wg.Go(func() {
			for j := range iterations {
				svc, err := pool.Acquire()
				if err != nil {
					t.Errorf("Acquire() error: %v", err)
					return
				}
				time.Sleep(time.Duration(j%3) * time.Millisecond)
				pool.Release(svc)
			}
		})
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	timer := time.NewTimer(30 * time.Second)
	defer timer.Stop()

	select {
	case <-done:
	case <-timer.C:
		t.Fatal("high contention test timed out - possible deadlock")
	}
}

func TestServicePool_AllServicesAcquired(t *testing.T) {
	t.Parallel()

	pool := NewServicePool(3)
	defer pool.Close()

	services := make([]*Service, 3)
	for i := range services {
		services[i] = mustAcquire(t, pool)
	}

	seen := make(map[*Service]bool)
	for _, svc := range services {
		if seen[svc] {
			t.Error("got duplicate service from pool")
		}
		seen[svc] = true
	}

	for _, svc := range services {
		pool.Release(svc)
	}
}

func TestServicePool_Close(t *testing.T) {
	t.Parallel()

	t.Run("release after close is a no-op", func(t *testing.T) {
		t.Parallel()

		pool := NewServicePool(2)
		svc := mustAcquire(t, pool)
		if err := pool.Close(); err != nil {
			t.Errorf("Close() error: %v", err)
		}
		pool.Release(svc)
	})

	t.Run("double close", func(t *testing.T) {
		t.Parallel()

		pool := NewServicePool(1)
		if err := pool.Close(); err != nil {
			t.Errorf("first Close() error: %v", err)
		}
		if err := pool.Close(); err != nil {
			t.Errorf("second Close() error: %v", err)
		}
	})

	t.Run("acquire after close fails", func(t *testing.T) {
		t.Parallel()

		pool := NewServicePool(1)
		_ = pool.Close()

		svc, err := pool.Acquire()
		if !errors.Is(err, errPoolClosed) {
			t.Errorf("Acquire() error = %v, want errPoolClosed", err)
		}
		if svc != nil {
			t.Error("Acquire() after close should return nil")
		}
	})

	t.Run("acquire after close ignores released services", func(t *testing.T) {
		t.Parallel()

		pool := NewServicePool(1)
		pool.Release(mustAcquire(t, pool))
		_ = pool.Close()

		if _, err := pool.Acquire(); !errors.Is(err, errPoolClosed) {
			t.Errorf("Acquire() error = %v, want errPoolClosed", err)
		}
	})

	t.Run("release nil is ignored", func(t *testing.T) {
		t.Parallel()

		pool := NewServicePool(1)
		defer pool.Close()
		pool.Release(nil)
	})
}
