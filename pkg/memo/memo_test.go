package memo

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func TestGetOrComputeCachesWithinTTL(t *testing.T) {
	clock := newFakeClock()
	c := New[int](WithClock(clock.Now))

	var calls int
	compute := func(context.Context) (int, error) {
		calls++
		return 42, nil
	}

	first, err := c.GetOrCompute(context.Background(), "tt1", time.Hour, compute)
	if err != nil {
		t.Fatalf("GetOrCompute() error = %v", err)
	}
	if first.Hit {
		t.Error("first call reported a hit")
	}

	clock.Advance(59 * time.Minute)
	second, err := c.GetOrCompute(context.Background(), "tt1", time.Hour, compute)
	if err != nil {
		t.Fatalf("GetOrCompute() error = %v", err)
	}
	if !second.Hit || second.Value != 42 {
		t.Errorf("second = %+v, want hit with 42", second)
	}
	if !second.ComputedAt.Equal(first.ComputedAt) {
		t.Errorf("ComputedAt changed: %v -> %v", first.ComputedAt, second.ComputedAt)
	}
	if calls != 1 {
		t.Errorf("compute calls = %d, want 1", calls)
	}
}

func TestGetOrComputeRecomputesAfterExpiry(t *testing.T) {
	clock := newFakeClock()
	c := New[int](WithClock(clock.Now))

	var calls int
	compute := func(context.Context) (int, error) {
		calls++
		return calls, nil
	}

	if _, err := c.GetOrCompute(context.Background(), "k", time.Minute, compute); err != nil {
		t.Fatal(err)
	}
	clock.Advance(time.Minute)

	e, err := c.GetOrCompute(context.Background(), "k", time.Minute, compute)
	if err != nil {
		t.Fatal(err)
	}
	if e.Hit || e.Value != 2 {
		t.Errorf("entry = %+v, want fresh value 2", e)
	}

	e, _ = c.GetOrCompute(context.Background(), "k", time.Minute, compute)
	if !e.Hit || e.Value != 2 || calls != 2 {
		t.Errorf("entry = %+v calls = %d, want hit 2 after exactly one recompute", e, calls)
	}
}

func TestGetOrComputeSingleFlight(t *testing.T) {
	c := New[string]()

	var calls atomic.Int32
	release := make(chan struct{})
	compute := func(context.Context) (string, error) {
		calls.Add(1)
		<-release
		return "rated", nil
	}

	const callers = 32
	var wg sync.WaitGroup
	results := make([]string, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			e, err := c.GetOrCompute(context.Background(), "tt0110912", time.Hour, compute)
			results[i], errs[i] = e.Value, err
		}(i)
	}

	// Let the goroutines pile up on the flight before releasing it.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("compute calls = %d, want 1", got)
	}
	for i := range results {
		if errs[i] != nil || results[i] != "rated" {
			t.Errorf("caller %d got %q, %v", i, results[i], errs[i])
		}
	}
}

func TestGetOrComputeErrorNotCached(t *testing.T) {
	c := New[int]()
	boom := errors.New("boom")

	_, err := c.GetOrCompute(context.Background(), "k", time.Hour, func(context.Context) (int, error) {
		return 0, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want boom", err)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d after failure, want 0", c.Len())
	}

	e, err := c.GetOrCompute(context.Background(), "k", time.Hour, func(context.Context) (int, error) {
		return 7, nil
	})
	if err != nil || e.Value != 7 || e.Hit {
		t.Errorf("retry = %+v, %v; want fresh 7", e, err)
	}
}

func TestGetOrComputeDistinctKeysDoNotBlock(t *testing.T) {
	c := New[int]()
	block := make(chan struct{})
	defer close(block)

	go func() {
		_, _ = c.GetOrCompute(context.Background(), "slow", time.Hour, func(context.Context) (int, error) {
			<-block
			return 1, nil
		})
	}()
	time.Sleep(10 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = c.GetOrCompute(context.Background(), "fast", time.Hour, func(context.Context) (int, error) {
			return 2, nil
		})
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("computation for a distinct key was blocked")
	}
}

func TestGetOrComputeCallerCancelStillStores(t *testing.T) {
	c := New[int]()
	release := make(chan struct{})
	stored := make(chan struct{})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := c.GetOrCompute(ctx, "k", time.Hour, func(cctx context.Context) (int, error) {
			defer close(stored)
			<-release
			if cctx.Err() != nil {
				return 0, cctx.Err()
			}
			return 9, nil
		})
		errCh <- err
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()
	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}

	close(release)
	<-stored
	// store happens right after compute returns, inside the flight
	deadline := time.Now().Add(time.Second)
	for c.Len() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}

	e, err := c.GetOrCompute(context.Background(), "k", time.Hour, func(context.Context) (int, error) {
		t.Error("compute should not run again")
		return 0, nil
	})
	if err != nil || !e.Hit || e.Value != 9 {
		t.Errorf("entry = %+v, %v; want hit 9", e, err)
	}
}

func TestStoreSweepsExpired(t *testing.T) {
	clock := newFakeClock()
	c := New[int](WithClock(clock.Now))
	ok := func(context.Context) (int, error) { return 1, nil }

	_, _ = c.GetOrCompute(context.Background(), "a", time.Minute, ok)
	_, _ = c.GetOrCompute(context.Background(), "b", time.Minute, ok)
	clock.Advance(2 * time.Minute)
	_, _ = c.GetOrCompute(context.Background(), "c", time.Minute, ok)

	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1 after sweep", c.Len())
	}
}
