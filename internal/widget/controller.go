package widget

import (
	"context"
	"log"
	"sync"
	"time"
)

// FetchFunc loads one widget's data. force is true for manual refreshes,
// letting fetchers bypass or invalidate their caches.
type FetchFunc[T any] func(ctx context.Context, force bool) (T, error)

// Widget is the registry-facing surface of a Controller, independent of
// its data type.
type Widget interface {
	Name() string
	Start(ctx context.Context)
	Stop()
	RefreshNow()
	Status() Status
}

// Controller drives one widget through repeated fetch cycles: an
// immediate cycle on Start, a recurring timer cycle, and manual cycles
// via RefreshNow. A cycle sets loading, runs the fetch, and applies the
// result; on failure the error message is recorded and the previous data
// kept. A tick or manual request while a cycle is in flight is dropped,
// and results arriving after Stop are discarded.
type Controller[T any] struct {
	name     string
	interval time.Duration
	fetch    FetchFunc[T]

	mu       sync.Mutex
	data     T
	hasData  bool
	loading  bool
	errMsg   string
	updated  time.Time
	inFlight bool
	gen      uint64
	started  bool
	stopped  bool
	runCtx   context.Context
	cancel   context.CancelFunc
}

func NewController[T any](name string, interval time.Duration, fetch FetchFunc[T]) *Controller[T] {
	return &Controller[T]{
		name:     name,
		interval: interval,
		fetch:    fetch,
	}
}

func (c *Controller[T]) Name() string { return c.name }

// Start begins the first fetch cycle immediately, then arms the
// recurring timer. Safe to call once; later calls are no-ops.
func (c *Controller[T]) Start(ctx context.Context) {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return
	}
	c.started = true
	c.runCtx, c.cancel = context.WithCancel(ctx)
	runCtx := c.runCtx
	c.mu.Unlock()

	go c.loop(runCtx)
}

func (c *Controller[T]) loop(ctx context.Context) {
	c.runCycle(ctx, false)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.runCycle(ctx, false)
		}
	}
}

// RefreshNow begins a fetch cycle outside the timer schedule with
// force=true. The timer is not reset. Dropped if a cycle is already in
// flight or the controller was never started.
func (c *Controller[T]) RefreshNow() {
	c.mu.Lock()
	ctx := c.runCtx
	ok := c.started && !c.stopped
	c.mu.Unlock()
	if !ok {
		return
	}
	go c.runCycle(ctx, true)
}

// Stop cancels the timer and invalidates any in-flight cycle so a late
// result cannot write to torn-down state.
func (c *Controller[T]) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return
	}
	c.stopped = true
	c.gen++
	if c.cancel != nil {
		c.cancel()
	}
}

func (c *Controller[T]) runCycle(ctx context.Context, force bool) {
	c.mu.Lock()
	if c.stopped || c.inFlight {
		c.mu.Unlock()
		return
	}
	c.inFlight = true
	c.gen++
	gen := c.gen
	c.loading = true
	c.errMsg = ""
	c.mu.Unlock()

	data, err := c.fetch(ctx, force)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		// Superseded by Stop while the fetch was in flight.
		return
	}
	c.inFlight = false
	c.loading = false
	if err != nil {
		c.errMsg = err.Error()
		log.Printf("widget %s: fetch cycle failed: %v", c.name, err)
		return
	}
	c.data = data
	c.hasData = true
	c.updated = time.Now()
}

// Status returns a copy of the current refresh state.
func (c *Controller[T]) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := Status{
		Name:    c.name,
		Loading: c.loading,
		Error:   c.errMsg,
	}
	if c.hasData {
		st.Data = c.data
		updated := c.updated
		st.LastUpdated = &updated
		st.LastUpdatedLabel = LastUpdatedLabel(time.Now(), updated)
	}
	return st
}
