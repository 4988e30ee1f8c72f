package ticket

import (
	"context"
	"sync"
)

// inflight tracks at most one running analysis per session key. Starting a
// new one cancels the previous.
type inflight struct {
	mu    sync.Mutex
	calls map[string]*call
}

type call struct {
	cancel     context.CancelFunc
	superseded bool
}

func newInflight() *inflight {
	return &inflight{
		calls: make(map[string]*call),
	}
}

// begin derives a cancellable context for key. An empty key is not tracked.
func (f *inflight) begin(ctx context.Context, key string) (context.Context, *call) {
	ctx, cancel := context.WithCancel(ctx)
	c := &call{cancel: cancel}

	if key == "" {
		return ctx, c
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if prev, ok := f.calls[key]; ok {
		prev.superseded = true
		prev.cancel()
	}

	f.calls[key] = c

	return ctx, c
}

// end releases c. It must be called exactly once per begin.
func (f *inflight) end(key string, c *call) {
	c.cancel()

	if key == "" {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.calls[key] == c {
		delete(f.calls, key)
	}
}

func (f *inflight) wasSuperseded(c *call) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return c.superseded
}

func (f *inflight) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.calls)
}
