package planning

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

type inflightCall struct {
	done   chan struct{}
	result PlanResult
}

// CoalescingRequestor wraps a Requestor with at-most-one-in-flight semantics
// per payload: concurrent requests for the same critical set share a single
// outbound call, and a successful plan is reused for a short TTL afterwards.
// Distinct payloads still proceed independently.
type CoalescingRequestor struct {
	inner Requestor

	mu       sync.Mutex
	inflight map[string]*inflightCall
	results  *cache.Cache
}

var _ Requestor = &CoalescingRequestor{}

func NewCoalescingRequestor(inner Requestor, resultTTL time.Duration) *CoalescingRequestor {
	if resultTTL <= 0 {
		resultTTL = time.Minute
	}
	return &CoalescingRequestor{
		inner:    inner,
		inflight: make(map[string]*inflightCall),
		results:  cache.New(resultTTL, 10*time.Minute),
	}
}

func (c *CoalescingRequestor) RequestPurchasePlan(ctx context.Context, items []CriticalItem) PlanResult {
	// Empty input never reaches the network; no point coalescing it either.
	if len(items) == 0 {
		return c.inner.RequestPurchasePlan(ctx, items)
	}

	key := payloadKey(items)

	c.mu.Lock()
	if cached, found := c.results.Get(key); found {
		c.mu.Unlock()
		return cached.(PlanResult)
	}
	if call, ok := c.inflight[key]; ok {
		c.mu.Unlock()
		select {
		case <-call.done:
			return call.result
		case <-ctx.Done():
			return PlanResult{Err: ctx.Err().Error()}
		}
	}
	call := &inflightCall{done: make(chan struct{})}
	c.inflight[key] = call
	c.mu.Unlock()

	call.result = c.inner.RequestPurchasePlan(ctx, items)
	close(call.done)

	c.mu.Lock()
	delete(c.inflight, key)
	// Errors are not cached; the user is expected to retry.
	if !call.result.IsError() {
		c.results.Set(key, call.result, cache.DefaultExpiration)
	}
	c.mu.Unlock()

	return call.result
}

func payloadKey(items []CriticalItem) string {
	payload, err := json.Marshal(items)
	if err != nil {
		return "unkeyed"
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
