package planning

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// blockingRequestor holds every call until released, counting invocations.
type blockingRequestor struct {
	calls   int64
	release chan struct{}
	result  PlanResult
}

func (b *blockingRequestor) RequestPurchasePlan(ctx context.Context, items []CriticalItem) PlanResult {
	atomic.AddInt64(&b.calls, 1)
	<-b.release
	return b.result
}

func TestCoalescingRequestorSharesInflightCall(t *testing.T) {
	inner := &blockingRequestor{
		release: make(chan struct{}),
		result:  PlanResult{Lines: []PlanLine{{Code: "X", Action: ActionMonitor}}},
	}
	c := NewCoalescingRequestor(inner, time.Minute)
	items := criticalFixture()

	var wg sync.WaitGroup
	results := make([]PlanResult, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.RequestPurchasePlan(context.Background(), items)
		}(i)
	}

	// Let the goroutines pile up on the single in-flight call.
	time.Sleep(50 * time.Millisecond)
	close(inner.release)
	wg.Wait()

	if got := atomic.LoadInt64(&inner.calls); got != 1 {
		t.Fatalf("expected 1 underlying call, got %d", got)
	}
	for i, res := range results {
		if len(res.Lines) != 1 || res.Lines[0].Code != "X" {
			t.Errorf("caller %d got unexpected result %+v", i, res)
		}
	}
}

func TestCoalescingRequestorCachesSuccess(t *testing.T) {
	inner := &blockingRequestor{
		release: make(chan struct{}),
		result:  PlanResult{Lines: []PlanLine{{Code: "X"}}},
	}
	close(inner.release) // never block
	c := NewCoalescingRequestor(inner, time.Minute)
	items := criticalFixture()

	c.RequestPurchasePlan(context.Background(), items)
	c.RequestPurchasePlan(context.Background(), items)

	if got := atomic.LoadInt64(&inner.calls); got != 1 {
		t.Fatalf("second request should be served from cache, got %d calls", got)
	}
}

func TestCoalescingRequestorDoesNotCacheErrors(t *testing.T) {
	inner := &blockingRequestor{
		release: make(chan struct{}),
		result:  PlanResult{Err: "boom"},
	}
	close(inner.release)
	c := NewCoalescingRequestor(inner, time.Minute)
	items := criticalFixture()

	c.RequestPurchasePlan(context.Background(), items)
	c.RequestPurchasePlan(context.Background(), items)

	if got := atomic.LoadInt64(&inner.calls); got != 2 {
		t.Fatalf("errors must not be cached, got %d calls", got)
	}
}

func TestCoalescingRequestorDistinctPayloadsIndependent(t *testing.T) {
	inner := &blockingRequestor{
		release: make(chan struct{}),
		result:  PlanResult{Lines: []PlanLine{}},
	}
	close(inner.release)
	c := NewCoalescingRequestor(inner, time.Minute)

	c.RequestPurchasePlan(context.Background(), criticalFixture())
	other := []CriticalItem{{Code: "Y", Cmm: 3, OrderQuantity: 6}}
	c.RequestPurchasePlan(context.Background(), other)

	if got := atomic.LoadInt64(&inner.calls); got != 2 {
		t.Fatalf("distinct payloads must not coalesce, got %d calls", got)
	}
}

func TestCoalescingRequestorEmptyInputBypasses(t *testing.T) {
	inner := &blockingRequestor{release: make(chan struct{}), result: PlanResult{Empty: true}}
	close(inner.release)
	c := NewCoalescingRequestor(inner, time.Minute)

	res := c.RequestPurchasePlan(context.Background(), nil)
	if !res.Empty {
		t.Fatal("empty input should pass straight through to the inner requestor")
	}
}
