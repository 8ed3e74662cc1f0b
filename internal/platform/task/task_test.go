package task

import (
	"context"
	"testing"
	"time"

	"go.uber.org/goleak"

	"paseos-lugo/internal/platform/clock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestEvery_RunsImmediatelyThenOnInterval(t *testing.T) {
	clk := clock.NewFake(time.Unix(0, 0))
	runs := 0

	h := Every(context.Background(), clk, 10*time.Second, func(context.Context) { runs++ })
	defer h.Stop()

	clk.Advance(0)
	if runs != 1 {
		t.Fatalf("expected immediate run, got %d", runs)
	}
	clk.Advance(25 * time.Second)
	if runs != 3 {
		t.Fatalf("expected 3 runs, got %d", runs)
	}
}

func TestHandle_StopIsIdempotentAndCancels(t *testing.T) {
	clk := clock.NewFake(time.Unix(0, 0))
	runs := 0
	h := Every(context.Background(), clk, time.Second, func(context.Context) { runs++ })

	clk.Advance(0)
	h.Stop()
	h.Stop()

	if h.Context().Err() == nil {
		t.Fatalf("context must be cancelled")
	}
	if h.Schedule(clk, 0, func(context.Context) { runs++ }) {
		t.Fatalf("schedule after stop must fail")
	}
	clk.Advance(time.Minute)
	if runs != 1 {
		t.Fatalf("no run after stop, got %d", runs)
	}
	if clk.Pending() != 0 {
		t.Fatalf("timer must be cancelled, %d pending", clk.Pending())
	}
}

func TestHandle_ParentCancelStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := New(ctx)
	cancel()

	select {
	case <-h.Done():
	case <-time.After(time.Second):
		t.Fatalf("parent cancel must stop the handle")
	}
	if !h.Stopped() {
		t.Fatalf("expected stopped")
	}
}

func TestRegistry_OneHandlePerKey(t *testing.T) {
	r := NewRegistry()

	first := r.Start("view", func() *Handle { return New(context.Background()) })
	second := r.Start("view", func() *Handle { return New(context.Background()) })

	if !first.Stopped() {
		t.Fatalf("first handle must be stopped")
	}
	if got, ok := r.Get("view"); !ok || got != second {
		t.Fatalf("registry must hold the latest handle")
	}

	other := r.Start("other", func() *Handle { return New(context.Background()) })
	if r.Len() != 2 {
		t.Fatalf("expected 2 live handles, got %d", r.Len())
	}

	r.Stop("view")
	if !second.Stopped() {
		t.Fatalf("stop must stop the handle")
	}

	other.Stop()
	deadline := time.After(time.Second)
	for r.Len() != 0 {
		select {
		case <-deadline:
			t.Fatalf("stopped handles must be released, %d left", r.Len())
		case <-time.After(time.Millisecond):
		}
	}
}

func TestRegistry_StopAll(t *testing.T) {
	r := NewRegistry()
	a := r.Start("a", func() *Handle { return New(context.Background()) })
	b := r.Start("b", func() *Handle { return New(context.Background()) })

	r.StopAll()
	if !a.Stopped() || !b.Stopped() || r.Len() != 0 {
		t.Fatalf("stop all must stop everything")
	}
}
