package tracking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"paseos-lugo/internal/domain/booking"
	"paseos-lugo/internal/platform/clock"
	"paseos-lugo/internal/platform/task"
)

type scriptedSource struct {
	mu       sync.Mutex
	walks    []Walk
	errs     []error
	calls    int
	cfgCalls int
	tokens   []string
}

func (s *scriptedSource) GetBooking(_ context.Context, token, id string) (booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = append(s.tokens, token)
	return booking.Booking{ID: id, Status: booking.StatusConfirmed}, nil
}

func (s *scriptedSource) GetWalk(_ context.Context, bookingID string) (Walk, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.calls
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return Walk{}, s.errs[i]
	}
	if i >= len(s.walks) {
		i = len(s.walks) - 1
	}
	w := s.walks[i]
	w.BookingID = bookingID
	return w, nil
}

func (s *scriptedSource) PublicConfig(context.Context) (MapsConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfgCalls++
	return MapsConfig{GoogleMapsAPIKey: "maps-key"}, nil
}

func (s *scriptedSource) walkCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func route(n int) []Point {
	out := make([]Point, n)
	for i := range out {
		out[i] = Point{Lat: 43.0 + float64(i)/1000, Lng: -7.55 - float64(i)/1000}
	}
	return out
}

func TestTracker_PathFollowsLatestResponse(t *testing.T) {
	clk := clock.NewFake(time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC))
	src := &scriptedSource{walks: []Walk{
		{Status: WalkInProgress, RouteData: route(1)},
		{Status: WalkInProgress, RouteData: route(3)},
		{Status: WalkCompleted, RouteData: route(5), ReportText: "Todo bien"},
	}}
	tr := NewTracker(src, Options{Clock: clk})

	var views []View
	w := tr.Start(context.Background(), "v1:b1", "tok", "b1", Callbacks{
		OnView: func(v View) { views = append(views, v) },
	})
	defer w.Stop()

	clk.Advance(0)
	if len(views) != 1 {
		t.Fatalf("expected immediate fetch, got %d views", len(views))
	}
	if diff := cmp.Diff(route(1), views[0].Path); diff != "" {
		t.Fatalf("path mismatch (-want +got):\n%s", diff)
	}

	clk.Advance(DefaultInterval)
	clk.Advance(DefaultInterval)
	if len(views) != 3 {
		t.Fatalf("expected 3 views, got %d", len(views))
	}
	last := views[2]
	if diff := cmp.Diff(route(5), last.Path); diff != "" {
		t.Fatalf("path mismatch (-want +got):\n%s", diff)
	}
	want := route(5)[4]
	if last.Current == nil || *last.Current != want {
		t.Fatalf("current marker = %+v, want %+v", last.Current, want)
	}
	if last.Center.Lat != want.Lat || last.Center.Lng != want.Lng {
		t.Fatalf("center = %+v, want last point", last.Center)
	}
	if last.StatusLabel != "Completado" || last.MapsAPIKey != "maps-key" {
		t.Fatalf("unexpected view: %+v", last)
	}
	if src.cfgCalls != 1 {
		t.Fatalf("config should load once, got %d", src.cfgCalls)
	}
	for _, tok := range src.tokens {
		if tok != "tok" {
			t.Fatalf("booking fetched with token %q", tok)
		}
	}
}

func TestTracker_ErrorKeepsPolling(t *testing.T) {
	clk := clock.NewFake(time.Unix(0, 0))
	src := &scriptedSource{
		walks: []Walk{{Status: WalkInProgress, RouteData: route(2)}},
		errs:  []error{errors.New("boom")},
	}
	tr := NewTracker(src, Options{Clock: clk})

	var errs, views int
	w := tr.Start(context.Background(), "k", "", "b1", Callbacks{
		OnView:  func(View) { views++ },
		OnError: func(error) { errs++ },
	})
	defer w.Stop()

	clk.Advance(0)
	if errs != 1 || views != 0 {
		t.Fatalf("errs=%d views=%d", errs, views)
	}
	if _, ok := w.Last(); ok {
		t.Fatalf("no snapshot expected after a failed first tick")
	}

	clk.Advance(DefaultInterval)
	if views != 1 {
		t.Fatalf("expected recovery on next tick, views=%d", views)
	}
	if _, ok := w.Last(); !ok {
		t.Fatalf("expected snapshot")
	}
}

func TestTracker_StopCancelsTimer(t *testing.T) {
	clk := clock.NewFake(time.Unix(0, 0))
	src := &scriptedSource{walks: []Walk{{Status: WalkInProgress}}}
	tr := NewTracker(src, Options{Clock: clk})

	w := tr.Start(context.Background(), "k", "", "b1", Callbacks{})
	clk.Advance(0)
	w.Stop()

	if clk.Pending() != 0 {
		t.Fatalf("timer still pending after stop")
	}
	before := src.walkCalls()
	clk.Advance(time.Minute)
	if src.walkCalls() != before {
		t.Fatalf("fetched after stop")
	}
}

func TestTracker_SameViewReplacesPrevious(t *testing.T) {
	clk := clock.NewFake(time.Unix(0, 0))
	src := &scriptedSource{walks: []Walk{{Status: WalkInProgress}}}
	reg := task.NewRegistry()
	tr := NewTracker(src, Options{Clock: clk, Registry: reg})

	first := tr.Start(context.Background(), "visitor:b1", "", "b1", Callbacks{})
	second := tr.Start(context.Background(), "visitor:b1", "", "b1", Callbacks{})
	defer second.Stop()

	select {
	case <-first.Done():
	default:
		t.Fatalf("first tracker should be stopped")
	}
	if clk.Pending() != 1 {
		t.Fatalf("expected a single live timer, got %d", clk.Pending())
	}
}

func TestTracker_ParentContextStops(t *testing.T) {
	clk := clock.NewFake(time.Unix(0, 0))
	src := &scriptedSource{walks: []Walk{{Status: WalkInProgress}}}
	tr := NewTracker(src, Options{Clock: clk})

	ctx, cancel := context.WithCancel(context.Background())
	w := tr.Start(ctx, "k", "", "b1", Callbacks{})
	cancel()

	select {
	case <-w.Done():
	case <-time.After(time.Second):
		t.Fatalf("tracker not stopped by parent context")
	}
}

func TestBuildView_EmptyRouteUsesHomeCenter(t *testing.T) {
	v := BuildView(Snapshot{Walk: Walk{BookingID: "b9", Status: WalkPending}}, "")
	if v.Center != HomeCenter {
		t.Fatalf("center = %+v", v.Center)
	}
	if v.Start != nil || v.Current != nil {
		t.Fatalf("no markers expected")
	}
	if v.BookingID != "b9" || v.StatusLabel != "Pendiente" {
		t.Fatalf("unexpected view %+v", v)
	}
	if v.Photos == nil || len(v.Path) != 0 {
		t.Fatalf("empty slices expected")
	}
}

func TestBuildView_PathIsCopied(t *testing.T) {
	r := route(2)
	v := BuildView(Snapshot{Walk: Walk{RouteData: r}}, "")
	r[0].Lat = 0
	if v.Path[0].Lat == 0 {
		t.Fatalf("view shares backing array with snapshot")
	}
}
