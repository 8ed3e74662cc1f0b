package tracking

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"paseos-lugo/internal/domain/booking"
	"paseos-lugo/internal/observability"
	"paseos-lugo/internal/platform/clock"
	"paseos-lugo/internal/platform/logger"
	"paseos-lugo/internal/platform/task"
)

const DefaultInterval = 10 * time.Second

type Options struct {
	Clock    clock.Clock
	Interval time.Duration
	Logger   logger.Logger
	Registry *task.Registry
}

type Tracker struct {
	src      Source
	clock    clock.Clock
	interval time.Duration
	log      logger.Logger
	registry *task.Registry
}

func NewTracker(src Source, opts Options) *Tracker {
	t := &Tracker{
		src:      src,
		clock:    opts.Clock,
		interval: opts.Interval,
		log:      opts.Logger,
		registry: opts.Registry,
	}
	if t.clock == nil {
		t.clock = clock.Real{}
	}
	if t.interval <= 0 {
		t.interval = DefaultInterval
	}
	if t.log == nil {
		t.log = logger.Nop()
	}
	if t.registry == nil {
		t.registry = task.NewRegistry()
	}
	return t
}

// Callbacks se invocan desde la goroutine del timer. Un tick en curso puede
// publicar una última vez si Stop llega entre el chequeo del contexto y la
// llamada; el receptor debe tolerarlo.
type Callbacks struct {
	OnView  func(View)
	OnError func(error)
}

// Watch es un seguimiento en marcha.
type Watch struct {
	handle    *task.Handle
	bookingID string

	mu      sync.Mutex
	last    *Snapshot
	mapsKey string
	cfgDone bool
}

// Fetch hace una sola lectura (booking + walk en paralelo).
func (t *Tracker) Fetch(ctx context.Context, token, bookingID string) (Snapshot, error) {
	var (
		b booking.Booking
		w Walk
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		b, err = t.src.GetBooking(gctx, token, bookingID)
		return err
	})
	g.Go(func() error {
		var err error
		w, err = t.src.GetWalk(gctx, bookingID)
		return err
	})
	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Booking: b, Walk: w, FetchedAt: t.clock.Now()}, nil
}

// MapsKey lee la clave del mapa; si falla se sigue sin ella.
func (t *Tracker) MapsKey(ctx context.Context) string {
	cfg, err := t.src.PublicConfig(ctx)
	if err != nil {
		t.log.Warn("maps config unavailable", map[string]any{"err": err})
		return ""
	}
	return cfg.GoogleMapsAPIKey
}

// Start refresca ya y luego cada intervalo fijo. Un error no corta el bucle.
// viewKey identifica la vista dueña: un Start nuevo con la misma clave
// detiene el anterior antes de programar el suyo.
func (t *Tracker) Start(ctx context.Context, viewKey, token, bookingID string, cb Callbacks) *Watch {
	if strings.TrimSpace(viewKey) == "" {
		viewKey = bookingID
	}
	w := &Watch{bookingID: bookingID}

	w.handle = t.registry.Start(viewKey, func() *task.Handle {
		return task.Every(ctx, t.clock, t.interval, func(ctx context.Context) {
			t.tick(ctx, w, token, cb)
		})
	})

	observability.TrackerStarted()
	go func() {
		<-w.handle.Done()
		observability.TrackerStopped()
	}()
	return w
}

func (t *Tracker) tick(ctx context.Context, w *Watch, token string, cb Callbacks) {
	w.mu.Lock()
	needCfg := !w.cfgDone
	w.cfgDone = true
	w.mu.Unlock()
	if needCfg {
		key := t.MapsKey(ctx)
		w.mu.Lock()
		w.mapsKey = key
		w.mu.Unlock()
	}

	snap, err := t.Fetch(ctx, token, w.bookingID)
	if ctx.Err() != nil {
		// detenido durante la lectura: no se publica nada
		return
	}
	if err != nil {
		observability.RecordWalkTick(false)
		t.log.Warn("walk refresh failed", map[string]any{"booking_id": w.bookingID, "err": err})
		if cb.OnError != nil {
			cb.OnError(err)
		}
		return
	}
	observability.RecordWalkTick(true)

	w.mu.Lock()
	w.last = &snap
	key := w.mapsKey
	w.mu.Unlock()

	if cb.OnView != nil {
		cb.OnView(BuildView(snap, key))
	}
}

// Last devuelve la última vista conocida.
func (w *Watch) Last() (View, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.last == nil {
		return View{}, false
	}
	return BuildView(*w.last, w.mapsKey), true
}

// Stop cancela el timer y la lectura en vuelo: no se programan más ticks.
func (w *Watch) Stop() { w.handle.Stop() }

func (w *Watch) Done() <-chan struct{} { return w.handle.Done() }
