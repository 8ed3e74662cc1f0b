// Package task modela actividades en segundo plano cancelables: una cadena de
// timers con un único dueño que se detiene exactamente una vez.
package task

import (
	"context"
	"sync"
	"time"

	"paseos-lugo/internal/platform/clock"
)

type Handle struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	stopped bool
	timer   clock.Timer

	done        chan struct{}
	releaseStop func() bool
}

// New crea un handle cuyo contexto deriva de parent. Cancelar parent equivale a Stop.
func New(parent context.Context) *Handle {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	h := &Handle{
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	h.releaseStop = context.AfterFunc(parent, h.Stop)
	return h
}

// Context se cancela al detener el handle; sirve para abortar requests en vuelo.
func (h *Handle) Context() context.Context { return h.ctx }

// Done se cierra cuando el handle se detiene.
func (h *Handle) Done() <-chan struct{} { return h.done }

func (h *Handle) Stopped() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stopped
}

// Stop cancela el timer pendiente y el contexto. Es idempotente y no espera a
// callbacks en curso; esos deben consultar Stopped antes de publicar resultados.
func (h *Handle) Stop() {
	h.mu.Lock()
	if h.stopped {
		h.mu.Unlock()
		return
	}
	h.stopped = true
	t := h.timer
	h.timer = nil
	h.mu.Unlock()

	if t != nil {
		t.Stop()
	}
	h.cancel()
	if h.releaseStop != nil {
		h.releaseStop()
	}
	close(h.done)
}

// Schedule reemplaza el timer pendiente por fn dentro de d.
// Devuelve false si el handle ya está detenido.
func (h *Handle) Schedule(clk clock.Clock, d time.Duration, fn func(ctx context.Context)) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		return false
	}
	if h.timer != nil {
		h.timer.Stop()
	}
	h.timer = clk.AfterFunc(d, func() {
		if h.Stopped() {
			return
		}
		fn(h.ctx)
	})
	return true
}

// Every ejecuta fn de inmediato y luego cada interval, sin backoff, hasta Stop.
// El siguiente tick se programa antes de correr fn, como un intervalo fijo.
func Every(parent context.Context, clk clock.Clock, interval time.Duration, fn func(ctx context.Context)) *Handle {
	h := New(parent)
	var tick func(ctx context.Context)
	tick = func(ctx context.Context) {
		h.Schedule(clk, interval, tick)
		fn(ctx)
	}
	h.Schedule(clk, 0, tick)
	return h
}

// Registry garantiza un solo handle vivo por clave (una vista = un timer).
type Registry struct {
	mu    sync.Mutex
	byKey map[string]*Handle
}

func NewRegistry() *Registry {
	return &Registry{byKey: map[string]*Handle{}}
}

// Start detiene el handle previo de key (si existe) antes de arrancar uno nuevo.
func (r *Registry) Start(key string, start func() *Handle) *Handle {
	r.mu.Lock()
	prev := r.byKey[key]
	delete(r.byKey, key)
	r.mu.Unlock()

	if prev != nil {
		prev.Stop()
	}

	h := start()

	r.mu.Lock()
	if cur, ok := r.byKey[key]; ok && cur != h {
		// Otro Start ganó la carrera mientras arrancábamos: gana el último.
		r.mu.Unlock()
		cur.Stop()
		r.mu.Lock()
	}
	r.byKey[key] = h
	r.mu.Unlock()

	go func() {
		<-h.Done()
		r.release(key, h)
	}()
	return h
}

// Stop detiene y olvida el handle de key.
func (r *Registry) Stop(key string) {
	r.mu.Lock()
	h := r.byKey[key]
	delete(r.byKey, key)
	r.mu.Unlock()
	if h != nil {
		h.Stop()
	}
}

func (r *Registry) StopAll() {
	r.mu.Lock()
	all := r.byKey
	r.byKey = map[string]*Handle{}
	r.mu.Unlock()
	for _, h := range all {
		h.Stop()
	}
}

func (r *Registry) Get(key string) (*Handle, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.byKey[key]
	return h, ok
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byKey)
}

func (r *Registry) release(key string, h *Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.byKey[key] == h {
		delete(r.byKey, key)
	}
}
