package payment

import (
	"context"
	"sync"
	"time"

	"paseos-lugo/internal/observability"
	"paseos-lugo/internal/platform/clock"
	"paseos-lugo/internal/platform/logger"
	"paseos-lugo/internal/platform/task"
)

// Snapshot es lo que ve la página de confirmación en cada cambio.
type Snapshot struct {
	SessionID string `json:"session_id"`
	State     State  `json:"state"`
	Attempts  int    `json:"attempts"`
}

type Poller struct {
	status      StatusFunc
	clock       clock.Clock
	interval    time.Duration
	maxAttempts int
	log         logger.Logger
	registry    *task.Registry
}

type Options struct {
	Clock       clock.Clock
	Interval    time.Duration
	MaxAttempts int
	Logger      logger.Logger
	// Registry asegura un solo poller por vista (StartView).
	Registry *task.Registry
}

func NewPoller(status StatusFunc, opts Options) *Poller {
	p := &Poller{
		status:      status,
		clock:       opts.Clock,
		interval:    opts.Interval,
		maxAttempts: opts.MaxAttempts,
		log:         opts.Logger,
		registry:    opts.Registry,
	}
	if p.clock == nil {
		p.clock = clock.Real{}
	}
	if p.interval <= 0 {
		p.interval = DefaultInterval
	}
	if p.maxAttempts <= 0 {
		p.maxAttempts = DefaultMaxAttempts
	}
	if p.log == nil {
		p.log = logger.Nop()
	}
	if p.registry == nil {
		p.registry = task.NewRegistry()
	}
	return p
}

// Run es una ejecución del poller con un único dueño.
type Run struct {
	handle    *task.Handle
	sessionID string

	mu       sync.Mutex
	machine  *Machine
	onChange func(Snapshot)
}

// Start dispara el primer intento de inmediato. onChange se llama tras cada
// intento (y una vez si arranca directamente en failed). Tras Stop deja de
// llamarse, salvo una publicación que ya hubiera pasado el chequeo de Stopped;
// quien recibe debe tolerarla.
func (p *Poller) Start(ctx context.Context, sessionID, token string, onChange func(Snapshot)) *Run {
	r := &Run{
		handle:    task.New(ctx),
		sessionID: sessionID,
		machine:   NewMachine(sessionID, token, p.maxAttempts, p.interval),
		onChange:  onChange,
	}

	if r.machine.State().Terminal() {
		r.emit()
		observability.RecordPaymentOutcome(string(r.machine.State()))
		r.handle.Stop()
		return r
	}

	var poll func(ctx context.Context)
	poll = func(ctx context.Context) {
		st, err := p.status(ctx, token, sessionID)
		if r.handle.Stopped() {
			return
		}

		r.mu.Lock()
		d := r.machine.Observe(Classify(st, err))
		attempts := r.machine.Attempts()
		r.mu.Unlock()

		if err != nil {
			p.log.Debug("checkout status transient error", map[string]any{
				"session_id": sessionID,
				"attempt":    attempts,
				"err":        err,
			})
		}

		r.emit()

		if d.PollAgain {
			r.handle.Schedule(p.clock, d.Delay, poll)
			return
		}

		p.log.Info("payment confirmation finished", map[string]any{
			"session_id": sessionID,
			"state":      string(d.State),
			"attempts":   attempts,
		})
		observability.RecordPaymentOutcome(string(d.State))
		r.handle.Stop()
	}

	r.handle.Schedule(p.clock, 0, poll)
	return r
}

// StartView es Start con un único dueño por vista: si viewKey ya tenía un
// poller vivo, se detiene antes de arrancar el nuevo.
func (p *Poller) StartView(ctx context.Context, viewKey, sessionID, token string, onChange func(Snapshot)) *Run {
	var run *Run
	p.registry.Start(viewKey, func() *task.Handle {
		run = p.Start(ctx, sessionID, token, onChange)
		return run.handle
	})
	return run
}

func (r *Run) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot{
		SessionID: r.sessionID,
		State:     r.machine.State(),
		Attempts:  r.machine.Attempts(),
	}
}

// Stop cancela el timer pendiente y la consulta en vuelo. Idempotente.
func (r *Run) Stop() { r.handle.Stop() }

func (r *Run) Done() <-chan struct{} { return r.handle.Done() }

// Wait bloquea hasta estado terminal, Stop o ctx.
func (r *Run) Wait(ctx context.Context) Snapshot {
	select {
	case <-r.handle.Done():
	case <-ctx.Done():
	}
	return r.Snapshot()
}

func (r *Run) emit() {
	if r.onChange == nil || r.handle.Stopped() {
		return
	}
	r.onChange(r.Snapshot())
}
