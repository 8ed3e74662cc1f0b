package payment

import "time"

type State string

const (
	StateChecking State = "checking"
	StateSuccess  State = "success"
	StateTimeout  State = "timeout"
	StateFailed   State = "failed"
)

func (s State) Terminal() bool {
	return s != StateChecking
}

const (
	DefaultInterval    = 2 * time.Second
	DefaultMaxAttempts = 10
)

// Outcome es lo que el poller observa en cada intento.
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomePaid
	OutcomeExpired
	// OutcomeError es un fallo de red/servidor. Para la máquina es igual que pendiente.
	OutcomeError
)

// Classify traduce una respuesta (o error) a Outcome.
func Classify(st CheckoutStatus, err error) Outcome {
	if err != nil {
		return OutcomeError
	}
	if st.PaymentStatus == PaymentPaid {
		return OutcomePaid
	}
	if st.Status == SessionExpired {
		return OutcomeExpired
	}
	return OutcomePending
}

// Decision dice qué hacer tras una observación.
type Decision struct {
	State     State
	PollAgain bool
	Delay     time.Duration
}

// Machine es el estado puro del poller: sin red ni timers.
type Machine struct {
	state       State
	attempts    int
	maxAttempts int
	interval    time.Duration
}

// NewMachine arranca en checking solo si hay session id y token; si no, en failed.
func NewMachine(sessionID, token string, maxAttempts int, interval time.Duration) *Machine {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	m := &Machine{
		state:       StateChecking,
		maxAttempts: maxAttempts,
		interval:    interval,
	}
	if sessionID == "" || token == "" {
		m.state = StateFailed
	}
	return m
}

func (m *Machine) State() State  { return m.state }
func (m *Machine) Attempts() int { return m.attempts }

// Observe registra el resultado de un intento. Los estados terminales no cambian.
func (m *Machine) Observe(o Outcome) Decision {
	if m.state.Terminal() {
		return Decision{State: m.state}
	}

	m.attempts++

	switch o {
	case OutcomePaid:
		m.state = StateSuccess
		return Decision{State: m.state}
	case OutcomeExpired:
		m.state = StateFailed
		return Decision{State: m.state}
	}

	if m.attempts >= m.maxAttempts {
		m.state = StateTimeout
		return Decision{State: m.state}
	}
	return Decision{State: m.state, PollAgain: true, Delay: m.interval}
}
