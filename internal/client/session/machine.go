package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/signon/internal/client/models"
	"github.com/dmitrijs2005/signon/internal/client/store"
	"github.com/dmitrijs2005/signon/internal/common"
	"github.com/dmitrijs2005/signon/internal/logging"
)

// DefaultSplash is how long the boot splash is held.
const DefaultSplash = 3 * time.Second

type Event int

const (
	EventBoot Event = iota
	EventSplashElapsed
	EventOnboardingComplete
	EventAuthenticated
	EventProfileComplete
	EventLoggedOut
	// EventSignalsChanged asks for a re-evaluation after any other store change.
	EventSignalsChanged
)

func (e Event) String() string {
	switch e {
	case EventBoot:
		return "boot"
	case EventSplashElapsed:
		return "splash_elapsed"
	case EventOnboardingComplete:
		return "onboarding_complete"
	case EventAuthenticated:
		return "authenticated"
	case EventProfileComplete:
		return "profile_complete"
	case EventLoggedOut:
		return "logged_out"
	case EventSignalsChanged:
		return "signals_changed"
	default:
		return "unknown"
	}
}

// Callbacks are invoked by the shell once the corresponding service call has
// persisted its change.
type Callbacks interface {
	OnOnboardingComplete(ctx context.Context) error
	OnAuthenticated(ctx context.Context) error
	OnProfileComplete(ctx context.Context) error
	OnLogout(ctx context.Context) error
}

// Listener is told about every gate change.
type Listener func(from, to Gate)

// Machine serializes events and recomputes the gate on each one.
type Machine struct {
	store  store.Store
	logger logging.Logger
	splash time.Duration

	mu         sync.Mutex
	gate       Gate
	splashDone bool
	closed     bool
	timer      *time.Timer
	generation uint64
	listeners  []Listener
}

var _ Callbacks = (*Machine)(nil)

type Option func(*Machine)

func WithSplash(d time.Duration) Option {
	return func(m *Machine) { m.splash = d }
}

func WithLogger(l logging.Logger) Option {
	return func(m *Machine) { m.logger = l }
}

func NewMachine(st store.Store, opts ...Option) *Machine {
	m := &Machine{
		store:  st,
		logger: logging.Nop(),
		splash: DefaultSplash,
		gate:   GateSplash,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Subscribe registers l for gate changes.
func (m *Machine) Subscribe(l Listener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, l)
}

// Gate returns the current gate.
func (m *Machine) Gate() Gate {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gate
}

// Start boots the machine into SPLASH and arms the splash timer.
func (m *Machine) Start(ctx context.Context) (Gate, error) {
	return m.Dispatch(ctx, EventBoot)
}

// Dispatch applies ev and returns the resulting gate. After Close it is a
// no-op returning the last gate.
func (m *Machine) Dispatch(ctx context.Context, ev Event) (Gate, error) {
	return m.dispatch(ctx, ev, 0)
}

// dispatch drops the event when gen is set and no longer the armed splash.
func (m *Machine) dispatch(ctx context.Context, ev Event, gen uint64) (Gate, error) {
	m.mu.Lock()
	if m.closed || (gen != 0 && gen != m.generation) {
		g := m.gate
		m.mu.Unlock()
		return g, nil
	}

	switch ev {
	case EventBoot:
		m.splashDone = false
		m.armSplashLocked()
	case EventSplashElapsed:
		m.splashDone = true
	}

	from := m.gate
	to, err := m.computeLocked(ctx)
	if err != nil {
		m.mu.Unlock()
		m.logger.Warn(ctx, "gate evaluation failed", "event", ev, "error", err)
		return from, err
	}
	m.gate = to
	listeners := append([]Listener(nil), m.listeners...)
	m.mu.Unlock()

	if from != to {
		m.logger.Info(ctx, "gate changed", "event", ev, "from", from, "to", to)
		for _, l := range listeners {
			l(from, to)
		}
	}
	return to, nil
}

func (m *Machine) armSplashLocked() {
	if m.timer != nil {
		m.timer.Stop()
	}
	m.generation++
	gen := m.generation
	m.timer = time.AfterFunc(m.splash, func() {
		_, _ = m.dispatch(context.Background(), EventSplashElapsed, gen)
	})
}

func (m *Machine) computeLocked(ctx context.Context) (Gate, error) {
	if !m.splashDone {
		return GateSplash, nil
	}
	sig, err := ReadSignals(ctx, m.store, m.logger)
	if err != nil {
		return m.gate, err
	}
	return Evaluate(sig), nil
}

// Close stops the splash timer. A timer that fires afterwards does nothing.
func (m *Machine) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	if m.timer != nil {
		m.timer.Stop()
	}
}

func (m *Machine) OnOnboardingComplete(ctx context.Context) error {
	_, err := m.Dispatch(ctx, EventOnboardingComplete)
	return err
}

func (m *Machine) OnAuthenticated(ctx context.Context) error {
	_, err := m.Dispatch(ctx, EventAuthenticated)
	return err
}

func (m *Machine) OnProfileComplete(ctx context.Context) error {
	_, err := m.Dispatch(ctx, EventProfileComplete)
	return err
}

func (m *Machine) OnLogout(ctx context.Context) error {
	_, err := m.Dispatch(ctx, EventLoggedOut)
	return err
}

// ReadSignals loads the gate inputs from st. A user record that fails
// validation is treated as absent so the person is sent back to sign in.
func ReadSignals(ctx context.Context, st store.Store, log logging.Logger) (Signals, error) {
	var sig Signals

	var marker string
	found, err := st.Get(ctx, store.KeyOnboarding, &marker)
	switch {
	case errors.Is(err, common.ErrCorruptRecord):
		log.Warn(ctx, "ignoring corrupt onboarding marker", "error", err)
	case err != nil:
		return sig, err
	default:
		sig.Onboarded = found && marker == store.OnboardingCompleted
	}

	var u models.User
	found, err = st.Get(ctx, store.KeyUser, &u)
	switch {
	case errors.Is(err, common.ErrCorruptRecord):
		log.Warn(ctx, "ignoring corrupt user record", "error", err)
	case err != nil:
		return sig, err
	case found:
		sig.User = &u
	}
	return sig, nil
}
