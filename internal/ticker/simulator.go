// Package ticker drives the cosmetic "live" number changes shown by the bot
// views. A Simulator owns at most one repeating timer at a time.
package ticker

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// MinInterval is the shortest tick period a Simulator accepts.
const MinInterval = 100 * time.Millisecond

// State is the simulator lifecycle state.
type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Simulator runs onTick on a fixed schedule between Start and Stop.
//
// onTick runs on the simulator's own goroutine and must not call Stop or
// Cancel on the simulator that invoked it.
type Simulator struct {
	name   string
	logger *zap.Logger

	mu    sync.Mutex
	state State
	gen   uint64
	stop  chan struct{}
	done  chan struct{}
	ticks uint64

	// stopping is the done channel of a run that was told to stop but may
	// still be inside onTick.
	stopping chan struct{}
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithLogger attaches a logger for start/stop events.
func WithLogger(l *zap.Logger) Option {
	return func(s *Simulator) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a stopped simulator.
func New(name string, opts ...Option) *Simulator {
	s := &Simulator{name: name, logger: zap.NewNop()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Handle cancels the run that produced it.
type Handle struct {
	sim *Simulator
	gen uint64
}

// Cancel stops the run this handle belongs to. Cancelling a handle from an
// earlier run, or a zero Handle, does nothing.
func (h Handle) Cancel() {
	if h.sim == nil {
		return
	}
	h.sim.stopGen(h.gen)
}

// State reports whether the simulator is running.
func (s *Simulator) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Ticks returns how many times onTick has completed across all runs.
func (s *Simulator) Ticks() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticks
}

// Start begins calling onTick every interval. If the simulator is already
// running this is a no-op returning the current run's handle. A run that
// is still stopping is waited for first.
func (s *Simulator) Start(interval time.Duration, onTick func()) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	for s.state != Running && s.stopping != nil {
		wait := s.stopping
		s.mu.Unlock()
		<-wait
		s.mu.Lock()
		if s.stopping == wait {
			s.stopping = nil
		}
	}
	if s.state == Running {
		return Handle{sim: s, gen: s.gen}
	}
	if interval < MinInterval {
		interval = MinInterval
	}

	s.gen++
	s.state = Running
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	go s.run(interval, onTick, s.stop, s.done)

	s.logger.Debug("simulator started",
		zap.String("name", s.name),
		zap.Duration("interval", interval),
		zap.Uint64("run", s.gen),
	)
	return Handle{sim: s, gen: s.gen}
}

// Stop ends the current run and waits for its goroutine to exit. After Stop
// returns no further onTick call happens, also when another caller started
// the stop.
func (s *Simulator) Stop() {
	s.mu.Lock()
	gen := s.gen
	s.mu.Unlock()
	s.stopGen(gen)
}

func (s *Simulator) stopGen(gen uint64) {
	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		return
	}
	if s.state != Running {
		// Another caller may be stopping this run; wait for it to finish.
		wait := s.stopping
		s.mu.Unlock()
		if wait != nil {
			<-wait
		}
		return
	}
	s.state = Stopped
	stop, done := s.stop, s.done
	s.stop, s.done = nil, nil
	s.stopping = done
	s.mu.Unlock()

	close(stop)
	<-done

	s.mu.Lock()
	if s.stopping == done {
		s.stopping = nil
	}
	s.mu.Unlock()

	s.logger.Debug("simulator stopped", zap.String("name", s.name), zap.Uint64("run", gen))
}

func (s *Simulator) run(interval time.Duration, onTick func(), stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-stop:
			return
		case <-t.C:
			// A tick and a stop can be ready together; stop wins.
			select {
			case <-stop:
				return
			default:
			}
			if onTick != nil {
				onTick()
			}
			s.mu.Lock()
			s.ticks++
			s.mu.Unlock()
		}
	}
}
