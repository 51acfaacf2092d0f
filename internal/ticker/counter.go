package ticker

import (
	"math/rand/v2"
	"sync"
	"time"
)

const (
	DefaultTradingInterval = 3 * time.Second
	DefaultLeadBotInterval = 5 * time.Second
)

// Counter is a display number written by a simulator goroutine and read by
// the render loop.
type Counter struct {
	mu sync.Mutex
	v  float64
}

// NewCounter returns a counter holding v.
func NewCounter(v float64) *Counter {
	return &Counter{v: v}
}

// Value returns the current value.
func (c *Counter) Value() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.v
}

// Add adds d and returns the new value.
func (c *Counter) Add(d float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.v += d
	return c.v
}

// Set replaces the value.
func (c *Counter) Set(v float64) {
	c.mu.Lock()
	c.v = v
	c.mu.Unlock()
}

// Rand is the random source a perturbation draws from. *rand.Rand
// satisfies it.
type Rand interface {
	Float64() float64
}

// NewRand returns a PCG source. A zero seed draws one from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Jitter is a bounded random change: with probability Chance the draw
// yields a delta uniformly in [Min, Max].
type Jitter struct {
	Chance float64
	Min    float64
	Max    float64
}

// Draw returns the delta and whether the change fires on this tick.
func (j Jitter) Draw(rng Rand) (float64, bool) {
	if rng.Float64() >= j.Chance {
		return 0, false
	}
	if j.Max <= j.Min {
		return j.Min, true
	}
	return j.Min + rng.Float64()*(j.Max-j.Min), true
}

// Binding applies one Jitter draw to every listed counter.
type Binding struct {
	Jitter   Jitter
	Counters []*Counter
}

// Perturb builds an onTick that draws each binding independently. The
// returned func is not safe for concurrent use since rng is shared; hand it
// to a single Simulator.
func Perturb(rng Rand, bindings ...Binding) func() {
	return func() {
		for _, b := range bindings {
			d, ok := b.Jitter.Draw(rng)
			if !ok {
				continue
			}
			for _, c := range b.Counters {
				c.Add(d)
			}
		}
	}
}

// TradingBindings moves the account balance by [-20, +30] and the daily
// P&L by [-6, +14] on every tick.
func TradingBindings(balance, dailyProfit *Counter) []Binding {
	return []Binding{
		{Jitter: Jitter{Chance: 1, Min: -20, Max: 30}, Counters: []*Counter{balance}},
		{Jitter: Jitter{Chance: 1, Min: -6, Max: 14}, Counters: []*Counter{dailyProfit}},
	}
}

// LeadBotBindings adds one lead to both totals on roughly one tick in five.
func LeadBotBindings(totalLeads, monthlyLeads *Counter) []Binding {
	return []Binding{
		{Jitter: Jitter{Chance: 0.2, Min: 1, Max: 1}, Counters: []*Counter{totalLeads, monthlyLeads}},
	}
}
