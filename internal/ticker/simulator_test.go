package ticker

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestStartStopLifecycle(t *testing.T) {
	sim := New("test", WithLogger(zap.NewNop()))
	assert.Equal(t, Stopped, sim.State())

	var calls atomic.Int64
	sim.Start(MinInterval, func() { calls.Add(1) })
	assert.Equal(t, Running, sim.State())

	require.Eventually(t, func() bool { return calls.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)

	sim.Stop()
	assert.Equal(t, Stopped, sim.State())

	after := calls.Load()
	time.Sleep(3 * MinInterval)
	assert.Equal(t, after, calls.Load(), "onTick ran after Stop")
	assert.Equal(t, uint64(after), sim.Ticks())
}

func TestStartWhileRunningKeepsOneTimer(t *testing.T) {
	sim := New("dup")

	var mu sync.Mutex
	var first, second int
	h1 := sim.Start(MinInterval, func() { mu.Lock(); first++; mu.Unlock() })
	h2 := sim.Start(MinInterval, func() { mu.Lock(); second++; mu.Unlock() })
	assert.Equal(t, h1, h2)

	time.Sleep(3 * MinInterval)
	h1.Cancel()

	mu.Lock()
	defer mu.Unlock()
	assert.Positive(t, first)
	assert.Zero(t, second, "second Start must not add a timer")
}

func TestStaleHandleCancelIsNoop(t *testing.T) {
	sim := New("stale")

	old := sim.Start(MinInterval, func() {})
	old.Cancel()
	assert.Equal(t, Stopped, sim.State())

	var calls atomic.Int64
	cur := sim.Start(MinInterval, func() { calls.Add(1) })
	old.Cancel()
	assert.Equal(t, Running, sim.State(), "old handle stopped the new run")

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
	cur.Cancel()
	assert.Equal(t, Stopped, sim.State())
}

func TestStopWhenStoppedAndZeroHandle(t *testing.T) {
	sim := New("idle")
	sim.Stop()
	sim.Stop()
	Handle{}.Cancel()
	assert.Equal(t, Stopped, sim.State())
}

func TestSecondStopWaitsForRunningTick(t *testing.T) {
	sim := New("slow")
	var inTick atomic.Bool
	sim.Start(MinInterval, func() {
		inTick.Store(true)
		time.Sleep(300 * time.Millisecond)
		inTick.Store(false)
	})
	require.Eventually(t, inTick.Load, 2*time.Second, time.Millisecond)

	first := make(chan struct{})
	go func() {
		sim.Stop()
		close(first)
	}()
	time.Sleep(10 * time.Millisecond)

	sim.Stop()
	assert.False(t, inTick.Load(), "Stop returned while onTick was running")
	<-first
}

func TestStartWaitsForStoppingRun(t *testing.T) {
	sim := New("overlap")
	var active, overlap atomic.Int32
	tick := func() {
		if active.Add(1) > 1 {
			overlap.Add(1)
		}
		time.Sleep(150 * time.Millisecond)
		active.Add(-1)
	}

	sim.Start(MinInterval, tick)
	require.Eventually(t, func() bool { return active.Load() == 1 }, 2*time.Second, time.Millisecond)

	stopped := make(chan struct{})
	go func() {
		sim.Stop()
		close(stopped)
	}()
	require.Eventually(t, func() bool { return sim.State() == Stopped }, time.Second, time.Millisecond)

	sim.Start(MinInterval, tick)
	assert.Zero(t, active.Load(), "old onTick still running after Start")
	<-stopped

	time.Sleep(2 * MinInterval)
	sim.Stop()
	assert.Zero(t, overlap.Load())
}

func TestIntervalIsClamped(t *testing.T) {
	sim := New("clamp")
	var calls atomic.Int64
	sim.Start(0, func() { calls.Add(1) })
	time.Sleep(MinInterval / 2)
	sim.Stop()
	assert.Zero(t, calls.Load(), "zero interval must not spin")
}

func TestRestartCycles(t *testing.T) {
	sim := New("remount")
	var calls atomic.Int64
	for range 5 {
		h := sim.Start(MinInterval, func() { calls.Add(1) })
		h.Cancel()
	}
	assert.Equal(t, Stopped, sim.State())
	// goleak in TestMain checks no run goroutine survived.
}

func TestNilOnTick(t *testing.T) {
	sim := New("nil")
	sim.Start(MinInterval, nil)
	require.Eventually(t, func() bool { return sim.Ticks() >= 1 }, 2*time.Second, 10*time.Millisecond)
	sim.Stop()
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "stopped", Stopped.String())
}
