package simulator

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/SynapticNetworks/sandbox-engine/input"
	"github.com/SynapticNetworks/sandbox-engine/network"
)

// FrameInterval is the visual cadence play() paces against, per spec.md
// §4.7's "≈60 Hz".
const FrameInterval = time.Second / 60

const (
	minStepsPerFrame = 1
	maxStepsPerFrame = 100
)

// Observer is notified once per frame with the network and the simulation
// time after that frame's steps have all run.
type Observer func(net *network.Network, currentTime float64)

// Simulator drives a Network: it paces stepsPerFrame engine steps against a
// ~60Hz wall-clock tick, generating injected current from an input.Generator
// each step and notifying an Observer once per tick. The engine step itself
// stays strictly single-threaded and cooperative (network.Network.Step is
// never called concurrently with itself); Simulator only introduces
// asynchrony at the tick boundary, never inside a step.
type Simulator struct {
	net       *network.Network
	generator *input.Generator
	observer  Observer

	mu      sync.Mutex
	speed   float64 // [1, 100], 10 ≈ real-time
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// New constructs a Simulator over net, notifying observer once per frame.
// speed is clamped into [1, 100].
func New(net *network.Network, observer Observer, speed float64) *Simulator {
	return &Simulator{
		net:       net,
		generator: input.NewGenerator(input.DefaultConfig()),
		observer:  observer,
		speed:     clampSpeed(speed),
	}
}

// Play schedules a recurring tick at FrameInterval. Each tick runs
// stepsPerFrame steps of {generate input, deliver to Network, Network.Step}
// and then calls the observer once. Calling Play while already running is a
// no-op.
func (s *Simulator) Play() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.running = true
	s.mu.Unlock()

	s.wg.Add(1)
	go s.tickLoop(ctx)
}

// Pause stops the recurring tick and blocks until the ticking goroutine has
// fully exited, guaranteeing the ticker is released before Pause returns --
// even if the observer panicked mid-tick. Calling Pause while not running is
// a no-op.
func (s *Simulator) Pause() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	cancel := s.cancel
	s.mu.Unlock()

	cancel()
	s.wg.Wait()

	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// Reset pauses the simulation and resets the underlying Network to its
// just-populated state.
func (s *Simulator) Reset() {
	s.Pause()
	s.net.Reset()
}

// SetSpeed updates the pacing speed, clamped into [1, 100].
func (s *Simulator) SetSpeed(speed float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.speed = clampSpeed(speed)
}

// SetInputPattern selects the named input pattern. An empty string selects
// input.PatternNone, matching spec.md §4.7's "setInputPattern(name | null)".
func (s *Simulator) SetInputPattern(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if name == "" {
		name = input.PatternNone
	}
	s.generator.Config.Pattern = name
}

// SetInputStrength sets the global input current multiplier.
func (s *Simulator) SetInputStrength(strength float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generator.Config.Strength = strength
}

// SetNoiseLevel sets the Gaussian noise level (stddev = level * 10 pA).
func (s *Simulator) SetNoiseLevel(level float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generator.Config.NoiseLevel = level
}

func (s *Simulator) tickLoop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runFrame(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// runFrame executes stepsPerFrame engine steps and notifies the observer.
// A panicking observer is recovered so the enclosing tickLoop -- and
// therefore the ticker -- still releases cleanly on the next Pause/Reset
// call, per spec.md §9's scoped-acquisition guarantee.
func (s *Simulator) runFrame(ctx context.Context) {
	s.mu.Lock()
	speed := s.speed
	s.mu.Unlock()

	steps := stepsPerFrame(speed, s.net.DeltaTime())
	n := len(s.net.Neurons())

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return
		default:
		}
		currents := s.generator.Generate(s.net.Rand(), s.net.CurrentTime()+s.net.DeltaTime(), n)
		s.net.Step(currents)
	}

	s.notifyObserver()
}

func (s *Simulator) notifyObserver() {
	defer func() { _ = recover() }()
	if s.observer != nil {
		s.observer(s.net, s.net.CurrentTime())
	}
}

// stepsPerFrame implements spec.md §4.7's
// clamp(round(frameInterval * (speed/10) / deltaTime), 1, 100).
func stepsPerFrame(speed, deltaTime float64) int {
	frameMS := float64(FrameInterval) / float64(time.Millisecond)
	raw := math.Round(frameMS * (speed / 10) / deltaTime)
	return int(clampFloat(raw, minStepsPerFrame, maxStepsPerFrame))
}

func clampSpeed(speed float64) float64 {
	return clampFloat(speed, 1, 100)
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
