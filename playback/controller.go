package playback

import (
	"context"
	"sync"
	"time"

	"github.com/theoremus-urban-solutions/traffic-playback/simdata"
)

// Loader fetches a simulation run by identifier. *simdata.Client implements it.
type Loader interface {
	FetchRun(ctx context.Context, identifier string) (simdata.SimulationRun, error)
}

// Controller manages the lifecycle of one simulation run: loading, the step
// timer, and the derived view. All state is guarded by a single mutex; the
// tick goroutine is bound to a run generation and exits when the generation
// changes or playback stops, so no stray tick mutates a stale session.
type Controller struct {
	loader       Loader
	runPrefix    string
	tickInterval time.Duration

	mu       sync.Mutex
	run      simdata.SimulationRun
	step     int
	playing  bool
	loading  bool
	source   string
	loadErr  error
	loadSeq  uint64        // last issued load; completions with an older seq are discarded
	runGen   uint64        // bumped whenever the run is replaced
	stopTick chan struct{} // non-nil while the tick goroutine runs
}

// NewController creates a controller that loads runs through loader and
// advances playback at tickInterval.
func NewController(loader Loader, runPrefix string, tickInterval time.Duration) *Controller {
	return &Controller{
		loader:       loader,
		runPrefix:    runPrefix,
		tickInterval: tickInterval,
	}
}

// Initialize derives the run identifier from the current UTC date and loads
// it. Safe to call again: a newer load supersedes an older in-flight one.
func (c *Controller) Initialize(ctx context.Context) error {
	return c.Load(ctx, simdata.RunIdentifier(c.runPrefix, time.Now()))
}

// Load fetches the identified run and installs it as the active run,
// resetting the step to 0 and stopping playback. On failure the previous run
// is kept and the error is retained for the view. If a newer Load has been
// issued while this one was in flight, its result is discarded
// (last-request-wins).
func (c *Controller) Load(ctx context.Context, identifier string) error {
	c.mu.Lock()
	c.loadSeq++
	seq := c.loadSeq
	c.loading = true
	c.source = identifier
	c.mu.Unlock()

	run, err := c.loader.FetchRun(ctx, identifier)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.loadSeq {
		return nil
	}
	c.loading = false
	if err != nil {
		c.loadErr = err
		return err
	}
	c.loadErr = nil
	c.run = run
	c.step = 0
	c.runGen++
	c.playing = false
	c.stopTickLocked()
	return nil
}

// Play starts timer-driven playback. No-op while loading, on an empty run,
// or when already playing.
func (c *Controller) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.playing || c.loading || len(c.run) == 0 {
		return
	}
	c.playing = true
	stop := make(chan struct{})
	c.stopTick = stop
	go c.tickLoop(c.runGen, stop)
}

// Pause stops timer-driven playback. No-op when not playing.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.playing = false
	c.stopTickLocked()
}

// stopTickLocked cancels the pending tick goroutine. Callers hold c.mu.
func (c *Controller) stopTickLocked() {
	if c.stopTick != nil {
		close(c.stopTick)
		c.stopTick = nil
	}
}

func (c *Controller) tickLoop(gen uint64, stop chan struct{}) {
	t := time.NewTicker(c.tickInterval)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			c.mu.Lock()
			if c.runGen != gen || !c.playing {
				c.mu.Unlock()
				return
			}
			c.advanceLocked()
			c.mu.Unlock()
		}
	}
}

// Tick advances the current step by one, wrapping past the last frame.
// No-op on an empty run.
func (c *Controller) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.advanceLocked()
}

func (c *Controller) advanceLocked() {
	if len(c.run) == 0 {
		return
	}
	c.step = (c.step + 1) % len(c.run)
}

// SetStep selects a frame by index. Out-of-range values are clamped into
// [0, len-1]; no-op on an empty run.
func (c *Controller) SetStep(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.run) == 0 {
		return
	}
	if n < 0 {
		n = 0
	} else if n >= len(c.run) {
		n = len(c.run) - 1
	}
	c.step = n
}

// CurrentFrame returns the frame at the current step, or the empty sentinel
// frame when no run is loaded.
func (c *Controller) CurrentFrame() simdata.Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frameLocked(c.step)
}

// FrameAt returns the frame at a clamped step index, or the sentinel when no
// run is loaded.
func (c *Controller) FrameAt(n int) simdata.Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.run) > 0 {
		if n < 0 {
			n = 0
		} else if n >= len(c.run) {
			n = len(c.run) - 1
		}
	}
	return c.frameLocked(n)
}

func (c *Controller) frameLocked(n int) simdata.Frame {
	if len(c.run) == 0 {
		return simdata.EmptyFrame()
	}
	return c.run[n]
}

// CurrentStep returns the current step index.
func (c *Controller) CurrentStep() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step
}

// TotalSteps returns the length of the loaded run.
func (c *Controller) TotalSteps() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.run)
}

// RunGeneration identifies the currently installed run; it changes whenever
// a load replaces the run. Response caches key on it.
func (c *Controller) RunGeneration() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.runGen
}

// Statistics computes aggregate statistics over the loaded run.
func (c *Controller) Statistics() RunStatistics {
	c.mu.Lock()
	run := c.run
	c.mu.Unlock()
	return Statistics(run)
}

// Close stops playback for session end. The controller must not be used
// afterwards.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.playing = false
	c.stopTickLocked()
}
