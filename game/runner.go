package game

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// minFrameRate keeps the ticker valid for a zero frame_rate
const minFrameRate = time.Millisecond

// Status values reported with each frame
const (
	StatusActive   = "Active"
	StatusPaused   = "Paused"
	StatusStagnant = "Stagnant"
	StatusExtinct  = "Extinct"
)

// Frame is what a renderer needs to draw one generation
type Frame struct {
	Generation     int
	Width, Height  int
	Live           []model.Point
	Status         string
	Stats          utils.Stats
	LastRestartGen int
}

// Renderer draws frames produced by the runner
type Renderer interface {
	Render(Frame) error
}

// Option configures a Runner
type Option func(*Runner)

// WithRenderer sets the renderer that receives a frame after every tick
func WithRenderer(r Renderer) Option {
	return func(rn *Runner) { rn.renderer = r }
}

// WithLogger sets the logger used for lifecycle events
func WithLogger(l *utils.Logger) Option {
	return func(rn *Runner) { rn.logger = l }
}

// Runner owns the grid and drives it at a fixed interval. All access to the
// grid goes through mu so commands can seed while the loop is running.
type Runner struct {
	mu       sync.Mutex
	grid     *model.Grid
	config   utils.Config
	rng      *rand.Rand
	history  history
	stats    *utils.Stats
	renderer Renderer
	logger   *utils.Logger

	generation     int
	lastRestartGen int
	stagnantCount  int
	paused         bool
	stepOnce       bool
	lastFrameTime  time.Time
}

// NewRunner builds a grid from the config and seeds it with the configured pattern
func NewRunner(config utils.Config, opts ...Option) (*Runner, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "[NewRunner]")
	}
	grid, err := model.NewGrid(config.Width, config.Height)
	if err != nil {
		return nil, errors.Wrap(err, "[NewRunner]")
	}

	r := &Runner{
		grid:   grid,
		config: config,
		rng:    newRNG(config.Seed),
		stats:  utils.NewStats(),
		logger: utils.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if err = SeedGrid(grid, config, r.rng); err != nil {
		return nil, errors.Wrap(err, "[NewRunner]")
	}
	return r, nil
}

// Run ticks the grid until ctx is done, a quit command arrives, or the
// generation limit is reached. Commands are read line by line from
// commands when it is not nil.
func (r *Runner) Run(ctx context.Context, commands io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer cancel()
		return r.loop(ctx)
	})
	if commands != nil {
		eg.Go(func() error {
			return r.readCommands(ctx, commands)
		})
	}

	err := eg.Wait()
	if errors.Is(err, errQuit) {
		r.logger.Event("QUIT", r.Generation(), "quit requested")
		return nil
	}
	return err
}

func (r *Runner) loop(ctx context.Context) error {
	r.logger.Event("START", r.Generation(), fmt.Sprintf("%dx%d every %v", r.config.Width, r.config.Height, r.config.FrameRate))

	ticker := time.NewTicker(max(r.config.FrameRate, minFrameRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Event("STOP", r.Generation(), "context done")
			return nil
		case <-ticker.C:
			frame, done := r.Tick()
			if r.renderer != nil {
				if err := r.renderer.Render(frame); err != nil {
					return errors.Wrap(err, "[Runner.loop] render failed")
				}
			}
			if done {
				r.logger.Event("LIMIT", frame.Generation, fmt.Sprintf("reached maximum generations (%d)", r.config.MaxGenerations))
				return nil
			}
		}
	}
}

// Tick advances one generation unless paused, applies the restart policy,
// and returns the resulting frame. done reports that the generation limit
// has been reached.
func (r *Runner) Tick() (frame Frame, done bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.paused && !r.stepOnce {
		return r.frame(StatusPaused), false
	}
	r.stepOnce = false

	frameStart := time.Now()
	r.grid.Step()
	r.generation++

	population := r.grid.Population()
	hash := r.grid.Hash()
	isStagnant := r.history.stagnant(hash)
	r.history.add(hash)
	if isStagnant {
		r.stagnantCount++
	} else {
		r.stagnantCount = 0
	}

	if !r.lastFrameTime.IsZero() {
		r.stats.Update(r.generation, population, frameStart.Sub(r.lastFrameTime))
	} else {
		r.stats.Update(r.generation, population, 0)
	}
	r.lastFrameTime = frameStart

	status := StatusActive
	if isStagnant {
		status = StatusStagnant
	}
	if population == 0 {
		status = StatusExtinct
	}

	if restart, reason := checkRestartConditions(population, r.stagnantCount, r.config); restart && r.config.AutoRestart {
		r.restartLocked(reason)
	} else if r.config.AutoRestart && r.stagnantCount >= 2 && r.stagnantCount < r.config.StagnationThreshold {
		injectLife(r.grid, r.rng, r.config.InjectionCount)
	}

	frame = r.frame(status)
	if r.paused {
		frame.Status = StatusPaused
	}
	return frame, r.config.MaxGenerations > 0 && r.generation >= r.config.MaxGenerations
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(population, stagnantCount int, config utils.Config) (bool, string) {
	if population == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

func (r *Runner) restartLocked(reason string) {
	if err := SeedGrid(r.grid, r.config, r.rng); err != nil {
		r.logger.Error(fmt.Sprintf("restart failed: %v", err))
		return
	}
	r.history.reset()
	r.stagnantCount = 0
	r.lastRestartGen = r.generation
	r.logger.Event("RESTART", r.generation, fmt.Sprintf("%s, living cells: %d", reason, r.grid.Population()))
}

func (r *Runner) frame(status string) Frame {
	return Frame{
		Generation:     r.generation,
		Width:          r.grid.Width(),
		Height:         r.grid.Height(),
		Live:           r.grid.LiveCells(),
		Status:         status,
		Stats:          *r.stats,
		LastRestartGen: r.lastRestartGen,
	}
}

// Generation returns the number of generations stepped so far
func (r *Runner) Generation() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.generation
}

// LiveCells returns the live cells of the current generation
func (r *Runner) LiveCells() []model.Point {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.grid.LiveCells()
}

// Size returns the current grid dimensions
func (r *Runner) Size() (width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.grid.Width(), r.grid.Height()
}

// SetAlive seeds or kills a single cell
func (r *Runner) SetAlive(x, y int, alive bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.grid.SetAlive(x, y, alive)
}

// Pause stops stepping until Resume is called
func (r *Runner) Pause() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paused = true
}

// Resume continues stepping after Pause or Reset
func (r *Runner) Resume() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paused = false
}

// StepOnce lets the next tick advance a single generation while paused
func (r *Runner) StepOnce() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stepOnce = true
}

// Reset kills every cell and pauses the runner so the board can be seeded by hand
func (r *Runner) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.grid.Clear()
	r.history.reset()
	r.stagnantCount = 0
	r.generation = 0
	r.lastRestartGen = 0
	r.paused = true
	r.logger.Event("RESET", 0, "board cleared")
}

// Restart reseeds the board with the configured pattern
func (r *Runner) Restart() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.restartLocked("requested")
}

// Resize swaps in a width x height grid keeping the live cells that still fit
func (r *Runner) Resize(width, height int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	next, err := Resize(r.grid, width, height)
	if err != nil {
		return err
	}
	r.grid = next
	r.history.reset()
	r.logger.Event("RESIZE", r.generation, fmt.Sprintf("%dx%d", width, height))
	return nil
}
