package game

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func blinkerConfig() utils.Config {
	cfg := utils.DefaultConfig()
	cfg.Width, cfg.Height = 5, 5
	cfg.Pattern = utils.PatternBlinker
	cfg.AutoRestart = false
	cfg.FrameRate = time.Millisecond
	cfg.MaxGenerations = 0
	return cfg
}

func newTestRunner(t *testing.T, cfg utils.Config, opts ...Option) *Runner {
	t.Helper()
	r, err := NewRunner(cfg, opts...)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	return r
}

func samePoints(a, b []model.Point) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[model.Point]bool, len(a))
	for _, p := range a {
		set[p] = true
	}
	for _, p := range b {
		if !set[p] {
			return false
		}
	}
	return true
}

var (
	horizontal = []model.Point{{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}}
	vertical   = []model.Point{{X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}}
)

type recordingRenderer struct {
	mu     sync.Mutex
	frames []Frame
}

func (r *recordingRenderer) Render(f Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, f)
	return nil
}

func TestNewRunnerInvalidConfig(t *testing.T) {
	cfg := blinkerConfig()
	cfg.Width = 0
	if _, err := NewRunner(cfg); !errors.Is(err, utils.ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestNewRunnerPatternTooLarge(t *testing.T) {
	cfg := blinkerConfig()
	cfg.Width, cfg.Height = 2, 2
	if _, err := NewRunner(cfg); !errors.Is(err, model.ErrOutOfBounds) {
		t.Fatalf("err = %v, want ErrOutOfBounds", err)
	}
}

func TestTickBlinker(t *testing.T) {
	r := newTestRunner(t, blinkerConfig())
	if !samePoints(r.LiveCells(), horizontal) {
		t.Fatalf("seeded %v, want %v", r.LiveCells(), horizontal)
	}

	frame, done := r.Tick()
	if done {
		t.Fatal("unlimited run reported done")
	}
	if frame.Generation != 1 || frame.Status != StatusActive {
		t.Fatalf("unexpected frame %+v", frame)
	}
	if !samePoints(frame.Live, vertical) {
		t.Fatalf("gen 1 live = %v, want %v", frame.Live, vertical)
	}

	frame, _ = r.Tick()
	if !samePoints(frame.Live, horizontal) {
		t.Fatalf("gen 2 live = %v, want %v", frame.Live, horizontal)
	}

	frame, _ = r.Tick()
	if frame.Status != StatusStagnant {
		t.Fatalf("gen 3 status = %q, want %q", frame.Status, StatusStagnant)
	}
}

func TestTickMaxGenerations(t *testing.T) {
	cfg := blinkerConfig()
	cfg.MaxGenerations = 2
	r := newTestRunner(t, cfg)
	if _, done := r.Tick(); done {
		t.Fatal("done after one generation")
	}
	if _, done := r.Tick(); !done {
		t.Fatal("not done after two generations")
	}
}

func TestTickRestartsOnExtinction(t *testing.T) {
	cfg := blinkerConfig()
	cfg.AutoRestart = true
	r := newTestRunner(t, cfg)
	r.Reset()
	r.Resume()
	if err := r.SetAlive(0, 0, true); err != nil {
		t.Fatal(err)
	}

	frame, _ := r.Tick()
	if frame.Status != StatusExtinct {
		t.Fatalf("status = %q, want %q", frame.Status, StatusExtinct)
	}
	if frame.LastRestartGen != 1 {
		t.Fatalf("LastRestartGen = %d, want 1", frame.LastRestartGen)
	}
	if !samePoints(frame.Live, horizontal) {
		t.Fatalf("restart seeded %v, want %v", frame.Live, horizontal)
	}
}

func TestPauseAndStepOnce(t *testing.T) {
	r := newTestRunner(t, blinkerConfig())
	r.Pause()

	frame, _ := r.Tick()
	if frame.Status != StatusPaused || frame.Generation != 0 {
		t.Fatalf("paused tick advanced: %+v", frame)
	}

	r.StepOnce()
	frame, _ = r.Tick()
	if frame.Generation != 1 || !samePoints(frame.Live, vertical) {
		t.Fatalf("single step frame %+v", frame)
	}

	frame, _ = r.Tick()
	if frame.Generation != 1 {
		t.Fatalf("step once advanced twice: %+v", frame)
	}

	r.Resume()
	if frame, _ = r.Tick(); frame.Generation != 2 {
		t.Fatalf("resume did not advance: %+v", frame)
	}
}

func TestResetPausesEmptyBoard(t *testing.T) {
	r := newTestRunner(t, blinkerConfig())
	r.Tick()
	r.Reset()

	if live := r.LiveCells(); len(live) != 0 {
		t.Fatalf("reset left %v", live)
	}
	if frame, _ := r.Tick(); frame.Status != StatusPaused || frame.Generation != 0 {
		t.Fatalf("unexpected frame after reset %+v", frame)
	}
}

func TestRunStopsAtMaxGenerations(t *testing.T) {
	cfg := blinkerConfig()
	cfg.MaxGenerations = 5
	rec := &recordingRenderer{}
	r := newTestRunner(t, cfg, WithRenderer(rec))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.Run(ctx, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if r.Generation() != 5 {
		t.Fatalf("generation = %d, want 5", r.Generation())
	}
	if len(rec.frames) != 5 {
		t.Fatalf("rendered %d frames, want 5", len(rec.frames))
	}
	if !samePoints(rec.frames[4].Live, vertical) {
		t.Fatalf("gen 5 live = %v, want %v", rec.frames[4].Live, vertical)
	}
}

func TestRunQuitCommand(t *testing.T) {
	r := newTestRunner(t, blinkerConfig())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := r.Run(ctx, strings.NewReader("pause\nquit\n")); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ctx.Err() != nil {
		t.Fatal("Run only returned after the timeout")
	}
}

func TestRunContextCancel(t *testing.T) {
	r := newTestRunner(t, blinkerConfig())
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := r.Run(ctx, strings.NewReader("set 0 0\n")); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

type failingRenderer struct{}

func (failingRenderer) Render(Frame) error { return errors.New("screen gone") }

func TestRunRenderError(t *testing.T) {
	r := newTestRunner(t, blinkerConfig(), WithRenderer(failingRenderer{}))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := r.Run(ctx, nil); err == nil || !strings.Contains(err.Error(), "screen gone") {
		t.Fatalf("err = %v, want render failure", err)
	}
}
