package experiment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/sorting"
)

type Config struct {
	Algorithm string
	Mode      playback.Mode
	Size      int
	Seed      int64
	Interval  time.Duration
	AutoPlay  bool
}

type Result struct {
	Algorithm string
	Seed      int64
	Initial   []int
	Steps     []sorting.Step
	Metrics   map[string]float64
	Elapsed   time.Duration
}

// Final returns the last snapshot of the trace.
func (r *Result) Final() []int {
	if len(r.Steps) == 0 {
		return r.Initial
	}
	return r.Steps[len(r.Steps)-1].Snapshot
}

type Experiment struct {
	cfg    Config
	fn     sorting.Func
	logger *slog.Logger
}

func New(cfg Config, logger *slog.Logger) (*Experiment, error) {
	fn, err := Resolve(cfg.Algorithm)
	if err != nil {
		return nil, err
	}
	if cfg.Size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, cfg.Size)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Experiment{cfg: cfg, fn: fn, logger: logger}, nil
}

func (e *Experiment) Config() Config { return e.cfg }

// Start shuffles a fresh sequence and launches the algorithm against a new
// Status in the configured mode. The caller owns the Status and should Close
// it when the session is discarded.
func (e *Experiment) Start() (*playback.Status, error) {
	nums, err := Sequence(e.cfg.Size, e.cfg.Seed)
	if err != nil {
		return nil, err
	}

	st := playback.New(e.cfg.Algorithm, nums,
		playback.WithMode(e.cfg.Mode),
		playback.WithAutoPlay(e.cfg.AutoPlay),
		playback.WithInterval(e.cfg.Interval),
	)
	playback.Spawn(st, e.fn, e.logger)
	return st, nil
}

// Run executes the algorithm to completion in buffered mode and returns the
// whole trace.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	nums, err := Sequence(e.cfg.Size, e.cfg.Seed)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	st := playback.New(e.cfg.Algorithm, nums, playback.WithAutoPlay(false))
	playback.Spawn(st, e.fn, e.logger)

	select {
	case <-st.Finished():
	case <-ctx.Done():
		st.Close()
		return nil, ctx.Err()
	}
	if err := st.Err(); err != nil {
		return nil, err
	}

	steps := st.Steps()
	return &Result{
		Algorithm: e.cfg.Algorithm,
		Seed:      e.cfg.Seed,
		Initial:   nums,
		Steps:     steps,
		Metrics:   metrics.Collect(steps),
		Elapsed:   time.Since(start),
	}, nil
}
