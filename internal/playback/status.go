package playback

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/san-kum/sortviz/internal/sorting"
)

type Mode int

const (
	Buffered Mode = iota
	LockStep
)

func (m Mode) String() string {
	if m == LockStep {
		return "lockstep"
	}
	return "buffered"
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "buffered":
		return Buffered, nil
	case "lockstep", "lock-step", "step":
		return LockStep, nil
	default:
		return Buffered, fmt.Errorf("unknown playback mode: %s", s)
	}
}

const DefaultInterval = 200 * time.Millisecond

type Option func(*Status)

func WithMode(m Mode) Option { return func(s *Status) { s.mode = m } }

func WithAutoPlay(on bool) Option { return func(s *Status) { s.autoPlay = on } }

func WithInterval(d time.Duration) Option {
	return func(s *Status) {
		if d > 0 {
			s.interval = d
		}
	}
}

// Status is the shared record of one visualization session. All mutable
// fields are guarded by mu; no critical section can panic.
type Status struct {
	name    string
	initial []int
	mode    Mode

	mu       sync.Mutex
	history  []sorting.Step
	cursor   int
	autoPlay bool
	interval time.Duration
	lastTick time.Time
	waiting  bool
	spawned  bool
	done     bool
	err      error

	release    chan struct{}
	closed     chan struct{}
	finished   chan struct{}
	closeOnce  sync.Once
	finishOnce sync.Once
}

// New creates a status whose history starts with a Noop holding initial.
func New(name string, initial []int, opts ...Option) *Status {
	s := &Status{
		name:     name,
		initial:  slices.Clone(initial),
		interval: DefaultInterval,
		autoPlay: true,
		release:  make(chan struct{}),
		closed:   make(chan struct{}),
		finished: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.history = []sorting.Step{{Op: sorting.Noop(), Snapshot: slices.Clone(initial)}}
	return s
}

// Record appends a step. In lock-step mode it then blocks until the consumer
// reaches the new entry or the status is closed.
func (s *Status) Record(op sorting.Operation, snapshot []int) {
	if s.Closed() {
		return
	}

	s.mu.Lock()
	s.history = append(s.history, sorting.Step{Op: op, Snapshot: snapshot})
	if s.mode != LockStep {
		s.mu.Unlock()
		return
	}
	s.waiting = true
	s.mu.Unlock()

	select {
	case <-s.release:
	case <-s.closed:
	}
}

func (s *Status) Advance() {
	s.mu.Lock()
	s.advanceLocked()
	release := s.takeReleaseLocked()
	s.mu.Unlock()

	if release {
		s.signal()
	}
}

func (s *Status) Retreat() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor > 0 {
		s.cursor--
	}
}

func (s *Status) AdvanceToLatest() {
	s.mu.Lock()
	s.cursor = len(s.history) - 1
	release := s.takeReleaseLocked()
	s.mu.Unlock()

	if release {
		s.signal()
	}
}

// Tick advances the cursor at most once when auto-play is on and more than
// one interval has passed since the last auto step. The first tick after
// auto-play starts only arms the clock.
func (s *Status) Tick(now time.Time) bool {
	s.mu.Lock()
	if !s.autoPlay {
		s.mu.Unlock()
		return false
	}
	if s.lastTick.IsZero() {
		s.lastTick = now
		s.mu.Unlock()
		return false
	}
	if now.Sub(s.lastTick) <= s.interval {
		s.mu.Unlock()
		return false
	}
	s.lastTick = now
	moved := s.advanceLocked()
	release := s.takeReleaseLocked()
	s.mu.Unlock()

	if release {
		s.signal()
	}
	return moved
}

// ToggleAutoPlay flips auto-play and returns the new setting.
func (s *Status) ToggleAutoPlay() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoPlay = !s.autoPlay
	s.lastTick = time.Time{}
	return s.autoPlay
}

func (s *Status) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	s.mu.Lock()
	s.interval = d
	s.mu.Unlock()
}

// Close releases a blocked algorithm goroutine. Later Record calls are
// dropped. Close is safe to call more than once.
func (s *Status) Close() {
	s.closeOnce.Do(func() { close(s.closed) })
}

func (s *Status) Closed() bool {
	select {
	case <-s.closed:
		return true
	default:
		return false
	}
}

func (s *Status) advanceLocked() bool {
	if s.cursor < len(s.history)-1 {
		s.cursor++
		return true
	}
	return false
}

func (s *Status) takeReleaseLocked() bool {
	if s.waiting && s.cursor == len(s.history)-1 {
		s.waiting = false
		return true
	}
	return false
}

func (s *Status) signal() {
	select {
	case s.release <- struct{}{}:
	case <-s.closed:
	}
}

// claim marks the status as having a producer. Only the first call succeeds.
func (s *Status) claim() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.spawned {
		return false
	}
	s.spawned = true
	return true
}

func (s *Status) finish(err error) {
	s.finishOnce.Do(func() {
		s.mu.Lock()
		s.done = true
		s.err = err
		s.mu.Unlock()
		close(s.finished)
	})
}
