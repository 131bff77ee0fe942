package playback

import (
	"slices"
	"time"

	"github.com/san-kum/sortviz/internal/sorting"
)

func (s *Status) Name() string              { return s.name }
func (s *Status) Mode() Mode                { return s.mode }
func (s *Status) Initial() []int            { return slices.Clone(s.initial) }
func (s *Status) Len() int                  { return len(s.initial) }
func (s *Status) Finished() <-chan struct{} { return s.finished }

// Current returns the cursor and its entry in one consistent read.
func (s *Status) Current() (int, sorting.Step) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor, s.history[s.cursor]
}

func (s *Status) CurrentSnapshot() []int {
	_, step := s.Current()
	return slices.Clone(step.Snapshot)
}

func (s *Status) CurrentOperation() sorting.Operation {
	_, step := s.Current()
	return step.Op
}

func (s *Status) CursorIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

func (s *Status) HistoryLength() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}

// Step returns entry i of the history.
func (s *Status) Step(i int) (sorting.Step, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.history) {
		return sorting.Step{}, false
	}
	return s.history[i], true
}

// Steps returns the history recorded so far. Snapshots are shared and must
// not be modified.
func (s *Status) Steps() []sorting.Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.history)
}

func (s *Status) AutoPlay() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.autoPlay
}

func (s *Status) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

// Done reports whether the algorithm goroutine has returned.
func (s *Status) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}

func (s *Status) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
