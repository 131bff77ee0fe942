package playback

import (
	"log/slog"
	"time"

	"github.com/san-kum/sortviz/internal/sorting"
)

// Spawn runs fn against a copy of the status's initial sequence on a new
// goroutine and returns immediately. A panic in fn is recovered and reported
// through Err as an *AlgorithmError. A status takes one producer; later calls
// are ignored.
func Spawn(st *Status, fn sorting.Func, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	if !st.claim() {
		logger.Warn("algorithm already running", slog.String("algorithm", st.Name()))
		return
	}
	nums := st.Initial()

	go func() {
		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				err := &AlgorithmError{
					Name:    st.Name(),
					Step:    st.HistoryLength() - 1,
					Value:   r,
					Wrapped: ErrAlgorithmPanic,
				}
				logger.Error("algorithm failed",
					slog.String("algorithm", st.Name()),
					slog.Any("error", err))
				st.finish(err)
				return
			}
			st.finish(nil)
			logger.Debug("algorithm finished",
				slog.String("algorithm", st.Name()),
				slog.Int("steps", st.HistoryLength()),
				slog.Bool("closed", st.Closed()),
				slog.Duration("elapsed", time.Since(start)))
		}()

		logger.Debug("algorithm started",
			slog.String("algorithm", st.Name()),
			slog.String("mode", st.Mode().String()),
			slog.Int("size", len(nums)))
		fn(nums, st)
	}()
}
