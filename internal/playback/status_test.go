package playback_test

import (
	"errors"
	"io"
	"log/slog"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/sorting"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func ahead(st *playback.Status) int {
	return st.HistoryLength() - 1 - st.CursorIndex()
}

func ops(st *playback.Status) []sorting.Operation {
	steps := st.Steps()
	out := make([]sorting.Operation, len(steps))
	for i, s := range steps {
		out[i] = s.Op
	}
	return out
}

var _ = Describe("Status", func() {
	var st *playback.Status

	BeforeEach(func() {
		st = playback.New("bubble sort", []int{3, 1, 2})
	})

	Describe("a new status", func() {
		It("starts with a noop holding the initial sequence", func() {
			Expect(st.HistoryLength()).To(Equal(1))
			Expect(st.CursorIndex()).To(Equal(0))
			Expect(st.CurrentOperation().IsNoop()).To(BeTrue())
			Expect(st.CurrentSnapshot()).To(Equal([]int{3, 1, 2}))
			Expect(st.AutoPlay()).To(BeTrue())
			Expect(st.Interval()).To(Equal(playback.DefaultInterval))
			Expect(st.Mode()).To(Equal(playback.Buffered))
		})

		It("does not share the caller's slice", func() {
			in := []int{2, 1}
			s := playback.New("x", in)
			in[0] = 99
			Expect(s.CurrentSnapshot()).To(Equal([]int{2, 1}))
			Expect(s.Initial()).To(Equal([]int{2, 1}))
		})
	})

	Describe("cursor movement", func() {
		BeforeEach(func() {
			st.Record(sorting.Compare(0, 1), []int{3, 1, 2})
			st.Record(sorting.Swap(0, 1), []int{1, 3, 2})
		})

		It("clamps retreat at the first entry", func() {
			st.Retreat()
			Expect(st.CursorIndex()).To(Equal(0))
		})

		It("clamps advance at the last entry", func() {
			st.Advance()
			st.Advance()
			Expect(st.CursorIndex()).To(Equal(2))
			st.Advance()
			Expect(st.CursorIndex()).To(Equal(2))
			Expect(st.CurrentOperation()).To(Equal(sorting.Swap(0, 1)))
			Expect(st.CurrentSnapshot()).To(Equal([]int{1, 3, 2}))
		})

		It("walks back and forth", func() {
			st.AdvanceToLatest()
			Expect(st.CursorIndex()).To(Equal(2))
			st.Retreat()
			Expect(st.CursorIndex()).To(Equal(1))
			Expect(st.CurrentOperation()).To(Equal(sorting.Compare(0, 1)))
		})

		It("returns a private copy of the snapshot", func() {
			snap := st.CurrentSnapshot()
			snap[0] = 42
			Expect(st.CurrentSnapshot()).To(Equal([]int{3, 1, 2}))
		})

		It("exposes individual entries", func() {
			step, ok := st.Step(2)
			Expect(ok).To(BeTrue())
			Expect(step.Op).To(Equal(sorting.Swap(0, 1)))
			_, ok = st.Step(3)
			Expect(ok).To(BeFalse())
			_, ok = st.Step(-1)
			Expect(ok).To(BeFalse())
		})
	})

	Describe("auto-play", func() {
		base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

		BeforeEach(func() {
			st = playback.New("bubble sort", []int{3, 1, 2}, playback.WithInterval(100*time.Millisecond))
			for i := 0; i < 5; i++ {
				st.Record(sorting.Compare(0, 1), []int{3, 1, 2})
			}
		})

		It("advances exactly once for two ticks 150ms apart", func() {
			Expect(st.Tick(base)).To(BeFalse())
			Expect(st.Tick(base.Add(150 * time.Millisecond))).To(BeTrue())
			Expect(st.CursorIndex()).To(Equal(1))
		})

		It("advances at most once per tick regardless of overshoot", func() {
			st.Tick(base)
			st.Tick(base.Add(time.Second))
			Expect(st.CursorIndex()).To(Equal(1))
		})

		It("waits for more than one interval", func() {
			st.Tick(base)
			Expect(st.Tick(base.Add(50 * time.Millisecond))).To(BeFalse())
			Expect(st.Tick(base.Add(100 * time.Millisecond))).To(BeFalse())
			Expect(st.Tick(base.Add(101 * time.Millisecond))).To(BeTrue())
			Expect(st.Tick(base.Add(150 * time.Millisecond))).To(BeFalse())
			Expect(st.CursorIndex()).To(Equal(1))
		})

		It("freezes the cursor while toggled off", func() {
			st.Tick(base)
			Expect(st.ToggleAutoPlay()).To(BeFalse())
			Expect(st.Tick(base.Add(time.Second))).To(BeFalse())
			Expect(st.CursorIndex()).To(Equal(0))

			st.Advance()
			Expect(st.CursorIndex()).To(Equal(1))

			Expect(st.ToggleAutoPlay()).To(BeTrue())
			Expect(st.Tick(base.Add(2 * time.Second))).To(BeFalse())
			Expect(st.Tick(base.Add(3 * time.Second))).To(BeTrue())
			Expect(st.CursorIndex()).To(Equal(2))
		})

		It("stops at the end of the history", func() {
			now := base
			st.Tick(now)
			for i := 0; i < 10; i++ {
				now = now.Add(time.Second)
				st.Tick(now)
			}
			Expect(st.CursorIndex()).To(Equal(5))
		})

		It("picks up a new interval", func() {
			st.SetInterval(time.Second)
			st.SetInterval(0)
			Expect(st.Interval()).To(Equal(time.Second))
			st.Tick(base)
			Expect(st.Tick(base.Add(500 * time.Millisecond))).To(BeFalse())
		})
	})

	Describe("buffered sessions", func() {
		It("records the full trace independently of the cursor", func() {
			playback.Spawn(st, sorting.Bubble, quiet)
			Eventually(st.Finished()).Should(BeClosed())

			Expect(st.Done()).To(BeTrue())
			Expect(st.Err()).NotTo(HaveOccurred())
			Expect(st.CursorIndex()).To(Equal(0))
			Expect(ops(st)).To(Equal([]sorting.Operation{
				sorting.Noop(),
				sorting.Compare(0, 1), sorting.Swap(0, 1),
				sorting.Compare(1, 2), sorting.Swap(1, 2),
				sorting.Compare(0, 1),
				sorting.Noop(),
			}))

			st.AdvanceToLatest()
			Expect(st.CurrentSnapshot()).To(Equal([]int{1, 2, 3}))
			Expect(st.CurrentOperation().IsNoop()).To(BeTrue())
		})

		It("ignores a second producer", func() {
			playback.Spawn(st, sorting.Bubble, quiet)
			Expect(func() { playback.Spawn(st, sorting.Bubble, quiet) }).NotTo(Panic())
			Eventually(st.Finished()).Should(BeClosed())

			Consistently(st.HistoryLength, 50*time.Millisecond).Should(Equal(7))
			Expect(st.Err()).NotTo(HaveOccurred())
		})

		It("can be read while the algorithm runs", func() {
			st = playback.New("quick sort", []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0})
			playback.Spawn(st, sorting.Quick, quiet)
			for !st.Done() {
				st.Advance()
				Expect(st.CursorIndex()).To(BeNumerically("<", st.HistoryLength()))
			}
			st.AdvanceToLatest()
			Expect(st.CurrentSnapshot()).To(Equal([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}))
		})
	})

	Describe("lock-step sessions", func() {
		BeforeEach(func() {
			st = playback.New("bubble sort", []int{3, 1, 2}, playback.WithMode(playback.LockStep))
		})

		It("keeps at most one entry ahead of the cursor", func() {
			playback.Spawn(st, sorting.Bubble, quiet)

			Eventually(st.HistoryLength).Should(Equal(2))
			Consistently(st.HistoryLength, 50*time.Millisecond).Should(Equal(2))

			for !st.Done() {
				Expect(ahead(st)).To(BeNumerically("<=", 1))
				st.Advance()
				Eventually(func() bool {
					return st.Done() || ahead(st) == 1
				}).Should(BeTrue())
			}

			Expect(st.HistoryLength()).To(Equal(7))
			Expect(st.CursorIndex()).To(Equal(6))
			Expect(st.CurrentSnapshot()).To(Equal([]int{1, 2, 3}))
		})

		It("releases through auto-play ticks", func() {
			st = playback.New("heap sort", []int{2, 3, 1},
				playback.WithMode(playback.LockStep),
				playback.WithInterval(time.Millisecond))
			playback.Spawn(st, sorting.Heap, quiet)

			now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
			Eventually(func() bool {
				now = now.Add(10 * time.Millisecond)
				st.Tick(now)
				return st.Done()
			}).Should(BeTrue())
			Expect(st.CurrentSnapshot()).To(Equal([]int{1, 2, 3}))
		})

		It("retreating does not release the algorithm", func() {
			playback.Spawn(st, sorting.Bubble, quiet)
			Eventually(st.HistoryLength).Should(Equal(2))
			st.Advance()
			Eventually(st.HistoryLength).Should(Equal(3))

			st.Retreat()
			st.Advance()
			Consistently(st.HistoryLength, 30*time.Millisecond).Should(Equal(3))
			st.Advance()
			Eventually(st.HistoryLength).Should(Equal(4))
			st.Close()
		})

		It("unblocks the algorithm when closed", func() {
			playback.Spawn(st, sorting.Bubble, quiet)
			Eventually(st.HistoryLength).Should(Equal(2))

			st.Close()
			st.Close()
			Eventually(st.Finished()).Should(BeClosed())
			Expect(st.Closed()).To(BeTrue())
			Expect(st.HistoryLength()).To(Equal(2))
			Expect(st.Err()).NotTo(HaveOccurred())
		})
	})

	Describe("algorithm failures", func() {
		It("reports a panic as an AlgorithmError", func() {
			boom := func(nums []int, rec sorting.Recorder) {
				rec.Record(sorting.Compare(0, 1), nums)
				panic("index out of range")
			}
			playback.Spawn(st, boom, quiet)
			Eventually(st.Finished()).Should(BeClosed())

			Expect(st.Err()).To(MatchError(playback.ErrAlgorithmPanic))
			var algErr *playback.AlgorithmError
			Expect(errors.As(st.Err(), &algErr)).To(BeTrue())
			Expect(algErr.Name).To(Equal("bubble sort"))
			Expect(algErr.Step).To(Equal(1))
		})
	})
})

var _ = DescribeTable("ParseMode",
	func(in string, want playback.Mode, ok bool) {
		got, err := playback.ParseMode(in)
		if !ok {
			Expect(err).To(HaveOccurred())
			return
		}
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(want))
		Expect(got.String()).NotTo(BeEmpty())
	},
	Entry("empty", "", playback.Buffered, true),
	Entry("buffered", "buffered", playback.Buffered, true),
	Entry("lockstep", "LockStep", playback.LockStep, true),
	Entry("step alias", "step", playback.LockStep, true),
	Entry("unknown", "turbo", playback.Buffered, false),
)
