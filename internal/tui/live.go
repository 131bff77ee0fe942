package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/sorting"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
	reset       = "\033[0m"
	lightCyan   = "\033[96m"
	lightGreen  = "\033[92m"
	lightYellow = "\033[93m"
)

var glyphs = [...]rune{' ', '▂', '▄', '▆'}

// LiveRenderer plays a session on a plain ANSI terminal without taking over
// input. It is used where an interactive program is not wanted.
type LiveRenderer struct {
	out       io.Writer
	frameRate int
	color     bool
	lastIndex int
	tracker   *metrics.Tracker
}

func NewLiveRenderer(out io.Writer, frameRate int, color bool) *LiveRenderer {
	if out == nil {
		out = os.Stdout
	}
	if frameRate <= 0 {
		frameRate = 20
	}
	return &LiveRenderer{
		out:       out,
		frameRate: frameRate,
		color:     color,
		lastIndex: -1,
		tracker:   metrics.NewTracker(),
	}
}

// Play auto-plays st until its cursor rests on the final entry of a finished
// history or ctx is done. Frames are only drawn when the cursor moves.
func (r *LiveRenderer) Play(ctx context.Context, st *playback.Status) error {
	r.Start()
	defer r.Stop()

	ticker := time.NewTicker(time.Second / time.Duration(r.frameRate))
	defer ticker.Stop()

	for {
		r.OnFrame(st)
		if err := st.Err(); err != nil {
			return err
		}
		if st.Done() && st.CursorIndex() == st.HistoryLength()-1 {
			return nil
		}

		select {
		case <-ctx.Done():
			st.Close()
			return ctx.Err()
		case now := <-ticker.C:
			st.Tick(now)
		}
	}
}

// OnFrame draws the entry under the cursor if it changed since the last
// frame.
func (r *LiveRenderer) OnFrame(st *playback.Status) {
	idx, step := st.Current()
	for i := r.tracker.Len(); i <= idx; i++ {
		s, ok := st.Step(i)
		if !ok {
			break
		}
		r.tracker.Observe(s)
	}
	if idx == r.lastIndex {
		return
	}
	r.lastIndex = idx
	r.render(st.Name(), idx, step)
}

func (r *LiveRenderer) render(name string, idx int, step sorting.Step) {
	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf("  %s  step %d\n", name, idx))
	b.WriteString("  " + strings.Repeat("-", len(step.Snapshot)) + "\n")
	b.WriteString(r.Frame(step))
	b.WriteString("  " + strings.Repeat("-", len(step.Snapshot)) + "\n")

	sample := r.tracker.At(idx)
	b.WriteString(fmt.Sprintf("  %s\n", step.Op.Adjusted()))
	b.WriteString(fmt.Sprintf("  cmp=%d swp=%d ins=%d inv=%d\n",
		sample.Comparisons, sample.Swaps, sample.Inserts, sample.Inversions))

	fmt.Fprint(r.out, b.String())
}

// Frame renders the bars of one step, top row first, each line indented by
// two spaces.
func (r *LiveRenderer) Frame(step sorting.Step) string {
	highest := 0
	for _, v := range step.Snapshot {
		if v > highest {
			highest = v
		}
	}
	rows := (highest + 3) / 4

	hl := map[int]bool{}
	for _, i := range step.Op.Indices() {
		hl[i] = true
	}
	color := r.colorFor(step.Op)

	var b strings.Builder
	for row := rows - 1; row >= 0; row-- {
		b.WriteString("  ")
		for i, v := range step.Snapshot {
			c := cell(v, row)
			if hl[i] && color != "" {
				b.WriteString(color + string(c) + reset)
				continue
			}
			b.WriteRune(c)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// cell returns the glyph of a bar of height v at the given row.
func cell(v, row int) rune {
	full := v / 4
	switch {
	case row < full:
		return '█'
	case row == full:
		return glyphs[v%4]
	default:
		return ' '
	}
}

func (r *LiveRenderer) colorFor(op sorting.Operation) string {
	if !r.color {
		return ""
	}
	switch op.Kind {
	case sorting.KindCompare:
		return lightCyan
	case sorting.KindSwap:
		return lightGreen
	case sorting.KindInsert:
		return lightYellow
	}
	return ""
}

func (r *LiveRenderer) Start() { fmt.Fprint(r.out, hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Fprint(r.out, showCursor) }
