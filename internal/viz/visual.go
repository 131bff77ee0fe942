package viz

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/playback"
)

const (
	chartWidth  = 30
	chartHeight = 6
)

// TickMsg drives both rendering and auto-play of one session.
type TickMsg struct {
	Time    time.Time
	Session int
}

// algorithmErrMsg reports that the algorithm goroutine failed.
type algorithmErrMsg struct{ err error }

func tick(d time.Duration, session int) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return TickMsg{Time: t, Session: session} })
}

// Visual renders one session: the bars at the cursor, the step info while
// paused and an optional metrics panel.
type Visual struct {
	id        int
	status    *playback.Status
	tracker   *metrics.Tracker
	keys      keyMap
	help      help.Model
	styles    styles
	frame     time.Duration
	showChart bool
	showHelp  bool
}

func NewVisual(id int, st *playback.Status, theme Theme, frame time.Duration, showChart bool) Visual {
	return Visual{
		id:        id,
		status:    st,
		tracker:   metrics.NewTracker(),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		styles:    newStyles(theme),
		frame:     frame,
		showChart: showChart,
	}
}

func (v Visual) Init() tea.Cmd { return tick(v.frame, v.id) }

func (v Visual) Status() *playback.Status { return v.status }

func (v Visual) Update(msg tea.Msg) (Visual, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Forward):
			v.status.Advance()
		case key.Matches(msg, v.keys.Backward):
			if !v.status.AutoPlay() {
				v.status.Retreat()
			}
		case key.Matches(msg, v.keys.Toggle):
			v.status.ToggleAutoPlay()
		case key.Matches(msg, v.keys.Latest):
			v.status.AdvanceToLatest()
		case key.Matches(msg, v.keys.Chart):
			v.showChart = !v.showChart
		case key.Matches(msg, v.keys.Help):
			v.showHelp = !v.showHelp
			v.help.ShowAll = v.showHelp
		}
		v.sync()
	case TickMsg:
		if msg.Session != v.id {
			return v, nil
		}
		v.status.Tick(msg.Time)
		v.sync()
		if err := v.status.Err(); err != nil {
			return v, func() tea.Msg { return algorithmErrMsg{err: err} }
		}
		return v, tick(v.frame, v.id)
	}
	return v, nil
}

// sync feeds history entries the tracker has not seen yet.
func (v Visual) sync() {
	for i := v.tracker.Len(); i < v.status.HistoryLength(); i++ {
		step, ok := v.status.Step(i)
		if !ok {
			break
		}
		v.tracker.Observe(step)
	}
}

func (v *Visual) SetTheme(t Theme) { v.styles = newStyles(t) }

func (v *Visual) SetFrame(d time.Duration) {
	if d > 0 {
		v.frame = d
	}
}

func (v Visual) View() string {
	idx, step := v.status.Current()

	panel := titledBorder(v.status.Name(), renderBlocks(step.Snapshot, step.Op, v.styles), v.styles)

	var info strings.Builder
	if !v.status.AutoPlay() {
		info.WriteString(v.styles.text.Render(fmt.Sprintf("step: %d", idx)) + "\n")
		info.WriteString(v.styles.highlight(step.Op).Render(step.Op.Adjusted().String()))
	}
	left := lipgloss.JoinVertical(lipgloss.Left, panel, lipgloss.NewStyle().PaddingLeft(1).Render(info.String()))

	if !v.showChart {
		return lipgloss.JoinVertical(lipgloss.Left, left, v.help.View(v.keys))
	}
	side := v.sidePanel(idx)
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, left, side),
		v.help.View(v.keys))
}

func (v Visual) sidePanel(idx int) string {
	s := v.styles
	sample := v.tracker.At(idx)

	var b strings.Builder
	state := "playing"
	if !v.status.AutoPlay() {
		state = "paused"
	}
	if v.status.Done() {
		state += ", sorted"
	} else {
		state += ", sorting"
	}
	b.WriteString(s.title.Render(strings.ToUpper(v.status.Name())) + "\n")
	b.WriteString(s.muted.Render(state) + "\n\n")

	b.WriteString(s.label.Render("step") + s.value.Render(fmt.Sprintf("%d/%d", idx, v.status.HistoryLength()-1)) + "\n")
	b.WriteString(s.label.Render("comparisons") + s.value.Render(fmt.Sprint(sample.Comparisons)) + "\n")
	b.WriteString(s.label.Render("swaps") + s.value.Render(fmt.Sprint(sample.Swaps)) + "\n")
	b.WriteString(s.label.Render("inserts") + s.value.Render(fmt.Sprint(sample.Inserts)) + "\n")
	b.WriteString(s.label.Render("inversions") + s.value.Render(fmt.Sprint(sample.Inversions)) + "\n\n")

	b.WriteString(ProgressBar(v.tracker.Progress(idx), chartWidth, s.swap, s.muted) + "\n\n")

	if series := metrics.Downsample(v.tracker.Inversions(idx), chartWidth); len(series) > 1 {
		chart := asciigraph.Plot(series,
			asciigraph.Height(chartHeight),
			asciigraph.Width(chartWidth),
			asciigraph.Caption("inversions"))
		b.WriteString(s.bar.Render(chart))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(s.panel.GetBorderTopForeground()).
		Padding(0, 2).
		MarginLeft(2).
		Render(b.String())
}
