package viz

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/sorting"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestColumn(t *testing.T) {
	tests := []struct {
		v    int
		want string
	}{
		{0, ""},
		{1, "▂"},
		{2, "▄"},
		{3, "▆"},
		{4, "█"},
		{6, "█▄"},
		{32, "████████"},
	}
	for _, tt := range tests {
		if got := string(column(tt.v)); got != tt.want {
			t.Errorf("column(%d): expected %q, got %q", tt.v, tt.want, got)
		}
	}
}

func TestRenderBlocks(t *testing.T) {
	s := newStyles(ThemeMono)
	out := renderBlocks([]int{1, 8, 5}, sorting.Noop(), s)
	lines := strings.Split(out, "\n")

	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d: %q", len(lines), out)
	}
	if !strings.Contains(lines[0], "█▂") {
		t.Errorf("unexpected top row %q", lines[0])
	}
	if !strings.Contains(lines[1], "▂██") {
		t.Errorf("unexpected bottom row %q", lines[1])
	}
}

func TestBlockRows(t *testing.T) {
	if blockRows(32) != 8 {
		t.Errorf("expected 8 rows for 32, got %d", blockRows(32))
	}
	if blockRows(33) != 9 {
		t.Errorf("expected 9 rows for 33, got %d", blockRows(33))
	}
	if blockRows(0) != 0 {
		t.Errorf("expected 0 rows for 0, got %d", blockRows(0))
	}
}

func TestMenuIndexWraps(t *testing.T) {
	if got := nextIndex(-1, 8); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
	if got := nextIndex(7, 8); got != 0 {
		t.Errorf("expected wrap to 0, got %d", got)
	}
	if got := prevIndex(0, 8); got != 7 {
		t.Errorf("expected wrap to 7, got %d", got)
	}
	if got := prevIndex(-1, 8); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
	if got := nextIndex(0, 0); got != -1 {
		t.Errorf("expected -1 for empty list, got %d", got)
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("nope").Name != "default" {
		t.Error("expected fallback to default theme")
	}
	if NextTheme(Themes[len(Themes)-1]).Name != Themes[0].Name {
		t.Error("expected theme cycle to wrap")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("expected one name per theme")
	}
	for _, name := range []string{"neon", "ocean", "mono"} {
		if GetTheme(name).Name != name {
			t.Errorf("missing theme %s", name)
		}
	}
}

func TestTitledBorder(t *testing.T) {
	out := titledBorder("bubble sort", "abc", newStyles(ThemeMono))
	first := strings.Split(out, "\n")[0]
	if !strings.Contains(first, "bubble sort") {
		t.Errorf("expected title in top border, got %q", first)
	}
}

func testModel(cfg *config.Config) model {
	return newModel(Options{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func update(m model, msg tea.Msg) (model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(model), cmd
}

func TestModel_MenuNavigation(t *testing.T) {
	m := testModel(nil)
	if m.cursor != 0 {
		t.Fatalf("expected default algorithm preselected, got %d", m.cursor)
	}

	m, _ = update(m, runes("k"))
	if m.cursor != len(m.names)-1 {
		t.Errorf("expected wrap to last entry, got %d", m.cursor)
	}
	m, _ = update(m, runes("j"))
	if m.cursor != 0 {
		t.Errorf("expected wrap to first entry, got %d", m.cursor)
	}
	m, _ = update(m, runes("h"))
	if m.cursor != -1 {
		t.Errorf("expected no selection, got %d", m.cursor)
	}

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != stateMenu {
		t.Error("expected enter without selection to stay on the menu")
	}
}

func TestModel_TooSmall(t *testing.T) {
	m := testModel(nil)
	m, _ = update(m, tea.WindowSizeMsg{Width: 20, Height: 40})
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.state != stateMenu {
		t.Fatal("expected to stay on the menu")
	}
	if !strings.Contains(m.notice, "width is too small") {
		t.Errorf("expected width notice, got %q", m.notice)
	}
	if !strings.Contains(m.View(), "width is too small") {
		t.Error("expected notice in the view")
	}
}

func TestModel_ExplicitSizeMustFit(t *testing.T) {
	m := testModel(config.GetPreset("large"))
	m, _ = update(m, tea.WindowSizeMsg{Width: 40, Height: 10})
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.state != stateMenu {
		t.Fatal("expected 128 elements not to start in a 40x10 display")
	}
	if !strings.Contains(m.notice, "width is too small") {
		t.Errorf("expected width notice, got %q", m.notice)
	}

	m, _ = update(m, tea.WindowSizeMsg{Width: 200, Height: 20})
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != stateMenu || !strings.Contains(m.notice, "height is too small") {
		t.Fatalf("expected height notice, got state %d notice %q", m.state, m.notice)
	}

	m, _ = update(m, tea.WindowSizeMsg{Width: 200, Height: 60})
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != stateVisual {
		t.Fatalf("expected visualization, notice %q", m.notice)
	}
	if got := len(m.visual.Status().Initial()); got != 128 {
		t.Errorf("expected 128 elements, got %d", got)
	}
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.notice != "" {
		t.Errorf("expected notice cleared, got %q", m.notice)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sortviz.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	return path
}

func TestReloadConfig_KeepsPrecedence(t *testing.T) {
	flags := func(c *config.Config) { c.TickInterval = 50 * time.Millisecond }

	tests := []struct {
		name      string
		body      string
		wantTick  time.Duration
		wantFrame time.Duration
		wantTheme string
	}{
		{"file without overrides keeps the preset", "algorithm: heap sort\n", 50 * time.Millisecond, 20 * time.Millisecond, "neon"},
		{"file beats the preset", "theme: ocean\nframe_interval: 30ms\n", 50 * time.Millisecond, 30 * time.Millisecond, "ocean"},
		{"flags beat the file", "tick_interval: 300ms\n", 50 * time.Millisecond, 20 * time.Millisecond, "neon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := reloadConfig(writeConfig(t, tt.body), config.GetPreset("fast"), flags)
			if msg.err != nil {
				t.Fatalf("reload failed: %v", msg.err)
			}
			if msg.cfg.TickInterval != tt.wantTick {
				t.Errorf("tick: expected %s, got %s", tt.wantTick, msg.cfg.TickInterval)
			}
			if msg.cfg.FrameInterval != tt.wantFrame {
				t.Errorf("frame: expected %s, got %s", tt.wantFrame, msg.cfg.FrameInterval)
			}
			if msg.cfg.Theme != tt.wantTheme {
				t.Errorf("theme: expected %s, got %s", tt.wantTheme, msg.cfg.Theme)
			}
		})
	}
}

func TestReloadConfig_Errors(t *testing.T) {
	if msg := reloadConfig(writeConfig(t, "tick_interval: [\n"), nil, nil); msg.err == nil {
		t.Error("expected parse error")
	}
	if msg := reloadConfig(writeConfig(t, "mode: sideways\n"), nil, nil); !errors.Is(msg.err, config.ErrInvalidConfig) {
		t.Errorf("expected invalid config, got %v", msg.err)
	}
	if msg := reloadConfig(filepath.Join(t.TempDir(), "missing.yaml"), nil, nil); msg.err == nil {
		t.Error("expected read error")
	}
}

func TestModel_AppliesReloadedConfig(t *testing.T) {
	path := writeConfig(t, "algorithm: heap sort\n")
	cfg := config.GetPreset("fast")
	cfg.TickInterval = 50 * time.Millisecond
	m := newModel(Options{
		Config:     cfg,
		ConfigPath: path,
		Base:       config.GetPreset("fast"),
		Overlay:    func(c *config.Config) { c.TickInterval = 50 * time.Millisecond },
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	m, _ = update(m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != stateVisual {
		t.Fatalf("expected visualization, notice %q", m.notice)
	}

	m, cmd := update(m, m.reload())
	if cmd != nil {
		t.Error("expected no watcher command without a watcher")
	}
	if m.cfg.TickInterval != 50*time.Millisecond || m.visual.Status().Interval() != 50*time.Millisecond {
		t.Errorf("expected flag tick to survive the reload, got %s / %s", m.cfg.TickInterval, m.visual.Status().Interval())
	}
	if m.theme.Name != "neon" || m.cfg.FrameInterval != 20*time.Millisecond {
		t.Errorf("expected preset theme and frame to survive, got %s / %s", m.theme.Name, m.cfg.FrameInterval)
	}

	m, _ = update(m, configChangedMsg{err: config.ErrInvalidConfig})
	if !strings.HasPrefix(m.notice, "config: ") {
		t.Errorf("expected reload error notice, got %q", m.notice)
	}
	if m.theme.Name != "neon" {
		t.Error("expected a failed reload to keep the current settings")
	}
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEsc})
}

func TestModel_SessionLifecycle(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Mode = "lockstep"
	cfg.Seed = 5
	cfg.AutoPlay = false
	m := testModel(cfg)

	m, _ = update(m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, cmd := update(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != stateVisual {
		t.Fatalf("expected visualization, notice %q", m.notice)
	}
	if cmd == nil {
		t.Error("expected a tick command")
	}

	st := m.visual.Status()
	if st.Mode() != playback.LockStep || st.AutoPlay() {
		t.Errorf("expected paused lockstep session, got %s autoplay=%v", st.Mode(), st.AutoPlay())
	}

	deadline := time.Now().Add(2 * time.Second)
	for st.HistoryLength() < 2 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyRight})
	if st.CursorIndex() != 1 {
		t.Errorf("expected cursor 1, got %d", st.CursorIndex())
	}
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyLeft})
	if st.CursorIndex() != 0 {
		t.Errorf("expected paused retreat to cursor 0, got %d", st.CursorIndex())
	}
	if !strings.Contains(m.View(), "step: 0") {
		t.Error("expected step info while paused")
	}

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != stateMenu {
		t.Error("expected esc to return to the menu")
	}
	select {
	case <-st.Finished():
	case <-time.After(2 * time.Second):
		t.Error("expected closed session to release the algorithm")
	}
}

func TestVisual_RetreatOnlyWhilePaused(t *testing.T) {
	st := playback.New("bubble sort", []int{2, 1})
	st.Record(sorting.Compare(0, 1), []int{2, 1})
	st.Advance()

	v := NewVisual(1, st, ThemeDefault, time.Millisecond, true)
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if st.CursorIndex() != 1 {
		t.Errorf("expected left to be ignored during auto-play, got %d", st.CursorIndex())
	}

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if st.CursorIndex() != 0 {
		t.Errorf("expected retreat while paused, got %d", st.CursorIndex())
	}
	if !strings.Contains(v.View(), "inversions") {
		t.Error("expected metrics panel")
	}
}

func TestVisual_IgnoresStaleTicks(t *testing.T) {
	st := playback.New("bubble sort", []int{2, 1})
	v := NewVisual(2, st, ThemeDefault, time.Millisecond, false)

	if _, cmd := v.Update(TickMsg{Time: time.Now(), Session: 1}); cmd != nil {
		t.Error("expected stale tick to be dropped")
	}
	if _, cmd := v.Update(TickMsg{Time: time.Now(), Session: 2}); cmd == nil {
		t.Error("expected current tick to reschedule")
	}
}

func TestVisual_ReportsAlgorithmError(t *testing.T) {
	st := playback.New("bubble sort", []int{2, 1})
	playback.Spawn(st, func([]int, sorting.Recorder) { panic("boom") }, slog.New(slog.NewTextHandler(io.Discard, nil)))
	<-st.Finished()

	v := NewVisual(1, st, ThemeDefault, time.Millisecond, false)
	_, cmd := v.Update(TickMsg{Time: time.Now(), Session: 1})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(algorithmErrMsg); !ok {
		t.Error("expected algorithmErrMsg")
	}
}
