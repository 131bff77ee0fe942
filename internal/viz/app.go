package viz

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/experiment"
)

const (
	stateMenu = iota
	stateVisual
)

// Options configures the interactive application.
type Options struct {
	Config *config.Config
	// ConfigPath is reloaded on every write when Watch is set.
	ConfigPath string
	Watch      bool
	// Base is what a reloaded file is layered over, usually the preset.
	// Defaults are used when it is nil.
	Base *config.Config
	// Overlay reapplies settings that take precedence over the file, such as
	// explicitly set flags.
	Overlay func(*config.Config)
	Logger  *slog.Logger
}

type model struct {
	state         int
	names         []string
	cursor        int // -1 when nothing is selected
	cfg           *config.Config
	theme         Theme
	styles        styles
	keys          keyMap
	help          help.Model
	visual        Visual
	sessions      int
	notice        string
	err           error
	width, height int
	watcher       *fsnotify.Watcher
	configPath    string
	base          *config.Config
	overlay       func(*config.Config)
	logger        *slog.Logger
}

func newModel(opts Options) model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	theme := GetTheme(cfg.Theme)

	names := experiment.List()
	cursor := -1
	for i, n := range names {
		if n == cfg.Algorithm {
			cursor = i
		}
	}

	return model{
		state:      stateMenu,
		names:      names,
		cursor:     cursor,
		cfg:        cfg,
		theme:      theme,
		styles:     newStyles(theme),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		configPath: opts.ConfigPath,
		base:       opts.Base,
		overlay:    opts.Overlay,
		logger:     logger,
	}
}

func (m model) Init() tea.Cmd {
	if m.watcher != nil {
		return waitForConfigChange(m.watcher, m.reload, m.logger)
	}
	return nil
}

func (m model) reload() configChangedMsg {
	return reloadConfig(m.configPath, m.base, m.overlay)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.leave()
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Theme) {
			m.setTheme(NextTheme(m.theme))
			return m, nil
		}
		if m.state == stateMenu {
			return m.menuKey(msg)
		}
		if key.Matches(msg, m.keys.Back) {
			m.leave()
			return m, nil
		}
		if key.Matches(msg, m.keys.Quit) {
			m.leave()
			return m, tea.Quit
		}
	case algorithmErrMsg:
		m.err = msg.err
		m.leave()
		return m, tea.Quit
	case configChangedMsg:
		m.applyConfig(msg)
		if m.watcher == nil {
			return m, nil
		}
		return m, waitForConfigChange(m.watcher, m.reload, m.logger)
	}

	if m.state == stateVisual {
		var cmd tea.Cmd
		m.visual, cmd = m.visual.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.cursor = nextIndex(m.cursor, len(m.names))
	case key.Matches(msg, m.keys.Up):
		m.cursor = prevIndex(m.cursor, len(m.names))
	case key.Matches(msg, m.keys.Unselect):
		m.cursor = -1
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Select):
		if m.cursor < 0 {
			return m, nil
		}
		return m.start(m.names[m.cursor])
	}
	return m, nil
}

func nextIndex(i, n int) int {
	if n == 0 {
		return -1
	}
	if i < 0 || i >= n-1 {
		return 0
	}
	return i + 1
}

func prevIndex(i, n int) int {
	if n == 0 {
		return -1
	}
	if i < 0 {
		return 0
	}
	if i == 0 {
		return n - 1
	}
	return i - 1
}

// start launches a session for name. A display that is too small keeps the
// menu open and shows why.
func (m model) start(name string) (model, tea.Cmd) {
	size := m.cfg.Size
	if size == 0 {
		n, err := experiment.SizeFor(m.width, m.height)
		if err != nil {
			m.notice = err.Error()
			return m, nil
		}
		size = n
	} else if err := experiment.Fits(size, m.width, m.height); err != nil {
		m.notice = err.Error()
		return m, nil
	}
	mode, err := m.cfg.PlaybackMode()
	if err != nil {
		m.notice = err.Error()
		return m, nil
	}

	exp, err := experiment.New(experiment.Config{
		Algorithm: name,
		Mode:      mode,
		Size:      size,
		Seed:      m.cfg.Seed,
		Interval:  m.cfg.TickInterval,
		AutoPlay:  m.cfg.AutoPlay,
	}, m.logger)
	if err != nil {
		m.notice = err.Error()
		return m, nil
	}
	st, err := exp.Start()
	if err != nil {
		m.notice = err.Error()
		return m, nil
	}

	m.logger.Info("session started",
		slog.String("algorithm", name),
		slog.String("mode", mode.String()),
		slog.Int("size", size))

	m.notice = ""
	m.state = stateVisual
	m.sessions++
	m.visual = NewVisual(m.sessions, st, m.theme, m.cfg.FrameInterval, false)
	return m, m.visual.Init()
}

// leave discards the current session and returns to the menu.
func (m *model) leave() {
	if m.state != stateVisual {
		return
	}
	st := m.visual.Status()
	st.Close()
	m.logger.Info("session closed",
		slog.String("algorithm", st.Name()),
		slog.Int("steps", st.HistoryLength()),
		slog.Int("cursor", st.CursorIndex()))
	m.visual = Visual{}
	m.state = stateMenu
}

func (m *model) setTheme(t Theme) {
	m.theme = t
	m.styles = newStyles(t)
	if m.state == stateVisual {
		m.visual.SetTheme(t)
	}
}

func (m *model) applyConfig(msg configChangedMsg) {
	if msg.err != nil {
		m.logger.Warn("config reload failed", slog.String("path", m.configPath), slog.Any("error", msg.err))
		m.notice = "config: " + msg.err.Error()
		return
	}
	cfg := msg.cfg
	m.cfg.TickInterval = cfg.TickInterval
	m.cfg.FrameInterval = cfg.FrameInterval
	m.cfg.Theme = cfg.Theme
	m.setTheme(GetTheme(cfg.Theme))
	if m.state == stateVisual {
		m.visual.Status().SetInterval(cfg.TickInterval)
		m.visual.SetFrame(cfg.FrameInterval)
	}
	m.notice = ""
	m.logger.Info("config reloaded",
		slog.String("path", m.configPath),
		slog.Duration("tick_interval", cfg.TickInterval),
		slog.String("theme", cfg.Theme))
}

func (m model) View() string {
	var content string
	switch m.state {
	case stateMenu:
		content = m.viewMenu()
	case stateVisual:
		content = m.visual.View()
	}
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m model) viewMenu() string {
	const (
		menuWidth  = experiment.MinWidth
		menuHeight = experiment.MinHeight * 2
	)

	var b strings.Builder
	for i, name := range m.names {
		line := lipgloss.PlaceHorizontal(menuWidth, lipgloss.Center, name)
		if i == m.cursor {
			b.WriteString(m.styles.selected.Render(line))
		} else {
			b.WriteString(m.styles.text.Bold(true).Render(line))
		}
		if i < len(m.names)-1 {
			b.WriteByte('\n')
		}
	}

	list := lipgloss.NewStyle().Width(menuWidth).Height(menuHeight).Render(b.String())
	out := m.styles.panel.Render(list)
	if m.notice != "" {
		out += "\n" + m.styles.err.Render(m.notice)
	}
	return out + "\n" + m.help.View(menuHelp{m.keys})
}

// Run starts the interactive application and blocks until it exits. An
// algorithm failure ends the program and is returned.
func Run(opts Options) error {
	m := newModel(opts)

	if opts.Watch && opts.ConfigPath != "" {
		w, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("failed to create config watcher: %w", err)
		}
		defer w.Close()
		if err := w.Add(opts.ConfigPath); err != nil {
			return fmt.Errorf("failed to watch config file: %w", err)
		}
		m.watcher = w
	}

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
