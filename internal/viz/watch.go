package viz

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/san-kum/sortviz/internal/config"
)

// configChangedMsg carries a reloaded configuration, or the error that
// prevented reloading it.
type configChangedMsg struct {
	cfg *config.Config
	err error
}

// reloadConfig layers the file over base, then applies overlay. The result
// follows the same precedence as startup: base < file < overlay.
func reloadConfig(path string, base *config.Config, overlay func(*config.Config)) configChangedMsg {
	if base == nil {
		base = config.DefaultConfig()
	}
	cfg, err := config.LoadOver(path, base)
	if err != nil {
		return configChangedMsg{err: err}
	}
	if overlay != nil {
		overlay(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return configChangedMsg{err: err}
	}
	return configChangedMsg{cfg: cfg}
}

// waitForConfigChange returns a command that blocks until the watched file
// is written and then reloads it with reload.
func waitForConfigChange(w *fsnotify.Watcher, reload func() configChangedMsg, logger *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-w.Events:
				if !ok {
					return nil
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				// editors often write in several chunks
				time.Sleep(100 * time.Millisecond)
				return reload()
			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}
				logger.Warn("config watcher error", slog.Any("error", err))
			}
		}
	}
}
