package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/sorting"
)

type styles struct {
	panel    lipgloss.Style
	title    lipgloss.Style
	bar      lipgloss.Style
	compare  lipgloss.Style
	swap     lipgloss.Style
	insert   lipgloss.Style
	text     lipgloss.Style
	muted    lipgloss.Style
	selected lipgloss.Style
	err      lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border),
		title:    lipgloss.NewStyle().Foreground(t.Title).Bold(true),
		bar:      lipgloss.NewStyle().Foreground(t.Bar),
		compare:  lipgloss.NewStyle().Foreground(t.Compare),
		swap:     lipgloss.NewStyle().Foreground(t.Swap),
		insert:   lipgloss.NewStyle().Foreground(t.Insert),
		text:     lipgloss.NewStyle().Foreground(t.Text),
		muted:    lipgloss.NewStyle().Foreground(t.Muted),
		selected: lipgloss.NewStyle().Foreground(t.Text).Background(t.Select).Bold(true),
		err:      lipgloss.NewStyle().Foreground(t.Error).Bold(true),
		label:    lipgloss.NewStyle().Foreground(t.Muted).Width(13),
		value:    lipgloss.NewStyle().Foreground(t.Text).Bold(true),
	}
}

// highlight returns the style for the columns touched by op.
func (s styles) highlight(op sorting.Operation) lipgloss.Style {
	switch op.Kind {
	case sorting.KindCompare:
		return s.compare
	case sorting.KindSwap:
		return s.swap
	case sorting.KindInsert:
		return s.insert
	default:
		return s.bar
	}
}

// ProgressBar renders a bar that is percent full.
func ProgressBar(percent float64, width int, filledStyle, emptyStyle lipgloss.Style) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return filledStyle.Render(strings.Repeat("█", filled)) + emptyStyle.Render(strings.Repeat("░", width-filled))
}

// titledBorder renders content inside a rounded border whose top edge carries
// title on the left.
func titledBorder(title, content string, s styles) string {
	box := s.panel.Render(content)
	lines := strings.Split(box, "\n")
	if len(lines) == 0 || title == "" {
		return box
	}

	w := lipgloss.Width(lines[0])
	label := s.title.Render(title)
	fill := w - 2 - lipgloss.Width(label)
	if fill < 0 {
		return box
	}
	border := lipgloss.NewStyle().Foreground(s.panel.GetBorderTopForeground())
	lines[0] = border.Render("╭") + label + border.Render(strings.Repeat("─", fill)+"╮")
	return strings.Join(lines, "\n")
}
