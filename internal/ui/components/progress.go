package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/minhvu/atelier/internal/ui/theme"
)

// ScoreBar displays a horizontal score bar, colored by outcome.
type ScoreBar struct {
	Label   string
	Percent int // 0..100
	Width   int
}

// NewScoreBar creates a new score bar.
func NewScoreBar(label string, percent, width int) ScoreBar {
	return ScoreBar{Label: label, Percent: percent, Width: width}
}

// View renders the bar.
func (p ScoreBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 6 // " 100%"

	barWidth := p.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := barWidth * p.Percent / 100
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	fillColor := theme.Success
	if p.Percent < 50 {
		fillColor = theme.Accent
	}

	result += lipgloss.NewStyle().Background(fillColor).Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", empty))
	result += lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d%%", p.Percent))

	return result
}
