// Package review renders the post-play report: score bar, per-item
// outcomes, and grounding citations when the lesson has any.
package review

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/minhvu/atelier/internal/exercise"
	"github.com/minhvu/atelier/internal/review"
	"github.com/minhvu/atelier/internal/router"
	"github.com/minhvu/atelier/internal/screen"
	"github.com/minhvu/atelier/internal/ui/components"
	"github.com/minhvu/atelier/internal/ui/layout"
	"github.com/minhvu/atelier/internal/ui/theme"
)

// ReviewScreen implements screen.Screen for a finished session.
type ReviewScreen struct {
	lesson  *exercise.Lesson
	summary review.Summary
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)

// New creates the review screen for a summarized session.
func New(lesson *exercise.Lesson, summary review.Summary) *ReviewScreen {
	return &ReviewScreen{lesson: lesson, summary: summary}
}

func (r *ReviewScreen) Init() tea.Cmd {
	return nil
}

func (r *ReviewScreen) Title() string {
	return "Review"
}

func (r *ReviewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter/Esc", Description: "Back to library"},
	}
}

func (r *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}
	switch kmsg.String() {
	case "enter", "esc", "q":
		return r, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return r, nil
}

func (r *ReviewScreen) View(width, height int) string {
	cardWidth := min(width-4, 76)

	bar := components.NewScoreBar("Score", r.summary.ScorePercent, cardWidth-8)

	body := theme.Title.Render(r.lesson.Title) + "\n\n" + bar.View() + "\n\n"

	for _, item := range r.summary.PerItem {
		mark := theme.Correct.Render("✓")
		if !item.Correct {
			mark = theme.Incorrect.Render("✗")
		}
		body += fmt.Sprintf("%s %s\n", mark, theme.Body.Render(item.Detail))
	}

	if len(r.summary.Citations) > 0 {
		body += "\n" + theme.Subtitle.Render("Sources") + "\n"
		for _, c := range r.summary.Citations {
			label := c.Title
			if label == "" {
				label = c.URI
			}
			body += theme.Hint.Render("  • "+label) + "\n"
		}
	}

	card := theme.Card.Width(cardWidth).Render(body)
	return layout.Center(card, width, height)
}
