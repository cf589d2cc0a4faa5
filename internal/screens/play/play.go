// Package play is the interactive player screen. It renders the
// presentation view for one lesson and translates key presses into
// session interactions until the session enters review.
package play

import (
	"fmt"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/minhvu/atelier/internal/exercise"
	"github.com/minhvu/atelier/internal/player"
	"github.com/minhvu/atelier/internal/present"
	"github.com/minhvu/atelier/internal/review"
	"github.com/minhvu/atelier/internal/router"
	"github.com/minhvu/atelier/internal/screen"
	reviewscreen "github.com/minhvu/atelier/internal/screens/review"
	"github.com/minhvu/atelier/internal/ui/components"
	"github.com/minhvu/atelier/internal/ui/layout"
	"github.com/minhvu/atelier/internal/ui/theme"
)

// pane identifies which side of a two-pane screen has focus.
type pane int

const (
	paneLeft pane = iota
	paneRight
)

// PlayScreen implements screen.Screen for one lesson playback.
type PlayScreen struct {
	lesson  *exercise.Lesson
	session *player.Session
	view    *present.View

	// left holds quiz options, match left items, or the categorization
	// pool. right holds match right items or categories.
	left  components.PickList
	right components.PickList
	focus pane

	errMsg  string
	initErr string
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.StatusProvider = (*PlayScreen)(nil)

// New starts a playback screen with a freshly shuffled presentation.
func New(lesson *exercise.Lesson) *PlayScreen {
	s := &PlayScreen{lesson: lesson}

	view := present.Present(lesson.Kind, lesson.Content, present.NewRand())
	sess, err := player.NewSession(lesson, view)
	if err != nil {
		s.initErr = err.Error()
		return s
	}

	s.session = sess
	s.view = view
	s.rebuildLists()
	return s
}

func (s *PlayScreen) Init() tea.Cmd {
	return nil
}

func (s *PlayScreen) Title() string {
	return s.lesson.Kind.Label()
}

// Status reports playback progress for the header.
func (s *PlayScreen) Status() string {
	if s.session == nil {
		return ""
	}
	switch c := s.lesson.Content.(type) {
	case *exercise.QuizContent:
		return fmt.Sprintf("Item %d/%d", s.session.CurrentIndex()+1, len(c.Items))
	case *exercise.MatchingContent:
		return fmt.Sprintf("%d/%d matched", len(s.session.Responses().Matches), len(c.Items))
	case *exercise.CategorizationContent:
		return fmt.Sprintf("%d/%d placed", len(s.session.Responses().Placements), len(c.Items))
	}
	return ""
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	if s.session == nil {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
	}
	if !s.lesson.Kind.IsQuiz() {
		hints = append(hints, layout.KeyHint{Key: "←→/Tab", Description: "Switch pane"})
	}
	hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Select"})
	if s.session.CanSubmit() {
		hints = append(hints, layout.KeyHint{Key: "S", Description: "Submit"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.initErr != "" {
		return s, popCmd()
	}

	key := kmsg.String()
	s.errMsg = ""

	switch key {
	case "esc":
		return s, popCmd()

	case "left", "h", "right", "l", "tab":
		if !s.lesson.Kind.IsQuiz() {
			s.toggleFocus(key)
		}
		return s, nil

	case "enter":
		return s.handleSelect()

	case "s":
		if s.session.CanSubmit() {
			if err := s.session.Submit(); err != nil {
				s.errMsg = err.Error()
				return s, nil
			}
			return s, s.enterReview()
		}
		return s, nil
	}

	// Cursor movement goes to the focused list.
	var cmd tea.Cmd
	if s.focus == paneLeft {
		s.left, cmd = s.left.Update(msg)
	} else {
		s.right, cmd = s.right.Update(msg)
	}
	return s, cmd
}

func (s *PlayScreen) toggleFocus(key string) {
	switch key {
	case "left", "h":
		s.focus = paneLeft
	case "right", "l":
		s.focus = paneRight
	case "tab":
		if s.focus == paneLeft {
			s.focus = paneRight
		} else {
			s.focus = paneLeft
		}
	}
	s.left.Focused = s.focus == paneLeft
	s.right.Focused = s.focus == paneRight
}

// handleSelect routes enter to the kind-appropriate interaction.
func (s *PlayScreen) handleSelect() (screen.Screen, tea.Cmd) {
	switch s.lesson.Kind {
	case exercise.KindQuiz:
		choice, err := strconv.Atoi(s.left.SelectedID())
		if err != nil {
			return s, nil
		}
		if err := s.session.AnswerQuiz(choice); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		if s.session.Phase() == player.PhaseReview {
			return s, s.enterReview()
		}
		s.rebuildLists()
		return s, nil

	default:
		var err error
		if s.focus == paneLeft {
			id := s.left.SelectedID()
			if id == "" {
				return s, nil
			}
			if s.lesson.Kind.IsMatching() {
				err = s.session.SelectLeft(id)
			} else {
				err = s.session.SelectItem(id)
			}
		} else {
			id := s.right.SelectedID()
			if id == "" {
				return s, nil
			}
			if s.lesson.Kind.IsMatching() {
				err = s.session.SelectRight(id)
			} else {
				err = s.session.PlaceInCategory(id)
			}
		}
		if err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		s.rebuildLists()
		return s, nil
	}
}

// enterReview swaps this screen for the review report, so backing out of
// review does not land in a finished session.
func (s *PlayScreen) enterReview() tea.Cmd {
	summary := review.Summarize(s.lesson, s.session.Responses(), s.session.Score())
	lesson := s.lesson
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: reviewscreen.New(lesson, summary)}
	}
}

// rebuildLists refreshes both pick lists from session state.
func (s *PlayScreen) rebuildLists() {
	switch c := s.lesson.Content.(type) {
	case *exercise.QuizContent:
		item := c.Items[s.session.CurrentIndex()]
		rows := make([]components.PickRow, len(item.Options))
		for i, opt := range item.Options {
			rows[i] = components.PickRow{
				ID:    strconv.Itoa(i),
				Label: fmt.Sprintf("%c)  %s", 'A'+i, opt),
			}
		}
		s.left = components.NewPickList(rows)
		s.left.Focused = true
		s.focus = paneLeft

	case *exercise.MatchingContent:
		matches := s.session.Responses().Matches
		usedRight := make(map[string]bool, len(matches))
		for _, rightID := range matches {
			usedRight[rightID] = true
		}

		leftRows := make([]components.PickRow, 0, len(c.Items))
		for _, id := range s.view.LeftOrder {
			item := c.Item(id)
			_, done := matches[id]
			leftRows = append(leftRows, components.PickRow{
				ID:      id,
				Label:   item.Left,
				Done:    done,
				Pending: id == s.session.PendingLeft(),
			})
		}
		rightRows := make([]components.PickRow, 0, len(c.Items))
		for _, id := range s.view.RightOrder {
			item := c.Item(id)
			rightRows = append(rightRows, components.PickRow{
				ID:    id,
				Label: item.Right,
				Done:  usedRight[id],
			})
		}

		s.resetPanes(leftRows, rightRows)

	case *exercise.CategorizationContent:
		placements := s.session.Responses().Placements

		itemRows := make([]components.PickRow, 0, len(c.Items))
		for _, id := range s.view.ItemOrder {
			item := c.Item(id)
			_, placed := placements[id]
			itemRows = append(itemRows, components.PickRow{
				ID:      id,
				Label:   item.Text,
				Done:    placed,
				Pending: id == s.session.PendingItem(),
			})
		}
		catRows := make([]components.PickRow, 0, len(c.Categories))
		for _, cat := range c.Categories {
			catRows = append(catRows, components.PickRow{ID: cat, Label: cat})
		}

		s.resetPanes(itemRows, catRows)
	}
}

// resetPanes installs new rows while keeping cursor and focus positions.
func (s *PlayScreen) resetPanes(leftRows, rightRows []components.PickRow) {
	s.left.SetRows(leftRows)
	s.right.SetRows(rightRows)
	s.left.Focused = s.focus == paneLeft
	s.right.Focused = s.focus == paneRight
}

func (s *PlayScreen) View(width, height int) string {
	if s.initErr != "" {
		return layout.Center(theme.Incorrect.Render(s.initErr), width, height)
	}

	var body string
	switch c := s.lesson.Content.(type) {
	case *exercise.QuizContent:
		item := c.Items[s.session.CurrentIndex()]
		body = theme.Body.Bold(true).Render(item.Prompt) + "\n\n" + s.left.View()

	case *exercise.MatchingContent:
		body = s.panesView("Terms", "Definitions", width)

	case *exercise.CategorizationContent:
		body = s.panesView("Items", "Categories", width)
	}

	if s.errMsg != "" {
		body += "\n" + theme.Incorrect.Render(s.errMsg)
	} else if s.session.CanSubmit() {
		body += "\n" + theme.Hint.Render("All answered — press S to submit")
	}

	card := theme.Card.Width(min(width-4, 76)).Render(
		theme.Title.Render(s.lesson.Title) + "\n\n" + body)

	return layout.Center(card, width, height)
}

// panesView renders the two pick lists side by side.
func (s *PlayScreen) panesView(leftTitle, rightTitle string, width int) string {
	paneWidth := min((width-12)/2, 34)

	leftBox := lipgloss.NewStyle().Width(paneWidth).Render(
		theme.Subtitle.Render(leftTitle) + "\n" + s.left.View())
	rightBox := lipgloss.NewStyle().Width(paneWidth).Render(
		theme.Subtitle.Render(rightTitle) + "\n" + s.right.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, leftBox, "    ", rightBox)
}

func popCmd() tea.Cmd {
	return func() tea.Msg { return router.PopScreenMsg{} }
}
