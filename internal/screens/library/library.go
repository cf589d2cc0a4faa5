// Package library is the home screen: the saved lesson collection, with
// entry points for playing, authoring, and deleting.
package library

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/minhvu/atelier/internal/exercise"
	gen "github.com/minhvu/atelier/internal/generate"
	"github.com/minhvu/atelier/internal/router"
	"github.com/minhvu/atelier/internal/screen"
	genscreen "github.com/minhvu/atelier/internal/screens/generate"
	playscreen "github.com/minhvu/atelier/internal/screens/play"
	"github.com/minhvu/atelier/internal/store"
	"github.com/minhvu/atelier/internal/ui/components"
	"github.com/minhvu/atelier/internal/ui/layout"
	"github.com/minhvu/atelier/internal/ui/theme"
)

// lessonsLoadedMsg carries the refreshed lesson list.
type lessonsLoadedMsg struct {
	Lessons []*exercise.Lesson
	Err     error
}

// lessonDeletedMsg confirms a delete finished.
type lessonDeletedMsg struct {
	Err error
}

// LibraryScreen implements screen.Screen for the lesson collection.
type LibraryScreen struct {
	repo      store.LessonRepo
	generator *gen.Generator

	lessons []*exercise.Lesson
	menu    components.Menu
	loading bool
	errMsg  string

	// confirmDelete holds the id awaiting y/n confirmation, "" otherwise.
	confirmDelete string
}

var _ screen.Screen = (*LibraryScreen)(nil)
var _ screen.KeyHintProvider = (*LibraryScreen)(nil)
var _ screen.StatusProvider = (*LibraryScreen)(nil)

// New creates the library screen.
func New(repo store.LessonRepo, generator *gen.Generator) *LibraryScreen {
	return &LibraryScreen{
		repo:      repo,
		generator: generator,
		loading:   true,
	}
}

// Init reloads the collection. Runs again every time the library is
// revealed by a pop, so new and deleted lessons show up.
func (l *LibraryScreen) Init() tea.Cmd {
	repo := l.repo
	return func() tea.Msg {
		lessons, err := repo.List(context.Background())
		return lessonsLoadedMsg{Lessons: lessons, Err: err}
	}
}

func (l *LibraryScreen) Title() string {
	return "Library"
}

func (l *LibraryScreen) Status() string {
	if len(l.lessons) == 0 {
		return ""
	}
	return fmt.Sprintf("%d exercises", len(l.lessons))
}

func (l *LibraryScreen) KeyHints() []layout.KeyHint {
	if l.confirmDelete != "" {
		return []layout.KeyHint{
			{Key: "Y", Description: "Delete"},
			{Key: "N", Description: "Keep"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Play"},
		{Key: "G", Description: "New exercise"},
	}
	if len(l.lessons) > 0 {
		hints = append(hints, layout.KeyHint{Key: "D", Description: "Delete"})
	}
	hints = append(hints, layout.KeyHint{Key: "Q", Description: "Quit"})
	return hints
}

func (l *LibraryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case lessonsLoadedMsg:
		l.loading = false
		if msg.Err != nil {
			l.errMsg = msg.Err.Error()
			return l, nil
		}
		l.errMsg = ""
		l.lessons = msg.Lessons
		l.menu = components.NewMenu(l.menuItems())
		return l, nil

	case lessonDeletedMsg:
		if msg.Err != nil {
			l.errMsg = msg.Err.Error()
			return l, nil
		}
		return l, l.Init()

	case tea.KeyMsg:
		return l.handleKey(msg)
	}
	return l, nil
}

func (l *LibraryScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if l.confirmDelete != "" {
		switch key {
		case "y", "Y":
			id := l.confirmDelete
			l.confirmDelete = ""
			repo := l.repo
			return l, func() tea.Msg {
				return lessonDeletedMsg{Err: repo.Delete(context.Background(), id)}
			}
		case "n", "N", "esc":
			l.confirmDelete = ""
		}
		return l, nil
	}

	switch key {
	case "q", "esc":
		return l, tea.Quit

	case "g":
		generator, repo := l.generator, l.repo
		return l, func() tea.Msg {
			return router.PushScreenMsg{Screen: genscreen.New(generator, repo)}
		}

	case "d":
		if sel := l.selectedLesson(); sel != nil {
			l.confirmDelete = sel.ID
		}
		return l, nil
	}

	var cmd tea.Cmd
	l.menu, cmd = l.menu.Update(msg)
	return l, cmd
}

// selectedLesson maps the menu cursor back to a lesson.
func (l *LibraryScreen) selectedLesson() *exercise.Lesson {
	if l.menu.Selected < 0 || l.menu.Selected >= len(l.lessons) {
		return nil
	}
	return l.lessons[l.menu.Selected]
}

func (l *LibraryScreen) menuItems() []components.MenuItem {
	items := make([]components.MenuItem, 0, len(l.lessons))
	for _, lesson := range l.lessons {
		lesson := lesson
		items = append(items, components.MenuItem{
			Label:  lesson.Title,
			Detail: fmt.Sprintf("%s · %s", lesson.Kind.Label(), lesson.CreatedAt.Format("Jan 2 2006")),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: playscreen.New(lesson)}
				}
			},
		})
	}
	return items
}

func (l *LibraryScreen) View(width, height int) string {
	cardWidth := min(width-4, 72)

	var body string
	body += theme.Title.Render("Your exercises") + "\n\n"

	switch {
	case l.loading:
		body += theme.Hint.Render("Loading...")
	case l.confirmDelete != "":
		sel := l.selectedLesson()
		title := l.confirmDelete
		if sel != nil {
			title = sel.Title
		}
		body += theme.Body.Render(fmt.Sprintf("Delete %q?", title)) + "\n\n"
		body += theme.Hint.Render("Y to delete, N to keep")
	case len(l.lessons) == 0:
		body += theme.Body.Render("Nothing here yet.") + "\n\n"
		body += theme.Hint.Render("Press G to create your first exercise")
	default:
		body += l.menu.View()
	}

	if l.errMsg != "" {
		body += "\n" + theme.Incorrect.Render(l.errMsg)
	}

	card := theme.Card.Width(cardWidth).Render(body)
	return layout.Center(card, width, height)
}
