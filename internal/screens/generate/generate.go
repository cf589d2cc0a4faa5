// Package generate is the authoring screen: topic input, kind picker,
// and an animated wait while the backend produces the lesson.
package generate

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/minhvu/atelier/internal/exercise"
	gen "github.com/minhvu/atelier/internal/generate"
	"github.com/minhvu/atelier/internal/router"
	"github.com/minhvu/atelier/internal/screen"
	playscreen "github.com/minhvu/atelier/internal/screens/play"
	"github.com/minhvu/atelier/internal/store"
	"github.com/minhvu/atelier/internal/ui/components"
	"github.com/minhvu/atelier/internal/ui/layout"
	"github.com/minhvu/atelier/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// lessonReadyMsg is sent when generation and persistence finish.
type lessonReadyMsg struct {
	Lesson *exercise.Lesson
	Err    error
}

// spinnerTickMsg animates the waiting spinner.
type spinnerTickMsg time.Time

// GenerateScreen implements screen.Screen for authoring a new lesson.
type GenerateScreen struct {
	generator *gen.Generator
	repo      store.LessonRepo

	topic      components.TextInput
	kindSel    int
	kindFocus  bool
	generating bool
	cancel     context.CancelFunc
	frame      int
	errMsg     string
}

var _ screen.Screen = (*GenerateScreen)(nil)
var _ screen.KeyHintProvider = (*GenerateScreen)(nil)

// New creates the authoring screen.
func New(generator *gen.Generator, repo store.LessonRepo) *GenerateScreen {
	return &GenerateScreen{
		generator: generator,
		repo:      repo,
		topic:     components.NewTextInput("Impressionism, Bauhaus, color theory...", 80),
	}
}

func (g *GenerateScreen) Init() tea.Cmd {
	return g.topic.Init()
}

func (g *GenerateScreen) Title() string {
	return "New Exercise"
}

func (g *GenerateScreen) KeyHints() []layout.KeyHint {
	if g.generating {
		return []layout.KeyHint{{Key: "Esc", Description: "Cancel"}}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Topic/Kind"},
		{Key: "↑↓", Description: "Pick kind"},
		{Key: "Enter", Description: "Generate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (g *GenerateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		if !g.generating {
			return g, nil
		}
		g.frame = (g.frame + 1) % len(spinnerFrames)
		return g, spinnerTick()

	case lessonReadyMsg:
		g.generating = false
		g.cancel = nil
		if msg.Err != nil {
			g.errMsg = describeError(msg.Err)
			return g, nil
		}
		// Jump straight into the new lesson.
		return g, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: playscreen.New(msg.Lesson)}
		}

	case tea.KeyMsg:
		return g.handleKey(msg)
	}

	if !g.kindFocus && !g.generating {
		var cmd tea.Cmd
		g.topic, cmd = g.topic.Update(msg)
		return g, cmd
	}
	return g, nil
}

func (g *GenerateScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if g.generating {
		if key == "esc" {
			// Abandoning the wait discards the in-flight result.
			if g.cancel != nil {
				g.cancel()
				g.cancel = nil
			}
			g.generating = false
			return g, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return g, nil
	}

	switch key {
	case "esc":
		return g, func() tea.Msg { return router.PopScreenMsg{} }

	case "tab":
		g.kindFocus = !g.kindFocus
		return g, nil

	case "up", "down":
		if g.kindFocus {
			if key == "up" && g.kindSel > 0 {
				g.kindSel--
			}
			if key == "down" && g.kindSel < len(exercise.Kinds)-1 {
				g.kindSel++
			}
			return g, nil
		}

	case "enter":
		return g.startGeneration()
	}

	var cmd tea.Cmd
	g.topic, cmd = g.topic.Update(msg)
	return g, cmd
}

func (g *GenerateScreen) startGeneration() (screen.Screen, tea.Cmd) {
	if g.generator == nil {
		g.errMsg = "No API key configured. Set GEMINI_API_KEY (or pass --api-key) and restart."
		return g, nil
	}
	topic := g.topic.Value()
	if topic == "" {
		g.errMsg = "Enter a topic first"
		return g, nil
	}

	g.errMsg = ""
	g.generating = true
	kind := exercise.Kinds[g.kindSel]

	ctx, cancel := context.WithCancel(context.Background())
	g.cancel = cancel

	return g, tea.Batch(generateCmd(ctx, g.generator, g.repo, topic, kind), spinnerTick())
}

// generateCmd runs one generation and persists the lesson. A canceled
// context discards the result instead of saving it, so a lesson finished
// after the player backed out never lands in the library.
func generateCmd(ctx context.Context, generator *gen.Generator, repo store.LessonRepo, topic string, kind exercise.Kind) tea.Cmd {
	return func() tea.Msg {
		lesson, err := generator.Generate(ctx, topic, kind)
		if err != nil {
			return lessonReadyMsg{Err: err}
		}
		if ctx.Err() != nil {
			return lessonReadyMsg{Err: ctx.Err()}
		}
		if err := repo.Append(ctx, lesson); err != nil {
			return lessonReadyMsg{Err: err}
		}
		return lessonReadyMsg{Lesson: lesson}
	}
}

func (g *GenerateScreen) View(width, height int) string {
	cardWidth := min(width-4, 72)

	var body string
	body += theme.Title.Render("Create a new exercise") + "\n\n"

	if g.generating {
		body += spinnerFrames[g.frame] + " " + theme.Body.Render("Composing your exercise...") + "\n"
		body += theme.Hint.Render("  topic: "+g.topic.Value()) + "\n"
		body += theme.Hint.Render("  kind:  "+exercise.Kinds[g.kindSel].Label()) + "\n"
	} else {
		body += theme.Subtitle.Render("Topic") + "\n"
		body += g.topic.View() + "\n\n"
		body += theme.Subtitle.Render("Kind") + "\n"
		for i, k := range exercise.Kinds {
			line := "    " + k.Label()
			if i == g.kindSel {
				line = "  ▸ " + k.Label()
				if g.kindFocus {
					body += theme.Selected.Render(line) + "\n"
					continue
				}
				body += theme.Pending.Render(line) + "\n"
				continue
			}
			body += theme.Unselected.Render(line) + "\n"
		}
	}

	if g.errMsg != "" {
		body += "\n" + theme.Incorrect.Render(g.errMsg)
	}

	card := theme.Card.Width(cardWidth).Render(body)
	return layout.Center(card, width, height)
}

// describeError turns a generation failure into player-facing guidance.
func describeError(err error) string {
	var genErr *gen.Error
	if !errors.As(err, &genErr) {
		return err.Error()
	}
	switch genErr.Kind {
	case gen.KindMissingCredential:
		return "No API key configured. Set GEMINI_API_KEY (or pass --api-key) and restart."
	case gen.KindQuotaExceeded:
		return "The provider is rate limiting. Wait a moment and try again."
	case gen.KindMalformedOutput:
		return "The model returned unusable content. Try again, or rephrase the topic."
	default:
		return "Could not reach the provider: " + genErr.Error()
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(90*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
