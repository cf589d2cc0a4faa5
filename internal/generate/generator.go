package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/minhvu/atelier/internal/exercise"
	"github.com/minhvu/atelier/internal/llm"
)

// Generator turns a free-text topic into a validated, persisted-ready
// Lesson via schema-constrained calls to the generative backend.
//
// Each Generate call makes exactly one content attempt — no retry or
// backoff at this layer. The caller decides whether to rerun after a
// failure, possibly with a different credential.
type Generator struct {
	provider llm.Provider
	cfg      Config

	mu  sync.Mutex
	rng *rand.Rand

	// Overridable for deterministic tests.
	now   func() time.Time
	newID func() string
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{
		provider: provider,
		cfg:      cfg,
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Generate produces a complete Lesson for the topic and interaction kind.
// The structured content request and the best-effort cover-image request
// run concurrently and are joined; a cover-image failure never fails the
// lesson. All errors are returned as *Error with a classified Kind.
func (g *Generator) Generate(ctx context.Context, topic string, kind exercise.Kind) (*exercise.Lesson, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, malformed(fmt.Errorf("empty topic"))
	}
	if _, err := exercise.ParseKind(string(kind)); err != nil {
		return nil, malformed(err)
	}

	var (
		wg         sync.WaitGroup
		rawContent json.RawMessage
		citations  []llm.Citation
		contentErr error
		coverHint  string
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		rawContent, citations, contentErr = g.requestContent(ctx, topic, kind)
	}()
	go func() {
		defer wg.Done()
		// Independent failure domain: errors are swallowed and the
		// lesson simply ships without a cover.
		coverHint = g.requestCoverHint(ctx, topic)
	}()
	wg.Wait()

	if contentErr != nil {
		return nil, classify(contentErr)
	}

	lesson, err := g.buildLesson(topic, kind, rawContent)
	if err != nil {
		return nil, err
	}

	// The cover call always yields keywords, regardless of the per-item
	// image strategy.
	if coverHint != "" {
		g.mu.Lock()
		lesson.CoverImageRef = SynthesizeImageURL(coverHint, g.rng)
		g.mu.Unlock()
	}
	for _, c := range citations {
		lesson.Grounding = append(lesson.Grounding, exercise.GroundingRef{Title: c.Title, URI: c.URI})
	}

	return lesson, nil
}

// requestContent issues the single schema-constrained content call.
func (g *Generator) requestContent(ctx context.Context, topic string, kind exercise.Kind) (json.RawMessage, []llm.Citation, error) {
	ctx = llm.WithPurpose(ctx, "exercise-gen")
	ctx, cancel := context.WithTimeout(ctx, g.cfg.CallTimeout)
	defer cancel()

	req := llm.Request{
		System: exerciseSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildExerciseUserMessage(topic, kind, g.cfg)},
		},
		Schema:      schemaFor(kind, g.cfg.ImageStrategy),
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
		Grounded:    true,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	return resp.Content, resp.Citations, nil
}

// requestCoverHint asks for a cover-image keyword. Best effort: any
// failure returns the empty string and the lesson plays without a cover.
func (g *Generator) requestCoverHint(ctx context.Context, topic string) string {
	ctx = llm.WithPurpose(ctx, "cover-image")
	ctx, cancel := context.WithTimeout(ctx, g.cfg.CallTimeout)
	defer cancel()

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: coverImageSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildCoverImageUserMessage(topic)},
		},
		MaxTokens: 64,
	})
	if err != nil {
		return ""
	}

	// Plain-text response; keep the first line, drop stray quoting.
	hint, _, _ := strings.Cut(string(resp.Content), "\n")
	return strings.Trim(strings.TrimSpace(hint), `"'`)
}

// Raw decode targets for the three content shapes. Both image fields are
// declared; which one is populated depends on the schema strategy.

type quizItemOutput struct {
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correct_option"`
	Explanation   string   `json:"explanation"`
	ImageHint     string   `json:"image_hint"`
	ImageURL      string   `json:"image_url"`
}

type quizOutput struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Questions   []quizItemOutput `json:"questions"`
}

type pairOutput struct {
	Left      string `json:"left"`
	Right     string `json:"right"`
	ImageHint string `json:"image_hint"`
	ImageURL  string `json:"image_url"`
}

type matchingOutput struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Pairs       []pairOutput `json:"pairs"`
}

type categoryItemOutput struct {
	Text      string `json:"text"`
	Category  string `json:"category"`
	ImageHint string `json:"image_hint"`
	ImageURL  string `json:"image_url"`
}

type categorizationOutput struct {
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Categories  []string             `json:"categories"`
	Items       []categoryItemOutput `json:"items"`
}

// buildLesson decodes the structured response into canonical content,
// validates the exercise invariants, and wraps the result in a Lesson
// envelope. Invariant violations are MalformedOutput, never a silent
// pass-through.
func (g *Generator) buildLesson(topic string, kind exercise.Kind, raw json.RawMessage) (*exercise.Lesson, error) {
	var (
		title, description string
		content            exercise.Content
	)

	switch {
	case kind == exercise.KindQuiz:
		var out quizOutput
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, malformed(fmt.Errorf("decode quiz response: %w", err))
		}
		title, description = out.Title, out.Description

		quiz := &exercise.QuizContent{}
		for _, q := range out.Questions {
			quiz.Items = append(quiz.Items, exercise.QuizItem{
				Prompt:        q.Prompt,
				Options:       q.Options,
				CorrectOption: q.CorrectOption,
				Explanation:   q.Explanation,
				ImageRef:      g.resolveImage(q.ImageHint, q.ImageURL),
			})
		}
		content = quiz

	case kind.IsMatching():
		var out matchingOutput
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, malformed(fmt.Errorf("decode matching response: %w", err))
		}
		title, description = out.Title, out.Description

		matching := &exercise.MatchingContent{}
		for i, p := range out.Pairs {
			matching.Items = append(matching.Items, exercise.MatchItem{
				ID:       fmt.Sprintf("m%d", i+1),
				Left:     p.Left,
				Right:    p.Right,
				ImageRef: g.resolveImage(p.ImageHint, p.ImageURL),
			})
		}
		content = matching

	default:
		var out categorizationOutput
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, malformed(fmt.Errorf("decode categorization response: %w", err))
		}
		title, description = out.Title, out.Description

		cat := &exercise.CategorizationContent{Categories: out.Categories}
		for i, item := range out.Items {
			cat.Items = append(cat.Items, exercise.CategoryItem{
				ID:       fmt.Sprintf("c%d", i+1),
				Text:     item.Text,
				Category: item.Category,
				ImageRef: g.resolveImage(item.ImageHint, item.ImageURL),
			})
		}
		content = cat
	}

	if err := content.Validate(); err != nil {
		return nil, malformed(err)
	}

	if title == "" {
		title = topic
	}

	return &exercise.Lesson{
		ID:          g.newID(),
		Title:       title,
		Description: description,
		Kind:        kind,
		Content:     content,
		CreatedAt:   g.now(),
	}, nil
}

// resolveImage turns the model's image field into a usable locator.
// Keyword strategy expands the hint locally; direct strategy passes the
// URL through. Empty in, empty out — a missing image never blocks the
// exercise.
func (g *Generator) resolveImage(hint, directURL string) string {
	switch g.cfg.ImageStrategy {
	case ImageStrategyDirect:
		return strings.TrimSpace(directURL)
	default:
		g.mu.Lock()
		defer g.mu.Unlock()
		return SynthesizeImageURL(hint, g.rng)
	}
}
