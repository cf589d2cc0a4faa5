package generate

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhvu/atelier/internal/exercise"
	"github.com/minhvu/atelier/internal/llm"
)

// routingProvider answers the schema-constrained content call and the
// plain-text cover call independently, so the concurrent fan-out in
// Generate stays deterministic under test.
type routingProvider struct {
	content    json.RawMessage
	contentErr error
	citations  []llm.Citation
	cover      string
	coverErr   error
}

func (p *routingProvider) Generate(_ context.Context, req llm.Request) (*llm.Response, error) {
	if req.Schema != nil {
		if p.contentErr != nil {
			return nil, p.contentErr
		}
		return &llm.Response{Content: p.content, Citations: p.citations, Model: "mock"}, nil
	}
	if p.coverErr != nil {
		return nil, p.coverErr
	}
	return &llm.Response{Content: json.RawMessage(p.cover), Model: "mock"}, nil
}

func (p *routingProvider) ModelID() string { return "mock" }

func newTestGenerator(p llm.Provider) *Generator {
	g := New(p, DefaultConfig())
	g.rng = rand.New(rand.NewPCG(1, 2))
	g.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	g.newID = func() string { return "lesson-1" }
	return g
}

const quizJSON = `{
	"title": "Impressionism Basics",
	"description": "Light and color in the 1870s",
	"questions": [
		{"prompt": "Who painted Impression, Sunrise?", "options": ["Monet", "Renoir"], "correct_option": 0, "explanation": "The painting named the movement.", "image_hint": "sunrise harbor painting"},
		{"prompt": "Where did the Impressionists first exhibit?", "options": ["The Salon", "Nadar's studio"], "correct_option": 1, "explanation": "They showed independently in 1874."}
	]
}`

func TestGenerateQuiz(t *testing.T) {
	p := &routingProvider{
		content:   json.RawMessage(quizJSON),
		citations: []llm.Citation{{Title: "Musée d'Orsay", URI: "https://example.org/orsay"}},
		cover:     "impressionist sunrise\n",
	}
	g := newTestGenerator(p)

	lesson, err := g.Generate(context.Background(), "Impressionism", exercise.KindQuiz)
	require.NoError(t, err)

	assert.Equal(t, "lesson-1", lesson.ID)
	assert.Equal(t, "Impressionism Basics", lesson.Title)
	assert.Equal(t, exercise.KindQuiz, lesson.Kind)
	assert.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), lesson.CreatedAt)

	quiz, ok := lesson.Content.(*exercise.QuizContent)
	require.True(t, ok)
	require.Len(t, quiz.Items, 2)
	assert.Equal(t, 0, quiz.Items[0].CorrectOption)
	assert.Contains(t, quiz.Items[0].ImageRef, "source.unsplash.com")

	// Cover keywords come back as a usable image URL.
	assert.Contains(t, lesson.CoverImageRef, "impressionist")
	require.Len(t, lesson.Grounding, 1)
	assert.Equal(t, "Musée d'Orsay", lesson.Grounding[0].Title)
}

func TestGenerateMatchingAssignsIDs(t *testing.T) {
	p := &routingProvider{content: json.RawMessage(`{
		"title": "Painters and Works",
		"pairs": [
			{"left": "Picasso", "right": "Guernica"},
			{"left": "Klimt", "right": "The Kiss"}
		]
	}`)}
	g := newTestGenerator(p)

	lesson, err := g.Generate(context.Background(), "famous paintings", exercise.KindMatching)
	require.NoError(t, err)

	m, ok := lesson.Content.(*exercise.MatchingContent)
	require.True(t, ok)
	require.Len(t, m.Items, 2)
	assert.Equal(t, "m1", m.Items[0].ID)
	assert.Equal(t, "m2", m.Items[1].ID)
}

func TestGenerateCategorization(t *testing.T) {
	p := &routingProvider{content: json.RawMessage(`{
		"title": "Movements",
		"categories": ["Baroque", "Impressionism"],
		"items": [
			{"text": "Rembrandt", "category": "Baroque"},
			{"text": "Renoir", "category": "Impressionism"}
		]
	}`)}
	g := newTestGenerator(p)

	lesson, err := g.Generate(context.Background(), "art movements", exercise.KindWordCategorization)
	require.NoError(t, err)

	c, ok := lesson.Content.(*exercise.CategorizationContent)
	require.True(t, ok)
	assert.Equal(t, []string{"Baroque", "Impressionism"}, c.Categories)
	assert.Equal(t, "c1", c.Items[0].ID)
}

func TestGenerateCoverFailureTolerated(t *testing.T) {
	p := &routingProvider{
		content:  json.RawMessage(quizJSON),
		coverErr: &llm.ErrProviderUnavailable{Err: errors.New("boom")},
	}
	g := newTestGenerator(p)

	lesson, err := g.Generate(context.Background(), "Impressionism", exercise.KindQuiz)
	require.NoError(t, err)
	assert.Empty(t, lesson.CoverImageRef)
}

func TestGenerateErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind ErrorKind
	}{
		{"missing credential", &llm.ErrMissingCredential{Provider: "gemini"}, KindMissingCredential},
		{"rate limited", &llm.ErrRateLimit{}, KindQuotaExceeded},
		{"schema violation", &llm.ErrInvalidResponse{Err: errors.New("bad")}, KindMalformedOutput},
		{"truncated output", &llm.ErrMaxTokensExceeded{}, KindMalformedOutput},
		{"provider down", &llm.ErrProviderUnavailable{}, KindTransportFailure},
		{"timeout", context.DeadlineExceeded, KindTransportFailure},
		{"unclassified", errors.New("weird"), KindTransportFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &routingProvider{contentErr: tt.err, cover: "keywords"}
			g := newTestGenerator(p)

			_, err := g.Generate(context.Background(), "topic", exercise.KindQuiz)
			require.Error(t, err)

			var genErr *Error
			require.ErrorAs(t, err, &genErr)
			assert.Equal(t, tt.wantKind, genErr.Kind)
		})
	}
}

func TestGenerateMalformedContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not JSON", `the model apologizes instead of answering`},
		{"no questions", `{"title": "Empty", "questions": []}`},
		{"single option", `{"questions": [{"prompt": "P?", "options": ["only"], "correct_option": 0}]}`},
		{"answer index out of range", `{"questions": [{"prompt": "P?", "options": ["a", "b"], "correct_option": 5}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &routingProvider{content: json.RawMessage(tt.content), cover: "keywords"}
			g := newTestGenerator(p)

			_, err := g.Generate(context.Background(), "topic", exercise.KindQuiz)
			require.Error(t, err)

			var genErr *Error
			require.ErrorAs(t, err, &genErr)
			assert.Equal(t, KindMalformedOutput, genErr.Kind)
		})
	}
}

func TestGenerateRejectsBadInput(t *testing.T) {
	g := newTestGenerator(&routingProvider{})

	_, err := g.Generate(context.Background(), "   ", exercise.KindQuiz)
	require.Error(t, err)

	_, err = g.Generate(context.Background(), "topic", exercise.Kind("crossword"))
	require.Error(t, err)
}

func TestGenerateSingleContentAttempt(t *testing.T) {
	p := llm.NewMockProvider() // empty queue: every call fails
	g := newTestGenerator(p)

	_, err := g.Generate(context.Background(), "topic", exercise.KindQuiz)
	require.Error(t, err)

	// One content call and one cover call — no retries.
	assert.Equal(t, 2, p.CallCount())
}

func TestGenerateDirectImageStrategy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ImageStrategy = ImageStrategyDirect

	p := &routingProvider{content: json.RawMessage(`{
		"title": "Works",
		"pairs": [
			{"left": "Vermeer", "right": "Girl with a Pearl Earring", "image_url": "https://example.org/pearl.jpg"},
			{"left": "Munch", "right": "The Scream"}
		]
	}`)}
	g := New(p, cfg)

	lesson, err := g.Generate(context.Background(), "paintings", exercise.KindPairing)
	require.NoError(t, err)

	m := lesson.Content.(*exercise.MatchingContent)
	assert.Equal(t, "https://example.org/pearl.jpg", m.Items[0].ImageRef)
	assert.Empty(t, m.Items[1].ImageRef)
}

func TestAsk(t *testing.T) {
	p := llm.NewMockProvider(llm.MockResponse{
		Content:   json.RawMessage("Chiaroscuro is the dramatic use of light and shadow."),
		Citations: []llm.Citation{{Title: "Glossary", URI: "https://example.org/gloss"}},
	})
	g := newTestGenerator(p)

	answer, err := g.Ask(context.Background(), "What is chiaroscuro?")
	require.NoError(t, err)
	assert.Contains(t, answer.Text, "Chiaroscuro")
	require.Len(t, answer.Citations, 1)

	_, err = g.Ask(context.Background(), "  ")
	require.Error(t, err)
}
