package generate

import (
	"context"
	"fmt"
	"strings"

	"github.com/minhvu/atelier/internal/exercise"
	"github.com/minhvu/atelier/internal/llm"
)

// Answer is a free-text teacher reply with optional citations.
type Answer struct {
	Text      string
	Citations []exercise.GroundingRef
}

// Ask answers a student's free-text question in the art-teacher persona.
// Grounding citations, when the backend returns them, accompany the text.
// Failures are classified like generation failures.
func (g *Generator) Ask(ctx context.Context, question string) (*Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, malformed(fmt.Errorf("empty question"))
	}

	ctx = llm.WithPurpose(ctx, "ask")
	ctx, cancel := context.WithTimeout(ctx, g.cfg.CallTimeout)
	defer cancel()

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: askSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: question},
		},
		MaxTokens:   1024,
		Temperature: 0.7,
		Grounded:    true,
	})
	if err != nil {
		return nil, classify(err)
	}

	answer := &Answer{Text: strings.TrimSpace(string(resp.Content))}
	for _, c := range resp.Citations {
		answer.Citations = append(answer.Citations, exercise.GroundingRef{Title: c.Title, URI: c.URI})
	}
	return answer, nil
}
