package exercise

import (
	"fmt"
	"time"
)

// GroundingRef is a citation returned alongside generated content.
// Captured verbatim; never required for correctness.
type GroundingRef struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// Lesson is the persisted envelope around generated exercise content.
// Created once by the content generator, immutable thereafter.
type Lesson struct {
	ID            string
	Title         string
	Description   string
	Kind          Kind
	Content       Content
	CoverImageRef string
	Grounding     []GroundingRef
	CreatedAt     time.Time
}

// Validate checks the lesson envelope: a known kind, a content shape that
// matches it, and valid content.
func (l *Lesson) Validate() error {
	if _, err := ParseKind(string(l.Kind)); err != nil {
		return err
	}
	if l.Content == nil {
		return fmt.Errorf("lesson %s has no content", l.ID)
	}

	shapeOK := false
	switch l.Content.(type) {
	case *QuizContent:
		shapeOK = l.Kind.IsQuiz()
	case *MatchingContent:
		shapeOK = l.Kind.IsMatching()
	case *CategorizationContent:
		shapeOK = l.Kind.IsCategorization()
	}
	if !shapeOK {
		return fmt.Errorf("kind %s does not match %s content", l.Kind, l.Content.ContentKind())
	}

	return l.Content.Validate()
}
