package player

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhvu/atelier/internal/exercise"
	"github.com/minhvu/atelier/internal/present"
)

func newLesson(kind exercise.Kind, content exercise.Content) *exercise.Lesson {
	return &exercise.Lesson{ID: "l1", Title: "Test", Kind: kind, Content: content}
}

func startSession(t *testing.T, lesson *exercise.Lesson) *Session {
	t.Helper()
	view := present.Present(lesson.Kind, lesson.Content, rand.New(rand.NewPCG(1, 1)))
	s, err := NewSession(lesson, view)
	require.NoError(t, err)
	return s
}

func quizLesson() *exercise.Lesson {
	return newLesson(exercise.KindQuiz, &exercise.QuizContent{Items: []exercise.QuizItem{
		{Prompt: "Who painted the Sistine Chapel ceiling?", Options: []string{"Michelangelo", "Raphael", "Titian"}, CorrectOption: 0},
		{Prompt: "Which century was the High Renaissance?", Options: []string{"14th", "16th"}, CorrectOption: 1},
		{Prompt: "What is fresco painted on?", Options: []string{"Wet plaster", "Canvas"}, CorrectOption: 0},
	}})
}

func matchingLesson() *exercise.Lesson {
	return newLesson(exercise.KindMatching, &exercise.MatchingContent{Items: []exercise.MatchItem{
		{ID: "m1", Left: "Goya", Right: "The Third of May 1808"},
		{ID: "m2", Left: "Seurat", Right: "A Sunday on La Grande Jatte"},
		{ID: "m3", Left: "Magritte", Right: "The Son of Man"},
	}})
}

func categorizationLesson() *exercise.Lesson {
	return newLesson(exercise.KindWordCategorization, &exercise.CategorizationContent{
		Categories: []string{"Sculpture", "Painting"},
		Items: []exercise.CategoryItem{
			{ID: "c1", Text: "David", Category: "Sculpture"},
			{ID: "c2", Text: "Mona Lisa", Category: "Painting"},
			{ID: "c3", Text: "The Thinker", Category: "Sculpture"},
		},
	})
}

func TestNewSessionRejectsInvalidLesson(t *testing.T) {
	bad := newLesson(exercise.KindQuiz, &exercise.QuizContent{})
	_, err := NewSession(bad, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unplayable")
}

func TestQuizPerfectRun(t *testing.T) {
	s := startSession(t, quizLesson())

	require.NoError(t, s.AnswerQuiz(0))
	assert.Equal(t, 1, s.CurrentIndex())
	assert.Equal(t, PhasePlaying, s.Phase())

	require.NoError(t, s.AnswerQuiz(1))
	require.NoError(t, s.AnswerQuiz(0))

	// The last answer finalizes implicitly.
	assert.Equal(t, PhaseReview, s.Phase())
	assert.Equal(t, 3, s.Score())
}

func TestQuizPartialScore(t *testing.T) {
	s := startSession(t, quizLesson())

	require.NoError(t, s.AnswerQuiz(1)) // wrong
	require.NoError(t, s.AnswerQuiz(1)) // right
	require.NoError(t, s.AnswerQuiz(1)) // wrong

	assert.Equal(t, PhaseReview, s.Phase())
	assert.Equal(t, 1, s.Score())
	assert.Equal(t, map[int]int{0: 1, 1: 1, 2: 1}, s.Responses().Quiz)
}

func TestQuizRejectsOutOfRangeChoice(t *testing.T) {
	s := startSession(t, quizLesson())

	var interactionErr *ErrInvalidInteraction
	require.ErrorAs(t, s.AnswerQuiz(3), &interactionErr)
	require.ErrorAs(t, s.AnswerQuiz(-1), &interactionErr)

	// Rejected input leaves the cursor alone.
	assert.Equal(t, 0, s.CurrentIndex())
	assert.Empty(t, s.Responses().Quiz)
}

func TestQuizNoSubmitOnQuiz(t *testing.T) {
	s := startSession(t, quizLesson())
	assert.False(t, s.CanSubmit())

	var interactionErr *ErrInvalidInteraction
	require.ErrorAs(t, s.Submit(), &interactionErr)
}

func TestMatchingFullFlow(t *testing.T) {
	s := startSession(t, matchingLesson())

	// m1 matched wrong, m2 and m3 matched right.
	require.NoError(t, s.SelectLeft("m1"))
	assert.Equal(t, "m1", s.PendingLeft())
	require.NoError(t, s.SelectRight("m3"))
	assert.Empty(t, s.PendingLeft())

	require.NoError(t, s.SelectLeft("m2"))
	require.NoError(t, s.SelectRight("m2"))

	assert.False(t, s.CanSubmit())

	require.NoError(t, s.SelectLeft("m3"))
	require.NoError(t, s.SelectRight("m1"))

	require.True(t, s.CanSubmit())
	require.NoError(t, s.Submit())

	assert.Equal(t, PhaseReview, s.Phase())
	assert.Equal(t, 1, s.Score()) // only m2 is a self-match
}

func TestMatchingPrematureSubmit(t *testing.T) {
	s := startSession(t, matchingLesson())

	require.NoError(t, s.SelectLeft("m1"))
	require.NoError(t, s.SelectRight("m1"))

	var interactionErr *ErrInvalidInteraction
	err := s.Submit()
	require.ErrorAs(t, err, &interactionErr)
	assert.Contains(t, err.Error(), "matched 1 of 3")
	assert.Equal(t, PhasePlaying, s.Phase())
}

func TestMatchingRepeatedSelectionReplacesPending(t *testing.T) {
	s := startSession(t, matchingLesson())

	require.NoError(t, s.SelectLeft("m1"))
	require.NoError(t, s.SelectLeft("m2"))
	assert.Equal(t, "m2", s.PendingLeft())

	require.NoError(t, s.SelectRight("m2"))
	assert.Equal(t, map[string]string{"m2": "m2"}, s.Responses().Matches)
}

func TestMatchingRightWithoutPendingIsNoOp(t *testing.T) {
	s := startSession(t, matchingLesson())

	require.NoError(t, s.SelectRight("m1"))
	assert.Empty(t, s.Responses().Matches)
}

func TestMatchingRejectsMatchedItems(t *testing.T) {
	s := startSession(t, matchingLesson())

	require.NoError(t, s.SelectLeft("m1"))
	require.NoError(t, s.SelectRight("m2"))

	var interactionErr *ErrInvalidInteraction
	require.ErrorAs(t, s.SelectLeft("m1"), &interactionErr)

	require.NoError(t, s.SelectLeft("m3"))
	require.ErrorAs(t, s.SelectRight("m2"), &interactionErr)
}

func TestMatchingRejectsUnknownIDs(t *testing.T) {
	s := startSession(t, matchingLesson())

	var interactionErr *ErrInvalidInteraction
	require.ErrorAs(t, s.SelectLeft("m99"), &interactionErr)
	require.ErrorAs(t, s.SelectRight("m99"), &interactionErr)
}

func TestCategorizationFlow(t *testing.T) {
	s := startSession(t, categorizationLesson())

	require.NoError(t, s.SelectItem("c1"))
	assert.Equal(t, "c1", s.PendingItem())
	require.NoError(t, s.PlaceInCategory("Sculpture"))
	assert.Empty(t, s.PendingItem())

	require.NoError(t, s.SelectItem("c2"))
	require.NoError(t, s.PlaceInCategory("Sculpture")) // wrong placement

	require.NoError(t, s.SelectItem("c3"))
	require.NoError(t, s.PlaceInCategory("Sculpture"))

	require.True(t, s.CanSubmit())
	require.NoError(t, s.Submit())

	assert.Equal(t, PhaseReview, s.Phase())
	assert.Equal(t, 2, s.Score())
}

func TestCategorizationPlacedItemsLeaveThePool(t *testing.T) {
	s := startSession(t, categorizationLesson())

	require.NoError(t, s.SelectItem("c1"))
	require.NoError(t, s.PlaceInCategory("Painting"))

	var interactionErr *ErrInvalidInteraction
	require.ErrorAs(t, s.SelectItem("c1"), &interactionErr)
}

func TestCategorizationRejectsUnknownCategory(t *testing.T) {
	s := startSession(t, categorizationLesson())

	require.NoError(t, s.SelectItem("c1"))
	var interactionErr *ErrInvalidInteraction
	require.ErrorAs(t, s.PlaceInCategory("Architecture"), &interactionErr)

	// The pending selection survives the rejected placement.
	assert.Equal(t, "c1", s.PendingItem())
}

func TestCategorizationPlaceWithoutPendingIsNoOp(t *testing.T) {
	s := startSession(t, categorizationLesson())

	require.NoError(t, s.PlaceInCategory("Painting"))
	assert.Empty(t, s.Responses().Placements)
}

func TestReviewIsTerminal(t *testing.T) {
	s := startSession(t, quizLesson())
	require.NoError(t, s.AnswerQuiz(0))
	require.NoError(t, s.AnswerQuiz(1))
	require.NoError(t, s.AnswerQuiz(0))
	require.Equal(t, PhaseReview, s.Phase())

	var interactionErr *ErrInvalidInteraction
	require.ErrorAs(t, s.AnswerQuiz(0), &interactionErr)
	require.ErrorAs(t, s.Submit(), &interactionErr)
	assert.False(t, s.CanSubmit())

	// The frozen score never moves.
	assert.Equal(t, 3, s.Score())

	m := startSession(t, matchingLesson())
	require.NoError(t, m.SelectLeft("m1"))
	require.NoError(t, m.SelectRight("m1"))
	require.NoError(t, m.SelectLeft("m2"))
	require.NoError(t, m.SelectRight("m2"))
	require.NoError(t, m.SelectLeft("m3"))
	require.NoError(t, m.SelectRight("m3"))
	require.NoError(t, m.Submit())

	require.ErrorAs(t, m.SelectLeft("m1"), &interactionErr)
	require.ErrorAs(t, m.SelectRight("m1"), &interactionErr)
	require.ErrorAs(t, m.SelectItem("c1"), &interactionErr)
	require.ErrorAs(t, m.PlaceInCategory("x"), &interactionErr)
}

func TestKindMismatchOperations(t *testing.T) {
	s := startSession(t, quizLesson())

	var interactionErr *ErrInvalidInteraction
	require.ErrorAs(t, s.SelectLeft("m1"), &interactionErr)
	require.ErrorAs(t, s.SelectItem("c1"), &interactionErr)

	m := startSession(t, matchingLesson())
	require.ErrorAs(t, m.AnswerQuiz(0), &interactionErr)
	require.ErrorAs(t, m.PlaceInCategory("x"), &interactionErr)
}

func TestScoreIsPure(t *testing.T) {
	content := matchingLesson().Content.(*exercise.MatchingContent)
	responses := Responses{Matches: map[string]string{"m1": "m1", "m2": "m3", "m3": "m2"}}

	first := Score(content, responses)
	second := Score(content, responses)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, first)
}
