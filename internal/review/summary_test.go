package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhvu/atelier/internal/exercise"
	"github.com/minhvu/atelier/internal/player"
)

func quizLesson() *exercise.Lesson {
	return &exercise.Lesson{
		ID:    "l1",
		Title: "Color Theory",
		Kind:  exercise.KindQuiz,
		Content: &exercise.QuizContent{Items: []exercise.QuizItem{
			{Prompt: "Complement of blue?", Options: []string{"Orange", "Green"}, CorrectOption: 0, Explanation: "Complements sit opposite on the color wheel."},
			{Prompt: "Primary colors count?", Options: []string{"Two", "Three"}, CorrectOption: 1, Explanation: "Red, yellow, and blue."},
			{Prompt: "Warm color?", Options: []string{"Red", "Blue"}, CorrectOption: 0, Explanation: "Warm hues lean toward red and yellow."},
		}},
		Grounding: []exercise.GroundingRef{{Title: "Color wheel", URI: "https://example.org/wheel"}},
	}
}

func TestSummarizeQuiz(t *testing.T) {
	responses := player.Responses{Quiz: map[int]int{0: 0, 1: 0, 2: 0}}
	s := Summarize(quizLesson(), responses, 2)

	assert.Equal(t, 67, s.ScorePercent)
	require.Len(t, s.PerItem, 3)

	assert.True(t, s.PerItem[0].Correct)
	assert.False(t, s.PerItem[1].Correct)
	assert.True(t, s.PerItem[2].Correct)

	// Explanations appear on correct and incorrect items alike.
	assert.Contains(t, s.PerItem[0].Detail, "opposite on the color wheel")
	assert.Contains(t, s.PerItem[1].Detail, "Red, yellow, and blue")
	assert.Contains(t, s.PerItem[1].Detail, `you chose "Two"`)
	assert.Contains(t, s.PerItem[1].Detail, `correct is "Three"`)

	require.Len(t, s.Citations, 1)
	assert.Equal(t, "Color wheel", s.Citations[0].Title)
}

func TestSummarizeQuizUnanswered(t *testing.T) {
	responses := player.Responses{Quiz: map[int]int{0: 0}}
	s := Summarize(quizLesson(), responses, 1)

	assert.False(t, s.PerItem[1].Correct)
	assert.Contains(t, s.PerItem[1].Detail, "(no answer)")
}

func TestSummarizeMatching(t *testing.T) {
	lesson := &exercise.Lesson{
		ID:   "l2",
		Kind: exercise.KindMatching,
		Content: &exercise.MatchingContent{Items: []exercise.MatchItem{
			{ID: "m1", Left: "Rodin", Right: "The Thinker"},
			{ID: "m2", Left: "Michelangelo", Right: "David"},
		}},
	}
	responses := player.Responses{Matches: map[string]string{"m1": "m1", "m2": "m1"}}

	s := Summarize(lesson, responses, 1)

	assert.Equal(t, 50, s.ScorePercent)
	assert.True(t, s.PerItem[0].Correct)
	assert.Contains(t, s.PerItem[0].Detail, "Rodin")

	assert.False(t, s.PerItem[1].Correct)
	assert.Contains(t, s.PerItem[1].Detail, `you matched "The Thinker"`)
	assert.Contains(t, s.PerItem[1].Detail, `correct is "David"`)

	assert.Empty(t, s.Citations)
}

func TestSummarizeCategorization(t *testing.T) {
	lesson := &exercise.Lesson{
		ID:   "l3",
		Kind: exercise.KindImageCategorization,
		Content: &exercise.CategorizationContent{
			Categories: []string{"Cubism", "Fauvism"},
			Items: []exercise.CategoryItem{
				{ID: "c1", Text: "Les Demoiselles d'Avignon", Category: "Cubism"},
				{ID: "c2", Text: "Woman with a Hat", Category: "Fauvism"},
			},
		},
	}
	responses := player.Responses{Placements: map[string]string{"c1": "Cubism", "c2": "Cubism"}}

	s := Summarize(lesson, responses, 1)

	assert.Equal(t, 50, s.ScorePercent)
	assert.True(t, s.PerItem[0].Correct)
	assert.False(t, s.PerItem[1].Correct)
	assert.Contains(t, s.PerItem[1].Detail, `you placed it in "Cubism"`)
}

func TestScorePercentRounding(t *testing.T) {
	tests := []struct {
		score, total, want int
	}{
		{0, 3, 0},
		{1, 3, 33},
		{2, 3, 67},
		{3, 3, 100},
		{1, 6, 17},
		{0, 0, 0},
		{5, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, scorePercent(tt.score, tt.total), "score %d/%d", tt.score, tt.total)
	}
}
