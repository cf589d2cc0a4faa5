package present

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhvu/atelier/internal/exercise"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(42, 1))
}

func matchingContent(n int) *exercise.MatchingContent {
	painters := []exercise.MatchItem{
		{ID: "m1", Left: "Monet", Right: "Water Lilies"},
		{ID: "m2", Left: "Dalí", Right: "The Persistence of Memory"},
		{ID: "m3", Left: "Hokusai", Right: "The Great Wave"},
		{ID: "m4", Left: "Kahlo", Right: "The Two Fridas"},
		{ID: "m5", Left: "Vermeer", Right: "Girl with a Pearl Earring"},
		{ID: "m6", Left: "Munch", Right: "The Scream"},
	}
	return &exercise.MatchingContent{Items: painters[:n]}
}

func TestPresentQuizKeepsAuthoredOrder(t *testing.T) {
	quiz := &exercise.QuizContent{Items: []exercise.QuizItem{
		{Prompt: "First?", Options: []string{"a", "b"}, CorrectOption: 0},
		{Prompt: "Second?", Options: []string{"c", "d"}, CorrectOption: 1},
		{Prompt: "Third?", Options: []string{"e", "f"}, CorrectOption: 0},
	}}

	v := Present(exercise.KindQuiz, quiz, testRand())

	require.Len(t, v.Quiz, 3)
	assert.Equal(t, "First?", v.Quiz[0].Prompt)
	assert.Equal(t, "Third?", v.Quiz[2].Prompt)
	assert.Equal(t, []string{"c", "d"}, v.Quiz[1].Options)
}

func TestPresentMatchingShufflesColumnsIndependently(t *testing.T) {
	content := matchingContent(6)
	v := Present(exercise.KindMatching, content, testRand())

	require.Len(t, v.LeftOrder, 6)
	require.Len(t, v.RightOrder, 6)

	// Both orderings cover the full id set.
	assert.ElementsMatch(t, []string{"m1", "m2", "m3", "m4", "m5", "m6"}, v.LeftOrder)
	assert.ElementsMatch(t, []string{"m1", "m2", "m3", "m4", "m5", "m6"}, v.RightOrder)

	// The columns are drawn from the same source but shuffled separately.
	// Any single seed could coincide, so look across several.
	diverged := false
	for seed := uint64(0); seed < 20 && !diverged; seed++ {
		v := Present(exercise.KindMatching, content, rand.New(rand.NewPCG(seed, seed)))
		diverged = !assert.ObjectsAreEqual(v.LeftOrder, v.RightOrder)
	}
	assert.True(t, diverged, "left and right columns should shuffle independently")
}

func TestPresentDoesNotMutateContent(t *testing.T) {
	content := matchingContent(6)
	before := make([]string, len(content.Items))
	for i, item := range content.Items {
		before[i] = item.ID
	}

	Present(exercise.KindMatching, content, testRand())

	after := make([]string, len(content.Items))
	for i, item := range content.Items {
		after[i] = item.ID
	}
	assert.Equal(t, before, after)
}

func TestPresentReshufflesAcrossCalls(t *testing.T) {
	content := matchingContent(6)

	diverged := false
	for seed := uint64(0); seed < 20 && !diverged; seed++ {
		rng := rand.New(rand.NewPCG(seed, seed+1))
		first := Present(exercise.KindMatching, content, rng)
		second := Present(exercise.KindMatching, content, rng)
		diverged = !assert.ObjectsAreEqual(first.LeftOrder, second.LeftOrder) ||
			!assert.ObjectsAreEqual(first.RightOrder, second.RightOrder)
	}
	assert.True(t, diverged, "consecutive presentations should reshuffle")
}

func TestPresentCategorization(t *testing.T) {
	content := &exercise.CategorizationContent{
		Categories: []string{"Renaissance", "Baroque", "Romanticism"},
		Items: []exercise.CategoryItem{
			{ID: "c1", Text: "Botticelli", Category: "Renaissance"},
			{ID: "c2", Text: "Caravaggio", Category: "Baroque"},
			{ID: "c3", Text: "Turner", Category: "Romanticism"},
			{ID: "c4", Text: "Raphael", Category: "Renaissance"},
		},
	}

	v := Present(exercise.KindWordCategorization, content, testRand())

	assert.ElementsMatch(t, []string{"c1", "c2", "c3", "c4"}, v.ItemOrder)
	// Categories are selection targets and keep canonical order.
	assert.Equal(t, []string{"Renaissance", "Baroque", "Romanticism"}, v.Categories)
}

func TestPresentSeededIsDeterministic(t *testing.T) {
	content := matchingContent(6)

	a := Present(exercise.KindPairing, content, rand.New(rand.NewPCG(9, 9)))
	b := Present(exercise.KindPairing, content, rand.New(rand.NewPCG(9, 9)))

	assert.Equal(t, a.LeftOrder, b.LeftOrder)
	assert.Equal(t, a.RightOrder, b.RightOrder)
}
