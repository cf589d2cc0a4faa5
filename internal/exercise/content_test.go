package exercise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuiz() *QuizContent {
	return &QuizContent{Items: []QuizItem{
		{Prompt: "Who painted Water Lilies?", Options: []string{"Monet", "Manet", "Degas"}, CorrectOption: 0, Explanation: "Monet painted the series at Giverny."},
		{Prompt: "Which movement is Starry Night?", Options: []string{"Cubism", "Post-Impressionism"}, CorrectOption: 1},
	}}
}

func validMatching() *MatchingContent {
	return &MatchingContent{Items: []MatchItem{
		{ID: "m1", Left: "Picasso", Right: "Guernica"},
		{ID: "m2", Left: "Klimt", Right: "The Kiss"},
		{ID: "m3", Left: "Vermeer", Right: "Girl with a Pearl Earring"},
	}}
}

func validCategorization() *CategorizationContent {
	return &CategorizationContent{
		Categories: []string{"Baroque", "Impressionism"},
		Items: []CategoryItem{
			{ID: "c1", Text: "Rembrandt", Category: "Baroque"},
			{ID: "c2", Text: "Renoir", Category: "Impressionism"},
		},
	}
}

func TestQuizValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*QuizContent)
		wantErr string
	}{
		{"valid", func(*QuizContent) {}, ""},
		{"no items", func(c *QuizContent) { c.Items = nil }, "no items"},
		{"empty prompt", func(c *QuizContent) { c.Items[0].Prompt = "" }, "empty prompt"},
		{"one option", func(c *QuizContent) { c.Items[0].Options = []string{"Monet"} }, "at least 2 options"},
		{"correct option too high", func(c *QuizContent) { c.Items[1].CorrectOption = 2 }, "out of range"},
		{"correct option negative", func(c *QuizContent) { c.Items[0].CorrectOption = -1 }, "out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validQuiz()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMatchingValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*MatchingContent)
		wantErr string
	}{
		{"valid", func(*MatchingContent) {}, ""},
		{"no items", func(c *MatchingContent) { c.Items = nil }, "no items"},
		{"empty id", func(c *MatchingContent) { c.Items[1].ID = "" }, "empty id"},
		{"duplicate id", func(c *MatchingContent) { c.Items[2].ID = "m1" }, "duplicate id"},
		{"empty side", func(c *MatchingContent) { c.Items[0].Right = "" }, "empty side"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validMatching()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCategorizationValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CategorizationContent)
		wantErr string
	}{
		{"valid", func(*CategorizationContent) {}, ""},
		{"no categories", func(c *CategorizationContent) { c.Categories = nil }, "no categories"},
		{"duplicate category", func(c *CategorizationContent) { c.Categories = []string{"Baroque", "Baroque"} }, "duplicate category"},
		{"item outside category set", func(c *CategorizationContent) { c.Items[0].Category = "Dada" }, "not in the category set"},
		{"duplicate item id", func(c *CategorizationContent) { c.Items[1].ID = "c1" }, "duplicate id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCategorization()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestItemLookup(t *testing.T) {
	m := validMatching()
	require.NotNil(t, m.Item("m2"))
	assert.Equal(t, "Klimt", m.Item("m2").Left)
	assert.Nil(t, m.Item("nope"))

	c := validCategorization()
	require.NotNil(t, c.Item("c1"))
	assert.Equal(t, "Rembrandt", c.Item("c1").Text)
	assert.Nil(t, c.Item("nope"))
}

func TestContentEnvelope(t *testing.T) {
	// Pairing shares the matching shape; the envelope must preserve the
	// exact kind, not the representative one.
	raw, err := MarshalContent(KindPairing, validMatching())
	require.NoError(t, err)

	kind, content, err := UnmarshalContent(raw)
	require.NoError(t, err)
	assert.Equal(t, KindPairing, kind)

	m, ok := content.(*MatchingContent)
	require.True(t, ok)
	assert.Len(t, m.Items, 3)
	assert.Equal(t, "Guernica", m.Items[0].Right)
}

func TestContentEnvelopeUnknownKind(t *testing.T) {
	_, _, err := UnmarshalContent([]byte(`{"kind":"crossword","data":{}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown content kind")
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := ParseKind("crossword")
	assert.Error(t, err)
}

func TestLessonValidate(t *testing.T) {
	l := &Lesson{ID: "x", Title: "Impressionists", Kind: KindQuiz, Content: validQuiz()}
	assert.NoError(t, l.Validate())

	l.Content = validMatching()
	err := l.Validate()
	require.Error(t, err)

	l.Content = nil
	assert.Error(t, l.Validate())
}
