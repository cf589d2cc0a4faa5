package generate

import (
	"context"
	"encoding/json"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhvu/atelier/internal/exercise"
	gen "github.com/minhvu/atelier/internal/generate"
	"github.com/minhvu/atelier/internal/llm"
	"github.com/minhvu/atelier/internal/router"
)

// stubProvider answers the structured content call with a fixed quiz and
// the cover call with a keyword. It ignores context state, so a lesson
// can finish "after" the player backed out.
type stubProvider struct{}

func (stubProvider) Generate(_ context.Context, req llm.Request) (*llm.Response, error) {
	if req.Schema != nil {
		return &llm.Response{Content: json.RawMessage(`{
			"title": "Cubism",
			"questions": [{
				"prompt": "Who co-founded Cubism alongside Picasso?",
				"options": ["Georges Braque", "Claude Monet"],
				"correct_option": 0,
				"explanation": "Braque and Picasso developed the style together.",
				"image_hint": "cubism"
			}]
		}`)}, nil
	}
	return &llm.Response{Content: json.RawMessage("cubist painting")}, nil
}

func (stubProvider) ModelID() string { return "stub" }

type recordingRepo struct {
	appended []*exercise.Lesson
}

func (r *recordingRepo) Append(_ context.Context, l *exercise.Lesson) error {
	r.appended = append(r.appended, l)
	return nil
}

func (r *recordingRepo) List(context.Context) ([]*exercise.Lesson, error) { return nil, nil }

func (r *recordingRepo) Get(context.Context, string) (*exercise.Lesson, error) { return nil, nil }

func (r *recordingRepo) Delete(context.Context, string) error { return nil }

func TestGenerateCmdPersistsLesson(t *testing.T) {
	repo := &recordingRepo{}
	generator := gen.New(stubProvider{}, gen.DefaultConfig())

	cmd := generateCmd(context.Background(), generator, repo, "cubism", exercise.KindQuiz)
	msg := cmd()

	ready, ok := msg.(lessonReadyMsg)
	require.True(t, ok)
	require.NoError(t, ready.Err)
	require.Len(t, repo.appended, 1)
	assert.Equal(t, "Cubism", repo.appended[0].Title)
}

func TestGenerateCmdDiscardsCanceledResult(t *testing.T) {
	repo := &recordingRepo{}
	generator := gen.New(stubProvider{}, gen.DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cmd := generateCmd(ctx, generator, repo, "cubism", exercise.KindQuiz)
	cancel()
	msg := cmd()

	ready, ok := msg.(lessonReadyMsg)
	require.True(t, ok)
	assert.ErrorIs(t, ready.Err, context.Canceled)
	assert.Empty(t, repo.appended, "a lesson finished after cancellation must not be saved")
}

func TestEscWhileGeneratingCancelsAndPops(t *testing.T) {
	s := New(gen.New(stubProvider{}, gen.DefaultConfig()), &recordingRepo{})
	s.generating = true

	canceled := false
	s.cancel = func() { canceled = true }

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
	assert.True(t, canceled)
	assert.False(t, s.generating)
	assert.Nil(t, s.cancel)
}
