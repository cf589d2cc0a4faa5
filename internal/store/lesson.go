package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/minhvu/atelier/ent"
	entlesson "github.com/minhvu/atelier/ent/lesson"
	"github.com/minhvu/atelier/internal/exercise"
)

// LessonRepo is the lesson library: an ordered collection of immutable
// Lesson records keyed by id. Append and read only — lessons are never
// updated, just deleted.
type LessonRepo interface {
	// Append stores a newly generated lesson.
	Append(ctx context.Context, l *exercise.Lesson) error

	// List returns all lessons, newest first.
	List(ctx context.Context) ([]*exercise.Lesson, error)

	// Get returns the lesson with the given id, or nil if absent.
	Get(ctx context.Context, id string) (*exercise.Lesson, error)

	// Delete removes a lesson. Deleting an absent id is not an error.
	Delete(ctx context.Context, id string) error
}

type lessonRepo struct {
	client *ent.Client
}

func (r *lessonRepo) Append(ctx context.Context, l *exercise.Lesson) error {
	contentJSON, err := exercise.MarshalContent(l.Kind, l.Content)
	if err != nil {
		return err
	}

	create := r.client.Lesson.Create().
		SetID(l.ID).
		SetTitle(l.Title).
		SetDescription(l.Description).
		SetKind(string(l.Kind)).
		SetContent(string(contentJSON)).
		SetCoverImageURL(l.CoverImageRef).
		SetCreatedAt(l.CreatedAt)

	if len(l.Grounding) > 0 {
		groundingJSON, err := json.Marshal(l.Grounding)
		if err != nil {
			return fmt.Errorf("marshal grounding: %w", err)
		}
		create.SetGrounding(string(groundingJSON))
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("save lesson: %w", err)
	}
	return nil
}

func (r *lessonRepo) List(ctx context.Context) ([]*exercise.Lesson, error) {
	rows, err := r.client.Lesson.Query().
		Order(ent.Desc(entlesson.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}

	out := make([]*exercise.Lesson, 0, len(rows))
	for _, row := range rows {
		l, err := decodeLesson(row)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

func (r *lessonRepo) Get(ctx context.Context, id string) (*exercise.Lesson, error) {
	row, err := r.client.Lesson.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get lesson %s: %w", id, err)
	}
	return decodeLesson(row)
}

func (r *lessonRepo) Delete(ctx context.Context, id string) error {
	err := r.client.Lesson.DeleteOneID(id).Exec(ctx)
	if ent.IsNotFound(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("delete lesson %s: %w", id, err)
	}
	return nil
}

// decodeLesson rebuilds the domain lesson from a row.
func decodeLesson(row *ent.Lesson) (*exercise.Lesson, error) {
	kind, content, err := exercise.UnmarshalContent([]byte(row.Content))
	if err != nil {
		return nil, fmt.Errorf("lesson %s: %w", row.ID, err)
	}

	l := &exercise.Lesson{
		ID:            row.ID,
		Title:         row.Title,
		Description:   row.Description,
		Kind:          kind,
		Content:       content,
		CoverImageRef: row.CoverImageURL,
		CreatedAt:     row.CreatedAt,
	}

	if row.Grounding != "" {
		if err := json.Unmarshal([]byte(row.Grounding), &l.Grounding); err != nil {
			return nil, fmt.Errorf("lesson %s grounding: %w", row.ID, err)
		}
	}
	return l, nil
}
