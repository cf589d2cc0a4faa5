// Package player drives one playback of a lesson: answer collection,
// per-kind interaction rules, scoring, and the transition into review.
// All transitions are triggered by discrete user actions and run to
// completion; a Session is owned by exactly one playback flow.
package player

import (
	"fmt"

	"github.com/minhvu/atelier/internal/exercise"
	"github.com/minhvu/atelier/internal/present"
)

// Phase is the session lifecycle state.
type Phase int

const (
	// PhasePlaying accepts user interactions.
	PhasePlaying Phase = iota

	// PhaseReview is terminal: score and responses are frozen.
	PhaseReview
)

// ErrInvalidInteraction rejects malformed or out-of-range player input.
// These are programming or UI errors: silently clamping them would
// corrupt the score invariant. Fatal to the operation, not the session.
type ErrInvalidInteraction struct {
	Reason string
}

func (e *ErrInvalidInteraction) Error() string {
	return "invalid interaction: " + e.Reason
}

func invalid(format string, args ...any) error {
	return &ErrInvalidInteraction{Reason: fmt.Sprintf(format, args...)}
}

// Responses holds the collected answers, keyed by stable identifiers:
// canonical item index for quiz, item id for matching and categorization.
type Responses struct {
	// Quiz maps item index to chosen option index.
	Quiz map[int]int

	// Matches maps left item id to chosen right item id.
	Matches map[string]string

	// Placements maps item id to chosen category.
	Placements map[string]string
}

// Session is the ephemeral state of one lesson playback. Never persisted;
// destroyed when the player exits to the library.
type Session struct {
	lesson *exercise.Lesson
	view   *present.View

	phase   Phase
	current int // quiz cursor
	score   int

	responses Responses

	// Two independent pending slots. Matching and categorization kinds
	// never share selection state.
	pendingLeft string
	pendingItem string
}

// NewSession starts a playback of the lesson using the given presentation
// view.
func NewSession(lesson *exercise.Lesson, view *present.View) (*Session, error) {
	if err := lesson.Validate(); err != nil {
		return nil, fmt.Errorf("unplayable lesson: %w", err)
	}
	return &Session{
		lesson: lesson,
		view:   view,
		responses: Responses{
			Quiz:       make(map[int]int),
			Matches:    make(map[string]string),
			Placements: make(map[string]string),
		},
	}, nil
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Score returns the current score. Only final once Phase is PhaseReview.
func (s *Session) Score() int { return s.score }

// Lesson returns the lesson being played.
func (s *Session) Lesson() *exercise.Lesson { return s.lesson }

// View returns the presentation view for this session.
func (s *Session) View() *present.View { return s.view }

// Responses returns the collected answers.
func (s *Session) Responses() Responses { return s.responses }

// CurrentIndex returns the quiz cursor.
func (s *Session) CurrentIndex() int { return s.current }

// PendingLeft returns the pending left selection id ("" if none).
func (s *Session) PendingLeft() string { return s.pendingLeft }

// PendingItem returns the pending categorization item id ("" if none).
func (s *Session) PendingItem() string { return s.pendingItem }

// --- Quiz ---

// AnswerQuiz records the chosen option for the current quiz item,
// advances the cursor, and transitions to review after the last item.
// There is no going back.
func (s *Session) AnswerQuiz(choice int) error {
	if s.phase != PhasePlaying {
		return invalid("session is in review")
	}
	quiz, ok := s.lesson.Content.(*exercise.QuizContent)
	if !ok {
		return invalid("quiz answer on %s lesson", s.lesson.Kind)
	}

	item := quiz.Items[s.current]
	if choice < 0 || choice >= len(item.Options) {
		return invalid("option %d out of range [0,%d)", choice, len(item.Options))
	}

	s.responses.Quiz[s.current] = choice
	if choice == item.CorrectOption {
		s.score++
	}

	if s.current == len(quiz.Items)-1 {
		s.finalize()
	} else {
		s.current++
	}
	return nil
}

// --- Matching / Pairing ---

// leftMatched reports whether the left item already has a recorded match.
func (s *Session) leftMatched(id string) bool {
	_, ok := s.responses.Matches[id]
	return ok
}

// rightMatched reports whether the right item is already used by a
// recorded match. Left and right are tracked per side: consuming the
// right half of a pair leaves its left half selectable.
func (s *Session) rightMatched(id string) bool {
	for _, right := range s.responses.Matches {
		if right == id {
			return true
		}
	}
	return false
}

// SelectLeft sets the pending left selection, replacing any prior pending
// selection with no penalty.
func (s *Session) SelectLeft(id string) error {
	if s.phase != PhasePlaying {
		return invalid("session is in review")
	}
	matching, ok := s.lesson.Content.(*exercise.MatchingContent)
	if !ok {
		return invalid("left selection on %s lesson", s.lesson.Kind)
	}
	if matching.Item(id) == nil {
		return invalid("unknown left item %q", id)
	}
	if s.leftMatched(id) {
		return invalid("left item %q already matched", id)
	}
	s.pendingLeft = id
	return nil
}

// SelectRight records a match for the pending left selection. With
// nothing pending it is a no-op.
func (s *Session) SelectRight(id string) error {
	if s.phase != PhasePlaying {
		return invalid("session is in review")
	}
	matching, ok := s.lesson.Content.(*exercise.MatchingContent)
	if !ok {
		return invalid("right selection on %s lesson", s.lesson.Kind)
	}
	if matching.Item(id) == nil {
		return invalid("unknown right item %q", id)
	}
	if s.rightMatched(id) {
		return invalid("right item %q already matched", id)
	}
	if s.pendingLeft == "" {
		return nil
	}
	s.responses.Matches[s.pendingLeft] = id
	s.pendingLeft = ""
	return nil
}

// --- Categorization ---

// SelectItem sets the pending item selection. Placed items have left the
// pool and cannot be selected again.
func (s *Session) SelectItem(id string) error {
	if s.phase != PhasePlaying {
		return invalid("session is in review")
	}
	cat, ok := s.lesson.Content.(*exercise.CategorizationContent)
	if !ok {
		return invalid("item selection on %s lesson", s.lesson.Kind)
	}
	if cat.Item(id) == nil {
		return invalid("unknown item %q", id)
	}
	if _, placed := s.responses.Placements[id]; placed {
		return invalid("item %q already placed", id)
	}
	s.pendingItem = id
	return nil
}

// PlaceInCategory places the pending item into a category. With nothing
// pending it is a no-op. One placement per item; placed items disappear
// from the pool.
func (s *Session) PlaceInCategory(category string) error {
	if s.phase != PhasePlaying {
		return invalid("session is in review")
	}
	cat, ok := s.lesson.Content.(*exercise.CategorizationContent)
	if !ok {
		return invalid("category placement on %s lesson", s.lesson.Kind)
	}
	found := false
	for _, c := range cat.Categories {
		if c == category {
			found = true
			break
		}
	}
	if !found {
		return invalid("unknown category %q", category)
	}
	if s.pendingItem == "" {
		return nil
	}
	s.responses.Placements[s.pendingItem] = category
	s.pendingItem = ""
	return nil
}

// --- Submission ---

// CanSubmit reports whether every item has been answered. Quiz sessions
// submit implicitly on the last answer and always return false here.
func (s *Session) CanSubmit() bool {
	if s.phase != PhasePlaying {
		return false
	}
	switch c := s.lesson.Content.(type) {
	case *exercise.MatchingContent:
		return len(s.responses.Matches) == len(c.Items)
	case *exercise.CategorizationContent:
		return len(s.responses.Placements) == len(c.Items)
	default:
		return false
	}
}

// Submit finalizes a matching or categorization session: verifies
// completeness, computes the score, and enters review.
func (s *Session) Submit() error {
	if s.phase != PhasePlaying {
		return invalid("session is in review")
	}
	switch c := s.lesson.Content.(type) {
	case *exercise.MatchingContent:
		if err := verifyBijection(c, s.responses.Matches); err != nil {
			return err
		}
	case *exercise.CategorizationContent:
		if len(s.responses.Placements) != len(c.Items) {
			return invalid("placed %d of %d items", len(s.responses.Placements), len(c.Items))
		}
	default:
		return invalid("explicit submit on %s lesson", s.lesson.Kind)
	}

	s.score = Score(s.lesson.Content, s.responses)
	s.finalize()
	return nil
}

// finalize freezes the session. The only entry into PhaseReview.
func (s *Session) finalize() {
	s.phase = PhaseReview
	s.pendingLeft = ""
	s.pendingItem = ""
}

// verifyBijection checks that matches map every left id to a distinct
// right id over the full item set.
func verifyBijection(c *exercise.MatchingContent, matches map[string]string) error {
	if len(matches) != len(c.Items) {
		return invalid("matched %d of %d items", len(matches), len(c.Items))
	}
	usedRight := make(map[string]bool, len(matches))
	for _, item := range c.Items {
		right, ok := matches[item.ID]
		if !ok {
			return invalid("left item %q unmatched", item.ID)
		}
		if usedRight[right] {
			return invalid("right item %q matched twice", right)
		}
		usedRight[right] = true
	}
	return nil
}
