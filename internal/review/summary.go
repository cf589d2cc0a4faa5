// Package review turns a finished play session into a report: percentage
// score, per-item correctness, and any grounding citations.
package review

import (
	"fmt"
	"math"

	"github.com/minhvu/atelier/internal/exercise"
	"github.com/minhvu/atelier/internal/player"
)

// ItemResult describes one item's outcome.
type ItemResult struct {
	Correct bool

	// Detail is the player-facing line for this item. Quiz details always
	// include the explanation — explanations are pedagogy, not failure
	// feedback.
	Detail string
}

// Summary is the review-screen report.
type Summary struct {
	// ScorePercent is round(100 * score / totalItems), 0 for empty
	// content (which generation-time validation rules out anyway).
	ScorePercent int

	PerItem []ItemResult

	// Citations are the lesson's grounding references, passed through
	// unmodified. Empty is valid and suppresses the section.
	Citations []exercise.GroundingRef
}

// Summarize builds the review report for a lesson and its collected
// responses.
func Summarize(lesson *exercise.Lesson, responses player.Responses, score int) Summary {
	s := Summary{
		ScorePercent: scorePercent(score, lesson.Content.ItemCount()),
		Citations:    lesson.Grounding,
	}

	switch c := lesson.Content.(type) {
	case *exercise.QuizContent:
		for i, item := range c.Items {
			choice, answered := responses.Quiz[i]
			correct := answered && choice == item.CorrectOption
			chosen := "(no answer)"
			if answered {
				chosen = item.Options[choice]
			}
			s.PerItem = append(s.PerItem, ItemResult{
				Correct: correct,
				Detail: fmt.Sprintf("%s — you chose %q, correct is %q. %s",
					item.Prompt, chosen, item.Options[item.CorrectOption], item.Explanation),
			})
		}

	case *exercise.MatchingContent:
		for _, item := range c.Items {
			correct := responses.Matches[item.ID] == item.ID
			detail := fmt.Sprintf("%s ↔ %s", item.Left, item.Right)
			if !correct {
				if rightID, ok := responses.Matches[item.ID]; ok {
					if chosen := c.Item(rightID); chosen != nil {
						detail = fmt.Sprintf("%s — you matched %q, correct is %q", item.Left, chosen.Right, item.Right)
					}
				}
			}
			s.PerItem = append(s.PerItem, ItemResult{Correct: correct, Detail: detail})
		}

	case *exercise.CategorizationContent:
		for _, item := range c.Items {
			placed := responses.Placements[item.ID]
			correct := placed == item.Category
			detail := fmt.Sprintf("%s → %s", item.Text, item.Category)
			if !correct {
				detail = fmt.Sprintf("%s — you placed it in %q, correct is %q", item.Text, placed, item.Category)
			}
			s.PerItem = append(s.PerItem, ItemResult{Correct: correct, Detail: detail})
		}
	}

	return s
}

// scorePercent rounds to the nearest integer percentage, guarding the
// zero-item case.
func scorePercent(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(score) / float64(total)))
}
