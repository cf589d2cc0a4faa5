package player

import "github.com/minhvu/atelier/internal/exercise"

// Score computes the score for a set of responses against canonical
// content. Pure function of (content, responses): replaying the same
// responses always yields the same score, which is what makes review and
// testing reproducible.
func Score(content exercise.Content, r Responses) int {
	switch c := content.(type) {
	case *exercise.QuizContent:
		return ScoreQuiz(c, r.Quiz)
	case *exercise.MatchingContent:
		return ScoreMatching(c, r.Matches)
	case *exercise.CategorizationContent:
		return ScoreCategorization(c, r.Placements)
	default:
		return 0
	}
}

// ScoreQuiz counts responses that picked the correct option.
func ScoreQuiz(c *exercise.QuizContent, responses map[int]int) int {
	score := 0
	for i, item := range c.Items {
		if choice, ok := responses[i]; ok && choice == item.CorrectOption {
			score++
		}
	}
	return score
}

// ScoreMatching counts items matched to their own right-hand side: an
// item is correct only when responses[item.ID] == item.ID.
func ScoreMatching(c *exercise.MatchingContent, matches map[string]string) int {
	score := 0
	for _, item := range c.Items {
		if matches[item.ID] == item.ID {
			score++
		}
	}
	return score
}

// ScoreCategorization counts items placed into their correct category.
func ScoreCategorization(c *exercise.CategorizationContent, placements map[string]string) int {
	score := 0
	for _, item := range c.Items {
		if placements[item.ID] == item.Category {
			score++
		}
	}
	return score
}
