package generate

import (
	"fmt"
	"strings"

	"github.com/minhvu/atelier/internal/exercise"
)

const exerciseSystemPrompt = `You are an experienced middle-school fine-arts teacher creating interactive exercises. Content must be factually accurate, age-appropriate, and focused on visual arts: color theory, composition, art history, techniques, and materials. Keep language simple and encouraging.`

func buildExerciseUserMessage(topic string, kind exercise.Kind, cfg Config) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Topic: %s\n\n", topic))

	switch {
	case kind == exercise.KindQuiz:
		b.WriteString(fmt.Sprintf(`Create %d multiple-choice questions about this topic.
Each question has exactly 4 options and one correct answer.
Distractor options must be plausible but clearly wrong to someone who understands the topic.
Give a short explanation for every question; explanations are shown to the student after the exercise regardless of their answer.`, cfg.ItemCount))

	case kind.IsMatching():
		b.WriteString(fmt.Sprintf(`Create %d pairs of related art concepts for a matching exercise.
Each pair joins a left-hand concept with the one right-hand concept that belongs to it (term and definition, artist and work, technique and effect).
No right-hand entry may plausibly match more than one left-hand entry.`, cfg.ItemCount))

	case kind == exercise.KindWordCategorization:
		b.WriteString(fmt.Sprintf(`Create a word-sorting exercise: 2-4 categories related to the topic and %d words or short phrases to sort into them.
Every item belongs to exactly one category. Spread the items across all categories.`, cfg.ItemCount))

	default: // image categorization
		b.WriteString(fmt.Sprintf(`Create an image-sorting exercise: 2-4 categories related to the topic and %d visual concepts to sort into them.
Every item belongs to exactly one category, and every item needs an image so the student can sort by looking, not reading.`, cfg.ItemCount))
	}

	if cfg.ImageStrategy == ImageStrategyKeyword {
		b.WriteString("\n\nFor images, give a short 2-4 word English search phrase, not a URL.")
	}

	return b.String()
}

const coverImageSystemPrompt = `You pick image search keywords. Reply with only the keywords, nothing else.`

func buildCoverImageUserMessage(topic string) string {
	return fmt.Sprintf("Give 2-4 English keywords for a colorful cover image illustrating the art topic: %s", topic)
}

const askSystemPrompt = `You are an inspiring middle-school fine-arts teacher. Answer students briefly, vividly, and encouragingly, with concrete visual examples where they help.`
