package generate

import (
	"github.com/minhvu/atelier/internal/exercise"
	"github.com/minhvu/atelier/internal/llm"
)

// schemaName disambiguates compiled-schema cache entries per strategy.
func schemaName(base string, strategy ImageStrategy) string {
	if strategy == ImageStrategyDirect {
		return base + "-direct"
	}
	return base
}

// imageProperty returns the per-item image field for the active strategy.
// Keyword strategy asks for a short search phrase; direct strategy asks
// for a full URL.
func imageProperty(strategy ImageStrategy) (string, map[string]any) {
	if strategy == ImageStrategyDirect {
		return "image_url", map[string]any{
			"type":        "string",
			"description": "Direct URL of an illustrative image, or empty string if none",
		}
	}
	return "image_hint", map[string]any{
		"type":        "string",
		"description": "2-4 English words describing an illustrative image, e.g. \"warm color wheel\". Empty string if no image fits.",
	}
}

// lessonProperties returns the title/description envelope shared by all
// exercise schemas.
func lessonProperties() map[string]any {
	return map[string]any{
		"title": map[string]any{
			"type":        "string",
			"description": "Short lesson title (3-8 words)",
		},
		"description": map[string]any{
			"type":        "string",
			"description": "One-sentence description of what the exercise covers",
		},
	}
}

// quizSchema constrains quiz generation output.
func quizSchema(strategy ImageStrategy) *llm.Schema {
	imgField, imgProp := imageProperty(strategy)

	props := lessonProperties()
	props["questions"] = map[string]any{
		"type":        "array",
		"description": "The quiz questions, in teaching order",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"prompt": map[string]any{
					"type":        "string",
					"description": "The question shown to the student",
				},
				"options": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Exactly 4 answer options",
				},
				"correct_option": map[string]any{
					"type":        "integer",
					"description": "Zero-based index of the correct option",
				},
				"explanation": map[string]any{
					"type":        "string",
					"description": "Why the correct answer is correct, 1-2 sentences",
				},
				imgField: imgProp,
			},
			"required":             []any{"prompt", "options", "correct_option", "explanation", imgField},
			"additionalProperties": false,
		},
	}

	return &llm.Schema{
		Name:        schemaName("quiz-exercise", strategy),
		Description: "A multiple-choice quiz about an art topic",
		Definition: map[string]any{
			"type":                 "object",
			"properties":           props,
			"required":             []any{"title", "description", "questions"},
			"additionalProperties": false,
		},
	}
}

// matchingSchema constrains matching/pairing generation output.
// Each pair's left and right belong together; the generator assigns ids.
func matchingSchema(strategy ImageStrategy) *llm.Schema {
	imgField, imgProp := imageProperty(strategy)

	props := lessonProperties()
	props["pairs"] = map[string]any{
		"type":        "array",
		"description": "Concept pairs where each left belongs with its own right",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"left": map[string]any{
					"type":        "string",
					"description": "Left-hand concept, e.g. a term or artist",
				},
				"right": map[string]any{
					"type":        "string",
					"description": "The matching right-hand concept, e.g. a definition or artwork",
				},
				imgField: imgProp,
			},
			"required":             []any{"left", "right", imgField},
			"additionalProperties": false,
		},
	}

	return &llm.Schema{
		Name:        schemaName("matching-exercise", strategy),
		Description: "A matching exercise pairing related art concepts",
		Definition: map[string]any{
			"type":                 "object",
			"properties":           props,
			"required":             []any{"title", "description", "pairs"},
			"additionalProperties": false,
		},
	}
}

// categorizationSchema constrains word/image categorization output.
func categorizationSchema(strategy ImageStrategy) *llm.Schema {
	imgField, imgProp := imageProperty(strategy)

	props := lessonProperties()
	props["categories"] = map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"description": "2-4 distinct category names",
	}
	props["items"] = map[string]any{
		"type":        "array",
		"description": "Items to be sorted into the categories",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text": map[string]any{
					"type":        "string",
					"description": "The word or concept to categorize",
				},
				"category": map[string]any{
					"type":        "string",
					"description": "The correct category; must be one of the declared categories",
				},
				imgField: imgProp,
			},
			"required":             []any{"text", "category", imgField},
			"additionalProperties": false,
		},
	}

	return &llm.Schema{
		Name:        schemaName("categorization-exercise", strategy),
		Description: "A sorting exercise placing art concepts into categories",
		Definition: map[string]any{
			"type":                 "object",
			"properties":           props,
			"required":             []any{"title", "description", "categories", "items"},
			"additionalProperties": false,
		},
	}
}

// schemaFor returns the structural contract for a kind and image strategy.
func schemaFor(kind exercise.Kind, strategy ImageStrategy) *llm.Schema {
	switch {
	case kind == exercise.KindQuiz:
		return quizSchema(strategy)
	case kind.IsMatching():
		return matchingSchema(strategy)
	default:
		return categorizationSchema(strategy)
	}
}
