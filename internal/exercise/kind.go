package exercise

import "fmt"

// Kind identifies the interaction format of an exercise.
type Kind string

const (
	KindQuiz                Kind = "quiz"
	KindMatching            Kind = "matching"
	KindPairing             Kind = "pairing"
	KindWordCategorization  Kind = "word_categorization"
	KindImageCategorization Kind = "image_categorization"
)

// Kinds lists every supported interaction kind in display order.
var Kinds = []Kind{
	KindQuiz,
	KindMatching,
	KindPairing,
	KindWordCategorization,
	KindImageCategorization,
}

// ParseKind converts a string to a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown interaction kind: %q", s)
}

// String returns the wire name of the kind.
func (k Kind) String() string { return string(k) }

// Label returns a human-readable name for the kind.
func (k Kind) Label() string {
	switch k {
	case KindQuiz:
		return "Quiz"
	case KindMatching:
		return "Matching"
	case KindPairing:
		return "Pairing"
	case KindWordCategorization:
		return "Word Categorization"
	case KindImageCategorization:
		return "Image Categorization"
	default:
		return string(k)
	}
}

// IsQuiz reports whether the kind uses quiz content.
func (k Kind) IsQuiz() bool {
	return k == KindQuiz
}

// IsCategorization reports whether the kind uses categorization content.
func (k Kind) IsCategorization() bool {
	return k == KindWordCategorization || k == KindImageCategorization
}

// IsMatching reports whether the kind uses matching content.
// Matching and Pairing share a representation.
func (k Kind) IsMatching() bool {
	return k == KindMatching || k == KindPairing
}
