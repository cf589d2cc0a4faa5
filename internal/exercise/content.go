package exercise

import (
	"encoding/json"
	"fmt"
)

// Content is the canonical exercise payload, a tagged union keyed by Kind.
// Exactly three implementations exist: QuizContent, MatchingContent and
// CategorizationContent (the two categorization kinds share it, as do
// matching and pairing).
type Content interface {
	// ContentKind returns the base kind of this content shape.
	// For shared shapes this is the representative kind (KindMatching,
	// KindWordCategorization); the Lesson envelope carries the exact kind.
	ContentKind() Kind

	// Validate checks the content invariants: index bounds, id uniqueness,
	// category membership, minimum sizes.
	Validate() error

	// ItemCount returns the number of scoreable items.
	ItemCount() int
}

// QuizItem is a single multiple-choice question.
type QuizItem struct {
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correct_option"`
	Explanation   string   `json:"explanation"`
	ImageRef      string   `json:"image_ref,omitempty"`
}

// QuizContent is an ordered sequence of quiz items. Items are always
// traversed in canonical order; option order is never shuffled so
// CorrectOption stays directly usable.
type QuizContent struct {
	Items []QuizItem `json:"items"`
}

func (c *QuizContent) ContentKind() Kind { return KindQuiz }

func (c *QuizContent) ItemCount() int { return len(c.Items) }

func (c *QuizContent) Validate() error {
	if len(c.Items) == 0 {
		return fmt.Errorf("quiz has no items")
	}
	for i, item := range c.Items {
		if item.Prompt == "" {
			return fmt.Errorf("quiz item %d: empty prompt", i)
		}
		if len(item.Options) < 2 {
			return fmt.Errorf("quiz item %d: needs at least 2 options, got %d", i, len(item.Options))
		}
		if item.CorrectOption < 0 || item.CorrectOption >= len(item.Options) {
			return fmt.Errorf("quiz item %d: correct_option %d out of range [0,%d)", i, item.CorrectOption, len(item.Options))
		}
	}
	return nil
}

// MatchItem is one left/right pair. The item's own right side is its only
// correct match: a pairing is correct iff the chosen right id equals the
// left id.
type MatchItem struct {
	ID       string `json:"id"`
	Left     string `json:"left"`
	Right    string `json:"right"`
	ImageRef string `json:"image_ref,omitempty"`
}

// MatchingContent is the shared shape for Matching and Pairing exercises.
type MatchingContent struct {
	Items []MatchItem `json:"items"`
}

func (c *MatchingContent) ContentKind() Kind { return KindMatching }

func (c *MatchingContent) ItemCount() int { return len(c.Items) }

func (c *MatchingContent) Validate() error {
	if len(c.Items) == 0 {
		return fmt.Errorf("matching exercise has no items")
	}
	seen := make(map[string]bool, len(c.Items))
	for i, item := range c.Items {
		if item.ID == "" {
			return fmt.Errorf("match item %d: empty id", i)
		}
		if seen[item.ID] {
			return fmt.Errorf("match item %d: duplicate id %q", i, item.ID)
		}
		seen[item.ID] = true
		if item.Left == "" || item.Right == "" {
			return fmt.Errorf("match item %d: empty side", i)
		}
	}
	return nil
}

// Item returns the match item with the given id, or nil.
func (c *MatchingContent) Item(id string) *MatchItem {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return &c.Items[i]
		}
	}
	return nil
}

// CategoryItem is a single draggable item with its correct category.
type CategoryItem struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category"`
	ImageRef string `json:"image_ref,omitempty"`
}

// CategorizationContent is the shared shape for word and image
// categorization exercises.
type CategorizationContent struct {
	Categories []string       `json:"categories"`
	Items      []CategoryItem `json:"items"`
}

func (c *CategorizationContent) ContentKind() Kind { return KindWordCategorization }

func (c *CategorizationContent) ItemCount() int { return len(c.Items) }

func (c *CategorizationContent) Validate() error {
	if len(c.Categories) == 0 {
		return fmt.Errorf("categorization has no categories")
	}
	if len(c.Items) == 0 {
		return fmt.Errorf("categorization has no items")
	}
	cats := make(map[string]bool, len(c.Categories))
	for i, cat := range c.Categories {
		if cat == "" {
			return fmt.Errorf("category %d is empty", i)
		}
		if cats[cat] {
			return fmt.Errorf("duplicate category %q", cat)
		}
		cats[cat] = true
	}
	seen := make(map[string]bool, len(c.Items))
	for i, item := range c.Items {
		if item.ID == "" {
			return fmt.Errorf("category item %d: empty id", i)
		}
		if seen[item.ID] {
			return fmt.Errorf("category item %d: duplicate id %q", i, item.ID)
		}
		seen[item.ID] = true
		if item.Text == "" {
			return fmt.Errorf("category item %d: empty text", i)
		}
		if !cats[item.Category] {
			return fmt.Errorf("category item %d: category %q is not in the category set", i, item.Category)
		}
	}
	return nil
}

// Item returns the category item with the given id, or nil.
func (c *CategorizationContent) Item(id string) *CategoryItem {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return &c.Items[i]
		}
	}
	return nil
}

// contentEnvelope is the persisted wire form: the concrete shape plus a
// kind tag so decoding restores the right type.
type contentEnvelope struct {
	Kind Kind            `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// MarshalContent encodes content with its kind tag for persistence.
func MarshalContent(kind Kind, c Content) ([]byte, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal %s content: %w", kind, err)
	}
	return json.Marshal(contentEnvelope{Kind: kind, Data: data})
}

// UnmarshalContent decodes a tagged content envelope back to its concrete
// type. The returned content is not re-validated; stored lessons were
// validated at generation time.
func UnmarshalContent(raw []byte) (Kind, Content, error) {
	var env contentEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return "", nil, fmt.Errorf("decode content envelope: %w", err)
	}

	var c Content
	switch {
	case env.Kind == KindQuiz:
		c = &QuizContent{}
	case env.Kind.IsMatching():
		c = &MatchingContent{}
	case env.Kind.IsCategorization():
		c = &CategorizationContent{}
	default:
		return "", nil, fmt.Errorf("unknown content kind: %q", env.Kind)
	}

	if err := json.Unmarshal(env.Data, c); err != nil {
		return "", nil, fmt.Errorf("decode %s content: %w", env.Kind, err)
	}
	return env.Kind, c, nil
}
