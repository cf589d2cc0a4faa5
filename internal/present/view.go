// Package present derives randomized, player-facing views of canonical
// exercise content. Views carry presentation order only — never answer
// information beyond what the canonical content already exposes — and
// presenting never mutates the canonical content. Re-presenting the same
// content reshuffles independently.
package present

import (
	"math/rand/v2"

	"github.com/minhvu/atelier/internal/exercise"
)

// View is the shuffled, player-facing rendering of one exercise.
// Exactly one of the per-kind fields is populated.
type View struct {
	Kind exercise.Kind

	// Quiz items are traversed strictly in canonical order and options
	// keep their authored order, so the quiz view is the canonical items.
	Quiz []exercise.QuizItem

	// LeftOrder and RightOrder are independently shuffled orderings of
	// the same match-item id set, so left-to-right adjacency carries no
	// positional hint.
	LeftOrder  []string
	RightOrder []string

	// ItemOrder is the shuffled categorization item pool. Categories stay
	// in canonical order as selection targets.
	ItemOrder  []string
	Categories []string
}

// Present builds a view of the content using the given randomness source.
// Injecting a seeded source makes presentation deterministic under test;
// production callers pass a fresh time-seeded source per session.
func Present(kind exercise.Kind, content exercise.Content, rng *rand.Rand) *View {
	v := &View{Kind: kind}

	switch c := content.(type) {
	case *exercise.QuizContent:
		v.Quiz = c.Items

	case *exercise.MatchingContent:
		ids := make([]string, len(c.Items))
		for i, item := range c.Items {
			ids[i] = item.ID
		}
		v.LeftOrder = shuffled(ids, rng)
		v.RightOrder = shuffled(ids, rng)

	case *exercise.CategorizationContent:
		ids := make([]string, len(c.Items))
		for i, item := range c.Items {
			ids[i] = item.ID
		}
		v.ItemOrder = shuffled(ids, rng)
		v.Categories = c.Categories
	}

	return v
}

// shuffled returns a Fisher-Yates-shuffled copy, leaving the input intact.
func shuffled(ids []string, rng *rand.Rand) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// NewRand returns a fresh randomness source for one presentation.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
