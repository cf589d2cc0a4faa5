package generate

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSynthesizeImageURL(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))

	got := SynthesizeImageURL("sunflowers still life", rng)
	assert.Contains(t, got, "https://source.unsplash.com/800x600/?")
	assert.Contains(t, got, "sunflowers")
	assert.Contains(t, got, "illustration")
	assert.Contains(t, got, "&sig=")

	// Same keyword, different disambiguator.
	again := SynthesizeImageURL("sunflowers still life", rng)
	assert.NotEqual(t, got, again)
}

func TestSynthesizeImageURLEmptyKeyword(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	assert.Empty(t, SynthesizeImageURL("", rng))
	assert.Empty(t, SynthesizeImageURL("   ", rng))
}

func TestSynthesizeImageURLDeterministic(t *testing.T) {
	a := SynthesizeImageURL("gothic cathedral", rand.New(rand.NewPCG(3, 9)))
	b := SynthesizeImageURL("gothic cathedral", rand.New(rand.NewPCG(3, 9)))
	assert.Equal(t, a, b)
}
