package generate

import (
	"fmt"
	"math/rand/v2"
	"net/url"
	"strings"
)

// imageStyleQualifiers are appended to every synthesized image query to
// bias results toward illustrative art imagery.
var imageStyleQualifiers = []string{"art", "illustration"}

// SynthesizeImageURL deterministically expands a descriptive keyword into
// an image locator: keyword plus fixed style qualifiers plus a random
// disambiguator so repeated items don't resolve to the same stock photo.
// Pure apart from the injected randomness source; performs no I/O.
func SynthesizeImageURL(keyword string, rng *rand.Rand) string {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return ""
	}

	terms := append(strings.Fields(keyword), imageStyleQualifiers...)
	query := url.QueryEscape(strings.Join(terms, ","))

	return fmt.Sprintf("https://source.unsplash.com/800x600/?%s&sig=%d", query, rng.IntN(100000))
}
