package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelCost(t *testing.T) {
	c := ModelCost{InputPerMTok: 0.15, OutputPerMTok: 0.6}
	assert.InDelta(t, 0.15+0.6, c.Cost(1_000_000, 1_000_000), 1e-9)
	assert.InDelta(t, 0.00075, c.Cost(1000, 1000), 1e-9)
	assert.Zero(t, c.Cost(0, 0))
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gemini-2.0-flash")
	require.NotNil(t, c)
	assert.Equal(t, 0.1, c.InputPerMTok)

	assert.Nil(t, LookupCost("mock"))
	assert.Nil(t, LookupCost(""))
}
