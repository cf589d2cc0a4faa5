package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var paletteSchema = &Schema{
	Name: "test-palette",
	Definition: map[string]any{
		"type":     "object",
		"required": []string{"colors"},
		"properties": map[string]any{
			"colors": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items":    map[string]any{"type": "string"},
			},
		},
	},
}

func TestValidateResponse(t *testing.T) {
	err := validateResponse(paletteSchema, json.RawMessage(`{"colors": ["vermilion", "ochre"]}`))
	assert.NoError(t, err)
}

func TestValidateResponseNilSchema(t *testing.T) {
	assert.NoError(t, validateResponse(nil, json.RawMessage(`this is not even JSON`)))
}

func TestValidateResponseFailures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not JSON", `the model rambled instead`},
		{"missing required field", `{"name": "sunset"}`},
		{"wrong element type", `{"colors": [1, 2]}`},
		{"empty array", `{"colors": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(paletteSchema, json.RawMessage(tt.raw))
			require.Error(t, err)

			var invalid *ErrInvalidResponse
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, json.RawMessage(tt.raw), invalid.Content)
		})
	}
}

func TestCompiledSchemaIsCached(t *testing.T) {
	first, err := compiledSchema(paletteSchema)
	require.NoError(t, err)
	second, err := compiledSchema(paletteSchema)
	require.NoError(t, err)
	assert.Same(t, first, second)
}
