package output

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianshen/pricemap/internal/diagram"
)

func TestJSONFormatterBasic(t *testing.T) {
	f := NewJSONFormatter()
	out, err := f.Format(sampleReport(1000))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))

	assert.Equal(t, "all", decoded["provider"])
	assert.Equal(t, float64(1000), decoded["input_tokens"])
	assert.Equal(t, "2024-03-01T12:30:00Z", decoded["last_updated"])
	assert.Equal(t, "Claude 3 Haiku", decoded["cheapest"])

	models, ok := decoded["models"].([]any)
	require.True(t, ok)
	require.Len(t, models, 3)
	first := models[0].(map[string]any)
	assert.Equal(t, "GPT-4", first["name"])
	assert.Equal(t, true, first["highest_input"])
	assert.NotContains(t, first, "lowest_input")
}

func TestJSONFormatterEmptyModels(t *testing.T) {
	r := sampleReport(0)
	r.Models = []ModelLine{}
	r.Links = []diagram.Link{{Name: "OpenAI", URL: "https://openai.com/pricing"}}

	out, err := NewJSONFormatter().Format(r)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, []any{}, decoded["models"])
	assert.Len(t, decoded["links"], 1)
	assert.NotContains(t, decoded, "cheapest")
}
