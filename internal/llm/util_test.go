package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSONBlock_PlainJSON(t *testing.T) {
	input := `{"score": 75}`

	assert.Equal(t, `{"score": 75}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_JSONCodeBlock(t *testing.T) {
	input := "```json\n{\"score\": 75}\n```"

	assert.Equal(t, `{"score": 75}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_GenericCodeBlock(t *testing.T) {
	input := "```\n{\"score\": 75}\n```"

	assert.Equal(t, `{"score": 75}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_WhitespacePadding(t *testing.T) {
	input := "  \n {\"a\": 1} \n "

	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(input))
}

func TestExtractJSONObject_FirstBalancedBlock(t *testing.T) {
	input := `Here is the analysis: {"score": 80, "nested": {"ok": true}} trailing text {"second": 1}`

	got, err := ExtractJSONObject(input)

	require.NoError(t, err)
	assert.Equal(t, `{"score": 80, "nested": {"ok": true}}`, got)
}

func TestExtractJSONObject_BracesInsideStrings(t *testing.T) {
	input := `{"note": "curly } inside", "score": 60}`

	got, err := ExtractJSONObject(input)

	require.NoError(t, err)
	assert.Equal(t, input, got)
}

func TestExtractJSONObject_EscapedQuotes(t *testing.T) {
	input := `{"note": "she said \"hi\"", "score": 10}`

	got, err := ExtractJSONObject(input)

	require.NoError(t, err)
	assert.Equal(t, input, got)
}

func TestExtractJSONObject_NoObject(t *testing.T) {
	_, err := ExtractJSONObject("the model refused to answer")

	assert.Error(t, err)
}

func TestExtractJSONObject_Unbalanced(t *testing.T) {
	_, err := ExtractJSONObject(`{"score": 80`)

	assert.Error(t, err)
}
