package taxonomy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValidResource(t *testing.T) {
	tax, err := Load()

	require.NoError(t, err)
	require.NotNil(t, tax)
	assert.NotEmpty(t, tax.Version())
}

func TestLoad_CategoryOrder(t *testing.T) {
	tax, err := Load()
	require.NoError(t, err)

	names := make([]string, 0, len(tax.Categories()))
	for _, c := range tax.Categories() {
		names = append(names, c.Name)
	}

	assert.Equal(t, []string{"technical", "soft", "action", "education", "experience"}, names)
}

func TestLoad_TermsAreLowercase(t *testing.T) {
	tax, err := Load()
	require.NoError(t, err)

	for _, c := range tax.Categories() {
		for _, term := range c.Terms {
			assert.Equal(t, strings.ToLower(term), term, "term %q in category %q is not lowercase", term, c.Name)
		}
	}
}

func TestActionVerbs_NonEmpty(t *testing.T) {
	tax := MustLoad()

	verbs := tax.ActionVerbs()
	require.NotEmpty(t, verbs)
	assert.Contains(t, verbs, "developed")
	assert.Contains(t, verbs, "led")
}

func TestSize_MatchesCategorySum(t *testing.T) {
	tax := MustLoad()

	total := 0
	for _, c := range tax.Categories() {
		total += len(c.Terms)
	}

	assert.Equal(t, total, tax.Size())
	assert.Greater(t, tax.Size(), 0)
}

func TestSnapshot_IsACopy(t *testing.T) {
	tax := MustLoad()

	snapshot := tax.Snapshot()
	require.Contains(t, snapshot, "technical")
	require.NotEmpty(t, snapshot["technical"])

	// Mutating the snapshot must not affect the taxonomy.
	snapshot["technical"][0] = "mutated"
	assert.NotEqual(t, "mutated", tax.Categories()[0].Terms[0])
}
