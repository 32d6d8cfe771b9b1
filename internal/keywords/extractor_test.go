package keywords

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJobKeywords_EmptyInput(t *testing.T) {
	assert.Empty(t, ExtractJobKeywords(""))
	assert.Empty(t, ExtractJobKeywords("   \n\t  "))
}

func TestExtractJobKeywords_FrequencyThreshold(t *testing.T) {
	got := ExtractJobKeywords("python python java")

	assert.Equal(t, []string{"python"}, got)
}

func TestExtractJobKeywords_StopWordsExcluded(t *testing.T) {
	got := ExtractJobKeywords("the the and and candidate candidate")

	assert.Empty(t, got)
}

func TestExtractJobKeywords_ShortTokensExcluded(t *testing.T) {
	// Tokens need at least three alphabetic characters.
	got := ExtractJobKeywords("go go ml ml rust rust")

	assert.Equal(t, []string{"rust"}, got)
}

func TestExtractJobKeywords_FirstSeenOrderOfQualification(t *testing.T) {
	// beta reaches two occurrences before alpha does.
	got := ExtractJobKeywords("alpha beta beta gamma alpha gamma")

	assert.Equal(t, []string{"beta", "alpha", "gamma"}, got)
}

func TestExtractJobKeywords_Lowercased(t *testing.T) {
	got := ExtractJobKeywords("Kubernetes KUBERNETES")

	assert.Equal(t, []string{"kubernetes"}, got)
}

func TestExtractJobKeywords_CappedAtTwenty(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 25; i++ {
		word := fmt.Sprintf("word%c%c", 'a'+rune(i/5), 'a'+rune(i%5))
		sb.WriteString(word + " " + word + " ")
	}

	got := ExtractJobKeywords(sb.String())

	assert.Len(t, got, 20)
}
