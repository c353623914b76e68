package extractor_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"tabrev/internal/domain"
	"tabrev/internal/extractor"
)

func TestBuildExtractionPrompt(t *testing.T) {
	fields := []domain.FieldSpec{
		{Name: "Contract Title", Description: "The title of the agreement"},
	}

	prompt := extractor.BuildExtractionPrompt("THIS AGREEMENT is made...", fields)

	assert.Contains(t, prompt, `"Contract Title"`)
	assert.Contains(t, prompt, `"The title of the agreement"`)
	assert.Contains(t, prompt, `"results" key`)
	assert.Contains(t, prompt, `set "value" to null`)
	assert.True(t, strings.HasSuffix(prompt, "THIS AGREEMENT is made..."))
}

func TestTruncateDocument(t *testing.T) {
	assert.Equal(t, "abc", extractor.TruncateDocument("abc", 10))
	assert.Equal(t, "abcde", extractor.TruncateDocument("abcdefgh", 5))
	// Zero or negative budget disables truncation.
	assert.Equal(t, "abcdefgh", extractor.TruncateDocument("abcdefgh", 0))
	assert.Equal(t, "abcdefgh", extractor.TruncateDocument("abcdefgh", -1))
}
