package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openai/openai-go/v3/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabrev/internal/config"
	"tabrev/internal/domain"
	openaiext "tabrev/internal/extractor/openai"
)

// completionServer returns an httptest server that answers every chat
// completion request with the given message content.
func completionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]interface{}{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"model":  "gpt-4o-mini",
			"choices": []map[string]interface{}{
				{
					"index":         0,
					"finish_reason": "stop",
					"message": map[string]interface{}{
						"role":    "assistant",
						"content": content,
					},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func testFields() []domain.FieldSpec {
	return []domain.FieldSpec{
		{Name: "Contract Title", Description: "The title of the agreement"},
		{Name: "Effective Date", Description: "The date the agreement becomes effective"},
	}
}

func newTestExtractor(serverURL string) *openaiext.Extractor {
	cfg := config.ExtractorConfig{APIKey: "test-key", Model: "gpt-4o-mini", TimeoutSecs: 5}
	return openaiext.NewExtractor(cfg, option.WithBaseURL(serverURL), option.WithMaxRetries(0))
}

func TestExtractor_Extract_Success(t *testing.T) {
	body := `{"results": [
		{"field_name": "Contract Title", "value": "MSA", "confidence": 0.92, "citation": "MASTER SERVICES AGREEMENT", "normalization": "Master Services Agreement"},
		{"field_name": "Effective Date", "value": null, "confidence": 0.1}
	]}`
	srv := completionServer(t, body)
	defer srv.Close()

	ext := newTestExtractor(srv.URL)
	results, err := ext.Extract(context.Background(), "doc text", testFields())

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Contract Title", results[0].FieldName)
	assert.Equal(t, "MSA", *results[0].Value)
	assert.Equal(t, 0.92, *results[0].Confidence)
	assert.Equal(t, "Master Services Agreement", *results[0].Normalization)
	assert.Nil(t, results[1].Value)
}

func TestExtractor_Extract_ClampsConfidence(t *testing.T) {
	body := `{"results": [
		{"field_name": "Contract Title", "value": "MSA", "confidence": 1.7},
		{"field_name": "Effective Date", "value": "2024-01-01", "confidence": -0.3}
	]}`
	srv := completionServer(t, body)
	defer srv.Close()

	ext := newTestExtractor(srv.URL)
	results, err := ext.Extract(context.Background(), "doc text", testFields())

	require.NoError(t, err)
	assert.Equal(t, float64(1), *results[0].Confidence)
	assert.Equal(t, float64(0), *results[1].Confidence)
}

func TestExtractor_Extract_SkipsUnnamedResults(t *testing.T) {
	body := `{"results": [
		{"field_name": "", "value": "orphan"},
		{"field_name": "Contract Title", "value": "MSA"}
	]}`
	srv := completionServer(t, body)
	defer srv.Close()

	ext := newTestExtractor(srv.URL)
	results, err := ext.Extract(context.Background(), "doc text", testFields())

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Contract Title", results[0].FieldName)
}

func TestExtractor_Extract_MissingResultsKey(t *testing.T) {
	srv := completionServer(t, `{"fields": []}`)
	defer srv.Close()

	ext := newTestExtractor(srv.URL)
	_, err := ext.Extract(context.Background(), "doc text", testFields())

	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
	assert.Contains(t, err.Error(), "no results key")
}

func TestExtractor_Extract_MalformedJSON(t *testing.T) {
	srv := completionServer(t, "Sure! Here are the fields you asked for:")
	defer srv.Close()

	ext := newTestExtractor(srv.URL)
	_, err := ext.Extract(context.Background(), "doc text", testFields())

	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
}

func TestExtractor_Extract_NotConfigured(t *testing.T) {
	ext := openaiext.NewExtractor(config.ExtractorConfig{Model: "gpt-4o-mini"})

	_, err := ext.Extract(context.Background(), "doc text", testFields())

	assert.ErrorIs(t, err, domain.ErrExtractorNotConfigured)
}

func TestExtractor_Extract_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "boom"}}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	ext := newTestExtractor(srv.URL)
	_, err := ext.Extract(context.Background(), "doc text", testFields())

	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
}
