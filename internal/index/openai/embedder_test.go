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
	openaiembed "tabrev/internal/index/openai"
)

// embeddingServer answers every embeddings request with one vector per input.
func embeddingServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Input interface{} `json:"input"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)

		count := 1
		if arr, ok := req.Input.([]interface{}); ok {
			count = len(arr)
		}

		data := make([]map[string]interface{}, count)
		for i := range data {
			data[i] = map[string]interface{}{
				"object":    "embedding",
				"index":     i,
				"embedding": []float64{0.1, 0.2, 0.3},
			}
		}
		resp := map[string]interface{}{
			"object": "list",
			"model":  "text-embedding-3-small",
			"data":   data,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func newTestEmbedder(serverURL string) *openaiembed.Embedder {
	cfg := config.IndexConfig{EmbeddingModel: "text-embedding-3-small", EmbeddingDimension: 3}
	return openaiembed.NewEmbedder("test-key", cfg, option.WithBaseURL(serverURL), option.WithMaxRetries(0))
}

func TestEmbedder_Embed(t *testing.T) {
	srv := embeddingServer(t)
	defer srv.Close()

	e := newTestEmbedder(srv.URL)
	vector, err := e.Embed(context.Background(), "hello")

	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, vector)
}

func TestEmbedder_BatchEmbed(t *testing.T) {
	srv := embeddingServer(t)
	defer srv.Close()

	e := newTestEmbedder(srv.URL)
	vectors, err := e.BatchEmbed(context.Background(), []string{"a", "b", "c"})

	require.NoError(t, err)
	require.Len(t, vectors, 3)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, vectors[1])
}

func TestEmbedder_BatchEmbed_Empty(t *testing.T) {
	e := newTestEmbedder("http://unused.invalid")

	_, err := e.BatchEmbed(context.Background(), nil)

	assert.Error(t, err)
}

func TestEmbedder_BatchEmbed_TooLarge(t *testing.T) {
	e := newTestEmbedder("http://unused.invalid")

	texts := make([]string, 101)
	_, err := e.BatchEmbed(context.Background(), texts)

	assert.Error(t, err)
}
