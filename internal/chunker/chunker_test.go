package chunker_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabrev/internal/chunker"
	"tabrev/internal/domain"
)

func TestSplit_EmptyText(t *testing.T) {
	chunks, err := chunker.Split(1, "", 1000, 200)

	assert.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestSplit_RejectsOverlapNotSmallerThanSize(t *testing.T) {
	cases := []struct {
		name    string
		size    int
		overlap int
	}{
		{"overlap equals size", 100, 100},
		{"overlap exceeds size", 100, 150},
		{"negative overlap", 100, -1},
		{"zero size", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			chunks, err := chunker.Split(1, "some text", tc.size, tc.overlap)
			assert.Nil(t, chunks)
			assert.ErrorIs(t, err, domain.ErrInvalidChunkConfig)
		})
	}
}

func TestSplit_SingleChunkWhenTextFits(t *testing.T) {
	text := "short document"
	chunks, err := chunker.Split(42, text, 1000, 200)

	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, "42_0", chunks[0].ID)
	assert.Equal(t, int64(42), chunks[0].DocumentID)
	assert.Equal(t, 0, chunks[0].StartOffset)
	assert.Equal(t, text, chunks[0].Text)
}

func TestSplit_StartOffsetsStrictlyIncreaseByStep(t *testing.T) {
	text := strings.Repeat("lorem ipsum dolor sit amet ", 200)
	chunks, err := chunker.Split(7, text, 100, 30)

	require.NoError(t, err)
	require.Greater(t, len(chunks), 1)
	for i, c := range chunks {
		assert.Equal(t, i*70, c.StartOffset)
		assert.NotEmpty(t, c.Text)
	}
}

func TestSplit_WordBoundaryPullback(t *testing.T) {
	// Window of 20 lands mid-word; the chunk must end on the last space
	// inside the window instead.
	text := "alpha bravo charlie delta echo foxtrot"
	chunks, err := chunker.Split(1, text, 20, 5)

	require.NoError(t, err)
	require.NotEmpty(t, chunks)
	first := chunks[0].Text
	assert.True(t, strings.HasSuffix(first, "charlie"), "chunk %q should end at a word boundary", first)
	assert.False(t, strings.HasSuffix(first, " "))
}

func TestSplit_NoPullbackOnFinalChunk(t *testing.T) {
	// The last window reaches the end of the text; it must not be trimmed.
	text := "one two three"
	chunks, err := chunker.Split(1, text, 1000, 0)

	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, text, chunks[0].Text)
}

func TestSplit_ChunksReconstructText(t *testing.T) {
	// With overlap at least as large as any pullback, the region between
	// consecutive starts is fully contained in each chunk, so stitching the
	// per-chunk prefixes back together reproduces the input exactly.
	text := strings.Repeat("the quick brown fox jumps over the lazy dog ", 60)
	text = strings.TrimSpace(text)

	for _, cfg := range []struct{ size, overlap int }{
		{100, 30},
		{250, 50},
		{1000, 200},
	} {
		chunks, err := chunker.Split(3, text, cfg.size, cfg.overlap)
		require.NoError(t, err)

		var b strings.Builder
		for i, c := range chunks {
			if i == len(chunks)-1 {
				b.WriteString(c.Text)
				break
			}
			next := chunks[i+1].StartOffset
			require.GreaterOrEqual(t, c.StartOffset+len(c.Text), next,
				"size=%d overlap=%d: gap between chunk %d and %d", cfg.size, cfg.overlap, i, i+1)
			b.WriteString(c.Text[:next-c.StartOffset])
		}
		assert.Equal(t, text, b.String(), "size=%d overlap=%d", cfg.size, cfg.overlap)
	}
}

func TestSplit_ChunkIdentityEncodesDocumentAndOffset(t *testing.T) {
	text := strings.Repeat("word ", 100)
	chunks, err := chunker.Split(99, text, 50, 10)

	require.NoError(t, err)
	for _, c := range chunks {
		assert.Equal(t, "99_"+strconv.Itoa(c.StartOffset), c.ID)
	}
}
