package chunker

import (
	"fmt"
	"strings"

	"tabrev/internal/domain"
)

// Split cuts text into overlapping passages. Each chunk starts chunk_size -
// chunk_overlap characters after its predecessor, and a chunk ending inside
// the text is pulled back to the last space in its window so words are not
// cut in half. Chunk identity is "{documentID}_{startOffset}", which is
// stable across re-ingestion of the same text.
//
// size must be positive and overlap must satisfy 0 <= overlap < size;
// otherwise the step would be non-positive and the walk would never
// terminate.
func Split(documentID int64, text string, size, overlap int) ([]domain.Chunk, error) {
	if size <= 0 || overlap < 0 || overlap >= size {
		return nil, fmt.Errorf("chunk size %d, overlap %d: %w", size, overlap, domain.ErrInvalidChunkConfig)
	}

	var chunks []domain.Chunk
	step := size - overlap

	for start := 0; start < len(text); start += step {
		end := start + size
		if end > len(text) {
			end = len(text)
		} else if end < len(text) {
			// Word-boundary heuristic: end on the last space inside the
			// window, but never pull the end back to (or before) the start.
			if last := strings.LastIndexByte(text[start:end], ' '); last > 0 {
				end = start + last
			}
		}

		chunks = append(chunks, domain.Chunk{
			ID:          fmt.Sprintf("%d_%d", documentID, start),
			DocumentID:  documentID,
			Text:        text[start:end],
			StartOffset: start,
		})
	}

	return chunks, nil
}
