package csvexport_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabrev/internal/csvexport"
	"tabrev/internal/domain"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestWrite_StartsWithBOM(t *testing.T) {
	var buf bytes.Buffer
	err := csvexport.Write(&buf, nil)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte{0xEF, 0xBB, 0xBF}))
}

func TestWrite_HeaderAndRows(t *testing.T) {
	records := []domain.ExtractedRecord{
		{
			DocumentID:    3,
			FieldName:     "Effective Date",
			Value:         strPtr("2024-01-01"),
			AIValue:       strPtr("January 1, 2024"),
			AIConfidence:  floatPtr(0.875),
			Citation:      strPtr("effective as of January 1, 2024"),
			Normalization: strPtr("2024-01-01"),
			Status:        domain.RecordStatusManualUpdated,
		},
		{
			DocumentID: 3,
			FieldName:  "Governing Law",
			Status:     domain.RecordStatusPending,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, csvexport.Write(&buf, records))

	content := strings.TrimPrefix(buf.String(), "\xEF\xBB\xBF")
	rows, err := csv.NewReader(strings.NewReader(content)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, csvexport.Header, rows[0])
	assert.Equal(t, []string{"3", "Effective Date", "2024-01-01", "January 1, 2024", "0.88", "effective as of January 1, 2024", "2024-01-01", "manual_updated"}, rows[1])
	// Nil pointers render as empty cells.
	assert.Equal(t, []string{"3", "Governing Law", "", "", "", "", "", "pending"}, rows[2])
}

func TestWrite_QuotesEmbeddedCommasAndNewlines(t *testing.T) {
	records := []domain.ExtractedRecord{
		{
			DocumentID: 1,
			FieldName:  "Parties",
			Value:      strPtr("Acme, Inc.\nBeta LLC"),
			Status:     domain.RecordStatusApproved,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, csvexport.Write(&buf, records))

	content := strings.TrimPrefix(buf.String(), "\xEF\xBB\xBF")
	rows, err := csv.NewReader(strings.NewReader(content)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "Acme, Inc.\nBeta LLC", rows[1][2])
}
