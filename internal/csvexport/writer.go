// Package csvexport renders extracted records as CSV for download.
package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"tabrev/internal/domain"
)

// Header is the column layout of a records export.
var Header = []string{
	"Document ID",
	"Field Name",
	"Value",
	"AI Value",
	"AI Confidence",
	"Citation",
	"Normalization",
	"Status",
}

// Write renders records to w as CSV. A UTF-8 BOM is written first so
// spreadsheet applications detect the encoding.
func Write(w io.Writer, records []domain.ExtractedRecord) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range records {
		row := []string{
			strconv.FormatInt(r.DocumentID, 10),
			r.FieldName,
			deref(r.Value),
			deref(r.AIValue),
			formatConfidence(r.AIConfidence),
			deref(r.Citation),
			deref(r.Normalization),
			string(r.Status),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatConfidence(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', 2, 64)
}
