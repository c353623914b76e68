// Package xlsxexport renders evaluation reports as Excel workbooks.
package xlsxexport

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"tabrev/internal/domain"
)

const (
	reportSheet  = "Evaluation"
	recordsSheet = "Records"
)

// WriteReport renders an evaluation report plus the records behind it as an
// XLSX workbook with two sheets: a summary and the per-record detail.
func WriteReport(w io.Writer, report *domain.EvaluationReport, records []domain.ExtractedRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	summary := [][]interface{}{
		{"Metric", "Value"},
		{"Total Fields", report.TotalFields},
		{"Reviewed Fields", report.ReviewedFields},
		{"Correct Fields", report.CorrectFields},
		{"Accuracy (%)", report.Accuracy},
	}
	for i, row := range summary {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("computing cell name: %w", err)
		}
		if err := f.SetSheetRow(reportSheet, cell, &row); err != nil {
			return fmt.Errorf("writing summary row: %w", err)
		}
	}

	if _, err := f.NewSheet(recordsSheet); err != nil {
		return fmt.Errorf("creating records sheet: %w", err)
	}
	header := []interface{}{"Document ID", "Field Name", "Value", "AI Value", "AI Confidence", "Status"}
	if err := f.SetSheetRow(recordsSheet, "A1", &header); err != nil {
		return fmt.Errorf("writing records header: %w", err)
	}
	for i, r := range records {
		row := []interface{}{r.DocumentID, r.FieldName, deref(r.Value), deref(r.AIValue), derefFloat(r.AIConfidence), string(r.Status)}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("computing cell name: %w", err)
		}
		if err := f.SetSheetRow(recordsSheet, cell, &row); err != nil {
			return fmt.Errorf("writing record row: %w", err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefFloat(f *float64) interface{} {
	if f == nil {
		return ""
	}
	return *f
}
