package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/janani-natarajan/SuyogJobFinder/internal/models"
	"github.com/xuri/excelize/v2"
)

// ReportColumns is the fixed column order shared by the Excel sheet and
// the PDF table, matching the display table field for field
var ReportColumns = []string{
	"Title", "Organization", "Department", "Disability Type",
	"Subcategory", "Qualification", "Functional Activities", "Location", "Apply Link",
}

// rowValues maps a posting onto ReportColumns
func rowValues(p models.JobPosting) []string {
	return []string{
		p.Title,
		p.Organization,
		p.Department,
		string(p.DisabilityType),
		p.Subcategory,
		p.Qualification,
		strings.Join(p.FunctionalActivities, ", "),
		p.Location,
		p.ApplyLink,
	}
}

// ToExcel generates an Excel report with the filtered job postings
func ToExcel(postings []models.JobPosting, reportTitle string, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	// Ensure output path has .xlsx extension
	if !strings.HasSuffix(strings.ToLower(outputPath), ".xlsx") {
		outputPath = outputPath + ".xlsx"
	}

	// Clean the path for cross-platform compatibility (Windows paths)
	outputPath = filepath.Clean(outputPath)

	summarySheet := "Summary"
	postingsSheet := "Job Postings"

	f.SetSheetName("Sheet1", summarySheet)
	f.NewSheet(postingsSheet)

	if err := createSummarySheet(f, summarySheet, postings, reportTitle); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	if err := createPostingsSheet(f, postingsSheet, postings); err != nil {
		return fmt.Errorf("failed to create postings sheet: %w", err)
	}

	// Try to save the file directly
	if err := f.SaveAs(outputPath); err != nil {
		// If direct save fails, try buffer write fallback
		var buf bytes.Buffer
		if writeErr := f.Write(&buf); writeErr != nil {
			return fmt.Errorf("failed to save Excel file: direct save failed (%v), buffer write also failed: %w", err, writeErr)
		}

		if fileErr := os.WriteFile(outputPath, buf.Bytes(), 0644); fileErr != nil {
			return fmt.Errorf("failed to save Excel file: direct save failed (%v), file write failed: %w", err, fileErr)
		}
	}

	return nil
}

// createSummarySheet creates the summary sheet with report details and
// per-category counts
func createSummarySheet(f *excelize.File, sheetName string, postings []models.JobPosting, reportTitle string) error {
	f.SetColWidth(sheetName, "A", "A", 35)
	f.SetColWidth(sheetName, "B", "B", 50)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	labelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return err
	}

	row := 1

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), reportTitle)
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), headerStyle)
	f.MergeCell(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row))
	row += 2

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Generated:")
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), labelStyle)
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), time.Now().Format("2006-01-02 15:04:05"))
	row++

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Matching Postings:")
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), labelStyle)
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), len(postings))
	row += 2

	if len(postings) > 0 {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Postings by Disability Type:")
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), headerStyle)
		f.MergeCell(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row))
		row++

		counts := make(map[models.DisabilityType]int)
		for _, p := range postings {
			counts[p.DisabilityType]++
		}

		// Walk the fixed category order so the summary is deterministic
		for _, dt := range models.DisabilityTypes {
			if counts[dt] == 0 {
				continue
			}
			f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), string(dt)+":")
			f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), counts[dt])
			row++
		}
	}

	return nil
}

// createPostingsSheet creates the postings sheet mirroring the display table
func createPostingsSheet(f *excelize.File, sheetName string, postings []models.JobPosting) error {
	widths := []float64{30, 25, 30, 25, 18, 18, 30, 20, 30}
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		f.SetColWidth(sheetName, col, col, w)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return err
	}

	linkStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "0563C1", Underline: "single"},
	})

	for col, header := range ReportColumns {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		cell := fmt.Sprintf("%s1", name)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for i, posting := range postings {
		row := i + 2
		for col, value := range rowValues(posting) {
			name, err := excelize.ColumnNumberToName(col + 1)
			if err != nil {
				return err
			}
			f.SetCellValue(sheetName, fmt.Sprintf("%s%d", name, row), value)
		}

		// Last column carries the application link as a hyperlink
		if posting.ApplyLink != "" {
			linkCol, _ := excelize.ColumnNumberToName(len(ReportColumns))
			cell := fmt.Sprintf("%s%d", linkCol, row)
			f.SetCellHyperLink(sheetName, cell, posting.ApplyLink, "External")
			f.SetCellStyle(sheetName, cell, cell, linkStyle)
		}
	}

	// Enable auto-filter
	if len(postings) > 0 {
		lastCol, _ := excelize.ColumnNumberToName(len(ReportColumns))
		f.AutoFilter(sheetName, fmt.Sprintf("A1:%s%d", lastCol, len(postings)+1), []excelize.AutoFilterOptions{})
	}

	// Freeze top row
	f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	return nil
}
