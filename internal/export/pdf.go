package export

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/janani-natarajan/SuyogJobFinder/internal/models"

	"github.com/playwright-community/playwright-go"
)

// PDFGenerator converts a filtered posting list into a paginated PDF report
type PDFGenerator struct {
	templatePath string
}

// NewPDFGenerator creates a PDF generator with the given HTML template path
func NewPDFGenerator(templatePath string) *PDFGenerator {
	return &PDFGenerator{
		templatePath: templatePath,
	}
}

// reportData is the data handed to the HTML template
type reportData struct {
	Title     string
	Generated string
	Columns   []string
	Rows      [][]string
}

// Generate renders the postings through the HTML template and uses
// Playwright headless Chromium to print it as an A4 PDF byte array
func (g *PDFGenerator) Generate(postings []models.JobPosting, reportTitle string) ([]byte, error) {
	tmpl, err := template.ParseFiles(g.templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	data := reportData{
		Title:     reportTitle,
		Generated: time.Now().Format("2006-01-02 15:04:05"),
		Columns:   ReportColumns,
		Rows:      make([][]string, 0, len(postings)),
	}
	for _, posting := range postings {
		data.Rows = append(data.Rows, rowValues(posting))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	htmlContent := buf.String()

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}
	defer pw.Stop()

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("could not launch chromium browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.NewPage()
	if err != nil {
		return nil, fmt.Errorf("could not create new page: %w", err)
	}
	defer page.Close()

	if err := page.SetContent(htmlContent, playwright.PageSetContentOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
	}); err != nil {
		return nil, fmt.Errorf("could not set page content: %w", err)
	}

	pdfBytes, err := page.PDF(playwright.PagePdfOptions{
		Format:          playwright.String("A4"),
		PrintBackground: playwright.Bool(true),
		Margin: &playwright.Margin{
			Top:    playwright.String("1cm"),
			Bottom: playwright.String("1cm"),
			Left:   playwright.String("1cm"),
			Right:  playwright.String("1cm"),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("could not generate PDF: %w", err)
	}

	return pdfBytes, nil
}

// SaveToFile is a helper to directly save a generated PDF to disk
func SaveToFile(pdfBytes []byte, outputPath string) error {
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory: %w", err)
	}

	return os.WriteFile(outputPath, pdfBytes, 0644)
}
