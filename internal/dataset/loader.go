package dataset

import (
	"fmt"
	"log"
	"strings"

	"github.com/janani-natarajan/SuyogJobFinder/internal/models"
	"github.com/xuri/excelize/v2"
)

// LoadError reports a dataset source that is missing, malformed or empty
type LoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load dataset %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("load dataset %s: %s", e.Path, e.Reason)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Required and optional column headers, matched case-insensitively.
// Column order in the workbook does not matter.
const (
	colDisabilityType = "disability type"
	colSubcategory    = "subcategory"
	colQualification  = "qualification"
	colDepartment     = "department"
	colActivities     = "functional activities"
	colTitle          = "title"
	colOrganization   = "organization"
	colLocation       = "location"
	colApplyLink      = "apply link"
)

var requiredColumns = []string{colDisabilityType, colQualification, colDepartment, colTitle, colOrganization}

// Load reads the job posting dataset from an .xlsx workbook. The first
// sheet is used; the first row must be a header row naming the columns.
// Rows that violate the posting invariants are skipped with a log line.
// Returns a *LoadError when the file is absent, a required column is
// missing, or no valid rows remain.
func Load(path string) ([]models.JobPosting, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Reason: "cannot open workbook", Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &LoadError{Path: path, Reason: "workbook has no sheets"}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &LoadError{Path: path, Reason: "cannot read rows", Err: err}
	}

	if len(rows) == 0 {
		return nil, &LoadError{Path: path, Reason: "workbook is empty"}
	}

	columns, err := mapColumns(rows[0])
	if err != nil {
		return nil, &LoadError{Path: path, Reason: err.Error()}
	}

	if len(rows) == 1 {
		return nil, &LoadError{Path: path, Reason: "workbook has no data rows"}
	}

	postings := make([]models.JobPosting, 0, len(rows)-1)
	for i, row := range rows[1:] {
		posting, err := parseRow(row, columns)
		if err != nil {
			log.Printf("Skipping dataset row %d: %v", i+2, err)
			continue
		}
		postings = append(postings, posting)
	}

	if len(postings) == 0 {
		return nil, &LoadError{Path: path, Reason: "no valid postings in dataset"}
	}

	return postings, nil
}

// mapColumns resolves header names to column indexes
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, dup := columns[key]; !dup {
			columns[key] = i
		}
	}

	var missing []string
	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	return columns, nil
}

// parseRow builds a posting from one data row and validates it
func parseRow(row []string, columns map[string]int) (models.JobPosting, error) {
	cell := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	rawType := cell(colDisabilityType)
	disabilityType, ok := models.ParseDisabilityType(rawType)
	if !ok {
		return models.JobPosting{}, fmt.Errorf("unknown disability type %q", rawType)
	}

	posting := models.JobPosting{
		Title:                cell(colTitle),
		Organization:         cell(colOrganization),
		Location:             cell(colLocation),
		ApplyLink:            cell(colApplyLink),
		DisabilityType:       disabilityType,
		Subcategory:          cell(colSubcategory),
		Qualification:        cell(colQualification),
		Department:           cell(colDepartment),
		FunctionalActivities: splitActivities(cell(colActivities)),
	}

	if err := posting.Validate(); err != nil {
		return models.JobPosting{}, err
	}

	return posting, nil
}

// splitActivities parses a comma or semicolon separated activity list
func splitActivities(raw string) []string {
	if raw == "" {
		return nil
	}

	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';'
	})

	activities := make([]string, 0, len(fields))
	for _, field := range fields {
		if trimmed := strings.TrimSpace(field); trimmed != "" {
			activities = append(activities, trimmed)
		}
	}

	if len(activities) == 0 {
		return nil
	}
	return activities
}
