package models

import (
	"fmt"
	"strings"
)

// DisabilityType is one of the fixed disability categories a posting is open to
type DisabilityType string

const (
	DisabilityLocomotor      DisabilityType = "Locomotor Disability"
	DisabilityVisual         DisabilityType = "Visual Impairment"
	DisabilityHearing        DisabilityType = "Hearing Impairment"
	DisabilityIntellectual   DisabilityType = "Intellectual & Developmental Disabilities"
	DisabilitySpeechLanguage DisabilityType = "Speech & Language Disability"
	DisabilityMultiple       DisabilityType = "Multiple Disabilities"
)

// DisabilityTypes lists the known categories in display order
var DisabilityTypes = []DisabilityType{
	DisabilityLocomotor,
	DisabilityVisual,
	DisabilityHearing,
	DisabilityIntellectual,
	DisabilitySpeechLanguage,
	DisabilityMultiple,
}

// ParseDisabilityType matches a raw dataset value against the known
// categories, ignoring case and surrounding whitespace
func ParseDisabilityType(raw string) (DisabilityType, bool) {
	trimmed := strings.TrimSpace(raw)
	for _, dt := range DisabilityTypes {
		if strings.EqualFold(trimmed, string(dt)) {
			return dt, true
		}
	}
	return "", false
}

// HasSubcategories reports whether this category carries a subcategory.
// Only Intellectual & Developmental Disabilities does (e.g. Autism,
// Down Syndrome, Specific Learning Disabilities).
func (t DisabilityType) HasSubcategories() bool {
	return t == DisabilityIntellectual
}

// JobPosting represents a single job opening with eligibility metadata
type JobPosting struct {
	Title                string         `json:"title"`
	Organization         string         `json:"organization"`
	Location             string         `json:"location,omitempty"`
	ApplyLink            string         `json:"apply_link,omitempty"`
	DisabilityType       DisabilityType `json:"disability_type"`
	Subcategory          string         `json:"subcategory,omitempty"`
	Qualification        string         `json:"qualification"`
	Department           string         `json:"department"`
	FunctionalActivities []string       `json:"functional_activities,omitempty"`
}

// Validate checks the posting invariants: the disability type must be one
// of the known categories, and a subcategory may be present only when the
// category supports one
func (p JobPosting) Validate() error {
	if p.DisabilityType == "" {
		return fmt.Errorf("posting %q: disability type is required", p.Title)
	}
	if _, ok := ParseDisabilityType(string(p.DisabilityType)); !ok {
		return fmt.Errorf("posting %q: unknown disability type %q", p.Title, p.DisabilityType)
	}
	if p.Subcategory != "" && !p.DisabilityType.HasSubcategories() {
		return fmt.Errorf("posting %q: subcategory %q not allowed for disability type %q", p.Title, p.Subcategory, p.DisabilityType)
	}
	return nil
}

// FilterCriteria holds the field constraints a user currently has selected.
// A zero-valued field imposes no constraint.
type FilterCriteria struct {
	DisabilityType       string   `json:"disability_type,omitempty"`
	Subcategory          string   `json:"subcategory,omitempty"`
	Qualification        string   `json:"qualification,omitempty"`
	Department           string   `json:"department,omitempty"`
	FunctionalActivities []string `json:"functional_activities,omitempty"`
	Keyword              string   `json:"keyword,omitempty"`
}

// IsEmpty reports whether no constraint is set
func (c FilterCriteria) IsEmpty() bool {
	return c.DisabilityType == "" &&
		c.Subcategory == "" &&
		c.Qualification == "" &&
		c.Department == "" &&
		len(c.FunctionalActivities) == 0 &&
		c.Keyword == ""
}

// Vocabulary holds the distinct values observed per filterable field,
// used to restrict the selectable filter options
type Vocabulary struct {
	DisabilityTypes      []string `json:"disability_types"`
	Subcategories        []string `json:"subcategories"`
	Qualifications       []string `json:"qualifications"`
	Departments          []string `json:"departments"`
	FunctionalActivities []string `json:"functional_activities"`
}

// JobsResponse is the payload returned for a filter query
type JobsResponse struct {
	Jobs        []JobPosting `json:"jobs"`
	Count       int          `json:"count"`
	Timestamp   string       `json:"timestamp"`
	LoadWarning string       `json:"load_warning,omitempty"`
}

// ExportResponse reports where a generated document was written
type ExportResponse struct {
	Format string `json:"format"`
	Path   string `json:"path"`
	Rows   int    `json:"rows"`
}
