package models

import (
	"encoding/json"
	"testing"
)

func TestParseDisabilityType(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  DisabilityType
		ok    bool
	}{
		{
			name:  "Exact match",
			input: "Visual Impairment",
			want:  DisabilityVisual,
			ok:    true,
		},
		{
			name:  "Case insensitive",
			input: "visual impairment",
			want:  DisabilityVisual,
			ok:    true,
		},
		{
			name:  "Surrounding whitespace",
			input: "  Hearing Impairment ",
			want:  DisabilityHearing,
			ok:    true,
		},
		{
			name:  "Unknown category",
			input: "Temporary Injury",
			ok:    false,
		},
		{
			name:  "Empty",
			input: "",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDisabilityType(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseDisabilityType(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseDisabilityType(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestJobPostingValidate(t *testing.T) {
	tests := []struct {
		name    string
		posting JobPosting
		wantErr bool
	}{
		{
			name: "Valid posting without subcategory",
			posting: JobPosting{
				Title:          "Data Entry Operator",
				DisabilityType: DisabilityVisual,
				Qualification:  "Graduate",
				Department:     "Department of Posts",
			},
		},
		{
			name: "Valid posting with subcategory",
			posting: JobPosting{
				Title:          "Office Assistant",
				DisabilityType: DisabilityIntellectual,
				Subcategory:    "Autism",
				Qualification:  "12th Pass",
				Department:     "Ministry of Social Justice",
			},
		},
		{
			name: "Missing disability type",
			posting: JobPosting{
				Title:         "Clerk",
				Qualification: "Graduate",
			},
			wantErr: true,
		},
		{
			name: "Unknown disability type",
			posting: JobPosting{
				Title:          "Clerk",
				DisabilityType: "Colour Blindness",
			},
			wantErr: true,
		},
		{
			name: "Subcategory on a category that has none",
			posting: JobPosting{
				Title:          "Clerk",
				DisabilityType: DisabilityVisual,
				Subcategory:    "Autism",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.posting.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFilterCriteriaIsEmpty(t *testing.T) {
	if !(FilterCriteria{}).IsEmpty() {
		t.Error("zero-valued criteria should be empty")
	}

	c := FilterCriteria{Qualification: "Graduate"}
	if c.IsEmpty() {
		t.Error("criteria with a qualification should not be empty")
	}

	c = FilterCriteria{FunctionalActivities: []string{"Sitting"}}
	if c.IsEmpty() {
		t.Error("criteria with functional activities should not be empty")
	}
}

func TestJobPostingSerialization(t *testing.T) {
	p := JobPosting{
		Title:                "Accessibility Tester",
		Organization:         "NIC",
		DisabilityType:       DisabilityLocomotor,
		Qualification:        "Graduate",
		Department:           "Ministry of Electronics and IT",
		FunctionalActivities: []string{"Sitting", "Seeing"},
	}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Failed to marshal JobPosting: %v", err)
	}

	var decoded JobPosting
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal JobPosting: %v", err)
	}

	if decoded.Title != p.Title {
		t.Errorf("Expected title %s, got %s", p.Title, decoded.Title)
	}

	if decoded.DisabilityType != p.DisabilityType {
		t.Errorf("Expected disability type %s, got %s", p.DisabilityType, decoded.DisabilityType)
	}

	if len(decoded.FunctionalActivities) != len(p.FunctionalActivities) {
		t.Errorf("Expected %d functional activities, got %d", len(p.FunctionalActivities), len(decoded.FunctionalActivities))
	}
}
