package dataset

import (
	"testing"

	"github.com/janani-natarajan/SuyogJobFinder/internal/models"
)

func testPostings() []models.JobPosting {
	return []models.JobPosting{
		{
			Title:                "Data Entry Operator",
			Organization:         "India Post",
			DisabilityType:       models.DisabilityVisual,
			Qualification:        "Graduate",
			Department:           "Department of Posts",
			FunctionalActivities: []string{"Sitting", "Hearing"},
		},
		{
			Title:                "Office Assistant",
			Organization:         "NIEPID",
			DisabilityType:       models.DisabilityIntellectual,
			Subcategory:          "Autism",
			Qualification:        "12th Pass",
			Department:           "Ministry of Social Justice",
			FunctionalActivities: []string{"Sitting"},
		},
		{
			Title:          "Telephone Operator",
			Organization:   "BSNL",
			DisabilityType: models.DisabilityVisual,
			Qualification:  "graduate", // different spelling of an existing value
			Department:     "Department of Telecommunications",
		},
	}
}

func TestStoreVocabulary(t *testing.T) {
	store := NewStore(testPostings())

	vocab := store.Vocabulary()

	if len(vocab.DisabilityTypes) != 2 {
		t.Errorf("Expected 2 disability types, got %v", vocab.DisabilityTypes)
	}

	// Case-insensitive dedup keeps one qualification spelling
	if len(vocab.Qualifications) != 2 {
		t.Errorf("Expected 2 qualifications, got %v", vocab.Qualifications)
	}

	if len(vocab.Subcategories) != 1 || vocab.Subcategories[0] != "Autism" {
		t.Errorf("Expected subcategories [Autism], got %v", vocab.Subcategories)
	}

	if len(vocab.FunctionalActivities) != 2 {
		t.Errorf("Expected 2 functional activities, got %v", vocab.FunctionalActivities)
	}

	// Sorted output
	if vocab.Departments[0] != "Department of Posts" {
		t.Errorf("Expected departments sorted, got %v", vocab.Departments)
	}
}

func TestStorePostingsReturnsCopy(t *testing.T) {
	store := NewStore(testPostings())

	first := store.Postings()
	first[0].Title = "Mutated"

	second := store.Postings()
	if second[0].Title == "Mutated" {
		t.Error("Postings() must return a copy, not the backing slice")
	}

	if store.Len() != 3 {
		t.Errorf("Expected Len() 3, got %d", store.Len())
	}
}
