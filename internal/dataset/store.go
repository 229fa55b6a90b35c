package dataset

import (
	"sort"
	"strings"

	"github.com/janani-natarajan/SuyogJobFinder/internal/models"
)

// Store holds the loaded postings for the lifetime of the process.
// The dataset is read-only after construction, so it is safe to share
// across concurrent requests without locking.
type Store struct {
	postings []models.JobPosting
	vocab    models.Vocabulary
}

// NewStore builds a store over the loaded postings, preserving their
// source order, and derives the vocabulary of selectable filter values
func NewStore(postings []models.JobPosting) *Store {
	owned := make([]models.JobPosting, len(postings))
	copy(owned, postings)

	return &Store{
		postings: owned,
		vocab:    buildVocabulary(owned),
	}
}

// Postings returns a copy of the full dataset in source order
func (s *Store) Postings() []models.JobPosting {
	out := make([]models.JobPosting, len(s.postings))
	copy(out, s.postings)
	return out
}

// Len returns the number of loaded postings
func (s *Store) Len() int {
	return len(s.postings)
}

// Vocabulary returns the distinct observed values per filterable field
func (s *Store) Vocabulary() models.Vocabulary {
	return s.vocab
}

// buildVocabulary collects the distinct non-empty values observed in the
// dataset for each filterable field. Restricting selections to these
// values means an out-of-vocabulary filter cannot be constructed from
// the UI in the first place.
func buildVocabulary(postings []models.JobPosting) models.Vocabulary {
	types := newValueSet()
	subcategories := newValueSet()
	qualifications := newValueSet()
	departments := newValueSet()
	activities := newValueSet()

	for _, p := range postings {
		types.add(string(p.DisabilityType))
		subcategories.add(p.Subcategory)
		qualifications.add(p.Qualification)
		departments.add(p.Department)
		for _, a := range p.FunctionalActivities {
			activities.add(a)
		}
	}

	return models.Vocabulary{
		DisabilityTypes:      types.sorted(),
		Subcategories:        subcategories.sorted(),
		Qualifications:       qualifications.sorted(),
		Departments:          departments.sorted(),
		FunctionalActivities: activities.sorted(),
	}
}

// valueSet deduplicates values case-insensitively while keeping the
// first-seen spelling for display
type valueSet struct {
	seen   map[string]bool
	values []string
}

func newValueSet() *valueSet {
	return &valueSet{seen: make(map[string]bool)}
}

func (s *valueSet) add(value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	key := strings.ToLower(value)
	if s.seen[key] {
		return
	}
	s.seen[key] = true
	s.values = append(s.values, value)
}

func (s *valueSet) sorted() []string {
	out := make([]string, len(s.values))
	copy(out, s.values)
	sort.Strings(out)
	return out
}
