package filter

import (
	"strings"

	"github.com/janani-natarajan/SuyogJobFinder/internal/models"
)

// Apply returns the postings that satisfy every constraint set in the
// criteria, preserving their relative order. Unset criteria fields
// impose no constraint; an empty result is a valid value, not an error.
// The function is pure: it never mutates its input and filtering an
// already-filtered result with the same criteria is a no-op.
func Apply(postings []models.JobPosting, criteria models.FilterCriteria) []models.JobPosting {
	matched := make([]models.JobPosting, 0, len(postings))
	for _, posting := range postings {
		if Matches(posting, criteria) {
			matched = append(matched, posting)
		}
	}
	return matched
}

// Matches reports whether a single posting satisfies the criteria.
//
// String fields compare case-insensitively after trimming. Functional
// activities use a coverage policy: the posting matches when every
// activity it requires appears in the candidate's selection, i.e. the
// candidate can do at least what the role requires. An empty selection
// imposes no constraint.
func Matches(posting models.JobPosting, criteria models.FilterCriteria) bool {
	if !fieldMatches(string(posting.DisabilityType), criteria.DisabilityType) {
		return false
	}
	if !fieldMatches(posting.Subcategory, criteria.Subcategory) {
		return false
	}
	if !fieldMatches(posting.Qualification, criteria.Qualification) {
		return false
	}
	if !fieldMatches(posting.Department, criteria.Department) {
		return false
	}
	if !activitiesCovered(posting.FunctionalActivities, criteria.FunctionalActivities) {
		return false
	}
	if !keywordMatches(posting, criteria.Keyword) {
		return false
	}
	return true
}

// fieldMatches applies one optional equals constraint
func fieldMatches(value, want string) bool {
	want = strings.TrimSpace(want)
	if want == "" {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(value), want)
}

// activitiesCovered reports whether every required activity appears in
// the candidate's selection
func activitiesCovered(required, selected []string) bool {
	if len(selected) == 0 {
		return true
	}

	have := make(map[string]bool, len(selected))
	for _, activity := range selected {
		have[normalize(activity)] = true
	}

	for _, activity := range required {
		if !have[normalize(activity)] {
			return false
		}
	}
	return true
}

// keywordMatches applies the free-text search across the descriptive
// fields: title, department and organization
func keywordMatches(posting models.JobPosting, keyword string) bool {
	keyword = normalize(keyword)
	if keyword == "" {
		return true
	}
	return strings.Contains(strings.ToLower(posting.Title), keyword) ||
		strings.Contains(strings.ToLower(posting.Department), keyword) ||
		strings.Contains(strings.ToLower(posting.Organization), keyword)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
